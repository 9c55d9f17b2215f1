package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"msa_center/core/api/models"
)

func statsFixture() []*models.Event {
	return []*models.Event{
		{Status: "📥 In Queue", PostingDate: "2025-11-25"},     // pending
		{Status: "🔄 In Progress", PostingDate: "2025-11-10"},  // pending + overdue
		{Status: "⏳ Awaiting Posting", PostingDate: ""},        // pending, không có hạn
		{Status: "✅ Done", PostingDate: "2025-11-10"},          // completed, không overdue
		{Status: "🚫 Blocked", PostingDate: "2025-11-01"},       // pending, blocked không overdue
	}
}

func TestComputeEventStatsAt(t *testing.T) {
	today := mustDate(t, "2025-11-20")

	stats := ComputeEventStatsAt(statsFixture(), today)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 4, stats.Pending)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.Overdue)
}

func TestComputeEventStatsAt_Invariant(t *testing.T) {
	today := mustDate(t, "2025-11-20")

	stats := ComputeEventStatsAt(statsFixture(), today)

	assert.Equal(t, stats.Total, stats.Pending+stats.Completed)
	assert.LessOrEqual(t, stats.Overdue, stats.Pending)
}

func TestComputeEventStatsAt_Empty(t *testing.T) {
	stats := ComputeEventStatsAt(nil, mustDate(t, "2025-11-20"))
	assert.Equal(t, EventStats{}, stats)
}

func TestComputeStatusSummary(t *testing.T) {
	events := append(statsFixture(), &models.Event{Status: "📥 In Queue"}, &models.Event{Status: "CUSTOM_STATUS"})

	summary := ComputeStatusSummary(events)

	assert.Equal(t, 2, summary["📥 In Queue"])
	assert.Equal(t, 1, summary["✅ Done"])
	assert.Equal(t, 1, summary["🚫 Blocked"])
	assert.Equal(t, 1, summary["CUSTOM_STATUS"])
	assert.Len(t, summary, 6)
}

func TestComputeStatusSummary_Empty(t *testing.T) {
	assert.Empty(t, ComputeStatusSummary(nil))
}

func TestComputeEventStatsAt_OrderIndependent(t *testing.T) {
	today := mustDate(t, "2025-11-20")
	events := statsFixture()
	want := ComputeEventStatsAt(events, today)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(events), func(a, b int) {
			events[a], events[b] = events[b], events[a]
		})
		assert.Equal(t, want, ComputeEventStatsAt(events, today))
	}
}

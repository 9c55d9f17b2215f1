package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"msa_center/core/api/models"
	"msa_center/core/utility"
)

// utilityAddDays trả về chuỗi YYYY-MM-DD của base + days
func utilityAddDays(t *testing.T, base time.Time, days int) string {
	t.Helper()
	return utility.FormatLocalYMD(utility.AddDaysLocal(base, days))
}

func TestComputeDueMetaAt_Overdue(t *testing.T) {
	today := mustDate(t, "2025-11-20")

	// Posting date 3 ngày trước, đang In Progress
	meta := ComputeDueMetaAt("2025-11-17", "IN_PROGRESS", today)

	assert.True(t, meta.HasDueDate)
	assert.Equal(t, -3, meta.DaysUntilDue)
	assert.True(t, meta.IsOverdue)
	assert.False(t, meta.IsUrgent)
	assert.False(t, meta.IsSoon)
}

func TestComputeDueMetaAt_Buckets(t *testing.T) {
	today := mustDate(t, "2025-11-20")

	tests := []struct {
		postingDate string
		wantDays    int
		wantOverdue bool
		wantUrgent  bool
		wantSoon    bool
	}{
		{"2025-11-19", -1, true, false, false},
		{"2025-11-20", 0, false, true, false}, // Hôm nay = urgent
		{"2025-11-22", 2, false, true, false}, // Biên trên urgent
		{"2025-11-23", 3, false, false, true}, // Biên dưới soon
		{"2025-11-27", 7, false, false, true}, // Biên trên soon
		{"2025-11-28", 8, false, false, false},
	}

	for _, tt := range tests {
		meta := ComputeDueMetaAt(tt.postingDate, "IN_QUEUE", today)
		assert.Equal(t, tt.wantDays, meta.DaysUntilDue, "days cho %s", tt.postingDate)
		assert.Equal(t, tt.wantOverdue, meta.IsOverdue, "overdue cho %s", tt.postingDate)
		assert.Equal(t, tt.wantUrgent, meta.IsUrgent, "urgent cho %s", tt.postingDate)
		assert.Equal(t, tt.wantSoon, meta.IsSoon, "soon cho %s", tt.postingDate)
	}
}

func TestComputeDueMetaAt_TerminalStatusSuppresses(t *testing.T) {
	today := mustDate(t, "2025-11-20")

	for _, status := range []string{"DONE", "BLOCKED", "✅ Done", "🚫 Blocked"} {
		meta := ComputeDueMetaAt("2025-11-10", status, today)
		assert.True(t, meta.HasDueDate)
		assert.Equal(t, -10, meta.DaysUntilDue, "số ngày vẫn tính cho %s", status)
		assert.False(t, meta.IsOverdue, "overdue phải tắt cho %s", status)
		assert.False(t, meta.IsUrgent)
		assert.False(t, meta.IsSoon)
	}
}

func TestComputeDueMetaAt_MutualExclusion(t *testing.T) {
	today := mustDate(t, "2025-11-20")

	for offset := -30; offset <= 30; offset++ {
		due := utilityAddDays(t, today, offset)
		meta := ComputeDueMetaAt(due, "IN_PROGRESS", today)

		flags := 0
		if meta.IsOverdue {
			flags++
		}
		if meta.IsUrgent {
			flags++
		}
		if meta.IsSoon {
			flags++
		}
		assert.LessOrEqual(t, flags, 1, "tối đa một cờ true tại offset %d", offset)
	}
}

func TestComputeDueMetaAt_MissingOrInvalidDate(t *testing.T) {
	today := mustDate(t, "2025-11-20")

	assert.Equal(t, DueMeta{}, ComputeDueMetaAt("", "IN_QUEUE", today))
	assert.Equal(t, DueMeta{}, ComputeDueMetaAt("not-a-date", "IN_QUEUE", today))
}

func TestComputeEventDueMeta(t *testing.T) {
	today := mustDate(t, "2025-11-20")
	event := &models.Event{PostingDate: "2025-11-21", Status: "🔄 In Progress"}

	meta := ComputeEventDueMeta(event, today)

	assert.Equal(t, 1, meta.DaysUntilDue)
	assert.True(t, meta.IsUrgent)
}

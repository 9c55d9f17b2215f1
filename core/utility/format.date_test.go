package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDate(t *testing.T) {
	d, err := ParseLocalDate("2025-11-02")
	require.NoError(t, err)

	// Neo ở midnight local, không phải UTC
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.November, d.Month())
	assert.Equal(t, 2, d.Day())
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, time.Local, d.Location())

	_, err = ParseLocalDate("02/11/2025")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	a, _ := ParseLocalDate("2025-11-02")
	b, _ := ParseLocalDate("2025-11-16")

	assert.Equal(t, 14, DaysBetween(a, b))
	assert.Equal(t, -14, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))

	// Giờ trong ngày không ảnh hưởng: cả hai đều normalize về midnight
	assert.Equal(t, 14, DaysBetween(a.Add(23*time.Hour), b.Add(1*time.Minute)))
}

func TestAddDaysLocal(t *testing.T) {
	base, _ := ParseLocalDate("2025-11-02")

	assert.Equal(t, "2025-11-16", FormatLocalYMD(AddDaysLocal(base, 14)))
	assert.Equal(t, "2025-10-19", FormatLocalYMD(AddDaysLocal(base, -14)))
	// Qua ranh giới năm
	assert.Equal(t, "2026-01-01", FormatLocalYMD(AddDaysLocal(base, 60)))
}

func TestNormalizeLocalMidnight(t *testing.T) {
	noon := time.Date(2025, 11, 2, 12, 30, 45, 0, time.Local)
	mid := NormalizeLocalMidnight(noon)

	assert.Equal(t, 0, mid.Hour())
	assert.Equal(t, 0, mid.Minute())
	assert.Equal(t, "2025-11-02", FormatLocalYMD(mid))
}

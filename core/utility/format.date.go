package utility

import (
	"math"
	"time"
)

// DateLayout là format ngày dùng xuyên suốt hệ thống (date-only, không giờ)
const DateLayout = "2006-01-02"

// ParseLocalDate parse chuỗi YYYY-MM-DD thành midnight theo giờ địa phương
// Neo ở midnight local để tránh lệch ngày do timezone (không bao giờ UTC-shift)
func ParseLocalDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, dateStr, time.Local)
}

// FormatLocalYMD format ngày thành chuỗi YYYY-MM-DD
func FormatLocalYMD(t time.Time) string {
	return t.Format(DateLayout)
}

// NormalizeLocalMidnight đưa một thời điểm về midnight local cùng ngày
func NormalizeLocalMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// DaysBetween đếm số ngày lịch từ a đến b (âm nếu b trước a)
// Cả hai được normalize về midnight local; round để hấp thụ chênh ±1h do DST
func DaysBetween(a, b time.Time) int {
	from := NormalizeLocalMidnight(a)
	to := NormalizeLocalMidnight(b)
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// AddDaysLocal cộng số ngày lịch vào một ngày, giữ neo midnight local
func AddDaysLocal(t time.Time, days int) time.Time {
	return NormalizeLocalMidnight(t).AddDate(0, 0, days)
}

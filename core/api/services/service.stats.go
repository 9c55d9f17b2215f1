package services

import (
	"time"

	"msa_center/core/api/models"
)

// EventStats là số liệu tổng hợp cho dashboard header
// Bất biến: Total = Pending + Completed; Overdue đếm độc lập (là tập con
// của Pending vì event terminal không bao giờ overdue)
type EventStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`   // Chưa Done (kể cả Blocked)
	Completed int `json:"completed"` // Done
	Overdue   int `json:"overdue"`   // Quá posting date và chưa terminal
}

// ComputeEventStatsAt tổng hợp số liệu trên một batch event tại thời điểm today
// Thứ tự event không ảnh hưởng kết quả
func ComputeEventStatsAt(events []*models.Event, today time.Time) EventStats {
	stats := EventStats{Total: len(events)}
	for _, e := range events {
		if e.IsDone() {
			stats.Completed++
			continue
		}
		stats.Pending++
		if ComputeEventDueMeta(e, today).IsOverdue {
			stats.Overdue++
		}
	}
	return stats
}

// ComputeStatusSummary đếm số event theo từng display status
// Status lạ (pass-through) vẫn được đếm dưới giá trị gốc của nó
func ComputeStatusSummary(events []*models.Event) map[string]int {
	summary := make(map[string]int, len(models.CanonicalStatuses()))
	for _, e := range events {
		summary[e.Status]++
	}
	return summary
}

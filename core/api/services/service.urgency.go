package services

import (
	"time"

	"msa_center/core/api/models"
	"msa_center/core/utility"
)

// DueMeta là phân loại độ gấp của một event theo posting date
// Ba flag loại trừ lẫn nhau, tối đa một cái true
type DueMeta struct {
	HasDueDate   bool `json:"has_due_date"`
	DaysUntilDue int  `json:"days_until_due"` // Âm nếu đã quá hạn
	IsOverdue    bool `json:"is_overdue"`     // < 0 ngày
	IsUrgent     bool `json:"is_urgent"`      // 0-2 ngày
	IsSoon       bool `json:"is_soon"`        // 3-7 ngày
}

// ComputeDueMetaAt phân loại độ gấp của một event tại thời điểm today
// Event đã Done hoặc Blocked không bao giờ gấp, kể cả khi quá hạn
// Posting date rỗng hoặc không parse được coi như không có hạn
func ComputeDueMetaAt(postingDate string, status string, today time.Time) DueMeta {
	if postingDate == "" {
		return DueMeta{}
	}
	due, err := utility.ParseLocalDate(postingDate)
	if err != nil {
		return DueMeta{}
	}

	days := utility.DaysBetween(today, due)
	meta := DueMeta{
		HasDueDate:   true,
		DaysUntilDue: days,
	}

	if models.IsTerminalStatus(status) {
		return meta
	}

	switch {
	case days < 0:
		meta.IsOverdue = true
	case days <= 2:
		meta.IsUrgent = true
	case days <= 7:
		meta.IsSoon = true
	}
	return meta
}

// ComputeEventDueMeta là shortcut cho một event đã chuẩn hóa
func ComputeEventDueMeta(e *models.Event, today time.Time) DueMeta {
	return ComputeDueMetaAt(e.PostingDate, e.Status, today)
}

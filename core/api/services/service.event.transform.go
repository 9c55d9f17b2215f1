package services

import (
	"msa_center/core/api/models"
	"msa_center/core/utility"
)

// RequestToEvent chuẩn hóa một MarketingRequest wire record thành Event
// view-model. Hàm thuần: không gọi mạng, không đụng state, gọi lại nhiều
// lần trên cùng input cho cùng output
//   - ID dạng chuỗi hoặc null, không bao giờ là số
//   - Status chuyển sang dạng hiển thị có emoji
//   - Các field *_name để null, enrichment điền sau
func RequestToEvent(req *models.MarketingRequest) *models.Event {
	channelID := req.ChannelID.StringPtr()

	return &models.Event{
		ID:        channelID,
		ChannelID: channelID,

		Title:       req.Title,
		Description: req.Description,
		RequestType: req.RequestType,
		Status:      models.ToDisplayStatus(req.Status),

		PostingDate: req.PostingDate,
		CreatedAt:   req.CreatedAt,
		UpdatedAt:   req.UpdatedAt,

		RequesterID:           req.RequesterID.StringPtr(),
		RequesterDepartmentID: req.RequesterDepartmentID.StringPtr(),
		AssignedToID:          req.AssignedToID.StringPtr(),
		AdditionalAssigneeID:  req.AdditionalAsigneeID.StringPtr(),

		Room:      req.Room,
		SignupURL: req.SignupURL,

		Department:    models.DefaultDepartment,
		DepartmentKey: models.DefaultDepartmentKey,
	}
}

// TransformAll chuẩn hóa một batch request thành event, giữ nguyên thứ tự.
// Không enrichment ở đây: caller gom batch rồi gọi enrichment một lần
func TransformAll(requests []models.MarketingRequest) []*models.Event {
	events := make([]*models.Event, 0, len(requests))
	for i := range requests {
		events = append(events, RequestToEvent(&requests[i]))
	}
	return events
}

// departmentSlug tính lại department key từ tên đã resolve
func departmentSlug(name string) string {
	if name == "" {
		return models.DefaultDepartmentKey
	}
	return utility.SlugKey(name)
}

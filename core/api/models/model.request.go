package models

// MarketingRequest là record request marketing theo format wire của backend
// Các field ID dùng SnowflakeID: decoder đã sửa ID ≥15 chữ số thành chuỗi trong
// raw text, ID ngắn hơn vẫn tới dưới dạng số và được SnowflakeID nhận cả hai
type MarketingRequest struct {
	ChannelID             SnowflakeID `json:"channelID"`
	Title                 string      `json:"title"`
	Description           string      `json:"description"`
	RequestType           string      `json:"requestType"` // POST | REEL | giá trị khác
	Status                string      `json:"status"`      // IN_QUEUE | IN_PROGRESS | AWAITING_POSTING | DONE | BLOCKED
	PostingDate           string      `json:"postingDate"` // YYYY-MM-DD
	CreatedAt             string      `json:"createdAt"`
	UpdatedAt             string      `json:"updatedAt"`
	RequesterID           SnowflakeID `json:"requesterID"`
	RequesterDepartmentID SnowflakeID `json:"requesterDepartmentID"`
	AssignedToID          SnowflakeID `json:"assignedToID"`
	// Backend giữ nguyên lỗi chính tả "Asignee" trong tên field, không sửa được phía client
	AdditionalAsigneeID SnowflakeID `json:"additionalAsigneeID"`
	Room                string      `json:"room,omitempty"`
	SignupURL           string      `json:"signupUrl,omitempty"`
}

// DepartmentCount là số lượng request theo phòng ban từ backend
type DepartmentCount struct {
	DepartmentID SnowflakeID `json:"departmentId"`
	Count        int         `json:"count"`
}

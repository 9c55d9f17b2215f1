package dto

// CreateRequestInput là dữ liệu đầu vào để tạo marketing request mới
// Các field ID là chuỗi thập phân (validator snowflake), date là YYYY-MM-DD
type CreateRequestInput struct {
	ChannelID             string `json:"channelID" validate:"required,snowflake"`
	Title                 string `json:"title" validate:"required,min=1,max=200"`
	Description           string `json:"description" validate:"max=4000"`
	RequestType           string `json:"requestType" validate:"omitempty,oneof=POST REEL"`
	Status                string `json:"status" validate:"omitempty,request_status"`
	PostingDate           string `json:"postingDate" validate:"required,ymd_date"`
	RequesterID           string `json:"requesterID" validate:"required,snowflake"`
	RequesterDepartmentID string `json:"requesterDepartmentID" validate:"omitempty,snowflake"`
	AssignedToID          string `json:"assignedToID" validate:"omitempty,snowflake"`
	AdditionalAsigneeID   string `json:"additionalAsigneeID" validate:"omitempty,snowflake"`
	Room                  string `json:"room" validate:"max=100"`
	SignupURL             string `json:"signupUrl" validate:"omitempty,url"`
}

// UpdateRequestInput là dữ liệu đầu vào để cập nhật marketing request
// Mọi field đều optional, chỉ field có giá trị mới được gửi lên backend
type UpdateRequestInput struct {
	Title                 string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description           string `json:"description,omitempty" validate:"omitempty,max=4000"`
	RequestType           string `json:"requestType,omitempty" validate:"omitempty,oneof=POST REEL"`
	Status                string `json:"status,omitempty" validate:"omitempty,request_status"`
	PostingDate           string `json:"postingDate,omitempty" validate:"omitempty,ymd_date"`
	RequesterDepartmentID string `json:"requesterDepartmentID,omitempty" validate:"omitempty,snowflake"`
	AssignedToID          string `json:"assignedToID,omitempty" validate:"omitempty,snowflake"`
	AdditionalAsigneeID   string `json:"additionalAsigneeID,omitempty" validate:"omitempty,snowflake"`
	Room                  string `json:"room,omitempty" validate:"omitempty,max=100"`
	SignupURL             string `json:"signupUrl,omitempty" validate:"omitempty,url"`
}

// CreateAuditEventInput là dữ liệu đầu vào để ghi audit event qua backend
type CreateAuditEventInput struct {
	EventType    string `json:"eventType" validate:"required,max=64"`
	EntityType   string `json:"entityType" validate:"required,max=64"`
	EntityID     string `json:"entityId" validate:"required"`
	EventDetails string `json:"eventDetails" validate:"max=2000"`
	PerformedBy  string `json:"performedBy" validate:"required"`
}

package models

// Sentinel strings cho render: model giữ null, chỉ tầng hiển thị mới thay fallback
const (
	DisplayUnassigned = "Unassigned"
	DisplayUnknown    = "Unknown"

	// Phòng ban mặc định trước khi enrichment resolve được tên thật
	DefaultDepartment    = "Marketing"
	DefaultDepartmentKey = "marketing"
)

// Event là view-model chuẩn cho UI, build một lần từ MarketingRequest
// Bất biến: mọi field identifier là null hoặc chuỗi thập phân (không bao giờ là số);
// các field *_name khởi tạo null và chỉ được enrichment ghi đè sau khi build
type Event struct {
	ID        *string `json:"id"`
	ChannelID *string `json:"channel_id"`

	Title       string `json:"title"`
	Description string `json:"description"`
	RequestType string `json:"request_type"` // Enum thô (POST/REEL), format emoji chỉ ở render
	Status      string `json:"status"` // Dạng hiển thị (emoji prefix)

	PostingDate string `json:"posting_date"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`

	RequesterID             *string `json:"requester_id"`
	RequesterName           *string `json:"requester_name"`
	RequesterDepartmentID   *string `json:"requester_department_id"`
	RequesterDepartmentName *string `json:"requester_department_name"`
	AssignedToID            *string `json:"assigned_to_id"`
	AssignedToName          *string `json:"assigned_to_name"`
	AdditionalAssigneeID    *string `json:"additional_assignee_id"`
	AdditionalAssigneeName  *string `json:"additional_assignee_name"`

	Room      string `json:"room"`
	SignupURL string `json:"signup_url"`

	Department    string `json:"department"`
	DepartmentKey string `json:"department_key"` // slug lowercase, whitespace → hyphen

	Notes string `json:"notes"`
}

// DisplayRequester trả về tên requester hoặc sentinel "Unknown"
// Fallback xảy ra lúc render, không bao giờ ghi vào model
func (e *Event) DisplayRequester() string {
	if e.RequesterName != nil && *e.RequesterName != "" {
		return *e.RequesterName
	}
	return DisplayUnknown
}

// DisplayAssignee trả về tên người được giao hoặc sentinel "Unassigned"
func (e *Event) DisplayAssignee() string {
	if e.AssignedToName != nil && *e.AssignedToName != "" {
		return *e.AssignedToName
	}
	return DisplayUnassigned
}

// DisplayDepartment trả về tên phòng ban đã resolve hoặc sentinel "Unknown"
func (e *Event) DisplayDepartment() string {
	if e.RequesterDepartmentName != nil && *e.RequesterDepartmentName != "" {
		return *e.RequesterDepartmentName
	}
	return DisplayUnknown
}

// DisplayRequestType trả về loại request ở dạng hiển thị có emoji
// Model giữ enum thô để giá trị round-trip được vào các request update
func (e *Event) DisplayRequestType() string {
	return FormatRequestType(e.RequestType)
}

// IsDone kiểm tra event đã hoàn thành chưa
func (e *Event) IsDone() bool {
	return IsDoneStatus(e.Status)
}

// IsBlocked kiểm tra event có bị block không
func (e *Event) IsBlocked() bool {
	return IsBlockedStatus(e.Status)
}

package models

// Trạng thái request theo enum của backend
const (
	StatusInQueue         = "IN_QUEUE"
	StatusInProgress      = "IN_PROGRESS"
	StatusAwaitingPosting = "AWAITING_POSTING"
	StatusDone            = "DONE"
	StatusBlocked         = "BLOCKED"
)

// Trạng thái hiển thị trên UI (có emoji prefix)
const (
	DisplayInQueue         = "📥 In Queue"
	DisplayInProgress      = "🔄 In Progress"
	DisplayAwaitingPosting = "⏳ Awaiting Posting"
	DisplayDone            = "✅ Done"
	DisplayBlocked         = "🚫 Blocked"
)

// displayToAPI map trạng thái hiển thị → enum backend
// Bao gồm alias cũ "Awaiting Approval" và các giá trị enum tự ánh xạ
// (client có thể đã có sẵn enum trong tay)
var displayToAPI = map[string]string{
	DisplayInQueue:         StatusInQueue,
	DisplayInProgress:      StatusInProgress,
	"⏳ Awaiting Approval":  StatusAwaitingPosting,
	DisplayAwaitingPosting: StatusAwaitingPosting,
	DisplayDone:            StatusDone,
	DisplayBlocked:         StatusBlocked,
	StatusInQueue:          StatusInQueue,
	StatusInProgress:       StatusInProgress,
	StatusAwaitingPosting:  StatusAwaitingPosting,
	StatusDone:             StatusDone,
	StatusBlocked:          StatusBlocked,
}

// apiToDisplay map enum backend → trạng thái hiển thị
var apiToDisplay = map[string]string{
	StatusInQueue:         DisplayInQueue,
	StatusInProgress:      DisplayInProgress,
	StatusAwaitingPosting: DisplayAwaitingPosting,
	StatusDone:            DisplayDone,
	StatusBlocked:         DisplayBlocked,
}

// ToAPIStatus chuyển trạng thái hiển thị sang enum backend
// Giá trị không có trong bảng được trả về nguyên vẹn: backend có thể thêm
// trạng thái mới mà client chưa biết (forward compatibility, không phải bug)
func ToAPIStatus(status string) string {
	if api, ok := displayToAPI[status]; ok {
		return api
	}
	return status
}

// ToDisplayStatus chuyển enum backend sang trạng thái hiển thị
// Giá trị không có trong bảng được trả về nguyên vẹn
func ToDisplayStatus(apiStatus string) string {
	if display, ok := apiToDisplay[apiStatus]; ok {
		return display
	}
	return apiStatus
}

// statusColors map enum backend → màu hiển thị cho calendar/kanban
var statusColors = map[string]string{
	StatusInQueue:         "#6c757d",
	StatusInProgress:      "#007bff",
	StatusAwaitingPosting: "#ffc107",
	StatusDone:            "#28a745",
	StatusBlocked:         "#dc3545",
}

// StatusColor trả về màu hex cho trạng thái (nhận cả dạng hiển thị lẫn enum)
func StatusColor(status string) string {
	if color, ok := statusColors[ToAPIStatus(status)]; ok {
		return color
	}
	return "#6c757d"
}

// IsTerminalStatus kiểm tra trạng thái có phải terminal (Done/Blocked) không
// Trạng thái terminal triệt tiêu mọi cờ urgency bất kể posting date
func IsTerminalStatus(status string) bool {
	api := ToAPIStatus(status)
	return api == StatusDone || api == StatusBlocked
}

// IsDoneStatus kiểm tra trạng thái Done (nhận cả hai dạng)
func IsDoneStatus(status string) bool {
	return ToAPIStatus(status) == StatusDone
}

// IsBlockedStatus kiểm tra trạng thái Blocked (nhận cả hai dạng)
func IsBlockedStatus(status string) bool {
	return ToAPIStatus(status) == StatusBlocked
}

// requestTypeDisplay map loại request → dạng hiển thị
var requestTypeDisplay = map[string]string{
	"POST": "📱 POST",
	"REEL": "📹 REEL",
}

// FormatRequestType chuyển loại request sang dạng hiển thị
// Rỗng → "General", loại chưa biết giữ nguyên
func FormatRequestType(requestType string) string {
	if requestType == "" {
		return "General"
	}
	if display, ok := requestTypeDisplay[requestType]; ok {
		return display
	}
	return requestType
}

// CanonicalStatuses trả về danh sách 5 trạng thái chuẩn theo enum backend
func CanonicalStatuses() []string {
	return []string{StatusInQueue, StatusInProgress, StatusAwaitingPosting, StatusDone, StatusBlocked}
}

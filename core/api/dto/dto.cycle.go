package dto

// DevelopmentCycle mô tả một chu kỳ development từ backend workload API
// Dates là chuỗi YYYY-MM-DD, khoảng [developmentStart, developmentEnd] inclusive
type DevelopmentCycle struct {
	CycleNumber      int    `json:"cycleNumber"`
	DevelopmentStart string `json:"developmentStart"`
	DevelopmentEnd   string `json:"developmentEnd"`
}

// CycleInfo là response của GET /api/workload/cycle-info
// NextDevelopmentCycle có thể vắng mặt; khi đó client tự tính từ chu kỳ hiện tại
type CycleInfo struct {
	CurrentDevelopmentCycle *DevelopmentCycle `json:"currentDevelopmentCycle"`
	NextDevelopmentCycle    *DevelopmentCycle `json:"nextDevelopmentCycle,omitempty"`
}

// CycleProgress là tiến độ của chu kỳ hiện tại, tính từ "hôm nay"
type CycleProgress struct {
	TotalDays     int `json:"totalDays"`
	DaysElapsed   int `json:"daysElapsed"`
	DaysRemaining int `json:"daysRemaining"`
	Percent       int `json:"percent"` // 0-100, đã clamp
}

// CycleHighlight là kết quả phân loại pha chu kỳ cho một ngày tham chiếu
// Phục vụ calendar hover: request/production/posting là ba chu kỳ liên tiếp
type CycleHighlight struct {
	ReferenceDate string       `json:"referenceDate"`
	Reversed      bool         `json:"reversed"` // true = ngày tham chiếu nằm trong pha posting
	Request       *CycleWindow `json:"request,omitempty"`
	Production    *CycleWindow `json:"production,omitempty"`
	Posting       *CycleWindow `json:"posting,omitempty"`
}

// CycleWindow là một cửa sổ chu kỳ cụ thể với số thứ tự và khoảng ngày inclusive
type CycleWindow struct {
	CycleNumber int    `json:"cycleNumber"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

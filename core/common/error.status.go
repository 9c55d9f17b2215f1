package common

import (
	"errors"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200 // Thành công
	StatusCreated   = 201 // Tạo mới thành công
	StatusNoContent = 204 // Thành công nhưng không có nội dung trả về

	// Client Error Codes (4xx)
	StatusBadRequest      = 400 // Yêu cầu không hợp lệ
	StatusUnauthorized    = 401 // Chưa xác thực
	StatusForbidden       = 403 // Không có quyền truy cập
	StatusNotFound        = 404 // Không tìm thấy tài nguyên
	StatusConflict        = 409 // Xung đột dữ liệu
	StatusTooManyRequests = 429 // Quá nhiều yêu cầu

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Lỗi server
	StatusBadGateway          = 502 // Gateway không hợp lệ
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
	StatusGatewayTimeout      = 504 // Gateway timeout
)

// Response Messages
const (
	// Success Messages
	MsgSuccess   = "Thao tác thành công"
	MsgCreated   = "Tạo mới thành công"
	MsgNoContent = "Không có nội dung trả về"

	// Error Messages
	MsgBadRequest      = "Yêu cầu không hợp lệ"
	MsgUnauthorized    = "Vui lòng đăng nhập"
	MsgForbidden       = "Không có quyền truy cập"
	MsgNotFound        = "Không tìm thấy tài nguyên"
	MsgTooManyRequests = "Quá nhiều yêu cầu"
	MsgInternalError   = "Lỗi hệ thống"

	// Token Messages
	MsgTokenMissing = "Thiếu token xác thực"
	MsgTokenInvalid = "Token không hợp lệ"
	MsgTokenExpired = "Token đã hết hạn"

	// Validation Messages
	MsgValidationError = "Dữ liệu không hợp lệ"
	MsgInvalidFormat   = "Định dạng dữ liệu không hợp lệ"

	// Backend Messages
	MsgBackendTimeout   = "Backend không phản hồi trong thời gian cho phép"
	MsgBackendMalformed = "Backend trả về dữ liệu không đọc được"
	MsgBackendError     = "Backend trả về lỗi"
	MsgEnrichmentFailed = "Không tra cứu được tên hiển thị, dùng nhãn ID thay thế"
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: NET_001)
	Category    string // Phân loại lỗi (ví dụ: Network)
	SubCategory string // Phân loại con (ví dụ: Timeout)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Lỗi hệ thống nội bộ",
	}

	// Network Errors (NET_xxx) - lỗi tầng gọi backend
	ErrCodeNetwork = ErrorCode{
		Code:        "NET",
		Category:    "Network",
		SubCategory: "General",
		Description: "Lỗi mạng khi gọi backend",
	}

	ErrCodeNetworkTimeout = ErrorCode{
		Code:        "NET_001",
		Category:    "Network",
		SubCategory: "Timeout",
		Description: "Request tới backend vượt quá deadline",
	}

	ErrCodeNetworkConnection = ErrorCode{
		Code:        "NET_002",
		Category:    "Network",
		SubCategory: "Connection",
		Description: "Không kết nối được tới backend",
	}

	// Backend Response Errors (API_xxx) - lỗi tầng decode response
	ErrCodeAPIResponse = ErrorCode{
		Code:        "API",
		Category:    "Backend",
		SubCategory: "General",
		Description: "Lỗi response từ backend",
	}

	ErrCodeAPIMalformed = ErrorCode{
		Code:        "API_001",
		Category:    "Backend",
		SubCategory: "Decode",
		Description: "Response không phải JSON hợp lệ sau khi sửa ID lớn",
	}

	ErrCodeAPIStatus = ErrorCode{
		Code:        "API_002",
		Category:    "Backend",
		SubCategory: "Status",
		Description: "Backend trả về HTTP status lỗi",
	}

	// Authentication Errors (AUTH_xxx)
	ErrCodeAuth = ErrorCode{
		Code:        "AUTH",
		Category:    "Authentication",
		SubCategory: "General",
		Description: "Lỗi xác thực chung",
	}

	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Lỗi liên quan đến token",
	}

	ErrCodeAuthMembership = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Membership",
		Description: "Người dùng không thuộc Discord server yêu cầu",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "Lỗi xác thực dữ liệu chung",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Lỗi dữ liệu đầu vào",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Lỗi định dạng dữ liệu",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusiness = ErrorCode{
		Code:        "BIZ",
		Category:    "Business",
		SubCategory: "General",
		Description: "Lỗi logic nghiệp vụ chung",
	}

	ErrCodeBusinessEnrichment = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "Enrichment",
		Description: "Tra cứu bulk tên hiển thị thất bại, đã degrade sang nhãn ID",
	}
)

// Error định nghĩa cấu trúc lỗi chi tiết
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code
	Details    any       // Thông tin chi tiết thêm về lỗi (vd: body gốc từ backend)
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Is kiểm tra xem error có phải là target error không (hỗ trợ errors.Is)
// Hai *Error được coi là cùng loại khi trùng error code
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code
	}

	return false
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	// Network Errors
	ErrNetworkTimeout = NewError(ErrCodeNetworkTimeout, MsgBackendTimeout, StatusGatewayTimeout, nil)
	ErrConnection     = NewError(ErrCodeNetworkConnection, "Không kết nối được tới backend", StatusServiceUnavailable, nil)

	// Backend Response Errors
	ErrMalformedResponse = NewError(ErrCodeAPIMalformed, MsgBackendMalformed, StatusBadGateway, nil)

	// Authentication Errors
	ErrUnauthorized = NewError(ErrCodeAuthToken, MsgUnauthorized, StatusUnauthorized, nil)
	ErrForbidden    = NewError(ErrCodeAuthMembership, MsgForbidden, StatusForbidden, nil)
	ErrTokenExpired = NewError(ErrCodeAuthToken, MsgTokenExpired, StatusUnauthorized, nil)
	ErrTokenMissing = NewError(ErrCodeAuthToken, MsgTokenMissing, StatusUnauthorized, nil)

	// Validation Errors
	ErrInvalidInput  = NewError(ErrCodeValidationInput, MsgValidationError, StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, MsgInvalidFormat, StatusBadRequest, nil)

	// Business Errors
	ErrEnrichmentPartial = NewError(ErrCodeBusinessEnrichment, MsgEnrichmentFailed, StatusOK, nil)

	// Generic
	ErrNotFound = NewError(ErrCodeAPIStatus, MsgNotFound, StatusNotFound, nil)
)

// NewMalformedResponseError tạo lỗi MalformedResponse kèm status và body gốc
// Body gốc phải được giữ lại để debug, không được nuốt mất
func NewMalformedResponseError(httpStatus int, rawBody string, cause error) error {
	return &Error{
		Code:       ErrCodeAPIMalformed,
		Message:    MsgBackendMalformed,
		StatusCode: StatusBadGateway,
		Details: map[string]any{
			"backendStatus": httpStatus,
			"rawBody":       rawBody,
			"cause":         cause.Error(),
		},
	}
}

// NewBackendStatusError tạo lỗi từ HTTP status lỗi của backend
func NewBackendStatusError(httpStatus int, rawBody string) error {
	return &Error{
		Code:       ErrCodeAPIStatus,
		Message:    MsgBackendError,
		StatusCode: httpStatus,
		Details: map[string]any{
			"backendStatus": httpStatus,
			"rawBody":       rawBody,
		},
	}
}

// ConvertHTTPError chuyển đổi HTTP status lỗi từ backend sang lỗi hệ thống
// 401/403 có chính sách riêng (invalidate session), các status khác giữ nguyên status + body
func ConvertHTTPError(httpStatus int, rawBody string) error {
	switch httpStatus {
	case StatusUnauthorized:
		return ErrUnauthorized
	case StatusForbidden:
		return ErrForbidden
	case StatusNotFound:
		return ErrNotFound
	default:
		return NewBackendStatusError(httpStatus, rawBody)
	}
}

// IsTimeout kiểm tra error có phải timeout không (hỗ trợ wrapped errors)
func IsTimeout(err error) bool {
	return errors.Is(err, ErrNetworkTimeout)
}

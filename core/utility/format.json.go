package utility

import (
	"encoding/json"

	"msa_center/core/common"
	"msa_center/core/global"
)

// ResponseType định nghĩa kiểu response envelope thống nhất của gateway
type ResponseType struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
	Code    int         `json:"code"`
}

// Payload tạo payload với trạng thái, dữ liệu và thông điệp
func Payload(isSuccess bool, data interface{}, message string, statusCode ...int) map[string]interface{} {
	response := ResponseType{
		Status:  "error",
		Data:    data,
		Message: message,
		Code:    common.StatusInternalServerError,
	}

	if isSuccess {
		response.Status = "success"
		response.Code = common.StatusOK
	}

	if len(statusCode) > 0 {
		response.Code = statusCode[0]
	}

	result := make(map[string]interface{})
	result["status"] = response.Status
	result["data"] = response.Data
	result["message"] = response.Message
	result["code"] = response.Code

	return result
}

// FinalResponse tạo phản hồi cuối cùng dựa trên kết quả và lỗi
func FinalResponse(result interface{}, err error) map[string]interface{} {
	if err != nil {
		if customErr, ok := err.(*common.Error); ok {
			return Payload(false, customErr.Details, customErr.Message, customErr.StatusCode)
		}
		return Payload(false, nil, common.MsgInternalError, common.StatusInternalServerError)
	}
	return Payload(true, result, common.MsgSuccess, common.StatusOK)
}

// Convert2Struct chuyển đổi dữ liệu JSON thành struct
// Trả về nil nếu thành công, payload lỗi nếu parse thất bại
func Convert2Struct(data []byte, myStruct interface{}) map[string]interface{} {
	err := json.Unmarshal(data, myStruct)
	if err != nil {
		return Payload(false, err.Error(), common.MsgInvalidFormat, common.StatusBadRequest)
	}

	return nil
}

// ValidateStruct kiểm tra tính hợp lệ của struct theo các validate tags
// Trả về nil nếu hợp lệ, payload lỗi nếu không
func ValidateStruct(myStruct interface{}) map[string]interface{} {
	err := global.Validate.Struct(myStruct)
	if err != nil {
		return Payload(false, err.Error(), common.MsgValidationError, common.StatusBadRequest)
	}

	return nil
}

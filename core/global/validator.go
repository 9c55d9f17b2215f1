package global

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"msa_center/core/api/models"
)

// snowflakePattern kiểm tra chuỗi thập phân của Discord snowflake ID
// Snowflake thực tế dài 17-20 chữ số nhưng chấp nhận từ 1 chữ số
// (test fixtures và backend staging dùng ID ngắn)
var snowflakePattern = regexp.MustCompile(`^\d+$`)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("snowflake", validateSnowflake)
	_ = Validate.RegisterValidation("ymd_date", validateYMDDate)
	_ = Validate.RegisterValidation("request_status", validateRequestStatus)
}

// validateSnowflake kiểm tra identifier dạng chuỗi thập phân
// ID phải là string, không bao giờ là số (tránh mất độ chính xác qua float64)
func validateSnowflake(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Rỗng = optional, dùng kèm omitempty/required
	}
	return snowflakePattern.MatchString(value)
}

// validateYMDDate kiểm tra chuỗi ngày đúng định dạng YYYY-MM-DD
func validateYMDDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.ParseInLocation("2006-01-02", value, time.Local)
	return err == nil
}

// validateRequestStatus kiểm tra trạng thái thuộc 5 trạng thái chuẩn
// Chấp nhận cả dạng hiển thị lẫn enum backend (bảng ánh xạ hai chiều)
func validateRequestStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	api := models.ToAPIStatus(value)
	for _, s := range models.CanonicalStatuses() {
		if api == s {
			return true
		}
	}
	return false
}

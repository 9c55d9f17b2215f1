package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
)

// decimalPattern kiểm tra ID chỉ chứa chữ số thập phân
var decimalPattern = regexp.MustCompile(`^\d+$`)

// SnowflakeID là identifier dạng chuỗi thập phân cho các ID cỡ snowflake của Discord
// ID 64-bit sẽ mất độ chính xác nếu parse thành float64, nên luôn giữ dạng string
// Chuỗi rỗng nghĩa là "không có" và serialize thành null trên wire
type SnowflakeID string

// UnmarshalJSON chấp nhận cả dạng số lẫn dạng chuỗi từ backend
// Số nhỏ (<15 chữ số) có thể chưa được decoder sửa thành chuỗi, vẫn phải nhận được
func (s *SnowflakeID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = SnowflakeID(str)
		return nil
	}

	// Dạng số: giữ nguyên chuỗi chữ số gốc, không đi qua float64
	raw := string(data)
	if !decimalPattern.MatchString(raw) {
		return fmt.Errorf("snowflake ID không hợp lệ: %q", raw)
	}
	*s = SnowflakeID(raw)
	return nil
}

// MarshalJSON luôn serialize thành chuỗi (hoặc null nếu rỗng)
// Hợp đồng wire: identifier hai chiều đều là string để tránh mất độ chính xác
func (s SnowflakeID) MarshalJSON() ([]byte, error) {
	if s == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(s))
}

// IsZero kiểm tra ID có rỗng không
func (s SnowflakeID) IsZero() bool {
	return s == ""
}

// StringPtr trả về con trỏ chuỗi thập phân, hoặc nil nếu ID rỗng
// Dùng khi build Event: field identifier là null hoặc chuỗi, không bao giờ là số
func (s SnowflakeID) StringPtr() *string {
	if s == "" {
		return nil
	}
	v := string(s)
	return &v
}

// Valid kiểm tra ID khác rỗng và chỉ chứa chữ số thập phân
func (s SnowflakeID) Valid() bool {
	return s != "" && decimalPattern.MatchString(string(s))
}

package client

import (
	"encoding/json"
	"regexp"

	"msa_center/core/common"
)

// Backend (Spring Boot) trả ID Discord dạng số 64-bit. JSON parser mặc định
// đọc số thành float64 và lặng lẽ làm tròn mọi giá trị ≥15 chữ số, nên phải
// sửa raw text TRƯỚC khi parse: bọc các số lớn nằm sau field ID thành chuỗi.
//
// Danh sách field là closed set (cả biến thể chính tả "requesterDepartmentid"
// mà vài snapshot backend từng emit). Số dưới 15 chữ số giữ nguyên vì vẫn
// biểu diễn chính xác được trong double.

// idFieldNames là regex alternation của các field chứa ID cỡ snowflake
const idFieldNames = `channelID|requesterID|assignedToID|additionalAsigneeID|requesterDepartmentID|requesterDepartmentid|id|userId|roleId|guildId`

var (
	// "field": 123456789012345678  →  "field": "123456789012345678"
	scalarIDPattern = regexp.MustCompile(`"(` + idFieldNames + `)"\s*:\s*(\d{15,})`)

	// "field": [ ... ] — từng phần tử số trong mảng được xử lý riêng
	arrayIDPattern = regexp.MustCompile(`"(` + idFieldNames + `)"\s*:\s*\[([^\]]*)\]`)

	// Một phần tử số đủ dài để mất độ chính xác trong double
	// Nhánh có quote sẵn được match để giữ nguyên (tránh quote hai lần)
	bigDigitsPattern = regexp.MustCompile(`"\d{15,}"|\d{15,}`)
)

// RepairLargeIDs sửa raw JSON text: mọi giá trị số ≥15 chữ số gắn với một
// field ID đã biết (dạng scalar hoặc phần tử mảng) được bọc thành chuỗi
// Text không đụng tới phần còn lại, kể cả số lớn ở field không phải ID
func RepairLargeIDs(raw []byte) []byte {
	fixed := scalarIDPattern.ReplaceAll(raw, []byte(`"$1":"$2"`))

	fixed = arrayIDPattern.ReplaceAllFunc(fixed, func(match []byte) []byte {
		// Chỉ quote các run chữ số dài bên trong ngoặc vuông, từng phần tử một
		sub := arrayIDPattern.FindSubmatch(match)
		key, values := sub[1], sub[2]
		quoted := bigDigitsPattern.ReplaceAllFunc(values, func(digits []byte) []byte {
			if digits[0] == '"' {
				return digits // Đã là chuỗi, giữ nguyên
			}
			out := make([]byte, 0, len(digits)+2)
			out = append(out, '"')
			out = append(out, digits...)
			return append(out, '"')
		})
		result := make([]byte, 0, len(key)+len(quoted)+6)
		result = append(result, '"')
		result = append(result, key...)
		result = append(result, '"', ':', '[')
		result = append(result, quoted...)
		return append(result, ']')
	})

	return fixed
}

// DecodeResponse sửa ID lớn trong raw body rồi parse vào out
// Parse thất bại → MalformedResponse kèm HTTP status và body gốc (không nuốt lỗi)
func DecodeResponse(httpStatus int, raw []byte, out interface{}) error {
	if out == nil || len(raw) == 0 {
		return nil
	}

	repaired := RepairLargeIDs(raw)
	if err := json.Unmarshal(repaired, out); err != nil {
		return common.NewMalformedResponseError(httpStatus, string(raw), err)
	}

	return nil
}

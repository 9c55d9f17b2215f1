package utility

import (
	"regexp"
	"sort"
	"strings"
)

// whitespacePattern match mọi chuỗi whitespace liên tiếp
var whitespacePattern = regexp.MustCompile(`\s+`)

// SlugKey chuyển tên hiển thị thành key lọc: lowercase, whitespace → hyphen
// Ví dụ: "Media Team" → "media-team"
func SlugKey(name string) string {
	return whitespacePattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

// UniqueStrings trả về danh sách các chuỗi khác rỗng, loại trùng lặp, sorted
// Sort để kết quả ổn định (bulk request gửi lên backend luôn cùng thứ tự)
func UniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var result []string
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	sort.Strings(result)
	return result
}

// ContainsString kiểm tra slice có chứa giá trị không
func ContainsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

package logger

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// FilterHook lọc log entries trước khi đưa vào async queue
// Hỗ trợ hạ cấp các message lặp lại nhiều (vd: poll backend) và skip theo prefix
type FilterHook struct {
	mu           sync.RWMutex
	minLevel     logrus.Level
	skipPrefixes []string
}

// NewFilterHook tạo filter hook từ cấu hình logging
func NewFilterHook(cfg *LogConfig) *FilterHook {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}

	return &FilterHook{
		minLevel: level,
		// Các message bắt đầu bằng những prefix này chỉ ghi ở debug
		// (tránh spam log mỗi chu kỳ auto-refresh 5 phút)
		skipPrefixes: []string{
			"🔄 [REFRESH] tick",
		},
	}
}

// Levels trả về các log levels mà hook này xử lý
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đánh dấu các entry cần bỏ qua bằng field nội bộ
// Logrus không cho hook chặn entry, nên AsyncHook sẽ kiểm tra field này
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	// Entry đã ở debug/trace thì không cần hạ cấp nữa
	if entry.Level >= logrus.DebugLevel {
		return nil
	}

	for _, prefix := range h.skipPrefixes {
		if strings.HasPrefix(entry.Message, prefix) {
			entry.Level = logrus.DebugLevel
			break
		}
	}

	return nil
}

// AddSkipPrefix thêm một prefix message cần hạ cấp xuống debug
func (h *FilterHook) AddSkipPrefix(prefix string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.skipPrefixes = append(h.skipPrefixes, prefix)
}

package logger

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	Level  string // Log level: debug, info, warn, error
	Format string // Format: json hoặc text
	Output string // Output: file, stdout, both

	LogPath string // Thư mục chứa log files (tương đối so với root dir)

	AppFile         string // File log chính của ứng dụng
	AuditFile       string // File log audit
	PerformanceFile string // File log performance
	ErrorFile       string // File log errors

	MaxSize    int  // Kích thước tối đa mỗi file (MB) trước khi rotate
	MaxBackups int  // Số file cũ giữ lại
	MaxAge     int  // Số ngày giữ file cũ
	Compress   bool // Nén file cũ

	// ExcludePrefixes: các message prefix bị filter không ghi log
	// (ví dụ health check spam)
	ExcludePrefixes []string
}

// DefaultConfig trả về cấu hình logging mặc định
func DefaultConfig() *LogConfig {
	return &LogConfig{
		Level:           "info",
		Format:          "text",
		Output:          "both",
		LogPath:         "logs",
		AppFile:         "app.log",
		AuditFile:       "audit.log",
		PerformanceFile: "performance.log",
		ErrorFile:       "error.log",
		MaxSize:         100,
		MaxBackups:      5,
		MaxAge:          30,
		Compress:        true,
	}
}

// FilterHook đánh dấu các entry bị filter bằng field "_filtered".
// AsyncHook sẽ bỏ qua entry có đánh dấu này khi ghi.
type FilterHook struct {
	excludePrefixes []string
}

// NewFilterHook tạo filter hook từ config
func NewFilterHook(cfg *LogConfig) *FilterHook {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &FilterHook{excludePrefixes: cfg.ExcludePrefixes}
}

// Levels trả về các log level mà hook xử lý
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đánh dấu entry nếu message khớp prefix bị loại trừ
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	for _, prefix := range h.excludePrefixes {
		if strings.HasPrefix(entry.Message, prefix) {
			entry.Data["_filtered"] = true
			return nil
		}
	}
	return nil
}

// WithRequest trả về log entry kèm thông tin request (method, path, ip, request id)
func WithRequest(c fiber.Ctx) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields{
		"method":     c.Method(),
		"path":       c.Path(),
		"ip":         c.IP(),
		"request_id": c.Get("X-Request-ID"),
	})
}

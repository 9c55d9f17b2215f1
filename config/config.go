package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
// Nó chứa thông tin backend API và cấu hình chu kỳ content
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:"3000"`                 // Cổng hoặc địa chỉ listen đầy đủ (":8080", "0.0.0.0:8080")
	JwtSecret             string `env:"JWT_SECRET"`                                // Bí mật JWT để kiểm tra token inbound (để trống = tắt gate)
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// Backend API Configuration
	Backend_BaseURL        string `env:"BACKEND_BASE_URL,required"`               // URL của backend REST (Spring Boot)
	Backend_APIKey         string `env:"BACKEND_API_KEY"`                         // API key cho bot operations (optional)
	Backend_TimeoutSeconds int    `env:"BACKEND_TIMEOUT_SECONDS" envDefault:"10"` // Timeout cho mỗi outbound request (giây)

	// Data Refresh Configuration
	RefreshIntervalSeconds int `env:"REFRESH_INTERVAL_SECONDS" envDefault:"300"` // Chu kỳ auto-refresh dữ liệu (giây, mặc định 5 phút)

	// Cycle Configuration
	CycleStartDate  string `env:"CYCLE_START_DATE" envDefault:"2025-11-02"` // Ngày epoch của chu kỳ 0 (YYYY-MM-DD)
	CycleLengthDays int    `env:"CYCLE_LENGTH_DAYS" envDefault:"14"`        // Độ dài một chu kỳ (ngày)

	// Discord Configuration
	DiscordGuildID string `env:"DISCORD_GUILD_ID" envDefault:"1165706299393183754"` // Guild ID để tạo link channel

	// Frontend URL
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"` // URL frontend

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)
}

// ListenAddress chuẩn hóa giá trị ADDRESS thành địa chỉ listen
// Chấp nhận cả dạng cổng trần ("3000") lẫn địa chỉ đầy đủ (":8080",
// "0.0.0.0:8080") để không sinh ra địa chỉ lỗi kiểu "::8080"
func (cfg *Configuration) ListenAddress() string {
	if strings.Contains(cfg.Address, ":") {
		return cfg.Address
	}
	return ":" + cfg.Address
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Tìm thư mục config
	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			// Tìm thấy thư mục config/env
			envPath := filepath.Join(envDir, fmt.Sprintf("%s.env", env))
			return envPath
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env được cung cấp
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}

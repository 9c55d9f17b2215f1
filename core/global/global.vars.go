package global

import (
	"msa_center/config"

	"github.com/go-playground/validator/v10"
)

// Các biến toàn cục
var Validate *validator.Validate          // Biến để xác thực dữ liệu
var ServerConfig *config.Configuration    // Cấu hình của gateway

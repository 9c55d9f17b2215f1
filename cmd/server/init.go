package main

import (
	"msa_center/config"
	"msa_center/core/api/services"
	"msa_center/core/client"
	"msa_center/core/global"
	"msa_center/core/logger"
)

// Các thành phần dùng chung của process, khởi tạo một lần trong InitGlobal
var (
	apiClient    *client.ApiClient
	eventStore   *services.EventStore
	cycleService *services.CycleService
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initConfig()    // Khởi tạo cấu hình server
	initValidator() // Khởi tạo validator
	initServices()  // Khởi tạo client và các service
}

// Hàm khởi tạo cấu hình server từ env files và environment variables
func initConfig() {
	global.ServerConfig = config.NewConfig()
}

// Hàm khởi tạo validator với các custom validation
func initValidator() {
	global.InitValidator()
}

// Hàm khởi tạo backend client và các service của gateway
func initServices() {
	log := logger.GetAppLogger()
	cfg := global.ServerConfig

	apiClient = client.NewApiClient(cfg,
		client.WithUnauthorizedHandler(func() {
			log.Warn("Session backend hết hạn, cần đăng nhập lại")
		}),
		client.WithForbiddenHandler(func() {
			log.Warn("User không thuộc guild yêu cầu")
		}),
	)

	enricher := services.NewEnrichService(apiClient)
	eventStore = services.NewEventStore(apiClient, enricher)

	var err error
	cycleService, err = services.NewCycleService(cfg.CycleStartDate, cfg.CycleLengthDays, apiClient)
	if err != nil {
		log.Fatalf("Cấu hình CYCLE_START_DATE không hợp lệ: %v", err)
	}

	log.WithFields(map[string]interface{}{
		"backend":     cfg.Backend_BaseURL,
		"cycle_epoch": cfg.CycleStartDate,
		"cycle_days":  cfg.CycleLengthDays,
	}).Info("Services initialized")
}

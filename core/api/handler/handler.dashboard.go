package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"msa_center/core/api/services"
	"msa_center/core/common"
	"msa_center/core/logger"
	"msa_center/core/utility"
)

// DashboardHandler xử lý các request đọc của dashboard: collection event
// chuẩn hóa, số liệu tổng hợp và thông tin chu kỳ
type DashboardHandler struct {
	BaseHandler
	store *services.EventStore
	cycle *services.CycleService
}

// NewDashboardHandler tạo một instance mới của DashboardHandler
func NewDashboardHandler(store *services.EventStore, cycle *services.CycleService) *DashboardHandler {
	return &DashboardHandler{
		store: store,
		cycle: cycle,
	}
}

// HandleGetEvents trả về toàn bộ event đã chuẩn hóa và enrich
// Lần gọi đầu fetch từ backend, các lần sau dùng cache trong bộ nhớ
func (h *DashboardHandler) HandleGetEvents(c fiber.Ctx) error {
	events, err := h.store.LoadAll(c.Context())
	if err != nil {
		return h.HandleResponse(c, nil, err)
	}
	return h.HandleResponse(c, events, nil)
}

// HandleRefreshEvents bỏ qua cache, fetch mới từ backend
func (h *DashboardHandler) HandleRefreshEvents(c fiber.Ctx) error {
	events, err := h.store.ForceRefresh(c.Context())
	if err != nil {
		return h.HandleResponse(c, nil, err)
	}
	logger.WithRequest(c).WithField("events", len(events)).Info("Manual refresh events")
	return h.HandleResponse(c, events, nil)
}

// HandleGetStats trả về số liệu tổng hợp cho dashboard header
func (h *DashboardHandler) HandleGetStats(c fiber.Ctx) error {
	events, err := h.store.LoadAll(c.Context())
	if err != nil {
		return h.HandleResponse(c, nil, err)
	}
	stats := services.ComputeEventStatsAt(events, time.Now())
	return h.HandleResponse(c, stats, nil)
}

// HandleGetSummary trả về số lượng event theo từng display status
func (h *DashboardHandler) HandleGetSummary(c fiber.Ctx) error {
	events, err := h.store.LoadAll(c.Context())
	if err != nil {
		return h.HandleResponse(c, nil, err)
	}
	return h.HandleResponse(c, services.ComputeStatusSummary(events), nil)
}

// HandleGetCycleInfo trả về chu kỳ development hiện tại và kế tiếp
// Backend workload API lỗi thì trả tính toán local, không trả lỗi cho client
func (h *DashboardHandler) HandleGetCycleInfo(c fiber.Ctx) error {
	info := h.cycle.Resolve(c.Context(), time.Now())

	progress := interface{}(nil)
	if info.CurrentDevelopmentCycle != nil {
		if p, err := h.cycle.Progress(info.CurrentDevelopmentCycle, time.Now()); err == nil {
			progress = p
		}
	}

	return h.HandleResponse(c, fiber.Map{
		"cycle_info": info,
		"progress":   progress,
	}, nil)
}

// HandleCycleHighlight phân loại ba pha chu kỳ quanh một ngày tham chiếu
// Query: date=YYYY-MM-DD (bắt buộc), reversed=true|false (mặc định false)
func (h *DashboardHandler) HandleCycleHighlight(c fiber.Ctx) error {
	dateStr := c.Query("date", "")
	if dateStr == "" {
		return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu query param 'date'", common.StatusBadRequest, nil))
	}

	ref, err := utility.ParseLocalDate(dateStr)
	if err != nil {
		return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Query param 'date' phải theo định dạng YYYY-MM-DD", common.StatusBadRequest, err.Error()))
	}

	reversed := c.Query("reversed", "false") == "true"
	highlight := h.cycle.Highlight(ref, reversed)
	return h.HandleResponse(c, highlight, nil)
}

// HandleHealth trả về trạng thái gateway cho load balancer / monitoring
func (h *DashboardHandler) HandleHealth(c fiber.Ctx) error {
	loadedAt := h.store.LoadedAt()
	payload := fiber.Map{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}
	if !loadedAt.IsZero() {
		payload["events_loaded_at"] = loadedAt.Format(time.RFC3339)
	}
	return c.Status(common.StatusOK).JSON(payload)
}

package handler

import (
	"github.com/gofiber/fiber/v3"

	"msa_center/core/client"
	"msa_center/core/common"
)

// AuditHandler xử lý các request đọc audit log, pass-through tới backend
type AuditHandler struct {
	BaseHandler
	api *client.ApiClient
}

// NewAuditHandler tạo một instance mới của AuditHandler
func NewAuditHandler(api *client.ApiClient) *AuditHandler {
	return &AuditHandler{api: api}
}

// HandleList trả về toàn bộ audit event
func (h *AuditHandler) HandleList(c fiber.Ctx) error {
	result, err := h.api.GetAuditEvents(c.Context())
	return h.HandleResponse(c, result, err)
}

// HandleGetByID trả về một audit event theo ID
func (h *AuditHandler) HandleGetByID(c fiber.Ctx) error {
	result, err := h.api.GetAuditEventByID(c.Context(), c.Params("id"))
	return h.HandleResponse(c, result, err)
}

// HandleListByEntity trả về audit event của một entity
func (h *AuditHandler) HandleListByEntity(c fiber.Ctx) error {
	result, err := h.api.GetAuditEventsByEntity(c.Context(), c.Params("entityType"), c.Params("entityId"))
	return h.HandleResponse(c, result, err)
}

// HandleListByType trả về audit event theo loại sự kiện
func (h *AuditHandler) HandleListByType(c fiber.Ctx) error {
	result, err := h.api.GetAuditEventsByType(c.Context(), c.Params("eventType"))
	return h.HandleResponse(c, result, err)
}

// HandleListByUser trả về audit event do một user thực hiện
func (h *AuditHandler) HandleListByUser(c fiber.Ctx) error {
	result, err := h.api.GetAuditEventsByUser(c.Context(), c.Params("userId"))
	return h.HandleResponse(c, result, err)
}

// HandleListByDateRange trả về audit event trong khoảng thời gian
// Query: start, end theo YYYY-MM-DD
func (h *AuditHandler) HandleListByDateRange(c fiber.Ctx) error {
	start := c.Query("start", "")
	end := c.Query("end", "")
	if start == "" || end == "" {
		return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu query param 'start' hoặc 'end'", common.StatusBadRequest, nil))
	}
	result, err := h.api.GetAuditEventsByDateRange(c.Context(), start, end)
	return h.HandleResponse(c, result, err)
}

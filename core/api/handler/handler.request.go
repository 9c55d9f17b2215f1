package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"msa_center/core/api/dto"
	"msa_center/core/api/services"
	"msa_center/core/client"
	"msa_center/core/common"
	"msa_center/core/logger"
)

// RequestHandler xử lý các request CRUD marketing request, pass-through
// tới backend sau khi validate. Mọi mutation thành công sẽ refresh
// collection event và ghi audit event (best effort)
type RequestHandler struct {
	BaseHandler
	api   *client.ApiClient
	store *services.EventStore
}

// NewRequestHandler tạo một instance mới của RequestHandler
func NewRequestHandler(api *client.ApiClient, store *services.EventStore) *RequestHandler {
	return &RequestHandler{
		api:   api,
		store: store,
	}
}

// HandleGetByChannel trả về một request theo Discord channel ID
func (h *RequestHandler) HandleGetByChannel(c fiber.Ctx) error {
	channelID := c.Params("channelId")
	result, err := h.api.GetRequestByChannel(c.Context(), channelID)
	return h.HandleResponse(c, result, err)
}

// HandleListByStatus trả về các request theo trạng thái
// Nhận cả dạng hiển thị có emoji lẫn enum backend
func (h *RequestHandler) HandleListByStatus(c fiber.Ctx) error {
	status := c.Params("status")
	result, err := h.api.GetRequestsByStatus(c.Context(), status)
	return h.HandleResponse(c, result, err)
}

// HandleListByRequester trả về các request của một người yêu cầu
func (h *RequestHandler) HandleListByRequester(c fiber.Ctx) error {
	result, err := h.api.GetRequestsByRequester(c.Context(), c.Params("userId"))
	return h.HandleResponse(c, result, err)
}

// HandleListByAssignee trả về các request được giao cho một người
func (h *RequestHandler) HandleListByAssignee(c fiber.Ctx) error {
	result, err := h.api.GetRequestsByAssignee(c.Context(), c.Params("userId"))
	return h.HandleResponse(c, result, err)
}

// HandleListMine trả về các request của user đang đăng nhập
func (h *RequestHandler) HandleListMine(c fiber.Ctx) error {
	result, err := h.api.GetMyRequests(c.Context())
	return h.HandleResponse(c, result, err)
}

// HandleCountByDepartment trả về số request đang mở theo phòng ban
func (h *RequestHandler) HandleCountByDepartment(c fiber.Ctx) error {
	result, err := h.api.CountByDepartment(c.Context())
	return h.HandleResponse(c, result, err)
}

// HandleCreate tạo request mới sau khi validate input
func (h *RequestHandler) HandleCreate(c fiber.Ctx) error {
	var input dto.CreateRequestInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return h.HandleResponse(c, nil, err)
	}

	result, err := h.api.CreateRequest(c.Context(), &input)
	if err != nil {
		return h.HandleResponse(c, nil, err)
	}

	h.afterMutation(c, "REQUEST_CREATED", input.ChannelID, fmt.Sprintf("Tạo request %q", input.Title))
	return h.HandleResponse(c, result, nil)
}

// HandleUpdate cập nhật các trường của một request
func (h *RequestHandler) HandleUpdate(c fiber.Ctx) error {
	channelID := c.Params("channelId")

	var input dto.UpdateRequestInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return h.HandleResponse(c, nil, err)
	}

	result, err := h.api.UpdateRequest(c.Context(), channelID, &input)
	if err != nil {
		return h.HandleResponse(c, nil, err)
	}

	h.afterMutation(c, "REQUEST_UPDATED", channelID, "Cập nhật request")
	return h.HandleResponse(c, result, nil)
}

// HandleDelete xóa một request
func (h *RequestHandler) HandleDelete(c fiber.Ctx) error {
	channelID := c.Params("channelId")

	if err := h.api.DeleteRequest(c.Context(), channelID); err != nil {
		return h.HandleResponse(c, nil, err)
	}

	h.afterMutation(c, "REQUEST_DELETED", channelID, "Xóa request")
	return h.HandleResponse(c, fiber.Map{"deleted": channelID}, nil)
}

// assignInput là body cho PATCH assign
type assignInput struct {
	AssignedToID        string `json:"assignedToID" validate:"required,snowflake"`
	AdditionalAsigneeID string `json:"additionalAsigneeID" validate:"omitempty,snowflake"`
}

// HandleAssign gán người phụ trách cho một request
func (h *RequestHandler) HandleAssign(c fiber.Ctx) error {
	channelID := c.Params("channelId")

	var input assignInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return h.HandleResponse(c, nil, err)
	}

	result, err := h.api.AssignRequest(c.Context(), channelID, input.AssignedToID, input.AdditionalAsigneeID)
	if err != nil {
		return h.HandleResponse(c, nil, err)
	}

	h.afterMutation(c, "REQUEST_ASSIGNED", channelID, "Gán người phụ trách "+input.AssignedToID)
	return h.HandleResponse(c, result, nil)
}

// statusInput là body cho PATCH status
type statusInput struct {
	Status string `json:"status" validate:"required,request_status"`
}

// HandleUpdateStatus đổi trạng thái một request
func (h *RequestHandler) HandleUpdateStatus(c fiber.Ctx) error {
	channelID := c.Params("channelId")

	var input statusInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return h.HandleResponse(c, nil, err)
	}

	result, err := h.api.UpdateRequestStatus(c.Context(), channelID, input.Status)
	if err != nil {
		return h.HandleResponse(c, nil, err)
	}

	h.afterMutation(c, "STATUS_CHANGED", channelID, "Đổi trạng thái thành "+input.Status)
	return h.HandleResponse(c, result, nil)
}

// HandleAdvance đẩy request sang trạng thái kế tiếp trong pipeline
func (h *RequestHandler) HandleAdvance(c fiber.Ctx) error {
	channelID := c.Params("channelId")

	result, err := h.api.AdvanceRequestStatus(c.Context(), channelID)
	if err != nil {
		return h.HandleResponse(c, nil, err)
	}

	h.afterMutation(c, "STATUS_CHANGED", channelID, "Advance trạng thái")
	return h.HandleResponse(c, result, nil)
}

// departmentInput là body cho PATCH department
type departmentInput struct {
	Department string `json:"department" validate:"required,max=100"`
}

// HandleUpdateDepartment đổi phòng ban phụ trách của một request
func (h *RequestHandler) HandleUpdateDepartment(c fiber.Ctx) error {
	channelID := c.Params("channelId")

	var input departmentInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return h.HandleResponse(c, nil, err)
	}

	result, err := h.api.UpdateRequestDepartment(c.Context(), channelID, input.Department)
	if err != nil {
		return h.HandleResponse(c, nil, err)
	}

	h.afterMutation(c, "REQUEST_UPDATED", channelID, "Đổi phòng ban thành "+input.Department)
	return h.HandleResponse(c, result, nil)
}

// afterMutation refresh collection event và ghi audit event sau một mutation
// thành công. Cả hai đều best effort chạy nền: lỗi chỉ log, không ảnh hưởng
// response đã trả cho client
func (h *RequestHandler) afterMutation(c fiber.Ctx, eventType, channelID, details string) {
	performedBy := ""
	if uid, ok := c.Locals("user_id").(string); ok {
		performedBy = uid
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := h.store.ForceRefresh(ctx); err != nil {
			logger.GetAppLogger().WithError(err).Warn("Refresh events sau mutation thất bại")
		}

		if performedBy == "" {
			return
		}
		_, err := h.api.CreateAuditEvent(ctx, &dto.CreateAuditEventInput{
			EventType:    eventType,
			EntityType:   "REQUEST",
			EntityID:     channelID,
			EventDetails: details,
			PerformedBy:  performedBy,
		})
		if err != nil {
			logger.GetErrorLogger().WithError(err).WithField("event_type", eventType).Warn(common.MsgBackendError + ": audit event")
		}
	}()
}

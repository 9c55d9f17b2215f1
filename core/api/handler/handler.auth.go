package handler

import (
	"github.com/gofiber/fiber/v3"

	"msa_center/core/client"
	"msa_center/core/common"
	"msa_center/core/logger"
	"msa_center/core/utility"
)

// AuthHandler xử lý session với backend: nhận token sau OAuth flow,
// thông tin user hiện tại và logout
type AuthHandler struct {
	BaseHandler
	api     *client.ApiClient
	guildID string // Guild bắt buộc để dùng dashboard
}

// NewAuthHandler tạo một instance mới của AuthHandler
func NewAuthHandler(api *client.ApiClient, guildID string) *AuthHandler {
	return &AuthHandler{
		api:     api,
		guildID: guildID,
	}
}

// HandleLoginURL trả về URL bắt đầu OAuth flow với Discord
func (h *AuthHandler) HandleLoginURL(c fiber.Ctx) error {
	return h.HandleResponse(c, fiber.Map{"login_url": h.api.LoginURL()}, nil)
}

// tokenInput là body cho POST token
type tokenInput struct {
	Token string `json:"token" validate:"required"`
}

// HandleSetToken nhận JWT token từ frontend sau khi OAuth flow hoàn tất
// Token được kiểm tra bằng một call /api/auth/user trước khi chấp nhận
func (h *AuthHandler) HandleSetToken(c fiber.Ctx) error {
	var input tokenInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return h.HandleResponse(c, nil, err)
	}

	h.api.SetAuthToken(input.Token)

	user, err := h.api.GetCurrentUser(c.Context())
	if err != nil {
		h.api.ClearAuthToken()
		return h.HandleResponse(c, nil, err)
	}

	logger.WithRequest(c).WithField("user", user.Username).Info("Session established")
	return h.HandleResponse(c, user, nil)
}

// HandleGetCurrentUser trả về thông tin user Discord đang đăng nhập
func (h *AuthHandler) HandleGetCurrentUser(c fiber.Ctx) error {
	user, err := h.api.GetCurrentUser(c.Context())
	return h.HandleResponse(c, user, err)
}

// HandleCheckMembership kiểm tra user có thuộc guild cấu hình không
// Không thuộc guild trả ErrForbidden, phân biệt với 401 chưa đăng nhập
func (h *AuthHandler) HandleCheckMembership(c fiber.Ctx) error {
	guilds, err := h.api.GetUserGuilds(c.Context())
	if err != nil {
		return h.HandleResponse(c, nil, err)
	}

	ids := make([]string, 0, len(guilds))
	for _, g := range guilds {
		ids = append(ids, g.ID)
	}
	if !utility.ContainsString(ids, h.guildID) {
		return h.HandleResponse(c, nil, common.ErrForbidden)
	}

	return h.HandleResponse(c, fiber.Map{"guild_id": h.guildID, "member": true}, nil)
}

// HandleLogout kết thúc session với backend và xóa token local
func (h *AuthHandler) HandleLogout(c fiber.Ctx) error {
	if err := h.api.Logout(c.Context()); err != nil {
		// Token local đã xóa, lỗi backend chỉ log
		logger.GetAppLogger().WithError(err).Warn("Logout backend thất bại, session local đã xóa")
	}
	return h.HandleResponse(c, fiber.Map{"logged_out": true}, nil)
}

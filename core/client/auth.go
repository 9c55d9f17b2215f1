package client

import (
	"context"
	"net/http"

	"msa_center/core/api/dto"
)

// GetCurrentUser lấy thông tin user Discord đang đăng nhập
func (c *ApiClient) GetCurrentUser(ctx context.Context) (*dto.DiscordUser, error) {
	var out dto.DiscordUser
	if err := c.request(ctx, http.MethodGet, "/api/auth/user", nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUserGuilds lấy danh sách guild của user đang đăng nhập, dùng để
// kiểm tra membership với guild cấu hình
func (c *ApiClient) GetUserGuilds(ctx context.Context) ([]dto.DiscordGuild, error) {
	var out []dto.DiscordGuild
	if err := c.request(ctx, http.MethodGet, "/api/auth/guilds", nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// LoginURL trả về URL bắt đầu OAuth flow với Discord qua backend
func (c *ApiClient) LoginURL() string {
	return c.baseURL + "/oauth2/authorization/discord"
}

// Logout kết thúc session phía backend rồi xóa token local.
// Token local luôn được xóa kể cả khi backend trả lỗi
func (c *ApiClient) Logout(ctx context.Context) error {
	err := c.request(ctx, http.MethodPost, "/api/auth/logout", nil, nil, false)
	c.tokens.Clear()
	return err
}

// GetCycleInfo lấy thông tin chu kỳ phát triển hiện tại từ backend workload.
// Backend không có dữ liệu thì caller dùng tính toán local thay thế
func (c *ApiClient) GetCycleInfo(ctx context.Context) (*dto.CycleInfo, error) {
	var out dto.CycleInfo
	if err := c.request(ctx, http.MethodGet, "/api/workload/cycle-info", nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

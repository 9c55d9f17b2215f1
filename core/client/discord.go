package client

import (
	"context"
	"net/http"
	"net/url"

	"msa_center/core/api/dto"
)

// bulkLookupPayload là body chung cho hai endpoint tra cứu hàng loạt
type bulkLookupPayload struct {
	IDs []string `json:"ids"`
}

// GetDiscordUser tra cứu thông tin một Discord user theo ID
func (c *ApiClient) GetDiscordUser(ctx context.Context, userID string) (*dto.DiscordUser, error) {
	var out dto.DiscordUser
	if err := c.request(ctx, http.MethodGet, "/api/discord/users/"+url.PathEscape(userID), nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDiscordRole tra cứu tên một Discord role theo ID
func (c *ApiClient) GetDiscordRole(ctx context.Context, roleID string) (*dto.DiscordRole, error) {
	var out dto.DiscordRole
	if err := c.request(ctx, http.MethodGet, "/api/discord/roles/"+url.PathEscape(roleID), nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// BulkLookupUsers tra cứu tên hiển thị cho nhiều user trong một request.
// Backend trả map ID → display name; ID không tra được sẽ vắng mặt
// trong map và caller tự điền nhãn thay thế
func (c *ApiClient) BulkLookupUsers(ctx context.Context, ids []string) (dto.BulkLookupResult, error) {
	if len(ids) == 0 {
		return dto.BulkLookupResult{}, nil
	}
	var out dto.BulkLookupResult
	if err := c.request(ctx, http.MethodPost, "/api/discord/users/bulk", bulkLookupPayload{IDs: ids}, &out, false); err != nil {
		return nil, err
	}
	if out == nil {
		out = dto.BulkLookupResult{}
	}
	return out, nil
}

// BulkLookupRoles tra cứu tên cho nhiều role trong một request
func (c *ApiClient) BulkLookupRoles(ctx context.Context, ids []string) (dto.BulkLookupResult, error) {
	if len(ids) == 0 {
		return dto.BulkLookupResult{}, nil
	}
	var out dto.BulkLookupResult
	if err := c.request(ctx, http.MethodPost, "/api/discord/roles/bulk", bulkLookupPayload{IDs: ids}, &out, false); err != nil {
		return nil, err
	}
	if out == nil {
		out = dto.BulkLookupResult{}
	}
	return out, nil
}

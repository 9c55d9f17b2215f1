package client

import (
	"context"
	"net/http"
	"net/url"

	"msa_center/core/api/dto"
	"msa_center/core/api/models"
)

// GetAuditEvents lấy toàn bộ audit event
func (c *ApiClient) GetAuditEvents(ctx context.Context) ([]models.AuditEvent, error) {
	var out []models.AuditEvent
	if err := c.request(ctx, http.MethodGet, "/api/audit", nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAuditEventByID lấy một audit event theo ID
func (c *ApiClient) GetAuditEventByID(ctx context.Context, eventID string) (*models.AuditEvent, error) {
	var out models.AuditEvent
	if err := c.request(ctx, http.MethodGet, "/api/audit/"+url.PathEscape(eventID), nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAuditEventsByEntity lấy audit event theo entity (vd REQUEST + channel ID)
func (c *ApiClient) GetAuditEventsByEntity(ctx context.Context, entityType, entityID string) ([]models.AuditEvent, error) {
	var out []models.AuditEvent
	path := "/api/audit/entity/" + url.PathEscape(entityType) + "/" + url.PathEscape(entityID)
	if err := c.request(ctx, http.MethodGet, path, nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAuditEventsByType lấy audit event theo loại sự kiện
func (c *ApiClient) GetAuditEventsByType(ctx context.Context, eventType string) ([]models.AuditEvent, error) {
	var out []models.AuditEvent
	if err := c.request(ctx, http.MethodGet, "/api/audit/type/"+url.PathEscape(eventType), nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAuditEventsByUser lấy audit event do một user thực hiện
func (c *ApiClient) GetAuditEventsByUser(ctx context.Context, userID string) ([]models.AuditEvent, error) {
	var out []models.AuditEvent
	if err := c.request(ctx, http.MethodGet, "/api/audit/user/"+url.PathEscape(userID), nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAuditEventsByDateRange lấy audit event trong khoảng thời gian
// start và end theo định dạng YYYY-MM-DD
func (c *ApiClient) GetAuditEventsByDateRange(ctx context.Context, start, end string) ([]models.AuditEvent, error) {
	var out []models.AuditEvent
	q := url.Values{}
	q.Set("start", start)
	q.Set("end", end)
	if err := c.request(ctx, http.MethodGet, "/api/audit/daterange?"+q.Encode(), nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAuditEvent ghi một audit event mới
func (c *ApiClient) CreateAuditEvent(ctx context.Context, input *dto.CreateAuditEventInput) (*models.AuditEvent, error) {
	var out models.AuditEvent
	if err := c.request(ctx, http.MethodPost, "/api/audit", input, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

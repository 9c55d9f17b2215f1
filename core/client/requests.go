package client

import (
	"context"
	"net/http"
	"net/url"

	"msa_center/core/api/dto"
	"msa_center/core/api/models"
)

// GetAllRequests lấy toàn bộ marketing request từ backend
func (c *ApiClient) GetAllRequests(ctx context.Context) ([]models.MarketingRequest, error) {
	var out []models.MarketingRequest
	if err := c.request(ctx, http.MethodGet, "/api/requests", nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRequestByChannel lấy một request theo Discord channel ID
func (c *ApiClient) GetRequestByChannel(ctx context.Context, channelID string) (*models.MarketingRequest, error) {
	var out models.MarketingRequest
	if err := c.request(ctx, http.MethodGet, "/api/requests/"+url.PathEscape(channelID), nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRequestsByStatus lọc request theo trạng thái. Chấp nhận cả dạng
// hiển thị có emoji lẫn dạng API, luôn gửi dạng API lên backend
func (c *ApiClient) GetRequestsByStatus(ctx context.Context, status string) ([]models.MarketingRequest, error) {
	apiStatus := models.ToAPIStatus(status)
	var out []models.MarketingRequest
	if err := c.request(ctx, http.MethodGet, "/api/requests/status/"+url.PathEscape(apiStatus), nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRequestsByRequester lọc request theo người yêu cầu
func (c *ApiClient) GetRequestsByRequester(ctx context.Context, userID string) ([]models.MarketingRequest, error) {
	var out []models.MarketingRequest
	if err := c.request(ctx, http.MethodGet, "/api/requests/requester/"+url.PathEscape(userID), nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRequestsByAssignee lọc request theo người được giao
func (c *ApiClient) GetRequestsByAssignee(ctx context.Context, userID string) ([]models.MarketingRequest, error) {
	var out []models.MarketingRequest
	if err := c.request(ctx, http.MethodGet, "/api/requests/assignee/"+url.PathEscape(userID), nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMyRequests lấy các request của user đang đăng nhập (backend suy ra
// từ JWT, không cần truyền ID)
func (c *ApiClient) GetMyRequests(ctx context.Context) ([]models.MarketingRequest, error) {
	var out []models.MarketingRequest
	if err := c.request(ctx, http.MethodGet, "/api/requests/my-requests", nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRequest tạo request mới
func (c *ApiClient) CreateRequest(ctx context.Context, input *dto.CreateRequestInput) (*models.MarketingRequest, error) {
	var out models.MarketingRequest
	if err := c.request(ctx, http.MethodPost, "/api/requests", input, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRequest cập nhật các trường của một request
func (c *ApiClient) UpdateRequest(ctx context.Context, channelID string, input *dto.UpdateRequestInput) (*models.MarketingRequest, error) {
	var out models.MarketingRequest
	if err := c.request(ctx, http.MethodPut, "/api/requests/"+url.PathEscape(channelID), input, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRequest xóa một request, backend trả 204 khi thành công
func (c *ApiClient) DeleteRequest(ctx context.Context, channelID string) error {
	return c.request(ctx, http.MethodDelete, "/api/requests/"+url.PathEscape(channelID), nil, nil, true)
}

// AssignRequest gán người phụ trách chính và phụ cho một request
func (c *ApiClient) AssignRequest(ctx context.Context, channelID string, assigneeID string, additionalAssigneeID string) (*models.MarketingRequest, error) {
	payload := map[string]string{"assignedToID": assigneeID}
	if additionalAssigneeID != "" {
		payload["additionalAsigneeID"] = additionalAssigneeID
	}
	var out models.MarketingRequest
	if err := c.request(ctx, http.MethodPatch, "/api/requests/"+url.PathEscape(channelID)+"/assign", payload, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRequestStatus đổi trạng thái một request, chuyển về dạng API trước khi gửi
func (c *ApiClient) UpdateRequestStatus(ctx context.Context, channelID string, status string) (*models.MarketingRequest, error) {
	payload := map[string]string{"status": models.ToAPIStatus(status)}
	var out models.MarketingRequest
	if err := c.request(ctx, http.MethodPatch, "/api/requests/"+url.PathEscape(channelID)+"/status", payload, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdvanceRequestStatus đẩy request sang trạng thái kế tiếp trong pipeline
func (c *ApiClient) AdvanceRequestStatus(ctx context.Context, channelID string) (*models.MarketingRequest, error) {
	var out models.MarketingRequest
	if err := c.request(ctx, http.MethodPatch, "/api/requests/"+url.PathEscape(channelID)+"/advance", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRequestDepartment đổi phòng ban phụ trách của một request
func (c *ApiClient) UpdateRequestDepartment(ctx context.Context, channelID string, department string) (*models.MarketingRequest, error) {
	payload := map[string]string{"department": department}
	var out models.MarketingRequest
	if err := c.request(ctx, http.MethodPatch, "/api/requests/"+url.PathEscape(channelID)+"/department", payload, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// CountByDepartment lấy số lượng request đang mở theo từng phòng ban
func (c *ApiClient) CountByDepartment(ctx context.Context) ([]models.DepartmentCount, error) {
	var out []models.DepartmentCount
	if err := c.request(ctx, http.MethodGet, "/api/requests/count-by-department", nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

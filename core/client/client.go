package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"msa_center/config"
	"msa_center/core/common"
	"msa_center/core/logger"
)

// ApiClient là HTTP client gõ kiểu cho backend REST (requests, Discord
// identity, audit, auth, workload). Mọi response đi qua RepairLargeIDs
// trước khi parse để không mất độ chính xác ID
type ApiClient struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	tokens     *TokenStore

	// Callbacks khi session bị invalidate, gắn từ composition root
	onUnauthorized func()
	onForbidden    func()
}

// Option cấu hình thêm cho ApiClient
type Option func(*ApiClient)

// WithHTTPClient thay http.Client bên dưới (dùng trong test)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *ApiClient) {
		c.httpClient = hc
	}
}

// WithUnauthorizedHandler gắn callback khi backend trả 401
func WithUnauthorizedHandler(fn func()) Option {
	return func(c *ApiClient) {
		c.onUnauthorized = fn
	}
}

// WithForbiddenHandler gắn callback khi backend trả 403 (không thuộc guild)
func WithForbiddenHandler(fn func()) Option {
	return func(c *ApiClient) {
		c.onForbidden = fn
	}
}

// NewApiClient tạo client mới từ cấu hình
func NewApiClient(cfg *config.Configuration, opts ...Option) *ApiClient {
	timeout := time.Duration(cfg.Backend_TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second // Mặc định 10 giây
	}

	c := &ApiClient{
		baseURL: strings.TrimRight(cfg.Backend_BaseURL, "/"),
		apiKey:  cfg.Backend_APIKey,
		timeout: timeout,
		httpClient: &http.Client{
			// Timeout được áp qua context từng request, không set ở đây
			// để phân biệt được deadline exceeded với lỗi kết nối
		},
		tokens: NewTokenStore(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL trả về URL gốc của backend (dùng để build OAuth login URL)
func (c *ApiClient) BaseURL() string {
	return c.baseURL
}

// SetAuthToken lưu JWT token cho các request tiếp theo
func (c *ApiClient) SetAuthToken(token string) {
	c.tokens.Set(token)
}

// AuthToken trả về JWT token hiện tại (rỗng nếu chưa đăng nhập)
func (c *ApiClient) AuthToken() string {
	return c.tokens.Get()
}

// ClearAuthToken xóa JWT token (logout hoặc sau 401)
func (c *ApiClient) ClearAuthToken() {
	c.tokens.Clear()
}

// request thực hiện một HTTP request tới backend với timeout cố định
// Chính sách lỗi:
//   - deadline exceeded → ErrNetworkTimeout (caller hiển thị retry, không nuốt)
//   - 401 → xóa token, gọi onUnauthorized, trả ErrUnauthorized
//   - 403 → xóa token, gọi onForbidden, trả ErrForbidden (khác 401: user
//     đăng nhập được nhưng không thuộc Discord server yêu cầu)
//   - JSON hỏng sau khi sửa ID → MalformedResponse kèm status + body gốc
func (c *ApiClient) request(ctx context.Context, method, path string, body interface{}, out interface{}, useAPIKey bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return common.NewError(common.ErrCodeNetworkConnection, err.Error(), common.StatusInternalServerError, nil)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.usableToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if useAPIKey && c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeoutError(ctx, err) {
			logger.GetErrorLogger().WithError(err).WithField("path", path).Warn("Backend request timeout")
			return common.ErrNetworkTimeout
		}
		logger.GetErrorLogger().WithError(err).WithField("path", path).Error("Backend request failed")
		return common.NewError(common.ErrCodeNetworkConnection, err.Error(), common.StatusServiceUnavailable, nil)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return common.NewError(common.ErrCodeNetworkConnection, err.Error(), common.StatusServiceUnavailable, nil)
	}

	// 204 No Content: thành công, không có body để decode
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Token hết hạn hoặc không hợp lệ: invalidate session cục bộ
		c.tokens.Clear()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return common.ErrUnauthorized
	}

	if resp.StatusCode == http.StatusForbidden {
		c.tokens.Clear()
		if c.onForbidden != nil {
			c.onForbidden()
		}
		return common.ErrForbidden
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.GetErrorLogger().WithFields(map[string]interface{}{
			"path":   path,
			"status": resp.StatusCode,
			"body":   truncateBody(raw),
		}).Error("Backend returned error status")
		return common.ConvertHTTPError(resp.StatusCode, string(raw))
	}

	return DecodeResponse(resp.StatusCode, raw, out)
}

// usableToken trả về token còn dùng được; token chắc chắn đã hết hạn
// (theo exp claim local) bị xóa trước để khỏi tốn một round-trip lỗi 401
func (c *ApiClient) usableToken() string {
	token := c.tokens.Get()
	if token == "" {
		return ""
	}
	if c.tokens.Expired() {
		c.tokens.Clear()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ""
	}
	return token
}

// isTimeoutError phân biệt deadline exceeded với các lỗi mạng khác
func isTimeoutError(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// truncateBody cắt body backend để log không phình to
func truncateBody(raw []byte) string {
	const maxLen = 512
	if len(raw) <= maxLen {
		return string(raw)
	}
	return fmt.Sprintf("%s... (%d bytes)", raw[:maxLen], len(raw))
}

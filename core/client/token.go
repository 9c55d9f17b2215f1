package client

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenStore giữ JWT session token trong bộ nhớ, an toàn cho nhiều goroutine
// (worker refresh và handler cùng đọc). Token không được persist: restart
// process là phải đăng nhập lại
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewTokenStore tạo store rỗng
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Set lưu token mới, thay thế token cũ nếu có
func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Get trả về token hiện tại, rỗng nếu chưa có
func (s *TokenStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Clear xóa token hiện tại
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// Expired kiểm tra exp claim của token hiện tại theo đồng hồ local.
// Chỉ parse không verify chữ ký: server vẫn là nơi quyết định cuối cùng,
// đây chỉ là bước tránh gửi request chắc chắn nhận 401.
// Token không parse được hoặc không có exp thì coi như chưa hết hạn
// và để backend phán xét
func (s *TokenStore) Expired() bool {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return false
	}

	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

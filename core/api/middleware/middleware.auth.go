package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"

	"msa_center/core/common"
	"msa_center/core/global"
	"msa_center/core/logger"
	"msa_center/core/utility"
)

// AuthMiddleware middleware xác thực JWT cho Fiber
// Token hợp lệ sẽ set user_id vào Locals cho handler và audit logging
// Tham số required=false cho phép request không có token đi qua (các route
// đọc công khai vẫn muốn biết user nếu có)
// JWT_SECRET để trống = tắt gate: không kiểm tra token tại gateway (backend
// vẫn tự xác thực), và không bao giờ đưa key rỗng vào ParseWithClaims vì
// token ký bằng chuỗi rỗng sẽ pass
func AuthMiddleware(required bool) fiber.Handler {
	return func(c fiber.Ctx) error {
		if global.ServerConfig.JwtSecret == "" {
			return c.Next()
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			if !required {
				return c.Next()
			}
			return unauthorized(c, common.MsgTokenMissing)
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, common.MsgTokenInvalid)
		}
		tokenStr := parts[1]

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(global.ServerConfig.JwtSecret), nil
		})
		if err != nil || !token.Valid {
			logger.WithRequest(c).WithError(err).Warn("JWT không hợp lệ")
			return unauthorized(c, common.MsgTokenInvalid)
		}

		if sub, serr := claims.GetSubject(); serr == nil && sub != "" {
			c.Locals("user_id", sub)
		}

		return c.Next()
	}
}

// unauthorized trả response 401 theo envelope chuẩn
func unauthorized(c fiber.Ctx, message string) error {
	return c.Status(common.StatusUnauthorized).JSON(utility.Payload(false, nil, message, common.StatusUnauthorized))
}

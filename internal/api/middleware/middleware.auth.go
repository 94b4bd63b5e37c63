package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"realty_training/internal/common"
	"realty_training/internal/global"
	"realty_training/internal/logger"
	"realty_training/internal/utility"
)

// RoleAdmin và RoleUser là hai role của hệ thống.
// Role được mã hóa trong JWT token khi đăng nhập, không lưu session phía server.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// AuthMiddleware middleware xác thực cho Fiber.
// requireRole = "" chỉ yêu cầu token hợp lệ; requireRole = RoleAdmin yêu cầu quyền quản trị.
// Claims được lưu vào context: userEmail, userRole, userName.
func AuthMiddleware(requireRole string) fiber.Handler {
	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Xác thực JWT và lấy claims
		claims, err := utility.VerifySessionToken(global.MongoDB_ServerConfig.JwtSecret, parts[1])
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token verification failed")
			HandleErrorResponse(c, err)
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("userEmail", claims.Email)
		c.Locals("userRole", claims.Role)
		c.Locals("userName", claims.Name)

		// Nếu không yêu cầu role cụ thể, cho phép truy cập ngay
		if requireRole == "" {
			return c.Next()
		}

		// Kiểm tra role: admin có mọi quyền, role khác phải khớp chính xác
		if claims.Role != requireRole && claims.Role != RoleAdmin {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_email":    claims.Email,
				"user_role":     claims.Role,
				"required_role": requireRole,
				"path":          c.Path(),
			}).Warn("❌ [AUTH] User does not have required role")
			HandleErrorResponse(c, common.ErrForbidden)
			return nil
		}

		return c.Next()
	}
}

// Package router đăng ký các route thuộc domain auth: đăng nhập và quản lý người dùng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "realty_training/internal/api/auth/handler"
	"realty_training/internal/api/middleware"
	apirouter "realty_training/internal/api/router"
)

// Register đăng ký route đăng nhập (công khai) và CRUD người dùng (ghi cần admin) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	// Đăng nhập là route công khai duy nhất của domain auth
	v1.Post("/auth/login", userHandler.HandleLogin)

	authMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/me", []fiber.Handler{authMiddleware}, userHandler.HandleGetProfile)

	r.RegisterCRUDRoutes(v1, "/user", userHandler, apirouter.AccountWriteConfig, middleware.RoleAdmin)
	return nil
}

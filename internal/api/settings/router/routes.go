// Package router đăng ký các route thuộc domain settings.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"realty_training/internal/api/middleware"
	apirouter "realty_training/internal/api/router"
	settingshdl "realty_training/internal/api/settings/handler"
)

// Register đăng ký các route cấu hình giao diện lên v1.
// Đọc là công khai (client cần cấu hình trước khi đăng nhập), ghi cần admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	settingsHandler, err := settingshdl.NewSettingsHandler()
	if err != nil {
		return fmt.Errorf("failed to create settings handler: %w", err)
	}

	v1.Get("/settings", settingsHandler.HandleGetSettings)

	adminMiddleware := middleware.AuthMiddleware(middleware.RoleAdmin)
	apirouter.RegisterRouteWithMiddleware(v1, "/settings", "PUT", "", []fiber.Handler{adminMiddleware}, settingsHandler.HandleUpdateSettings)

	r.RegisterCRUDRoutes(v1, "/setting", settingsHandler, apirouter.SingletonConfig, middleware.RoleAdmin)
	return nil
}

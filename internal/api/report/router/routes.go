// Package router đăng ký các route thuộc domain report: thống kê, dashboard, snapshot.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"realty_training/internal/api/middleware"
	reporthdl "realty_training/internal/api/report/handler"
	apirouter "realty_training/internal/api/router"
)

// Register đăng ký các route thống kê lên v1. Thống kê video/danh mục và
// chi tiết video là công khai theo catalog; dashboard cần đăng nhập;
// thống kê admin cần vai trò admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	reportHandler, err := reporthdl.NewReportHandler()
	if err != nil {
		return fmt.Errorf("failed to create report handler: %w", err)
	}

	v1.Get("/video-stats/:videoId", reportHandler.HandleVideoStats)
	v1.Get("/videos/:id/detailed", reportHandler.HandleVideoDetailed)
	v1.Get("/category-stats/:categoryId", reportHandler.HandleCategoryStats)

	authMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/:userEmail", []fiber.Handler{authMiddleware}, reportHandler.HandleUserDashboard)

	adminMiddleware := middleware.AuthMiddleware(middleware.RoleAdmin)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin", "GET", "/stats", []fiber.Handler{adminMiddleware}, reportHandler.HandleAdminStats)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin", "GET", "/stats/snapshot", []fiber.Handler{adminMiddleware}, reportHandler.HandleLatestSnapshot)

	r.RegisterCRUDRoutes(v1, "/report-snapshot", reportHandler, apirouter.ReadOnlyConfig, middleware.RoleAdmin)
	return nil
}

// Package router đăng ký các route thuộc domain content: danh mục, video, banner, upload.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	contenthdl "realty_training/internal/api/content/handler"
	"realty_training/internal/api/middleware"
	apirouter "realty_training/internal/api/router"
)

// Register đăng ký các route content lên v1.
// Đọc catalog là công khai, mọi thao tác ghi yêu cầu admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	categoryHandler, err := contenthdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create category handler: %w", err)
	}
	videoHandler, err := contenthdl.NewVideoHandler()
	if err != nil {
		return fmt.Errorf("failed to create video handler: %w", err)
	}
	bannerHandler, err := contenthdl.NewBannerVideoHandler()
	if err != nil {
		return fmt.Errorf("failed to create banner video handler: %w", err)
	}

	adminMiddleware := middleware.AuthMiddleware(middleware.RoleAdmin)

	// Catalog công khai: danh mục kèm video và banner trang chủ
	v1.Get("/categories", categoryHandler.HandleListWithVideos)
	v1.Get("/banner-video", bannerHandler.HandleGetBanner)

	apirouter.RegisterRouteWithMiddleware(v1, "/banner-video", "POST", "", []fiber.Handler{adminMiddleware}, bannerHandler.HandleSetBanner)
	apirouter.RegisterRouteWithMiddleware(v1, "/banner-video", "DELETE", "", []fiber.Handler{adminMiddleware}, bannerHandler.HandleClearBanner)
	apirouter.RegisterRouteWithMiddleware(v1, "/upload-mp4", "POST", "", []fiber.Handler{adminMiddleware}, videoHandler.HandleUploadMP4)

	r.RegisterCRUDRoutes(v1, "/category", categoryHandler, apirouter.CatalogWriteConfig, middleware.RoleAdmin)
	r.RegisterCRUDRoutes(v1, "/video", videoHandler, apirouter.CatalogWriteConfig, middleware.RoleAdmin)
	return nil
}

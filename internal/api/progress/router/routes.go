// Package router đăng ký các route thuộc domain progress.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"realty_training/internal/api/middleware"
	progresshdl "realty_training/internal/api/progress/handler"
	apirouter "realty_training/internal/api/router"
)

// Register đăng ký các route tiến độ xem video lên v1. Mọi route đều cần đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	progressHandler, err := progresshdl.NewVideoProgressHandler()
	if err != nil {
		return fmt.Errorf("failed to create video progress handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(v1, "/video-progress", "POST", "", []fiber.Handler{authMiddleware}, progressHandler.HandleUpsertProgress)
	apirouter.RegisterRouteWithMiddleware(v1, "/video-progress", "GET", "/:userEmail", []fiber.Handler{authMiddleware}, progressHandler.HandleGetByUser)
	apirouter.RegisterRouteWithMiddleware(v1, "/video-progress", "GET", "/:userEmail/:videoId", []fiber.Handler{authMiddleware}, progressHandler.HandleGetProgress)
	apirouter.RegisterRouteWithMiddleware(v1, "/video-progress", "PUT", "/:userEmail/:videoId", []fiber.Handler{authMiddleware}, progressHandler.HandlePatchProgress)
	return nil
}

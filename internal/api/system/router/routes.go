// Package router đăng ký các route thuộc domain system: health và status check.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "realty_training/internal/api/base/handler"
	apirouter "realty_training/internal/api/router"
	systemhdl "realty_training/internal/api/system/handler"
)

// Register đăng ký các route system lên v1. Tất cả đều công khai.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	statusCheckHandler, err := systemhdl.NewStatusCheckHandler()
	if err != nil {
		return fmt.Errorf("failed to create status check handler: %w", err)
	}

	v1.Get("/system/health", systemHandler.HandleHealth)
	v1.Post("/status", statusCheckHandler.HandleCreateStatusCheck)
	v1.Get("/status", statusCheckHandler.HandleListStatusChecks)
	return nil
}

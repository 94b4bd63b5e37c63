// Package settingshdl - handler cấu hình giao diện nền tảng.
package settingshdl

import (
	"fmt"

	basehdl "realty_training/internal/api/base/handler"
	settingsdto "realty_training/internal/api/settings/dto"
	models "realty_training/internal/api/settings/models"
	settingssvc "realty_training/internal/api/settings/service"

	"github.com/gofiber/fiber/v3"
)

// SettingsHandler xử lý các request về cấu hình giao diện
type SettingsHandler struct {
	*basehdl.BaseHandler[models.Settings, settingsdto.SettingsUpdateInput, settingsdto.SettingsUpdateInput]
	settingsService *settingssvc.SettingsService
}

// NewSettingsHandler tạo instance mới của SettingsHandler
func NewSettingsHandler() (*SettingsHandler, error) {
	settingsService, err := settingssvc.NewSettingsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create settings service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Settings, settingsdto.SettingsUpdateInput, settingsdto.SettingsUpdateInput](settingsService)
	return &SettingsHandler{
		BaseHandler:     baseHandler,
		settingsService: settingsService,
	}, nil
}

// HandleGetSettings xử lý GET /settings: trả về cấu hình hiện tại,
// tạo mặc định khi chưa có
func (h *SettingsHandler) HandleGetSettings(c fiber.Ctx) error {
	settings, err := h.settingsService.GetOrCreateDefault(c.Context())
	h.HandleResponse(c, settings, err)
	return nil
}

// HandleUpdateSettings xử lý PUT /settings: cập nhật theo field mask với upsert
func (h *SettingsHandler) HandleUpdateSettings(c fiber.Ctx) error {
	var input settingsdto.SettingsUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	settings, err := h.settingsService.UpdateSettings(c.Context(), &input)
	h.HandleResponse(c, settings, err)
	return nil
}

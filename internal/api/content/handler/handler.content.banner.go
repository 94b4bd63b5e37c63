package contenthdl

import (
	"fmt"

	basehdl "realty_training/internal/api/base/handler"
	contentdto "realty_training/internal/api/content/dto"
	contentmodels "realty_training/internal/api/content/models"
	contentsvc "realty_training/internal/api/content/service"

	"github.com/gofiber/fiber/v3"
)

// BannerVideoHandler xử lý các request về video banner trang chủ
type BannerVideoHandler struct {
	*basehdl.BaseHandler[contentmodels.BannerVideo, contentdto.BannerVideoSetInput, contentdto.BannerVideoSetInput]
	bannerService *contentsvc.BannerVideoService
}

// NewBannerVideoHandler tạo instance mới của BannerVideoHandler
func NewBannerVideoHandler() (*BannerVideoHandler, error) {
	bannerService, err := contentsvc.NewBannerVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create banner video service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[contentmodels.BannerVideo, contentdto.BannerVideoSetInput, contentdto.BannerVideoSetInput](bannerService)
	return &BannerVideoHandler{
		BaseHandler:   baseHandler,
		bannerService: bannerService,
	}, nil
}

// HandleGetBanner xử lý GET /banner-video. Chưa có banner trả về data null.
func (h *BannerVideoHandler) HandleGetBanner(c fiber.Ctx) error {
	banner, err := h.bannerService.GetBanner(c.Context())
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, banner, nil)
	return nil
}

// HandleSetBanner xử lý POST /banner-video: thay thế toàn bộ banner hiện có
func (h *BannerVideoHandler) HandleSetBanner(c fiber.Ctx) error {
	var input contentdto.BannerVideoSetInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	banner, err := h.bannerService.SetBanner(c.Context(), &input)
	h.HandleResponse(c, banner, err)
	return nil
}

// HandleClearBanner xử lý DELETE /banner-video
func (h *BannerVideoHandler) HandleClearBanner(c fiber.Ctx) error {
	deleted, err := h.bannerService.ClearBanner(c.Context())
	h.HandleResponse(c, fiber.Map{"deleted": deleted}, err)
	return nil
}

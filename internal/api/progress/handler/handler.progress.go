// Package progresshdl - handler tiến độ xem video.
package progresshdl

import (
	"fmt"

	basehdl "realty_training/internal/api/base/handler"
	progressdto "realty_training/internal/api/progress/dto"
	models "realty_training/internal/api/progress/models"
	progresssvc "realty_training/internal/api/progress/service"
	"realty_training/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoProgressHandler xử lý các request về tiến độ xem video
type VideoProgressHandler struct {
	*basehdl.BaseHandler[models.VideoProgress, progressdto.ProgressUpsertInput, progressdto.ProgressPatchInput]
	progressService *progresssvc.VideoProgressService
}

// NewVideoProgressHandler tạo instance mới của VideoProgressHandler
func NewVideoProgressHandler() (*VideoProgressHandler, error) {
	progressService, err := progresssvc.NewVideoProgressService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video progress service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.VideoProgress, progressdto.ProgressUpsertInput, progressdto.ProgressPatchInput](progressService)
	return &VideoProgressHandler{
		BaseHandler:     baseHandler,
		progressService: progressService,
	}, nil
}

// parseVideoIDParam đọc và validate param :videoId
func parseVideoIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	videoID, err := primitive.ObjectIDFromHex(c.Params("videoId"))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID video không hợp lệ", common.StatusBadRequest, err)
	}
	return videoID, nil
}

// HandleUpsertProgress xử lý POST /video-progress: ghi đè tiến độ của cặp (user, video)
func (h *VideoProgressHandler) HandleUpsertProgress(c fiber.Ctx) error {
	var input progressdto.ProgressUpsertInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	progress, err := h.progressService.UpsertProgress(c.Context(), &input)
	h.HandleResponse(c, progress, err)
	return nil
}

// HandleGetByUser xử lý GET /video-progress/:userEmail: toàn bộ tiến độ của một user
func (h *VideoProgressHandler) HandleGetByUser(c fiber.Ctx) error {
	userEmail := c.Params("userEmail")
	if userEmail == "" {
		h.HandleResponse(c, nil, common.ErrRequiredField)
		return nil
	}
	list, err := h.progressService.GetByUser(c.Context(), userEmail)
	h.HandleResponse(c, list, err)
	return nil
}

// HandleGetProgress xử lý GET /video-progress/:userEmail/:videoId.
// Chưa có bản ghi vẫn trả 200 với bản ghi zero mặc định.
func (h *VideoProgressHandler) HandleGetProgress(c fiber.Ctx) error {
	userEmail := c.Params("userEmail")
	if userEmail == "" {
		h.HandleResponse(c, nil, common.ErrRequiredField)
		return nil
	}
	videoID, err := parseVideoIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	progress, err := h.progressService.GetProgress(c.Context(), userEmail, videoID)
	h.HandleResponse(c, progress, err)
	return nil
}

// HandlePatchProgress xử lý PUT /video-progress/:userEmail/:videoId.
// Cập nhật theo field mask, trả 404 nếu cặp chưa có bản ghi.
func (h *VideoProgressHandler) HandlePatchProgress(c fiber.Ctx) error {
	userEmail := c.Params("userEmail")
	if userEmail == "" {
		h.HandleResponse(c, nil, common.ErrRequiredField)
		return nil
	}
	videoID, err := parseVideoIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input progressdto.ProgressPatchInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	progress, err := h.progressService.PatchProgress(c.Context(), userEmail, videoID, &input)
	h.HandleResponse(c, progress, err)
	return nil
}

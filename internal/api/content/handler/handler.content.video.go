package contenthdl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	basehdl "realty_training/internal/api/base/handler"
	contentdto "realty_training/internal/api/content/dto"
	contentmodels "realty_training/internal/api/content/models"
	contentsvc "realty_training/internal/api/content/service"
	"realty_training/internal/common"
	"realty_training/internal/global"
	"realty_training/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// allowedMp4Extensions là whitelist phần mở rộng cho file upload
var allowedMp4Extensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".webm": true,
	".m4v":  true,
}

// VideoHandler xử lý các request về video đào tạo
type VideoHandler struct {
	*basehdl.BaseHandler[contentmodels.Video, contentdto.VideoCreateInput, contentdto.VideoUpdateInput]
	videoService *contentsvc.VideoService
}

// NewVideoHandler tạo instance mới của VideoHandler
func NewVideoHandler() (*VideoHandler, error) {
	videoService, err := contentsvc.NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[contentmodels.Video, contentdto.VideoCreateInput, contentdto.VideoUpdateInput](videoService)
	return &VideoHandler{
		BaseHandler:  baseHandler,
		videoService: videoService,
	}, nil
}

// InsertOne ghi đè route tạo chung: nguồn video phải được validate theo
// videoType và thumbnail/releaseDate được suy ra khi thiếu.
func (h *VideoHandler) InsertOne(c fiber.Ctx) error {
	var input contentdto.VideoCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	video, err := h.videoService.CreateVideo(c.Context(), &input)
	h.HandleResponse(c, video, err)
	return nil
}

// DeleteById ghi đè route xóa chung: xóa video phải cascade sang tiến độ xem
func (h *VideoHandler) DeleteById(c fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID video không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	err = h.videoService.DeleteVideoCascade(c.Context(), id)
	if err == nil {
		logger.LogCRUD("delete", "video", id.Hex(), c, nil)
	}
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleUploadMP4 xử lý POST /upload-mp4 (multipart). File được lưu vào
// thư mục upload cấu hình sẵn, trả về URL công khai để gán vào mp4Url.
func (h *VideoHandler) HandleUploadMP4(c fiber.Ctx) error {
	cfg := global.MongoDB_ServerConfig

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Se requiere un archivo de video", common.StatusBadRequest, err))
		return nil
	}

	maxSize := int64(cfg.UploadMaxSizeMB) * 1024 * 1024
	if fileHeader.Size > maxSize {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("El archivo supera el límite de %d MB", cfg.UploadMaxSizeMB), common.StatusBadRequest, nil))
		return nil
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedMp4Extensions[ext] {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Formato de video no soportado", common.StatusBadRequest, nil))
		return nil
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "video/") {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "El archivo no es un video", common.StatusBadRequest, nil))
		return nil
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeInternalServer, "Không tạo được thư mục upload", common.StatusInternalServerError, err))
		return nil
	}

	filename := primitive.NewObjectID().Hex() + ext
	destination := filepath.Join(cfg.UploadDir, filename)
	if err := c.SaveFile(fileHeader, destination); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeInternalServer, "Không lưu được file upload", common.StatusInternalServerError, err))
		return nil
	}

	url := strings.TrimRight(cfg.PublicBaseURL, "/") + "/uploads/videos/" + filename
	logrus.WithFields(logrus.Fields{
		"filename": filename,
		"size":     fileHeader.Size,
	}).Info("📼 [CONTENT] Đã upload video MP4")

	h.HandleResponse(c, fiber.Map{
		"filename": filename,
		"url":      url,
		"size":     fileHeader.Size,
	}, nil)
	return nil
}

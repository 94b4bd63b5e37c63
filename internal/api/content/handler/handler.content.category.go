// Package contenthdl - các handler thuộc domain content.
package contenthdl

import (
	"fmt"

	basehdl "realty_training/internal/api/base/handler"
	contentdto "realty_training/internal/api/content/dto"
	contentmodels "realty_training/internal/api/content/models"
	contentsvc "realty_training/internal/api/content/service"

	"realty_training/internal/common"
	"realty_training/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryHandler xử lý các request về danh mục khóa học
type CategoryHandler struct {
	*basehdl.BaseHandler[contentmodels.Category, contentdto.CategoryCreateInput, contentdto.CategoryUpdateInput]
	categoryService *contentsvc.CategoryService
}

// NewCategoryHandler tạo instance mới của CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := contentsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[contentmodels.Category, contentdto.CategoryCreateInput, contentdto.CategoryUpdateInput](categoryService)
	return &CategoryHandler{
		BaseHandler:     baseHandler,
		categoryService: categoryService,
	}, nil
}

// HandleListWithVideos xử lý GET /categories: toàn bộ danh mục kèm video.
// Lần gọi đầu trên collection rỗng sẽ seed danh mục mặc định.
func (h *CategoryHandler) HandleListWithVideos(c fiber.Ctx) error {
	result, err := h.categoryService.ListWithVideos(c.Context())
	h.HandleResponse(c, result, err)
	return nil
}

// DeleteById ghi đè route xóa chung: xóa danh mục phải cascade sang
// video thuộc danh mục và tiến độ xem của các video đó.
func (h *CategoryHandler) DeleteById(c fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID danh mục không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	err = h.categoryService.DeleteCascade(c.Context(), id)
	if err == nil {
		logger.LogCRUD("delete", "category", id.Hex(), c, nil)
	}
	h.HandleResponse(c, nil, err)
	return nil
}

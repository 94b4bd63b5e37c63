package contentsvc

import (
	"context"
	"fmt"

	basesvc "realty_training/internal/api/base/service"
	contentmodels "realty_training/internal/api/content/models"
	"realty_training/internal/common"
	"realty_training/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// defaultCategories là 9 danh mục mặc định của nền tảng, được seed khi
// collection categories còn trống.
var defaultCategories = []contentmodels.Category{
	{Name: "Fundamentos Inmobiliarios", Icon: "Home", Description: "Conceptos básicos del sector inmobiliario"},
	{Name: "Marketing y Ventas", Icon: "TrendingUp", Description: "Estrategias de marketing y técnicas de venta"},
	{Name: "Regulaciones y Ética", Icon: "BookOpen", Description: "Marco legal y ética profesional"},
	{Name: "Finanzas y Economía", Icon: "PieChart", Description: "Finanzas aplicadas al sector inmobiliario"},
	{Name: "Tecnología Inmobiliaria", Icon: "Lightbulb", Description: "Herramientas digitales para agentes"},
	{Name: "Negociación y Cierre", Icon: "Award", Description: "Técnicas de negociación y cierre de ventas"},
	{Name: "Desarrollo Personal", Icon: "User", Description: "Crecimiento personal y profesional"},
	{Name: "Evaluación de Propiedades", Icon: "Building", Description: "Valuación y análisis de propiedades"},
	{Name: "Atención al Cliente", Icon: "Users", Description: "Servicio y experiencia del cliente"},
}

// CategoryService là service quản lý danh mục khóa học
type CategoryService struct {
	basesvc.BaseServiceMongo[contentmodels.Category]
	videoService *VideoService
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}
	videoService, err := NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}
	return &CategoryService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[contentmodels.Category](collection),
		videoService:     videoService,
	}, nil
}

// SeedDefaultsIfEmpty seed 9 danh mục mặc định khi collection còn trống.
// Gọi khi khởi động server và khi list lần đầu gặp collection rỗng.
func (s *CategoryService) SeedDefaultsIfEmpty(ctx context.Context) error {
	count, err := s.CountDocuments(ctx, nil)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if _, err := s.InsertMany(ctx, defaultCategories); err != nil {
		return err
	}
	logrus.WithField("count", len(defaultCategories)).Info("🌱 [CONTENT] Đã seed danh mục mặc định")
	return nil
}

// ListWithVideos trả về toàn bộ danh mục, mỗi danh mục kèm video của nó.
// Collection rỗng sẽ được seed danh mục mặc định trước khi trả về.
func (s *CategoryService) ListWithVideos(ctx context.Context) ([]contentmodels.CategoryWithVideos, error) {
	if err := s.SeedDefaultsIfEmpty(ctx); err != nil {
		return nil, err
	}

	categories, err := s.Find(ctx, nil, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}

	result := make([]contentmodels.CategoryWithVideos, 0, len(categories))
	for _, category := range categories {
		videos, err := s.videoService.FindByCategory(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, contentmodels.CategoryWithVideos{
			Category: category,
			Videos:   videos,
		})
	}
	return result, nil
}

// DeleteCascade xóa danh mục cùng toàn bộ video thuộc nó và tiến độ xem
// của các video đó. Thứ tự cố định: danh mục, video, tiến độ. Các bước
// xóa tuần tự không có transaction, bước sau thất bại chỉ ghi log.
func (s *CategoryService) DeleteCascade(ctx context.Context, categoryID primitive.ObjectID) error {
	if err := s.DeleteById(ctx, categoryID); err != nil {
		return err
	}

	videos, err := s.videoService.FindByCategory(ctx, categoryID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"categoryId": categoryID.Hex(),
			"error":      err.Error(),
		}).Error("❌ [CONTENT] Không đọc được video của danh mục đã xóa")
		return nil
	}
	if len(videos) == 0 {
		return nil
	}

	videoIDs := make([]primitive.ObjectID, 0, len(videos))
	for _, v := range videos {
		videoIDs = append(videoIDs, v.ID)
	}

	videosDeleted, err := s.videoService.DeleteMany(ctx, bson.M{"categoryId": categoryID})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"categoryId": categoryID.Hex(),
			"error":      err.Error(),
		}).Error("❌ [CONTENT] Xóa video của danh mục thất bại")
		return nil
	}

	progressDeleted, err := s.videoService.progressService.DeleteByVideoIDs(ctx, videoIDs)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"categoryId": categoryID.Hex(),
			"error":      err.Error(),
		}).Error("❌ [CONTENT] Xóa tiến độ của danh mục thất bại")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"categoryId":      categoryID.Hex(),
		"videosDeleted":   videosDeleted,
		"progressDeleted": progressDeleted,
	}).Info("🗑️ [CONTENT] Đã xóa danh mục và dữ liệu liên quan")
	return nil
}

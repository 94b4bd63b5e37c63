package contentsvc

import (
	"context"
	"fmt"
	"time"

	basesvc "realty_training/internal/api/base/service"
	contentdto "realty_training/internal/api/content/dto"
	contentmodels "realty_training/internal/api/content/models"
	progresssvc "realty_training/internal/api/progress/service"
	"realty_training/internal/common"
	"realty_training/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoService là service quản lý video đào tạo
type VideoService struct {
	basesvc.BaseServiceMongo[contentmodels.Video]
	progressService *progresssvc.VideoProgressService
}

// NewVideoService tạo mới VideoService
func NewVideoService() (*VideoService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	progressService, err := progresssvc.NewVideoProgressService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video progress service: %v", err)
	}
	return &VideoService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[contentmodels.Video](collection),
		progressService:  progressService,
	}, nil
}

// CreateVideo tạo video mới: validate nguồn theo videoType, suy ra
// thumbnail khi thiếu và mặc định releaseDate là hôm nay.
func (s *VideoService) CreateVideo(ctx context.Context, input *contentdto.VideoCreateInput) (contentmodels.Video, error) {
	var zero contentmodels.Video

	categoryID, err := primitive.ObjectIDFromHex(input.CategoryID)
	if err != nil {
		return zero, common.NewError(common.ErrCodeValidationFormat, "ID danh mục không hợp lệ", common.StatusBadRequest, err)
	}

	source, err := resolveVideoSource(input.VideoType, input.YoutubeID, input.VimeoID, input.Mp4URL, input.Thumbnail)
	if err != nil {
		return zero, err
	}

	releaseDate := input.ReleaseDate
	if releaseDate == "" {
		releaseDate = time.Now().Format("2006-01-02")
	}

	video := contentmodels.Video{
		Title:       input.Title,
		Description: input.Description,
		Thumbnail:   source.Thumbnail,
		Duration:    input.Duration,
		VideoType:   input.VideoType,
		YoutubeID:   source.YoutubeID,
		VimeoID:     source.VimeoID,
		Mp4URL:      source.Mp4URL,
		CategoryID:  categoryID,
		Rating:      input.Rating,
		ReleaseDate: releaseDate,
	}
	return s.InsertOne(ctx, video)
}

// FindByCategory trả về các video thuộc một danh mục
func (s *VideoService) FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]contentmodels.Video, error) {
	return s.Find(ctx, bson.M{"categoryId": categoryID}, nil)
}

// DeleteVideoCascade xóa video và toàn bộ tiến độ xem của video đó.
// Hai bước xóa tuần tự, không có transaction; bước xóa tiến độ thất bại
// chỉ ghi log, không rollback video đã xóa.
func (s *VideoService) DeleteVideoCascade(ctx context.Context, videoID primitive.ObjectID) error {
	if err := s.DeleteById(ctx, videoID); err != nil {
		return err
	}
	deleted, err := s.progressService.DeleteByVideoIDs(ctx, []primitive.ObjectID{videoID})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"videoId": videoID.Hex(),
			"error":   err.Error(),
		}).Error("❌ [CONTENT] Xóa tiến độ của video thất bại")
		return nil
	}
	logrus.WithFields(logrus.Fields{
		"videoId":         videoID.Hex(),
		"progressDeleted": deleted,
	}).Info("🗑️ [CONTENT] Đã xóa video và tiến độ liên quan")
	return nil
}

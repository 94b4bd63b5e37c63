package contentsvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "realty_training/internal/api/base/service"
	contentdto "realty_training/internal/api/content/dto"
	contentmodels "realty_training/internal/api/content/models"
	"realty_training/internal/common"
	"realty_training/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BannerVideoService là service quản lý video banner trang chủ
type BannerVideoService struct {
	basesvc.BaseServiceMongo[contentmodels.BannerVideo]
}

// NewBannerVideoService tạo mới BannerVideoService
func NewBannerVideoService() (*BannerVideoService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.BannerVideos)
	if !exist {
		return nil, fmt.Errorf("failed to get banner_videos collection: %v", common.ErrNotFound)
	}
	return &BannerVideoService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[contentmodels.BannerVideo](collection),
	}, nil
}

// GetBanner trả về banner hiện tại, nil khi chưa đặt banner nào
func (s *BannerVideoService) GetBanner(ctx context.Context) (*contentmodels.BannerVideo, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	banner, err := s.FindOne(ctx, nil, opts)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &banner, nil
}

// SetBanner thay thế toàn bộ banner hiện có bằng banner mới
func (s *BannerVideoService) SetBanner(ctx context.Context, input *contentdto.BannerVideoSetInput) (contentmodels.BannerVideo, error) {
	var zero contentmodels.BannerVideo

	source, err := resolveVideoSource(input.VideoType, input.YoutubeID, input.VimeoID, input.Mp4URL, input.Thumbnail)
	if err != nil {
		return zero, err
	}

	if _, err := s.DeleteMany(ctx, bson.D{}); err != nil {
		return zero, err
	}

	banner := contentmodels.BannerVideo{
		Title:       input.Title,
		Description: input.Description,
		VideoType:   input.VideoType,
		YoutubeID:   source.YoutubeID,
		VimeoID:     source.VimeoID,
		Mp4URL:      source.Mp4URL,
		Thumbnail:   source.Thumbnail,
	}
	return s.InsertOne(ctx, banner)
}

// ClearBanner xóa toàn bộ banner, trả về số lượng đã xóa
func (s *BannerVideoService) ClearBanner(ctx context.Context) (int64, error) {
	return s.DeleteMany(ctx, bson.D{})
}

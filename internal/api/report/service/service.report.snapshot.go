package reportsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	basesvc "realty_training/internal/api/base/service"
	reportdto "realty_training/internal/api/report/dto"
	models "realty_training/internal/api/report/models"
	"realty_training/internal/common"
	"realty_training/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SnapshotService quản lý các bản chụp thống kê định kỳ do worker ghi
type SnapshotService struct {
	basesvc.BaseServiceMongo[models.ReportSnapshot]
}

// NewSnapshotService tạo mới SnapshotService
func NewSnapshotService() (*SnapshotService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ReportSnapshots)
	if !exist {
		return nil, fmt.Errorf("failed to get report_snapshots collection: %v", common.ErrNotFound)
	}
	return &SnapshotService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.ReportSnapshot](collection),
	}, nil
}

// SaveAdminOverview ghi một snapshot thống kê toàn nền tảng mới
func (s *SnapshotService) SaveAdminOverview(ctx context.Context, stats reportdto.AdminStats) (models.ReportSnapshot, error) {
	snapshot := models.ReportSnapshot{
		Kind:        models.SnapshotKindAdminOverview,
		Stats:       stats,
		GeneratedAt: time.Now().UnixMilli(),
	}
	return s.InsertOne(ctx, snapshot)
}

// Latest trả về snapshot mới nhất theo loại, nil khi chưa có snapshot nào
func (s *SnapshotService) Latest(ctx context.Context, kind string) (*models.ReportSnapshot, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "generatedAt", Value: -1}})
	snapshot, err := s.FindOne(ctx, bson.M{"kind": kind}, opts)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}

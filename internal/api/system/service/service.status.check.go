// Package systemsvc - service StatusCheck.
package systemsvc

import (
	"context"
	"fmt"

	basesvc "realty_training/internal/api/base/service"
	models "realty_training/internal/api/system/models"
	"realty_training/internal/common"
	"realty_training/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StatusCheckService là service quản lý các ping từ client
type StatusCheckService struct {
	basesvc.BaseServiceMongo[models.StatusCheck]
}

// NewStatusCheckService tạo mới StatusCheckService
func NewStatusCheckService() (*StatusCheckService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.StatusChecks)
	if !exist {
		return nil, fmt.Errorf("failed to get status_checks collection: %v", common.ErrNotFound)
	}
	return &StatusCheckService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.StatusCheck](collection),
	}, nil
}

// CreateStatusCheck ghi một ping mới từ client
func (s *StatusCheckService) CreateStatusCheck(ctx context.Context, clientName string) (models.StatusCheck, error) {
	return s.InsertOne(ctx, models.StatusCheck{ClientName: clientName})
}

// ListStatusChecks trả về các ping mới nhất, giới hạn 1000 bản ghi
func (s *StatusCheckService) ListStatusChecks(ctx context.Context) ([]models.StatusCheck, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(1000)
	return s.Find(ctx, nil, opts)
}

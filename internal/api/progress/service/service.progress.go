// Package progresssvc - service tiến độ xem video.
package progresssvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	basesvc "realty_training/internal/api/base/service"
	progressdto "realty_training/internal/api/progress/dto"
	models "realty_training/internal/api/progress/models"
	"realty_training/internal/common"
	"realty_training/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VideoProgressService là service quản lý tiến độ xem video
type VideoProgressService struct {
	basesvc.BaseServiceMongo[models.VideoProgress]
}

// NewVideoProgressService tạo mới VideoProgressService
func NewVideoProgressService() (*VideoProgressService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.VideoProgress)
	if !exist {
		return nil, fmt.Errorf("failed to get video_progress collection: %v", common.ErrNotFound)
	}
	return &VideoProgressService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.VideoProgress](collection),
	}, nil
}

// pairFilter là filter định danh một cặp (user, video)
func pairFilter(userEmail string, videoID primitive.ObjectID) bson.M {
	return bson.M{
		"userEmail": strings.ToLower(strings.TrimSpace(userEmail)),
		"videoId":   videoID,
	}
}

// UpsertProgress ghi đè toàn bộ trạng thái xem của cặp (user, video).
// Dùng một lệnh FindOneAndUpdate với upsert để hai request đồng thời
// không tạo ra hai bản ghi cho cùng một cặp.
func (s *VideoProgressService) UpsertProgress(ctx context.Context, input *progressdto.ProgressUpsertInput) (models.VideoProgress, error) {
	var zero models.VideoProgress

	videoID, err := primitive.ObjectIDFromHex(input.VideoID)
	if err != nil {
		return zero, common.NewError(common.ErrCodeValidationFormat, "ID video không hợp lệ", common.StatusBadRequest, err)
	}

	// Field vắng mặt được coi là giá trị zero, không giữ giá trị cũ
	var percentage float64
	var watchTime int64
	var completed bool
	if input.ProgressPercentage != nil {
		percentage = *input.ProgressPercentage
	}
	if input.WatchTime != nil {
		watchTime = *input.WatchTime
	}
	if input.Completed != nil {
		completed = *input.Completed
	}

	filter := pairFilter(input.UserEmail, videoID)
	now := time.Now().UnixMilli()
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"progressPercentage": percentage,
			"watchTime":          watchTime,
			"completed":          completed,
			"lastWatched":        now,
		},
		SetOnInsert: map[string]interface{}{
			"userEmail": filter["userEmail"],
			"videoId":   videoID,
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	return s.FindOneAndUpdate(ctx, filter, update, opts)
}

// GetProgress trả về tiến độ của cặp (user, video). Chưa có bản ghi thì
// trả về bản ghi zero mặc định, không bao giờ trả về not-found.
func (s *VideoProgressService) GetProgress(ctx context.Context, userEmail string, videoID primitive.ObjectID) (models.VideoProgress, error) {
	progress, err := s.FindOne(ctx, pairFilter(userEmail, videoID), nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.VideoProgress{
				UserEmail: strings.ToLower(strings.TrimSpace(userEmail)),
				VideoID:   videoID,
			}, nil
		}
		return models.VideoProgress{}, err
	}
	return progress, nil
}

// GetByUser trả về toàn bộ tiến độ của một user, mới xem trước.
// Cùng thời điểm lastWatched thì sắp theo videoId tăng dần cho ổn định.
func (s *VideoProgressService) GetByUser(ctx context.Context, userEmail string) ([]models.VideoProgress, error) {
	filter := bson.M{"userEmail": strings.ToLower(strings.TrimSpace(userEmail))}
	opts := options.Find().SetSort(bson.D{
		{Key: "lastWatched", Value: -1},
		{Key: "videoId", Value: 1},
	})
	return s.Find(ctx, filter, opts)
}

// PatchProgress cập nhật một phần tiến độ theo field mask. Khác với
// UpsertProgress, cặp (user, video) chưa có bản ghi sẽ trả về not-found.
// lastWatched luôn được cập nhật kể cả khi mask rỗng.
func (s *VideoProgressService) PatchProgress(ctx context.Context, userEmail string, videoID primitive.ObjectID, input *progressdto.ProgressPatchInput) (models.VideoProgress, error) {
	var zero models.VideoProgress

	filter := pairFilter(userEmail, videoID)
	exists, err := s.DocumentExists(ctx, filter)
	if err != nil {
		return zero, err
	}
	if !exists {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Progreso no encontrado", common.StatusNotFound, nil)
	}

	set := map[string]interface{}{
		"lastWatched": time.Now().UnixMilli(),
	}
	if input.ProgressPercentage != nil {
		set["progressPercentage"] = *input.ProgressPercentage
	}
	if input.WatchTime != nil {
		set["watchTime"] = *input.WatchTime
	}
	if input.Completed != nil {
		set["completed"] = *input.Completed
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return s.FindOneAndUpdate(ctx, filter, &basesvc.UpdateData{Set: set}, opts)
}

// DeleteByVideoIDs xóa toàn bộ tiến độ của các video đã bị xóa (cascade)
func (s *VideoProgressService) DeleteByVideoIDs(ctx context.Context, videoIDs []primitive.ObjectID) (int64, error) {
	if len(videoIDs) == 0 {
		return 0, nil
	}
	return s.DeleteMany(ctx, bson.M{"videoId": bson.M{"$in": videoIDs}})
}

// Package database - Index bổ sung (compound) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"realty_training/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateTrainingAdditionalIndexes tạo các index compound cho hệ thống đào tạo.
// Gọi sau CreateIndexes cho từng collection.
func CreateTrainingAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// video_progress: (userEmail, videoId) unique, mỗi cặp user/video đúng một bản ghi,
	// upsert theo cặp key này phải atomic
	videoProgress := db.Collection(global.MongoDB_ColNames.VideoProgress)
	if _, err := videoProgress.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userEmail", Value: 1},
			{Key: "videoId", Value: 1},
		},
		Options: options.Index().SetName("video_progress_user_video").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// video_progress: (userEmail, lastWatched desc) phục vụ dashboard lấy 5 video xem gần nhất
	if _, err := videoProgress.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userEmail", Value: 1},
			{Key: "lastWatched", Value: -1},
		},
		Options: options.Index().SetName("video_progress_user_recent"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// video_progress: videoId phục vụ tính thống kê theo video và cascade delete
	if _, err := videoProgress.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "videoId", Value: 1},
		},
		Options: options.Index().SetName("video_progress_video"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// videos: categoryId phục vụ liệt kê video theo danh mục và cascade delete danh mục
	videos := db.Collection(global.MongoDB_ColNames.Videos)
	if _, err := videos.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "categoryId", Value: 1},
		},
		Options: options.Index().SetName("video_category"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}

// Package models - model tiến độ xem video (VideoProgress) thuộc domain progress.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoProgress lưu trạng thái xem của một cặp (user, video).
// Mỗi cặp chỉ có tối đa một bản ghi, đảm bảo bằng unique index ghép
// (userEmail, videoId) tạo trong database.CreateTrainingAdditionalIndexes.
type VideoProgress struct {
	ID                 primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserEmail          string             `json:"userEmail" bson:"userEmail" index:"single:1"`
	VideoID            primitive.ObjectID `json:"videoId" bson:"videoId" index:"single:1"`
	ProgressPercentage float64            `json:"progressPercentage" bson:"progressPercentage"`
	WatchTime          int64              `json:"watchTime" bson:"watchTime"`
	Completed          bool               `json:"completed" bson:"completed"`
	LastWatched        int64              `json:"lastWatched" bson:"lastWatched"`
	CreatedAt          int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt          int64              `json:"updatedAt" bson:"updatedAt"`
}

// VideoProgressPaginateResult đại diện cho kết quả phân trang VideoProgress
type VideoProgressPaginateResult struct {
	Page      int64           `json:"page" bson:"page"`
	Limit     int64           `json:"limit" bson:"limit"`
	ItemCount int64           `json:"itemCount" bson:"itemCount"`
	Items     []VideoProgress `json:"items" bson:"items"`
}

// Package models - các model thuộc domain content: Category, Video, BannerVideo.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category định nghĩa một danh mục khóa học
type Category struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" index:"unique"`
	Icon        string             `json:"icon" bson:"icon"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// CategoryWithVideos là Category kèm danh sách video thuộc danh mục đó
type CategoryWithVideos struct {
	Category `bson:",inline"`
	Videos   []Video `json:"videos" bson:"videos"`
}

// CategoryPaginateResult đại diện cho kết quả phân trang Category
type CategoryPaginateResult struct {
	Page      int64      `json:"page" bson:"page"`
	Limit     int64      `json:"limit" bson:"limit"`
	ItemCount int64      `json:"itemCount" bson:"itemCount"`
	Items     []Category `json:"items" bson:"items"`
}

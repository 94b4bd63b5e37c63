package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BannerVideo là video hiển thị ở banner trang chủ.
// Collection này chỉ giữ tối đa một document, set mới sẽ thay thế toàn bộ.
type BannerVideo struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	VideoType   string             `json:"videoType" bson:"videoType"`
	YoutubeID   *string            `json:"youtubeId,omitempty" bson:"youtubeId,omitempty"`
	VimeoID     *string            `json:"vimeoId,omitempty" bson:"vimeoId,omitempty"`
	Mp4URL      *string            `json:"mp4Url,omitempty" bson:"mp4Url,omitempty"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

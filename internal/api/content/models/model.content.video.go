package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại nguồn video được hỗ trợ
const (
	VideoTypeYouTube = "youtube"
	VideoTypeVimeo   = "vimeo"
	VideoTypeMP4     = "mp4"
)

// Video định nghĩa một video đào tạo. Đúng một trong ba field nguồn
// (YoutubeID, VimeoID, Mp4URL) khác nil, chọn theo VideoType.
type Video struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Duration    string             `json:"duration" bson:"duration"`
	VideoType   string             `json:"videoType" bson:"videoType"`
	YoutubeID   *string            `json:"youtubeId,omitempty" bson:"youtubeId,omitempty"`
	VimeoID     *string            `json:"vimeoId,omitempty" bson:"vimeoId,omitempty"`
	Mp4URL      *string            `json:"mp4Url,omitempty" bson:"mp4Url,omitempty"`
	CategoryID  primitive.ObjectID `json:"categoryId" bson:"categoryId" index:"single:1"`
	Rating      float64            `json:"rating" bson:"rating"`
	Views       int64              `json:"views" bson:"views"`
	ReleaseDate string             `json:"releaseDate" bson:"releaseDate"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// VideoPaginateResult đại diện cho kết quả phân trang Video
type VideoPaginateResult struct {
	Page      int64   `json:"page" bson:"page"`
	Limit     int64   `json:"limit" bson:"limit"`
	ItemCount int64   `json:"itemCount" bson:"itemCount"`
	Items     []Video `json:"items" bson:"items"`
}

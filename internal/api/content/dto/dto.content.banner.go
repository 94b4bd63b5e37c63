package contentdto

// BannerVideoSetInput dữ liệu đầu vào khi đặt video banner trang chủ.
// Set luôn thay thế toàn bộ banner hiện có.
type BannerVideoSetInput struct {
	Title       string  `json:"title" validate:"required,no_xss"`
	Description string  `json:"description,omitempty" validate:"omitempty,no_xss"`
	VideoType   string  `json:"videoType" validate:"required,oneof=youtube vimeo mp4"`
	YoutubeID   *string `json:"youtubeId,omitempty"`
	VimeoID     *string `json:"vimeoId,omitempty"`
	Mp4URL      *string `json:"mp4Url,omitempty"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
}

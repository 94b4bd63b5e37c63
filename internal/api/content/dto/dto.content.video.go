package contentdto

// VideoCreateInput dữ liệu đầu vào khi tạo video.
// Field nguồn có thể là ID thuần hoặc URL đầy đủ, service sẽ trích xuất ID.
type VideoCreateInput struct {
	Title       string  `json:"title" validate:"required,no_xss"`
	Description string  `json:"description,omitempty" validate:"omitempty,no_xss"`
	CategoryID  string  `json:"categoryId" validate:"required,exists=categories" transform:"str_objectid"`
	VideoType   string  `json:"videoType" validate:"required,oneof=youtube vimeo mp4"`
	YoutubeID   *string `json:"youtubeId,omitempty"`
	VimeoID     *string `json:"vimeoId,omitempty"`
	Mp4URL      *string `json:"mp4Url,omitempty"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
	Duration    string  `json:"duration,omitempty"`
	Rating      float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	ReleaseDate string  `json:"releaseDate,omitempty"`
}

// VideoUpdateInput dữ liệu đầu vào khi cập nhật video (field mask).
// Không cho đổi loại nguồn qua route cập nhật chung.
type VideoUpdateInput struct {
	Title       string  `json:"title,omitempty" validate:"omitempty,no_xss"`
	Description string  `json:"description,omitempty" validate:"omitempty,no_xss"`
	CategoryID  string  `json:"categoryId,omitempty" validate:"omitempty,exists=categories" transform:"str_objectid,optional"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
	Duration    string  `json:"duration,omitempty"`
	Rating      float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	ReleaseDate string  `json:"releaseDate,omitempty"`
}

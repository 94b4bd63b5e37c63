// Package utility - các helper xử lý nguồn video (YouTube, Vimeo, MP4).
package utility

import (
	"fmt"
	"regexp"
)

// Các regex nhận diện ID video từ các dạng URL phổ biến
var (
	youtubePatterns = []*regexp.Regexp{
		regexp.MustCompile(`youtube\.com/watch\?v=([^&\n?#]+)`),
		regexp.MustCompile(`youtu\.be/([^&\n?#]+)`),
		regexp.MustCompile(`youtube\.com/embed/([^&\n?#]+)`),
	}
	vimeoPatterns = []*regexp.Regexp{
		regexp.MustCompile(`vimeo\.com/(\d+)`),
		regexp.MustCompile(`player\.vimeo\.com/video/(\d+)`),
	}
)

// ExtractYouTubeID trích xuất YouTube video ID từ các dạng URL khác nhau
// (watch?v=, youtu.be/, embed/). Nếu không khớp pattern nào, trả về nguyên
// chuỗi đầu vào (client có thể đã gửi sẵn ID thay vì URL).
func ExtractYouTubeID(url string) string {
	for _, pattern := range youtubePatterns {
		if match := pattern.FindStringSubmatch(url); match != nil {
			return match[1]
		}
	}
	return url
}

// ExtractVimeoID trích xuất Vimeo video ID từ các dạng URL khác nhau
// (vimeo.com/, player.vimeo.com/video/). Nếu không khớp, trả về nguyên chuỗi.
func ExtractVimeoID(url string) string {
	for _, pattern := range vimeoPatterns {
		if match := pattern.FindStringSubmatch(url); match != nil {
			return match[1]
		}
	}
	return url
}

// YouTubeThumbnailURL trả về URL thumbnail chất lượng cao nhất của video YouTube
func YouTubeThumbnailURL(youtubeID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", youtubeID)
}

// VimeoThumbnailURL trả về URL thumbnail mặc định của video Vimeo
// (CDN pattern cố định, không gọi Vimeo API)
func VimeoThumbnailURL(vimeoID string) string {
	return fmt.Sprintf("https://i.vimeocdn.com/video/%s_640.jpg", vimeoID)
}

// MP4PlaceholderThumbnail là thumbnail mặc định cho video MP4 upload trực tiếp
const MP4PlaceholderThumbnail = "https://via.placeholder.com/640x360/1a1a1a/ffffff?text=MP4+Video"

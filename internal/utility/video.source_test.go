package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractYouTubeID(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch URL với param phụ", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"short URL", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short URL với query", "https://youtu.be/dQw4w9WgXcQ?si=xyz", "dQw4w9WgXcQ"},
		{"embed URL", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"ID trần giữ nguyên", "dQw4w9WgXcQ", "dQw4w9WgXcQ"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ExtractYouTubeID(c.in))
		})
	}
}

func TestExtractVimeoID(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"URL thường", "https://vimeo.com/123456789", "123456789"},
		{"player URL", "https://player.vimeo.com/video/123456789", "123456789"},
		{"ID trần giữ nguyên", "123456789", "123456789"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ExtractVimeoID(c.in))
		})
	}
}

func TestThumbnailURLs(t *testing.T) {
	assert.Equal(t, "https://img.youtube.com/vi/abc123/maxresdefault.jpg", YouTubeThumbnailURL("abc123"))
	assert.Equal(t, "https://i.vimeocdn.com/video/987_640.jpg", VimeoThumbnailURL("987"))
	assert.NotEmpty(t, MP4PlaceholderThumbnail)
}

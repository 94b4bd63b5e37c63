// Package contentsvc - Test validate và chuẩn hóa nguồn video theo videoType.
package contentsvc

import (
	"errors"
	"testing"

	"realty_training/internal/common"
	"realty_training/internal/utility"
)

func strPtr(s string) *string { return &s }

func TestResolveVideoSource_YouTube(t *testing.T) {
	source, err := resolveVideoSource("youtube", strPtr("https://www.youtube.com/watch?v=dQw4w9WgXcQ"), nil, nil, "")
	if err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}
	if source.YoutubeID == nil || *source.YoutubeID != "dQw4w9WgXcQ" {
		t.Errorf("YoutubeID = %v, muốn dQw4w9WgXcQ (trích xuất từ URL)", source.YoutubeID)
	}
	if source.VimeoID != nil || source.Mp4URL != nil {
		t.Error("các field nguồn khác loại phải là nil")
	}
	// Thumbnail trống phải được suy ra từ YouTube ID
	if source.Thumbnail != utility.YouTubeThumbnailURL("dQw4w9WgXcQ") {
		t.Errorf("Thumbnail = %q, muốn thumbnail YouTube mặc định", source.Thumbnail)
	}
}

func TestResolveVideoSource_YouTube_RawID(t *testing.T) {
	// Client gửi sẵn ID thay vì URL thì giữ nguyên
	source, err := resolveVideoSource("youtube", strPtr("dQw4w9WgXcQ"), nil, nil, "")
	if err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}
	if *source.YoutubeID != "dQw4w9WgXcQ" {
		t.Errorf("YoutubeID = %q, muốn giữ nguyên ID", *source.YoutubeID)
	}
}

func TestResolveVideoSource_Vimeo(t *testing.T) {
	source, err := resolveVideoSource("vimeo", nil, strPtr("https://vimeo.com/123456789"), nil, "")
	if err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}
	if source.VimeoID == nil || *source.VimeoID != "123456789" {
		t.Errorf("VimeoID = %v, muốn 123456789", source.VimeoID)
	}
	if source.Thumbnail != utility.VimeoThumbnailURL("123456789") {
		t.Errorf("Thumbnail = %q, muốn thumbnail Vimeo mặc định", source.Thumbnail)
	}
}

func TestResolveVideoSource_MP4(t *testing.T) {
	source, err := resolveVideoSource("mp4", nil, nil, strPtr("https://cdn.example.com/v.mp4"), "")
	if err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}
	if source.Mp4URL == nil || *source.Mp4URL != "https://cdn.example.com/v.mp4" {
		t.Errorf("Mp4URL = %v, muốn giữ nguyên URL", source.Mp4URL)
	}
	if source.Thumbnail != utility.MP4PlaceholderThumbnail {
		t.Errorf("Thumbnail = %q, muốn placeholder MP4", source.Thumbnail)
	}
}

func TestResolveVideoSource_KeepsExplicitThumbnail(t *testing.T) {
	source, err := resolveVideoSource("youtube", strPtr("abc123"), nil, nil, "https://example.com/custom.jpg")
	if err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}
	if source.Thumbnail != "https://example.com/custom.jpg" {
		t.Errorf("Thumbnail = %q, thumbnail đã chỉ định không được ghi đè", source.Thumbnail)
	}
}

func TestResolveVideoSource_MissingSourceField(t *testing.T) {
	cases := []struct {
		name      string
		videoType string
	}{
		{"youtube thiếu youtubeId", "youtube"},
		{"vimeo thiếu vimeoId", "vimeo"},
		{"mp4 thiếu mp4Url", "mp4"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := resolveVideoSource(c.videoType, nil, nil, nil, "")
			if err == nil {
				t.Fatal("thiếu field nguồn phải trả về lỗi")
			}
			var appErr *common.Error
			if !errors.As(err, &appErr) {
				t.Fatalf("lỗi phải là *common.Error, nhận %T", err)
			}
			if appErr.StatusCode != common.StatusBadRequest {
				t.Errorf("StatusCode = %d, muốn %d", appErr.StatusCode, common.StatusBadRequest)
			}
		})
	}
}

func TestResolveVideoSource_InvalidType(t *testing.T) {
	_, err := resolveVideoSource("dailymotion", nil, nil, nil, "")
	if err == nil {
		t.Fatal("videoType không hợp lệ phải trả về lỗi")
	}
}

func TestResolveVideoSource_WhitespaceOnly(t *testing.T) {
	_, err := resolveVideoSource("youtube", strPtr("   "), nil, nil, "")
	if err == nil {
		t.Fatal("youtubeId toàn khoảng trắng phải bị từ chối")
	}
}

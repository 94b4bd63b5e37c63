// Package contentsvc - các service thuộc domain content.
package contentsvc

import (
	"strings"

	"realty_training/internal/common"
	"realty_training/internal/utility"
)

// videoSource là kết quả chuẩn hóa nguồn video: đúng một field khác nil
type videoSource struct {
	YoutubeID *string
	VimeoID   *string
	Mp4URL    *string
	Thumbnail string
}

// resolveVideoSource validate và chuẩn hóa nguồn video theo videoType.
// Field nguồn tương ứng phải có mặt, các field còn lại bị bỏ qua.
// Thumbnail để trống sẽ được suy ra từ nguồn.
func resolveVideoSource(videoType string, youtubeID, vimeoID, mp4URL *string, thumbnail string) (*videoSource, error) {
	source := &videoSource{Thumbnail: thumbnail}

	switch videoType {
	case "youtube":
		if youtubeID == nil || strings.TrimSpace(*youtubeID) == "" {
			return nil, common.NewError(common.ErrCodeValidationInput, "Se requiere youtubeId para videos de YouTube", common.StatusBadRequest, nil)
		}
		id := utility.ExtractYouTubeID(strings.TrimSpace(*youtubeID))
		source.YoutubeID = &id
		if source.Thumbnail == "" {
			source.Thumbnail = utility.YouTubeThumbnailURL(id)
		}
	case "vimeo":
		if vimeoID == nil || strings.TrimSpace(*vimeoID) == "" {
			return nil, common.NewError(common.ErrCodeValidationInput, "Se requiere vimeoId para videos de Vimeo", common.StatusBadRequest, nil)
		}
		id := utility.ExtractVimeoID(strings.TrimSpace(*vimeoID))
		source.VimeoID = &id
		if source.Thumbnail == "" {
			source.Thumbnail = utility.VimeoThumbnailURL(id)
		}
	case "mp4":
		if mp4URL == nil || strings.TrimSpace(*mp4URL) == "" {
			return nil, common.NewError(common.ErrCodeValidationInput, "Se requiere mp4Url para videos MP4", common.StatusBadRequest, nil)
		}
		url := strings.TrimSpace(*mp4URL)
		source.Mp4URL = &url
		if source.Thumbnail == "" {
			source.Thumbnail = utility.MP4PlaceholderThumbnail
		}
	default:
		return nil, common.NewError(common.ErrCodeValidationInput, "Tipo de video inválido", common.StatusBadRequest, nil)
	}

	return source, nil
}

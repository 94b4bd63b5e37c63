// Package reportsvc - service thống kê: tính toán thuần từ các bản ghi
// tiến độ, tách khỏi tầng truy cập dữ liệu để test không cần DB.
package reportsvc

import (
	"math"
	"sort"

	progressmodels "realty_training/internal/api/progress/models"
	reportdto "realty_training/internal/api/report/dto"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// roundRate làm tròn tỉ lệ phần trăm về 2 chữ số thập phân
func roundRate(rate float64) float64 {
	return math.Round(rate*100) / 100
}

// computeStatsFromRecords tính VideoStats từ các bản ghi tiến độ của một
// video. Không có bản ghi nào thì mọi chỉ số là 0, không phải lỗi.
func computeStatsFromRecords(records []progressmodels.VideoProgress) reportdto.VideoStats {
	stats := reportdto.VideoStats{TotalViews: int64(len(records))}
	var watchTimeSum int64
	for _, r := range records {
		if r.Completed {
			stats.TotalCompletions++
		}
		watchTimeSum += r.WatchTime
	}
	if stats.TotalViews > 0 {
		stats.AverageCompletionRate = roundRate(float64(stats.TotalCompletions) / float64(stats.TotalViews) * 100)
		stats.AverageWatchTime = watchTimeSum / stats.TotalViews
	}
	return stats
}

// videoViewCount là số lượt xem (= số bản ghi tiến độ) của một video
type videoViewCount struct {
	VideoID primitive.ObjectID
	Count   int64
}

// rankVideosByViews xếp hạng video theo số lượt xem giảm dần.
// Cùng số lượt xem thì sắp theo videoId tăng dần để kết quả ổn định.
func rankVideosByViews(records []progressmodels.VideoProgress) []videoViewCount {
	counts := make(map[primitive.ObjectID]int64)
	for _, r := range records {
		counts[r.VideoID]++
	}
	ranked := make([]videoViewCount, 0, len(counts))
	for id, count := range counts {
		ranked = append(ranked, videoViewCount{VideoID: id, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].VideoID.Hex() < ranked[j].VideoID.Hex()
	})
	return ranked
}

// sortRecentProgress sắp các bản ghi theo lastWatched giảm dần,
// cùng thời điểm thì theo videoId tăng dần.
func sortRecentProgress(records []progressmodels.VideoProgress) []progressmodels.VideoProgress {
	sorted := make([]progressmodels.VideoProgress, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].LastWatched != sorted[j].LastWatched {
			return sorted[i].LastWatched > sorted[j].LastWatched
		}
		return sorted[i].VideoID.Hex() < sorted[j].VideoID.Hex()
	})
	return sorted
}

// categoryRollup đếm số bản ghi tiến độ và số hoàn thành nằm trong một
// tập video (các video của một danh mục)
func categoryRollup(videoIDs map[primitive.ObjectID]bool, records []progressmodels.VideoProgress) (watched int64, completed int64) {
	for _, r := range records {
		if !videoIDs[r.VideoID] {
			continue
		}
		watched++
		if r.Completed {
			completed++
		}
	}
	return watched, completed
}

// completionRate trả về completed/watched nhân 100, 0 khi watched = 0
func completionRate(completed, watched int64) float64 {
	if watched == 0 {
		return 0
	}
	return roundRate(float64(completed) / float64(watched) * 100)
}

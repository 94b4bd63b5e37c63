package reportsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	authsvc "realty_training/internal/api/auth/service"
	contentsvc "realty_training/internal/api/content/service"
	progresssvc "realty_training/internal/api/progress/service"
	reportdto "realty_training/internal/api/report/dto"
	"realty_training/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportService tổng hợp thống kê từ các collection của những domain khác.
// Mọi phương thức đều tính lại từ trạng thái hiện tại của store, không
// cache, vì tiến độ có thể thay đổi giữa hai lần gọi.
type ReportService struct {
	progressService *progresssvc.VideoProgressService
	videoService    *contentsvc.VideoService
	categoryService *contentsvc.CategoryService
	userService     *authsvc.UserService
}

// NewReportService tạo mới ReportService
func NewReportService() (*ReportService, error) {
	progressService, err := progresssvc.NewVideoProgressService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video progress service: %v", err)
	}
	videoService, err := contentsvc.NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}
	categoryService, err := contentsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	return &ReportService{
		progressService: progressService,
		videoService:    videoService,
		categoryService: categoryService,
		userService:     userService,
	}, nil
}

// ComputeVideoStats tính thống kê của một video từ các bản ghi tiến độ.
// Video không có tiến độ nào trả về các chỉ số 0.
func (s *ReportService) ComputeVideoStats(ctx context.Context, videoID primitive.ObjectID) (reportdto.VideoStats, error) {
	records, err := s.progressService.Find(ctx, bson.M{"videoId": videoID}, nil)
	if err != nil {
		return reportdto.VideoStats{}, err
	}
	return computeStatsFromRecords(records), nil
}

// GetVideoDetailed trả về video kèm thống kê, 404 nếu video không tồn tại
func (s *ReportService) GetVideoDetailed(ctx context.Context, videoID primitive.ObjectID) (*reportdto.VideoWithStats, error) {
	video, err := s.videoService.FindOneById(ctx, videoID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeDatabaseQuery, "Video no encontrado", common.StatusNotFound, nil)
		}
		return nil, err
	}
	stats, err := s.ComputeVideoStats(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return &reportdto.VideoWithStats{Video: video, Stats: stats}, nil
}

// ComputeCategoryStats tính thống kê của một danh mục từ tiến độ của các
// video thuộc danh mục đó
func (s *ReportService) ComputeCategoryStats(ctx context.Context, categoryID primitive.ObjectID) (reportdto.CategoryStats, error) {
	var stats reportdto.CategoryStats

	videos, err := s.videoService.FindByCategory(ctx, categoryID)
	if err != nil {
		return stats, err
	}
	stats.TotalVideos = int64(len(videos))
	if len(videos) == 0 {
		return stats, nil
	}

	videoIDs := make([]primitive.ObjectID, 0, len(videos))
	idSet := make(map[primitive.ObjectID]bool, len(videos))
	for _, v := range videos {
		videoIDs = append(videoIDs, v.ID)
		idSet[v.ID] = true
	}

	records, err := s.progressService.Find(ctx, bson.M{"videoId": bson.M{"$in": videoIDs}}, nil)
	if err != nil {
		return stats, err
	}

	watched, completed := categoryRollup(idSet, records)
	stats.TotalViews = watched
	stats.TotalCompletions = completed
	stats.CompletionRate = completionRate(completed, watched)
	return stats, nil
}

// BuildUserDashboard tổng hợp tiến độ học của một user: các chỉ số tổng,
// 5 video xem gần nhất kèm thống kê và tiến độ theo từng danh mục.
// Video đã bị xóa nhưng còn bản ghi tiến độ bị bỏ qua, không làm hỏng dashboard.
func (s *ReportService) BuildUserDashboard(ctx context.Context, userEmail string) (*reportdto.UserDashboard, error) {
	email := strings.ToLower(strings.TrimSpace(userEmail))

	progressList, err := s.progressService.GetByUser(ctx, email)
	if err != nil {
		return nil, err
	}

	dashboard := &reportdto.UserDashboard{
		UserEmail:          email,
		TotalVideosWatched: int64(len(progressList)),
		RecentVideos:       make([]reportdto.VideoWithStats, 0, 5),
		ProgressByCategory: make(map[string]reportdto.CategoryProgress),
	}
	for _, p := range progressList {
		if p.Completed {
			dashboard.TotalVideosCompleted++
		}
		dashboard.TotalWatchTime += p.WatchTime
	}
	dashboard.CompletionRate = completionRate(dashboard.TotalVideosCompleted, dashboard.TotalVideosWatched)

	// 5 video xem gần nhất, bỏ qua video đã bị xóa
	for _, p := range sortRecentProgress(progressList) {
		if len(dashboard.RecentVideos) >= 5 {
			break
		}
		video, err := s.videoService.FindOneById(ctx, p.VideoID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				continue
			}
			return nil, err
		}
		stats, err := s.ComputeVideoStats(ctx, p.VideoID)
		if err != nil {
			return nil, err
		}
		dashboard.RecentVideos = append(dashboard.RecentVideos, reportdto.VideoWithStats{Video: video, Stats: stats})
	}

	// Tiến độ theo từng danh mục
	categories, err := s.categoryService.Find(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		videos, err := s.videoService.FindByCategory(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		idSet := make(map[primitive.ObjectID]bool, len(videos))
		for _, v := range videos {
			idSet[v.ID] = true
		}
		watched, completed := categoryRollup(idSet, progressList)
		dashboard.ProgressByCategory[category.Name] = reportdto.CategoryProgress{
			TotalVideos:     int64(len(videos)),
			WatchedVideos:   watched,
			CompletedVideos: completed,
			CompletionRate:  completionRate(completed, watched),
		}
	}

	return dashboard, nil
}

// BuildAdminStats tổng hợp thống kê toàn nền tảng: các chỉ số tổng,
// top 5 video xem nhiều nhất và thống kê theo danh mục. Quét toàn bộ
// bản ghi tiến độ mỗi lần gọi, chấp nhận được ở quy mô hiện tại.
func (s *ReportService) BuildAdminStats(ctx context.Context) (*reportdto.AdminStats, error) {
	totalUsers, err := s.userService.CountDocuments(ctx, nil)
	if err != nil {
		return nil, err
	}
	totalVideos, err := s.videoService.CountDocuments(ctx, nil)
	if err != nil {
		return nil, err
	}
	totalCategories, err := s.categoryService.CountDocuments(ctx, nil)
	if err != nil {
		return nil, err
	}

	allProgress, err := s.progressService.Find(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	stats := &reportdto.AdminStats{
		Overview: reportdto.AdminOverview{
			TotalUsers:      totalUsers,
			TotalVideos:     totalVideos,
			TotalCategories: totalCategories,
			TotalVideoViews: int64(len(allProgress)),
		},
		TopVideos:     make([]reportdto.TopVideo, 0, 5),
		CategoryStats: make(map[string]reportdto.CategoryStats),
	}
	for _, p := range allProgress {
		if p.Completed {
			stats.Overview.TotalCompletions++
		}
		stats.Overview.TotalWatchTime += p.WatchTime
	}
	stats.Overview.OverallCompletionRate = completionRate(stats.Overview.TotalCompletions, stats.Overview.TotalVideoViews)

	// Top 5 video xem nhiều nhất, bỏ qua video đã bị xóa
	for _, entry := range rankVideosByViews(allProgress) {
		if len(stats.TopVideos) >= 5 {
			break
		}
		video, err := s.videoService.FindOneById(ctx, entry.VideoID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				continue
			}
			return nil, err
		}
		videoStats, err := s.ComputeVideoStats(ctx, entry.VideoID)
		if err != nil {
			return nil, err
		}
		stats.TopVideos = append(stats.TopVideos, reportdto.TopVideo{
			Video:     reportdto.VideoWithStats{Video: video, Stats: videoStats},
			ViewCount: entry.Count,
		})
	}

	// Thống kê theo danh mục
	categories, err := s.categoryService.Find(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		videos, err := s.videoService.FindByCategory(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		idSet := make(map[primitive.ObjectID]bool, len(videos))
		for _, v := range videos {
			idSet[v.ID] = true
		}
		watched, completed := categoryRollup(idSet, allProgress)
		stats.CategoryStats[category.Name] = reportdto.CategoryStats{
			TotalVideos:      int64(len(videos)),
			TotalViews:       watched,
			TotalCompletions: completed,
			CompletionRate:   completionRate(completed, watched),
		}
	}

	return stats, nil
}

// Package reportdto - các cấu trúc kết quả thống kê (derived, không lưu DB
// trừ snapshot định kỳ).
package reportdto

import (
	contentmodels "realty_training/internal/api/content/models"
)

// VideoStats thống kê của một video tính từ các bản ghi tiến độ
type VideoStats struct {
	TotalViews            int64   `json:"totalViews" bson:"totalViews"`
	TotalCompletions      int64   `json:"totalCompletions" bson:"totalCompletions"`
	AverageCompletionRate float64 `json:"averageCompletionRate" bson:"averageCompletionRate"`
	AverageWatchTime      int64   `json:"averageWatchTime" bson:"averageWatchTime"`
}

// VideoWithStats là Video kèm thống kê
type VideoWithStats struct {
	contentmodels.Video `bson:",inline"`
	Stats               VideoStats `json:"stats" bson:"stats"`
}

// TopVideo là một mục trong bảng xếp hạng video xem nhiều nhất
type TopVideo struct {
	Video     VideoWithStats `json:"video" bson:"video"`
	ViewCount int64          `json:"viewCount" bson:"viewCount"`
}

// CategoryStats thống kê của một danh mục
type CategoryStats struct {
	TotalVideos      int64   `json:"totalVideos" bson:"totalVideos"`
	TotalViews       int64   `json:"totalViews" bson:"totalViews"`
	TotalCompletions int64   `json:"totalCompletions" bson:"totalCompletions"`
	CompletionRate   float64 `json:"completionRate" bson:"completionRate"`
}

// CategoryProgress tiến độ của một user trong một danh mục
type CategoryProgress struct {
	TotalVideos     int64   `json:"totalVideos" bson:"totalVideos"`
	WatchedVideos   int64   `json:"watchedVideos" bson:"watchedVideos"`
	CompletedVideos int64   `json:"completedVideos" bson:"completedVideos"`
	CompletionRate  float64 `json:"completionRate" bson:"completionRate"`
}

// UserDashboard tổng hợp tiến độ học của một user
type UserDashboard struct {
	UserEmail            string                      `json:"userEmail" bson:"userEmail"`
	TotalVideosWatched   int64                       `json:"totalVideosWatched" bson:"totalVideosWatched"`
	TotalVideosCompleted int64                       `json:"totalVideosCompleted" bson:"totalVideosCompleted"`
	TotalWatchTime       int64                       `json:"totalWatchTime" bson:"totalWatchTime"`
	CompletionRate       float64                     `json:"completionRate" bson:"completionRate"`
	RecentVideos         []VideoWithStats            `json:"recentVideos" bson:"recentVideos"`
	ProgressByCategory   map[string]CategoryProgress `json:"progressByCategory" bson:"progressByCategory"`
}

// AdminOverview các chỉ số tổng của toàn nền tảng
type AdminOverview struct {
	TotalUsers            int64   `json:"totalUsers" bson:"totalUsers"`
	TotalVideos           int64   `json:"totalVideos" bson:"totalVideos"`
	TotalCategories       int64   `json:"totalCategories" bson:"totalCategories"`
	TotalVideoViews       int64   `json:"totalVideoViews" bson:"totalVideoViews"`
	TotalCompletions      int64   `json:"totalCompletions" bson:"totalCompletions"`
	TotalWatchTime        int64   `json:"totalWatchTime" bson:"totalWatchTime"`
	OverallCompletionRate float64 `json:"overallCompletionRate" bson:"overallCompletionRate"`
}

// AdminStats kết quả GET /admin/stats
type AdminStats struct {
	Overview      AdminOverview            `json:"overview" bson:"overview"`
	TopVideos     []TopVideo               `json:"topVideos" bson:"topVideos"`
	CategoryStats map[string]CategoryStats `json:"categoryStats" bson:"categoryStats"`
}

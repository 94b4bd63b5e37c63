package main

import (
	"context"

	"realty_training/config"
	authmodels "realty_training/internal/api/auth/models"
	contentmodels "realty_training/internal/api/content/models"
	progressmodels "realty_training/internal/api/progress/models"
	reportmodels "realty_training/internal/api/report/models"
	settingsmodels "realty_training/internal/api/settings/models"
	systemmodels "realty_training/internal/api/system/models"
	"realty_training/internal/database"
	"realty_training/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Categories = "categories"
	global.MongoDB_ColNames.Videos = "videos"
	global.MongoDB_ColNames.VideoProgress = "video_progress"
	global.MongoDB_ColNames.Settings = "settings"
	global.MongoDB_ColNames.BannerVideos = "banner_videos"
	global.MongoDB_ColNames.StatusChecks = "status_checks"
	global.MongoDB_ColNames.ReportSnapshots = "report_snapshots"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khơi tạo các index cho các collection (đọc từ tag `index` trên model)
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Categories), contentmodels.Category{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Videos), contentmodels.Video{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.BannerVideos), contentmodels.BannerVideo{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.VideoProgress), progressmodels.VideoProgress{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Settings), settingsmodels.Settings{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.StatusChecks), systemmodels.StatusCheck{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.ReportSnapshots), reportmodels.ReportSnapshot{})

	// Các index compound không mô tả được bằng tag (unique userEmail+videoId, sort dashboard, ...)
	if err := database.CreateTrainingAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Errorf("Failed to create additional indexes: %v", err)
	}
}

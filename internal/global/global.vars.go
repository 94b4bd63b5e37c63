package global

import (
	"realty_training/config"
	"realty_training/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users           string // Tên collection cho người dùng
	Categories      string // Tên collection cho danh mục khóa học
	Videos          string // Tên collection cho video đào tạo
	VideoProgress   string // Tên collection cho tiến độ xem video (mỗi cặp user/video một bản ghi)
	Settings        string // Tên collection cho cấu hình giao diện nền tảng
	BannerVideos    string // Tên collection cho video banner trang chủ
	StatusChecks    string // Tên collection cho status check (liveness ping từ client)
	ReportSnapshots string // Tên collection cho snapshot thống kê định kỳ
}

// Các biến toàn cục
var Validate *validator.Validate                               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                 // Cấu hình của server
var MongoDB_ColNames = *new(MongoDB_CollectionName)            // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases

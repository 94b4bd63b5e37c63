package main

import (
	"context"

	contentsvc "realty_training/internal/api/content/service"
	settingssvc "realty_training/internal/api/settings/service"
	"realty_training/internal/logger"
)

// InitDefaultData gieo dữ liệu mặc định: 9 danh mục chuẩn và document settings nền tảng.
// Idempotent, chỉ ghi khi collection còn trống.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	ctx := context.Background()

	// 1. Gieo danh mục mặc định nếu collection categories còn trống
	categoryService, err := contentsvc.NewCategoryService()
	if err != nil {
		log.Fatalf("Failed to initialize category service: %v", err)
	}
	if err := categoryService.SeedDefaultsIfEmpty(ctx); err != nil {
		log.Fatalf("Failed to seed default categories: %v", err)
	}
	log.Info("✅ [INIT] Step 1: Default categories ensured")

	// 2. Đảm bảo document settings nền tảng tồn tại
	settingsService, err := settingssvc.NewSettingsService()
	if err != nil {
		log.Fatalf("Failed to initialize settings service: %v", err)
	}
	if _, err := settingsService.GetOrCreateDefault(ctx); err != nil {
		log.Fatalf("Failed to ensure platform settings: %v", err)
	}
	log.Info("✅ [INIT] Step 2: Platform settings ensured")

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}

// Package settingssvc - service cấu hình giao diện nền tảng.
package settingssvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	basesvc "realty_training/internal/api/base/service"
	settingsdto "realty_training/internal/api/settings/dto"
	models "realty_training/internal/api/settings/models"
	"realty_training/internal/common"
	"realty_training/internal/global"
	"realty_training/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// settingsCache giữ document settings trong bộ nhớ, GET /settings là
// endpoint public được gọi mỗi lần load trang nên không cần chạm DB mỗi request
var settingsCache = utility.NewCache(5*time.Minute, 5*time.Minute)

// SettingsService là service quản lý cấu hình giao diện
type SettingsService struct {
	basesvc.BaseServiceMongo[models.Settings]
}

// NewSettingsService tạo mới SettingsService
func NewSettingsService() (*SettingsService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Settings)
	if !exist {
		return nil, fmt.Errorf("failed to get settings collection: %v", common.ErrNotFound)
	}
	return &SettingsService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.Settings](collection),
	}, nil
}

// singletonFilter là filter định danh document settings duy nhất
func singletonFilter() bson.M {
	return bson.M{"key": models.SettingsKeyPlatform}
}

// GetOrCreateDefault trả về cấu hình hiện tại, tạo document mặc định
// khi chưa có
func (s *SettingsService) GetOrCreateDefault(ctx context.Context) (models.Settings, error) {
	if cached, ok := settingsCache.Get(models.SettingsKeyPlatform); ok {
		if settings, ok := cached.(models.Settings); ok {
			return settings, nil
		}
	}

	settings, err := s.FindOne(ctx, singletonFilter(), nil)
	if err == nil {
		settingsCache.Set(models.SettingsKeyPlatform, settings)
		return settings, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return models.Settings{}, err
	}
	created, err := s.InsertOne(ctx, models.DefaultSettings())
	if err != nil {
		return models.Settings{}, err
	}
	settingsCache.Set(models.SettingsKeyPlatform, created)
	return created, nil
}

// UpdateSettings cập nhật cấu hình theo field mask với upsert: chưa có
// document thì tạo từ mặc định rồi áp mask lên.
func (s *SettingsService) UpdateSettings(ctx context.Context, input *settingsdto.SettingsUpdateInput) (models.Settings, error) {
	defaults := models.DefaultSettings()
	set := map[string]interface{}{}
	setOnInsert := map[string]interface{}{
		"key":       defaults.Key,
		"createdAt": time.Now().UnixMilli(),
	}
	applyMaskField(set, setOnInsert, "logoUrl", input.LogoURL, defaults.LogoURL)
	applyMaskField(set, setOnInsert, "companyName", input.CompanyName, defaults.CompanyName)
	applyMaskField(set, setOnInsert, "loginBackgroundUrl", input.LoginBackgroundURL, defaults.LoginBackgroundURL)
	applyMaskField(set, setOnInsert, "bannerUrl", input.BannerURL, defaults.BannerURL)
	applyMaskField(set, setOnInsert, "loginTitle", input.LoginTitle, defaults.LoginTitle)
	applyMaskField(set, setOnInsert, "loginSubtitle", input.LoginSubtitle, defaults.LoginSubtitle)
	applyMaskField(set, setOnInsert, "heroTitle", input.HeroTitle, defaults.HeroTitle)
	applyMaskField(set, setOnInsert, "heroSubtitle", input.HeroSubtitle, defaults.HeroSubtitle)
	applyMaskField(set, setOnInsert, "theme", input.Theme, defaults.Theme)

	update := &basesvc.UpdateData{Set: set, SetOnInsert: setOnInsert}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	updated, err := s.FindOneAndUpdate(ctx, singletonFilter(), update, opts)
	if err != nil {
		return models.Settings{}, err
	}
	settingsCache.Set(models.SettingsKeyPlatform, updated)
	return updated, nil
}

// applyMaskField đưa giá trị vào $set nếu có trong mask, ngược lại đưa
// giá trị mặc định vào $setOnInsert để lần upsert đầu có đủ field
func applyMaskField(set, setOnInsert map[string]interface{}, key string, value *string, defaultValue string) {
	if value != nil {
		set[key] = *value
		return
	}
	setOnInsert[key] = defaultValue
}

// Package settingssvc - Test tạo settings mặc định và cache trên store giả.
package settingssvc

import (
	"context"
	"testing"
	"time"

	basesvc "realty_training/internal/api/base/service"
	settingsdto "realty_training/internal/api/settings/dto"
	models "realty_training/internal/api/settings/models"
	"realty_training/internal/common"
	"realty_training/internal/utility"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeSettingsStore giữ tối đa một document settings, đếm số lần chạm DB
// để kiểm chứng cache.
type fakeSettingsStore struct {
	basesvc.BaseServiceMongo[models.Settings]
	doc       *models.Settings
	findCalls int
}

func (f *fakeSettingsStore) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.Settings, error) {
	f.findCalls++
	if f.doc == nil {
		return models.Settings{}, common.ErrNotFound
	}
	return *f.doc, nil
}

func (f *fakeSettingsStore) InsertOne(ctx context.Context, data models.Settings) (models.Settings, error) {
	data.ID = primitive.NewObjectID()
	data.CreatedAt = time.Now().UnixMilli()
	f.doc = &data
	return data, nil
}

func (f *fakeSettingsStore) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (models.Settings, error) {
	data := update.(*basesvc.UpdateData)
	doc := models.Settings{}
	if f.doc != nil {
		doc = *f.doc
	} else {
		doc.ID = primitive.NewObjectID()
		for k, v := range data.SetOnInsert {
			applySettingsField(&doc, k, v)
		}
	}
	for k, v := range data.Set {
		applySettingsField(&doc, k, v)
	}
	f.doc = &doc
	return doc, nil
}

func applySettingsField(doc *models.Settings, key string, value interface{}) {
	switch key {
	case "key":
		doc.Key = value.(string)
	case "companyName":
		doc.CompanyName = value.(string)
	case "heroTitle":
		doc.HeroTitle = value.(string)
	case "theme":
		doc.Theme = value.(string)
	case "createdAt":
		doc.CreatedAt = value.(int64)
	}
}

// resetCache thay cache package-level bằng cache mới cho từng test
func resetCache() {
	settingsCache = utility.NewCache(5*time.Minute, 5*time.Minute)
}

func strPtr(s string) *string { return &s }

func TestGetOrCreateDefault_TaoDocumentMacDinh(t *testing.T) {
	resetCache()
	store := &fakeSettingsStore{}
	service := &SettingsService{BaseServiceMongo: store}

	settings, err := service.GetOrCreateDefault(context.Background())
	if err != nil {
		t.Fatalf("GetOrCreateDefault lỗi: %v", err)
	}
	if store.doc == nil {
		t.Fatal("collection rỗng thì phải insert document mặc định")
	}

	defaults := models.DefaultSettings()
	if settings.Key != models.SettingsKeyPlatform {
		t.Errorf("Key = %q, muốn %q", settings.Key, models.SettingsKeyPlatform)
	}
	if settings.CompanyName != defaults.CompanyName || settings.Theme != defaults.Theme {
		t.Errorf("document tạo mới phải mang giá trị mặc định, nhận %+v", settings)
	}
}

func TestGetOrCreateDefault_LanHaiDungCache(t *testing.T) {
	resetCache()
	store := &fakeSettingsStore{}
	service := &SettingsService{BaseServiceMongo: store}

	if _, err := service.GetOrCreateDefault(context.Background()); err != nil {
		t.Fatalf("GetOrCreateDefault lỗi: %v", err)
	}
	callsAfterFirst := store.findCalls

	if _, err := service.GetOrCreateDefault(context.Background()); err != nil {
		t.Fatalf("GetOrCreateDefault lần hai lỗi: %v", err)
	}
	if store.findCalls != callsAfterFirst {
		t.Errorf("lần gọi thứ hai phải trả từ cache, không chạm DB (findCalls %d -> %d)", callsAfterFirst, store.findCalls)
	}
}

func TestUpdateSettings_CapNhatCacheCungDB(t *testing.T) {
	resetCache()
	store := &fakeSettingsStore{}
	service := &SettingsService{BaseServiceMongo: store}

	updated, err := service.UpdateSettings(context.Background(), &settingsdto.SettingsUpdateInput{
		HeroTitle: strPtr("Capacitación ONE"),
	})
	if err != nil {
		t.Fatalf("UpdateSettings lỗi: %v", err)
	}
	if updated.HeroTitle != "Capacitación ONE" {
		t.Errorf("HeroTitle = %q, muốn giá trị vừa cập nhật", updated.HeroTitle)
	}

	// GET sau update phải thấy ngay giá trị mới từ cache, không chạm DB
	settings, err := service.GetOrCreateDefault(context.Background())
	if err != nil {
		t.Fatalf("GetOrCreateDefault lỗi: %v", err)
	}
	if settings.HeroTitle != "Capacitación ONE" {
		t.Errorf("cache phải giữ document sau update, nhận HeroTitle %q", settings.HeroTitle)
	}
	if store.findCalls != 0 {
		t.Errorf("đọc sau update phải trả từ cache, findCalls = %d", store.findCalls)
	}
}

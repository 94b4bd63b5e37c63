// Package contentsvc - Test cascade delete và banner replace trên store giả.
package contentsvc

import (
	"context"
	"testing"

	basesvc "realty_training/internal/api/base/service"
	contentdto "realty_training/internal/api/content/dto"
	contentmodels "realty_training/internal/api/content/models"
	progressmodels "realty_training/internal/api/progress/models"
	progresssvc "realty_training/internal/api/progress/service"
	"realty_training/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Các fake store chỉ implement những method mà service gọi tới,
// phần còn lại panic qua interface nil.

type fakeCategoryStore struct {
	basesvc.BaseServiceMongo[contentmodels.Category]
	categories map[primitive.ObjectID]contentmodels.Category
}

func (f *fakeCategoryStore) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.categories[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.categories, id)
	return nil
}

type fakeVideoStore struct {
	basesvc.BaseServiceMongo[contentmodels.Video]
	videos map[primitive.ObjectID]contentmodels.Video
}

func (f *fakeVideoStore) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]contentmodels.Video, error) {
	categoryID := filter.(bson.M)["categoryId"].(primitive.ObjectID)
	var result []contentmodels.Video
	for _, v := range f.videos {
		if v.CategoryID == categoryID {
			result = append(result, v)
		}
	}
	return result, nil
}

func (f *fakeVideoStore) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	categoryID := filter.(bson.M)["categoryId"].(primitive.ObjectID)
	var deleted int64
	for id, v := range f.videos {
		if v.CategoryID == categoryID {
			delete(f.videos, id)
			deleted++
		}
	}
	return deleted, nil
}

func (f *fakeVideoStore) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.videos[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.videos, id)
	return nil
}

type fakeProgressStore struct {
	basesvc.BaseServiceMongo[progressmodels.VideoProgress]
	records []progressmodels.VideoProgress
}

func (f *fakeProgressStore) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	ids := filter.(bson.M)["videoId"].(bson.M)["$in"].([]primitive.ObjectID)
	inSet := map[primitive.ObjectID]bool{}
	for _, id := range ids {
		inSet[id] = true
	}
	var kept []progressmodels.VideoProgress
	var deleted int64
	for _, r := range f.records {
		if inSet[r.VideoID] {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	f.records = kept
	return deleted, nil
}

type fakeBannerStore struct {
	basesvc.BaseServiceMongo[contentmodels.BannerVideo]
	banners []contentmodels.BannerVideo
}

func (f *fakeBannerStore) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	deleted := int64(len(f.banners))
	f.banners = nil
	return deleted, nil
}

func (f *fakeBannerStore) InsertOne(ctx context.Context, data contentmodels.BannerVideo) (contentmodels.BannerVideo, error) {
	data.ID = primitive.NewObjectID()
	f.banners = append(f.banners, data)
	return data, nil
}

func newCascadeFixture() (*CategoryService, *fakeCategoryStore, *fakeVideoStore, *fakeProgressStore) {
	categoryStore := &fakeCategoryStore{categories: map[primitive.ObjectID]contentmodels.Category{}}
	videoStore := &fakeVideoStore{videos: map[primitive.ObjectID]contentmodels.Video{}}
	progressStore := &fakeProgressStore{}

	progressService := &progresssvc.VideoProgressService{BaseServiceMongo: progressStore}
	videoService := &VideoService{BaseServiceMongo: videoStore, progressService: progressService}
	categoryService := &CategoryService{BaseServiceMongo: categoryStore, videoService: videoService}
	return categoryService, categoryStore, videoStore, progressStore
}

func TestDeleteCascade_XoaDanhMucKeoTheoVideoVaTienDo(t *testing.T) {
	categoryService, categoryStore, videoStore, progressStore := newCascadeFixture()

	target := primitive.NewObjectID()
	other := primitive.NewObjectID()
	categoryStore.categories[target] = contentmodels.Category{ID: target, Name: "Ventas"}
	categoryStore.categories[other] = contentmodels.Category{ID: other, Name: "Marketing"}

	videoA := primitive.NewObjectID()
	videoB := primitive.NewObjectID()
	videoOther := primitive.NewObjectID()
	videoStore.videos[videoA] = contentmodels.Video{ID: videoA, CategoryID: target}
	videoStore.videos[videoB] = contentmodels.Video{ID: videoB, CategoryID: target}
	videoStore.videos[videoOther] = contentmodels.Video{ID: videoOther, CategoryID: other}

	progressStore.records = []progressmodels.VideoProgress{
		{UserEmail: "a@example.com", VideoID: videoA},
		{UserEmail: "b@example.com", VideoID: videoA},
		{UserEmail: "a@example.com", VideoID: videoB},
		{UserEmail: "a@example.com", VideoID: videoOther},
	}

	if err := categoryService.DeleteCascade(context.Background(), target); err != nil {
		t.Fatalf("DeleteCascade lỗi: %v", err)
	}

	if _, ok := categoryStore.categories[target]; ok {
		t.Error("danh mục phải bị xóa")
	}
	if _, ok := categoryStore.categories[other]; !ok {
		t.Error("danh mục khác không được đụng tới")
	}
	if len(videoStore.videos) != 1 {
		t.Errorf("chỉ video của danh mục khác được giữ lại, còn %d video", len(videoStore.videos))
	}
	if _, ok := videoStore.videos[videoOther]; !ok {
		t.Error("video thuộc danh mục khác không được xóa")
	}
	if len(progressStore.records) != 1 {
		t.Fatalf("tiến độ của video đã xóa phải bị xóa theo, còn %d bản ghi", len(progressStore.records))
	}
	if progressStore.records[0].VideoID != videoOther {
		t.Error("bản ghi tiến độ còn lại phải thuộc video của danh mục khác")
	}
}

func TestDeleteVideoCascade_XoaTienDoCuaVideo(t *testing.T) {
	videoStore := &fakeVideoStore{videos: map[primitive.ObjectID]contentmodels.Video{}}
	progressStore := &fakeProgressStore{}
	progressService := &progresssvc.VideoProgressService{BaseServiceMongo: progressStore}
	videoService := &VideoService{BaseServiceMongo: videoStore, progressService: progressService}

	target := primitive.NewObjectID()
	other := primitive.NewObjectID()
	videoStore.videos[target] = contentmodels.Video{ID: target}
	videoStore.videos[other] = contentmodels.Video{ID: other}
	progressStore.records = []progressmodels.VideoProgress{
		{UserEmail: "a@example.com", VideoID: target},
		{UserEmail: "a@example.com", VideoID: other},
	}

	if err := videoService.DeleteVideoCascade(context.Background(), target); err != nil {
		t.Fatalf("DeleteVideoCascade lỗi: %v", err)
	}
	if len(progressStore.records) != 1 || progressStore.records[0].VideoID != other {
		t.Errorf("chỉ tiến độ của video bị xóa mới bị xóa theo, còn %+v", progressStore.records)
	}
}

func TestSetBanner_ThayTheToanBoBannerCu(t *testing.T) {
	store := &fakeBannerStore{banners: []contentmodels.BannerVideo{
		{ID: primitive.NewObjectID(), Title: "Banner cũ 1"},
		{ID: primitive.NewObjectID(), Title: "Banner cũ 2"},
	}}
	service := &BannerVideoService{BaseServiceMongo: store}

	youtubeURL := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	banner, err := service.SetBanner(context.Background(), &contentdto.BannerVideoSetInput{
		Title:     "Bienvenida",
		VideoType: "youtube",
		YoutubeID: &youtubeURL,
	})
	if err != nil {
		t.Fatalf("SetBanner lỗi: %v", err)
	}

	// Đặt banner mới phải thay thế toàn bộ banner cũ, collection chỉ còn 1
	if len(store.banners) != 1 {
		t.Fatalf("store có %d banner, muốn 1", len(store.banners))
	}
	if store.banners[0].Title != "Bienvenida" {
		t.Errorf("banner còn lại phải là banner mới, nhận %q", store.banners[0].Title)
	}
	if banner.YoutubeID == nil || *banner.YoutubeID != "dQw4w9WgXcQ" {
		t.Errorf("YoutubeID phải được extract từ URL, nhận %v", banner.YoutubeID)
	}
}

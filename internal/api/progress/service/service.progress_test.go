// Package progresssvc - Test hành vi upsert/patch trên store giả trong bộ nhớ.
package progresssvc

import (
	"context"
	"errors"
	"testing"

	basesvc "realty_training/internal/api/base/service"
	progressdto "realty_training/internal/api/progress/dto"
	models "realty_training/internal/api/progress/models"
	"realty_training/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeProgressStore giữ bản ghi theo key (userEmail, videoId) và áp update
// giống semantics FindOneAndUpdate với upsert của Mongo. Chỉ implement các
// method service này dùng, phần còn lại panic qua interface nil.
type fakeProgressStore struct {
	basesvc.BaseServiceMongo[models.VideoProgress]
	records map[string]models.VideoProgress
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{records: map[string]models.VideoProgress{}}
}

func storeKey(email string, videoID primitive.ObjectID) string {
	return email + "|" + videoID.Hex()
}

func keyFromFilter(filter interface{}) string {
	fm := filter.(bson.M)
	return storeKey(fm["userEmail"].(string), fm["videoId"].(primitive.ObjectID))
}

func applySetFields(rec *models.VideoProgress, set map[string]interface{}) {
	for k, v := range set {
		switch k {
		case "progressPercentage":
			rec.ProgressPercentage = v.(float64)
		case "watchTime":
			rec.WatchTime = v.(int64)
		case "completed":
			rec.Completed = v.(bool)
		case "lastWatched":
			rec.LastWatched = v.(int64)
		}
	}
}

func (f *fakeProgressStore) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (models.VideoProgress, error) {
	key := keyFromFilter(filter)
	data := update.(*basesvc.UpdateData)

	rec, ok := f.records[key]
	if !ok {
		if opts == nil || opts.Upsert == nil || !*opts.Upsert {
			return models.VideoProgress{}, common.ErrNotFound
		}
		fm := filter.(bson.M)
		rec = models.VideoProgress{
			ID:        primitive.NewObjectID(),
			UserEmail: fm["userEmail"].(string),
			VideoID:   fm["videoId"].(primitive.ObjectID),
		}
		if v, ok := data.SetOnInsert["createdAt"].(int64); ok {
			rec.CreatedAt = v
		}
	}
	applySetFields(&rec, data.Set)
	f.records[key] = rec
	return rec, nil
}

func (f *fakeProgressStore) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.VideoProgress, error) {
	rec, ok := f.records[keyFromFilter(filter)]
	if !ok {
		return models.VideoProgress{}, common.ErrNotFound
	}
	return rec, nil
}

func (f *fakeProgressStore) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	_, ok := f.records[keyFromFilter(filter)]
	return ok, nil
}

func floatPtr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64     { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestUpsertProgressIdempotent(t *testing.T) {
	store := newFakeProgressStore()
	service := &VideoProgressService{BaseServiceMongo: store}
	videoID := primitive.NewObjectID()

	first, err := service.UpsertProgress(context.Background(), &progressdto.ProgressUpsertInput{
		UserEmail:          "Agente@Example.com",
		VideoID:            videoID.Hex(),
		ProgressPercentage: floatPtr(40),
		WatchTime:          int64Ptr(120),
	})
	if err != nil {
		t.Fatalf("upsert lần đầu lỗi: %v", err)
	}
	if first.UserEmail != "agente@example.com" {
		t.Errorf("email phải được lowercase, nhận %q", first.UserEmail)
	}
	if first.CreatedAt == 0 {
		t.Error("bản ghi tạo mới phải có createdAt")
	}

	second, err := service.UpsertProgress(context.Background(), &progressdto.ProgressUpsertInput{
		UserEmail:          "agente@example.com",
		VideoID:            videoID.Hex(),
		ProgressPercentage: floatPtr(100),
		WatchTime:          int64Ptr(300),
		Completed:          boolPtr(true),
	})
	if err != nil {
		t.Fatalf("upsert lần hai lỗi: %v", err)
	}

	// Hai lần upsert cùng cặp (user, video) chỉ để lại một bản ghi
	if len(store.records) != 1 {
		t.Fatalf("store có %d bản ghi, muốn 1", len(store.records))
	}
	if second.ProgressPercentage != 100 || second.WatchTime != 300 || !second.Completed {
		t.Errorf("lần upsert sau phải ghi đè toàn bộ giá trị, nhận %+v", second)
	}
	if second.CreatedAt != first.CreatedAt {
		t.Errorf("createdAt phải giữ nguyên từ lần tạo: %d != %d", second.CreatedAt, first.CreatedAt)
	}
}

func TestUpsertProgress_FieldVangMatVeZero(t *testing.T) {
	store := newFakeProgressStore()
	service := &VideoProgressService{BaseServiceMongo: store}
	videoID := primitive.NewObjectID()

	if _, err := service.UpsertProgress(context.Background(), &progressdto.ProgressUpsertInput{
		UserEmail: "agente@example.com",
		VideoID:   videoID.Hex(),
		Completed: boolPtr(true),
	}); err != nil {
		t.Fatalf("upsert lỗi: %v", err)
	}

	// Upsert không có field nào: mọi giá trị về zero, kể cả completed đã true
	rec, err := service.UpsertProgress(context.Background(), &progressdto.ProgressUpsertInput{
		UserEmail: "agente@example.com",
		VideoID:   videoID.Hex(),
	})
	if err != nil {
		t.Fatalf("upsert lỗi: %v", err)
	}
	if rec.ProgressPercentage != 0 || rec.WatchTime != 0 || rec.Completed {
		t.Errorf("field vắng mặt phải về zero, nhận %+v", rec)
	}
}

func TestGetProgress_ChuaCoBanGhi(t *testing.T) {
	store := newFakeProgressStore()
	service := &VideoProgressService{BaseServiceMongo: store}
	videoID := primitive.NewObjectID()

	rec, err := service.GetProgress(context.Background(), "Agente@Example.com", videoID)
	if err != nil {
		t.Fatalf("chưa có bản ghi không được trả lỗi, nhận: %v", err)
	}
	if rec.UserEmail != "agente@example.com" || rec.VideoID != videoID {
		t.Errorf("bản ghi zero phải mang định danh của cặp, nhận %+v", rec)
	}
	if rec.ProgressPercentage != 0 || rec.WatchTime != 0 || rec.Completed {
		t.Errorf("bản ghi zero phải có giá trị mặc định, nhận %+v", rec)
	}
}

func TestPatchProgress_KhongCoBanGhi(t *testing.T) {
	store := newFakeProgressStore()
	service := &VideoProgressService{BaseServiceMongo: store}

	_, err := service.PatchProgress(context.Background(), "agente@example.com", primitive.NewObjectID(), &progressdto.ProgressPatchInput{
		Completed: boolPtr(true),
	})
	if err == nil {
		t.Fatal("patch cặp chưa có bản ghi phải trả lỗi not-found")
	}
	var appErr *common.Error
	if !errors.As(err, &appErr) || appErr.StatusCode != common.StatusNotFound {
		t.Errorf("lỗi phải là 404, nhận: %v", err)
	}
}

func TestPatchProgress_ChiApDungFieldTrongMask(t *testing.T) {
	store := newFakeProgressStore()
	service := &VideoProgressService{BaseServiceMongo: store}
	videoID := primitive.NewObjectID()

	before, err := service.UpsertProgress(context.Background(), &progressdto.ProgressUpsertInput{
		UserEmail:          "agente@example.com",
		VideoID:            videoID.Hex(),
		ProgressPercentage: floatPtr(55),
		WatchTime:          int64Ptr(90),
	})
	if err != nil {
		t.Fatalf("upsert lỗi: %v", err)
	}

	patched, err := service.PatchProgress(context.Background(), "agente@example.com", videoID, &progressdto.ProgressPatchInput{
		Completed: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("patch lỗi: %v", err)
	}
	if !patched.Completed {
		t.Error("field trong mask phải được cập nhật")
	}
	if patched.ProgressPercentage != before.ProgressPercentage || patched.WatchTime != before.WatchTime {
		t.Errorf("field ngoài mask phải giữ nguyên, nhận %+v", patched)
	}
	if patched.LastWatched < before.LastWatched {
		t.Error("patch phải chạm lastWatched")
	}
}

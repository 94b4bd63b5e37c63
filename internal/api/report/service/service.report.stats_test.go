// Package reportsvc - Test các hàm tính toán thống kê thuần (không cần DB).
package reportsvc

import (
	"testing"

	progressmodels "realty_training/internal/api/progress/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func oid(hexDigit byte) primitive.ObjectID {
	var id primitive.ObjectID
	for i := range id {
		id[i] = hexDigit
	}
	return id
}

func TestComputeStatsFromRecords(t *testing.T) {
	records := []progressmodels.VideoProgress{
		{Completed: true, WatchTime: 300},
		{Completed: true, WatchTime: 200},
		{Completed: false, WatchTime: 100},
	}

	stats := computeStatsFromRecords(records)

	if stats.TotalViews != 3 {
		t.Errorf("TotalViews = %d, muốn 3", stats.TotalViews)
	}
	if stats.TotalCompletions != 2 {
		t.Errorf("TotalCompletions = %d, muốn 2", stats.TotalCompletions)
	}
	// 2/3*100 làm tròn 2 chữ số thập phân
	if stats.AverageCompletionRate != 66.67 {
		t.Errorf("AverageCompletionRate = %v, muốn 66.67", stats.AverageCompletionRate)
	}
	// 600/3, chia nguyên
	if stats.AverageWatchTime != 200 {
		t.Errorf("AverageWatchTime = %d, muốn 200", stats.AverageWatchTime)
	}
}

func TestComputeStatsFromRecords_Empty(t *testing.T) {
	stats := computeStatsFromRecords(nil)
	if stats.TotalViews != 0 || stats.TotalCompletions != 0 {
		t.Errorf("không có bản ghi thì counts phải là 0, nhận %+v", stats)
	}
	if stats.AverageCompletionRate != 0 || stats.AverageWatchTime != 0 {
		t.Errorf("không có bản ghi thì các chỉ số trung bình phải là 0, nhận %+v", stats)
	}
}

func TestComputeStatsFromRecords_IntegerWatchTime(t *testing.T) {
	// 100+50+50 = 200, 200/3 = 66 (chia nguyên, không làm tròn lên)
	records := []progressmodels.VideoProgress{
		{WatchTime: 100},
		{WatchTime: 50},
		{WatchTime: 50},
	}
	stats := computeStatsFromRecords(records)
	if stats.AverageWatchTime != 66 {
		t.Errorf("AverageWatchTime = %d, muốn 66 (chia nguyên)", stats.AverageWatchTime)
	}
}

func TestRoundRate(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{66.666666, 66.67},
		{33.333333, 33.33},
		{100, 100},
		{0, 0},
		{12.345, 12.35},
	}
	for _, c := range cases {
		if got := roundRate(c.in); got != c.want {
			t.Errorf("roundRate(%v) = %v, muốn %v", c.in, got, c.want)
		}
	}
}

func TestRankVideosByViews(t *testing.T) {
	a, b, c := oid('1'), oid('2'), oid('3')
	records := []progressmodels.VideoProgress{
		{VideoID: b}, {VideoID: b}, {VideoID: b},
		{VideoID: a}, {VideoID: a},
		{VideoID: c}, {VideoID: c},
	}

	ranked := rankVideosByViews(records)

	if len(ranked) != 3 {
		t.Fatalf("len(ranked) = %d, muốn 3", len(ranked))
	}
	if ranked[0].VideoID != b || ranked[0].Count != 3 {
		t.Errorf("hạng 1 = %v (%d lượt), muốn video b với 3 lượt", ranked[0].VideoID.Hex(), ranked[0].Count)
	}
	// a và c cùng 2 lượt, a có hex nhỏ hơn nên đứng trước
	if ranked[1].VideoID != a {
		t.Errorf("hạng 2 = %v, muốn video a (tie-break theo videoId tăng dần)", ranked[1].VideoID.Hex())
	}
	if ranked[2].VideoID != c {
		t.Errorf("hạng 3 = %v, muốn video c", ranked[2].VideoID.Hex())
	}
}

func TestSortRecentProgress(t *testing.T) {
	a, b, c := oid('1'), oid('2'), oid('3')
	records := []progressmodels.VideoProgress{
		{VideoID: a, LastWatched: 100},
		{VideoID: c, LastWatched: 300},
		{VideoID: b, LastWatched: 300},
	}

	sorted := sortRecentProgress(records)

	// lastWatched giảm dần, cùng thời điểm thì videoId tăng dần
	wantOrder := []primitive.ObjectID{b, c, a}
	for i, want := range wantOrder {
		if sorted[i].VideoID != want {
			t.Errorf("vị trí %d = %v, muốn %v", i, sorted[i].VideoID.Hex(), want.Hex())
		}
	}

	// Không được thay đổi slice gốc
	if records[0].VideoID != a {
		t.Error("sortRecentProgress làm thay đổi slice đầu vào")
	}
}

func TestCategoryRollup(t *testing.T) {
	a, b, outside := oid('1'), oid('2'), oid('9')
	idSet := map[primitive.ObjectID]bool{a: true, b: true}
	records := []progressmodels.VideoProgress{
		{VideoID: a, Completed: true},
		{VideoID: a, Completed: false},
		{VideoID: b, Completed: true},
		{VideoID: outside, Completed: true}, // video không thuộc danh mục, phải bị bỏ qua
	}

	watched, completed := categoryRollup(idSet, records)
	if watched != 3 {
		t.Errorf("watched = %d, muốn 3", watched)
	}
	if completed != 2 {
		t.Errorf("completed = %d, muốn 2", completed)
	}
}

func TestCompletionRate(t *testing.T) {
	if got := completionRate(2, 3); got != 66.67 {
		t.Errorf("completionRate(2, 3) = %v, muốn 66.67", got)
	}
	if got := completionRate(0, 0); got != 0 {
		t.Errorf("completionRate(0, 0) = %v, muốn 0 (không chia cho 0)", got)
	}
	if got := completionRate(5, 5); got != 100 {
		t.Errorf("completionRate(5, 5) = %v, muốn 100", got)
	}
}

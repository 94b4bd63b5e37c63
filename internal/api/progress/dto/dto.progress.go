// Package progressdto - các cấu trúc input cho domain progress.
package progressdto

// ProgressUpsertInput dữ liệu đầu vào khi báo cáo tiến độ xem.
// Các field số/bool vắng mặt được coi là 0/false.
type ProgressUpsertInput struct {
	UserEmail          string   `json:"userEmail" validate:"required,email"`
	VideoID            string   `json:"videoId" validate:"required"`
	ProgressPercentage *float64 `json:"progressPercentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	WatchTime          *int64   `json:"watchTime,omitempty" validate:"omitempty,gte=0"`
	Completed          *bool    `json:"completed,omitempty"`
}

// ProgressPatchInput dữ liệu cập nhật một phần tiến độ xem.
// Chỉ các field có mặt trong body mới được ghi đè (field mask).
type ProgressPatchInput struct {
	ProgressPercentage *float64 `json:"progressPercentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	WatchTime          *int64   `json:"watchTime,omitempty" validate:"omitempty,gte=0"`
	Completed          *bool    `json:"completed,omitempty"`
}

package reportdto

// SnapshotCreateInput dữ liệu đầu vào khi tạo snapshot thủ công qua CRUD.
// Worker tạo snapshot trực tiếp qua service, không đi qua DTO này.
type SnapshotCreateInput struct {
	Kind string `json:"kind" validate:"required"`
}

// Package systemdto - các cấu trúc input cho domain system.
package systemdto

// StatusCheckCreateInput dữ liệu đầu vào khi client gửi ping
type StatusCheckCreateInput struct {
	ClientName string `json:"clientName" validate:"required"`
}

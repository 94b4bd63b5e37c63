// Package contentdto - các cấu trúc input cho domain content.
package contentdto

// CategoryCreateInput dữ liệu đầu vào khi tạo danh mục
type CategoryCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss"`
}

// CategoryUpdateInput dữ liệu đầu vào khi cập nhật danh mục
type CategoryUpdateInput struct {
	Name        string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss"`
}

// Package authdto - các cấu trúc input cho domain auth.
package authdto

// UserLoginInput dữ liệu đầu vào khi đăng nhập
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserCreateInput dữ liệu đầu vào khi admin tạo người dùng mới.
// Password sẽ được hash trước khi lưu, không đi qua transform chung.
type UserCreateInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
	Name     string `json:"name" validate:"required,no_xss"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
}

// UserUpdateInput dữ liệu đầu vào khi cập nhật người dùng.
// Không cho đổi email và password qua route cập nhật chung.
type UserUpdateInput struct {
	Name  string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
}

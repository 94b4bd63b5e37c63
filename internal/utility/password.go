package utility

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword băm mật khẩu bằng SHA-256, trả về chuỗi hex.
// Giữ tương thích với dữ liệu user đã có trong hệ thống cũ.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword so sánh mật khẩu plain với hash đã lưu (constant-time)
func VerifyPassword(plainPassword string, hashedPassword string) bool {
	sum := HashPassword(plainPassword)
	return subtle.ConstantTimeCompare([]byte(sum), []byte(hashedPassword)) == 1
}

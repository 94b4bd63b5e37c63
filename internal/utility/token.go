package utility

import (
	"time"

	"github.com/dgrijalva/jwt-go"

	"realty_training/internal/common"
)

// SessionClaims chứa data được mã hóa trong JWT token phiên đăng nhập
type SessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	jwt.StandardClaims
}

// CreateSessionToken tạo JWT token cho phiên đăng nhập.
// Token hết hạn sau ttl; ttl <= 0 dùng mặc định 24h.
func CreateSessionToken(secret string, email string, role string, name string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	now := time.Now()
	claims := SessionClaims{
		Email: email,
		Role:  role,
		Name:  name,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, common.MsgTokenInvalid, common.StatusInternalServerError, err)
	}
	return signed, nil
}

// VerifySessionToken xác thực JWT token và trả về claims.
// Trả về ErrTokenExpired nếu hết hạn, ErrTokenInvalid với các lỗi khác.
func VerifySessionToken(secret string, tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}

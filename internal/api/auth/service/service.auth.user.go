// Package authsvc - service người dùng (User) và đăng nhập.
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	authdto "realty_training/internal/api/auth/dto"
	models "realty_training/internal/api/auth/models"
	basesvc "realty_training/internal/api/base/service"
	"realty_training/config"
	"realty_training/internal/common"
	"realty_training/internal/global"
	"realty_training/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	basesvc.BaseServiceMongo[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	return &UserService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// matchBuiltInCredentials kiểm tra hai tài khoản tích hợp sẵn của sàn:
// cùng một email, mật khẩu admin cho vai trò admin, mật khẩu chung của
// đại lý cho vai trò user. Các tài khoản này không nằm trong collection users.
func matchBuiltInCredentials(cfg *config.Configuration, email string, password string) (*models.User, bool) {
	if cfg == nil || !strings.EqualFold(email, cfg.AdminEmail) {
		return nil, false
	}
	switch password {
	case cfg.AdminPassword:
		return &models.User{Email: strings.ToLower(cfg.AdminEmail), Name: "Administrador", Role: models.RoleAdmin}, true
	case cfg.AgentSharedPassword:
		return &models.User{Email: strings.ToLower(cfg.AdminEmail), Name: "Agente", Role: models.RoleUser}, true
	}
	return nil, false
}

// Login xác thực thông tin đăng nhập: kiểm tra tài khoản tích hợp sẵn
// trước, sau đó tìm trong collection users. Password trong DB so sánh
// theo hash SHA-256, fallback plain text cho dữ liệu cũ.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if user, ok := matchBuiltInCredentials(global.MongoDB_ServerConfig, email, input.Password); ok {
		return user, nil
	}

	user, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeAuthCredentials, "Credenciales inválidas", common.StatusUnauthorized, nil)
		}
		return nil, err
	}

	if !utility.VerifyPassword(input.Password, user.Password) && user.Password != input.Password {
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Credenciales inválidas", common.StatusUnauthorized, nil)
	}

	if user.Role == "" {
		user.Role = models.RoleUser
	}
	return &user, nil
}

// CreateUser tạo người dùng mới, email trùng sẽ bị từ chối.
func (s *UserService) CreateUser(ctx context.Context, input *authdto.UserCreateInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.DocumentExists(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(common.ErrCodeBusinessState, "El usuario ya existe", common.StatusConflict, nil)
	}

	user := models.User{
		Email:    email,
		Password: utility.HashPassword(input.Password),
		Name:     input.Name,
		Phone:    input.Phone,
		Role:     input.Role,
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	created.Password = ""
	return &created, nil
}

// Package authhdl - handler xác thực và quản lý người dùng.
package authhdl

import (
	"fmt"
	"time"

	authdto "realty_training/internal/api/auth/dto"
	models "realty_training/internal/api/auth/models"
	authsvc "realty_training/internal/api/auth/service"
	basehdl "realty_training/internal/api/base/handler"
	"realty_training/internal/common"
	"realty_training/internal/global"
	"realty_training/internal/logger"
	"realty_training/internal/utility"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// HandleLogin xử lý đăng nhập và cấp JWT token cho phiên làm việc
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	var input authdto.UserLoginInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, err := h.userService.Login(c.Context(), &input)
	if err != nil {
		logrus.WithField("email", input.Email).Warn("❌ [AUTH] Đăng nhập thất bại")
		logger.LogAuth("login_failed", c, map[string]interface{}{"email": input.Email})
		h.HandleResponse(c, nil, err)
		return nil
	}

	cfg := global.MongoDB_ServerConfig
	ttl := time.Duration(cfg.TokenTTLHours) * time.Hour
	token, err := utility.CreateSessionToken(cfg.JwtSecret, user.Email, user.Role, user.Name, ttl)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeInternalServer, "Không thể tạo token phiên đăng nhập", common.StatusInternalServerError, err))
		return nil
	}

	logrus.WithFields(logrus.Fields{"email": user.Email, "role": user.Role}).Info("✅ [AUTH] Đăng nhập thành công")
	logger.LogAuth("login_success", c, map[string]interface{}{"email": user.Email, "role": user.Role})
	h.HandleResponse(c, fiber.Map{
		"token": token,
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
	}, nil)
	return nil
}

// HandleGetProfile trả về thông tin phiên đăng nhập hiện tại (từ token)
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	email, _ := c.Locals("userEmail").(string)
	if email == "" {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil))
		return nil
	}
	name, _ := c.Locals("userName").(string)
	role, _ := c.Locals("userRole").(string)
	h.HandleResponse(c, fiber.Map{
		"email": email,
		"name":  name,
		"role":  role,
	}, nil)
	return nil
}

// InsertOne ghi đè route tạo chung: password phải được hash và email
// trùng phải bị từ chối trước khi ghi vào collection.
func (h *UserHandler) InsertOne(c fiber.Ctx) error {
	var input authdto.UserCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.CreateUser(c.Context(), &input)
	h.HandleResponse(c, user, err)
	return nil
}

// Package systemhdl - handler StatusCheck.
package systemhdl

import (
	"fmt"

	basehdl "realty_training/internal/api/base/handler"
	systemdto "realty_training/internal/api/system/dto"
	models "realty_training/internal/api/system/models"
	systemsvc "realty_training/internal/api/system/service"

	"github.com/gofiber/fiber/v3"
)

// StatusCheckHandler xử lý các request ping từ client
type StatusCheckHandler struct {
	*basehdl.BaseHandler[models.StatusCheck, systemdto.StatusCheckCreateInput, systemdto.StatusCheckCreateInput]
	statusCheckService *systemsvc.StatusCheckService
}

// NewStatusCheckHandler tạo instance mới của StatusCheckHandler
func NewStatusCheckHandler() (*StatusCheckHandler, error) {
	statusCheckService, err := systemsvc.NewStatusCheckService()
	if err != nil {
		return nil, fmt.Errorf("failed to create status check service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.StatusCheck, systemdto.StatusCheckCreateInput, systemdto.StatusCheckCreateInput](statusCheckService)
	return &StatusCheckHandler{
		BaseHandler:        baseHandler,
		statusCheckService: statusCheckService,
	}, nil
}

// HandleCreateStatusCheck xử lý POST /status
func (h *StatusCheckHandler) HandleCreateStatusCheck(c fiber.Ctx) error {
	var input systemdto.StatusCheckCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	statusCheck, err := h.statusCheckService.CreateStatusCheck(c.Context(), input.ClientName)
	h.HandleResponse(c, statusCheck, err)
	return nil
}

// HandleListStatusChecks xử lý GET /status
func (h *StatusCheckHandler) HandleListStatusChecks(c fiber.Ctx) error {
	list, err := h.statusCheckService.ListStatusChecks(c.Context())
	h.HandleResponse(c, list, err)
	return nil
}

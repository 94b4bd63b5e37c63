// Package reporthdl - handler các endpoint thống kê và dashboard.
package reporthdl

import (
	"fmt"

	basehdl "realty_training/internal/api/base/handler"
	reportdto "realty_training/internal/api/report/dto"
	models "realty_training/internal/api/report/models"
	reportsvc "realty_training/internal/api/report/service"
	"realty_training/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportHandler xử lý các request thống kê. Phần CRUD generic phục vụ
// đọc lịch sử snapshot trong report_snapshots.
type ReportHandler struct {
	*basehdl.BaseHandler[models.ReportSnapshot, reportdto.SnapshotCreateInput, reportdto.SnapshotCreateInput]
	reportService   *reportsvc.ReportService
	snapshotService *reportsvc.SnapshotService
}

// NewReportHandler tạo instance mới của ReportHandler
func NewReportHandler() (*ReportHandler, error) {
	reportService, err := reportsvc.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %v", err)
	}
	snapshotService, err := reportsvc.NewSnapshotService()
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.ReportSnapshot, reportdto.SnapshotCreateInput, reportdto.SnapshotCreateInput](snapshotService)
	return &ReportHandler{
		BaseHandler:     baseHandler,
		reportService:   reportService,
		snapshotService: snapshotService,
	}, nil
}

// parseVideoIDParam đọc và validate một param chứa ObjectID của video
func parseVideoIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID video không hợp lệ", common.StatusBadRequest, err)
	}
	return id, nil
}

// HandleVideoStats xử lý GET /video-stats/:videoId.
// Video chưa có tiến độ nào vẫn trả 200 với các chỉ số 0.
func (h *ReportHandler) HandleVideoStats(c fiber.Ctx) error {
	videoID, err := parseVideoIDParam(c, "videoId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	stats, err := h.reportService.ComputeVideoStats(c.Context(), videoID)
	h.HandleResponse(c, stats, err)
	return nil
}

// HandleVideoDetailed xử lý GET /videos/:id/detailed: video kèm thống kê, 404 nếu video không tồn tại
func (h *ReportHandler) HandleVideoDetailed(c fiber.Ctx) error {
	videoID, err := parseVideoIDParam(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	detailed, err := h.reportService.GetVideoDetailed(c.Context(), videoID)
	h.HandleResponse(c, detailed, err)
	return nil
}

// HandleCategoryStats xử lý GET /category-stats/:categoryId
func (h *ReportHandler) HandleCategoryStats(c fiber.Ctx) error {
	categoryID, err := primitive.ObjectIDFromHex(c.Params("categoryId"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID danh mục không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	stats, err := h.reportService.ComputeCategoryStats(c.Context(), categoryID)
	h.HandleResponse(c, stats, err)
	return nil
}

// HandleUserDashboard xử lý GET /dashboard/:userEmail
func (h *ReportHandler) HandleUserDashboard(c fiber.Ctx) error {
	userEmail := c.Params("userEmail")
	if userEmail == "" {
		h.HandleResponse(c, nil, common.ErrRequiredField)
		return nil
	}
	dashboard, err := h.reportService.BuildUserDashboard(c.Context(), userEmail)
	h.HandleResponse(c, dashboard, err)
	return nil
}

// HandleAdminStats xử lý GET /admin/stats: luôn tính lại từ store,
// không đọc snapshot
func (h *ReportHandler) HandleAdminStats(c fiber.Ctx) error {
	stats, err := h.reportService.BuildAdminStats(c.Context())
	h.HandleResponse(c, stats, err)
	return nil
}

// HandleLatestSnapshot xử lý GET /admin/stats/snapshot: snapshot mới nhất
// do worker ghi, data null khi worker chưa chạy lần nào
func (h *ReportHandler) HandleLatestSnapshot(c fiber.Ctx) error {
	snapshot, err := h.snapshotService.Latest(c.Context(), models.SnapshotKindAdminOverview)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, snapshot, nil)
	return nil
}

// Package worker chứa các background worker của server.
package worker

import (
	"context"
	"sync/atomic"
	"time"

	"realty_training/internal/api/events"
	reportsvc "realty_training/internal/api/report/service"
	"realty_training/internal/global"
	"realty_training/internal/logger"
)

// StatsSnapshotWorker ghi snapshot thống kê toàn nền tảng vào
// report_snapshots theo chu kỳ. Worker lắng nghe event thay đổi dữ liệu
// của các collection liên quan và chỉ ghi snapshot khi có thay đổi từ
// lần ghi trước. Các endpoint thống kê live không đọc snapshot.
type StatsSnapshotWorker struct {
	reportService   *reportsvc.ReportService
	snapshotService *reportsvc.SnapshotService
	interval        time.Duration
	dirty           atomic.Bool
}

// NewStatsSnapshotWorker tạo mới StatsSnapshotWorker.
// interval dưới 1 phút sẽ dùng mặc định 15 phút.
func NewStatsSnapshotWorker(interval time.Duration) (*StatsSnapshotWorker, error) {
	reportService, err := reportsvc.NewReportService()
	if err != nil {
		return nil, err
	}
	snapshotService, err := reportsvc.NewSnapshotService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = 15 * time.Minute
	}

	w := &StatsSnapshotWorker{
		reportService:   reportService,
		snapshotService: snapshotService,
		interval:        interval,
	}
	// Lần chạy đầu luôn ghi một snapshot nền
	w.dirty.Store(true)

	watched := map[string]bool{
		global.MongoDB_ColNames.Users:         true,
		global.MongoDB_ColNames.Videos:        true,
		global.MongoDB_ColNames.Categories:    true,
		global.MongoDB_ColNames.VideoProgress: true,
	}
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		if watched[e.CollectionName] {
			w.dirty.Store(true)
		}
	})

	return w, nil
}

// Start chạy worker trong vòng lặp: mỗi interval, nếu có thay đổi từ lần
// ghi trước thì tính AdminStats và lưu snapshot mới.
func (w *StatsSnapshotWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("📊 [STATS_SNAPSHOT] Starting Stats Snapshot Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("📊 [STATS_SNAPSHOT] Stats Snapshot Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("📊 [STATS_SNAPSHOT] Panic khi ghi snapshot, sẽ thử lại ở lần chạy tiếp theo")
					}
				}()

				if !w.dirty.Swap(false) {
					return
				}

				stats, err := w.reportService.BuildAdminStats(ctx)
				if err != nil {
					// Đánh dấu lại để lần sau thử tiếp
					w.dirty.Store(true)
					log.WithError(err).Error("📊 [STATS_SNAPSHOT] Lỗi tính AdminStats")
					return
				}

				snapshot, err := w.snapshotService.SaveAdminOverview(ctx, *stats)
				if err != nil {
					w.dirty.Store(true)
					log.WithError(err).Error("📊 [STATS_SNAPSHOT] Lỗi lưu snapshot")
					return
				}

				log.WithFields(map[string]interface{}{
					"snapshotId":  snapshot.ID.Hex(),
					"totalViews":  stats.Overview.TotalVideoViews,
					"generatedAt": snapshot.GeneratedAt,
				}).Info("📊 [STATS_SNAPSHOT] Đã ghi snapshot thống kê")
			}()
		}
	}
}

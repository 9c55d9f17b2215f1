package worker

import (
	"context"
	"time"

	"msa_center/core/api/models"
	"msa_center/core/logger"
)

// EventRefresher là phần của EventStore mà worker cần
type EventRefresher interface {
	ForceRefresh(ctx context.Context) ([]*models.Event, error)
}

// EventRefreshWorker worker để tự động refresh collection event từ backend
// Chạy định kỳ để dashboard luôn có dữ liệu mới mà không cần user bấm refresh
type EventRefreshWorker struct {
	store    EventRefresher
	interval time.Duration // Khoảng thời gian giữa các lần refresh
}

// NewEventRefreshWorker tạo mới EventRefreshWorker
// Tham số:
//   - store: EventStore cần refresh
//   - interval: Khoảng thời gian giữa các lần refresh (mặc định: 5 phút)
//
// Trả về:
//   - *EventRefreshWorker: Instance mới của EventRefreshWorker
func NewEventRefreshWorker(store EventRefresher, interval time.Duration) *EventRefreshWorker {
	if interval < 30*time.Second {
		interval = 5 * time.Minute // Mặc định 5 phút
	}
	return &EventRefreshWorker{
		store:    store,
		interval: interval,
	}
}

// Start bắt đầu background worker refresh event định kỳ
// Worker dừng khi context bị cancel; một lần refresh lỗi không dừng worker
func (w *EventRefreshWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("🔄 [REFRESH] Starting Event Refresh Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🔄 [REFRESH] Event Refresh Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🔄 [REFRESH] Panic khi refresh events, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				events, err := w.store.ForceRefresh(ctx)
				if err != nil {
					// Giữ dữ liệu cũ, thử lại ở tick sau
					log.WithError(err).Warn("🔄 [REFRESH] Refresh events thất bại, giữ dữ liệu cũ")
					return
				}

				log.WithFields(map[string]interface{}{
					"events": len(events),
				}).Info("🔄 [REFRESH] tick: refreshed events")
			}()
		}
	}
}

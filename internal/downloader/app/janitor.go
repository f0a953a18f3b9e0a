package app

import (
	"context"
	"time"

	"media_download_service/internal/downloader/repository"
	"media_download_service/pkg/logger"

	"go.uber.org/zap"
)

// Janitor 定期清除暫存目錄中過期的下載檔。
// 下載完成後檔案會留在暫存目錄讓 client 取完，由這裡依 TTL 回收
type Janitor struct {
	staging  repository.StagingRepo
	interval time.Duration
	ttl      time.Duration
}

// NewJanitor 建構 Janitor 實例
func NewJanitor(staging repository.StagingRepo, interval, ttl time.Duration) *Janitor {
	return &Janitor{
		staging:  staging,
		interval: interval,
		ttl:      ttl,
	}
}

// Start 開始清理循環，ctx 結束時停止
func (j *Janitor) Start(ctx context.Context) {
	logger.Log.Info("janitor started",
		zap.Duration("interval", j.interval),
		zap.Duration("ttl", j.ttl),
	)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed, err := j.staging.Sweep(j.ttl)
			if err != nil {
				// Sweep 內部已記錄，失敗不中斷循環
				continue
			}
			if removed > 0 {
				logger.Log.Infof("janitor swept staged dirs :", removed)
			}
		case <-ctx.Done():
			logger.Log.Info("janitor stopped")
			return
		}
	}
}

package vk

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunKeepAlive периодически шлёт сообщение админу, чтобы хостинг не усыплял
// процесс. peerID=0 отключает пинг. Блокируется до отмены контекста.
func RunKeepAlive(ctx context.Context, client *Client, peerID int64, interval time.Duration, log *zap.Logger) {
	if peerID == 0 || interval <= 0 {
		return
	}
	log = log.Named("keepalive")
	log.Info("Keepalive включён", zap.Int64("peer_id", peerID), zap.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.SendText(ctx, peerID, "5 min more"); err != nil {
				// Пинг не критичен: логируем и ждём следующего тика.
				log.Warn("Не удалось отправить keepalive", zap.Error(err))
			}
		}
	}
}

package vk

import (
	"context"
	"fmt"

	"github.com/SevereCloud/vksdk/v2/events"
	longpoll "github.com/SevereCloud/vksdk/v2/longpoll-bot"
	"go.uber.org/zap"

	"github.com/Mikan-DS/VK-NVL-bot/internal/engine"
)

// Listener принимает события Bots LongPoll и передаёт личные сообщения
// обработчику (диспетчеру движка). Сообщения из бесед помечаются ToMe=false
// и отбрасываются движком.
type Listener struct {
	lp  *longpoll.LongPoll
	log *zap.Logger
}

// NewListener подписывается на новые сообщения группы groupID.
func NewListener(client *Client, groupID, wait int, handle func(context.Context, engine.Event), log *zap.Logger) (*Listener, error) {
	lp, err := longpoll.NewLongPoll(client.API(), groupID)
	if err != nil {
		return nil, fmt.Errorf("longpoll init: %w", err)
	}
	if wait > 0 {
		lp.Wait = wait
	}

	lp.MessageNew(func(ctx context.Context, obj events.MessageNewObject) {
		msg := obj.Message
		handle(ctx, engine.Event{
			UserID: int64(msg.FromID),
			Text:   msg.Text,
			// Личное сообщение боту: peer совпадает с отправителем.
			ToMe: msg.PeerID == msg.FromID,
		})
	})

	return &Listener{lp: lp, log: log.Named("longpoll")}, nil
}

// Run блокируется на цикле приёма событий до Shutdown или ошибки.
func (l *Listener) Run() error {
	l.log.Info("LongPoll запущен")
	return l.lp.Run()
}

// Shutdown останавливает цикл приёма событий.
func (l *Listener) Shutdown() {
	l.lp.Shutdown()
	l.log.Info("LongPoll остановлен")
}

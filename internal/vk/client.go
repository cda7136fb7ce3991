// Package vk адаптирует VK API к движку: исходящие сообщения через
// messages.send, входящие события через Bots LongPoll.
package vk

import (
	"context"
	"fmt"

	"github.com/SevereCloud/vksdk/v2/api"
	"go.uber.org/zap"

	"github.com/Mikan-DS/VK-NVL-bot/internal/engine"
	"github.com/Mikan-DS/VK-NVL-bot/internal/metrics"
)

// Client — обёртка над VK API, реализующая engine.Messenger.
type Client struct {
	api *api.VK
	log *zap.Logger
}

// NewClient создаёт клиента по токену сообщества.
func NewClient(token string, log *zap.Logger) *Client {
	return &Client{
		api: api.NewVK(token),
		log: log.Named("vk"),
	}
}

// API возвращает низкоуровневый клиент vksdk (нужен LongPoll-слушателю).
func (c *Client) API() *api.VK {
	return c.api
}

// SendText отправляет игроку текстовое сообщение.
// random_id=0 — как в оригинальном боте, без дедупликации на стороне VK.
func (c *Client) SendText(_ context.Context, userID int64, text string) error {
	_, err := c.api.MessagesSend(api.Params{
		"user_id":   userID,
		"message":   text,
		"random_id": 0,
	})
	if err != nil {
		return fmt.Errorf("messages.send: %w", err)
	}
	metrics.MessagesSent.Inc()
	return nil
}

// SendAttachment отправляет игроку вложение в адресации VK
// (например "photo-199752462_457239026").
func (c *Client) SendAttachment(_ context.Context, userID int64, attachment string) error {
	_, err := c.api.MessagesSend(api.Params{
		"user_id":    userID,
		"attachment": attachment,
		"random_id":  0,
	})
	if err != nil {
		return fmt.Errorf("messages.send attachment: %w", err)
	}
	metrics.AttachmentsSent.Inc()
	return nil
}

// SendMenu отправляет сообщение с одноразовой клавиатурой выбора.
func (c *Client) SendMenu(_ context.Context, userID int64, text string, keyboard engine.Keyboard) error {
	kb, err := keyboard.JSON()
	if err != nil {
		return err
	}
	_, err = c.api.MessagesSend(api.Params{
		"user_id":   userID,
		"message":   text,
		"keyboard":  kb,
		"random_id": 0,
	})
	if err != nil {
		return fmt.Errorf("messages.send keyboard: %w", err)
	}
	metrics.MenusSent.Inc()
	return nil
}

package engine_test

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/Mikan-DS/VK-NVL-bot/internal/engine"
)

// delivery — одно доставленное сообщение в порядке отправки.
type delivery struct {
	kind     string // "text" | "attachment" | "menu"
	userID   int64
	payload  string
	keyboard engine.Keyboard
}

// fakeMessenger записывает доставки; потокобезопасен, потому что сессии
// разных игроков шлют конкурентно.
type fakeMessenger struct {
	mu         sync.Mutex
	deliveries []delivery
	failText   string // SendText с этим текстом вернёт ошибку
}

var errDelivery = errors.New("доставка не удалась")

func (f *fakeMessenger) SendText(_ context.Context, userID int64, text string) error {
	if f.failText != "" && text == f.failText {
		return errDelivery
	}
	f.record(delivery{kind: "text", userID: userID, payload: text})
	return nil
}

func (f *fakeMessenger) SendAttachment(_ context.Context, userID int64, attachment string) error {
	f.record(delivery{kind: "attachment", userID: userID, payload: attachment})
	return nil
}

func (f *fakeMessenger) SendMenu(_ context.Context, userID int64, text string, keyboard engine.Keyboard) error {
	f.record(delivery{kind: "menu", userID: userID, payload: text, keyboard: keyboard})
	return nil
}

func (f *fakeMessenger) record(d delivery) {
	f.mu.Lock()
	f.deliveries = append(f.deliveries, d)
	f.mu.Unlock()
}

func (f *fakeMessenger) all() []delivery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]delivery(nil), f.deliveries...)
}

// texts возвращает только текстовые доставки указанного игрока.
func (f *fakeMessenger) texts(userID int64) []string {
	var out []string
	for _, d := range f.all() {
		if d.kind == "text" && d.userID == userID {
			out = append(out, d.payload)
		}
	}
	return out
}

// noPacing — нулевые паузы, чтобы тесты не спали.
var noPacing = engine.Options{}

func newTestSession(userID int64, sc *engine.Script, msgr engine.Messenger) *engine.Session {
	return engine.NewSession(userID, sc, msgr, noPacing, zap.NewNop())
}

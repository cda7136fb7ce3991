package engine

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Mikan-DS/VK-NVL-bot/internal/metrics"
)

// Event — входящее событие транспорта: сообщение игрока.
type Event struct {
	UserID int64
	Text   string
	// ToMe — адресовано ли сообщение боту напрямую; остальное не обрабатываем.
	ToMe bool
}

// Dispatcher маршрутизирует входящие события: первое сообщение игрока
// создаёт сессию и запускает сценарий с метки входа, сообщение-ответ на
// меню возобновляет сессию с целевой метки. Каждый запуск — отдельная
// горутина, поэтому цикл приёма событий никогда не ждёт пауз темпа.
type Dispatcher struct {
	script *Script
	reg    *Registry
	msgr   Messenger
	opts   Options
	log    *zap.Logger

	wg sync.WaitGroup
}

// NewDispatcher проверяет сценарий и создаёт диспетчер.
func NewDispatcher(script *Script, msgr Messenger, opts Options, log *zap.Logger) (*Dispatcher, error) {
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return &Dispatcher{
		script: script,
		reg:    NewRegistry(),
		msgr:   msgr,
		opts:   opts,
		log:    log.Named("dispatcher"),
	}, nil
}

// Registry возвращает реестр активных сессий.
func (d *Dispatcher) Registry() *Registry {
	return d.reg
}

// HandleEvent обрабатывает одно входящее событие. Не блокируется на
// исполнении сценария: горутина сессии стартует и метод возвращается.
func (d *Dispatcher) HandleEvent(ctx context.Context, ev Event) {
	if !ev.ToMe {
		return
	}

	// Сначала пробуем возобновление: TakeChoice совпадает только когда
	// сессия существует и текст отвечает одному из ожидаемых вариантов.
	if sess, target, ok := d.reg.TakeChoice(ev.UserID, ev.Text); ok {
		metrics.SessionsResumed.Inc()
		d.log.Debug("Возобновление сессии",
			zap.Int64("user_id", ev.UserID),
			zap.String("target", target),
		)
		d.launch(ctx, sess, target)
		return
	}

	sess, created := d.reg.CreateIfAbsent(ev.UserID, func() *Session {
		return NewSession(ev.UserID, d.script, d.msgr, d.opts, d.log)
	})
	if !created {
		// Сессия есть, но текст не совпал ни с одним вариантом меню.
		metrics.EventsIgnored.Inc()
		return
	}

	metrics.SessionsStarted.Inc()
	metrics.ActiveSessions.Set(float64(d.reg.Len()))
	d.log.Info("Новая сессия", zap.Int64("user_id", ev.UserID))
	d.launch(ctx, sess, d.script.Entry())
}

// launch запускает один проход сессии в отдельной горутине. Ошибка действия
// гасится здесь: сессия удаляется из реестра, диагностика уходит в лог,
// цикл приёма событий продолжает обслуживать остальных игроков.
func (d *Dispatcher) launch(ctx context.Context, sess *Session, label string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := sess.Run(ctx, label, 0); err != nil {
			failLabel, failLine := sess.Cursor()
			d.log.Error("Сбой исполнения сценария",
				zap.String("label", failLabel),
				zap.Int("line", failLine),
				zap.Int64("user_id", sess.UserID),
				zap.Error(err),
			)
			d.reg.Remove(sess.UserID)
			metrics.SessionsFailed.Inc()
			metrics.ActiveSessions.Set(float64(d.reg.Len()))
		}
	}()
}

// Wait блокируется до завершения всех запущенных проходов сессий;
// используется при остановке процесса.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

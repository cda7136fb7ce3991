package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Options — настройки темпа исполнения действий.
type Options struct {
	// CharsPerSecond — скорость чтения игрока: после Say сессия ждёт
	// len(text)/CharsPerSecond секунд. Ноль отключает паузу.
	CharsPerSecond int
	// StepDelay — фиксированная пауза между соседними действиями метки.
	StepDelay time.Duration
}

// DefaultOptions — темп оригинального бота: 50 символов в секунду
// и 400мс между действиями.
func DefaultOptions() Options {
	return Options{CharsPerSecond: 50, StepDelay: 400 * time.Millisecond}
}

// Session — прохождение одного игрока по сценарию. Курсор и переменные
// меняет только горутина, исполняющая сессию (диспетчер гарантирует не
// больше одной на сессию); pendingChoices дополнительно защищён мьютексом,
// потому что его читает и сбрасывает Registry из цикла приёма событий.
type Session struct {
	UserID int64

	script *Script
	msgr   Messenger
	opts   Options
	log    *zap.Logger

	clabel string
	cline  int
	vars   map[string]bool

	mu      sync.Mutex
	pending map[string]string
}

// NewSession создаёт сессию с копией переменных сценария по умолчанию.
func NewSession(userID int64, script *Script, msgr Messenger, opts Options, log *zap.Logger) *Session {
	vars := make(map[string]bool, len(script.defaults))
	for name, value := range script.defaults {
		vars[name] = value
	}
	return &Session{
		UserID: userID,
		script: script,
		msgr:   msgr,
		opts:   opts,
		log:    log,
		vars:   vars,
	}
}

// Var возвращает текущее значение переменной сессии.
func (s *Session) Var(name string) bool {
	return s.vars[name]
}

// Cursor возвращает текущую позицию исполнения (метка, строка) —
// диагностика для отчёта об ошибке.
func (s *Session) Cursor() (label string, line int) {
	return s.clabel, s.cline
}

// Run исполняет сессию с метки label, строки line, и дальше по цепочке
// переходов до исчерпания очередной метки. Переходы развёрнуты в цикл:
// длинная цепочка Jump не растит ни стек, ни число горутин. Ошибка любого
// действия прерывает исполнение; позиция сбоя остаётся в курсоре.
func (s *Session) Run(ctx context.Context, label string, line int) error {
	for {
		actions, ok := s.script.Label(label)
		if !ok {
			s.clabel, s.cline = label, 0
			return fmt.Errorf("%w: %q", ErrUnknownLabel, label)
		}
		s.clabel, s.cline = label, line
		s.log.Debug("Вход в метку",
			zap.String("label", label),
			zap.Int("line", line),
			zap.Int64("user_id", s.UserID),
		)

		jump := ""
		for i := line; i < len(actions); i++ {
			s.cline = i
			res, err := s.execute(ctx, actions[i])
			if err != nil {
				return err
			}
			s.pause(ctx, s.opts.StepDelay)
			if res.Jump != "" {
				jump = res.Jump
				break
			}
		}
		if jump == "" {
			return nil
		}
		label, line = jump, 0
	}
}

// execute исполняет одно действие, превращая панику пользовательских
// функций (Condition/Compute) в обычную ошибку сценария.
func (s *Session) execute(ctx context.Context, a Action) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrActionPanic, r)
		}
	}()
	return a.Execute(ctx, s)
}

// setPending запоминает варианты последнего показанного меню.
func (s *Session) setPending(choices []Choice) {
	m := make(map[string]string, len(choices))
	for _, c := range choices {
		m[c.Label] = c.Target
	}
	s.mu.Lock()
	s.pending = m
	s.mu.Unlock()
}

// takeChoice атомарно сопоставляет текст игрока с ожидаемыми вариантами.
// При совпадении ожидание сбрасывается в той же критической секции, поэтому
// повторная доставка того же сообщения не запустит вторую горутину
// возобновления.
func (s *Session) takeChoice(text string) (target string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	target, ok = s.pending[text]
	if !ok {
		return "", false
	}
	s.pending = nil
	return target, true
}

// PendingChoices возвращает копию ожидаемых вариантов; пустая карта
// означает, что сессия никого не ждёт.
func (s *Session) PendingChoices() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := make(map[string]string, len(s.pending))
	for label, target := range s.pending {
		m[label] = target
	}
	return m
}

// pause — прерываемый контекстом сон; паузы темпа не должны переживать
// остановку процесса.
func (s *Session) pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

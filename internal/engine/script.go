package engine

import (
	"errors"
	"fmt"
)

// Стандартные ошибки движка.
var (
	ErrUnknownLabel   = errors.New("unknown label")
	ErrDuplicateLabel = errors.New("duplicate label")
	ErrNoEntryLabel   = errors.New("entry label is not defined")
	ErrActionPanic    = errors.New("action panicked")
)

// Script — неизменяемое отображение имени метки в упорядоченную
// последовательность действий. Заполняется один раз при старте процесса
// (AddLabel/SetDefault), после чего читается всеми сессиями без блокировок.
type Script struct {
	entry    string
	labels   map[string][]Action
	order    []string
	defaults map[string]bool
}

// NewScript создаёт пустой сценарий с меткой входа entry.
func NewScript(entry string) *Script {
	return &Script{
		entry:    entry,
		labels:   make(map[string][]Action),
		defaults: make(map[string]bool),
	}
}

// AddLabel добавляет метку с её последовательностью действий.
// Вызывается только на этапе загрузки; повторная метка — паника,
// это ошибка автора сценария.
func (sc *Script) AddLabel(name string, actions ...Action) {
	if _, ok := sc.labels[name]; ok {
		panic(fmt.Sprintf("engine: %v: %q", ErrDuplicateLabel, name))
	}
	sc.labels[name] = actions
	sc.order = append(sc.order, name)
}

// SetDefault задаёт значение переменной по умолчанию: каждая новая сессия
// стартует со своей копией всех объявленных значений.
func (sc *Script) SetDefault(name string, value bool) {
	sc.defaults[name] = value
}

// Entry возвращает метку входа.
func (sc *Script) Entry() string {
	return sc.entry
}

// Label возвращает последовательность действий метки.
func (sc *Script) Label(name string) ([]Action, bool) {
	actions, ok := sc.labels[name]
	return actions, ok
}

// labelRef реализуют действия, ссылающиеся на другие метки;
// используется только валидацией сценария.
type labelRef interface {
	labels() []string
}

func (a *jumpAction) labels() []string { return []string{a.label} }

func (a *menuAction) labels() []string {
	targets := make([]string, 0, len(a.choices))
	for _, c := range a.choices {
		targets = append(targets, c.Target)
	}
	return targets
}

func (a *ifAction) labels() []string {
	var targets []string
	for _, branch := range []Action{a.then, a.els} {
		if ref, ok := branch.(labelRef); ok {
			targets = append(targets, ref.labels()...)
		}
	}
	return targets
}

// Validate проверяет целостность сценария: метка входа существует и каждая
// ссылка на метку (Jump, Menu, ветки If) ведёт на объявленную метку.
// Вызывается один раз перед запуском диспетчера.
func (sc *Script) Validate() error {
	if _, ok := sc.labels[sc.entry]; !ok {
		return fmt.Errorf("%w: %q", ErrNoEntryLabel, sc.entry)
	}
	for _, name := range sc.order {
		for line, action := range sc.labels[name] {
			ref, ok := action.(labelRef)
			if !ok {
				continue
			}
			for _, target := range ref.labels() {
				if _, ok := sc.labels[target]; !ok {
					return fmt.Errorf("%w: %q (метка %q, строка %d)", ErrUnknownLabel, target, name, line)
				}
			}
		}
	}
	return nil
}

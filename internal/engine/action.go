package engine

import (
	"context"
	"fmt"
	"time"
)

// Result — результат исполнения одного действия. Пустой Result означает
// "продолжить со следующей строки", непустой Jump — переход на указанную
// метку. Ошибка возвращается отдельным значением, так что три исхода
// (продолжить / переход / сбой) различаются структурно.
type Result struct {
	Jump string
}

// Action — одно исполняемое действие сценария. Данные действия неизменяемы
// после загрузки сценария; Execute читает и меняет только переданную сессию.
type Action interface {
	Execute(ctx context.Context, s *Session) (Result, error)
}

// Condition вычисляет условие для If по текущему состоянию сессии.
type Condition func(s *Session) bool

// Compute вычисляет новое значение переменной для Assign.
// Не должна иметь побочных эффектов кроме чтения сессии.
type Compute func(s *Session) bool

// Messenger — исходящий транспорт, через который действия доставляют
// сообщения игроку. Реализуется VK-клиентом, в тестах — моком.
type Messenger interface {
	SendText(ctx context.Context, userID int64, text string) error
	SendAttachment(ctx context.Context, userID int64, attachment string) error
	SendMenu(ctx context.Context, userID int64, text string, keyboard Keyboard) error
}

// menuPrompt — текст сообщения, к которому прикрепляется клавиатура выбора.
const menuPrompt = "Выбор:"

type sayAction struct {
	who  string
	text string
}

// Say возвращает действие, отправляющее игроку реплику рассказчика.
func Say(text string) Action {
	return &sayAction{text: text}
}

// SayAs возвращает действие, отправляющее реплику от имени персонажа who.
func SayAs(who, text string) Action {
	return &sayAction{who: who, text: text}
}

func (a *sayAction) Execute(ctx context.Context, s *Session) (Result, error) {
	msg := a.text
	if a.who != "" {
		msg = a.who + ":\n\n" + a.text
	}
	if err := s.msgr.SendText(ctx, s.UserID, msg); err != nil {
		return Result{}, fmt.Errorf("say: %w", err)
	}
	// Пауза пропорциональна длине реплики: имитируем скорость чтения.
	if s.opts.CharsPerSecond > 0 {
		runes := len([]rune(a.text))
		s.pause(ctx, time.Duration(runes)*time.Second/time.Duration(s.opts.CharsPerSecond))
	}
	return Result{}, nil
}

type showAction struct {
	source string
}

// Show возвращает действие, отправляющее игроку вложение (фото/видео/аудио)
// в адресации VK вида "photo-199752462_457239026".
func Show(source string) Action {
	return &showAction{source: source}
}

func (a *showAction) Execute(ctx context.Context, s *Session) (Result, error) {
	if err := s.msgr.SendAttachment(ctx, s.UserID, a.source); err != nil {
		return Result{}, fmt.Errorf("show: %w", err)
	}
	return Result{}, nil
}

// Choice — один пункт меню: подпись кнопки и метка, на которую перейдёт
// сценарий, когда игрок ответит этой подписью.
type Choice struct {
	Label  string
	Target string
}

type menuAction struct {
	choices []Choice
}

// Menu возвращает действие, показывающее игроку одноразовую клавиатуру
// выбора. По соглашению это последнее действие метки: отправив меню,
// сессия достраивает метку и завершает свою горутину, а "ожидание ответа"
// живёт только как состояние pendingChoices.
func Menu(choices ...Choice) Action {
	return &menuAction{choices: choices}
}

func (a *menuAction) Execute(ctx context.Context, s *Session) (Result, error) {
	if err := s.msgr.SendMenu(ctx, s.UserID, menuPrompt, NewKeyboard(a.choices)); err != nil {
		return Result{}, fmt.Errorf("menu: %w", err)
	}
	s.setPending(a.choices)
	return Result{}, nil
}

type assignAction struct {
	name    string
	compute Compute
}

// Assign возвращает действие, записывающее в переменную name значение,
// вычисленное compute по текущему состоянию сессии.
func Assign(name string, compute Compute) Action {
	return &assignAction{name: name, compute: compute}
}

func (a *assignAction) Execute(_ context.Context, s *Session) (Result, error) {
	s.vars[a.name] = a.compute(s)
	return Result{}, nil
}

type ifAction struct {
	cond Condition
	then Action
	els  Action
}

// If возвращает условное действие без ветки else. then может быть Action
// либо именем метки (строкой) — строка трактуется как неявный Jump.
func If(cond Condition, then any) Action {
	return IfElse(cond, then, nil)
}

// IfElse — условное действие с веткой else. Обе ветки принимают Action или
// имя метки; любой другой тип — ошибка программиста сценария, паника при
// сборке сценария, не при исполнении.
func IfElse(cond Condition, then, els any) Action {
	return &ifAction{cond: cond, then: toAction(then), els: toAction(els)}
}

func toAction(v any) Action {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return Jump(t)
	case Action:
		return t
	default:
		panic(fmt.Sprintf("engine: ветка If должна быть Action или именем метки, получен %T", v))
	}
}

func (a *ifAction) Execute(ctx context.Context, s *Session) (Result, error) {
	branch := a.els
	if a.cond(s) {
		branch = a.then
	}
	if branch == nil {
		return Result{}, nil
	}
	// Jump вложенного действия поднимается наверх и прерывает метку.
	return branch.Execute(ctx, s)
}

type jumpAction struct {
	label string
}

// Jump возвращает действие безусловного перехода на метку label.
func Jump(label string) Action {
	return &jumpAction{label: label}
}

func (a *jumpAction) Execute(context.Context, *Session) (Result, error) {
	return Result{Jump: a.label}, nil
}

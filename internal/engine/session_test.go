package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mikan-DS/VK-NVL-bot/internal/engine"
)

func TestLinearExecutionOrder(t *testing.T) {
	ctx := context.Background()
	msgr := &fakeMessenger{}

	sc := engine.NewScript("start")
	sc.AddLabel("start",
		engine.Show("photo-1_1"),
		engine.Say("один"),
		engine.Say("два"),
		engine.Show("photo-1_2"),
		engine.Say("три"),
	)

	require.NoError(t, newTestSession(7, sc, msgr).Run(ctx, "start", 0))

	var got []string
	for _, d := range msgr.all() {
		got = append(got, d.kind+":"+d.payload)
	}
	assert.Equal(t, []string{
		"attachment:photo-1_1",
		"text:один",
		"text:два",
		"attachment:photo-1_2",
		"text:три",
	}, got)
}

func TestJumpTransfersToLineZero(t *testing.T) {
	ctx := context.Background()
	msgr := &fakeMessenger{}

	// Переход со строки 1 метки start: остаток start не исполняется,
	// целевая метка начинается со строки 0.
	sc := engine.NewScript("start")
	sc.AddLabel("start",
		engine.Say("до прыжка"),
		engine.Jump("target"),
		engine.Say("после прыжка — недостижимо"),
	)
	sc.AddLabel("target",
		engine.Say("строка ноль"),
	)

	require.NoError(t, newTestSession(1, sc, msgr).Run(ctx, "start", 0))
	assert.Equal(t, []string{"до прыжка", "строка ноль"}, msgr.texts(1))
}

func TestRunFromLineOffset(t *testing.T) {
	ctx := context.Background()
	msgr := &fakeMessenger{}

	sc := engine.NewScript("start")
	sc.AddLabel("start",
		engine.Say("ноль"),
		engine.Say("один"),
		engine.Say("два"),
	)

	require.NoError(t, newTestSession(1, sc, msgr).Run(ctx, "start", 1))
	assert.Equal(t, []string{"один", "два"}, msgr.texts(1))
}

func TestRunUnknownLabel(t *testing.T) {
	sc := engine.NewScript("start")
	sc.AddLabel("start")

	err := newTestSession(1, sc, &fakeMessenger{}).Run(context.Background(), "nowhere", 0)
	assert.ErrorIs(t, err, engine.ErrUnknownLabel)
}

func TestActionErrorStopsRun(t *testing.T) {
	ctx := context.Background()
	msgr := &fakeMessenger{failText: "boom"}

	sc := engine.NewScript("start")
	sc.AddLabel("start",
		engine.Say("первое"),
		engine.Say("boom"),
		engine.Say("недостижимо"),
	)

	sess := newTestSession(1, sc, msgr)
	err := sess.Run(ctx, "start", 0)
	require.Error(t, err)

	// Курсор указывает на сбойную строку — диагностика для лога.
	label, line := sess.Cursor()
	assert.Equal(t, "start", label)
	assert.Equal(t, 1, line)
	assert.Equal(t, []string{"первое"}, msgr.texts(1))
}

func TestConditionPanicBecomesError(t *testing.T) {
	sc := engine.NewScript("start")
	sc.AddLabel("start", engine.If(
		func(*engine.Session) bool { panic("деление на ноль") },
		engine.Say("then"),
	))

	err := newTestSession(1, sc, &fakeMessenger{}).Run(context.Background(), "start", 0)
	assert.ErrorIs(t, err, engine.ErrActionPanic)
}

func TestVariableIsolation(t *testing.T) {
	ctx := context.Background()
	msgr := &fakeMessenger{}

	sc := engine.NewScript("start")
	sc.SetDefault("flag", false)
	sc.AddLabel("start",
		engine.Assign("flag", func(*engine.Session) bool { return true }),
	)

	first := newTestSession(1, sc, msgr)
	second := newTestSession(2, sc, msgr)

	require.NoError(t, first.Run(ctx, "start", 0))

	assert.True(t, first.Var("flag"))
	assert.False(t, second.Var("flag"), "переменные чужой сессии меняться не должны")
}

func TestScriptValidate(t *testing.T) {
	t.Run("битый переход", func(t *testing.T) {
		sc := engine.NewScript("start")
		sc.AddLabel("start", engine.Jump("missing"))
		assert.ErrorIs(t, sc.Validate(), engine.ErrUnknownLabel)
	})

	t.Run("битая цель меню", func(t *testing.T) {
		sc := engine.NewScript("start")
		sc.AddLabel("start", engine.Menu(engine.Choice{Label: "A", Target: "missing"}))
		assert.ErrorIs(t, sc.Validate(), engine.ErrUnknownLabel)
	})

	t.Run("битая ветка If", func(t *testing.T) {
		sc := engine.NewScript("start")
		sc.AddLabel("start", engine.If(func(*engine.Session) bool { return true }, "missing"))
		assert.ErrorIs(t, sc.Validate(), engine.ErrUnknownLabel)
	})

	t.Run("нет метки входа", func(t *testing.T) {
		sc := engine.NewScript("start")
		sc.AddLabel("other")
		assert.ErrorIs(t, sc.Validate(), engine.ErrNoEntryLabel)
	})

	t.Run("дубль метки — паника", func(t *testing.T) {
		sc := engine.NewScript("start")
		sc.AddLabel("start")
		assert.Panics(t, func() { sc.AddLabel("start") })
	})
}

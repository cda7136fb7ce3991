package engine_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mikan-DS/VK-NVL-bot/internal/engine"
)

func menuScript() *engine.Script {
	sc := engine.NewScript("start")
	sc.AddLabel("start", engine.Menu(
		engine.Choice{Label: "go", Target: "l1"},
	))
	sc.AddLabel("l1")
	return sc
}

func TestRegistryCreateIfAbsent(t *testing.T) {
	reg := engine.NewRegistry()
	sc := menuScript()

	first, created := reg.CreateIfAbsent(1, func() *engine.Session {
		return newTestSession(1, sc, &fakeMessenger{})
	})
	require.True(t, created)

	again, created := reg.CreateIfAbsent(1, func() *engine.Session {
		t.Fatal("build не должен вызываться для существующей записи")
		return nil
	})
	assert.False(t, created)
	assert.Same(t, first, again)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryCreateIfAbsentConcurrent(t *testing.T) {
	reg := engine.NewRegistry()
	sc := menuScript()

	// Гонка создания: сколько бы событий одного игрока ни пришло
	// одновременно, в реестре всегда не больше одной сессии.
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.CreateIfAbsent(42, func() *engine.Session {
				return newTestSession(42, sc, &fakeMessenger{})
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, reg.Len())
}

func TestRegistryTakeChoice(t *testing.T) {
	ctx := context.Background()
	reg := engine.NewRegistry()
	sc := menuScript()
	msgr := &fakeMessenger{}

	sess, _ := reg.CreateIfAbsent(1, func() *engine.Session {
		return newTestSession(1, sc, msgr)
	})
	require.NoError(t, sess.Run(ctx, "start", 0))

	t.Run("несовпавший текст не меняет состояние", func(t *testing.T) {
		_, _, ok := reg.TakeChoice(1, "nope")
		assert.False(t, ok)
		assert.NotEmpty(t, sess.PendingChoices())
	})

	t.Run("совпавший текст атомарно снимает ожидание", func(t *testing.T) {
		got, target, ok := reg.TakeChoice(1, "go")
		require.True(t, ok)
		assert.Same(t, sess, got)
		assert.Equal(t, "l1", target)
		assert.Empty(t, sess.PendingChoices())

		// Повторная доставка того же текста уже ничего не запускает.
		_, _, ok = reg.TakeChoice(1, "go")
		assert.False(t, ok)
	})

	t.Run("неизвестный игрок", func(t *testing.T) {
		_, _, ok := reg.TakeChoice(999, "go")
		assert.False(t, ok)
	})
}

func TestRegistryRemove(t *testing.T) {
	reg := engine.NewRegistry()
	sc := menuScript()

	reg.CreateIfAbsent(1, func() *engine.Session {
		return newTestSession(1, sc, &fakeMessenger{})
	})

	assert.True(t, reg.Remove(1))
	assert.False(t, reg.Remove(1))
	_, ok := reg.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, reg.Len())
}

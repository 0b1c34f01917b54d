package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"ecotokens/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_EmitDispatchesToSubscribers(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	wg.Add(2)

	var mu sync.Mutex
	var received []Event

	handler := func(ctx context.Context, event Event) {
		mu.Lock()
		received = append(received, event)
		mu.Unlock()
		wg.Done()
	}
	bus.Subscribe(EventTypeTokensEarned, handler)
	bus.Subscribe(EventTypeTokensEarned, handler)

	bus.Emit(context.Background(), TokensEarnedEvent{
		UserID:       "user-1",
		TokensEarned: 50,
	})

	waitWithTimeout(t, &wg)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 2)
	for _, ev := range received {
		assert.Equal(t, EventTypeTokensEarned, ev.Type())
	}
}

func TestBus_EmitOnlyMatchingType(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	wg.Add(1)

	badgeSeen := false
	bus.Subscribe(EventTypeBadgeUnlocked, func(ctx context.Context, event Event) {
		badgeSeen = true
		wg.Done()
	})

	earnCalls := 0
	bus.Subscribe(EventTypeTokensEarned, func(ctx context.Context, event Event) {
		earnCalls++
	})

	bus.Emit(context.Background(), BadgeUnlockedEvent{
		UserID: "user-1",
		Badge:  models.BadgeGreenStarter,
	})

	waitWithTimeout(t, &wg)
	assert.True(t, badgeSeen)
	assert.Equal(t, 0, earnCalls)
}

func TestBus_HandlerPanicDoesNotAffectOthers(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	wg.Add(1)

	bus.Subscribe(EventTypeUserRegistered, func(ctx context.Context, event Event) {
		panic("handler bug")
	})
	bus.Subscribe(EventTypeUserRegistered, func(ctx context.Context, event Event) {
		wg.Done()
	})

	bus.Emit(context.Background(), UserRegisteredEvent{UserID: "user-1"})

	waitWithTimeout(t, &wg)
}

func TestTransactionalBus_FlushEmitsPending(t *testing.T) {
	real := NewBus()
	txBus := NewTransactionalBus(real)

	var wg sync.WaitGroup
	wg.Add(2)

	var mu sync.Mutex
	var types []EventType
	record := func(ctx context.Context, event Event) {
		mu.Lock()
		types = append(types, event.Type())
		mu.Unlock()
		wg.Done()
	}
	real.Subscribe(EventTypeTokensEarned, record)
	real.Subscribe(EventTypeBadgeUnlocked, record)

	txBus.Publish(TokensEarnedEvent{UserID: "user-1", TokensEarned: 100})
	txBus.Publish(BadgeUnlockedEvent{UserID: "user-1", Badge: models.BadgeGreenStarter})

	require.NoError(t, txBus.Flush(context.Background()))
	waitWithTimeout(t, &wg)

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []EventType{EventTypeTokensEarned, EventTypeBadgeUnlocked}, types)

	// A second flush has nothing left to emit
	require.NoError(t, txBus.Flush(context.Background()))
}

func TestTransactionalBus_DiscardDropsPending(t *testing.T) {
	real := NewBus()
	txBus := NewTransactionalBus(real)

	emitted := false
	real.Subscribe(EventTypeTokensEarned, func(ctx context.Context, event Event) {
		emitted = true
	})

	txBus.Publish(TokensEarnedEvent{UserID: "user-1"})
	txBus.Discard()
	require.NoError(t, txBus.Flush(context.Background()))

	// Give any stray goroutine a moment to run
	time.Sleep(50 * time.Millisecond)
	assert.False(t, emitted)
}

func waitWithTimeout(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event handlers")
	}
}

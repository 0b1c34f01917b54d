package events

import (
	"context"
	"sync"

	"ecotokens/models"
	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeTokensEarned   EventType = "tokens_earned"
	EventTypeUserRegistered EventType = "user_registered"
	EventTypeBadgeUnlocked  EventType = "badge_unlocked"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// TokensEarnedEvent represents an accepted earn that was durably recorded
type TokensEarnedEvent struct {
	UserID         string
	CarbonSavedKG  float64
	TokensEarned   float64
	LifetimeTokens float64
}

func (e TokensEarnedEvent) Type() EventType {
	return EventTypeTokensEarned
}

// UserRegisteredEvent represents a user's first accepted earn, which
// lazily created their leaderboard entry
type UserRegisteredEvent struct {
	UserID      string
	DisplayName string
}

func (e UserRegisteredEvent) Type() EventType {
	return EventTypeUserRegistered
}

// BadgeUnlockedEvent represents a milestone badge crossing its threshold
type BadgeUnlockedEvent struct {
	UserID         string
	Badge          models.Badge
	LifetimeTokens float64
}

func (e BadgeUnlockedEvent) Type() EventType {
	return EventTypeBadgeUnlocked
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make([]Handler, 0)
	}
	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	// Call handlers asynchronously to avoid blocking
	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}

// TransactionalBus holds pending events coupled to a unit of work and
// flushes them to the underlying bus only after the transaction commits.
type TransactionalBus struct {
	real    *Bus
	pending []Event // stashed until Flush
}

func NewTransactionalBus(real *Bus) *TransactionalBus {
	return &TransactionalBus{real: real}
}

func (b *TransactionalBus) Publish(e Event) {
	b.pending = append(b.pending, e)
}

// Flush emits all pending events, called after successful DB commit
func (b *TransactionalBus) Flush(ctx context.Context) error {
	// Use background context for event emission so handlers outlive the
	// request's transaction context
	eventCtx := context.Background()

	for _, ev := range b.pending {
		log.WithFields(log.Fields{
			"eventType": ev.Type(),
		}).Debug("Emitting event to main event bus")
		b.real.Emit(eventCtx, ev)
	}
	b.pending = nil
	return nil
}

// Discard drops pending events, called after db rollback
func (b *TransactionalBus) Discard() {
	b.pending = nil
}

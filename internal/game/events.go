package game

import (
	"time"
)

// EventType represents a game event type with type safety.
type EventType string

const (
	EventTypeHoleStart    EventType = "hole_start"
	EventTypeTeamsFormed  EventType = "teams_formed"
	EventTypeWagerChanged EventType = "wager_changed"
	EventTypeShot         EventType = "shot"
	EventTypeHoleComplete EventType = "hole_complete"
	EventTypeGameComplete EventType = "game_complete"
)

func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a game.
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// HoleStartEvent is published when a hole opens for play.
type HoleStartEvent struct {
	Hole         int
	HittingOrder []PlayerID
	BaseWager    int
	CarriedOver  bool
	Phase        Phase
	timestamp    time.Time
}

func (e HoleStartEvent) EventType() EventType { return EventTypeHoleStart }
func (e HoleStartEvent) Timestamp() time.Time { return e.timestamp }

// TeamsFormedEvent is published when a formation freezes.
type TeamsFormedEvent struct {
	Hole      int
	Kind      FormationKind
	Sides     [2][]PlayerID
	timestamp time.Time
}

func (e TeamsFormedEvent) EventType() EventType { return EventTypeTeamsFormed }
func (e TeamsFormedEvent) Timestamp() time.Time { return e.timestamp }

// WagerChangedEvent is published for every ladder escalation.
type WagerChangedEvent struct {
	Hole      int
	Kind      LadderEventKind
	By        PlayerID
	Wager     int
	timestamp time.Time
}

func (e WagerChangedEvent) EventType() EventType { return EventTypeWagerChanged }
func (e WagerChangedEvent) Timestamp() time.Time { return e.timestamp }

// ShotEvent is published after a shot is applied.
type ShotEvent struct {
	Hole      int
	Player    PlayerID
	Ball      BallPosition
	NextToHit PlayerID
	timestamp time.Time
}

func (e ShotEvent) EventType() EventType { return EventTypeShot }
func (e ShotEvent) Timestamp() time.Time { return e.timestamp }

// HoleCompleteEvent is published once a hole is settled.
type HoleCompleteEvent struct {
	Hole      int
	Result    *HoleResult
	timestamp time.Time
}

func (e HoleCompleteEvent) EventType() EventType { return EventTypeHoleComplete }
func (e HoleCompleteEvent) Timestamp() time.Time { return e.timestamp }

// GameCompleteEvent is published after the 18th hole settles.
type GameCompleteEvent struct {
	Standings []Standing
	timestamp time.Time
}

func (e GameCompleteEvent) EventType() EventType { return EventTypeGameComplete }
func (e GameCompleteEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to game events.
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription.
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation. It is called
// with the game lock held, so delivery is synchronous and ordered.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus.
func NewEventBus() EventBus {
	return &SimpleEventBus{subscribers: make([]EventSubscriber, 0)}
}

// Subscribe adds a subscriber to receive events.
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers.
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

package world

type EventType int

const (
	EventLaunch EventType = iota
	EventBounce
	EventRest
	EventHit
	EventCapture
	EventReset
)

type Event struct {
	Type  EventType
	ID    string // entity the event concerns
	Pos   Vec2
	Score int // projectile score after the event
	Value int // points awarded (EventCapture)
}

type EventHandler func(Event)

// EventBus dispatches synchronously on the caller's goroutine.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

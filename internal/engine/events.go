package engine

import "github.com/charmbracelet/log"

// EventType names the notifications the engine emits to the host UI.
type EventType string

const (
	EventGameStart EventType = "gamestart"
	EventPause     EventType = "pause"
	EventReset     EventType = "reset"
	EventScore     EventType = "score"
	EventCollect   EventType = "collect"
	EventGameOver  EventType = "gameover"
)

// Event is one emitted notification. Score is set for score and gameover
// events; Points and X/Y for collect events.
type Event struct {
	Type   EventType
	Score  int
	Points int
	X, Y   float64
}

// Handler receives emitted events.
type Handler func(Event)

// dispatcher fans events out to subscribed handlers. Handlers are tracked by
// subscription id so they can be removed individually.
type dispatcher struct {
	logger   *log.Logger
	handlers map[EventType][]subscription
	nextID   int
}

type subscription struct {
	id int
	fn Handler
}

func newDispatcher(logger *log.Logger) *dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &dispatcher{
		logger:   logger,
		handlers: make(map[EventType][]subscription),
	}
}

// subscribe registers a handler and returns its subscription id.
func (d *dispatcher) subscribe(t EventType, fn Handler) int {
	if fn == nil {
		return 0
	}
	d.nextID++
	d.handlers[t] = append(d.handlers[t], subscription{id: d.nextID, fn: fn})
	return d.nextID
}

// unsubscribe removes the handler with the given id from an event type.
func (d *dispatcher) unsubscribe(t EventType, id int) {
	subs := d.handlers[t]
	for i, s := range subs {
		if s.id == id {
			d.handlers[t] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// emit invokes every handler for the event's type. Each handler runs inside
// its own recover guard; a panicking handler is logged and the rest still
// run.
func (d *dispatcher) emit(ev Event) {
	for _, s := range d.handlers[ev.Type] {
		d.invoke(ev, s.fn)
	}
}

func (d *dispatcher) invoke(ev Event, fn Handler) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("event handler panicked", "event", string(ev.Type), "panic", r)
		}
	}()
	fn(ev)
}

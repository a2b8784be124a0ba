package engine

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestDispatcherFansOutInOrder(t *testing.T) {
	d := newDispatcher(log.New(io.Discard))

	var order []int
	d.subscribe(EventScore, func(Event) { order = append(order, 1) })
	d.subscribe(EventScore, func(Event) { order = append(order, 2) })

	d.emit(Event{Type: EventScore, Score: 7})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("handler order = %v, expected [1 2]", order)
	}
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := newDispatcher(log.New(io.Discard))

	calls := 0
	id := d.subscribe(EventCollect, func(Event) { calls++ })
	keep := 0
	d.subscribe(EventCollect, func(Event) { keep++ })

	d.unsubscribe(EventCollect, id)
	d.emit(Event{Type: EventCollect})

	if calls != 0 {
		t.Error("removed handler still invoked")
	}
	if keep != 1 {
		t.Error("remaining handler should still fire")
	}
}

func TestDispatcherIsolatesPanickingHandler(t *testing.T) {
	d := newDispatcher(log.New(io.Discard))

	after := 0
	d.subscribe(EventGameOver, func(Event) { panic("boom") })
	d.subscribe(EventGameOver, func(Event) { after++ })

	d.emit(Event{Type: EventGameOver, Score: 3})

	if after != 1 {
		t.Error("handler after the panicking one did not run")
	}
}

func TestDispatcherTypeIsolation(t *testing.T) {
	d := newDispatcher(log.New(io.Discard))

	scoreCalls := 0
	d.subscribe(EventScore, func(Event) { scoreCalls++ })

	d.emit(Event{Type: EventPause})
	d.emit(Event{Type: EventReset})

	if scoreCalls != 0 {
		t.Error("handlers must only see their own event type")
	}
}

func TestDispatcherCollectPayload(t *testing.T) {
	d := newDispatcher(log.New(io.Discard))

	var got Event
	d.subscribe(EventCollect, func(ev Event) { got = ev })

	d.emit(Event{Type: EventCollect, Points: 25, X: 40, Y: 12})

	if got.Points != 25 || got.X != 40 || got.Y != 12 {
		t.Errorf("collect payload = %+v", got)
	}
}

package domain

import "fmt"

// Event is a transition request kind.
type Event string

const (
	EventPowerOn    Event = "power_on"
	EventPowerOff   Event = "power_off"
	EventMove       Event = "move"
	EventStop       Event = "stop"
	EventOpenDoors  Event = "open_doors"
	EventCloseDoors Event = "close_doors"
)

// Events lists every transition kind in declaration order.
func Events() []Event {
	return []Event{
		EventPowerOn,
		EventPowerOff,
		EventMove,
		EventStop,
		EventOpenDoors,
		EventCloseDoors,
	}
}

// ParseEvent converts a wire string into an Event.
func ParseEvent(s string) (Event, error) {
	e := Event(s)
	switch e {
	case EventPowerOn, EventPowerOff, EventMove, EventStop, EventOpenDoors, EventCloseDoors:
		return e, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEvent, s)
}

package domain

// State is the operational state of a tram.
type State string

const (
	StateIdle   State = "idle"   // Created, powered down
	StateReady  State = "ready"  // Powered, stationary, doors closed
	StateOpen   State = "open"   // Stationary with doors open
	StateMoving State = "moving" // In motion
	StateFinal  State = "final"  // Powered off for good; no outgoing transitions
)

// Valid reports whether s is one of the five enumerated states.
func (s State) Valid() bool {
	switch s {
	case StateIdle, StateReady, StateOpen, StateMoving, StateFinal:
		return true
	}
	return false
}

// Terminal reports whether the state has no outgoing transitions.
func (s State) Terminal() bool {
	return s == StateFinal
}

// Data is the auxiliary record carried alongside the state.
// Passengers may go negative if door cycles report more exits than
// boardings; the counter is kept as reported, without clamping.
type Data struct {
	Passengers int `json:"passengers"`
}

// Snapshot is a point-in-time view of a tram, safe to hand to callers.
type Snapshot struct {
	State      State `json:"state"`
	Passengers int   `json:"passengers"`
}

// NewData returns the data record of a freshly created tram.
func NewData() Data {
	return Data{Passengers: 0}
}

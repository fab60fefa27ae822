package domain

import "github.com/mitchellh/mapstructure"

// Payload keys consulted by the CloseDoors transition.
const (
	KeyPassengersEntered = "passengers_entered"
	KeyPassengersExited  = "passengers_exited"
)

// DoorCycle is the payload of a CloseDoors transition.
type DoorCycle struct {
	Entered int `json:"passengers_entered" mapstructure:"passengers_entered"`
	Exited  int `json:"passengers_exited" mapstructure:"passengers_exited"`
}

// Delta is the net passenger change reported by the cycle.
func (c DoorCycle) Delta() int {
	return c.Entered - c.Exited
}

// DecodeDoorCycle extracts boarding counts from a raw payload map.
// Keys are decoded independently so a malformed value for one cannot poison
// the other: absent, non-numeric, or negative values fall back to 0.
func DecodeDoorCycle(payload map[string]any) DoorCycle {
	return DoorCycle{
		Entered: decodeCount(payload, KeyPassengersEntered),
		Exited:  decodeCount(payload, KeyPassengersExited),
	}
}

func decodeCount(payload map[string]any, key string) int {
	raw, ok := payload[key]
	if !ok {
		return 0
	}
	var n int
	if err := mapstructure.WeakDecode(raw, &n); err != nil {
		return 0
	}
	if n < 0 {
		return 0
	}
	return n
}

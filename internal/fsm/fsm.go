package fsm

import (
	"github.com/aretw0/tramway/pkg/domain"
)

// Apply evaluates a single transition request against the current aggregate.
// It is a pure function: state and data are taken by value and the results
// are only meaningful together, so a caller commits both or neither.
//
// The table:
//
//	Idle   --power_on---> Ready
//	Ready  --power_off--> Final  (passengers == 0)
//	Ready  --power_off--> Ready  (passengers != 0; succeeds as a no-op)
//	Ready  --move-------> Moving
//	Moving --stop-------> Ready
//	Ready  --open_doors-> Open
//	Open   --close_doors-> Ready (passengers += entered - exited)
//
// Anything else is rejected with domain.ErrInvalidTransition, including
// every request while in Final.
func Apply(state domain.State, data domain.Data, event domain.Event, payload map[string]any) (domain.State, domain.Data, error) {
	switch {
	case state == domain.StateIdle && event == domain.EventPowerOn:
		return domain.StateReady, data, nil

	case state == domain.StateReady && event == domain.EventPowerOff:
		// The only data-dependent guard. Both branches together cover every
		// passenger count, so power_off never falls through to the default
		// rejection while the tram is ready.
		if data.Passengers == 0 {
			return domain.StateFinal, data, nil
		}
		return domain.StateReady, data, nil

	case state == domain.StateReady && event == domain.EventMove:
		return domain.StateMoving, data, nil

	case state == domain.StateMoving && event == domain.EventStop:
		return domain.StateReady, data, nil

	case state == domain.StateReady && event == domain.EventOpenDoors:
		return domain.StateOpen, data, nil

	case state == domain.StateOpen && event == domain.EventCloseDoors:
		// The one transition that consults the payload and the one place
		// the passenger count changes. No clamping: more exits than
		// boardings drives the count negative, as reported.
		cycle := domain.DecodeDoorCycle(payload)
		data.Passengers += cycle.Delta()
		return domain.StateReady, data, nil
	}

	return state, data, domain.ErrInvalidTransition
}

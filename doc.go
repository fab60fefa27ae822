// Package tramway models the operational lifecycle of trams as finite
// state machines with guarded transitions and an embedded passenger
// counter.
//
// Each tram is an independent actor: a goroutine owns the state/data pair
// and serializes transition requests, so callers observe strict request
// order and transitions apply atomically or not at all. The transition
// table lives in internal/fsm; hosting surfaces (HTTP API, CLI, journal
// backends) are adapters around it.
//
// Minimal use:
//
//	tram := tramway.New("line-1")
//	defer tram.Stop()
//
//	snap, err := tram.Apply(ctx, domain.EventPowerOn, nil)
package tramway

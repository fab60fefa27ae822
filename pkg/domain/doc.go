// Package domain holds the tram vocabulary shared across the module:
// states, transition kinds, payloads, journal records and sentinel errors.
// It has no behavior beyond parsing and payload decoding; the transition
// table itself lives in internal/fsm.
package domain

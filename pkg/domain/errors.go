package domain

import "errors"

// ErrInvalidTransition is returned when the requested event has no
// guard-satisfying clause for the current state. Both "nonsensical in any
// state" and "valid elsewhere" collapse into this single kind; callers that
// care can query the snapshot separately.
var ErrInvalidTransition = errors.New("invalid transition")

// ErrUnknownEvent is returned when a wire string names no transition kind.
var ErrUnknownEvent = errors.New("unknown event")

// ErrTramNotFound is returned when a tram ID cannot be found in the depot.
var ErrTramNotFound = errors.New("tram not found")

// ErrTramExists is returned when creating a tram under an ID already in use.
var ErrTramExists = errors.New("tram already exists")

// ErrTramRetired is returned for requests against a tram whose actor has
// been stopped.
var ErrTramRetired = errors.New("tram retired")

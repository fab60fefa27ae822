package domain

import "time"

// TransitionRecord is one journal entry describing a transition attempt,
// accepted or rejected. Passengers holds the count after the attempt.
type TransitionRecord struct {
	TramID     string    `json:"tram_id"`
	Event      Event     `json:"event"`
	From       State     `json:"from"`
	To         State     `json:"to"`
	Accepted   bool      `json:"accepted"`
	Passengers int       `json:"passengers"`
	At         time.Time `json:"at"`
}

package tui

import (
	"fmt"

	"github.com/aretw0/tramway/pkg/domain"
	"github.com/muesli/termenv"
)

// Renderer formats tram status lines for the terminal.
type Renderer struct {
	profile termenv.Profile
}

// NewRenderer creates a renderer. When color is false (piped output), the
// ASCII profile strips all styling.
func NewRenderer(color bool) *Renderer {
	profile := termenv.Ascii
	if color {
		profile = termenv.ColorProfile()
	}
	return &Renderer{profile: profile}
}

func (r *Renderer) stateColor(state domain.State) string {
	switch state {
	case domain.StateIdle:
		return "#9ca3af"
	case domain.StateReady:
		return "#4ade80"
	case domain.StateOpen:
		return "#facc15"
	case domain.StateMoving:
		return "#38bdf8"
	case domain.StateFinal:
		return "#f472b6"
	}
	return "#ffffff"
}

// State renders a colored state name.
func (r *Renderer) State(state domain.State) string {
	return termenv.String(string(state)).
		Foreground(r.profile.Color(r.stateColor(state))).
		Bold().
		String()
}

// Status renders a one-line snapshot: state plus passenger count.
func (r *Renderer) Status(snap domain.Snapshot) string {
	return fmt.Sprintf("%s  passengers=%d", r.State(snap.State), snap.Passengers)
}

// Step renders the outcome of one scripted transition.
func (r *Renderer) Step(index int, event domain.Event, snap domain.Snapshot, err error) string {
	mark := termenv.String("✓").Foreground(r.profile.Color("#4ade80")).String()
	if err != nil {
		mark = termenv.String("✗").Foreground(r.profile.Color("#f87171")).String()
	}

	line := fmt.Sprintf("%2d %s %-12s -> %s", index, mark, event, r.Status(snap))
	if err != nil {
		line += termenv.String(fmt.Sprintf("  (%v)", err)).
			Foreground(r.profile.Color("#f87171")).
			String()
	}
	return line
}

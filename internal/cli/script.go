package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/tramway/pkg/domain"
)

// Step is one scripted transition request.
type Step struct {
	Event   domain.Event
	Payload map[string]any
}

// ParseScript converts CLI arguments into steps. Each argument is an event
// name, optionally carrying door counts for close_doors:
//
//	power_on move stop open_doors close_doors:entered=3,exited=1
func ParseScript(args []string) ([]Step, error) {
	steps := make([]Step, 0, len(args))

	for _, arg := range args {
		name, extra, hasExtra := strings.Cut(arg, ":")

		event, err := domain.ParseEvent(name)
		if err != nil {
			return nil, err
		}

		step := Step{Event: event}
		if hasExtra {
			if event != domain.EventCloseDoors {
				return nil, fmt.Errorf("event %s takes no arguments", event)
			}
			payload, err := parseCounts(extra)
			if err != nil {
				return nil, fmt.Errorf("bad arguments for %s: %w", event, err)
			}
			step.Payload = payload
		}
		steps = append(steps, step)
	}

	return steps, nil
}

func parseCounts(raw string) (map[string]any, error) {
	payload := make(map[string]any)

	for _, pair := range strings.Split(raw, ",") {
		key, val, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}

		n, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", val)
		}

		switch key {
		case "entered":
			payload[domain.KeyPassengersEntered] = n
		case "exited":
			payload[domain.KeyPassengersExited] = n
		default:
			return nil, fmt.Errorf("unknown key %q (want entered or exited)", key)
		}
	}

	return payload, nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/tramway/internal/presentation/tui"
	"github.com/aretw0/tramway/internal/runtime"
	"github.com/aretw0/tramway/pkg/domain"
)

// RunOptions configures a scripted run.
type RunOptions struct {
	Steps  []Step
	Out    io.Writer
	Color  bool
	Logger *slog.Logger
}

// Run drives a fresh tram through the scripted steps, rendering each
// outcome. Rejected transitions are reported and the script continues;
// only infrastructure failures abort.
func Run(ctx context.Context, opts RunOptions) error {
	var tramOpts []runtime.Option
	if opts.Logger != nil {
		tramOpts = append(tramOpts, runtime.WithLogger(opts.Logger))
	}
	tram := runtime.New("cli", tramOpts...)
	defer tram.Stop()

	renderer := tui.NewRenderer(opts.Color)
	rejected := 0

	for i, step := range opts.Steps {
		snap, err := tram.Apply(ctx, step.Event, step.Payload)
		if err != nil && !errors.Is(err, domain.ErrInvalidTransition) {
			return fmt.Errorf("apply %s: %w", step.Event, err)
		}
		if err != nil {
			rejected++
		}
		fmt.Fprintln(opts.Out, renderer.Step(i+1, step.Event, snap, err))
	}

	snap, err := tram.State(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(opts.Out, "\n%d steps, %d rejected, final: %s\n",
		len(opts.Steps), rejected, renderer.Status(snap))
	return nil
}

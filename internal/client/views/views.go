package views

import (
	"context"
	"time"
)

// DefaultSubmitDelay is the simulated latency before a form submission reaches
// the auth service.
const DefaultSubmitDelay = time.Second

// Outcome is the result of a view action. Next is the path to move to; empty
// means stay on the current view.
type Outcome struct {
	Next string
}

// Action is a navigation choice offered by a view.
type Action struct {
	Label  string
	Target string
}

// pause blocks for d or until ctx is done, whichever comes first.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Package program runs the commands returned by a view state machine.
package program

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Update folds an event into a state and may ask for more commands.
type Update[S, E, C any] func(S, E) (S, []C)

// Exec performs one command. It reports false for commands it does not
// handle; those are handed back by Run untouched.
type Exec[C, E any] func(ctx context.Context, cmd C) (E, bool)

type result[C, E any] struct {
	cmd     C
	event   E
	handled bool
}

// Run executes cmds concurrently and applies each event to the state as soon
// as it arrives, one at a time. Follow-up commands run as the next batch
// until none are left. Unhandled commands are returned in the order they
// were produced.
func Run[S, E, C any](ctx context.Context, state S, cmds []C, update Update[S, E, C], exec Exec[C, E]) (S, []C) {
	var unhandled []C

	for len(cmds) > 0 {
		results := make(chan result[C, E], len(cmds))

		var eg errgroup.Group
		for _, cmd := range cmds {
			eg.Go(func() error {
				event, ok := exec(ctx, cmd)
				results <- result[C, E]{cmd: cmd, event: event, handled: ok}
				return nil
			})
		}

		var next []C
		for range cmds {
			r := <-results
			if !r.handled {
				unhandled = append(unhandled, r.cmd)
				continue
			}
			var more []C
			state, more = update(state, r.event)
			next = append(next, more...)
		}
		_ = eg.Wait()

		cmds = next
	}

	return state, unhandled
}

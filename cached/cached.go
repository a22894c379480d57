// Package cached declares process-local lookup caches for registered processes.
//
// A cached slot resolves a registered name through the registry the first time it is
// used by a process and then serves the result from that process's own cache:
//
//	var counter = cached.Process("counter-process")
//
//	func worker(a *actor.Actor) {
//		pid, ok, err := counter.Get(a) // first call asks the registry
//		...
//		pid, ok, err = counter.Get(a) // later calls use the cached handle
//	}
//
// The absence of a registration is cached as well, until Reset. A cached handle is not
// revalidated when its process dies; use PID.Alive or the error from actor.Send.
package cached

import (
	"github.com/hedisam/cachedactor/actor"
	"github.com/hedisam/cachedactor/internal/observability"
	"github.com/hedisam/cachedactor/lookup"
)

// ProcessSlot caches the fire-and-forget handle of a registered process.
type ProcessSlot = lookup.Slot[*actor.PID]

// RefSlot caches the addressable handle of a registered process.
type RefSlot = lookup.Slot[actor.Ref]

// Process declares a process-local cache of the process registered as name.
func Process(name string, opts ...lookup.Option) *ProcessSlot {
	return lookup.Declare(name, resolveProcess, withMetrics(opts)...)
}

// Ref declares a process-local cache of the addressable process registered as name.
func Ref(name string, opts ...lookup.Option) *RefSlot {
	return lookup.Declare(name, actor.WhereIsRef, withMetrics(opts)...)
}

func resolveProcess(name string) (*actor.PID, bool, error) {
	p, err := actor.WhereIs(name)
	if err != nil {
		return nil, false, err
	}
	return p, p != nil, nil
}

// metrics come first so a caller supplied observer replaces them
func withMetrics(opts []lookup.Option) []lookup.Option {
	return append([]lookup.Option{lookup.WithObserver(observability.RecordLookup)}, opts...)
}

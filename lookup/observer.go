package lookup

// Event describes what a cache operation did.
type Event int32

const (
	// EventResolvedPresent: the resolver ran and returned a handle.
	EventResolvedPresent Event = iota
	// EventResolvedAbsent: the resolver ran and found nothing.
	EventResolvedAbsent
	// EventResolveFailed: the resolver returned an error, the state was left untouched.
	EventResolveFailed
	// EventHit: Get served a cached handle.
	EventHit
	// EventNegativeHit: Get served a cached absence.
	EventNegativeHit
	// EventSet: the cache was seeded with Set.
	EventSet
	// EventReset: the cache was reset.
	EventReset
)

func (e Event) String() string {
	switch e {
	case EventResolvedPresent:
		return "resolved_present"
	case EventResolvedAbsent:
		return "resolved_absent"
	case EventResolveFailed:
		return "resolve_failed"
	case EventHit:
		return "hit"
	case EventNegativeHit:
		return "negative_hit"
	case EventSet:
		return "set"
	case EventReset:
		return "reset"
	}
	return "unknown"
}

// Observer is notified after every Get, Set and Reset. It runs on the caller's
// goroutine, after the exclusive guard has been released.
type Observer func(name string, ev Event)

// Option configures a Cache or a Slot.
type Option func(*options)

type options struct {
	observer Observer
}

// WithObserver installs an observer. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

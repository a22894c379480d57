package lookup

import "sync/atomic"

const (
	cellFree int32 = iota
	cellBorrowed
)

// Resolver looks a name up in the authoritative registry. found is false when the
// registry has no handle for the name. A non-nil error means the lookup itself failed.
type Resolver[H any] func(name string) (h H, found bool, err error)

// Cache memoizes the registry lookup of a single name.
//
// Once resolved, the outcome (a handle or its absence) is kept until Reset, so the
// resolver runs at most once per lookup epoch. A cached handle is never revalidated:
// if the process behind it dies, Get keeps returning it.
//
// A Cache belongs to one execution context. Get, Set and Reset are exclusive; entering
// one of them while another is in progress (for example from inside the resolver)
// panics with a *BorrowConflictError.
type Cache[H any] struct {
	name     string
	state    State
	handle   H
	borrowed int32
	observer Observer
}

// New returns an unresolved cache for name.
func New[H any](name string, opts ...Option) *Cache[H] {
	o := newOptions(opts)
	return &Cache[H]{
		name:     name,
		state:    Unresolved,
		observer: o.observer,
	}
}

// Name returns the registry name the cache resolves.
func (c *Cache[H]) Name() string {
	return c.name
}

// Get returns the cached handle, resolving it first if no lookup happened yet in this epoch.
// An absent outcome is cached too and served without calling resolve again.
// Errors from resolve are returned unchanged and leave the cache unresolved.
func (c *Cache[H]) Get(resolve Resolver[H]) (H, bool, error) {
	c.borrow("get")
	ev, h, found, err := c.get(resolve)
	c.notify(ev)
	return h, found, err
}

func (c *Cache[H]) get(resolve Resolver[H]) (ev Event, h H, found bool, err error) {
	defer c.release()

	switch c.state {
	case Present:
		return EventHit, c.handle, true, nil
	case Absent:
		return EventNegativeHit, h, false, nil
	}

	h, found, err = resolve(c.name)
	if err != nil {
		var zero H
		return EventResolveFailed, zero, false, err
	}
	if !found {
		c.state = Absent
		var zero H
		return EventResolvedAbsent, zero, false, nil
	}
	c.state = Present
	c.handle = h
	return EventResolvedPresent, h, true, nil
}

// Set caches h regardless of the current state.
func (c *Cache[H]) Set(h H) {
	c.borrow("set")
	c.state = Present
	c.handle = h
	c.release()
	c.notify(EventSet)
}

// Reset drops whatever was cached. The next Get calls the resolver again.
func (c *Cache[H]) Reset() {
	c.borrow("reset")
	var zero H
	c.state = Unresolved
	c.handle = zero
	c.release()
	c.notify(EventReset)
}

// State returns the current lookup state.
func (c *Cache[H]) State() State {
	return c.state
}

// IsPresent reports whether a handle is cached.
func (c *Cache[H]) IsPresent() bool {
	return c.state == Present
}

// IsLookedUp reports whether the cache holds an outcome, positive or negative.
func (c *Cache[H]) IsLookedUp() bool {
	return c.state != Unresolved
}

// Peek returns the cached handle without ever resolving.
func (c *Cache[H]) Peek() (H, bool) {
	if c.state != Present {
		var zero H
		return zero, false
	}
	return c.handle, true
}

func (c *Cache[H]) borrow(op string) {
	if !atomic.CompareAndSwapInt32(&c.borrowed, cellFree, cellBorrowed) {
		panic(&BorrowConflictError{Name: c.name, Op: op})
	}
}

func (c *Cache[H]) release() {
	atomic.StoreInt32(&c.borrowed, cellFree)
}

func (c *Cache[H]) notify(ev Event) {
	if c.observer != nil {
		c.observer(c.name, ev)
	}
}

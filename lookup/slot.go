package lookup

import "sync/atomic"

var lastSlotID uint64

// Slot is a statically declared lookup cache: one name, one handle type, and one
// Cache per execution context. Contexts never see each other's cache.
type Slot[H any] struct {
	id      uint64
	name    string
	resolve Resolver[H]
	opts    []Option
}

// Declare binds name and its resolver to a new slot. Nothing is cached until the slot
// is first touched from a context.
//
//	var counter = lookup.Declare("counter", func(name string) (*actor.PID, bool, error) {
//		pid, err := actor.WhereIs(name)
//		return pid, pid != nil, err
//	})
func Declare[H any](name string, resolve Resolver[H], opts ...Option) *Slot[H] {
	return &Slot[H]{
		id:      atomic.AddUint64(&lastSlotID, 1),
		name:    name,
		resolve: resolve,
		opts:    opts,
	}
}

// Name returns the registry name of the slot.
func (s *Slot[H]) Name() string {
	return s.name
}

// Cache returns the cache of the slot in o's context, creating it on first touch.
func (s *Slot[H]) Cache(o Owner) *Cache[H] {
	locals := o.Locals()
	if locals == nil {
		panic("lookup: slot " + s.name + " touched from an owner without locals")
	}
	if v, ok := locals.load(s.id); ok {
		return v.(*Cache[H])
	}
	c := New[H](s.name, s.opts...)
	locals.store(s.id, c)
	return c
}

// Get resolves the slot's name in o's context, at most once per lookup epoch.
func (s *Slot[H]) Get(o Owner) (H, bool, error) {
	return s.Cache(o).Get(s.resolve)
}

// Set seeds o's cache with h without consulting the registry.
func (s *Slot[H]) Set(o Owner, h H) {
	s.Cache(o).Set(h)
}

// Reset makes the next Get in o's context look the name up again.
func (s *Slot[H]) Reset(o Owner) {
	s.Cache(o).Reset()
}

// IsPresent reports whether o's cache holds a handle.
func (s *Slot[H]) IsPresent(o Owner) bool {
	return s.Cache(o).IsPresent()
}

// IsLookedUp reports whether o's cache holds an outcome, positive or negative.
func (s *Slot[H]) IsLookedUp(o Owner) bool {
	return s.Cache(o).IsLookedUp()
}

package lookup

// Locals is the private slot storage of one execution context. Caches are created in
// it lazily, the first time a slot is touched from that context, and live as long as
// the Locals does.
//
// A Locals is not safe for concurrent use; it must only be reached by its owner.
type Locals struct {
	slots map[uint64]interface{}
}

// Owner is an execution context carrying its own Locals.
type Owner interface {
	Locals() *Locals
}

// NewLocals returns empty storage for a new execution context.
func NewLocals() *Locals {
	return &Locals{slots: make(map[uint64]interface{})}
}

// Len returns the number of slots touched so far.
func (l *Locals) Len() int {
	return len(l.slots)
}

// Clear drops every cache held by the context.
func (l *Locals) Clear() {
	l.slots = make(map[uint64]interface{})
}

// Locals makes a bare *Locals usable as an Owner.
func (l *Locals) Locals() *Locals {
	return l
}

func (l *Locals) load(id uint64) (interface{}, bool) {
	v, ok := l.slots[id]
	return v, ok
}

func (l *Locals) store(id uint64, v interface{}) {
	if l.slots == nil {
		l.slots = make(map[uint64]interface{})
	}
	l.slots[id] = v
}

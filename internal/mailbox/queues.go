package mailbox

import "github.com/Workiva/go-datastructures/queue"

// messageQueue is the storage behind a queueMailbox. push may be called from any
// goroutine, pop and empty only from the receiving one.
type messageQueue interface {
	push(message interface{}) error
	pop() (interface{}, bool)
	empty() bool
	dispose()
}

type ringQueue struct {
	rb *queue.RingBuffer
}

func newRingQueue(capacity uint64) *ringQueue {
	return &ringQueue{rb: queue.NewRingBuffer(capacity)}
}

func (q *ringQueue) push(message interface{}) error {
	ok, err := q.rb.Offer(message)
	if err != nil {
		return ErrDisposed
	}
	if !ok {
		return ErrFull
	}
	return nil
}

func (q *ringQueue) pop() (interface{}, bool) {
	if q.rb.Len() == 0 {
		return nil, false
	}
	msg, err := q.rb.Get()
	if err != nil {
		return nil, false
	}
	return msg, true
}

func (q *ringQueue) empty() bool {
	return q.rb.Len() == 0
}

func (q *ringQueue) dispose() {
	q.rb.Dispose()
}

// mpscQueue is unbounded: any number of senders, one receiver.
type mpscQueue struct {
	q *queue.Queue
}

func newMPSCQueue(hint uint64) *mpscQueue {
	return &mpscQueue{q: queue.New(int64(hint))}
}

func (q *mpscQueue) push(message interface{}) error {
	if err := q.q.Put(message); err != nil {
		return ErrDisposed
	}
	return nil
}

// pop never blocks: Get only waits on an empty queue and the receiver is the only
// one taking items out.
func (q *mpscQueue) pop() (interface{}, bool) {
	if q.q.Empty() {
		return nil, false
	}
	items, err := q.q.Get(1)
	if err != nil || len(items) == 0 {
		return nil, false
	}
	return items[0], true
}

func (q *mpscQueue) empty() bool {
	return q.q.Empty()
}

func (q *mpscQueue) dispose() {
	q.q.Dispose()
}

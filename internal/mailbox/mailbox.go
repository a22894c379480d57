package mailbox

import (
	"errors"
	"fmt"
	"time"
)

const DefaultCapacity uint64 = 128

var (
	ErrDisposed = errors.New("mailbox: disposed")
	ErrFull     = errors.New("mailbox: full")
)

// Kind selects the queue a process mailbox is built on.
type Kind string

const (
	// Ring is a bounded ring buffer, sends fail with ErrFull when it is full.
	Ring Kind = "ring"
	// MPSC is an unbounded multi-producer single-consumer queue.
	MPSC Kind = "mpsc"
)

type MessageHandler func(message interface{}) (loop bool)

type Mailbox interface {
	SendUserMessage(message interface{}) error
	Receive(handler MessageHandler)
	ReceiveWithTimeout(d time.Duration, handler MessageHandler)
	Dispose()
	Disposed() bool
}

// New builds a process mailbox. capacity bounds Ring and only sizes the initial
// allocation of MPSC.
func New(kind Kind, capacity uint64) (Mailbox, error) {
	switch kind {
	case Ring, "":
		if capacity == 0 {
			capacity = DefaultCapacity
		}
		return newQueueMailbox(newRingQueue(capacity)), nil
	case MPSC:
		return newQueueMailbox(newMPSCQueue(capacity)), nil
	default:
		return nil, fmt.Errorf("mailbox: unknown kind %q", kind)
	}
}

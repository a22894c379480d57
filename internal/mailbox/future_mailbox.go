package mailbox

import (
	"sync"
	"time"

	"github.com/hedisam/cachedactor/sysmsg"
)

// FutureMailbox accepts a single message. It backs request/response round trips
// such as registry lookups and Ref calls.
type FutureMailbox struct {
	m           chan interface{}
	done        chan struct{}
	disposeOnce sync.Once
}

func NewFutureMailbox() *FutureMailbox {
	return &FutureMailbox{
		m:    make(chan interface{}, 1),
		done: make(chan struct{}),
	}
}

// SendUserMessage never blocks: only the first message is kept.
func (f *FutureMailbox) SendUserMessage(message interface{}) error {
	select {
	case <-f.done:
		return ErrDisposed
	case f.m <- message:
		return nil
	default:
		return ErrFull
	}
}

func (f *FutureMailbox) Receive(handler MessageHandler) {
	select {
	case msg := <-f.m:
		handler(msg)
	case <-f.done:
		handler(ErrDisposed)
	}
}

func (f *FutureMailbox) ReceiveWithTimeout(d time.Duration, handler MessageHandler) {
	if d <= 0 {
		f.Receive(handler)
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case msg := <-f.m:
		handler(msg)
	case <-timer.C:
		handler(sysmsg.Timeout{Duration: d})
	case <-f.done:
		handler(ErrDisposed)
	}
}

func (f *FutureMailbox) Dispose() {
	f.disposeOnce.Do(func() {
		close(f.done)
	})
}

func (f *FutureMailbox) Disposed() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

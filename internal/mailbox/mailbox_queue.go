package mailbox

import (
	"sync"
	"time"

	"github.com/hedisam/cachedactor/sysmsg"
)

type queueMailbox struct {
	queue messageQueue
	done  chan struct{}
	// signal holds at most one pending wake up. senders never block on it,
	// the receiver drains the whole queue on every wake up.
	signal      chan struct{}
	disposeOnce sync.Once
}

func newQueueMailbox(q messageQueue) *queueMailbox {
	return &queueMailbox{
		queue:  q,
		done:   make(chan struct{}),
		signal: make(chan struct{}, 1),
	}
}

func (m *queueMailbox) SendUserMessage(message interface{}) error {
	select {
	case <-m.done:
		return ErrDisposed
	default:
	}
	if err := m.queue.push(message); err != nil {
		return err
	}
	select {
	case m.signal <- struct{}{}:
	default:
	}
	return nil
}

func (m *queueMailbox) Receive(handler MessageHandler) {
	for {
		if !m.drain(handler) {
			return
		}
		select {
		case <-m.done:
			return
		case <-m.signal:
		}
	}
}

// ReceiveWithTimeout hands sysmsg.Timeout to the handler whenever d passes without a message.
func (m *queueMailbox) ReceiveWithTimeout(d time.Duration, handler MessageHandler) {
	if d <= 0 {
		m.Receive(handler)
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	for {
		if !m.drain(handler) {
			return
		}
		select {
		case <-m.done:
			return
		case <-m.signal:
		case <-timer.C:
			if !handler(sysmsg.Timeout{Duration: d}) {
				return
			}
		}
		timer.Reset(d)
	}
}

// drain returns false once the handler asks to stop or the mailbox got disposed.
func (m *queueMailbox) drain(handler MessageHandler) (loop bool) {
	for !m.queue.empty() {
		if m.Disposed() {
			return false
		}
		msg, ok := m.queue.pop()
		if !ok {
			break
		}
		if !handler(msg) {
			return false
		}
	}
	return !m.Disposed()
}

func (m *queueMailbox) Dispose() {
	m.disposeOnce.Do(func() {
		close(m.done)
		m.queue.dispose()
	})
}

func (m *queueMailbox) Disposed() bool {
	select {
	case <-m.done:
		return true
	default:
		return false
	}
}

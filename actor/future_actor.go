package actor

import (
	"errors"
	"time"

	"github.com/hedisam/cachedactor/internal/mailbox"
	"github.com/hedisam/cachedactor/internal/pid"
	"github.com/hedisam/cachedactor/sysmsg"
)

// ErrTimeout is returned when a response did not arrive in time.
var ErrTimeout = errors.New("actor: timeout")

// futureActor receives exactly one response.
type futureActor struct {
	pid pid.PID
}

func newFutureActor() *futureActor {
	return &futureActor{
		pid: pid.NewFuturePID(),
	}
}

func (f *futureActor) Self() *PID {
	return pid.NewProtectedPID(f.pid)
}

func (f *futureActor) RecvWithTimeout(d time.Duration) (response interface{}, err error) {
	f.pid.Mailbox().ReceiveWithTimeout(d, func(message interface{}) (loop bool) {
		response, err = futureResult(message)
		return false
	})
	return
}

func (f *futureActor) Dispose() {
	f.pid.Mailbox().Dispose()
}

func futureResult(message interface{}) (interface{}, error) {
	switch msg := message.(type) {
	case sysmsg.Timeout:
		return nil, ErrTimeout
	case error:
		if errors.Is(msg, mailbox.ErrDisposed) {
			return nil, ErrDead
		}
		return msg, nil
	default:
		return msg, nil
	}
}

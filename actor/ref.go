package actor

import (
	"errors"
	"time"
)

// ErrNilRef is returned when calling through a zero Ref.
var ErrNilRef = errors.New("actor: call on a nil ref")

// Ref is the addressable handle of a process that answers requests. Servers
// receive Call messages and answer them with Reply.
type Ref struct {
	pid *PID
}

// Call is what a Ref delivers to the server process.
type Call struct {
	Sender  *PID
	Request interface{}
}

func NewRef(p *PID) Ref {
	return Ref{pid: p}
}

func (r Ref) PID() *PID {
	return r.pid
}

func (r Ref) IsZero() bool {
	return r.pid == nil
}

// Call sends request and waits for the reply. A non-positive timeout falls back to
// the runtime LookupTimeout.
func (r Ref) Call(request interface{}, timeout time.Duration) (interface{}, error) {
	if r.pid == nil {
		return nil, ErrNilRef
	}
	if timeout <= 0 {
		timeout = CurrentOptions().LookupTimeout
	}
	future := newFutureActor()
	defer future.Dispose()
	if err := Send(r.pid, Call{Sender: future.Self(), Request: request}); err != nil {
		return nil, err
	}
	return future.RecvWithTimeout(timeout)
}

// Cast sends request without waiting for a reply.
func (r Ref) Cast(request interface{}) error {
	if r.pid == nil {
		return ErrNilRef
	}
	return Send(r.pid, request)
}

// Reply answers a Call.
func Reply(call Call, response interface{}) error {
	return Send(call.Sender, response)
}

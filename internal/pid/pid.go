package pid

import (
	"github.com/hedisam/cachedactor/internal/mailbox"
)

type PID interface {
	ID() string
	Mailbox() mailbox.Mailbox
	// Shutdown marks the process context as done. It does not stop the mailbox.
	Shutdown()
}

// ProtectedPID is the handle handed out to users. It hides the mailbox, copying
// the pointer is all it takes to share it.
type ProtectedPID struct {
	pid PID
}

func NewProtectedPID(pid PID) *ProtectedPID {
	return &ProtectedPID{pid: pid}
}

func ExtractPID(ppid *ProtectedPID) PID {
	return ppid.pid
}

func (p *ProtectedPID) ID() string {
	return p.pid.ID()
}

// Alive reports whether the process still accepts messages.
func (p *ProtectedPID) Alive() bool {
	return !p.pid.Mailbox().Disposed()
}

func (p *ProtectedPID) String() string {
	return "<" + p.pid.ID() + ">"
}

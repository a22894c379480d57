package pid

import (
	"github.com/hedisam/cachedactor/internal/mailbox"
	"github.com/rs/xid"
)

type localPID struct {
	id       string
	m        mailbox.Mailbox
	shutdown func()
}

func NewPID(m mailbox.Mailbox, shutdown func()) PID {
	return &localPID{
		id:       xid.New().String(),
		m:        m,
		shutdown: shutdown,
	}
}

func (pid *localPID) ID() string {
	return pid.id
}

func (pid *localPID) Mailbox() mailbox.Mailbox {
	return pid.m
}

func (pid *localPID) Shutdown() {
	if pid.shutdown != nil {
		pid.shutdown()
	}
}

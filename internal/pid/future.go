package pid

import (
	"github.com/hedisam/cachedactor/internal/mailbox"
	"github.com/rs/xid"
)

type futurePID struct {
	id string
	m  *mailbox.FutureMailbox
}

func NewFuturePID() PID {
	return &futurePID{
		id: "future-" + xid.New().String(),
		m:  mailbox.NewFutureMailbox(),
	}
}

func (f *futurePID) ID() string {
	return f.id
}

func (f *futurePID) Mailbox() mailbox.Mailbox {
	return f.m
}

func (f *futurePID) Shutdown() {}

package actor

import (
	"fmt"
	"sync"
	"time"

	"github.com/hedisam/cachedactor/internal/mailbox"
)

const defaultLookupTimeout = 2 * time.Second

// Options tune processes spawned after SetOptions and the registry client.
type Options struct {
	// Mailbox is the queue behind process mailboxes: "ring" (bounded) or "mpsc".
	Mailbox         mailbox.Kind
	MailboxCapacity uint64
	// LookupTimeout bounds registry round trips and Ref calls without an explicit timeout.
	LookupTimeout time.Duration
}

var (
	optionsMu sync.RWMutex
	current   = DefaultOptions()
)

func DefaultOptions() Options {
	return Options{
		Mailbox:         mailbox.Ring,
		MailboxCapacity: mailbox.DefaultCapacity,
		LookupTimeout:   defaultLookupTimeout,
	}
}

func SetOptions(opts Options) error {
	switch opts.Mailbox {
	case mailbox.Ring, mailbox.MPSC:
	case "":
		opts.Mailbox = mailbox.Ring
	default:
		return fmt.Errorf("actor: unknown mailbox kind %q", opts.Mailbox)
	}
	if opts.MailboxCapacity == 0 {
		opts.MailboxCapacity = mailbox.DefaultCapacity
	}
	if opts.LookupTimeout <= 0 {
		opts.LookupTimeout = defaultLookupTimeout
	}
	optionsMu.Lock()
	current = opts
	optionsMu.Unlock()
	return nil
}

func CurrentOptions() Options {
	optionsMu.RLock()
	defer optionsMu.RUnlock()
	return current
}

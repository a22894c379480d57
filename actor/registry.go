package actor

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hedisam/cachedactor/internal/mailbox"
	"github.com/hedisam/cachedactor/internal/observability"
)

const registryMailboxCapacity = 1024

type registryMap map[string]*PID

type cmdRegister struct {
	name string
	pid  *PID
}
type cmdUnregister struct {
	name string
}
type cmdWhereIs struct {
	name   string
	sender *PID
}

var (
	registryOnce sync.Once
	registryPID  *PID
)

// ErrInvalidName is returned by Register for an empty name or a nil pid.
var ErrInvalidName = errors.New("actor: invalid registration")

func registryProcess() *PID {
	registryOnce.Do(func() {
		opts := CurrentOptions()
		opts.Mailbox = mailbox.Ring
		opts.MailboxCapacity = registryMailboxCapacity
		act := createActorWith(opts)
		spawn(registry, act)
		registryPID = act.Self()
	})
	return registryPID
}

// Register binds name to p, replacing any previous binding. It is asynchronous but
// ordered: a later WhereIs from the same goroutine observes it.
func Register(name string, p *PID) error {
	if name == "" || p == nil {
		return ErrInvalidName
	}
	if err := Send(registryProcess(), cmdRegister{name: name, pid: p}); err != nil {
		return fmt.Errorf("register %q: %w", name, err)
	}
	return nil
}

func Unregister(name string) error {
	if err := Send(registryProcess(), cmdUnregister{name: name}); err != nil {
		return fmt.Errorf("unregister %q: %w", name, err)
	}
	return nil
}

// WhereIs asks the registry for the process registered under name. It returns
// nil, nil when the name is unknown or its process has died.
func WhereIs(name string) (p *PID, err error) {
	start := time.Now()
	outcome := "found"
	defer func() {
		if err != nil {
			outcome = "error"
		} else if p == nil {
			outcome = "not_found"
		}
		observability.RecordRegistryCall("where_is", outcome, time.Since(start))
	}()

	future := newFutureActor()
	defer future.Dispose()
	if err = Send(registryProcess(), cmdWhereIs{name: name, sender: future.Self()}); err != nil {
		return nil, fmt.Errorf("where is %q: %w", name, err)
	}
	result, err := future.RecvWithTimeout(CurrentOptions().LookupTimeout)
	if err != nil {
		return nil, fmt.Errorf("where is %q: %w", name, err)
	}
	p, _ = result.(*PID)
	return p, nil
}

// WhereIsRef is WhereIs for addressable processes.
func WhereIsRef(name string) (Ref, bool, error) {
	p, err := WhereIs(name)
	if err != nil || p == nil {
		return Ref{}, false, err
	}
	return NewRef(p), true, nil
}

func registry(act *Actor) {
	repo := registryMap{}

	act.Receive(func(message interface{}) (loop bool) {
		switch cmd := message.(type) {
		case cmdRegister:
			repo[cmd.name] = cmd.pid
		case cmdUnregister:
			delete(repo, cmd.name)
		case cmdWhereIs:
			p, ok := repo[cmd.name]
			if ok && !p.Alive() {
				delete(repo, cmd.name)
				p = nil
			}
			// the asking future may have timed out already
			_ = Send(cmd.sender, p)
		}
		return true
	})
}

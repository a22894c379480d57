package actor

import (
	"errors"
	"fmt"

	"github.com/hedisam/cachedactor/internal/context"
	"github.com/hedisam/cachedactor/internal/mailbox"
	"github.com/hedisam/cachedactor/internal/pid"
	"github.com/rs/zerolog/log"
)

var (
	// ErrDead is returned when sending to a process that is no longer running.
	ErrDead = errors.New("actor: process is dead")
	// ErrMailboxFull is returned when a bounded mailbox has no room left.
	ErrMailboxFull = errors.New("actor: mailbox full")
	// ErrNotRegistered is returned by SendNamed for an unknown name.
	ErrNotRegistered = errors.New("actor: name not registered")
)

// Send delivers message to the process behind p. Messages to a dead process are
// dropped and reported with ErrDead.
func Send(p *PID, message interface{}) error {
	if p == nil {
		return ErrDead
	}
	switch err := pid.ExtractPID(p).Mailbox().SendUserMessage(message); {
	case err == nil:
		return nil
	case errors.Is(err, mailbox.ErrDisposed):
		return ErrDead
	case errors.Is(err, mailbox.ErrFull):
		return ErrMailboxFull
	default:
		return err
	}
}

// SendNamed looks name up in the registry and sends message to it.
func SendNamed(name string, message interface{}) error {
	p, err := WhereIs(name)
	if err != nil {
		return err
	}
	if p == nil {
		log.Debug().Str("name", name).Msg("send named: pid not found")
		return fmt.Errorf("send to %q: %w", name, ErrNotRegistered)
	}
	return Send(p, message)
}

// Kill stops the process behind p. Its mailbox stops accepting messages right away
// and the process returns from its current Receive.
func Kill(p *PID) {
	if p == nil {
		return
	}
	_pid := pid.ExtractPID(p)
	_pid.Mailbox().Dispose()
	_pid.Shutdown()
}

// Spawn spawns a function as an actor also passing its args to the actor.
func Spawn(fn Func, args ...interface{}) *PID {
	actor := createActor(args...)
	spawn(fn, actor)
	return actor.Self()
}

func createActor(args ...interface{}) *Actor {
	return createActorWith(CurrentOptions(), args...)
}

func createActorWith(opts Options, args ...interface{}) *Actor {
	m, err := mailbox.New(opts.Mailbox, opts.MailboxCapacity)
	if err != nil {
		log.Error().Err(err).Msg("falling back to the ring buffer mailbox")
		m, _ = mailbox.New(mailbox.Ring, opts.MailboxCapacity)
	}
	ctx, cancel := context.NewContext(m, args)
	return newActor(ctx, pid.NewPID(m, cancel))
}

func spawn(fn Func, actor *Actor) {
	go func() {
		defer actor.handleTermination()
		fn(actor)
	}()
}

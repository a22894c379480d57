package actor

import (
	"github.com/hedisam/cachedactor/internal/context"
	"github.com/hedisam/cachedactor/internal/pid"
	"github.com/hedisam/cachedactor/lookup"
	"github.com/rs/zerolog/log"
)

// PID is the fire-and-forget handle of a process. Copying the pointer duplicates it.
type PID = pid.ProtectedPID

type Func func(actor *Actor)

// Actor is the execution context of a process. It owns the process mailbox and the
// process-local lookup slots.
type Actor struct {
	*context.Context
	self   *PID
	locals *lookup.Locals
}

func newActor(ctx *context.Context, _pid pid.PID) *Actor {
	return &Actor{
		Context: ctx,
		self:    pid.NewProtectedPID(_pid),
	}
}

func (a *Actor) Self() *PID {
	return a.self
}

// Locals returns the storage of the process-local lookup slots, creating it on first use.
func (a *Actor) Locals() *lookup.Locals {
	if a.locals == nil {
		a.locals = lookup.NewLocals()
	}
	return a.locals
}

// terminate closes the mailbox and drops everything the process cached.
func (a *Actor) terminate() {
	_pid := pid.ExtractPID(a.self)
	_pid.Mailbox().Dispose()
	_pid.Shutdown()
	if a.locals != nil {
		a.locals.Clear()
		a.locals = nil
	}
}

func (a *Actor) handleTermination() {
	defer a.terminate()
	if r := recover(); r != nil {
		log.Error().Str("pid", a.self.ID()).Interface("panic", r).Msg("actor terminated by panic")
		return
	}
	log.Debug().Str("pid", a.self.ID()).Msg("actor terminated")
}

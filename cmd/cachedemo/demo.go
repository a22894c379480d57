package main

import (
	"fmt"
	"time"

	"github.com/hedisam/cachedactor/actor"
	"github.com/hedisam/cachedactor/cached"
	"github.com/hedisam/cachedactor/internal/config"
	"github.com/rs/zerolog/log"
)

const stepTimeout = 5 * time.Second

type incr struct{}

type phase int

const (
	phaseLookup phase = iota
	phaseReset
	phaseCall
	phaseStop
)

func (p phase) String() string {
	switch p {
	case phaseLookup:
		return "lookup"
	case phaseReset:
		return "reset"
	case phaseCall:
		return "call"
	default:
		return "stop"
	}
}

type report struct {
	client  int
	phase   phase
	present bool
	value   interface{}
	err     error
}

// demo walks every client through the life of a cached handle: cached absence,
// reset and resolution, then a stale handle once the service is killed.
func demo(cfg config.DemoConfig) error {
	slot := cached.Ref(cfg.Service)
	reports := make(chan report, cfg.Clients)

	clients := make([]*actor.PID, cfg.Clients)
	for i := range clients {
		clients[i] = actor.Spawn(client(slot, i, cfg.Rounds, reports))
	}
	defer func() {
		for _, p := range clients {
			_ = actor.Send(p, phaseStop)
		}
	}()

	step := func(p phase) error {
		for _, c := range clients {
			if err := actor.Send(c, p); err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
		}
		timeout := time.After(stepTimeout)
		for range clients {
			select {
			case r := <-reports:
				log.Info().
					Int("client", r.client).
					Str("phase", r.phase.String()).
					Bool("present", r.present).
					Interface("value", r.value).
					AnErr("err", r.err).
					Msg("client report")
			case <-timeout:
				return fmt.Errorf("%s: clients did not report in %s", p, stepTimeout)
			}
		}
		return nil
	}

	if err := step(phaseLookup); err != nil {
		return err
	}

	server := actor.Spawn(counter)
	if err := actor.Register(cfg.Service, server); err != nil {
		return err
	}
	log.Info().Str("service", cfg.Service).Str("pid", server.ID()).Msg("service registered")
	// the absence cached by the first lookup is sticky
	if err := step(phaseLookup); err != nil {
		return err
	}
	if err := step(phaseReset); err != nil {
		return err
	}
	if err := step(phaseCall); err != nil {
		return err
	}

	actor.Kill(server)
	log.Info().Str("service", cfg.Service).Msg("service killed, handles stay cached")
	return step(phaseCall)
}

func client(slot *cached.RefSlot, id, rounds int, reports chan<- report) actor.Func {
	return func(a *actor.Actor) {
		a.Receive(func(message interface{}) (loop bool) {
			p, ok := message.(phase)
			if !ok {
				return true
			}
			if p == phaseStop {
				return false
			}
			reports <- runPhase(a, slot, id, rounds, p)
			return true
		})
	}
}

func runPhase(a *actor.Actor, slot *cached.RefSlot, id, rounds int, p phase) report {
	r := report{client: id, phase: p}
	if p == phaseReset {
		slot.Reset(a)
	}
	ref, found, err := slot.Get(a)
	r.present, r.err = found, err
	if p != phaseCall || !found || err != nil {
		return r
	}
	for i := 0; i < rounds; i++ {
		r.value, r.err = ref.Call(incr{}, time.Second)
		if r.err != nil {
			break
		}
	}
	return r
}

func counter(a *actor.Actor) {
	var n int
	a.Receive(func(message interface{}) (loop bool) {
		call, ok := message.(actor.Call)
		if !ok {
			return true
		}
		if _, ok := call.Request.(incr); ok {
			n++
		}
		_ = actor.Reply(call, n)
		return true
	})
}

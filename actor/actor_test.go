package actor_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/cachedactor/actor"
	"github.com/hedisam/cachedactor/internal/testutil/testlog"
	"github.com/hedisam/cachedactor/sysmsg"
)

const waitFor = 5 * time.Second

func uniqueName(t *testing.T) string {
	t.Helper()
	return fmt.Sprintf("%s-%d", t.Name(), time.Now().UnixNano())
}

// echo replies to every Call with its request and stops on "stop".
func echo(a *actor.Actor) {
	a.Receive(func(message interface{}) (loop bool) {
		switch msg := message.(type) {
		case actor.Call:
			_ = actor.Reply(msg, msg.Request)
		case string:
			return msg != "stop"
		}
		return true
	})
}

func Test_Spawn_And_Send(t *testing.T) {
	testlog.Start(t)
	t.Parallel()

	got := make(chan interface{}, 1)
	p := actor.Spawn(func(a *actor.Actor) {
		a.Receive(func(message interface{}) (loop bool) {
			got <- message
			return false
		})
	})

	require.NoError(t, actor.Send(p, "hi"))

	select {
	case msg := <-got:
		assert.Equal(t, "hi", msg)
	case <-time.After(waitFor):
		t.Fatal("message not received")
	}
}

func Test_Spawn_Passes_Args(t *testing.T) {
	t.Parallel()

	got := make(chan []interface{}, 1)
	actor.Spawn(func(a *actor.Actor) {
		got <- a.Args()
	}, 1, "two")

	select {
	case args := <-got:
		assert.Equal(t, []interface{}{1, "two"}, args)
	case <-time.After(waitFor):
		t.Fatal("actor did not run")
	}
}

func Test_Kill_Stops_Process_And_Fails_Later_Sends(t *testing.T) {
	testlog.Start(t)
	t.Parallel()

	done := make(chan struct{})
	p := actor.Spawn(func(a *actor.Actor) {
		defer close(done)
		a.Receive(func(interface{}) (loop bool) { return true })
	})
	require.True(t, p.Alive())

	actor.Kill(p)

	select {
	case <-done:
	case <-time.After(waitFor):
		t.Fatal("killed process kept running")
	}
	assert.False(t, p.Alive())
	assert.ErrorIs(t, actor.Send(p, "late"), actor.ErrDead)
	assert.ErrorIs(t, actor.Send(nil, "nil"), actor.ErrDead)
}

func Test_Actor_Done_Closes_On_Return(t *testing.T) {
	t.Parallel()

	doneCh := make(chan (<-chan struct{}), 1)
	actor.Spawn(func(a *actor.Actor) {
		doneCh <- a.Done()
	})

	select {
	case done := <-doneCh:
		select {
		case <-done:
		case <-time.After(waitFor):
			t.Fatal("context not done after the actor returned")
		}
	case <-time.After(waitFor):
		t.Fatal("actor did not run")
	}
}

func Test_Panicking_Actor_Is_Terminated(t *testing.T) {
	testlog.Start(t)
	t.Parallel()

	started := make(chan struct{})
	p := actor.Spawn(func(a *actor.Actor) {
		close(started)
		panic("boom")
	})
	<-started

	assert.Eventually(t, func() bool { return !p.Alive() }, waitFor, time.Millisecond)
}

func Test_ReceiveWithTimeout_Delivers_Timeout(t *testing.T) {
	t.Parallel()

	got := make(chan interface{}, 1)
	actor.Spawn(func(a *actor.Actor) {
		a.ReceiveWithTimeout(5*time.Millisecond, func(message interface{}) (loop bool) {
			got <- message
			return false
		})
	})

	select {
	case msg := <-got:
		assert.IsType(t, sysmsg.Timeout{}, msg)
	case <-time.After(waitFor):
		t.Fatal("no timeout delivered")
	}
}

func Test_Ref_Call_Round_Trip(t *testing.T) {
	t.Parallel()

	ref := actor.NewRef(actor.Spawn(echo))
	defer actor.Kill(ref.PID())

	resp, err := ref.Call("ping", waitFor)
	require.NoError(t, err)
	assert.Equal(t, "ping", resp)
}

func Test_Ref_Call_Errors(t *testing.T) {
	t.Parallel()

	_, err := actor.Ref{}.Call("ping", time.Millisecond)
	assert.ErrorIs(t, err, actor.ErrNilRef)
	assert.True(t, actor.Ref{}.IsZero())

	silent := actor.NewRef(actor.Spawn(func(a *actor.Actor) {
		a.Receive(func(interface{}) (loop bool) { return true })
	}))
	_, err = silent.Call("ping", 10*time.Millisecond)
	assert.ErrorIs(t, err, actor.ErrTimeout)

	actor.Kill(silent.PID())
	_, err = silent.Call("ping", waitFor)
	assert.ErrorIs(t, err, actor.ErrDead)
	assert.ErrorIs(t, silent.Cast("ping"), actor.ErrDead)
}

func Test_NewParentActor_Owns_Locals_Until_Terminated(t *testing.T) {
	t.Parallel()

	a, terminate := actor.NewParentActor()
	locals := a.Locals()
	require.Same(t, locals, a.Locals())
	require.True(t, a.Self().Alive())

	terminate()

	assert.False(t, a.Self().Alive())
	assert.NotSame(t, locals, a.Locals(), "terminated context starts with fresh locals")
}

func Test_SetOptions(t *testing.T) {
	// not parallel: options are process wide
	prev := actor.CurrentOptions()
	defer func() { require.NoError(t, actor.SetOptions(prev)) }()

	require.Error(t, actor.SetOptions(actor.Options{Mailbox: "lifo"}))

	require.NoError(t, actor.SetOptions(actor.Options{Mailbox: "mpsc"}))
	got := actor.CurrentOptions()
	assert.Equal(t, actor.DefaultOptions().LookupTimeout, got.LookupTimeout)
	assert.Equal(t, actor.DefaultOptions().MailboxCapacity, got.MailboxCapacity)

	ref := actor.NewRef(actor.Spawn(echo))
	defer actor.Kill(ref.PID())
	resp, err := ref.Call("over mpsc", waitFor)
	require.NoError(t, err)
	assert.Equal(t, "over mpsc", resp)
}

package mailbox

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/cachedactor/sysmsg"
)

func kinds() []Kind {
	return []Kind{Ring, MPSC}
}

func Test_New_Rejects_Unknown_Kind(t *testing.T) {
	t.Parallel()

	_, err := New("lifo", 8)
	require.Error(t, err)
}

func Test_Receive_Delivers_In_Order(t *testing.T) {
	t.Parallel()

	for _, kind := range kinds() {
		t.Run(string(kind), func(t *testing.T) {
			t.Parallel()

			m, err := New(kind, 64)
			require.NoError(t, err)

			for i := 0; i < 10; i++ {
				require.NoError(t, m.SendUserMessage(i))
			}

			var got []int
			m.Receive(func(message interface{}) (loop bool) {
				got = append(got, message.(int))
				return len(got) < 10
			})

			assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
		})
	}
}

func Test_Receive_Keeps_Messages_Left_After_Handler_Stops(t *testing.T) {
	t.Parallel()

	for _, kind := range kinds() {
		t.Run(string(kind), func(t *testing.T) {
			t.Parallel()

			m, err := New(kind, 64)
			require.NoError(t, err)
			require.NoError(t, m.SendUserMessage("a"))
			require.NoError(t, m.SendUserMessage("b"))

			var first, second interface{}
			m.Receive(func(message interface{}) (loop bool) {
				first = message
				return false
			})
			m.Receive(func(message interface{}) (loop bool) {
				second = message
				return false
			})

			assert.Equal(t, "a", first)
			assert.Equal(t, "b", second)
		})
	}
}

func Test_Receive_Wakes_Up_For_Concurrent_Senders(t *testing.T) {
	t.Parallel()

	for _, kind := range kinds() {
		t.Run(string(kind), func(t *testing.T) {
			t.Parallel()

			const senders, perSender = 8, 50
			m, err := New(kind, 1024)
			require.NoError(t, err)

			var wg sync.WaitGroup
			for s := 0; s < senders; s++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < perSender; i++ {
						assert.NoError(t, m.SendUserMessage(i))
					}
				}()
			}

			received := 0
			done := make(chan struct{})
			go func() {
				defer close(done)
				m.Receive(func(message interface{}) (loop bool) {
					received++
					return received < senders*perSender
				})
			}()

			wg.Wait()
			select {
			case <-done:
			case <-time.After(5 * time.Second):
				t.Fatalf("received %d of %d messages", received, senders*perSender)
			}
		})
	}
}

func Test_Mailboxes_Do_Not_Share_Messages(t *testing.T) {
	t.Parallel()

	for _, kind := range kinds() {
		t.Run(string(kind), func(t *testing.T) {
			t.Parallel()

			a, err := New(kind, 0)
			require.NoError(t, err)
			b, err := New(kind, 0)
			require.NoError(t, err)

			require.NoError(t, a.SendUserMessage("for-a"))
			require.NoError(t, b.SendUserMessage("for-b"))

			var gotA, gotB interface{}
			a.Receive(func(message interface{}) (loop bool) {
				gotA = message
				return false
			})
			b.Receive(func(message interface{}) (loop bool) {
				gotB = message
				return false
			})

			assert.Equal(t, "for-a", gotA)
			assert.Equal(t, "for-b", gotB)
		})
	}
}

func Test_Ring_Mailbox_Reports_Full(t *testing.T) {
	t.Parallel()

	m, err := New(Ring, 2)
	require.NoError(t, err)

	require.NoError(t, m.SendUserMessage(1))
	require.NoError(t, m.SendUserMessage(2))
	assert.ErrorIs(t, m.SendUserMessage(3), ErrFull)
}

func Test_Dispose_Stops_Receive_And_Rejects_Sends(t *testing.T) {
	t.Parallel()

	for _, kind := range kinds() {
		t.Run(string(kind), func(t *testing.T) {
			t.Parallel()

			m, err := New(kind, 8)
			require.NoError(t, err)

			returned := make(chan struct{})
			go func() {
				defer close(returned)
				m.Receive(func(interface{}) (loop bool) { return true })
			}()

			m.Dispose()
			m.Dispose()

			select {
			case <-returned:
			case <-time.After(5 * time.Second):
				t.Fatal("receive did not return after dispose")
			}
			assert.True(t, m.Disposed())
			assert.ErrorIs(t, m.SendUserMessage("late"), ErrDisposed)
		})
	}
}

func Test_ReceiveWithTimeout_Hands_Timeout_To_Handler(t *testing.T) {
	t.Parallel()

	m, err := New(Ring, 8)
	require.NoError(t, err)

	var got interface{}
	m.ReceiveWithTimeout(10*time.Millisecond, func(message interface{}) (loop bool) {
		got = message
		return false
	})

	assert.Equal(t, sysmsg.Timeout{Duration: 10 * time.Millisecond}, got)
}

func Test_FutureMailbox_Keeps_First_Message(t *testing.T) {
	t.Parallel()

	f := NewFutureMailbox()
	require.NoError(t, f.SendUserMessage("first"))
	assert.ErrorIs(t, f.SendUserMessage("second"), ErrFull)

	var got interface{}
	f.Receive(func(message interface{}) (loop bool) {
		got = message
		return false
	})
	assert.Equal(t, "first", got)

	f.Dispose()
	assert.ErrorIs(t, f.SendUserMessage("late"), ErrDisposed)
	f.Receive(func(message interface{}) (loop bool) {
		got = message
		return false
	})
	assert.Equal(t, ErrDisposed, got)
}

func Test_FutureMailbox_Times_Out(t *testing.T) {
	t.Parallel()

	f := NewFutureMailbox()
	var got interface{}
	f.ReceiveWithTimeout(5*time.Millisecond, func(message interface{}) (loop bool) {
		got = message
		return false
	})

	assert.IsType(t, sysmsg.Timeout{}, got)
}

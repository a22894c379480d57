package context

import (
	"context"
	"time"

	"github.com/hedisam/cachedactor/internal/mailbox"
)

type Context struct {
	m    mailbox.Mailbox
	args []interface{}
	ctx  context.Context
}

// NewContext returns the context of a process and the function that marks it as shut down.
func NewContext(m mailbox.Mailbox, args []interface{}) (*Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	return &Context{
		m:    m,
		args: args,
		ctx:  ctx,
	}, cancel
}

func (ctx *Context) Args() []interface{} {
	return ctx.args
}

func (ctx *Context) Receive(handler mailbox.MessageHandler) {
	ctx.m.Receive(handler)
}

func (ctx *Context) ReceiveWithTimeout(d time.Duration, handler mailbox.MessageHandler) {
	if d < 1 {
		ctx.m.Receive(handler)
		return
	}
	ctx.m.ReceiveWithTimeout(d, handler)
}

// Done is closed once the process has been killed or returned. Long running work
// should watch it and return.
func (ctx *Context) Done() <-chan struct{} {
	return ctx.ctx.Done()
}

// File: bollywood/process.go
package bollywood

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

const defaultMailboxSize = 1024

// process is the running instance of an actor: its mailbox and goroutine.
type process struct {
	engine   *Engine
	pid      *PID
	actor    Actor
	props    *Props
	mailbox  chan *messageEnvelope
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	stopped  atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, props.mailboxSize),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// sendMessage never blocks; a full mailbox drops the message.
func (p *process) sendMessage(message interface{}, sender *PID) {
	if p.stopped.Load() {
		return
	}

	select {
	case p.mailbox <- &messageEnvelope{Sender: sender, Message: message}:
	default:
		p.engine.logger.Warn("Mailbox full, dropping message", "actor", p.pid, "type", fmt.Sprintf("%T", message))
	}
}

func (p *process) stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

// run is the actor loop. Messages already queued when a stop arrives are
// still delivered, then Stopping and Stopped.
func (p *process) run() {
	defer func() {
		if r := recover(); r != nil {
			p.engine.logger.Error("Actor panicked", "actor", p.pid, "panic", r, "stack", string(debug.Stack()))
		}
		p.stopped.Store(true)
		if p.actor != nil {
			p.invokeReceive(Stopped{}, nil)
		}
		p.engine.remove(p.pid)
		close(p.done)
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		panic(fmt.Sprintf("actor %s producer returned nil actor", p.pid))
	}
	p.invokeReceive(Started{}, nil)

	for {
		select {
		case <-p.stopCh:
			p.drain()
			p.stopped.Store(true)
			p.invokeReceive(Stopping{}, nil)
			return

		case envelope := <-p.mailbox:
			p.invokeReceive(envelope.Message, envelope.Sender)
		}
	}
}

func (p *process) drain() {
	for {
		select {
		case envelope := <-p.mailbox:
			p.invokeReceive(envelope.Message, envelope.Sender)
		default:
			return
		}
	}
}

// invokeReceive calls Receive, turning a panic into a stop of this actor.
func (p *process) invokeReceive(msg interface{}, sender *PID) {
	ctx := &context{
		engine:  p.engine,
		self:    p.pid,
		sender:  sender,
		message: msg,
	}

	defer func() {
		if r := recover(); r != nil {
			p.engine.logger.Error("Actor panicked during Receive",
				"actor", p.pid, "message", fmt.Sprintf("%T", msg), "panic", r, "stack", string(debug.Stack()))
			p.stop()
		}
	}()
	p.actor.Receive(ctx)
}

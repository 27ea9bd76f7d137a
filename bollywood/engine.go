package bollywood

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// Engine manages the lifecycle and message dispatching for actors.
type Engine struct {
	pidCounter uint64
	actors     map[string]*process
	mu         sync.RWMutex
	stopping   atomic.Bool
	logger     *log.Logger
}

// NewEngine creates an actor engine. A nil logger discards.
func NewEngine(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		actors: make(map[string]*process),
		logger: logger,
	}
}

func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{ID: fmt.Sprintf("actor-%d", id)}
}

// Spawn starts a new actor and returns its PID, or nil once the engine is shutting down.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		e.logger.Warn("Engine is stopping, cannot spawn new actors")
		return nil
	}

	pid := e.nextPID()
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.actors[pid.ID] = proc
	e.mu.Unlock()

	go proc.run()
	e.logger.Debug("Actor spawned", "actor", pid)

	return pid
}

// Send delivers message to pid's mailbox. Unknown or stopped actors drop it silently.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	if pid == nil || isSystemMessage(message) {
		return
	}
	if e.stopping.Load() {
		return
	}

	if proc, ok := e.lookup(pid); ok {
		proc.sendMessage(message, sender)
	}
}

// Stop asks the actor to finish its queued messages and shut down.
func (e *Engine) Stop(pid *PID) {
	if proc, ok := e.lookup(pid); ok {
		proc.stop()
	}
}

// Done is closed once the actor has received Stopped. Unknown PIDs yield a closed channel.
func (e *Engine) Done(pid *PID) <-chan struct{} {
	if proc, ok := e.lookup(pid); ok {
		return proc.done
	}
	closed := make(chan struct{})
	close(closed)
	return closed
}

// Len is the number of running actors.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.actors)
}

func (e *Engine) lookup(pid *PID) (*process, bool) {
	if pid == nil {
		return nil, false
	}
	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()
	return proc, ok
}

func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.ID)
	e.mu.Unlock()
	e.logger.Debug("Actor removed", "actor", pid)
}

// Shutdown stops all actors and waits up to timeout for them to finish.
// It returns false if some actors were still running at the deadline.
func (e *Engine) Shutdown(timeout time.Duration) bool {
	if !e.stopping.CompareAndSwap(false, true) {
		return e.Len() == 0
	}

	e.mu.RLock()
	procs := make([]*process, 0, len(e.actors))
	for _, proc := range e.actors {
		procs = append(procs, proc)
	}
	e.mu.RUnlock()

	e.logger.Debug("Engine shutdown initiated", "actors", len(procs))
	for _, proc := range procs {
		proc.stop()
	}

	deadline := time.After(timeout)
	for _, proc := range procs {
		select {
		case <-proc.done:
		case <-deadline:
			e.logger.Warn("Engine shutdown timeout", "remaining", e.Len())
			return false
		}
	}

	e.logger.Debug("Engine shutdown complete")
	return true
}

package game

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Loop owns a Handler and applies events to it one at a time on a single
// goroutine. Callers on other goroutines talk to it through Dispatch and
// Snapshot, so the handler never needs its own locking.
type Loop struct {
	handler    Handler
	requests   chan request  // requests carries events and snapshot reads.
	stop       chan struct{} // stop is closed to ask Start to return.
	done       chan struct{} // done is closed once Start has returned.
	stopOnce   sync.Once
	lastActive atomic.Int64 // lastActive is the unix nano time of the last event.
}

type request struct {
	ev    Event
	apply bool // apply is false for pure snapshot reads.
	reply chan response
}

type response struct {
	snap Snapshot
	err  error
}

// NewLoop wraps h. Start must run before any request is answered.
func NewLoop(h Handler) *Loop {
	l := &Loop{
		handler:  h,
		requests: make(chan request),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	l.touch()
	return l
}

// Start serves requests until Stop is called. It blocks.
func (l *Loop) Start() {
	defer close(l.done)
	for {
		select {
		case <-l.stop:
			return
		case req := <-l.requests:
			var err error
			if req.apply {
				err = l.handler.Handle(req.ev)
				l.touch()
			}
			req.reply <- response{snap: l.handler.Snapshot(), err: err}
		}
	}
}

// Stop asks the loop to exit. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Wait blocks until Start has returned.
func (l *Loop) Wait() {
	<-l.done
}

// Dispatch applies ev and returns the state right after it together with the
// handler's error.
func (l *Loop) Dispatch(ctx context.Context, ev Event) (Snapshot, error) {
	return l.submit(ctx, request{ev: ev, apply: true})
}

// Snapshot returns the current state without applying an event.
func (l *Loop) Snapshot(ctx context.Context) (Snapshot, error) {
	return l.submit(ctx, request{})
}

// LastActive returns when the last event was applied.
func (l *Loop) LastActive() time.Time {
	return time.Unix(0, l.lastActive.Load())
}

func (l *Loop) touch() {
	l.lastActive.Store(time.Now().UnixNano())
}

func (l *Loop) submit(ctx context.Context, req request) (Snapshot, error) {
	req.reply = make(chan response, 1)
	select {
	case l.requests <- req:
	case <-l.stop:
		return Snapshot{}, ErrLoopStopped
	case <-l.done:
		return Snapshot{}, ErrLoopStopped
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}

	select {
	case res := <-req.reply:
		return res.snap, res.err
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}

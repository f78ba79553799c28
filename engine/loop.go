package engine

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Loop serializes input events and frame ticks onto one goroutine
type Loop struct {
	ctrl     *Controller
	events   <-chan Event
	interval time.Duration
	onResize func()
	log      *zap.Logger

	running bool
}

// NewLoop creates a loop ticking every interval
func NewLoop(ctrl *Controller, events <-chan Event, interval time.Duration, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		ctrl:     ctrl,
		events:   events,
		interval: interval,
		log:      log,
	}
}

// OnResize registers a hook run before the redraw that follows a resize event
func (l *Loop) OnResize(fn func()) {
	l.onResize = fn
}

// Run starts the controller and processes events and ticks until quit, channel close, or ctx end
func (l *Loop) Run(ctx context.Context) error {
	l.ctrl.Start(ctx)
	l.running = l.ctrl.Running()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-l.events:
			if !ok || !l.Handle(ev) {
				l.log.Info("loop stopped", zap.Uint64("round", l.ctrl.State().Round))
				return nil
			}

		case <-ticker.C:
			l.Tick(ctx)
		}
	}
}

// Tick runs one frame if the round is live
func (l *Loop) Tick(ctx context.Context) {
	if l.running {
		l.running = l.ctrl.Frame(ctx)
	}
}

// Handle applies one event; returns false when the loop should stop
func (l *Loop) Handle(ev Event) bool {
	switch ev.Kind {
	case EventPointerMove:
		l.ctrl.PointerMove(ev.X)
	case EventNudge:
		l.ctrl.Nudge(ev.X)
	case EventDrop:
		l.ctrl.Drop()
	case EventReset:
		l.ctrl.Reset()
		l.running = l.ctrl.Running()
	case EventResize:
		if l.onResize != nil {
			l.onResize()
		}
		l.ctrl.Redraw()
	case EventQuit:
		return false
	default:
		l.log.Debug("unhandled event", zap.Stringer("kind", ev.Kind))
	}
	return true
}

// Running reports whether ticks currently advance the simulation
func (l *Loop) Running() bool {
	return l.running
}

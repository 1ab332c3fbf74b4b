package game

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// TickFunc observes the session after every tick of a Loop.
type TickFunc func(s *Session)

// Loop drives a Session from a ticker for headless runs. Frontends with
// their own frame pump call Session.Tick directly instead.
type Loop struct {
	session  *Session
	tickRate int
	onTick   TickFunc
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewLoop(session *Session, tickRate int, onTick TickFunc) *Loop {
	if tickRate < 1 {
		tickRate = 1
	}
	return &Loop{
		session:  session,
		tickRate: tickRate,
		onTick:   onTick,
		stopChan: make(chan struct{}),
	}
}

// Run ticks until Stop is called.
func (l *Loop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	clock := NewFrameClock(l.tickRate)
	l.session.logger.Info("game loop started", zap.Int("tickRate", l.tickRate))

	for {
		select {
		case <-l.stopChan:
			l.session.logger.Info("game loop stopped", zap.Uint64("skipped", clock.Skipped()))
			return
		case now := <-ticker.C:
			if !clock.Ready(now) {
				continue
			}
			l.session.Tick()
			if l.onTick != nil {
				l.onTick(l.session)
			}
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

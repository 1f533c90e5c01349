package refresh

import (
	"context"
	"time"
)

// Reason says why a render happened.
type Reason int

const (
	ReasonScheduled Reason = iota
	ReasonExplicit
)

func (r Reason) String() string {
	if r == ReasonExplicit {
		return "explicit"
	}
	return "scheduled"
}

// Scheduler re-renders at every local midnight and whenever Trigger is
// called. A trigger renders immediately and re-arms the midnight timer.
type Scheduler struct {
	clock   Clock
	loc     *time.Location
	render  func(Reason)
	trigger chan struct{}
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

func WithClock(c Clock) SchedulerOption {
	return func(s *Scheduler) { s.clock = c }
}

// WithLocation sets the zone whose midnight counts. Defaults to time.Local.
func WithLocation(loc *time.Location) SchedulerOption {
	return func(s *Scheduler) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func NewScheduler(render func(Reason), opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		clock:   SystemClock{},
		loc:     time.Local,
		render:  render,
		trigger: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Trigger asks for an immediate render. It never blocks; triggers that
// arrive while one is pending are coalesced.
func (s *Scheduler) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// RequestRerender is Trigger under the name the widget bridge uses.
func (s *Scheduler) RequestRerender() { s.Trigger() }

// Next is the next scheduled render.
func (s *Scheduler) Next() time.Time {
	return NextMidnight(s.clock.Now().In(s.loc))
}

// Run blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		wait := s.Next().Sub(s.clock.Now())
		if wait < 0 {
			wait = 0
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			s.render(ReasonScheduled)
		case <-s.trigger:
			timer.Stop()
			s.render(ReasonExplicit)
		}
	}
}

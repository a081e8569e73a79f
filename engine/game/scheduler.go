package game

import "time"

// Scheduler delivers the next tick. Whoever drives the game arms it once the
// work of the previous tick is done, so ticks never overlap.
type Scheduler interface {
	Arm(d time.Duration)
	C() <-chan time.Time
	Stop()
}

type TimerScheduler struct {
	timer *time.Timer
}

func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

func (s *TimerScheduler) Arm(d time.Duration) {
	if s.timer == nil {
		s.timer = time.NewTimer(d)
		return
	}
	s.timer.Reset(d)
}

// C returns nil until the scheduler is armed the first time. Receiving from
// it then blocks forever, which keeps a select waiting on other cases.
func (s *TimerScheduler) C() <-chan time.Time {
	if s.timer == nil {
		return nil
	}
	return s.timer.C
}

func (s *TimerScheduler) Stop() {
	if s.timer != nil {
		s.timer.Stop()
	}
}

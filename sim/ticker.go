package sim

import "time"

// TickSource paces the simulation loop. The core never sleeps on its own;
// pacing is injected so the tick-processing logic is testable without real
// delay.
type TickSource interface {
	// Wait blocks until the next tick may run.
	Wait()
}

// ImmediateTicker runs ticks back to back with no delay. The default for
// tests and batch runs.
type ImmediateTicker struct{}

func (ImmediateTicker) Wait() {}

// RealTimeTicker paces one tick per interval of wall-clock time, the
// one-real-second-per-simulated-minute demo cadence.
type RealTimeTicker struct {
	Interval time.Duration
}

func (t RealTimeTicker) Wait() {
	time.Sleep(t.Interval)
}

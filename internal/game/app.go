package game

import (
	"sync"
	"time"

	"voxelworld/internal/profiling"
	"voxelworld/internal/scene"
)

// Summary totals a whole run.
type Summary struct {
	Ticks     int
	Loaded    int
	Generated int
	Unloaded  int
	Placed    int
	Removed   int
	Resident  int
	Render    scene.Stats
}

// App runs a session at a fixed tick rate for a bounded number of ticks.
type App struct {
	session *Session
	script  Script
	limiter *TickLimiter

	dt       float32
	stop     chan struct{}
	stopOnce sync.Once
}

// NewApp wraps s. A nil script leaves input untouched.
func NewApp(s *Session, script Script) *App {
	rate := s.Config.TickRate
	if rate <= 0 {
		rate = 60
	}
	return &App{
		session: s,
		script:  script,
		limiter: NewTickLimiter(rate),
		dt:      1 / float32(rate),
		stop:    make(chan struct{}),
	}
}

// Unpaced disables tick pacing so runs go as fast as the CPU allows.
func (a *App) Unpaced() *App {
	a.limiter = NewTickLimiter(0)
	return a
}

// Session returns the running session.
func (a *App) Session() *Session {
	return a.session
}

// Stop asks Run to return after the current tick. Safe to call from any goroutine.
func (a *App) Stop() {
	a.stopOnce.Do(func() { close(a.stop) })
}

// Run ticks until ticks have elapsed (ticks <= 0 runs until Stop).
func (a *App) Run(ticks int) Summary {
	var sum Summary
	for i := 0; ticks <= 0 || i < ticks; i++ {
		select {
		case <-a.stop:
			return sum
		default:
		}
		st := a.tick(i)
		sum.add(st)
		a.limiter.Wait()
	}
	return sum
}

func (a *App) tick(i int) TickStats {
	profiling.ResetFrame()
	start := time.Now()

	if a.script != nil {
		a.script(i, a.session.Input, a.session)
	}
	st := a.session.Tick(a.dt)

	d := time.Since(start)
	if budget := a.limiter.Period(); budget > 0 && d > budget {
		a.session.logf("Slow tick %d: %v. Top tasks: %s", i, d, profiling.TopN(5))
	}
	if st.Stream.Loaded > 0 || st.Stream.Unloaded > 0 {
		a.session.logf("Streaming: +%d (%d generated) -%d, %d resident, %d draw calls",
			st.Stream.Loaded, st.Stream.Generated, st.Stream.Unloaded, st.Stream.Resident, st.Render.DrawCalls)
	}
	return st
}

func (s *Summary) add(st TickStats) {
	s.Ticks++
	s.Loaded += st.Stream.Loaded
	s.Generated += st.Stream.Generated
	s.Unloaded += st.Stream.Unloaded
	s.Resident = st.Stream.Resident
	if st.Placed {
		s.Placed++
	}
	if st.Removed {
		s.Removed++
	}
	s.Render = st.Render
}

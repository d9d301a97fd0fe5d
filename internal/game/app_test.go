package game

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"voxelworld/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAppRunsScript(t *testing.T) {
	s := newTestSession(t, config.Default())
	app := NewApp(s, WalkAndBuild(20)).Unpaced()

	sum := app.Run(200)
	if sum.Ticks != 200 || s.Ticks != 200 {
		t.Fatalf("Expected 200 ticks, got %d/%d", sum.Ticks, s.Ticks)
	}
	if sum.Placed == 0 {
		t.Errorf("Expected the script to place blocks")
	}
	if sum.Resident != 25 {
		t.Errorf("Expected 25 resident chunks at the end, got %d", sum.Resident)
	}
}

func TestAppStop(t *testing.T) {
	s := newTestSession(t, config.Default())
	app := NewApp(s, nil)
	app.Stop()
	app.Stop()
	if sum := app.Run(0); sum.Ticks != 0 {
		t.Errorf("Expected no ticks after Stop, got %d", sum.Ticks)
	}
}

func TestTickLimiter(t *testing.T) {
	l := NewTickLimiter(0)
	start := time.Now()
	for range 100 {
		l.Wait()
	}
	if time.Since(start) > 50*time.Millisecond {
		t.Errorf("Unlimited limiter should not block")
	}

	l = NewTickLimiter(200)
	if l.Period() != 5*time.Millisecond {
		t.Fatalf("Unexpected period %v", l.Period())
	}
	start = time.Now()
	for range 5 {
		l.Wait()
	}
	if d := time.Since(start); d < 20*time.Millisecond {
		t.Errorf("Expected at least 20ms for 5 ticks at 200Hz, got %v", d)
	}
}

func TestAppLogsThroughSessionLogger(t *testing.T) {
	var lines []string
	logf := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}
	s, err := NewSession(config.Default(), logf)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	defer s.Close()

	s.Player.Teleport(mgl32.Vec3{40.5, 3, 0.5})
	NewApp(s, nil).Unpaced().Run(1)

	found := false
	for _, l := range lines {
		if strings.HasPrefix(l, "Streaming: +10 (10 generated) -10") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected the streaming pass on the session logger, got %q", lines)
	}
}

package game

import "voxelworld/internal/input"

// Script drives the input manager for a headless run. It is called before
// every tick with the tick number.
type Script func(tick int, in *input.Manager, s *Session)

// WalkAndBuild walks forward with the camera tilted at the ground, placing a
// block every period ticks and breaking one half a period later.
func WalkAndBuild(period int) Script {
	if period <= 0 {
		period = 60
	}
	return func(tick int, in *input.Manager, s *Session) {
		if tick == 0 {
			s.Player.Look(0, -45)
		}
		in.SetAction(input.ActionMoveForward, tick%(4*period) < 3*period)
		in.SetAction(input.ActionSprint, tick%(8*period) < period)

		// Release first so the next press registers as an edge
		in.SetAction(input.ActionSecondary, false)
		in.SetAction(input.ActionPrimary, false)
		switch tick % period {
		case 0:
			in.SetAction(input.ActionSecondary, true)
		case period / 2:
			in.SetAction(input.ActionPrimary, true)
		}
	}
}

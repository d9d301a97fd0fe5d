package player

import (
	"math"

	"voxelworld/internal/input"
	"voxelworld/internal/physics"
	"voxelworld/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// UpdatePosition applies one tick of input, gravity and collision to the
// player and copies the resolved capsule back onto Position.
func (p *Player) UpdatePosition(dt float32, in input.Snapshot, solid physics.SolidQuery) {
	defer profiling.Track("player.UpdatePosition")()

	forward := float32(0)
	strafe := float32(0)
	if in.MoveForward {
		forward += 1
	}
	if in.MoveBackward {
		forward -= 1
	}
	if in.MoveLeft {
		strafe -= 1
	}
	if in.MoveRight {
		strafe += 1
	}
	p.IsSprinting = in.Sprint && forward > 0

	// Movement is relative to yaw only; pitch never slows walking.
	yawRad := float64(mgl32.DegToRad(float32(p.CamYaw)))
	front := mgl32.Vec3{float32(math.Sin(yawRad)), 0, -float32(math.Cos(yawRad))}
	right := mgl32.Vec3{float32(math.Cos(yawRad)), 0, float32(math.Sin(yawRad))}

	wish := front.Mul(forward).Add(right.Mul(strafe))
	speed := p.cfg.BaseSpeed
	if p.IsSprinting {
		speed *= p.cfg.SprintMultiplier
	}
	if wish.Len() > 0 {
		wish = wish.Normalize().Mul(speed)
	}

	v := p.Body.Velocity
	v[0], v[2] = wish.X(), wish.Z()
	if in.JumpRequested && p.Body.Grounded {
		v[1] = p.cfg.JumpSpeed
		p.Body.Grounded = false
	}
	v[1] -= p.cfg.Gravity * dt
	p.Body.Velocity = v

	physics.Step(&p.Body, solid, dt, p.cfg.FloorHeight)
	p.Position = p.Body.Capsule.Feet()
}

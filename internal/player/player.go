package player

import (
	"math"

	"voxelworld/internal/config"
	"voxelworld/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// Player is the viewer: a capsule body plus look angles.
type Player struct {
	Body physics.Body

	// Position is the feet position, copied from the resolved capsule every tick.
	Position mgl32.Vec3

	CamYaw   float64 // degrees, 0 looks down -Z
	CamPitch float64 // degrees, clamped to [-89, 89]

	IsSprinting bool

	cfg config.Config
}

// New creates a player standing with its feet at pos.
func New(pos mgl32.Vec3, cfg config.Config) *Player {
	p := &Player{cfg: cfg}
	p.Teleport(pos)
	return p
}

// Teleport places the feet at pos and stops the body.
func (p *Player) Teleport(pos mgl32.Vec3) {
	p.Body = physics.Body{Capsule: physics.NewCapsule(pos, p.cfg.CapsuleRadius, p.cfg.CapsuleHeight)}
	p.Position = pos
}

// Look turns the camera by the given deltas in degrees.
func (p *Player) Look(dYaw, dPitch float64) {
	p.CamYaw = math.Mod(p.CamYaw+dYaw, 360)
	p.CamPitch = max(-89, min(89, p.CamPitch+dPitch))
}

// GetFrontVector returns the unit view direction.
func (p *Player) GetFrontVector() mgl32.Vec3 {
	yaw := mgl32.DegToRad(float32(p.CamYaw))
	pitch := mgl32.DegToRad(float32(p.CamPitch))
	cp := float32(math.Cos(float64(pitch)))
	return mgl32.Vec3{
		float32(math.Sin(float64(yaw))) * cp,
		float32(math.Sin(float64(pitch))),
		-float32(math.Cos(float64(yaw))) * cp,
	}.Normalize()
}

// GetEyePosition returns the ray origin for targeting.
func (p *Player) GetEyePosition() mgl32.Vec3 {
	return p.Position.Add(mgl32.Vec3{0, p.cfg.EyeHeight, 0})
}

// OnGround reports whether the body rested on something after the last tick.
func (p *Player) OnGround() bool {
	return p.Body.Grounded
}

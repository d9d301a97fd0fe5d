package game

import (
	"log"

	"voxelworld/internal/config"
	"voxelworld/internal/input"
	"voxelworld/internal/physics"
	"voxelworld/internal/player"
	"voxelworld/internal/profiling"
	"voxelworld/internal/scene"
	"voxelworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// TickStats reports what one tick did.
type TickStats struct {
	Stream    world.StreamStats
	Render    scene.Stats
	HasTarget bool
	Target    world.Cell
	Placed    bool
	Removed   bool
	Grounded  bool
}

// Session owns one running world and the player inside it.
type Session struct {
	Config config.Config
	World  *world.World
	Player *player.Player
	Scene  *scene.Scene
	Input  *input.Manager

	Ticks int

	logf func(format string, args ...any)
}

// NewSession builds the world, streams the spawn area and stands the player
// on the surface at the origin column. Every message of the run goes through
// logf; nil means log.Printf.
func NewSession(cfg config.Config, logf func(format string, args ...any)) (*Session, error) {
	if logf == nil {
		logf = log.Printf
	}
	gen, err := NewGenerator(cfg)
	if err != nil {
		return nil, err
	}
	sc := scene.New()
	w := world.New(world.Options{
		ChunkSize: cfg.ChunkSize,
		Generator: gen,
		Graph:     sc,
		Logf:      logf,
	})

	spawn := mgl32.Vec3{0.5, 0, 0.5}
	w.Update(spawn, cfg.RenderDistance)
	spawn[1] = float32(surfaceY(w, 0, 0, 2*cfg.ChunkSize+8))

	return &Session{
		Config: cfg,
		World:  w,
		Player: player.New(spawn, cfg),
		Scene:  sc,
		Input:  input.NewManager(),
		logf:   logf,
	}, nil
}

// Tick advances the session by dt seconds: input, movement and collision,
// streaming, targeting, edits, then render stats.
func (s *Session) Tick(dt float32) TickStats {
	defer profiling.Track("game.Session.Tick")()
	var st TickStats

	in := s.Input.Snapshot()
	s.Player.UpdatePosition(dt, in, s.World)
	st.Grounded = s.Player.OnGround()

	st.Stream = s.World.Update(s.Player.Position, s.Config.RenderDistance)

	hit, ok := physics.PickTarget(s.World.Store(), s.Player.GetEyePosition(), s.Player.GetFrontVector(),
		s.Config.SearchRadius, s.Config.Reach)
	if ok {
		st.HasTarget = true
		st.Target = hit.Cell()
		switch {
		case in.PrimaryClick:
			_, _, st.Removed = Break(s.World, hit)
		case in.SecondaryClick:
			// Never place a block inside the player
			if c := PlacementCell(hit); !physics.OverlapsCell(s.Player.Body.Capsule, c.X, c.Y, c.Z) {
				_, st.Placed = Place(s.World, hit, world.MaterialPlaced)
			}
		}
	}

	s.Input.PostUpdate()
	st.Render = s.Scene.Stats()
	s.Ticks++
	return st
}

// Close detaches the world from the scene.
func (s *Session) Close() {
	s.World.Close()
}

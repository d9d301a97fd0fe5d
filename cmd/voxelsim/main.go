package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"voxelworld/internal/config"
	"voxelworld/internal/game"
	"voxelworld/internal/scene"
	"voxelworld/internal/world"

	"github.com/xlab/closer"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config.yaml (defaults when empty)")
		ticks      = flag.Int("ticks", 600, "ticks to simulate (0 runs until interrupted)")
		seed       = flag.Int64("seed", 0, "terrain seed for the noise generator (overrides config when non-zero)")
		generator  = flag.String("generator", "", "terrain generator: flat or noise (overrides config)")
		unpaced    = flag.Bool("unpaced", false, "run ticks back to back instead of at tick_rate")
		editEvery  = flag.Int("edit_every", 60, "ticks between scripted block placements")
		mapPath    = flag.String("map", "", "write a top-down PNG of the resident world after the run (optional)")
		mapScale   = flag.Int("map_scale", 4, "pixels per cell in the -map image")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[voxelsim] ", log.LstdFlags|log.Lmicroseconds)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *generator != "" {
		cfg.Generator = *generator
		cfg.Normalize()
		if err := cfg.Validate(); err != nil {
			logger.Fatalf("config: %v", err)
		}
	}

	session, err := game.NewSession(cfg, logger.Printf)
	if err != nil {
		logger.Fatalf("new session: %v", err)
	}
	app := game.NewApp(session, game.WalkAndBuild(*editEvery))
	if *unpaced {
		app.Unpaced()
	}

	// On interrupt only the loop is stopped; main writes the map and tears
	// the world down, and the process exits once that is done.
	finished := make(chan struct{})
	closer.Bind(func() {
		app.Stop()
		<-finished
	})

	logger.Printf("generator=%s chunk_size=%d render_distance=%d tick_rate=%d",
		cfg.Generator, cfg.ChunkSize, cfg.RenderDistance, cfg.TickRate)
	runSim(app, *ticks, strings.TrimSpace(*mapPath), *mapScale, logger)
	close(finished)

	closer.Close()
}

// runSim runs the app, reports the summary, writes the optional map and then
// closes the session. The map is always drawn from a live scene.
func runSim(app *game.App, ticks int, mapPath string, mapScale int, logger *log.Logger) game.Summary {
	session := app.Session()
	sum := app.Run(ticks)
	logger.Printf("ran %d ticks: loaded %d (%d generated), unloaded %d, placed %d, removed %d, %d resident, %d draw calls, %d instances",
		sum.Ticks, sum.Loaded, sum.Generated, sum.Unloaded, sum.Placed, sum.Removed, sum.Resident,
		sum.Render.DrawCalls, sum.Render.Instances)
	logger.Printf("player at %v (grounded %v)", session.Player.Position, session.Player.OnGround())

	if mapPath != "" {
		caption := fmt.Sprintf("%d chunks, %d placed", session.World.Store().Len(), session.Scene.InstancesOf(world.MaterialPlaced))
		img := session.Scene.TopDown(scene.MapOptions{Scale: mapScale, Caption: caption})
		if err := scene.WritePNG(mapPath, img); err != nil {
			logger.Printf("write map: %v", err)
		} else {
			logger.Printf("map written to %s (%dx%d)", mapPath, img.Bounds().Dx(), img.Bounds().Dy())
		}
	}

	session.Close()
	logger.Printf("world closed, %d drawables still attached", session.Scene.Len())
	return sum
}

// Command meshexport writes the posed dog, and optionally the generated
// world, to a binary glTF file.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/blockyworld/internal/config"
	"github.com/Faultbox/blockyworld/internal/engine/animation"
	"github.com/Faultbox/blockyworld/internal/engine/export"
	"github.com/Faultbox/blockyworld/internal/engine/rig"
	"github.com/Faultbox/blockyworld/internal/engine/world"
	"github.com/Faultbox/blockyworld/internal/logger"
)

var (
	flagOut    = flag.String("o", "blockyworld.glb", "Output file")
	flagTime   = flag.Float64("t", 0, "Animation time in seconds to pose the dog at")
	flagPokeAt = flag.Float64("poke-at", -1, "Start a poke at this time (negative for none)")
	flagWorld  = flag.Bool("world", false, "Include the map, structures and floor")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("export failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	state := animation.State{
		Running:      cfg.Animation.Running,
		TailSway:     cfg.Animation.TailSway,
		PokeDuration: cfg.Animation.PokeDuration,
	}
	if *flagPokeAt >= 0 {
		state.Poking = true
		state.PokeStart = *flagPokeAt
	}
	pose := animation.ComputePose(*flagTime, state, animation.ManualPose{})

	dog := rig.NewQuadruped()
	meshes := export.RigMeshes(dog, rig.DogPlacement(), pose, cfg.World.CylinderSides)

	if *flagWorld {
		var rng *rand.Rand
		if cfg.World.Seed != 0 {
			rng = rand.New(rand.NewSource(cfg.World.Seed))
		}
		grid, err := world.Generate(cfg.World.Width, cfg.World.Depth, rng)
		if err != nil {
			return fmt.Errorf("generating world: %w", err)
		}
		grid.BlockScale = cfg.World.BlockScale
		meshes = append(meshes, export.WorldMeshes(grid)...)
	}

	doc, err := export.Document(meshes...)
	if err != nil {
		return err
	}

	f, err := os.Create(*flagOut)
	if err != nil {
		return err
	}
	if err := export.WriteGLB(f, doc); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("wrote glb",
		zap.String("path", *flagOut),
		zap.Int("meshes", len(meshes)),
		zap.Float64("time", *flagTime),
	)
	return nil
}

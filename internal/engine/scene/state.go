// Package scene owns everything drawn each frame: the block world, the
// scenery, the animated dog, and the light, and sequences their draws.
package scene

import (
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/Faultbox/blockyworld/internal/config"
	"github.com/Faultbox/blockyworld/internal/engine/animation"
	"github.com/Faultbox/blockyworld/internal/engine/camera"
	"github.com/Faultbox/blockyworld/internal/engine/lighting"
	"github.com/Faultbox/blockyworld/internal/engine/primitive"
	"github.com/Faultbox/blockyworld/internal/engine/render"
	"github.com/Faultbox/blockyworld/internal/engine/rig"
	"github.com/Faultbox/blockyworld/internal/engine/shaders"
	"github.com/Faultbox/blockyworld/internal/engine/world"
	"github.com/Faultbox/blockyworld/internal/logger"
	"github.com/Faultbox/blockyworld/pkg/math"
)

// TurntableFPS is the rate the turntable spring is tuned for.
const TurntableFPS = 60

// SphereColor is the color of the free-standing ball.
var SphereColor = render.Color{0, 0, 1, 1}

// State is the whole scene. It is driven from a single goroutine: input
// handlers mutate it between frames and OnFrame reads it.
type State struct {
	clock *animation.Clock
	anim  *animation.Controller
	cam   *camera.FirstPerson
	table *camera.Turntable
	light *lighting.Light

	grid       *world.Grid
	structures []world.Piece
	dog        *rig.Rig
	placement  math.Mat4

	cube     *primitive.Primitive
	cylinder *primitive.Primitive
	sphere   *primitive.Primitive

	bindings    render.Bindings
	normalDebug bool
	aspect      float32
	viewW       int
	viewH       int

	log   *zap.Logger
	frame *zap.Logger // sampled, for per-frame diagnostics
}

// New builds the scene from configuration. A nil clock uses wall time.
// The map is generated from cfg.World.Seed, or from the clock when the
// seed is zero.
func New(cfg *config.Config, clock *animation.Clock) (*State, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = animation.NewClock()
	}

	var rng *rand.Rand
	if cfg.World.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.World.Seed))
	}
	grid, err := world.Generate(cfg.World.Width, cfg.World.Depth, rng)
	if err != nil {
		return nil, fmt.Errorf("generating world: %w", err)
	}
	grid.BlockScale = cfg.World.BlockScale

	log := logger.Named("scene")
	if len(cfg.World.LayerMaterials) > 0 {
		var unknown []string
		grid.Materials, unknown = world.MaterialTableFromNames(cfg.World.LayerMaterials...)
		if len(unknown) > 0 {
			log.Warn("unknown layer materials, using fallback", zap.Strings("names", unknown))
		}
	}

	cam := camera.NewFirstPerson()
	cam.FOV = cfg.Camera.FOV
	cam.Near = cfg.Camera.Near
	cam.Far = cfg.Camera.Far
	cam.Step = cfg.Camera.Step
	cam.TurnDeg = cfg.Camera.TurnDeg
	cam.MaxPitchDeg = cfg.Camera.MaxPitchDeg

	light := lighting.NewLight()
	light.SetColor(cfg.Lighting.Color[0], cfg.Lighting.Color[1], cfg.Lighting.Color[2])
	light.SetOn(cfg.Lighting.On)
	if cfg.Lighting.Spotlight {
		light.SetSpot(true)
	}

	s := &State{
		clock: clock,
		anim: animation.NewController(animation.State{
			Running:      cfg.Animation.Running,
			TailSway:     cfg.Animation.TailSway,
			PokeDuration: cfg.Animation.PokeDuration,
		}),
		cam:        cam,
		table:      camera.NewTurntable(TurntableFPS, cfg.Camera.DragSpeed),
		light:      light,
		grid:       grid,
		structures: world.Structures(),
		dog:        rig.NewQuadruped(),
		placement:  rig.DogPlacement(),
		cube:       primitive.NewCube("cube"),
		cylinder:   primitive.NewCylinder("cylinder", cfg.World.CylinderSides),
		sphere:     primitive.NewSphere("sphere", cfg.World.SphereLat, cfg.World.SphereLon),
		aspect:     float32(cfg.Graphics.Width) / float32(cfg.Graphics.Height),
		viewW:      cfg.Graphics.Width,
		viewH:      cfg.Graphics.Height,
		log:        log,
		frame:      logger.Sampled("scene"),
	}

	s.log.Info("scene created",
		zap.Int("grid_width", grid.Width),
		zap.Int("grid_depth", grid.Depth),
		zap.Int("blocks", grid.BlockCount()),
		zap.Int("structures", len(s.structures)),
		zap.Int("joints", s.dog.Len()),
	)
	return s, nil
}

// Init links the shader program and uploads every primitive. A failed
// link is returned since nothing could be drawn; upload failures are
// logged and retried lazily at draw time.
func (s *State) Init(r render.Renderer) error {
	b, err := r.CompileProgram(shaders.WorldVertexShader, shaders.WorldFragmentShader)
	if err != nil {
		return fmt.Errorf("compiling world program: %w", err)
	}
	s.bindings = b

	for _, p := range s.primitives() {
		if err := p.EnsureUploaded(r); err != nil {
			s.log.Warn("primitive upload failed, will retry on draw",
				zap.String("primitive", p.Name()),
				zap.Error(err),
			)
		}
	}
	return nil
}

// Release frees every primitive's GPU buffers.
func (s *State) Release(r render.Renderer) {
	for _, p := range s.primitives() {
		p.Release(r)
	}
}

func (s *State) primitives() []*primitive.Primitive {
	return []*primitive.Primitive{s.cube, s.cylinder, s.sphere}
}

// FrameStats counts one frame's draws.
type FrameStats struct {
	Time    float64
	Issued  int
	Skipped int
}

// Total returns the number of draws attempted.
func (f FrameStats) Total() int { return f.Issued + f.Skipped }

// OnFrame advances the scene to elapsed seconds and draws it: map blocks,
// scenery, floor, dog, sphere, sky, then the light marker. A draw that
// fails is skipped and counted; the frame always completes.
func (s *State) OnFrame(r render.Renderer, elapsed float64) FrameStats {
	stats := FrameStats{Time: elapsed}

	pose := s.anim.Pose(elapsed)
	if s.table.Spinning() {
		s.table.Update()
	}
	light := s.light.Update(elapsed, s.cam)

	if s.bindings.Valid() {
		r.SetFrameUniforms(s.bindings, render.FrameUniforms{
			Projection:     s.cam.ProjectionMatrix(s.aspect),
			View:           s.cam.ViewMatrix(),
			GlobalRotation: s.table.Matrix(),
			CameraPosition: s.cam.Eye,
			Light:          light,
		})
	}

	for _, b := range s.grid.Blocks() {
		s.draw(r, &stats, s.cube, "block", b.Transform, b.Material)
	}
	for _, p := range s.structures {
		s.draw(r, &stats, s.cube, p.Name, p.Transform, p.Material)
	}
	floor := s.grid.Floor()
	s.draw(r, &stats, s.cube, floor.Name, floor.Transform, floor.Material)

	drawn, err := s.dog.Draw(r, s.bindings, rig.Primitives{Cube: s.cube, Cylinder: s.cylinder}, s.placement, pose, s.normalDebug)
	stats.Issued += drawn
	if err != nil {
		stats.Skipped += s.dog.Len() - drawn
		s.frame.Warn("dog parts skipped", zap.Int("skipped", s.dog.Len()-drawn), zap.Error(err))
	}

	s.draw(r, &stats, s.sphere, "sphere", math.Translate(1, 0, 1), render.SolidColor(SphereColor))

	sky := world.Sky()
	s.draw(r, &stats, s.cube, sky.Name, sky.Transform, sky.Material)

	if s.light.MarkerVisible() {
		m, c := s.light.Marker()
		s.drawAs(r, &stats, s.cube, "light", m, render.SolidColor(c))
	}
	return stats
}

// draw issues one draw, swapping in the normal debug material when that
// mode is on.
func (s *State) draw(r render.Renderer, stats *FrameStats, p *primitive.Primitive, what string, m math.Mat4, mat render.Material) {
	if s.normalDebug {
		mat = render.DebugNormal()
	}
	s.drawAs(r, stats, p, what, m, mat)
}

func (s *State) drawAs(r render.Renderer, stats *FrameStats, p *primitive.Primitive, what string, m math.Mat4, mat render.Material) {
	err := p.Draw(r, s.bindings, m, mat)
	if err == nil {
		stats.Issued++
		return
	}
	stats.Skipped++
	level := zap.WarnLevel
	if errors.Is(err, primitive.ErrNoProgram) {
		level = zap.DebugLevel
	}
	if ce := s.frame.Check(level, "draw skipped"); ce != nil {
		ce.Write(zap.String("what", what), zap.Error(err))
	}
}

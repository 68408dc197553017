package scene

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/blockyworld/internal/config"
	"github.com/Faultbox/blockyworld/internal/engine/animation"
	"github.com/Faultbox/blockyworld/internal/engine/render"
	"github.com/Faultbox/blockyworld/internal/engine/rig"
	"github.com/Faultbox/blockyworld/internal/engine/world"
	"github.com/Faultbox/blockyworld/pkg/math"
)

type fakeTime struct{ now time.Time }

func (f *fakeTime) Now() time.Time { return f.now }

func newScene(t *testing.T) (*State, *fakeTime) {
	t.Helper()
	cfg := config.Default()
	cfg.World.Seed = 99
	ft := &fakeTime{now: time.Unix(0, 0)}
	s, err := New(cfg, animation.NewClockFunc(ft.Now))
	require.NoError(t, err)
	return s, ft
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.World.Width = 0
	_, err := New(cfg, nil)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestNewNilConfigUsesDefaults(t *testing.T) {
	s, err := New(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 32, s.Grid().Width)
}

func TestLayerMaterialsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.World.Seed = 5
	cfg.World.LayerMaterials = []string{"water", "marble", "brick"}
	s, err := New(cfg, nil)
	require.NoError(t, err)

	water, _ := world.Named(world.MaterialWater)
	brick, _ := world.Named(world.MaterialBrick)
	table := s.Grid().Materials
	assert.Equal(t, water, table.ForLayer(0))
	assert.Equal(t, render.Fallback(), table.ForLayer(1))
	assert.Equal(t, brick, table.ForLayer(7))
}

func TestFrameDrawsEverything(t *testing.T) {
	s, _ := newScene(t)
	rec := render.NewRecorder()
	require.NoError(t, s.Init(rec))
	assert.True(t, s.Bindings().Valid())
	assert.Equal(t, 1, rec.Count(render.OpCompile))

	rec.ResetCalls()
	stats := s.OnFrame(rec, 0.5)

	want := s.Grid().BlockCount() + world.StructureCount + 1 + rig.QuadrupedJointCount + 1 + 1 + 1
	assert.Equal(t, want, s.DrawsPerFrame())
	assert.Equal(t, want, stats.Issued)
	assert.Zero(t, stats.Skipped)
	assert.Equal(t, want, rec.Count(render.OpDraw))
	assert.Equal(t, 1, rec.Count(render.OpSetFrame))

	// Frame uniforms precede every draw.
	assert.Equal(t, render.OpSetFrame, rec.Calls[0].Op)
	frame := rec.Calls[0].Frame
	assert.Equal(t, s.Camera().Eye, frame.CameraPosition)
	assert.True(t, frame.Light.On)
}

func TestFrameOrder(t *testing.T) {
	s, _ := newScene(t)
	rec := render.NewRecorder()
	require.NoError(t, s.Init(rec))
	rec.ResetCalls()
	s.OnFrame(rec, 0)

	mats := rec.DrawnMaterials()
	models := rec.DrawnModels()
	blocks := s.Grid().Blocks()
	require.Greater(t, len(mats), len(blocks))

	// Map blocks come first, in grid order.
	for i, b := range blocks {
		assert.Equal(t, b.Material, mats[i])
		assert.Equal(t, b.Transform, models[i])
	}

	// The light marker is last and the sky just before it.
	n := len(mats)
	assert.Equal(t, render.KindSolidColor, mats[n-1].Kind)
	assert.Equal(t, render.Texture(render.UnitSky), mats[n-2])
	assert.Equal(t, render.SolidColor(SphereColor), mats[n-3])
}

func TestSpotlightHidesMarker(t *testing.T) {
	s, _ := newScene(t)
	rec := render.NewRecorder()
	require.NoError(t, s.Init(rec))

	before := s.DrawsPerFrame()
	s.SetSpotlight(true)
	assert.Equal(t, before-1, s.DrawsPerFrame())

	rec.ResetCalls()
	stats := s.OnFrame(rec, 1)
	assert.Equal(t, before-1, stats.Issued)

	frame := rec.Filter(render.OpSetFrame)[0].Frame
	assert.True(t, frame.Light.Spot)
	assert.Equal(t, s.Camera().Eye, frame.Light.Position)
}

func TestNormalDebug(t *testing.T) {
	s, _ := newScene(t)
	rec := render.NewRecorder()
	require.NoError(t, s.Init(rec))
	s.SetNormalDebug(true)
	assert.True(t, s.NormalDebug())

	rec.ResetCalls()
	s.OnFrame(rec, 0)
	mats := rec.DrawnMaterials()
	for _, m := range mats[:len(mats)-1] {
		assert.Equal(t, render.DebugNormal(), m)
	}
	// The marker keeps its own color.
	assert.Equal(t, render.KindSolidColor, mats[len(mats)-1].Kind)
}

func TestUploadFailureSkipsDraws(t *testing.T) {
	s, _ := newScene(t)
	rec := render.NewRecorder()
	rec.BufferLimit = 3 // the cube fits, the cylinder and sphere do not

	require.NoError(t, s.Init(rec))
	rec.ResetCalls()
	stats := s.OnFrame(rec, 0)

	assert.Equal(t, 2, stats.Skipped, "tail and sphere")
	assert.Equal(t, s.DrawsPerFrame()-2, stats.Issued)
	assert.Equal(t, stats.Issued, rec.Count(render.OpDraw))
	assert.Equal(t, s.DrawsPerFrame(), stats.Total())
}

func TestCompileFailure(t *testing.T) {
	s, _ := newScene(t)
	rec := render.NewRecorder()
	rec.CompileErr = errors.New("link failed")

	err := s.Init(rec)
	assert.ErrorIs(t, err, rec.CompileErr)

	stats := s.OnFrame(rec, 0)
	assert.Zero(t, stats.Issued)
	assert.Equal(t, s.DrawsPerFrame(), stats.Skipped)
	assert.Zero(t, rec.Count(render.OpDraw))
}

func TestPokeUsesClock(t *testing.T) {
	s, ft := newScene(t)
	rec := render.NewRecorder()
	require.NoError(t, s.Init(rec))

	ft.now = ft.now.Add(3 * time.Second)
	s.TriggerPoke()
	assert.Equal(t, animation.Poking, s.Animation().Phase())
	assert.InDelta(t, 3, s.Animation().State().PokeStart, 1e-9)

	s.OnFrame(rec, s.Elapsed()+0.5)
	assert.Equal(t, animation.Poking, s.Animation().Phase())
	s.OnFrame(rec, s.Elapsed()+1)
	assert.Equal(t, animation.Idle, s.Animation().Phase())

	s.TriggerPokeAt(10)
	assert.InDelta(t, 10, s.Animation().State().PokeStart, 1e-9)
}

func TestControls(t *testing.T) {
	s, _ := newScene(t)
	eye := s.Camera().Eye

	s.MoveForward()
	s.MoveBack()
	assert.True(t, s.Camera().Eye.ApproxEqual(eye, 1e-4))

	s.MoveLeft()
	s.MoveRight()
	assert.True(t, s.Camera().Eye.ApproxEqual(eye, 1e-4))

	at := s.Camera().At
	s.RotateLeft()
	s.RotateRight()
	assert.True(t, s.Camera().At.ApproxEqual(at, 1e-2))

	s.TiltUp()
	s.TiltDown()
	assert.True(t, s.Camera().At.ApproxEqual(at, 1e-2))

	s.ToggleAnimation(animation.Running, false)
	require.NoError(t, s.SetJointManualAngle(animation.GroupFrontLeg, 20))
	pose := s.Animation().Pose(1)
	assert.Equal(t, float32(20), pose[rig.FrontLeftUpper])

	s.SetGlobalYaw(90)
	assert.Equal(t, float32(90), s.Turntable().BaseYaw)
	s.Drag(10, 0)
	assert.True(t, s.Turntable().Spinning())
	s.ResetView()
	assert.False(t, s.Turntable().Spinning())

	s.SetLightColor(0.2, 0.4, 0.6)
	assert.Equal(t, math.V3(0.2, 0.4, 0.6), s.Light().Color)
	s.SetLightPosition(1, 2, 3)
	assert.Equal(t, float32(2), s.Light().Position.Y)
	s.SetLightOn(false)
	assert.False(t, s.Light().On)

	s.SetViewport(800, 400)
	assert.Equal(t, float32(2), s.aspect)
	s.SetViewport(0, 10)
	assert.Equal(t, float32(2), s.aspect)
}

func TestReleaseFreesBuffers(t *testing.T) {
	s, _ := newScene(t)
	rec := render.NewRecorder()
	require.NoError(t, s.Init(rec))
	assert.Equal(t, 10, rec.LiveBuffers())

	s.Release(rec)
	assert.Zero(t, rec.LiveBuffers())
}

func TestPokeAtScreen(t *testing.T) {
	s, _ := newScene(t)
	s.SetViewport(800, 600)

	// Project the body center to a pixel.
	body := s.dog.Compose(s.placement, rig.Pose{})[0]
	require.Equal(t, rig.Body, body.Joint)
	clip := s.cam.ProjectionMatrix(s.aspect).Mul(s.cam.ViewMatrix()).Mul(s.table.Matrix())
	ndc := clip.TransformPoint(body.Draw.TransformPoint(math.V3(0, 0, 0)))
	x := (ndc.X + 1) / 2 * 800
	y := (1 - ndc.Y) / 2 * 600

	_, hit := s.PickDog(x, y)
	require.True(t, hit, "pixel (%v, %v) should land on the dog", x, y)

	assert.False(t, s.PokeAtScreen(0, 0), "top-left corner is sky")
	assert.Equal(t, animation.Idle, s.Animation().Phase())

	assert.True(t, s.PokeAtScreen(x, y))
	assert.Equal(t, animation.Poking, s.Animation().Phase())
}

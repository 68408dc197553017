// Package game runs the interactive demo: window, renderer and the frame
// loop driving the scene.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/blockyworld/internal/config"
	"github.com/Faultbox/blockyworld/internal/engine/debug"
	"github.com/Faultbox/blockyworld/internal/engine/glrender"
	"github.com/Faultbox/blockyworld/internal/engine/input"
	"github.com/Faultbox/blockyworld/internal/engine/scene"
	"github.com/Faultbox/blockyworld/internal/engine/window"
	"github.com/Faultbox/blockyworld/internal/logger"
)

// Title is the window title.
const Title = "Blocky World"

// ScreenshotKey captures the frame to a PNG.
const ScreenshotKey = "F12"

var _ input.Controls = (*scene.State)(nil)

// Game is the demo instance.
type Game struct {
	config   *config.Config
	window   *window.Window
	renderer *glrender.Renderer
	scene    *scene.State
	events   *input.Queue
	dispatch *input.Dispatcher
	shots    *debug.Screenshots
	log      *zap.Logger
	frame    *zap.Logger
}

// New creates the window, renderer and scene.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config:   cfg,
		events:   input.NewQueue(),
		dispatch: input.NewDispatcher(),
		shots:    debug.NewScreenshots(cfg.Graphics.ScreenshotDir, ""),
		log:      logger.Named("game"),
		frame:    logger.Sampled("game"),
	}
	g.log.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int64("seed", cfg.World.Seed),
	)

	var err error
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the context the window just made current.
	width, height := g.window.Size()
	g.renderer, err = glrender.New(glrender.Config{Width: width, Height: height})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.scene, err = scene.New(cfg, nil)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	if err := g.scene.Init(g.renderer); err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to initialize scene: %w", err)
	}
	g.scene.SetViewport(width, height)

	g.log.Info("game initialized", zap.Int("draws_per_frame", g.scene.DrawsPerFrame()))
	return g, nil
}

// Run drives frames until the window closes or the quit key is pressed.
func (g *Game) Run() error {
	frameCount := 0
	skipped := 0
	fpsTimer := time.Now()

	g.log.Info("starting game loop")
	for {
		g.window.PollEvents(g.events)
		for _, e := range g.events.Events() {
			if e.Type == input.EventWindowResize {
				g.renderer.Resize(e.Width, e.Height)
			}
		}
		if !g.dispatch.Dispatch(g.scene, g.events.Events()) {
			return nil
		}

		g.renderer.Begin()
		stats := g.scene.OnFrame(g.renderer, g.scene.Elapsed())
		if err := g.renderer.End(); err != nil {
			g.frame.Warn("frame finished with GL error", zap.Error(err))
		}
		if g.events.IsKeyPressed(ScreenshotKey) {
			g.screenshot()
		}
		g.window.SwapBuffers()

		frameCount++
		skipped += stats.Skipped
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			fps := float64(frameCount) / elapsed.Seconds()
			g.log.Debug("fps",
				zap.Float64("fps", fps),
				zap.Int("draws", stats.Issued),
				zap.Int("skipped", skipped),
			)
			if g.config.Graphics.ShowFPS {
				g.window.SetTitle(fmt.Sprintf("%s - %.0f fps", Title, fps))
			}
			frameCount, skipped = 0, 0
			fpsTimer = time.Now()
		}
	}
}

// screenshot saves the frame just drawn, before it is swapped away.
func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.shots.SavePixels(pixels, w, h)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the scene's buffers, then the renderer and window.
func (g *Game) Close() {
	g.log.Info("closing game")
	if g.scene != nil && g.renderer != nil {
		g.scene.Release(g.renderer)
	}
	if g.renderer != nil {
		g.renderer.Close()
		g.renderer = nil
	}
	if g.window != nil {
		g.window.Close()
		g.window = nil
	}
}

// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all demo settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics" toml:"graphics"`
	Camera    CameraConfig    `yaml:"camera" toml:"camera"`
	World     WorldConfig     `yaml:"world" toml:"world"`
	Animation AnimationConfig `yaml:"animation" toml:"animation"`
	Lighting  LightingConfig  `yaml:"lighting" toml:"lighting"`
	Logging   LoggingConfig   `yaml:"logging" toml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width" toml:"width"`
	Height     int  `yaml:"height" toml:"height"`
	Fullscreen bool `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool `yaml:"vsync" toml:"vsync"`
	ShowFPS    bool `yaml:"show_fps" toml:"show_fps"`

	ScreenshotDir string `yaml:"screenshot_dir" toml:"screenshot_dir"`
}

// CameraConfig holds first-person camera and projection settings.
type CameraConfig struct {
	FOV         float32 `yaml:"fov" toml:"fov"` // vertical, degrees
	Near        float32 `yaml:"near" toml:"near"`
	Far         float32 `yaml:"far" toml:"far"`
	Step        float32 `yaml:"step" toml:"step"`
	TurnDeg     float32 `yaml:"turn_deg" toml:"turn_deg"`
	MaxPitchDeg float32 `yaml:"max_pitch_deg" toml:"max_pitch_deg"`
	DragSpeed   float32 `yaml:"drag_speed" toml:"drag_speed"` // degrees per pixel
}

// WorldConfig holds voxel grid generation settings.
type WorldConfig struct {
	Width         int     `yaml:"width" toml:"width"`
	Depth         int     `yaml:"depth" toml:"depth"`
	Seed          int64   `yaml:"seed" toml:"seed"` // 0 picks a time-based seed
	BlockScale    float32 `yaml:"block_scale" toml:"block_scale"`
	CylinderSides int     `yaml:"cylinder_sides" toml:"cylinder_sides"`
	SphereLat     int     `yaml:"sphere_lat" toml:"sphere_lat"`
	SphereLon     int     `yaml:"sphere_lon" toml:"sphere_lon"`

	// LayerMaterials names the block material per layer, bottom up; the
	// last entry covers every higher layer. Empty keeps the defaults.
	LayerMaterials []string `yaml:"layer_materials" toml:"layer_materials"`
}

// AnimationConfig holds initial animation toggles.
type AnimationConfig struct {
	Running      bool    `yaml:"running" toml:"running"`
	TailSway     bool    `yaml:"tail_sway" toml:"tail_sway"`
	PokeDuration float64 `yaml:"poke_duration" toml:"poke_duration"` // seconds
}

// LightingConfig holds point light settings.
type LightingConfig struct {
	On        bool       `yaml:"on" toml:"on"`
	Spotlight bool       `yaml:"spotlight" toml:"spotlight"`
	Color     [3]float32 `yaml:"color" toml:"color"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         1280,
			Height:        720,
			VSync:         true,
			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			FOV:         60,
			Near:        0.1,
			Far:         1000,
			Step:        1,
			TurnDeg:     5,
			MaxPitchDeg: 85,
			DragSpeed:   0.5,
		},
		World: WorldConfig{
			Width:         32,
			Depth:         32,
			BlockScale:    0.3,
			CylinderSides: 8,
			SphereLat:     16,
			SphereLon:     32,
		},
		Animation: AnimationConfig{
			Running:      true,
			TailSway:     true,
			PokeDuration: 1,
		},
		Lighting: LightingConfig{
			On:    true,
			Color: [3]float32{1, 1, 1},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	switch {
	case c.Graphics.Width <= 0 || c.Graphics.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera.fov %v must be in (0, 180)", ErrInvalid, c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera clip planes near=%v far=%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Camera.MaxPitchDeg <= 0 || c.Camera.MaxPitchDeg >= 90:
		return fmt.Errorf("%w: camera.max_pitch_deg %v must be in (0, 90)", ErrInvalid, c.Camera.MaxPitchDeg)
	case c.World.Width < 1 || c.World.Depth < 1:
		return fmt.Errorf("%w: world size %dx%d", ErrInvalid, c.World.Width, c.World.Depth)
	case c.World.BlockScale <= 0:
		return fmt.Errorf("%w: world.block_scale %v must be positive", ErrInvalid, c.World.BlockScale)
	case c.World.CylinderSides < 3:
		return fmt.Errorf("%w: world.cylinder_sides %d must be at least 3", ErrInvalid, c.World.CylinderSides)
	case c.World.SphereLat < 1 || c.World.SphereLon < 3:
		return fmt.Errorf("%w: sphere bands %dx%d", ErrInvalid, c.World.SphereLat, c.World.SphereLon)
	case c.Animation.PokeDuration <= 0:
		return fmt.Errorf("%w: animation.poke_duration %v must be positive", ErrInvalid, c.Animation.PokeDuration)
	}
	return nil
}

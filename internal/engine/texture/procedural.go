// Package texture generates the images bound to the four texture units.
//
// The images are computed rather than loaded so the demo needs no asset
// files. Every generator is deterministic for a given size.
package texture

import (
	"fmt"
	"image"
	"image/color"

	"github.com/chewxy/math32"

	"github.com/Faultbox/blockyworld/internal/engine/render"
)

// DefaultSize is the edge length used when a caller passes zero.
const DefaultSize = 64

// Brick layout, in texels of a DefaultSize image. Scaled with the image.
const (
	brickRows   = 4
	brickCols   = 2
	mortarWidth = 2
)

var (
	mortarColor = color.RGBA{200, 195, 185, 255}
	brickColor  = color.RGBA{160, 60, 45, 255}
	skyZenith   = color.RGBA{70, 120, 210, 255}
	skyHorizon  = color.RGBA{190, 220, 250, 255}
	waterDeep   = color.RGBA{20, 70, 150, 255}
	waterCrest  = color.RGBA{90, 160, 220, 255}
)

// ForUnit returns the image for a texture unit.
func ForUnit(unit, size int) (*image.RGBA, error) {
	switch unit {
	case render.UnitSky:
		return Sky(size), nil
	case render.UnitBrick:
		return Brick(size), nil
	case render.UnitStone:
		return Stone(size), nil
	case render.UnitWater:
		return Water(size), nil
	}
	return nil, fmt.Errorf("no texture for unit %d", unit)
}

func newImage(size int) (*image.RGBA, int) {
	if size <= 0 {
		size = DefaultSize
	}
	return image.NewRGBA(image.Rect(0, 0, size, size)), size
}

// Sky is a vertical gradient, zenith at row 0.
func Sky(size int) *image.RGBA {
	img, n := newImage(size)
	for y := 0; y < n; y++ {
		c := lerp(skyZenith, skyHorizon, float32(y)/float32(n-1+boolInt(n == 1)))
		for x := 0; x < n; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Brick is a running bond: every other course is offset by half a brick.
func Brick(size int) *image.RGBA {
	img, n := newImage(size)
	courseH := max(n/brickRows, 1)
	brickW := max(n/brickCols, 1)
	mortar := max(mortarWidth*n/DefaultSize, 1)

	for y := 0; y < n; y++ {
		course := y / courseH
		offset := 0
		if course%2 == 1 {
			offset = brickW / 2
		}
		for x := 0; x < n; x++ {
			if y%courseH < mortar || (x+offset)%brickW < mortar {
				img.SetRGBA(x, y, mortarColor)
				continue
			}
			img.SetRGBA(x, y, shade(brickColor, noise(x/4, y/4)*0.15))
		}
	}
	return img
}

// Stone is gray speckle over two octaves of hash noise.
func Stone(size int) *image.RGBA {
	img, n := newImage(size)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			v := 0.6*noise(x/4, y/4) + 0.4*noise(x, y)
			g := uint8(90 + v*80)
			img.SetRGBA(x, y, color.RGBA{g, g, g + 5, 255})
		}
	}
	return img
}

// Water is diagonal sine bands between a deep and a crest color.
func Water(size int) *image.RGBA {
	img, n := newImage(size)
	k := 4 * math32.Pi / float32(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			w := 0.5 + 0.5*math32.Sin(k*float32(x+y))*math32.Cos(k*float32(x-y)/2)
			img.SetRGBA(x, y, lerp(waterDeep, waterCrest, w))
		}
	}
	return img
}

// noise hashes a lattice point to [0, 1).
func noise(x, y int) float32 {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	return float32(h&0xffff) / 65536
}

func lerp(a, b color.RGBA, t float32) color.RGBA {
	t = math32.Min(math32.Max(t, 0), 1)
	mix := func(p, q uint8) uint8 {
		return uint8(float32(p) + (float32(q)-float32(p))*t + 0.5)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// shade darkens c by fraction f.
func shade(c color.RGBA, f float32) color.RGBA {
	k := 1 - f
	return color.RGBA{uint8(float32(c.R) * k), uint8(float32(c.G) * k), uint8(float32(c.B) * k), c.A}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

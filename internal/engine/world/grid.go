// Package world holds the voxel block grid and the fixed scenery placed
// around it.
package world

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/blockyworld/internal/engine/render"
	"github.com/Faultbox/blockyworld/internal/logger"
	"github.com/Faultbox/blockyworld/pkg/math"
)

const (
	// DefaultSize is the side length of the generated map.
	DefaultSize = 32
	// MaxHeight is the tallest block stack.
	MaxHeight = 4
	// DefaultBlockScale is the world size of one block.
	DefaultBlockScale float32 = 0.3
	// FloorY is the world height of the ground plane.
	FloorY float32 = -0.75
)

// ErrBadSize is returned for grids with a non-positive dimension.
var ErrBadSize = errors.New("invalid grid size")

// Grid is a Width x Depth map of block stack heights. Cell (col, row) is
// column col along X and row row along Z.
type Grid struct {
	Width      int
	Depth      int
	BlockScale float32
	Materials  MaterialTable

	heights []uint8 // row-major
}

// NewGrid returns an empty grid with default scale and materials.
func NewGrid(width, depth int) (*Grid, error) {
	if width <= 0 || depth <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, width, depth)
	}
	return &Grid{
		Width:      width,
		Depth:      depth,
		BlockScale: DefaultBlockScale,
		Materials:  DefaultMaterialTable(),
		heights:    make([]uint8, width*depth),
	}, nil
}

// Generate builds the map: a ring of tall border walls, a few fixed
// interior walls and towers, and randomly sized pillars on a regular
// lattice. A nil rng seeds from the clock; the seed is logged so a map can
// be reproduced.
func Generate(width, depth int, rng *rand.Rand) (*Grid, error) {
	g, err := NewGrid(width, depth)
	if err != nil {
		return nil, err
	}

	log := logger.Named("world")
	if rng == nil {
		seed := time.Now().UnixNano()
		rng = rand.New(rand.NewSource(seed))
		log.Info("generating map with clock seed", zap.Int64("seed", seed))
	}

	for r := 0; r < depth; r++ {
		for c := 0; c < width; c++ {
			var h uint8
			switch {
			case g.onBorder(c, r):
				h = 4
				if rng.Float64() < 0.7 {
					h = 3
				}
			case r == 5 && c > 5 && c < width-5:
				h = 4
			case c == 10 && r > 2 && r < depth-15:
				h = 2
			case r%7 == 1 && c%5 == 1:
				h = uint8(1 + rng.Intn(2))
			}
			g.set(c, r, h)
		}
	}

	// Spawn clearing and the center cell. The border wall wins on grids
	// too small to hold them.
	for _, cell := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {width / 2, depth / 2}} {
		if !g.onBorder(cell[0], cell[1]) {
			g.set(cell[0], cell[1], 0)
		}
	}

	// Landmark towers.
	g.set(15, 15, 4)
	g.set(20, 10, 4)

	log.Debug("map generated",
		zap.Int("width", width),
		zap.Int("depth", depth),
		zap.Int("blocks", g.BlockCount()),
	)
	return g, nil
}

func (g *Grid) onBorder(col, row int) bool {
	return row == 0 || col == 0 || row == g.Depth-1 || col == g.Width-1
}

func (g *Grid) inRange(col, row int) bool {
	return col >= 0 && col < g.Width && row >= 0 && row < g.Depth
}

// set writes a stack height, ignoring out-of-range cells and clamping to
// MaxHeight.
func (g *Grid) set(col, row int, h uint8) {
	if !g.inRange(col, row) {
		return
	}
	if h > MaxHeight {
		h = MaxHeight
	}
	g.heights[row*g.Width+col] = h
}

// At returns the stack height of a cell, or 0 outside the grid.
func (g *Grid) At(col, row int) int {
	if !g.inRange(col, row) {
		return 0
	}
	return int(g.heights[row*g.Width+col])
}

// BlockCount returns the total number of blocks.
func (g *Grid) BlockCount() int {
	n := 0
	for _, h := range g.heights {
		n += int(h)
	}
	return n
}

// CellToWorld returns the ground-level center of a cell. The grid is
// centered on the origin.
func (g *Grid) CellToWorld(col, row int) math.Vec3 {
	return math.Vec3{
		X: (float32(col) - float32(g.Width)/2 + 0.5) * g.BlockScale,
		Y: FloorY,
		Z: (float32(row) - float32(g.Depth)/2 + 0.5) * g.BlockScale,
	}
}

// BlockTransform returns the model matrix of the block at the given layer
// of a cell.
func (g *Grid) BlockTransform(col, row, layer int) math.Mat4 {
	s := g.BlockScale
	return math.Translate(0, FloorY+float32(layer)*s, 0).
		Scaled(s, s, s).
		Translated(float32(col)-float32(g.Width)/2+0.5, 0, float32(row)-float32(g.Depth)/2+0.5)
}

// Block is one cube of the map.
type Block struct {
	Col, Row, Layer int
	Transform       math.Mat4
	Material        render.Material
}

// Blocks enumerates every block, row by row, bottom layer first.
func (g *Grid) Blocks() []Block {
	out := make([]Block, 0, g.BlockCount())
	for r := 0; r < g.Depth; r++ {
		for c := 0; c < g.Width; c++ {
			for i := 0; i < g.At(c, r); i++ {
				out = append(out, Block{
					Col:       c,
					Row:       r,
					Layer:     i,
					Transform: g.BlockTransform(c, r, i),
					Material:  g.Materials.ForLayer(i),
				})
			}
		}
	}
	return out
}

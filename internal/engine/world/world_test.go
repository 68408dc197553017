package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/blockyworld/internal/engine/render"
	"github.com/Faultbox/blockyworld/pkg/math"
)

func generate(t *testing.T, seed int64) *Grid {
	t.Helper()
	g, err := Generate(DefaultSize, DefaultSize, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return g
}

func TestGenerateBounds(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := generate(t, seed)
		for r := 0; r < g.Depth; r++ {
			for c := 0; c < g.Width; c++ {
				h := g.At(c, r)
				assert.GreaterOrEqual(t, h, 0)
				assert.LessOrEqual(t, h, MaxHeight)

				border := r == 0 || c == 0 || r == g.Depth-1 || c == g.Width-1
				if border {
					assert.GreaterOrEqual(t, h, 3, "border cell (%d, %d) seed %d", c, r, seed)
				}
			}
		}
	}
}

func TestGenerateSmallGridsKeepBorder(t *testing.T) {
	for w := 1; w <= 5; w++ {
		for d := 1; d <= 5; d++ {
			g, err := Generate(w, d, rand.New(rand.NewSource(1)))
			require.NoError(t, err)
			for r := 0; r < d; r++ {
				for c := 0; c < w; c++ {
					if r == 0 || c == 0 || r == d-1 || c == w-1 {
						assert.GreaterOrEqual(t, g.At(c, r), 3, "%dx%d border cell (%d, %d)", w, d, c, r)
					}
				}
			}
		}
	}
}

func TestGenerateFixedFeatures(t *testing.T) {
	g := generate(t, 7)

	for _, cell := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {16, 16}} {
		assert.Zero(t, g.At(cell[0], cell[1]), "clearing at %v", cell)
	}
	assert.Equal(t, 4, g.At(15, 15))
	assert.Equal(t, 4, g.At(20, 10))

	// Row 5 wall and column 10 wall.
	for c := 6; c < DefaultSize-5; c++ {
		assert.Equal(t, 4, g.At(c, 5), "row 5 col %d", c)
	}
	for r := 3; r < DefaultSize-15; r++ {
		if r == 5 {
			continue
		}
		assert.Equal(t, 2, g.At(10, r), "col 10 row %d", r)
	}

	// Pillars sit on the lattice and are 1 or 2 tall.
	h := g.At(6, 8)
	assert.True(t, h == 1 || h == 2, "pillar height %d", h)
	assert.Zero(t, g.At(7, 8))
}

func TestGenerateDeterministic(t *testing.T) {
	a := generate(t, 42)
	b := generate(t, 42)
	assert.Equal(t, a.heights, b.heights)
	assert.Equal(t, a.Blocks(), b.Blocks())
}

func TestGenerateNilRNG(t *testing.T) {
	g, err := Generate(8, 8, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, g.At(0, 0), 3)
}

func TestGenerateBadSize(t *testing.T) {
	_, err := Generate(0, 32, nil)
	assert.ErrorIs(t, err, ErrBadSize)
	_, err = NewGrid(4, -1)
	assert.ErrorIs(t, err, ErrBadSize)
}

func TestAtOutOfRange(t *testing.T) {
	g := generate(t, 1)
	assert.Zero(t, g.At(-1, 0))
	assert.Zero(t, g.At(0, DefaultSize))
}

func TestCellToWorld(t *testing.T) {
	g, err := NewGrid(32, 32)
	require.NoError(t, err)

	p := g.CellToWorld(0, 0)
	assert.InDelta(t, -15.5*0.3, p.X, 1e-5)
	assert.InDelta(t, -15.5*0.3, p.Z, 1e-5)
	assert.InDelta(t, FloorY, p.Y, 1e-6)

	p = g.CellToWorld(16, 15)
	assert.InDelta(t, 0.5*0.3, p.X, 1e-5)
	assert.InDelta(t, -0.5*0.3, p.Z, 1e-5)
}

func TestBlockTransformMatchesCell(t *testing.T) {
	g, err := NewGrid(32, 32)
	require.NoError(t, err)

	for _, tt := range []struct{ col, row, layer int }{{0, 0, 0}, {31, 0, 2}, {12, 20, 3}} {
		center := g.BlockTransform(tt.col, tt.row, tt.layer).TransformPoint(math.Vec3{})
		want := g.CellToWorld(tt.col, tt.row)
		want.Y += float32(tt.layer) * g.BlockScale
		assert.True(t, center.ApproxEqual(want, 1e-5), "block %v center %v want %v", tt, center, want)
	}
}

func TestBlocks(t *testing.T) {
	g, err := NewGrid(3, 2)
	require.NoError(t, err)
	g.set(0, 0, 4)
	g.set(2, 1, 1)
	g.set(1, 1, 9) // clamped

	blocks := g.Blocks()
	require.Len(t, blocks, 4+1+MaxHeight)
	assert.Equal(t, g.BlockCount(), len(blocks))

	// Layers of the first cell use grass, stone, brick, then overflow stone.
	stone := render.Texture(render.UnitStone)
	assert.Equal(t, render.SolidColor(GrassColor), blocks[0].Material)
	assert.Equal(t, stone, blocks[1].Material)
	assert.Equal(t, render.Texture(render.UnitBrick), blocks[2].Material)
	assert.Equal(t, stone, blocks[3].Material)
	assert.Equal(t, 3, blocks[3].Layer)
}

func TestMaterialTableFromNames(t *testing.T) {
	table, unknown := MaterialTableFromNames(MaterialGrass, "lava", MaterialBrick)
	assert.Equal(t, []string{"lava"}, unknown)
	require.Len(t, table.Layers, 2)
	assert.Equal(t, render.Fallback(), table.ForLayer(1))
	assert.Equal(t, render.Texture(render.UnitBrick), table.ForLayer(2))
	assert.Equal(t, render.Texture(render.UnitBrick), table.ForLayer(10))

	empty, _ := MaterialTableFromNames()
	assert.Equal(t, render.Fallback(), empty.ForLayer(0))
}

func TestNamed(t *testing.T) {
	m, ok := Named(MaterialWater)
	assert.True(t, ok)
	assert.Equal(t, render.Texture(render.UnitWater), m)

	m, ok = Named("plaid")
	assert.False(t, ok)
	assert.Equal(t, render.Magenta, m.Color)
}

func TestStructures(t *testing.T) {
	pieces := Structures()
	require.Len(t, pieces, StructureCount)
	assert.Equal(t, 13, StructureCount)

	monoliths := 0
	for _, p := range pieces {
		_, ok := render.Resolve(p.Material)
		assert.True(t, ok, p.Name)

		// Everything but the lintel stands on the floor; the pond sinks
		// slightly into it.
		bottom := p.Transform.TransformPoint(math.V3(0, -0.5, 0))
		want := FloorY
		if p.Name == "arch-lintel" {
			want += 1.2
		}
		assert.InDelta(t, want, bottom.Y, 0.02, p.Name)

		if p.Name == "monolith" {
			monoliths++
			c := p.Transform.Translation()
			d := math.V3(c.X-0.5, 0, c.Z-0.5).Length()
			assert.InDelta(t, monolithRadius, d, 1e-4)
		}
	}
	assert.Equal(t, MonolithCount, monoliths)
}

func TestFloorAndSky(t *testing.T) {
	g, err := NewGrid(32, 32)
	require.NoError(t, err)

	f := g.Floor()
	edge := f.Transform.TransformPoint(math.V3(0.5, 0, 0.5))
	assert.InDelta(t, 32*0.3*1.2/2, edge.X, 1e-4)
	assert.InDelta(t, FloorY, edge.Y, 1e-6)

	s := Sky()
	assert.InDelta(t, -100, s.Transform[0], 1e-6)
	assert.Equal(t, render.Texture(render.UnitSky), s.Material)
}

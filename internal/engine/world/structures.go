package world

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/blockyworld/internal/engine/render"
	"github.com/Faultbox/blockyworld/pkg/math"
)

// Piece is a single scaled cube of fixed scenery.
type Piece struct {
	Name      string
	Transform math.Mat4
	Material  render.Material
}

// Monolith ring layout.
const (
	MonolithCount  = 7
	monolithRadius = 1.8
)

// StructureCount is the number of pieces Structures returns.
const StructureCount = 2 + MonolithCount + 1 + 3

func box(pos, size math.Vec3) math.Mat4 {
	return math.Translate(pos.X, pos.Y, pos.Z).Scaled(size.X, size.Y, size.Z)
}

// Structures returns the hand-placed scenery: an L-shaped wall, a ring
// of standing stones, a pond and an arch. Every piece rests on the floor.
func Structures() []Piece {
	brick := named[MaterialBrick]
	stone := named[MaterialStone]
	out := make([]Piece, 0, StructureCount)

	// L wall.
	const wallX, wallZ = -4.0, -3.0
	w1 := math.V3(0.2, 0.9, 2.0)
	w2 := math.V3(1.5, 0.7, 0.2)
	out = append(out,
		Piece{"wall-long", box(math.V3(wallX, FloorY+w1.Y/2, wallZ), w1), brick},
		Piece{"wall-short", box(math.V3(wallX-w1.X/2+w2.X/2, FloorY+w2.Y/2, wallZ+w1.Z/2-w2.Z/2), w2), brick},
	)

	// Standing stones face the ring center.
	mono := math.V3(0.4, 1.5, 0.3)
	for i := 0; i < MonolithCount; i++ {
		a := float32(i) / MonolithCount * 2 * math32.Pi
		x := 0.5 + monolithRadius*math32.Cos(a)
		z := 0.5 + monolithRadius*math32.Sin(a)
		m := math.Translate(x, FloorY+mono.Y/2, z).
			Rotated(math.RadToDeg(a)+90, 0, 1, 0).
			Scaled(mono.X, mono.Y, mono.Z)
		out = append(out, Piece{"monolith", m, stone})
	}

	pond := math.V3(1.5, 0.02, 2.5)
	out = append(out, Piece{"pond", box(math.V3(3, FloorY+pond.Y/2-0.015, -2), pond), named[MaterialWater]})

	// Arch: two pillars and a lintel spanning them.
	const archX, archZ, span = -3.0, 3.0, 1.0
	pillar := math.V3(0.3, 1.2, 0.3)
	lintel := math.V3(span+pillar.X*2, 0.3, pillar.Z)
	out = append(out,
		Piece{"arch-pillar", box(math.V3(archX, FloorY+pillar.Y/2, archZ), pillar), brick},
		Piece{"arch-pillar", box(math.V3(archX+span+pillar.X, FloorY+pillar.Y/2, archZ), pillar), brick},
		Piece{"arch-lintel", box(math.V3(archX+(span+pillar.X)/2, FloorY+pillar.Y+lintel.Y/2, archZ), lintel), brick},
	)
	return out
}

// Floor returns the ground slab, sized to overhang the grid by 20%.
func (g *Grid) Floor() Piece {
	sx := float32(g.Width) * g.BlockScale * 1.2
	sz := float32(g.Depth) * g.BlockScale * 1.2
	return Piece{
		Name:      "floor",
		Transform: math.Translate(0, FloorY, 0).Scaled(sx, 0.01, sz),
		Material:  named[MaterialGrass],
	}
}

// Sky returns the sky box: a large cube turned inside out so its faces
// point inward.
func Sky() Piece {
	return Piece{
		Name:      "sky",
		Transform: math.Scale(-100, -100, -100),
		Material:  named[MaterialSky],
	}
}

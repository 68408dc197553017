package geometry

import "github.com/chewxy/math32"

// MinCylinderSides is the smallest side count that encloses a volume.
const MinCylinderSides = 3

// CylinderVertexCount returns the vertex count for the given side count:
// two side triangles plus one triangle in each cap per side.
func CylinderVertexCount(sides int) int {
	return max(sides, MinCylinderSides) * 12
}

// Cylinder returns a non-indexed cylinder of radius 0.5 and height 1,
// centered on the Y axis. Sides below MinCylinderSides are clamped.
//
// Side U wraps [0,1] around the circumference and V runs 0 at the bottom
// to 1 at the top. Caps map radially around the texture center.
func Cylinder(sides int) Geometry {
	sides = max(sides, MinCylinderSides)

	const (
		radius = 0.5
		yTop   = 0.5
		yBot   = -0.5
	)
	step := 2 * math32.Pi / float32(sides)

	n := CylinderVertexCount(sides)
	g := Geometry{
		Positions: make([]float32, 0, n*3),
		UVs:       make([]float32, 0, n*2),
		Normals:   make([]float32, 0, n*3),
	}
	add := func(x, y, z, u, v, nx, ny, nz float32) {
		g.Positions = append(g.Positions, x, y, z)
		g.UVs = append(g.UVs, u, v)
		g.Normals = append(g.Normals, nx, ny, nz)
	}

	// Sides
	for i := 0; i < sides; i++ {
		s1, c1 := math32.Sincos(float32(i) * step)
		s2, c2 := math32.Sincos(float32(i+1) * step)
		x1, z1 := radius*c1, radius*s1
		x2, z2 := radius*c2, radius*s2
		u1 := float32(i) / float32(sides)
		u2 := float32(i+1) / float32(sides)

		add(x1, yTop, z1, u1, 1, c1, 0, s1)
		add(x2, yBot, z2, u2, 0, c2, 0, s2)
		add(x1, yBot, z1, u1, 0, c1, 0, s1)

		add(x2, yBot, z2, u2, 0, c2, 0, s2)
		add(x1, yTop, z1, u1, 1, c1, 0, s1)
		add(x2, yTop, z2, u2, 1, c2, 0, s2)
	}

	// Top cap
	for i := 0; i < sides; i++ {
		s1, c1 := math32.Sincos(float32(i) * step)
		s2, c2 := math32.Sincos(float32(i+1) * step)
		add(0, yTop, 0, 0.5, 0.5, 0, 1, 0)
		add(radius*c2, yTop, radius*s2, 0.5+0.5*c2, 0.5-0.5*s2, 0, 1, 0)
		add(radius*c1, yTop, radius*s1, 0.5+0.5*c1, 0.5-0.5*s1, 0, 1, 0)
	}

	// Bottom cap, opposite winding
	for i := 0; i < sides; i++ {
		s1, c1 := math32.Sincos(float32(i) * step)
		s2, c2 := math32.Sincos(float32(i+1) * step)
		add(0, yBot, 0, 0.5, 0.5, 0, -1, 0)
		add(radius*c1, yBot, radius*s1, 0.5+0.5*c1, 0.5-0.5*s1, 0, -1, 0)
		add(radius*c2, yBot, radius*s2, 0.5+0.5*c2, 0.5-0.5*s2, 0, -1, 0)
	}

	return g
}

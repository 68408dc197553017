// Package geometry generates the procedural meshes the scene is built from.
//
// Every generator is pure: the same parameters always produce the same
// arrays, and nothing here touches the GPU. Shapes are centered on the
// origin with unit extent (side 1, or diameter 1).
package geometry

// Geometry holds flat vertex attribute arrays for one mesh.
// Positions and Normals are 3-tuples, UVs 2-tuples. Indices is empty for
// non-indexed meshes. A Geometry is never mutated after creation.
type Geometry struct {
	Positions []float32
	UVs       []float32
	Normals   []float32
	Indices   []uint16
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

// IndexCount returns the number of indices.
func (g *Geometry) IndexCount() int {
	return len(g.Indices)
}

// Indexed reports whether the mesh is drawn through an index buffer.
func (g *Geometry) Indexed() bool {
	return len(g.Indices) > 0
}

// DrawCount returns the element count of a single draw covering the mesh.
func (g *Geometry) DrawCount() int {
	if g.Indexed() {
		return g.IndexCount()
	}
	return g.VertexCount()
}

// Bounds returns the bounding box of all positions.
func (g *Geometry) Bounds() Bounds {
	if len(g.Positions) < 3 {
		return Bounds{}
	}
	b := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	for i := 0; i+2 < len(g.Positions); i += 3 {
		for k := 0; k < 3; k++ {
			v := g.Positions[i+k]
			if v < b.Min[k] {
				b.Min[k] = v
			}
			if v > b.Max[k] {
				b.Max[k] = v
			}
		}
	}
	return b
}

// Triangle returns the three vertex indices of triangle i, resolving the
// index buffer when present.
func (g *Geometry) Triangle(i int) (a, b, c int) {
	if g.Indexed() {
		return int(g.Indices[3*i]), int(g.Indices[3*i+1]), int(g.Indices[3*i+2])
	}
	return 3 * i, 3*i + 1, 3*i + 2
}

// TriangleCount returns the number of triangles.
func (g *Geometry) TriangleCount() int {
	return g.DrawCount() / 3
}

// Position returns vertex i's position.
func (g *Geometry) Position(i int) [3]float32 {
	return [3]float32{g.Positions[3*i], g.Positions[3*i+1], g.Positions[3*i+2]}
}

// Normal returns vertex i's normal, or zero when the mesh has none.
func (g *Geometry) Normal(i int) [3]float32 {
	if 3*i+2 >= len(g.Normals) {
		return [3]float32{}
	}
	return [3]float32{g.Normals[3*i], g.Normals[3*i+1], g.Normals[3*i+2]}
}

// UV returns vertex i's texture coordinate, or zero when the mesh has none.
func (g *Geometry) UV(i int) [2]float32 {
	if 2*i+1 >= len(g.UVs) {
		return [2]float32{}
	}
	return [2]float32{g.UVs[2*i], g.UVs[2*i+1]}
}

package geometry

// CubeVertexCount is 6 faces of 2 triangles each.
const CubeVertexCount = 36

// cubeFaces lists each face's two triangles in counter-clockwise order
// seen from outside, followed by the face normal.
var cubeFaces = [6]struct {
	corners [6][3]float32
	normal  [3]float32
}{
	{ // front (+Z)
		[6][3]float32{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}},
		[3]float32{0, 0, 1},
	},
	{ // back (-Z)
		[6][3]float32{{-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, -0.5, -0.5}},
		[3]float32{0, 0, -1},
	},
	{ // top (+Y)
		[6][3]float32{{-0.5, 0.5, -0.5}, {-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}},
		[3]float32{0, 1, 0},
	},
	{ // bottom (-Y)
		[6][3]float32{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}},
		[3]float32{0, -1, 0},
	},
	{ // right (+X)
		[6][3]float32{{0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, 0.5}, {0.5, -0.5, 0.5}},
		[3]float32{1, 0, 0},
	},
	{ // left (-X)
		[6][3]float32{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}},
		[3]float32{-1, 0, 0},
	},
}

// cubeFaceUVs maps every face onto the full [0,1] texture square.
var cubeFaceUVs = [6][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 0}, {1, 1}, {0, 1}}

// Cube returns a non-indexed unit cube centered at the origin.
func Cube() Geometry {
	g := Geometry{
		Positions: make([]float32, 0, CubeVertexCount*3),
		UVs:       make([]float32, 0, CubeVertexCount*2),
		Normals:   make([]float32, 0, CubeVertexCount*3),
	}
	for _, face := range cubeFaces {
		for i, p := range face.corners {
			g.Positions = append(g.Positions, p[0], p[1], p[2])
			g.UVs = append(g.UVs, cubeFaceUVs[i][0], cubeFaceUVs[i][1])
			g.Normals = append(g.Normals, face.normal[0], face.normal[1], face.normal[2])
		}
	}
	return g
}

package geometry

import "github.com/chewxy/math32"

// Band limits. The upper bound keeps every vertex addressable by a
// uint16 index.
const (
	MinLatBands = 1
	MinLonBands = 3
	MaxBands    = 254
)

// SphereVertexCount returns (lat+1)*(lon+1) after clamping.
func SphereVertexCount(lat, lon int) int {
	lat, lon = clampBands(lat, lon)
	return (lat + 1) * (lon + 1)
}

// SphereIndexCount returns two triangles per band quad after clamping.
func SphereIndexCount(lat, lon int) int {
	lat, lon = clampBands(lat, lon)
	return lat * lon * 6
}

func clampBands(lat, lon int) (int, int) {
	return min(max(lat, MinLatBands), MaxBands), min(max(lon, MinLonBands), MaxBands)
}

// Sphere returns an indexed sphere of radius 0.5 from latitude and
// longitude bands. Normals are the unit positions; UVs are
// equirectangular with (0,0) at the south pole seam.
func Sphere(latBands, lonBands int) Geometry {
	latBands, lonBands = clampBands(latBands, lonBands)

	nv := SphereVertexCount(latBands, lonBands)
	g := Geometry{
		Positions: make([]float32, 0, nv*3),
		UVs:       make([]float32, 0, nv*2),
		Normals:   make([]float32, 0, nv*3),
		Indices:   make([]uint16, 0, SphereIndexCount(latBands, lonBands)),
	}

	for lat := 0; lat <= latBands; lat++ {
		sinT, cosT := math32.Sincos(float32(lat) * math32.Pi / float32(latBands))
		for lon := 0; lon <= lonBands; lon++ {
			sinP, cosP := math32.Sincos(float32(lon) * 2 * math32.Pi / float32(lonBands))

			x := cosP * sinT
			y := cosT
			z := sinP * sinT

			g.Normals = append(g.Normals, x, y, z)
			g.Positions = append(g.Positions, 0.5*x, 0.5*y, 0.5*z)
			g.UVs = append(g.UVs,
				1-float32(lon)/float32(lonBands),
				1-float32(lat)/float32(latBands))
		}
	}

	row := lonBands + 1
	for lat := 0; lat < latBands; lat++ {
		for lon := 0; lon < lonBands; lon++ {
			first := uint16(lat*row + lon)
			second := first + uint16(row)
			g.Indices = append(g.Indices,
				first, first+1, second,
				second, first+1, second+1)
		}
	}

	return g
}

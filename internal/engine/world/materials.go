package world

import "github.com/Faultbox/blockyworld/internal/engine/render"

// Material names usable from configuration.
const (
	MaterialGrass  = "grass"
	MaterialStone  = "stone"
	MaterialBrick  = "brick"
	MaterialSky    = "sky"
	MaterialWater  = "water"
	MaterialNormal = "normal"
)

// GrassColor is the ground tint.
var GrassColor = render.Color{0.58, 0.76, 0.34, 1}

var named = map[string]render.Material{
	MaterialGrass:  render.SolidColor(GrassColor),
	MaterialStone:  render.Texture(render.UnitStone),
	MaterialBrick:  render.Texture(render.UnitBrick),
	MaterialSky:    render.Texture(render.UnitSky),
	MaterialWater:  render.Texture(render.UnitWater),
	MaterialNormal: render.DebugNormal(),
}

// Named returns the material registered under name. Unknown names return
// the magenta fallback and false.
func Named(name string) (render.Material, bool) {
	m, ok := named[name]
	if !ok {
		return render.Fallback(), false
	}
	return m, true
}

// MaterialTable maps a block's layer to its material. Layers past the end
// of Layers use Overflow.
type MaterialTable struct {
	Layers   []render.Material
	Overflow render.Material
}

// DefaultMaterialTable puts grass at the bottom, then stone and brick, and
// stone above that.
func DefaultMaterialTable() MaterialTable {
	return MaterialTable{
		Layers: []render.Material{
			named[MaterialGrass],
			named[MaterialStone],
			named[MaterialBrick],
		},
		Overflow: named[MaterialStone],
	}
}

// MaterialTableFromNames builds a table from material names, the last one
// being the overflow. Unknown names become the fallback; the names that
// failed are returned.
func MaterialTableFromNames(names ...string) (MaterialTable, []string) {
	var (
		t       MaterialTable
		unknown []string
	)
	for i, n := range names {
		m, ok := Named(n)
		if !ok {
			unknown = append(unknown, n)
		}
		if i == len(names)-1 {
			t.Overflow = m
			break
		}
		t.Layers = append(t.Layers, m)
	}
	if len(names) == 0 {
		t.Overflow = render.Fallback()
	}
	return t, unknown
}

// ForLayer returns the material of the given layer.
func (t MaterialTable) ForLayer(layer int) render.Material {
	if layer >= 0 && layer < len(t.Layers) {
		return t.Layers[layer]
	}
	return t.Overflow
}

package rig

import (
	"errors"
	"fmt"

	"github.com/Faultbox/blockyworld/internal/engine/primitive"
	"github.com/Faultbox/blockyworld/internal/engine/render"
	"github.com/Faultbox/blockyworld/pkg/math"
)

// ErrBadHierarchy is wrapped by New when the joint table is not a valid
// parent-first ordering.
var ErrBadHierarchy = errors.New("invalid joint hierarchy")

// Rig is an immutable joint hierarchy stored parent-before-child.
type Rig struct {
	joints []Joint
	index  map[JointName]int
}

// New validates the joint table: names are unique and every parent index
// refers to an earlier joint.
func New(joints []Joint) (*Rig, error) {
	r := &Rig{
		joints: make([]Joint, len(joints)),
		index:  make(map[JointName]int, len(joints)),
	}
	copy(r.joints, joints)

	for i, j := range r.joints {
		if j.Name == "" {
			return nil, fmt.Errorf("%w: joint %d has no name", ErrBadHierarchy, i)
		}
		if _, dup := r.index[j.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate joint %q", ErrBadHierarchy, j.Name)
		}
		if j.Parent >= i || j.Parent < -1 {
			return nil, fmt.Errorf("%w: joint %q has parent %d, want -1..%d", ErrBadHierarchy, j.Name, j.Parent, i-1)
		}
		if i > 0 && j.Parent == -1 {
			return nil, fmt.Errorf("%w: joint %q is a second root", ErrBadHierarchy, j.Name)
		}
		r.index[j.Name] = i
	}
	return r, nil
}

// Len returns the number of joints.
func (r *Rig) Len() int { return len(r.joints) }

// Joint returns joint i.
func (r *Rig) Joint(i int) Joint { return r.joints[i] }

// Index returns the position of the named joint.
func (r *Rig) Index(name JointName) (int, bool) {
	i, ok := r.index[name]
	return i, ok
}

// Names returns joint names in hierarchy order.
func (r *Rig) Names() []JointName {
	out := make([]JointName, len(r.joints))
	for i, j := range r.joints {
		out[i] = j.Name
	}
	return out
}

// JointWorlds returns every joint's world frame. Each child starts from
// its parent's frame by value, so siblings never see each other's edits.
func (r *Rig) JointWorlds(placement math.Mat4, pose Pose) []math.Mat4 {
	worlds := make([]math.Mat4, len(r.joints))
	for i := range r.joints {
		j := &r.joints[i]
		parent := placement
		if j.Parent >= 0 {
			parent = worlds[j.Parent]
		}
		worlds[i] = parent.Mul(j.Local(pose[j.Name]))
	}
	return worlds
}

// PartTransform is one part ready to draw.
type PartTransform struct {
	Joint JointName
	Shape Shape
	Color render.Color
	Draw  math.Mat4
}

// Compose returns the draw transforms of every part in hierarchy order.
func (r *Rig) Compose(placement math.Mat4, pose Pose) []PartTransform {
	worlds := r.JointWorlds(placement, pose)
	out := make([]PartTransform, 0, len(r.joints))
	for i := range r.joints {
		j := &r.joints[i]
		if j.Part == nil {
			continue
		}
		out = append(out, PartTransform{
			Joint: j.Name,
			Shape: j.Part.Shape,
			Color: j.Part.Color,
			Draw:  j.Part.DrawTransform(worlds[i]),
		})
	}
	return out
}

// Material returns the material a part draws with.
func (p PartTransform) Material(normalDebug bool) render.Material {
	if normalDebug {
		return render.DebugNormal()
	}
	return render.SolidColor(p.Color)
}

// Primitives supplies one primitive per part shape.
type Primitives struct {
	Cube     *primitive.Primitive
	Cylinder *primitive.Primitive
}

func (p Primitives) forShape(s Shape) *primitive.Primitive {
	if s == ShapeCylinder {
		return p.Cylinder
	}
	return p.Cube
}

// Draw issues one draw per part. A part whose primitive fails is skipped
// and the rest are still drawn; the failures are joined into err.
func (r *Rig) Draw(rd render.Renderer, b render.Bindings, prims Primitives, placement math.Mat4, pose Pose, normalDebug bool) (drawn int, err error) {
	var errs []error
	for _, pt := range r.Compose(placement, pose) {
		prim := prims.forShape(pt.Shape)
		if prim == nil {
			errs = append(errs, fmt.Errorf("part %s: no primitive for shape %d", pt.Joint, pt.Shape))
			continue
		}
		if err := prim.Draw(rd, b, pt.Draw, pt.Material(normalDebug)); err != nil {
			errs = append(errs, fmt.Errorf("part %s: %w", pt.Joint, err))
			continue
		}
		drawn++
	}
	return drawn, errors.Join(errs...)
}

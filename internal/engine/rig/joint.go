// Package rig implements the articulated quadruped: a fixed joint
// hierarchy composed parent-first into per-part draw transforms.
package rig

import (
	"github.com/Faultbox/blockyworld/internal/engine/render"
	"github.com/Faultbox/blockyworld/pkg/math"
)

// JointName identifies a joint.
type JointName string

// Shape selects the primitive a part is drawn with.
type Shape uint8

const (
	ShapeCube Shape = iota
	ShapeCylinder
)

// Part is the visible piece attached to a joint. The primitive is scaled
// by Size after being shifted by Center, so Center is in unit-primitive
// space: (0, -0.5, 0) hangs a part below its joint.
type Part struct {
	Shape  Shape
	Size   math.Vec3
	Center math.Vec3
	Color  render.Color
}

// Joint is one node of the hierarchy. Parent indexes an earlier joint in
// the same rig, or is -1 for the root.
type Joint struct {
	Name   JointName
	Parent int
	Offset math.Mat4
	Axis   math.Vec3
	Rest   float32 // degrees, added to the posed angle
	Part   *Part
}

// Pose maps joints to animated angles in degrees. Missing joints are 0.
type Pose map[JointName]float32

// Local returns the joint's transform relative to its parent for the
// given animated angle.
func (j *Joint) Local(angle float32) math.Mat4 {
	return j.Offset.Rotated(j.Rest+angle, j.Axis.X, j.Axis.Y, j.Axis.Z)
}

// DrawTransform maps unit-primitive space to world space for the joint's
// part, given the joint's world frame.
func (p *Part) DrawTransform(jointWorld math.Mat4) math.Mat4 {
	return jointWorld.
		Scaled(p.Size.X, p.Size.Y, p.Size.Z).
		Translated(p.Center.X, p.Center.Y, p.Center.Z)
}

package rig

import (
	"github.com/Faultbox/blockyworld/internal/engine/render"
	"github.com/Faultbox/blockyworld/pkg/math"
)

// Quadruped joint names.
const (
	Body     JointName = "body"
	Neck     JointName = "neck"
	Head     JointName = "head"
	Snout    JointName = "snout"
	Nose     JointName = "nose"
	EyeLeft  JointName = "eye_left"
	EyeRight JointName = "eye_right"
	EarLeft  JointName = "ear_left"
	EarRight JointName = "ear_right"
	Tail     JointName = "tail"

	FrontLeftUpper  JointName = "front_left_upper"
	FrontLeftLower  JointName = "front_left_lower"
	FrontLeftPaw    JointName = "front_left_paw"
	FrontRightUpper JointName = "front_right_upper"
	FrontRightLower JointName = "front_right_lower"
	FrontRightPaw   JointName = "front_right_paw"
	BackLeftUpper   JointName = "back_left_upper"
	BackLeftLower   JointName = "back_left_lower"
	BackLeftPaw     JointName = "back_left_paw"
	BackRightUpper  JointName = "back_right_upper"
	BackRightLower  JointName = "back_right_lower"
	BackRightPaw    JointName = "back_right_paw"
)

// QuadrupedJointCount is the fixed size of the quadruped hierarchy.
const QuadrupedJointCount = 22

// Leg groups the three joints of one leg.
type Leg struct {
	Upper, Lower, Paw JointName
}

// Legs lists the quadruped's legs: front left, front right, back left,
// back right.
var Legs = [4]Leg{
	{FrontLeftUpper, FrontLeftLower, FrontLeftPaw},
	{FrontRightUpper, FrontRightLower, FrontRightPaw},
	{BackLeftUpper, BackLeftLower, BackLeftPaw},
	{BackRightUpper, BackRightLower, BackRightPaw},
}

// Part colors.
var (
	ColorBody  = render.Color{0.6, 0.3, 0.1, 1}
	ColorNeck  = render.Color{0.55, 0.28, 0.08, 1}
	ColorSnout = render.Color{0.5, 0.25, 0.05, 1}
	ColorNose  = render.Color{0.1, 0.1, 0.1, 1}
	ColorEye   = render.Color{0, 0, 0, 1}
	ColorPaw   = render.Color{0.4, 0.2, 0.05, 1}
)

var axisX = math.Vec3{X: 1}

func cube(size math.Vec3, center math.Vec3, c render.Color) *Part {
	return &Part{Shape: ShapeCube, Size: size, Center: center, Color: c}
}

// NewQuadruped builds the dog. Every joint carries a part.
func NewQuadruped() *Rig {
	var (
		centered = math.Vec3{}
		above    = math.Vec3{Y: 0.5}
		below    = math.Vec3{Y: -0.5}
	)

	joints := []Joint{
		{Name: Body, Parent: -1, Offset: math.Translate(-0.25, -0.1, 0), Axis: axisX,
			Part: cube(math.V3(0.5, 0.3, 0.6), centered, ColorBody)},
		{Name: Neck, Parent: 0, Offset: math.Translate(0, 0.15, -0.25), Axis: axisX, Rest: -30,
			Part: cube(math.V3(0.1, 0.3, 0.1), above, ColorNeck)},
		{Name: Head, Parent: 1, Offset: math.Translate(0, 0.3, 0), Axis: axisX, Rest: 10,
			Part: cube(math.V3(0.25, 0.2, 0.25), centered, ColorBody)},
		{Name: Snout, Parent: 2, Offset: math.Translate(0, -0.05, -0.15), Axis: axisX,
			Part: cube(math.V3(0.15, 0.1, 0.2), centered, ColorSnout)},
		{Name: Nose, Parent: 3, Offset: math.Translate(0, 0, -0.1), Axis: axisX,
			Part: cube(math.V3(0.03, 0.03, 0.03), centered, ColorNose)},
		{Name: EyeLeft, Parent: 2, Offset: math.Translate(-0.08, 0.05, -0.13), Axis: axisX,
			Part: cube(math.V3(0.04, 0.04, 0.04), centered, ColorEye)},
		{Name: EyeRight, Parent: 2, Offset: math.Translate(0.08, 0.05, -0.13), Axis: axisX,
			Part: cube(math.V3(0.04, 0.04, 0.04), centered, ColorEye)},
		{Name: EarLeft, Parent: 2, Axis: axisX,
			Offset: math.Translate(-0.1, 0.1, 0.05).Rotated(20, 0, 0, 1).Rotated(-15, 1, 0, 0),
			Part:   cube(math.V3(0.06, 0.18, 0.06), above, ColorSnout)},
		{Name: EarRight, Parent: 2, Axis: axisX,
			Offset: math.Translate(0.1, 0.1, 0.05).Rotated(-20, 0, 0, 1).Rotated(-15, 1, 0, 0),
			Part:   cube(math.V3(0.06, 0.18, 0.06), above, ColorSnout)},
		{Name: Tail, Parent: 0, Offset: math.Translate(0, 0.1, 0.3), Axis: axisX, Rest: -30,
			Part: &Part{Shape: ShapeCylinder, Size: math.V3(0.05, 0.3, 0.05), Center: math.V3(0, 0.5, -0.5), Color: ColorBody}},
	}

	hips := [4]math.Vec3{
		{X: -0.25, Y: -0.05, Z: -0.2},
		{X: 0.25, Y: -0.05, Z: -0.2},
		{X: -0.25, Y: -0.05, Z: 0.2},
		{X: 0.25, Y: -0.05, Z: 0.2},
	}
	for i, leg := range Legs {
		upper := len(joints)
		joints = append(joints,
			Joint{Name: leg.Upper, Parent: 0, Offset: math.Translate(hips[i].X, hips[i].Y, hips[i].Z), Axis: axisX,
				Part: cube(math.V3(0.1, 0.3, 0.1), below, ColorBody)},
			Joint{Name: leg.Lower, Parent: upper, Offset: math.Translate(0, -0.3, 0), Axis: axisX,
				Part: cube(math.V3(0.08, 0.3, 0.08), below, ColorBody)},
			Joint{Name: leg.Paw, Parent: upper + 1, Offset: math.Translate(0, -0.3, 0.02), Axis: axisX,
				Part: cube(math.V3(0.1, 0.05, 0.12), below, ColorPaw)},
		)
	}

	r, err := New(joints)
	if err != nil {
		panic("rig: quadruped table: " + err.Error())
	}
	return r
}

// Placement builds the rig's world placement: translate, uniform scale,
// then yaw about Y.
func Placement(pos math.Vec3, scale, yawDeg float32) math.Mat4 {
	return math.Translate(pos.X, pos.Y, pos.Z).
		Scaled(scale, scale, scale).
		Rotated(yawDeg, 0, 1, 0)
}

// DogPlacement is where the scene stands the dog: half size, facing the
// default camera, feet on the floor.
func DogPlacement() math.Mat4 {
	return Placement(math.V3(0, -0.45, 1), 0.5, 180)
}

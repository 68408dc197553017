package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n, ok := Vec3{3, 0, 4}.NormalizeOK()
	if !ok {
		t.Fatal("NormalizeOK() reported degenerate for (3, 0, 4)")
	}
	if l := n.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	if _, ok := (Vec3{}).NormalizeOK(); ok {
		t.Error("NormalizeOK() of zero vector should report degenerate")
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize() of zero vector = %v, want zero", got)
	}
}

func TestVec3Div(t *testing.T) {
	if got := (Vec3{2, 4, 6}).Div(2); got != (Vec3{1, 2, 3}) {
		t.Errorf("Div(2) = %v, want (1, 2, 3)", got)
	}
	if got := (Vec3{2, 4, 6}).Div(0); got != (Vec3{}) {
		t.Errorf("Div(0) = %v, want zero", got)
	}
}

func TestVec3AngleBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want float32
	}{
		{"orthogonal", Vec3{1, 0, 0}, Vec3{0, 3, 0}, 90},
		{"parallel", Vec3{2, 0, 0}, Vec3{5, 0, 0}, 0},
		{"opposite", Vec3{0, 0, 1}, Vec3{0, 0, -1}, 180},
		{"diagonal", Vec3{1, 0, 0}, Vec3{1, 1, 0}, 45},
		{"zero length", Vec3{}, Vec3{1, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.AngleBetween(tt.b)
			if abs(got-tt.want) > 1e-3 {
				t.Errorf("AngleBetween() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3TriangleArea(t *testing.T) {
	got := Vec3{2, 0, 0}.TriangleArea(Vec3{0, 3, 0})
	if abs(got-3) > 1e-6 {
		t.Errorf("TriangleArea() = %v, want 3", got)
	}
}

func TestVec3RotateAround(t *testing.T) {
	up := Vec3{0, 1, 0}
	v := Vec3{0, 0, -1}

	left := v.RotateAround(up, 90)
	if !left.ApproxEqual(Vec3{-1, 0, 0}, 1e-5) {
		t.Errorf("RotateAround(up, 90) = %v, want (-1, 0, 0)", left)
	}

	// 72 turns of 5 degrees is a full revolution.
	w := v
	for i := 0; i < 72; i++ {
		w = w.RotateAround(up, 5)
	}
	if !w.ApproxEqual(v, 1e-4) {
		t.Errorf("72 x 5 degree rotation = %v, want %v", w, v)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 1) != 1 || Clamp(-5, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp out of range")
	}
}

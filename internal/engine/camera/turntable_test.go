package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/blockyworld/pkg/math"
)

func TestTurntableSpinsAndSettles(t *testing.T) {
	tt := NewTurntable(60, 0.5)
	tt.Drag(10, 0)
	assert.True(t, tt.Spinning())

	tt.Update()
	first := tt.Yaw()
	assert.InDelta(t, 5, first, 1e-4)

	for i := 0; i < 600; i++ {
		tt.Update()
	}
	assert.False(t, tt.Spinning())
	settled := tt.Yaw()
	assert.Greater(t, settled, first)

	tt.Update()
	assert.InDelta(t, settled, tt.Yaw(), 1e-3)
	assert.Zero(t, tt.Pitch())
}

func TestTurntablePitchClamp(t *testing.T) {
	tt := NewTurntable(60, 1)
	tt.Drag(0, 1000)
	for i := 0; i < 10; i++ {
		tt.Update()
	}
	assert.Equal(t, float32(MaxTurntablePitch), tt.Pitch())

	tt.Drag(0, -5000)
	for i := 0; i < 10; i++ {
		tt.Update()
	}
	assert.Equal(t, float32(-MaxTurntablePitch), tt.Pitch())
}

func TestTurntableMatrix(t *testing.T) {
	tt := NewTurntable(0, 0.5)
	assert.True(t, tt.Matrix().ApproxEqual(math.Identity(), 1e-6))

	tt.BaseYaw = 90
	p := tt.Matrix().TransformPoint(math.V3(1, 0, 0))
	assert.True(t, p.ApproxEqual(math.V3(0, 0, -1), 1e-5), "got %v", p)

	tt.Drag(4, 2)
	tt.Update()
	tt.Reset()
	assert.Zero(t, tt.Yaw())
	assert.Zero(t, tt.Pitch())
	assert.False(t, tt.Spinning())
}

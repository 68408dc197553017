//go:build !debug

package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/blockyworld/pkg/math"
)

func TestDegenerateIsNoOp(t *testing.T) {
	ops := map[string]func(*FirstPerson){
		"forward":      (*FirstPerson).Forward,
		"back":         (*FirstPerson).Back,
		"left":         (*FirstPerson).Left,
		"right":        (*FirstPerson).Right,
		"rotate-left":  (*FirstPerson).RotateLeft,
		"rotate-right": (*FirstPerson).RotateRight,
		"tilt-up":      (*FirstPerson).TiltUp,
		"tilt-down":    (*FirstPerson).TiltDown,
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			c := NewFirstPerson()
			c.At = c.Eye
			want := *c
			assert.NotPanics(t, func() { op(c) })
			assert.Equal(t, want, *c)
		})
	}
}

func TestLookingStraightUpCannotStrafe(t *testing.T) {
	c := NewFirstPerson()
	c.At = c.Eye.Add(math.V3(0, 5, 0))
	want := *c
	c.Left()
	c.TiltDown()
	assert.Equal(t, want, *c)
}

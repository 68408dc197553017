//go:build debug

package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegeneratePanicsInDebug(t *testing.T) {
	c := NewFirstPerson()
	c.At = c.Eye
	assert.Panics(t, c.Forward)
}

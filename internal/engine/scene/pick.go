package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/blockyworld/internal/engine/animation"
	"github.com/Faultbox/blockyworld/internal/engine/picking"
	"github.com/Faultbox/blockyworld/internal/engine/rig"
)

// PickDog casts a ray through a window pixel and reports the dog part it
// hits first, using the pose at the current clock time.
func (s *State) PickDog(screenX, screenY float32) (rig.JointName, bool) {
	clip := s.cam.ProjectionMatrix(s.aspect).Mul(s.cam.ViewMatrix()).Mul(s.table.Matrix())
	inv, ok := clip.InverseOK()
	if !ok {
		return "", false
	}
	ray, ok := picking.ScreenToRay(screenX, screenY, float32(s.viewW), float32(s.viewH), inv)
	if !ok {
		return "", false
	}

	a := s.anim.State()
	pose := animation.ComputePose(s.clock.Seconds(), a, s.anim.Manual())
	parts := s.dog.Compose(s.placement, pose)

	boxes := make([]picking.AABB, len(parts))
	for i, p := range parts {
		g := s.cube.Geometry()
		if p.Shape == rig.ShapeCylinder {
			g = s.cylinder.Geometry()
		}
		boxes[i] = picking.TransformBounds(g.Bounds(), p.Draw)
	}

	i, _ := ray.Nearest(boxes)
	if i < 0 {
		return "", false
	}
	return parts[i].Joint, true
}

// PokeAtScreen pokes the dog when the pixel lands on it.
func (s *State) PokeAtScreen(screenX, screenY float32) bool {
	joint, ok := s.PickDog(screenX, screenY)
	if !ok {
		return false
	}
	s.log.Debug("dog clicked", zap.String("part", string(joint)))
	s.TriggerPoke()
	return true
}


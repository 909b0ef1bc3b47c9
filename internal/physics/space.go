package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/flyer/internal/core"
)

// Ground segment extent on each side of the origin.
const groundHalfWidth = 1e5

// Space owns the Chipmunk space that every simulated body lives in.
type Space struct {
	space  *cp.Space
	bodies int
}

// NewSpace creates a space with the given gravity vector.
func NewSpace(gravity core.Vec) *Space {
	space := cp.NewSpace()
	space.SetGravity(toCP(gravity))
	return &Space{space: space}
}

// AddGround adds a static horizontal segment at height y.
func (s *Space) AddGround(y float64) {
	seg := cp.NewSegment(s.space.StaticBody, cp.Vector{X: -groundHalfWidth, Y: y}, cp.Vector{X: groundHalfWidth, Y: y}, 0)
	seg.SetFriction(1)
	seg.SetElasticity(0)
	s.space.AddShape(seg)
}

// NewBoxBody creates a dynamic box body centered on its origin.
func (s *Space) NewBoxBody(mass, width, height float64) *CPBody {
	body := s.space.AddBody(cp.NewBody(mass, cp.MomentForBox(mass, width, height)))
	shape := s.space.AddShape(cp.NewBox(body, width, height, 0))
	shape.SetFriction(0.7)
	s.bodies++
	return &CPBody{space: s, body: body, shapes: []*cp.Shape{shape}}
}

// NewCircleBody creates a dynamic circle body. Its shape is a sensor so it
// reports overlaps without pushing other bodies.
func (s *Space) NewCircleBody(mass, radius float64) *CPBody {
	body := s.space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{})))
	shape := s.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetSensor(true)
	s.bodies++
	return &CPBody{space: s, body: body, shapes: []*cp.Shape{shape}}
}

// Remove destroys b. The handle stays usable but reports Valid() == false.
func (s *Space) Remove(b *CPBody) {
	if b == nil || b.space != s {
		return
	}
	for _, shape := range b.shapes {
		s.space.RemoveShape(shape)
	}
	s.space.RemoveBody(b.body)
	b.space = nil
	s.bodies--
}

// Step integrates the space by dt seconds.
func (s *Space) Step(dt float64) {
	s.space.Step(dt)
}

// Bodies returns the number of dynamic bodies created and not yet removed.
func (s *Space) Bodies() int {
	return s.bodies
}

func toCP(v core.Vec) cp.Vector {
	return cp.Vector{X: v[0], Y: v[1]}
}

func fromCP(v cp.Vector) core.Vec {
	return core.V(v.X, v.Y)
}

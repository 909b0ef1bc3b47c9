// Package physics adapts the Chipmunk2D rigid-body engine to the narrow body
// handle consumed by machine systems.
package physics

import (
	"github.com/vovakirdan/flyer/internal/core"
)

// Body is a handle to a rigid body. Systems attached to a machine use it to
// map points between the body frame and the world and to push the body.
type Body interface {
	// WorldPoint transforms a body-local point into world space.
	WorldPoint(local core.Vec) core.Vec

	// LocalPoint transforms a world-space point into the body frame.
	LocalPoint(world core.Vec) core.Vec

	// ApplyImpulse applies impulse at a world-space point.
	ApplyImpulse(impulse, at core.Vec)

	// Valid returns false once the underlying body has been destroyed.
	Valid() bool
}

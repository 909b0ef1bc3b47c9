// Package core provides fundamental types and utilities for the flight simulation.
// It depends only on vector math so that simulation logic stays pure and testable.
package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec is a 2D vector in simulation units (meters, meters per second).
type Vec = mgl64.Vec2

// V creates a vector from its components.
func V(x, y float64) Vec {
	return Vec{x, y}
}

// Rotate returns v rotated counter-clockwise by angle radians.
func Rotate(v Vec, angle float64) Vec {
	return mgl64.Rotate2D(angle).Mul2x1(v)
}

// Finite reports whether x is neither NaN nor infinite.
func Finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

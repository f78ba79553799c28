package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector in jar-local units
type Vec2F struct {
	X, Y float64
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FDot(a, b Vec2F) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Hypot(v.X, v.Y)
}

// V2FDist returns the euclidean distance between two points
func V2FDist(a, b Vec2F) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// V2FMidpoint returns the point halfway between a and b
func V2FMidpoint(a, b Vec2F) Vec2F {
	return Vec2F{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// V2FNormalize returns the unit vector, zero-safe
func V2FNormalize(v Vec2F) Vec2F {
	mag := V2FMag(v)
	if mag == 0 {
		return Vec2F{}
	}
	inv := 1.0 / mag
	return Vec2F{v.X * inv, v.Y * inv}
}

// Clamp limits v to [lo, hi]; lo wins when the range is inverted
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// SnapZero returns 0 when |v| is below eps
func SnapZero(v, eps float64) float64 {
	if math.Abs(v) < eps {
		return 0
	}
	return v
}

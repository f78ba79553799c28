package core

import "github.com/lixenwraith/cookie-jar/vmath"

// Kinetic holds position and velocity in jar-local units
// Origin is the jar's top-left corner, Y grows downward, velocity is units per frame
type Kinetic struct {
	X, Y   float64
	VX, VY float64
}

// Pos returns the position as a vector
func (k *Kinetic) Pos() vmath.Vec2F {
	return vmath.Vec2F{X: k.X, Y: k.Y}
}

// Vel returns the velocity as a vector
func (k *Kinetic) Vel() vmath.Vec2F {
	return vmath.Vec2F{X: k.VX, Y: k.VY}
}

// Still reports whether both velocity components are exactly zero
func (k *Kinetic) Still() bool {
	return k.VX == 0 && k.VY == 0
}

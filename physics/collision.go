package physics

import (
	"github.com/lixenwraith/cookie-jar/core"
	"github.com/lixenwraith/cookie-jar/vmath"
)

// ResolveCollisions runs one pass of pairwise overlap resolution over the active pieces
// Single pass per frame; stacks settle across frames rather than within one
func ResolveCollisions(pieces []*core.Piece, jar Bounds, prof *Profile) {
	for i, c := range pieces {
		c.OnGround = false
		for j := i + 1; j < len(pieces); j++ {
			ResolvePair(c, pieces[j], prof)
		}
		settleOnFloor(c, jar, prof)
	}
}

// ResolvePair separates two overlapping pieces and exchanges impulse along the contact normal
// Returns true if the pair was overlapping and resolved
func ResolvePair(a, b *core.Piece, prof *Profile) bool {
	// Fully settled pair, nothing can change
	if !a.Falling && a.Still() && !b.Falling && b.Still() {
		return false
	}

	delta := vmath.V2FSub(b.Pos(), a.Pos())
	dist := vmath.V2FMag(delta)
	minDist := a.Radius + b.Radius

	// Coincident centers have no usable normal
	if dist >= minDist || dist <= prof.JitterThreshold {
		return false
	}

	overlap := minDist - dist
	n := vmath.V2FScale(delta, 1/dist)

	// Positional correction, half the overlap each
	half := overlap / 2
	a.X -= n.X * half
	a.Y -= n.Y * half
	b.X += n.X * half
	b.Y += n.Y * half

	rel := vmath.V2FSub(b.Vel(), a.Vel())
	velAlongNormal := vmath.V2FDot(rel, n)

	if velAlongNormal < 0 {
		impulse := -(1 + prof.Restitution) * velAlongNormal / (a.Mass + b.Mass)
		ix := impulse * n.X
		iy := impulse * n.Y

		a.VX -= ix / a.Mass
		a.VY -= iy / a.Mass
		b.VX += ix / b.Mass
		b.VY += iy / b.Mass
	}

	for _, p := range [2]*core.Piece{a, b} {
		p.VX = vmath.SnapZero(p.VX*prof.Damping, prof.RestVelocity)
		p.VY = vmath.SnapZero(p.VY*prof.Damping, prof.RestVelocity)
	}

	return true
}

// settleOnFloor re-establishes floor contact after pair resolution may have pushed a piece down
func settleOnFloor(p *core.Piece, jar Bounds, prof *Profile) {
	if p.Y+p.Radius < jar.Height-1 {
		return
	}
	p.Y = jar.Height - p.Radius
	p.VY = 0
	p.VX = vmath.SnapZero(p.VX*prof.FloorFriction, prof.RestVelocity)
	p.OnGround = true
}

package physics

import (
	"github.com/lixenwraith/cookie-jar/core"
	"github.com/lixenwraith/cookie-jar/vmath"
)

// Integrate advances a piece by one frame: gravity, motion, wall and floor response
// Pieces held by the player or resting on the floor are only re-clamped
func Integrate(p *core.Piece, jar Bounds, prof *Profile) {
	if p.Falling && !p.OnGround {
		p.VY += prof.Gravity
		p.X += p.VX
		p.Y += p.VY

		if p.X-p.Radius < 0 {
			p.X = p.Radius
			p.VX *= prof.WallBounce
		} else if p.X+p.Radius > jar.Width {
			p.X = jar.Width - p.Radius
			p.VX *= prof.WallBounce
		}

		if p.Y+p.Radius > jar.Height {
			p.Y = jar.Height - p.Radius
			p.VY = 0
			p.VX *= prof.FloorFriction
			if vmath.SnapZero(p.VY, prof.GroundEpsilon) == 0 {
				p.OnGround = true
				p.VX = 0
			}
		}
	}

	ClampToBounds(p, jar, prof)

	p.VX = vmath.SnapZero(p.VX, prof.SnapEpsilon)
	p.VY = vmath.SnapZero(p.VY, prof.SnapEpsilon)
}

// ClampToBounds keeps the whole circle inside the jar, zeroing the velocity axis that was clamped
// Floor contact marks the piece grounded
func ClampToBounds(p *core.Piece, jar Bounds, prof *Profile) {
	if p.X-p.Radius < 0 {
		p.X = p.Radius
		p.VX = 0
	} else if p.X+p.Radius > jar.Width {
		p.X = jar.Width - p.Radius
		p.VX = 0
	}

	if p.Y-p.Radius < 0 {
		p.Y = p.Radius
		p.VY = 0
	}

	if p.Y+p.Radius >= jar.Height {
		p.Y = jar.Height - p.Radius
		p.VY = 0
		p.OnGround = true
		p.VX = vmath.SnapZero(p.VX, prof.SnapEpsilon)
	}
}

package core

import "time"

// Sizing derives the physical size of a piece from its tier
type Sizing struct {
	BaseRadius float64
	RadiusStep float64
	MassFactor float64
}

// DefaultSizing is a 25 unit radius at tier 0, +5 per tier
var DefaultSizing = Sizing{
	BaseRadius: 25,
	RadiusStep: 5,
	MassFactor: 0.5,
}

// Radius returns baseRadius + tier*radiusStep
func (s Sizing) Radius(tier int) float64 {
	return s.BaseRadius + float64(tier)*s.RadiusStep
}

// Mass returns radius*massFactor
func (s Sizing) Mass(tier int) float64 {
	return s.Radius(tier) * s.MassFactor
}

// Piece is one circular cookie in the jar
type Piece struct {
	Kinetic

	Radius float64
	Mass   float64
	Tier   int

	// Falling is set once the piece leaves player control
	Falling bool
	// OnGround is set on floor contact or when the piece has settled
	OnGround bool
	// Merged marks the piece for removal at the end of the current merge pass
	Merged bool

	// DroppedAt is zero until the player releases the piece
	DroppedAt time.Time
}

// NewPiece creates a piece at (x, y) with size derived from tier
// Falling pieces start with a 1 unit/frame downward velocity
func NewPiece(x, y float64, tier int, falling bool, sizing Sizing) *Piece {
	p := &Piece{
		Kinetic: Kinetic{X: x, Y: y},
		Radius:  sizing.Radius(tier),
		Mass:    sizing.Mass(tier),
		Tier:    tier,
		Falling: falling,
	}
	if falling {
		p.VY = 1
	}
	return p
}

// Dropped reports whether the piece has a drop timestamp
func (p *Piece) Dropped() bool {
	return !p.DroppedAt.IsZero()
}

// Top returns the y of the piece's top edge
func (p *Piece) Top() float64 {
	return p.Y - p.Radius
}

// Overlaps reports whether the two circles interpenetrate
func (p *Piece) Overlaps(o *Piece) bool {
	dx := o.X - p.X
	dy := o.Y - p.Y
	sum := p.Radius + o.Radius
	return dx*dx+dy*dy < sum*sum
}

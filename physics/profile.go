package physics

// Profile holds the per-frame tuning constants for integration and collision
// Values are applied once per frame, not per unit of real time, so simulation speed follows frame rate
type Profile struct {
	Gravity       float64 // Added to vy each airborne frame
	WallBounce    float64 // vx multiplier on side wall hit (negative reflects)
	FloorFriction float64 // vx multiplier on floor contact
	GroundEpsilon float64 // |vy| below this on floor hit marks the piece grounded
	SnapEpsilon   float64 // Velocity components below this snap to zero after integration

	JitterThreshold float64 // Center distance below this skips resolution
	RestVelocity    float64 // Velocity components below this snap to zero after collision
	Damping         float64 // Velocity multiplier applied to both pieces of a colliding pair
	Restitution     float64 // Bounce coefficient of the pair impulse
}

// DefaultProfile is tuned for ~60 frames per second
var DefaultProfile = Profile{
	Gravity:       0.3,
	WallBounce:    -0.5,
	FloorFriction: 0.7,
	GroundEpsilon: 0.1,
	SnapEpsilon:   0.05,

	JitterThreshold: 0.5,
	RestVelocity:    0.1,
	Damping:         0.9,
	Restitution:     0.2,
}

// Bounds is the jar's interior in jar-local units, origin top-left
type Bounds struct {
	Width  float64
	Height float64
}

// DefaultBounds is a 350x400 jar
var DefaultBounds = Bounds{Width: 350, Height: 400}

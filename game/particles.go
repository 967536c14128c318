package game

import (
	"image/color"
	"math"
	"math/rand"
)

const particleGravity = 300

// Particle is a transient visual. Value type, no external references.
type Particle struct {
	X, Y        float32
	VX, VY      float32
	Life        float32
	InitialLife float32
	Size        float32
	R, G, B, A  uint8
}

// Particles owns the session's particle pool. Dead entries are compacted in
// place each tick, so the slice never holds stale values and allocations
// amortize to zero once the pool has grown.
type Particles struct {
	list []Particle
	rng  *rand.Rand
}

func NewParticles(seed int64) *Particles {
	return &Particles{rng: rand.New(rand.NewSource(seed))}
}

// Burst spawns n particles at (x, y) with randomized outward velocities.
func (ps *Particles) Burst(x, y float32, n int, col color.RGBA) {
	for i := 0; i < n; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := 60 + ps.rng.Float64()*120
		life := float32(0.4 + ps.rng.Float64()*0.5)
		ps.list = append(ps.list, Particle{
			X:           x,
			Y:           y,
			VX:          float32(math.Cos(angle) * speed),
			VY:          float32(math.Sin(angle)*speed) - 40,
			Life:        life,
			InitialLife: life,
			Size:        float32(1 + ps.rng.Float64()*2),
			R:           col.R,
			G:           col.G,
			B:           col.B,
			A:           col.A,
		})
	}
}

// Update integrates every particle and drops the expired ones.
func (ps *Particles) Update(dt float32) {
	alive := ps.list[:0]
	for i := range ps.list {
		p := ps.list[i]
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.VY += particleGravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		alive = append(alive, p)
	}
	ps.list = alive
}

func (ps *Particles) Len() int { return len(ps.list) }

// All returns a copy of the live particles for rendering.
func (ps *Particles) All() []Particle {
	out := make([]Particle, len(ps.list))
	copy(out, ps.list)
	return out
}

package tui

import (
	"math/rand/v2"
	"time"
)

const (
	particleCount = 20
	particleLoop  = 15 * time.Second

	// Drift over one loop, in cells.
	driftX = 12.0
	driftY = 6.0
)

// Particle is one floating dot of the background animation. Top and Left
// are percentages of the field, Size ranges over [5,15).
type Particle struct {
	Top   float64
	Left  float64
	Size  float64
	Delay time.Duration
}

// NewParticles scatters n particles using r.
func NewParticles(n int, r *rand.Rand) []Particle {
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = Particle{
			Top:   r.Float64() * 100,
			Left:  r.Float64() * 100,
			Size:  r.Float64()*10 + 5,
			Delay: time.Duration(r.Float64() * float64(5*time.Second)),
		}
	}
	return ps
}

// phase is the position in the float loop, 0 until the delay has passed.
func (p Particle) phase(elapsed time.Duration) float64 {
	if elapsed <= p.Delay {
		return 0
	}
	return float64((elapsed-p.Delay)%particleLoop) / float64(particleLoop)
}

// Cell returns where p is drawn on a w×h field and with which glyph.
// ok is false once the particle has faded out or drifted off the field.
func (p Particle) Cell(elapsed time.Duration, w, h int) (x, y int, glyph rune, ok bool) {
	phase := p.phase(elapsed)
	if phase >= 0.9 {
		return 0, 0, 0, false
	}

	x = int(p.Left/100*float64(w) + phase*driftX)
	y = int(p.Top/100*float64(h) - phase*driftY)
	if x < 0 || x >= w || y < 0 || y >= h {
		return 0, 0, 0, false
	}

	switch {
	case phase >= 0.5:
		glyph = '·'
	case p.Size >= 10:
		glyph = '•'
	default:
		glyph = '∙'
	}
	return x, y, glyph, true
}

// Field draws the particles on a blank w×h grid.
func Field(ps []Particle, elapsed time.Duration, w, h int) [][]rune {
	field := make([][]rune, h)
	for y := range field {
		row := make([]rune, w)
		for x := range row {
			row[x] = ' '
		}
		field[y] = row
	}

	for _, p := range ps {
		if x, y, glyph, ok := p.Cell(elapsed, w, h); ok {
			field[y][x] = glyph
		}
	}
	return field
}

package core

import "time"

// maxCatchUp bounds how many simulation steps a single frame may run when
// the host falls behind; anything beyond is dropped.
const maxCatchUp = 4

// Pacer accumulates wall time and converts it into due simulation steps at a
// fixed rate. Backends that own their own tick cadence do not need one.
type Pacer struct {
	step time.Duration
	acc  time.Duration
	last time.Time
}

// NewPacer returns a pacer firing the given number of steps per second.
// The first call to Steps always yields at least one step.
func NewPacer(perSecond int) *Pacer {
	p := &Pacer{}
	p.SetRate(perSecond)
	p.acc = p.step
	return p
}

// SetRate changes the step rate without disturbing accumulated time.
func (p *Pacer) SetRate(perSecond int) {
	if perSecond < 1 {
		perSecond = 1
	}
	p.step = time.Second / time.Duration(perSecond)
}

// Steps advances the pacer to now and returns how many steps are due,
// at most maxCatchUp.
func (p *Pacer) Steps(now time.Time) int {
	if !p.last.IsZero() {
		p.acc += now.Sub(p.last)
	}
	p.last = now

	n := 0
	for p.acc >= p.step {
		p.acc -= p.step
		n++
		if n == maxCatchUp {
			p.acc = 0
			break
		}
	}
	return n
}

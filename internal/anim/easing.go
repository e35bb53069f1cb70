package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// FPS is the frame rate the app ticks the sequencer at.
const FPS = 60

// Curve maps linear progress in [0,1] to eased progress. It is a table of
// samples of a spring moving from 0 to 1. A nil Curve is linear.
type Curve []float64

// SpringCurve samples a harmonica spring until it settles and normalizes the
// samples so the curve ends exactly at 1.
func SpringCurve(fps int, frequency, damping float64) Curve {
	spring := harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)

	samples := Curve{0}
	var pos, vel float64
	for i := 0; i < fps*10; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		samples = append(samples, pos)
		if math.Abs(1-pos) < 1e-3 && math.Abs(vel) < 1e-3 {
			break
		}
	}

	last := samples[len(samples)-1]
	if last != 0 {
		for i := range samples {
			samples[i] /= last
		}
	}
	samples[len(samples)-1] = 1
	return samples
}

// DefaultCurve is a critically damped spring.
var DefaultCurve = SpringCurve(FPS, 6.0, 1.0)

// At returns the eased value for progress t. t is clamped to [0,1].
func (c Curve) At(t float64) float64 {
	t = clamp01(t)
	if len(c) < 2 {
		return t
	}
	pos := t * float64(len(c)-1)
	i := int(pos)
	if i >= len(c)-1 {
		return c[len(c)-1]
	}
	frac := pos - float64(i)
	return c[i] + (c[i+1]-c[i])*frac
}

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}

// Package animation holds per-frame animated parameters.
package animation

import "fmt"

// Oscillator is a scalar that moves by Step every frame and bounces
// between Min and Max.
type Oscillator struct {
	Min, Max float32
	Step     float32

	value     float32
	direction float32
}

func NewOscillator(min, max, step float32) (*Oscillator, error) {
	if min >= max {
		return nil, fmt.Errorf("oscillator bounds [%v, %v] are empty", min, max)
	}
	if step <= 0 {
		return nil, fmt.Errorf("oscillator step %v must be positive", step)
	}

	return &Oscillator{
		Min:       min,
		Max:       max,
		Step:      step,
		value:     min,
		direction: 1,
	}, nil
}

func (o *Oscillator) Value() float32 {
	return o.value
}

// Next advances the oscillator by one frame and returns the new value.
func (o *Oscillator) Next() float32 {
	o.value += o.Step * o.direction

	if o.value > o.Max {
		o.value = o.Max
		o.direction = -o.direction
	} else if o.value <= o.Min {
		o.value = o.Min
		o.direction = -o.direction
	}

	return o.value
}

package curves

import (
	"fmt"
	"math"

	"github.com/markusressel/pifan/internal/util"
)

// Breakpoint maps a temperature threshold (°C) to a fan duty cycle (percent).
type Breakpoint struct {
	Temp float64 `json:"temp"`
	Duty int     `json:"duty"`
}

// Curve is an immutable, ordered table of breakpoints. Temperatures between
// two breakpoints are mapped using linear interpolation, temperatures outside
// the table are clamped to the duty cycle of the nearest breakpoint.
type Curve struct {
	breakpoints []Breakpoint
}

// NewCurve creates a Curve from the given breakpoints.
// Breakpoints must be strictly increasing in temperature, non-decreasing
// in duty cycle, stay within [0..100] and end at 100.
func NewCurve(breakpoints []Breakpoint) (*Curve, error) {
	if len(breakpoints) < 2 {
		return nil, fmt.Errorf("curve needs at least 2 breakpoints, got %d", len(breakpoints))
	}

	for i, b := range breakpoints {
		if b.Duty < 0 || b.Duty > 100 {
			return nil, fmt.Errorf("duty cycle out of range [0..100] at breakpoint %d: %d", i, b.Duty)
		}
		if i == 0 {
			continue
		}
		previous := breakpoints[i-1]
		if b.Temp <= previous.Temp {
			return nil, fmt.Errorf("breakpoint temperatures must be strictly increasing: %.1f°C >= %.1f°C", previous.Temp, b.Temp)
		}
		if b.Duty < previous.Duty {
			return nil, fmt.Errorf("breakpoint duty cycles must be non-decreasing: %d%% > %d%%", previous.Duty, b.Duty)
		}
	}

	if breakpoints[len(breakpoints)-1].Duty != 100 {
		return nil, fmt.Errorf("last breakpoint must reach 100%%, got %d%%", breakpoints[len(breakpoints)-1].Duty)
	}

	curve := &Curve{
		breakpoints: append([]Breakpoint{}, breakpoints...),
	}
	return curve, nil
}

// Default returns the built-in fan curve:
// off below 40°C, 10% at 45°C, ramping up to full speed at 75°C.
func Default() *Curve {
	curve, err := NewCurve([]Breakpoint{
		{Temp: 40, Duty: 0},
		{Temp: 45, Duty: 10},
		{Temp: 75, Duty: 100},
	})
	if err != nil {
		panic(err)
	}
	return curve
}

// Evaluate maps the given temperature (°C) to a duty cycle in [0..100].
func (c *Curve) Evaluate(temp float64) int {
	first := c.breakpoints[0]
	if temp <= first.Temp {
		return first.Duty
	}

	last := c.breakpoints[len(c.breakpoints)-1]
	if temp >= last.Temp {
		return last.Duty
	}

	for i := 0; i < len(c.breakpoints)-1; i++ {
		current := c.breakpoints[i]
		next := c.breakpoints[i+1]

		if temp == current.Temp {
			return current.Duty
		}
		if temp > next.Temp {
			continue
		}

		// temp is somewhere in between current and next
		ratio := util.Ratio(temp, current.Temp, next.Temp)
		interpolation := float64(current.Duty) + ratio*float64(next.Duty-current.Duty)
		return int(math.Round(interpolation))
	}

	return last.Duty
}

// Breakpoints returns a copy of the breakpoint table of this curve.
func (c *Curve) Breakpoints() []Breakpoint {
	return append([]Breakpoint{}, c.breakpoints...)
}

// Points samples the curve at the given temperature step size,
// from the first to the last breakpoint.
func (c *Curve) Points(step float64) []float64 {
	first := c.breakpoints[0]
	last := c.breakpoints[len(c.breakpoints)-1]

	var values []float64
	for temp := first.Temp; temp <= last.Temp; temp += step {
		values = append(values, float64(c.Evaluate(temp)))
	}
	return values
}

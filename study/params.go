// seehuhn.de/go/trajectories - procedurally generated trajectory studies
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package study

import (
	"fmt"
	"math/rand/v2"
)

// Range is a closed interval of real numbers.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Sample returns a uniformly distributed value from the range.
func (r Range) Sample(rng *rand.Rand) float64 {
	return r.Min + (r.Max-r.Min)*rng.Float64()
}

// Contains reports whether x lies inside the closed interval.
func (r Range) Contains(x float64) bool {
	return r.Min <= x && x <= r.Max
}

// Valid reports whether Min <= Max.
func (r Range) Valid() bool {
	return r.Min <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// Params controls the geometry of a study.
// Angles are in degrees, lengths are fractions of the maximal vector length.
type Params struct {
	// BaseSeed is added to the study index to seed the random number
	// generator of each study.
	BaseSeed int64 `yaml:"base_seed"`

	// MaxLengthFraction gives the maximal vector length as a fraction of the
	// smaller cell dimension.
	MaxLengthFraction float64 `yaml:"max_length_fraction"`

	InitialAngle  Range `yaml:"initial_angle"`
	InitialLength Range `yaml:"initial_length"`

	// The start point is moved away from the cell center by up to
	// Jitter*JitterScale times the cell width (horizontally) and cell
	// height (vertically).
	Jitter      float64 `yaml:"jitter"`
	JitterScale float64 `yaml:"jitter_scale"`

	// Shift is the range for the angle between the initial and the final
	// vector.
	Shift       Range `yaml:"shift"`
	FinalLength Range `yaml:"final_length"`
}

// DefaultParams returns the parameters used for the "Systematic Reverie"
// sheet.
func DefaultParams() Params {
	return Params{
		BaseSeed:          42,
		MaxLengthFraction: 0.35,
		InitialAngle:      Range{20, 160},
		InitialLength:     Range{0.5, 0.75},
		Jitter:            0.15,
		JitterScale:       0.3,
		Shift:             Range{55, 125},
		FinalLength:       Range{0.65, 0.9},
	}
}

// Check returns a list of problems with the parameters.
// The result is empty if the parameters can be used.
func (p *Params) Check() []string {
	var res []string
	ranges := []struct {
		name string
		r    Range
	}{
		{"initial_angle", p.InitialAngle},
		{"initial_length", p.InitialLength},
		{"shift", p.Shift},
		{"final_length", p.FinalLength},
	}
	for _, x := range ranges {
		if !x.r.Valid() {
			res = append(res, fmt.Sprintf("%s: min %g > max %g", x.name, x.r.Min, x.r.Max))
		}
	}
	if p.MaxLengthFraction <= 0 {
		res = append(res, fmt.Sprintf("max_length_fraction: %g is not positive", p.MaxLengthFraction))
	}
	if p.InitialLength.Min < 0 || p.FinalLength.Min < 0 {
		res = append(res, "vector lengths must not be negative")
	}
	if p.Jitter < 0 || p.JitterScale < 0 {
		res = append(res, "jitter must not be negative")
	}
	if p.Shift.Min < 0 || p.Shift.Max > 180 {
		res = append(res, fmt.Sprintf("shift: %s not inside [0, 180]", p.Shift))
	}
	return res
}

// Style gives the stroke widths, marker sizes and label placement for the
// primitives of a study.  All values are in PDF points.
type Style struct {
	FeintWidth float64   `yaml:"feint_width"`
	FeintDash  []float64 `yaml:"feint_dash"`

	TransitionRadius float64 `yaml:"transition_radius"`
	TransitionWidth  float64 `yaml:"transition_width"`

	RealityWidth float64 `yaml:"reality_width"`
	EndRadius    float64 `yaml:"end_radius"`
	OriginRadius float64 `yaml:"origin_radius"`

	// The index label is placed at the cell center, moved left by
	// IndexShiftX and down by IndexDrop times the cell height.
	IndexSize   float64 `yaml:"index_size"`
	IndexShiftX float64 `yaml:"index_shift_x"`
	IndexDrop   float64 `yaml:"index_drop"`

	// The angle label is placed at the transition point, moved up and right
	// by AngleOffset.
	AngleSize   float64 `yaml:"angle_size"`
	AngleOffset float64 `yaml:"angle_offset"`
}

// DefaultStyle returns the default study style.
func DefaultStyle() Style {
	return Style{
		FeintWidth:       0.35,
		FeintDash:        []float64{1.5, 2.5},
		TransitionRadius: 1.2,
		TransitionWidth:  0.25,
		RealityWidth:     0.7,
		EndRadius:        1.8,
		OriginRadius:     0.8,
		IndexSize:        5,
		IndexShiftX:      8,
		IndexDrop:        0.42,
		AngleSize:        4,
		AngleOffset:      3,
	}
}

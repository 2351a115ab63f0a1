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

// Package study generates the two-vector figures of a trajectory study.
//
// A study starts with a tentative "feint" vector, pointing in a random
// direction, and continues from the end of that vector with a "reality"
// vector whose direction differs by a substantial angle.  The geometry of a
// study depends only on the seed, the study index and the cell it occupies;
// in particular, studies are independent of each other and of the order in
// which they are generated.
package study

import (
	"fmt"
	"math"
	"math/rand/v2"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Study is the geometry of one grid cell.
// All angles are in degrees, measured counter-clockwise from the positive
// x-axis.
type Study struct {
	Index int

	Center        vec.Vec2
	Width, Height float64 // cell size

	Start      vec.Vec2
	Transition vec.Vec2
	End        vec.Vec2

	MaxLength     float64
	InitialAngle  float64
	InitialLength float64

	// Shift is the sampled angle between the two vectors.  If CounterTurn
	// is set the final vector is rotated by -Shift, otherwise by +Shift.
	Shift       float64
	CounterTurn bool

	FinalAngle  float64
	FinalLength float64
}

// NewRand returns the random number generator for the study with the given
// index.  Generators for different studies are independent of each other.
func NewRand(baseSeed int64, index int) *rand.Rand {
	seed := uint64(baseSeed + int64(index))
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// New generates the study with the given index, using the random number
// generator returned by [NewRand].
func New(index int, center vec.Vec2, width, height float64, p *Params) *Study {
	return Generate(NewRand(p.BaseSeed, index), index, center, width, height, p)
}

// Generate computes the geometry of a study for a cell of the given size.
// Random values are drawn from rng in a fixed order, so that the result only
// depends on the state of rng and on the arguments.
func Generate(rng *rand.Rand, index int, center vec.Vec2, width, height float64, p *Params) *Study {
	s := &Study{
		Index:  index,
		Center: center,
		Width:  width,
		Height: height,
	}

	s.MaxLength = min(width, height) * p.MaxLengthFraction

	s.InitialAngle = p.InitialAngle.Sample(rng)
	s.InitialLength = p.InitialLength.Sample(rng) * s.MaxLength

	jitter := Range{-p.Jitter, p.Jitter}
	s.Start = vec.Vec2{
		X: center.X + jitter.Sample(rng)*width*p.JitterScale,
		Y: center.Y + jitter.Sample(rng)*height*p.JitterScale,
	}
	s.Transition = polar(s.Start, s.InitialLength, s.InitialAngle)

	s.Shift = p.Shift.Sample(rng)
	if rng.Float64() > 0.5 {
		s.FinalAngle = s.InitialAngle + s.Shift
	} else {
		s.FinalAngle = s.InitialAngle - s.Shift
		s.CounterTurn = true
	}
	s.FinalLength = p.FinalLength.Sample(rng) * s.MaxLength
	s.End = polar(s.Transition, s.FinalLength, s.FinalAngle)

	return s
}

// Delta returns the angle between the initial and the final vector,
// in the range [0, 180].
func (s *Study) Delta() float64 {
	return AngularDifference(s.InitialAngle, s.FinalAngle)
}

// AngularDifference returns the smaller of the two angles between the
// directions a and b, given in degrees.  The result is in the range [0, 180].
func AngularDifference(a, b float64) float64 {
	d := math.Mod(math.Abs(b-a), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Label returns the two-digit index label of the study.
func (s *Study) Label() string {
	return fmt.Sprintf("%02d", s.Index)
}

// DeltaLabel returns the annotation for the angular shift, e.g. "110°".
func (s *Study) DeltaLabel() string {
	return fmt.Sprintf("%.0f°", s.Delta())
}

// Extent returns the box which is guaranteed to contain the start,
// transition and end points of every study generated with parameters p in a
// cell of the given center and size.
func Extent(center vec.Vec2, width, height float64, p *Params) rect.Rect {
	maxLen := min(width, height) * p.MaxLengthFraction
	reach := (max(math.Abs(p.InitialLength.Min), math.Abs(p.InitialLength.Max)) +
		max(math.Abs(p.FinalLength.Min), math.Abs(p.FinalLength.Max))) * maxLen
	dx := p.Jitter*p.JitterScale*width + reach
	dy := p.Jitter*p.JitterScale*height + reach
	return rect.Rect{
		LLx: center.X - dx,
		LLy: center.Y - dy,
		URx: center.X + dx,
		URy: center.Y + dy,
	}
}

func polar(p vec.Vec2, length, angle float64) vec.Vec2 {
	phi := angle * math.Pi / 180
	return vec.Vec2{
		X: p.X + length*math.Cos(phi),
		Y: p.Y + length*math.Sin(phi),
	}
}

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

package composition

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/trajectories/scene"
	"seehuhn.de/go/trajectories/study"
)

// Flow controls the background layer of short, unconnected line segments.
type Flow struct {
	Seed   int64       `yaml:"seed"`
	Count  int         `yaml:"count"`
	Angle  study.Range `yaml:"angle"`  // degrees
	Length study.Range `yaml:"length"` // points
	Width  float64     `yaml:"width"`
	Alpha  float64     `yaml:"alpha"`
}

// DefaultFlow returns the default flow layer settings.
func DefaultFlow() Flow {
	return Flow{
		Seed:   100,
		Count:  45,
		Angle:  study.Range{Min: 0, Max: 360},
		Length: study.Range{Min: 0.25 * inch, Max: 0.65 * inch},
		Width:  0.12,
		Alpha:  0.25,
	}
}

// FlowSegment is one candidate segment of the flow layer.
type FlowSegment struct {
	From, To vec.Vec2
}

// FlowSegments samples the flow layer.  Candidates whose end point falls
// on or outside the page margins are rejected and not replaced, so that
// the returned slice may hold fewer than f.Count segments.
func FlowSegments(pg *Page, g *Grid, f *Flow) (drawn []FlowSegment, rejected int) {
	rng := study.NewRand(f.Seed, 0)

	work := pg.Work()
	xRange := study.Range{Min: 0, Max: work.URx - work.LLx}
	yRange := study.Range{Min: 0, Max: work.URy - work.LLy - g.FooterReserve}

	for range f.Count {
		from := vec.Vec2{
			X: pg.MarginH + xRange.Sample(rng),
			Y: pg.MarginV + yRange.Sample(rng),
		}
		phi := f.Angle.Sample(rng) * math.Pi / 180
		length := f.Length.Sample(rng)
		to := vec.Vec2{
			X: from.X + length*math.Cos(phi),
			Y: from.Y + length*math.Sin(phi),
		}

		if !insideMargins(pg, to) {
			rejected++
			continue
		}
		drawn = append(drawn, FlowSegment{From: from, To: to})
	}
	return drawn, rejected
}

func insideMargins(pg *Page, p vec.Vec2) bool {
	return pg.MarginH < p.X && p.X < pg.Width-pg.MarginH &&
		pg.MarginV < p.Y && p.Y < pg.Height-pg.MarginV
}

func (f *Flow) items(segments []FlowSegment) []scene.Item {
	res := make([]scene.Item, len(segments))
	for i, seg := range segments {
		res[i] = &scene.Line{
			From: seg.From,
			To:   seg.To,
			Stroke: scene.Stroke{
				Color: scene.Highlight,
				Width: f.Width,
			},
		}
	}
	return res
}

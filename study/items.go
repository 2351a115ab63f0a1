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
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/trajectories/scene"
)

// Items returns the drawing primitives for the study, in painting order:
// the dotted feint vector, the transition marker, the solid reality vector,
// the end marker, the origin dot, the index label and the angle label.
func (s *Study) Items(st *Style) []scene.Item {
	feint := &scene.Line{
		From: s.Start,
		To:   s.Transition,
		Stroke: scene.Stroke{
			Color: scene.Secondary,
			Width: st.FeintWidth,
			Dash:  slices.Clone(st.FeintDash),
		},
	}
	transition := &scene.Circle{
		Center: s.Transition,
		Radius: st.TransitionRadius,
		Fill:   scene.Highlight,
		// the feint's dash pattern is still in effect for the marker
		Outline: &scene.Stroke{
			Color: scene.Accent,
			Width: st.TransitionWidth,
			Dash:  slices.Clone(st.FeintDash),
		},
	}
	reality := &scene.Line{
		From: s.Transition,
		To:   s.End,
		Stroke: scene.Stroke{
			Color: scene.Primary,
			Width: st.RealityWidth,
		},
	}
	end := &scene.Circle{
		Center: s.End,
		Radius: st.EndRadius,
		Fill:   scene.Primary,
	}
	origin := &scene.Circle{
		Center: s.Start,
		Radius: st.OriginRadius,
		Fill:   scene.Secondary,
	}
	index := &scene.Text{
		Pos: vec.Vec2{
			X: s.Center.X - st.IndexShiftX,
			Y: s.Center.Y - s.Height*st.IndexDrop,
		},
		Text:  s.Label(),
		Font:  scene.MonoFont,
		Size:  st.IndexSize,
		Color: scene.Secondary,
	}
	angle := &scene.Text{
		Pos:   s.Transition.Add(vec.Vec2{X: st.AngleOffset, Y: st.AngleOffset}),
		Text:  s.DeltaLabel(),
		Font:  scene.MonoFont,
		Size:  st.AngleSize,
		Color: scene.Accent,
	}

	return []scene.Item{feint, transition, reality, end, origin, index, angle}
}

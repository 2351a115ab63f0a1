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

// Package scene describes one page of vector graphics as an ordered list of
// drawing primitives.
//
// A Scene does not depend on any output format.  Colours are given as
// palette roles and fonts as font roles; the renderers in the packages
// pdfout, svgout and pngout resolve these when the scene is written.
//
// Coordinates use the PDF convention: the origin is the bottom-left corner
// of the page, the y-axis points upwards, and one unit is one PostScript
// point (1/72 inch).
package scene

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Scene is a single page of drawing primitives, grouped into layers.
// Layers are painted in order, and so are the items within a layer.
type Scene struct {
	Width, Height float64
	Palette       Palette
	Layers        []*Layer
}

// New returns an empty scene with the given page size and palette.
func New(width, height float64, pal Palette) *Scene {
	return &Scene{
		Width:   width,
		Height:  height,
		Palette: pal,
	}
}

// AddLayer appends a new, fully opaque layer to the scene.
func (s *Scene) AddLayer(name string) *Layer {
	l := &Layer{Name: name, StrokeAlpha: 1}
	s.Layers = append(s.Layers, l)
	return l
}

// Layer returns the first layer with the given name, or nil if there is no
// such layer.
func (s *Scene) Layer(name string) *Layer {
	for _, l := range s.Layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Bounds returns the page rectangle.
func (s *Scene) Bounds() rect.Rect {
	return rect.Rect{URx: s.Width, URy: s.Height}
}

// Texts returns all text items of the scene, in painting order.
func (s *Scene) Texts() []*Text {
	var res []*Text
	for _, l := range s.Layers {
		for _, item := range l.Items {
			if t, ok := item.(*Text); ok {
				res = append(res, t)
			}
		}
	}
	return res
}

// Layer is a group of items which share a constant stroke opacity.
// Renderers paint each layer inside its own saved graphics state.
type Layer struct {
	Name string

	// StrokeAlpha is the constant opacity for stroking operations inside
	// the layer, from 0 (invisible) to 1 (opaque).
	StrokeAlpha float64

	Items []Item
}

// Add appends items to the layer.
func (l *Layer) Add(items ...Item) {
	l.Items = append(l.Items, items...)
}

// Item is one of *Rect, *Line, *Circle or *Text.
type Item interface {
	isItem()
}

// Rect is a filled, axis-parallel rectangle.
type Rect struct {
	Box  rect.Rect
	Fill Role
}

// Line is a stroked straight line segment.
type Line struct {
	From, To vec.Vec2
	Stroke   Stroke
}

// Circle is a filled circle, optionally with an outline.
type Circle struct {
	Center vec.Vec2
	Radius float64
	Fill   Role

	// Outline, if non-nil, is used to stroke the circle after filling.
	Outline *Stroke
}

// Text is a single line of text.
type Text struct {
	// Pos is the reference point on the baseline.  Which point of the
	// string is placed at Pos depends on Align.
	Pos   vec.Vec2
	Text  string
	Font  FontRole
	Size  float64
	Color Role
	Align Align
}

func (*Rect) isItem()   {}
func (*Line) isItem()   {}
func (*Circle) isItem() {}
func (*Text) isItem()   {}

// Stroke describes how a path is stroked.
type Stroke struct {
	Color Role
	Width float64

	// Dash is the dash pattern, in user space units.
	// A nil slice gives a solid line.
	Dash []float64
}

// Align selects which point of a text string is placed at [Text.Pos].
type Align int

// These are the supported text alignments.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Offset returns the amount by which the start of a string of the given
// width is moved to the left of the reference point.
func (a Align) Offset(width float64) float64 {
	switch a {
	case AlignCenter:
		return width / 2
	case AlignRight:
		return width
	default:
		return 0
	}
}

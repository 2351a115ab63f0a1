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

// Package pngout renders a [scene.Scene] into a raster image, for quick
// previews of a sheet.
//
// Paths are filled with the anti-aliasing rasterizer from
// golang.org/x/image/vector and text is drawn with the raster faces of the
// loaded fonts.  Strokes use butt caps and no joins, which is good enough
// for the straight segments on a study sheet.
package pngout

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/trajectories/fonts"
	"seehuhn.de/go/trajectories/scene"
)

// minStroke is the minimal half-width of a stroke, in pixels.
const minStroke = 0.3

// outlineSteps is the number of polygon edges used for dashed circles.
const outlineSteps = 64

var errNoFonts = errors.New("scene contains text but no fonts are loaded")

// WriteFile renders the scene at the given resolution and writes the image
// in PNG format.
func WriteFile(fname string, sc *scene.Scene, fs *fonts.Set, dpi float64) error {
	img, err := Render(sc, fs, dpi)
	if err != nil {
		return err
	}
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(fd, img)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

// Write renders the scene and writes the PNG image to w.
func Write(w io.Writer, sc *scene.Scene, fs *fonts.Set, dpi float64) error {
	img, err := Render(sc, fs, dpi)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Render draws the scene into a new image.  The resolution dpi gives the
// number of pixels per inch.
func Render(sc *scene.Scene, fs *fonts.Set, dpi float64) (*image.RGBA, error) {
	if dpi <= 0 {
		return nil, fmt.Errorf("invalid resolution %g dpi", dpi)
	}
	if fs == nil && len(sc.Texts()) > 0 {
		return nil, errNoFonts
	}

	scale := dpi / 72
	width := int(math.Ceil(sc.Width * scale))
	height := int(math.Ceil(sc.Height * scale))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	r := &renderer{
		sc:     sc,
		fs:     fs,
		img:    img,
		raster: vector.NewRasterizer(width, height),
		scale:  scale,
		width:  width,
		height: height,
	}
	for _, l := range sc.Layers {
		err := r.layer(l)
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", l.Name, err)
		}
	}
	return img, nil
}

type renderer struct {
	sc     *scene.Scene
	fs     *fonts.Set
	img    *image.RGBA
	raster *vector.Rasterizer
	scale  float64

	width, height int

	// strokeAlpha is the opacity of strokes in the current layer.
	strokeAlpha float64
}

func (r *renderer) layer(l *scene.Layer) error {
	r.strokeAlpha = l.StrokeAlpha
	for _, item := range l.Items {
		switch item := item.(type) {
		case *scene.Rect:
			b := item.Box
			r.begin()
			r.moveTo(b.LLx, b.LLy)
			r.lineTo(b.URx, b.LLy)
			r.lineTo(b.URx, b.URy)
			r.lineTo(b.LLx, b.URy)
			r.raster.ClosePath()
			r.paint(item.Fill, 1)
		case *scene.Line:
			r.stroke(item.From, item.To, &item.Stroke)
		case *scene.Circle:
			r.circle(item)
		case *scene.Text:
			err := r.text(item)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported item type %T", item)
		}
	}
	return nil
}

func (r *renderer) begin() {
	r.raster.Reset(r.width, r.height)
}

// device converts a point from PDF coordinates into pixel coordinates.
func (r *renderer) device(x, y float64) (float32, float32) {
	return float32(x * r.scale), float32(float64(r.height) - y*r.scale)
}

func (r *renderer) moveTo(x, y float64) {
	r.raster.MoveTo(r.device(x, y))
}

func (r *renderer) lineTo(x, y float64) {
	r.raster.LineTo(r.device(x, y))
}

// paint draws the accumulated path in the colour of the given role.
func (r *renderer) paint(role scene.Role, alpha float64) {
	src := image.NewUniform(r.color(role, alpha))
	r.raster.Draw(r.img, r.img.Bounds(), src, image.Point{})
}

func (r *renderer) color(role scene.Role, alpha float64) color.NRGBA {
	c := r.sc.Palette.Color(role)
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(alpha),
	}
}

func to8(x float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, x)) * 255))
}

// stroke draws a straight line, split into dashes if the stroke has a dash
// pattern.
func (r *renderer) stroke(from, to vec.Vec2, s *scene.Stroke) {
	w := math.Max(s.Width*r.scale/2, minStroke) / r.scale

	r.begin()
	for _, seg := range dashes(from, to, s.Dash) {
		r.segment(seg[0], seg[1], w)
	}
	r.paint(s.Color, r.strokeAlpha)
}

// segment adds the outline of a stroked line segment with half-width w to
// the current path.
func (r *renderer) segment(a, b vec.Vec2, w float64) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return
	}
	n := vec.Vec2{X: -d.Y / l * w, Y: d.X / l * w}

	p1 := a.Add(n)
	p2 := b.Add(n)
	p3 := b.Sub(n)
	p4 := a.Sub(n)
	r.moveTo(p1.X, p1.Y)
	r.lineTo(p2.X, p2.Y)
	r.lineTo(p3.X, p3.Y)
	r.lineTo(p4.X, p4.Y)
	r.raster.ClosePath()
}

// dashes splits the segment from a to b according to the dash pattern.
// The returned pieces are the "on" parts of the pattern.
func dashes(a, b vec.Vec2, pattern []float64) [][2]vec.Vec2 {
	return dashPolyline([]vec.Vec2{a, b}, pattern)
}

// dashPolyline splits the polyline through pts according to the dash
// pattern.  The pattern continues across the vertices.
func dashPolyline(pts []vec.Vec2, pattern []float64) [][2]vec.Vec2 {
	total := 0.0
	for _, d := range pattern {
		total += d
	}
	var res [][2]vec.Vec2
	if total <= 0 {
		for k := 0; k+1 < len(pts); k++ {
			res = append(res, [2]vec.Vec2{pts[k], pts[k+1]})
		}
		return res
	}

	i := 0
	left := pattern[0]
	for k := 0; k+1 < len(pts); k++ {
		a, b := pts[k], pts[k+1]
		length := b.Sub(a).Length()
		if length == 0 {
			continue
		}
		dir := b.Sub(a).Mul(1 / length)
		pos := 0.0
		for pos < length {
			end := math.Min(pos+left, length)
			if i%2 == 0 && end > pos {
				res = append(res, [2]vec.Vec2{a.Add(dir.Mul(pos)), a.Add(dir.Mul(end))})
			}
			left -= end - pos
			pos = end
			if left <= 0 {
				i++
				left = pattern[i%len(pattern)]
			}
		}
	}
	return res
}

// kappa is the distance of the Bézier control points for a quarter circle
// of radius 1.
const kappa = 0.5522847498307936

// circlePath adds a circle to the current path.  If reverse is true, the
// circle is traversed clockwise, which cuts a hole into a counter-clockwise
// shape.
func (r *renderer) circlePath(c vec.Vec2, radius float64, reverse bool) {
	k := kappa * radius
	sign := 1.0
	if reverse {
		sign = -1
	}

	r.moveTo(c.X+radius, c.Y)
	for q := range 4 {
		phi0 := float64(q) * math.Pi / 2 * sign
		phi1 := float64(q+1) * math.Pi / 2 * sign
		cos0, sin0 := math.Cos(phi0), math.Sin(phi0)
		cos1, sin1 := math.Cos(phi1), math.Sin(phi1)

		x1, y1 := r.device(c.X+radius*cos0-sign*k*sin0, c.Y+radius*sin0+sign*k*cos0)
		x2, y2 := r.device(c.X+radius*cos1+sign*k*sin1, c.Y+radius*sin1-sign*k*cos1)
		x3, y3 := r.device(c.X+radius*cos1, c.Y+radius*sin1)
		r.raster.CubeTo(x1, y1, x2, y2, x3, y3)
	}
	r.raster.ClosePath()
}

func (r *renderer) circle(c *scene.Circle) {
	r.begin()
	r.circlePath(c.Center, c.Radius, false)
	r.paint(c.Fill, 1)

	if c.Outline == nil {
		return
	}
	w := math.Max(c.Outline.Width*r.scale/2, minStroke) / r.scale
	r.begin()
	if len(c.Outline.Dash) > 0 {
		pts := make([]vec.Vec2, outlineSteps+1)
		for i := range pts {
			phi := 2 * math.Pi * float64(i) / outlineSteps
			pts[i] = c.Center.Add(vec.Vec2{X: math.Cos(phi), Y: math.Sin(phi)}.Mul(c.Radius))
		}
		for _, seg := range dashPolyline(pts, c.Outline.Dash) {
			r.segment(seg[0], seg[1], w)
		}
		r.paint(c.Outline.Color, r.strokeAlpha)
		return
	}
	r.circlePath(c.Center, c.Radius+w, false)
	if c.Radius > w {
		r.circlePath(c.Center, c.Radius-w, true)
	}
	r.paint(c.Outline.Color, r.strokeAlpha)
}

func (r *renderer) text(t *scene.Text) error {
	face, err := r.fs.Face(t.Font, t.Size*r.scale)
	if err != nil {
		return err
	}

	x := t.Pos.X
	if t.Align != scene.AlignLeft {
		x -= t.Align.Offset(r.fs.Width(t.Font, t.Size, t.Text))
	}
	px, py := r.device(x, t.Pos.Y)

	d := &xfont.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(r.color(t.Color, 1)),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(px * 64), Y: fixed.Int26_6(py * 64)},
	}
	d.DrawString(t.Text)
	return nil
}

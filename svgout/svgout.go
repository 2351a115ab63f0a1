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


// Package svgout writes a [scene.Scene] as an SVG document.
//
// The document is produced with github.com/ajstarks/svgo, using its
// floating point variant.  The SVG uses one user unit per PDF point and the
// y-axis is flipped, so that the output looks the same as the PDF rendition.
package svgout

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"seehuhn.de/go/trajectories/fonts"
	"seehuhn.de/go/trajectories/scene"
)

// WriteFile writes the scene to the named file.
// If fs is non-nil, the font family names are taken from the loaded fonts.
func WriteFile(fname string, sc *scene.Scene, fs *fonts.Set) error {
	buf := &bytes.Buffer{}
	draw(buf, sc, fs)
	return os.WriteFile(fname, buf.Bytes(), 0o644)
}

// Write writes the scene to w.
func Write(w io.Writer, sc *scene.Scene, fs *fonts.Set) error {
	ew := &errWriter{w: w}
	draw(ew, sc, fs)
	return ew.err
}

// Render returns the SVG document for the scene.
func Render(sc *scene.Scene, fs *fonts.Set) string {
	buf := &strings.Builder{}
	draw(buf, sc, fs)
	return buf.String()
}

func draw(w io.Writer, sc *scene.Scene, fs *fonts.Set) {
	r := &renderer{
		sc:  sc,
		fs:  fs,
		out: svg.New(w),
	}

	r.out.Start(sc.Width, sc.Height)
	for _, l := range sc.Layers {
		r.layer(l)
	}
	r.out.End()
}

// errWriter keeps the first write error, since svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

type renderer struct {
	sc  *scene.Scene
	fs  *fonts.Set
	out *svg.SVG
}

func (r *renderer) layer(l *scene.Layer) {
	g := []string{attr("id", l.Name)}
	if l.StrokeAlpha < 1 {
		g = append(g, attr("stroke-opacity", num(l.StrokeAlpha)))
	}
	r.out.Group(g...)

	for _, item := range l.Items {
		switch item := item.(type) {
		case *scene.Rect:
			b := item.Box
			r.out.Rect(b.LLx, r.y(b.URy), b.URx-b.LLx, b.URy-b.LLy,
				attr("fill", r.color(item.Fill)))
		case *scene.Line:
			s := append([]string{`fill="none"`}, r.stroke(&item.Stroke)...)
			r.out.Line(item.From.X, r.y(item.From.Y), item.To.X, r.y(item.To.Y), s...)
		case *scene.Circle:
			s := []string{attr("fill", r.color(item.Fill))}
			if item.Outline != nil {
				s = append(s, r.stroke(item.Outline)...)
			}
			r.out.Circle(item.Center.X, r.y(item.Center.Y), item.Radius, s...)
		case *scene.Text:
			r.text(item)
		}
	}

	r.out.Gend()
}

func (r *renderer) text(t *scene.Text) {
	s := []string{
		attr("font-family", r.family(t.Font)),
		attr("font-size", num(t.Size)),
		attr("fill", r.color(t.Color)),
	}
	switch t.Align {
	case scene.AlignCenter:
		s = append(s, `text-anchor="middle"`)
	case scene.AlignRight:
		s = append(s, `text-anchor="end"`)
	}
	r.out.Text(t.Pos.X, r.y(t.Pos.Y), t.Text, s...)
}

// family returns the CSS font family list for a font role.
func (r *renderer) family(role scene.FontRole) string {
	generic := "monospace"
	if role == scene.TitleFont {
		generic = "sans-serif"
	}
	if r.fs == nil {
		return generic
	}
	return r.fs.Family(role) + ", " + generic
}

func (r *renderer) stroke(s *scene.Stroke) []string {
	res := []string{
		attr("stroke", r.color(s.Color)),
		attr("stroke-width", num(s.Width)),
	}
	if len(s.Dash) > 0 {
		parts := make([]string, len(s.Dash))
		for i, d := range s.Dash {
			parts[i] = num(d)
		}
		res = append(res, attr("stroke-dasharray", strings.Join(parts, " ")))
	}
	return res
}

func (r *renderer) color(role scene.Role) string {
	return r.sc.Palette.Color(role).Hex()
}

// y converts a PDF y-coordinate into an SVG one.
func (r *renderer) y(y float64) float64 {
	return r.sc.Height - y
}

// attr formats an XML attribute.  svgo copies arguments containing "="
// verbatim into the element, so the value must be escaped here.
func attr(name, value string) string {
	buf := &strings.Builder{}
	_ = xml.EscapeText(buf, []byte(value))
	return fmt.Sprintf(`%s="%s"`, name, buf.String())
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

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

// Package pdfout writes a [scene.Scene] as a single-page PDF file.
package pdfout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/extgstate"

	"seehuhn.de/go/trajectories/fonts"
	"seehuhn.de/go/trajectories/scene"
)

// Options control the PDF output.
type Options struct {
	// HumanReadable disables compression and object streams, and formats
	// the XMP packet for easier reading.
	HumanReadable bool

	// Language is used for text layout and for the language alternatives
	// in the metadata.  The zero value gives English.
	Language language.Tag

	// Metadata, if non-nil, is written into an XMP metadata stream.
	Metadata *Metadata
}

var errNoFonts = errors.New("scene contains text but no fonts are loaded")

// WriteFile renders the scene and writes it to the named file.
// The PDF is assembled in memory first, so that no file is created if
// rendering fails.
func WriteFile(fname string, sc *scene.Scene, fs *fonts.Set, opt *Options) error {
	buf := &bytes.Buffer{}
	err := Write(buf, sc, fs, opt)
	if err != nil {
		return err
	}
	return os.WriteFile(fname, buf.Bytes(), 0o644)
}

// Write renders the scene as a PDF 1.7 document with a single page.
func Write(w io.Writer, sc *scene.Scene, fs *fonts.Set, opt *Options) error {
	if opt == nil {
		opt = &Options{}
	}
	if fs == nil && len(sc.Texts()) > 0 {
		return errNoFonts
	}

	loc := opt.Language
	if loc == (language.Tag{}) {
		loc = language.English
	}

	pageSize := &pdf.Rectangle{URx: sc.Width, URy: sc.Height}
	wOpt := &pdf.WriterOptions{
		HumanReadable: opt.HumanReadable,
	}
	doc, err := document.WriteSinglePage(w, pageSize, pdf.V1_7, wOpt)
	if err != nil {
		return err
	}

	r := &renderer{
		page:  doc,
		sc:    sc,
		fs:    fs,
		loc:   loc,
		fonts: make(map[scene.FontRole]font.Instance),
	}
	for _, l := range sc.Layers {
		err := r.layer(l)
		if err != nil {
			return fmt.Errorf("layer %q: %w", l.Name, err)
		}
	}
	if doc.Err != nil {
		return doc.Err
	}

	if opt.Metadata != nil {
		err = writeMetadata(doc.Out, opt.Metadata, loc, opt.HumanReadable)
		if err != nil {
			return fmt.Errorf("metadata: %w", err)
		}
	}

	return doc.Close()
}

type renderer struct {
	page  *document.Page
	sc    *scene.Scene
	fs    *fonts.Set
	loc   language.Tag
	fonts map[scene.FontRole]font.Instance
}

func (r *renderer) color(role scene.Role) color.Color {
	c := r.sc.Palette.Color(role)
	return color.DeviceRGB(c.R, c.G, c.B)
}

// layer paints the items of l inside a saved graphics state.  The state
// is restored also when an item fails.
func (r *renderer) layer(l *scene.Layer) (err error) {
	page := r.page
	page.PushGraphicsState()
	defer func() {
		page.PopGraphicsState()
		if err == nil {
			err = page.Err
		}
	}()

	if l.StrokeAlpha < 1 {
		page.SetExtGState(&extgstate.ExtGState{
			Set:         graphics.StateStrokeAlpha,
			StrokeAlpha: l.StrokeAlpha,
			SingleUse:   true,
		})
	}

	for _, item := range l.Items {
		switch item := item.(type) {
		case *scene.Rect:
			page.SetFillColor(r.color(item.Fill))
			b := item.Box
			page.Rectangle(b.LLx, b.LLy, b.URx-b.LLx, b.URy-b.LLy)
			page.Fill()
		case *scene.Line:
			r.setStroke(&item.Stroke)
			page.MoveTo(item.From.X, item.From.Y)
			page.LineTo(item.To.X, item.To.Y)
			page.Stroke()
		case *scene.Circle:
			page.SetFillColor(r.color(item.Fill))
			page.Circle(item.Center.X, item.Center.Y, item.Radius)
			if item.Outline != nil {
				r.setStroke(item.Outline)
				page.FillAndStroke()
			} else {
				page.Fill()
			}
		case *scene.Text:
			err = r.text(item)
		default:
			err = fmt.Errorf("unsupported item type %T", item)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) setStroke(s *scene.Stroke) {
	page := r.page
	page.SetStrokeColor(r.color(s.Color))
	page.SetLineWidth(s.Width)
	page.SetLineDash(s.Dash, 0)
}

func (r *renderer) text(t *scene.Text) error {
	F, err := r.font(t.Font)
	if err != nil {
		return err
	}

	x := t.Pos.X
	if t.Align != scene.AlignLeft {
		x -= t.Align.Offset(r.fs.Width(t.Font, t.Size, t.Text))
	}

	page := r.page
	page.TextBegin()
	page.TextSetFont(F, t.Size)
	page.SetFillColor(r.color(t.Color))
	page.TextFirstLine(x, t.Pos.Y)
	page.TextShow(t.Text)
	page.TextEnd()
	return nil
}

func (r *renderer) font(role scene.FontRole) (font.Instance, error) {
	if F, ok := r.fonts[role]; ok {
		return F, nil
	}
	F, err := r.fs.PDF(role, r.loc)
	if err != nil {
		return nil, err
	}
	r.fonts[role] = F
	return F, nil
}

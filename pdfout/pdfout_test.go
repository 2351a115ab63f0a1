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

package pdfout

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font"

	"seehuhn.de/go/trajectories/composition"
	"seehuhn.de/go/trajectories/fonts"
	"seehuhn.de/go/trajectories/scene"
)

func TestWriteSheet(t *testing.T) {
	res, err := composition.Compose(composition.Default())
	if err != nil {
		t.Fatal(err)
	}
	fs, err := fonts.GoFonts()
	if err != nil {
		t.Fatal(err)
	}
	defer fs.Close()

	opt := &Options{
		HumanReadable: true,
		Metadata: &Metadata{
			Title:    "Systematic Reverie",
			Author:   "Test Author",
			Keywords: []string{"vector studies", "generative"},
			Producer: "trajectories test",
			Created:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	}
	buf := &bytes.Buffer{}
	err = Write(buf, res.Scene, fs, opt)
	if err != nil {
		t.Fatal(err)
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF-1.7")) {
		t.Errorf("wrong header %q", out[:min(len(out), 10)])
	}
	if !bytes.Contains(bytes.TrimSpace(out[len(out)-16:]), []byte("%%EOF")) {
		t.Error("missing end-of-file marker")
	}
	for _, s := range []string{"Systematic Reverie", "Test Author", "vector studies, generative", "trajectories test"} {
		if !bytes.Contains(out, []byte(s)) {
			t.Errorf("metadata %q not found", s)
		}
	}
}

func TestWriteNoMetadata(t *testing.T) {
	sc := scene.New(100, 100, scene.Archival)
	l := sc.AddLayer("lines")
	l.StrokeAlpha = 0.5
	l.Add(&scene.Line{
		From:   vec.Vec2{X: 10, Y: 10},
		To:     vec.Vec2{X: 90, Y: 90},
		Stroke: scene.Stroke{Color: scene.Primary, Width: 1, Dash: []float64{2, 1}},
	})

	buf := &bytes.Buffer{}
	err := Write(buf, sc, nil, &Options{HumanReadable: true})
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(buf.Bytes(), []byte("/Metadata")) {
		t.Error("unexpected metadata stream")
	}
}

func TestWriteFileNoFonts(t *testing.T) {
	sc := scene.New(100, 100, scene.Archival)
	sc.AddLayer("text").Add(&scene.Text{Text: "x", Size: 10})

	fname := filepath.Join(t.TempDir(), "out.pdf")
	err := WriteFile(fname, sc, nil, nil)
	if err != errNoFonts {
		t.Errorf("got error %v", err)
	}
	if _, err := os.Stat(fname); !os.IsNotExist(err) {
		t.Error("output file created for failed run")
	}
}

func TestWriteFile(t *testing.T) {
	res, err := composition.Compose(composition.Default())
	if err != nil {
		t.Fatal(err)
	}
	fs, err := fonts.GoFonts()
	if err != nil {
		t.Fatal(err)
	}
	defer fs.Close()

	fname := filepath.Join(t.TempDir(), "sheet.pdf")
	err = WriteFile(fname, res.Scene, fs, nil)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("not a PDF file")
	}
}

// unknownItem is an item type which the PDF renderer does not know.
type unknownItem struct {
	*scene.Rect
}

func TestLayerErrorRestoresState(t *testing.T) {
	sc := scene.New(100, 100, scene.Archival)
	l := sc.AddLayer("broken")
	l.StrokeAlpha = 0.5
	l.Add(
		&scene.Rect{Box: sc.Bounds(), Fill: scene.Background},
		unknownItem{&scene.Rect{}},
	)

	buf := &bytes.Buffer{}
	page, err := document.WriteSinglePage(buf, &pdf.Rectangle{URx: 100, URy: 100}, pdf.V1_7, nil)
	if err != nil {
		t.Fatal(err)
	}
	r := &renderer{
		page:  page,
		sc:    sc,
		fonts: make(map[scene.FontRole]font.Instance),
	}

	if err := r.layer(l); err == nil {
		t.Fatal("unknown item accepted")
	}
	if page.Err != nil {
		t.Fatalf("unexpected builder error %v", page.Err)
	}

	// the layer's graphics state has been popped, so another pop is
	// unbalanced
	page.PopGraphicsState()
	if page.Err == nil {
		t.Error("graphics state was left on the stack")
	}
}

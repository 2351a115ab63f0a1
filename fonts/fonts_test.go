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

package fonts

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"

	"seehuhn.de/go/trajectories/scene"
)

func TestGoFonts(t *testing.T) {
	s, err := Load("", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	sources := map[scene.FontRole]string{
		scene.TitleFont:    "Go Regular",
		scene.MonoFont:     "Go Mono",
		scene.MonoBoldFont: "Go Mono Bold",
		scene.DataFont:     "Go Mono",
	}
	for role, want := range sources {
		if got := s.Source(role); got != want {
			t.Errorf("%s: source %q, want %q", role, got, want)
		}
	}
	if fam := s.Family(scene.MonoFont); fam != "Go Mono" {
		t.Errorf("mono family %q", fam)
	}
}

func TestWidth(t *testing.T) {
	s, err := GoFonts()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	one := s.Width(scene.MonoFont, 10, "0")
	if one <= 0 || one > 10 {
		t.Fatalf("implausible glyph width %g", one)
	}
	// Go Mono is a fixed-pitch font
	five := s.Width(scene.MonoFont, 10, "n = 2")
	if math.Abs(five-5*one) > 1e-6 {
		t.Errorf("width of five glyphs %g, want %g", five, 5*one)
	}
	// widths scale with the font size
	if w := s.Width(scene.MonoFont, 20, "0"); math.Abs(w-2*one) > 1e-6 {
		t.Errorf("width at 20pt %g, want %g", w, 2*one)
	}
	if w := s.Width(scene.TitleFont, 10, ""); w != 0 {
		t.Errorf("empty string has width %g", w)
	}
}

func TestWidthAllRoles(t *testing.T) {
	s, err := GoFonts()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	for _, role := range scene.AllFonts {
		if s.entries[role].measure == nil {
			t.Errorf("%s: no measuring face after loading", role)
		}
		if w := s.Width(role, 6, "Δθ: 55°"); w <= 0 {
			t.Errorf("%s: width %g", role, w)
		}
	}
	// the Go Regular title font is proportional
	if i, w := s.Width(scene.TitleFont, 10, "i"), s.Width(scene.TitleFont, 10, "W"); i >= w {
		t.Errorf("width of i (%g) not less than width of W (%g)", i, w)
	}
	if len(s.faces) != 0 {
		t.Errorf("measuring created %d raster faces", len(s.faces))
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	names := map[scene.FontRole]string{
		scene.TitleFont:    "title.ttf",
		scene.MonoFont:     "mono.ttf",
		scene.MonoBoldFont: "mono-bold.ttf",
		scene.DataFont:     "data.ttf",
	}
	for role, name := range names {
		data := gomono.TTF
		if role == scene.TitleFont {
			data = goregular.TTF
		}
		err := os.WriteFile(filepath.Join(dir, name), data, 0o644)
		if err != nil {
			t.Fatal(err)
		}
	}

	s, err := Load(dir, func(r scene.FontRole) string { return names[r] })
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if got := s.Source(scene.DataFont); got != filepath.Join(dir, "data.ttf") {
		t.Errorf("data font loaded from %q", got)
	}
	if fam := s.Family(scene.TitleFont); fam != "Go" {
		t.Errorf("title family %q", fam)
	}
	if len(s.Data(scene.MonoFont)) != len(gomono.TTF) {
		t.Error("wrong font data")
	}
}

func TestLoadMissing(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "WorkSans-Regular.ttf"), goregular.TTF, 0o644)
	if err != nil {
		t.Fatal(err)
	}

	names := func(r scene.FontRole) string {
		if r == scene.TitleFont {
			return "WorkSans-Regular.ttf"
		}
		return "GeistMono-Regular.ttf"
	}
	_, err = Load(dir, names)
	if err == nil {
		t.Fatal("missing font file accepted")
	}
	msg := err.Error()
	if !strings.Contains(msg, "mono") || !strings.Contains(msg, "GeistMono-Regular.ttf") {
		t.Errorf("error %q does not name role and file", msg)
	}
}

func TestLoadGarbage(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "bad.ttf"), []byte("not a font"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Load(dir, func(scene.FontRole) string { return "bad.ttf" })
	if err == nil {
		t.Error("invalid font file accepted")
	}
}

func TestPDF(t *testing.T) {
	s, err := GoFonts()
	if err != nil {
		t.Fatal(err)
	}
	for _, role := range scene.AllFonts {
		F, err := s.PDF(role, language.English)
		if err != nil {
			t.Errorf("%s: %v", role, err)
		} else if F == nil {
			t.Errorf("%s: no font", role)
		}
	}
}

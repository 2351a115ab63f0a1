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

// Package fonts loads the four fonts used on a study sheet.
//
// Every font is held in memory as the raw file data.  The same data feeds
// the PDF output (via seehuhn.de/go/sfnt and the PDF font packages), the
// raster preview (via golang.org/x/image/font/opentype), and the text
// measurements used to centre and right-align labels.
package fonts

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/trajectories/scene"
)

// Set holds one font for each [scene.FontRole].
type Set struct {
	entries map[scene.FontRole]*entry
	faces   map[faceKey]xfont.Face
}

type entry struct {
	source string // file name, or the name of a built-in font
	data   []byte
	info   *sfnt.Font
	raster *opentype.Font

	// measure is an unhinted face at measureSize, used by [Set.Width].
	measure xfont.Face
}

type faceKey struct {
	role scene.FontRole
	size float64
}

// builtin gives the Go fonts which stand in when no font directory is
// configured.
var builtin = map[scene.FontRole]struct {
	name string
	data []byte
}{
	scene.TitleFont:    {"Go Regular", goregular.TTF},
	scene.MonoFont:     {"Go Mono", gomono.TTF},
	scene.MonoBoldFont: {"Go Mono Bold", gomonobold.TTF},
	scene.DataFont:     {"Go Mono", gomono.TTF},
}

// Load reads the fonts for all roles from the directory dir.  The function
// fileName maps each role to a file name inside dir.
//
// If dir is empty, the Go fonts are used instead and fileName is not
// called.
func Load(dir string, fileName func(scene.FontRole) string) (*Set, error) {
	if dir == "" {
		return GoFonts()
	}

	s := newSet()
	for _, role := range scene.AllFonts {
		name := fileName(role)
		if name == "" {
			return nil, fmt.Errorf("%s font: no file name given", role)
		}
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s font %q: %w", role, name, err)
		}
		err = s.add(role, path, data)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// GoFonts returns a set made from the Go font family.
func GoFonts() (*Set, error) {
	s := newSet()
	for _, role := range scene.AllFonts {
		b := builtin[role]
		err := s.add(role, b.name, b.data)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func newSet() *Set {
	return &Set{
		entries: make(map[scene.FontRole]*entry),
		faces:   make(map[faceKey]xfont.Face),
	}
}

func (s *Set) add(role scene.FontRole, source string, data []byte) error {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s font %q: %w", role, source, err)
	}
	raster, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("%s font %q: %w", role, source, err)
	}
	measure, err := opentype.NewFace(raster, &opentype.FaceOptions{
		Size:    measureSize,
		DPI:     72,
		Hinting: xfont.HintingNone,
	})
	if err != nil {
		return fmt.Errorf("%s font %q: %w", role, source, err)
	}
	s.entries[role] = &entry{
		source:  source,
		data:    data,
		info:    info,
		raster:  raster,
		measure: measure,
	}
	return nil
}

func (s *Set) get(role scene.FontRole) *entry {
	e, ok := s.entries[role]
	if !ok {
		panic(fmt.Sprintf("font role %s not loaded", role))
	}
	return e
}

// Data returns the raw font file for the given role.
func (s *Set) Data(role scene.FontRole) []byte {
	return s.get(role).data
}

// Source returns the file the font was loaded from, or the name of the
// built-in font.
func (s *Set) Source(role scene.FontRole) string {
	return s.get(role).source
}

// Family returns the font family name, as stored in the font file.
func (s *Set) Family(role scene.FontRole) string {
	return s.get(role).info.FamilyName
}

// Face returns a raster font face at the given size in pixels.
// Faces are cached and must not be closed by the caller.
func (s *Set) Face(role scene.FontRole, size float64) (xfont.Face, error) {
	key := faceKey{role, size}
	if face, ok := s.faces[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(s.get(role).raster, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("%s font at %gpx: %w", role, size, err)
	}
	s.faces[key] = face
	return face, nil
}

// measureSize is the font size at which text widths are measured.
// Unhinted advances scale linearly, so one size serves all.
const measureSize = 1000

// Width returns the advance width of s, set in the given font and size.
func (s *Set) Width(role scene.FontRole, size float64, text string) float64 {
	adv := xfont.MeasureString(s.get(role).measure, text)
	return float64(adv) / 64 * size / measureSize
}

// Close releases the raster faces.  The set must not be used afterwards.
func (s *Set) Close() error {
	for key, face := range s.faces {
		face.Close()
		delete(s.faces, key)
	}
	for _, e := range s.entries {
		e.measure.Close()
	}
	return nil
}

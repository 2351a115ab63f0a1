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
	"fmt"

	"golang.org/x/text/language"

	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/cff"
	"seehuhn.de/go/pdf/font/truetype"

	"seehuhn.de/go/trajectories/scene"
)

// PDF returns the font for the given role as a simple PDF font.
// Both TrueType and OpenType/CFF fonts are supported.
func (s *Set) PDF(role scene.FontRole, loc language.Tag) (font.Instance, error) {
	info := s.get(role).info
	opt := &font.Options{
		Language: loc,
	}

	var F font.Instance
	var err error
	if info.IsCFF() {
		F, err = cff.NewSimple(info, opt)
	} else {
		F, err = truetype.NewSimple(info, opt)
	}
	if err != nil {
		return nil, fmt.Errorf("%s font %q: %w", role, s.get(role).source, err)
	}
	return F, nil
}

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

package scene

import "fmt"

// FontRole identifies one of the fonts used on the page.
type FontRole int

// The font roles.  Title is used for the heading, Mono for all other
// annotations.  MonoBold and Data are loaded alongside and are available to
// scenes which need them.
const (
	TitleFont FontRole = iota
	MonoFont
	MonoBoldFont
	DataFont
)

// AllFonts lists the font roles in loading order.
var AllFonts = []FontRole{TitleFont, MonoFont, MonoBoldFont, DataFont}

func (f FontRole) String() string {
	switch f {
	case TitleFont:
		return "title"
	case MonoFont:
		return "mono"
	case MonoBoldFont:
		return "mono-bold"
	case DataFont:
		return "data"
	default:
		return fmt.Sprintf("FontRole(%d)", int(f))
	}
}

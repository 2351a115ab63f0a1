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

import (
	"fmt"
	"strings"
)

// RGB is a colour with red, green and blue components in the range [0, 1].
type RGB struct {
	R, G, B float64
}

// Hex returns the colour in the form "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

func to8(x float64) uint8 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 255
	default:
		return uint8(x*255 + 0.5)
	}
}

// Role names one of the five palette entries.
type Role int

// The palette roles.
const (
	Primary Role = iota
	Secondary
	Accent
	Highlight
	Background

	numRoles
)

var roleNames = [numRoles]string{
	"primary",
	"secondary",
	"accent",
	"highlight",
	"background",
}

func (r Role) String() string {
	if r < 0 || r >= numRoles {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// ParseRole converts a role name, as returned by [Role.String], back into a
// Role.
func ParseRole(s string) (Role, error) {
	for i, name := range roleNames {
		if strings.EqualFold(s, name) {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("unknown palette role %q", s)
}

// Palette holds one colour for each role.
type Palette struct {
	Primary    RGB `yaml:"primary"`
	Secondary  RGB `yaml:"secondary"`
	Accent     RGB `yaml:"accent"`
	Highlight  RGB `yaml:"highlight"`
	Background RGB `yaml:"background"`
}

// Archival is the default palette: faded institutional colours on cream
// paper.
var Archival = Palette{
	Primary:    RGB{0.15, 0.18, 0.22}, // charcoal slate
	Secondary:  RGB{0.48, 0.44, 0.42}, // warm grey
	Accent:     RGB{0.72, 0.68, 0.62}, // taupe
	Highlight:  RGB{0.88, 0.84, 0.78}, // sand
	Background: RGB{0.97, 0.96, 0.94}, // cream
}

// Color returns the colour for the given role.
func (p *Palette) Color(r Role) RGB {
	switch r {
	case Primary:
		return p.Primary
	case Secondary:
		return p.Secondary
	case Accent:
		return p.Accent
	case Highlight:
		return p.Highlight
	case Background:
		return p.Background
	}
	panic(fmt.Sprintf("invalid palette role %d", int(r)))
}

// Check verifies that all colour components are in the range [0, 1].
func (p *Palette) Check() error {
	for r := Primary; r < numRoles; r++ {
		c := p.Color(r)
		for _, x := range []float64{c.R, c.G, c.B} {
			if x < 0 || x > 1 {
				return fmt.Errorf("palette %s: component %g out of range", r, x)
			}
		}
	}
	return nil
}

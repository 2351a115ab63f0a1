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

package config

import (
	"fmt"
	"strings"

	"seehuhn.de/go/trajectories/composition"
)

// Error lists the problems found in a configuration.
type Error struct {
	Problems []string
}

func (err *Error) Error() string {
	if len(err.Problems) == 1 {
		return "invalid configuration: " + err.Problems[0]
	}
	return "invalid configuration:\n  " + strings.Join(err.Problems, "\n  ")
}

// Validate checks the configuration for values which would make the sheet
// impossible to draw.  If problems are found, the returned error is of type
// [*Error].
func (c *Config) Validate() error {
	var bad []string
	add := func(format string, args ...any) {
		bad = append(bad, fmt.Sprintf(format, args...))
	}

	if c.Output == "" {
		add("output: no file name given")
	}
	if c.PNG != "" && c.DPI <= 0 {
		add("dpi: %g is not positive", c.DPI)
	}

	w, h, err := c.PageSize()
	if err != nil {
		add("page: %v", err)
	}
	if c.Page.MarginH < 0 || c.Page.MarginV < 0 {
		add("page: margins must not be negative")
	}

	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		add("grid: %d rows and %d columns", c.Grid.Rows, c.Grid.Cols)
	}
	if c.Grid.Count < 0 {
		add("grid: count %d is negative", c.Grid.Count)
	}
	if c.Grid.FooterReserve < 0 || c.Grid.TopOffset < 0 {
		add("grid: footer_reserve and top_offset must not be negative")
	}
	if err == nil && c.Grid.Rows > 0 && c.Grid.Cols > 0 {
		pg := composition.Page{
			Width:   w,
			Height:  h,
			MarginH: c.Page.MarginH * inch,
			MarginV: c.Page.MarginV * inch,
		}
		g := composition.Grid{
			Rows:          c.Grid.Rows,
			Cols:          c.Grid.Cols,
			FooterReserve: c.Grid.FooterReserve * inch,
			TopOffset:     c.Grid.TopOffset * inch,
		}
		cw, ch := composition.CellSize(&pg, &g)
		// the last row must end above the bottom margin
		bottom := pg.Height - pg.MarginV - g.TopOffset - float64(g.Rows)*ch
		if cw <= 0 || ch <= 0 {
			add("page: margins leave no work area")
		} else if bottom < pg.MarginV-1e-9 {
			add("grid: top_offset %gin pushes the last row into the bottom margin", c.Grid.TopOffset)
		}
	}

	for _, p := range c.Study.Check() {
		add("study: %s", p)
	}
	if c.Style.FeintWidth <= 0 || c.Style.RealityWidth <= 0 {
		add("style: stroke widths must be positive")
	}
	for _, d := range c.Style.FeintDash {
		if d < 0 {
			add("style: negative dash length %g", d)
			break
		}
	}

	if c.Flow.Count < 0 {
		add("flow: count %d is negative", c.Flow.Count)
	}
	if !c.Flow.Angle.Valid() || !c.Flow.Length.Valid() {
		add("flow: inverted range")
	}
	if c.Flow.Alpha < 0 || c.Flow.Alpha > 1 {
		add("flow: alpha %g not in [0, 1]", c.Flow.Alpha)
	}

	if err := c.Palette.Check(); err != nil {
		add("%v", err)
	}

	if bad != nil {
		return &Error{Problems: bad}
	}
	return nil
}

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

package composition

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Page gives the page size and the margins, in PDF points.
type Page struct {
	Width, Height float64

	// MarginH is the left and right margin, MarginV is the top and bottom
	// margin.
	MarginH, MarginV float64
}

// Work returns the area inside the margins.
func (p *Page) Work() rect.Rect {
	return rect.Rect{
		LLx: p.MarginH,
		LLy: p.MarginV,
		URx: p.Width - p.MarginH,
		URy: p.Height - p.MarginV,
	}
}

// Grid describes the arrangement of studies on the page.
type Grid struct {
	Rows, Cols int

	// Count is the number of studies.  If Count is zero, Rows*Cols studies
	// are drawn.  Cells beyond Count stay empty.
	Count int

	// FooterReserve is the height kept free below the grid for the bottom
	// annotations.
	FooterReserve float64

	// TopOffset is the distance between the top margin and the first row.
	TopOffset float64
}

// Total returns the number of studies in the grid.
func (g *Grid) Total() int {
	n := g.Rows * g.Cols
	if g.Count > 0 && g.Count < n {
		return g.Count
	}
	return n
}

// Cell is one position of the grid.
type Cell struct {
	Index    int // 1-based, row-major
	Row, Col int

	Center        vec.Vec2
	Width, Height float64
}

// CellSize returns the width and height of a single grid cell.
func CellSize(pg *Page, g *Grid) (width, height float64) {
	work := pg.Work()
	width = (work.URx - work.LLx) / float64(g.Cols)
	height = (work.URy - work.LLy - g.FooterReserve) / float64(g.Rows)
	return width, height
}

// Cells returns the occupied grid cells in row-major order.
func Cells(pg *Page, g *Grid) []Cell {
	if g.Rows <= 0 || g.Cols <= 0 {
		return nil
	}

	w, h := CellSize(pg, g)
	top := pg.Height - pg.MarginV - g.TopOffset
	total := g.Total()

	res := make([]Cell, 0, total)
	index := 1
	for row := range g.Rows {
		y := top - float64(row)*h - h/2
		for col := range g.Cols {
			if index > total {
				return res
			}
			x := pg.MarginH + float64(col)*w + w/2
			res = append(res, Cell{
				Index:  index,
				Row:    row,
				Col:    col,
				Center: vec.Vec2{X: x, Y: y},
				Width:  w,
				Height: h,
			})
			index++
		}
	}
	return res
}

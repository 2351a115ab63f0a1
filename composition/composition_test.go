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
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/trajectories/scene"
	"seehuhn.de/go/trajectories/study"
)

func TestCells(t *testing.T) {
	sh := Default()
	cells := Cells(&sh.Page, &sh.Grid)
	if len(cells) != 20 {
		t.Fatalf("got %d cells, want 20", len(cells))
	}

	// 612 - 2*72 = 468 wide, 792 - 2*79.2 - 43.2 = 590.4 high
	w, h := 468.0/4, 590.4/5
	for i, c := range cells {
		if c.Index != i+1 || c.Row != i/4 || c.Col != i%4 {
			t.Errorf("cell %d: index %d at (%d, %d)", i, c.Index, c.Row, c.Col)
		}
		want := vec.Vec2{
			X: 72 + float64(c.Col)*w + w/2,
			Y: 792 - 79.2 - 14.4 - float64(c.Row)*h - h/2,
		}
		if math.Abs(c.Center.X-want.X) > 1e-9 || math.Abs(c.Center.Y-want.Y) > 1e-9 {
			t.Errorf("cell %d: center %v, want %v", c.Index, c.Center, want)
		}
		if math.Abs(c.Width-w) > 1e-9 || math.Abs(c.Height-h) > 1e-9 {
			t.Errorf("cell %d: size %gx%g", c.Index, c.Width, c.Height)
		}
	}
}

func TestCellsPartial(t *testing.T) {
	pg := Page{Width: 400, Height: 400, MarginH: 20, MarginV: 20}
	g := Grid{Rows: 3, Cols: 3, Count: 7}
	cells := Cells(&pg, &g)
	if len(cells) != 7 {
		t.Fatalf("got %d cells, want 7", len(cells))
	}
	last := cells[6]
	if last.Row != 2 || last.Col != 0 {
		t.Errorf("last cell at (%d, %d)", last.Row, last.Col)
	}

	g.Count = 50 // more than fit
	if n := len(Cells(&pg, &g)); n != 9 {
		t.Errorf("got %d cells, want 9", n)
	}

	g.Rows = 0
	if Cells(&pg, &g) != nil {
		t.Error("cells for empty grid")
	}
}

func TestComposeLabels(t *testing.T) {
	sh := Default()
	sh.Grid.Cols = 4
	sh.Grid.Rows = 5
	res, err := Compose(sh)
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Studies) != 20 {
		t.Fatalf("got %d studies", len(res.Studies))
	}

	var labels []string
	for _, item := range res.Scene.Layer(LayerStudies).Items {
		txt, ok := item.(*scene.Text)
		if ok && txt.Size == sh.Style.IndexSize {
			labels = append(labels, txt.Text)
		}
	}
	var want []string
	for i := 1; i <= 20; i++ {
		want = append(want, fmt.Sprintf("%02d", i))
	}
	if d := cmp.Diff(want, labels); d != "" {
		t.Errorf("study labels (-want +got):\n%s", d)
	}

	// row-major: study 2 is right of study 1, study 5 below study 1
	s := res.Studies
	if !(s[1].Center.X > s[0].Center.X && s[1].Center.Y == s[0].Center.Y) {
		t.Error("study 2 not to the right of study 1")
	}
	if !(s[4].Center.Y < s[0].Center.Y && s[4].Center.X == s[0].Center.X) {
		t.Error("study 5 not below study 1")
	}

	var footer []string
	for _, item := range res.Scene.Layer(LayerFooter).Items {
		if txt, ok := item.(*scene.Text); ok {
			footer = append(footer, txt.Text)
		}
	}
	wantFooter := []string{
		"Systematic documentation of vector transitions",
		"n = 20",
		"Δθ: 55°–125° variable",
	}
	if d := cmp.Diff(wantFooter, footer); d != "" {
		t.Errorf("footer (-want +got):\n%s", d)
	}
}

func TestComposeShiftLabels(t *testing.T) {
	sh := Default()
	res, err := Compose(sh)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range res.Studies {
		d := s.Delta()
		if d < 55 || d > 125 {
			t.Errorf("study %d: Δθ = %g", s.Index, d)
		}
		var n float64
		_, err := fmt.Sscanf(s.DeltaLabel(), "%g°", &n)
		if err != nil {
			t.Fatal(err)
		}
		if n < 55 || n > 125 {
			t.Errorf("study %d: label %q", s.Index, s.DeltaLabel())
		}
	}
}

func TestComposeDeterministic(t *testing.T) {
	a, err := Compose(Default())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compose(Default())
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(a, b); d != "" {
		t.Errorf("composition is not reproducible:\n%s", d)
	}
}

func TestComposeLayers(t *testing.T) {
	res, err := Compose(Default())
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, l := range res.Scene.Layers {
		names = append(names, l.Name)
	}
	want := []string{LayerBackground, LayerTitle, LayerStudies, LayerFlow, LayerFooter}
	if d := cmp.Diff(want, names); d != "" {
		t.Errorf("layers (-want +got):\n%s", d)
	}

	if a := res.Scene.Layer(LayerFlow).StrokeAlpha; a != 0.25 {
		t.Errorf("flow alpha %g", a)
	}

	title := res.Scene.Layer(LayerTitle).Items
	wantTitle := []*scene.Text{
		{Pos: vec.Vec2{X: 72, Y: 745.2}, Text: "SYSTEMATIC REVERIE", Font: scene.TitleFont, Size: 8, Color: scene.Primary},
		{Pos: vec.Vec2{X: 72, Y: 732.24}, Text: "Documentation of Directional Shift Patterns", Font: scene.MonoFont, Size: 5.5, Color: scene.Secondary},
		{Pos: vec.Vec2{X: 540, Y: 745.2}, Text: "Series I", Font: scene.MonoFont, Size: 5.5, Color: scene.Secondary, Align: scene.AlignRight},
		{Pos: vec.Vec2{X: 540, Y: 732.24}, Text: "Vector Studies", Font: scene.MonoFont, Size: 4.8, Color: scene.Secondary, Align: scene.AlignRight},
	}
	var gotTitle []*scene.Text
	for _, item := range title {
		gotTitle = append(gotTitle, item.(*scene.Text))
	}
	if d := cmp.Diff(wantTitle, gotTitle, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("title block (-want +got):\n%s", d)
	}

	footer := res.Scene.Layer(LayerFooter).Items
	rule := footer[len(footer)-1].(*scene.Line)
	if math.Abs(rule.From.Y-(79.2-28.8+18)) > 1e-9 || rule.From.X != 72 || rule.To.X != 540 {
		t.Errorf("wrong rule %+v", rule)
	}
}

func TestComposeErrors(t *testing.T) {
	sh := Default()
	sh.Grid.Rows = 0
	if _, err := Compose(sh); err == nil {
		t.Error("empty grid accepted")
	}

	sh = Default()
	sh.Page.MarginH = 400
	if _, err := Compose(sh); err == nil {
		t.Error("oversized margins accepted")
	}
}

func TestFlowSegments(t *testing.T) {
	sh := Default()
	pg := &sh.Page
	drawn, rejected := FlowSegments(pg, &sh.Grid, &sh.Flow)
	if len(drawn)+rejected != sh.Flow.Count {
		t.Errorf("%d drawn + %d rejected != %d", len(drawn), rejected, sh.Flow.Count)
	}
	for i, seg := range drawn {
		p := seg.To
		if !(pg.MarginH < p.X && p.X < pg.Width-pg.MarginH) {
			t.Errorf("segment %d: x_end = %g outside margins", i, p.X)
		}
		if !(pg.MarginV < p.Y && p.Y < pg.Height-pg.MarginV) {
			t.Errorf("segment %d: y_end = %g outside margins", i, p.Y)
		}
		length := seg.To.Sub(seg.From).Length()
		if length < 0.25*inch-1e-9 || length > 0.65*inch+1e-9 {
			t.Errorf("segment %d: length %g", i, length)
		}
	}

	again, rejectedAgain := FlowSegments(pg, &sh.Grid, &sh.Flow)
	if d := cmp.Diff(drawn, again); d != "" || rejected != rejectedAgain {
		t.Errorf("flow layer not reproducible:\n%s", d)
	}
}

// TestFlowRejection uses tiny margins around a small work area, so that
// most candidates leave the page and must be dropped without replacement.
func TestFlowRejection(t *testing.T) {
	pg := &Page{Width: 60, Height: 60, MarginH: 10, MarginV: 10}
	g := &Grid{Rows: 1, Cols: 1}
	f := DefaultFlow()
	f.Count = 200

	drawn, rejected := FlowSegments(pg, g, &f)
	if rejected == 0 {
		t.Fatal("no candidates rejected")
	}
	if len(drawn)+rejected != 200 {
		t.Errorf("%d + %d != 200", len(drawn), rejected)
	}
	for _, seg := range drawn {
		if !insideMargins(pg, seg.To) {
			t.Errorf("segment end %v outside margins", seg.To)
		}
	}
}

func TestInsideMarginsStrict(t *testing.T) {
	pg := &Page{Width: 100, Height: 100, MarginH: 10, MarginV: 20}
	cases := []struct {
		p  vec.Vec2
		ok bool
	}{
		{vec.Vec2{X: 50, Y: 50}, true},
		{vec.Vec2{X: 10, Y: 50}, false},
		{vec.Vec2{X: 90, Y: 50}, false},
		{vec.Vec2{X: 50, Y: 20}, false},
		{vec.Vec2{X: 50, Y: 80}, false},
		{vec.Vec2{X: 10.001, Y: 79.999}, true},
	}
	for _, c := range cases {
		if got := insideMargins(pg, c.p); got != c.ok {
			t.Errorf("insideMargins(%v) = %t", c.p, got)
		}
	}
}

func TestShiftNote(t *testing.T) {
	if got := ShiftNote(study.Range{Min: 55, Max: 125}); got != "Δθ: 55°–125° variable" {
		t.Errorf("got %q", got)
	}
	if got := SampleSize(7); got != "n = 7" {
		t.Errorf("got %q", got)
	}
}

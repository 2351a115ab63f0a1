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

// Package composition lays out a complete trajectory study sheet.
//
// The sheet consists of a title block, a grid of studies (see package
// study), a faint background layer of flow lines, and a footer with
// annotations and a horizontal rule.  [Compose] turns a [Sheet] into a
// [scene.Scene], which can then be written by one of the renderers.
package composition

import (
	"errors"
	"fmt"
	"strconv"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/trajectories/scene"
	"seehuhn.de/go/trajectories/study"
)

const inch = 72

// Layer names used in composed scenes.
const (
	LayerBackground = "background"
	LayerTitle      = "title"
	LayerStudies    = "studies"
	LayerFlow       = "flow"
	LayerFooter     = "footer"
)

// Sheet collects everything needed to compose a page.
type Sheet struct {
	Page    Page
	Grid    Grid
	Study   study.Params
	Style   study.Style
	Flow    Flow
	Text    Text
	Palette scene.Palette
}

// Text holds the fixed strings of the title block and the footer, together
// with their placement.
type Text struct {
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	Series      string `yaml:"series"`
	SeriesNote  string `yaml:"series_note"`
	FooterLeft  string `yaml:"footer_left"`
	FooterRight string `yaml:"footer_right"` // empty: derived from the shift range

	TitleSize      float64 `yaml:"title_size"`
	SubtitleSize   float64 `yaml:"subtitle_size"`
	SeriesNoteSize float64 `yaml:"series_note_size"`
	FooterSize     float64 `yaml:"footer_size"`

	// TitleRaise is the height of the title baseline above the top margin,
	// LineGap the distance to the second line of the title block.
	TitleRaise float64 `yaml:"title_raise"`
	LineGap    float64 `yaml:"line_gap"`

	// FooterDrop is the depth of the footer baseline below the bottom
	// margin.  The rule is drawn RuleRaise above the footer baseline.
	FooterDrop float64 `yaml:"footer_drop"`
	RuleRaise  float64 `yaml:"rule_raise"`
	RuleWidth  float64 `yaml:"rule_width"`
}

// DefaultText returns the strings and placement of the "Systematic
// Reverie" sheet.
func DefaultText() Text {
	return Text{
		Title:      "SYSTEMATIC REVERIE",
		Subtitle:   "Documentation of Directional Shift Patterns",
		Series:     "Series I",
		SeriesNote: "Vector Studies",
		FooterLeft: "Systematic documentation of vector transitions",

		TitleSize:      8,
		SubtitleSize:   5.5,
		SeriesNoteSize: 4.8,
		FooterSize:     5,

		TitleRaise: 0.45 * inch,
		LineGap:    0.18 * inch,
		FooterDrop: 0.4 * inch,
		RuleRaise:  0.25 * inch,
		RuleWidth:  0.3,
	}
}

// Default returns the complete default sheet on US Letter paper.
func Default() *Sheet {
	return &Sheet{
		Page: Page{
			Width:   612,
			Height:  792,
			MarginH: 1.0 * inch,
			MarginV: 1.1 * inch,
		},
		Grid: Grid{
			Rows:          5,
			Cols:          4,
			FooterReserve: 0.6 * inch,
			TopOffset:     0.2 * inch,
		},
		Study:   study.DefaultParams(),
		Style:   study.DefaultStyle(),
		Flow:    DefaultFlow(),
		Text:    DefaultText(),
		Palette: scene.Archival,
	}
}

// Result is a composed sheet.
type Result struct {
	Scene   *scene.Scene
	Studies []*study.Study

	// FlowDrawn and FlowRejected count the flow segments which were drawn
	// and which were discarded because they left the page margins.
	FlowDrawn    int
	FlowRejected int
}

var errNoWorkArea = errors.New("margins leave no room for the grid")

// Compose lays out the sheet.
func Compose(sh *Sheet) (*Result, error) {
	if sh.Grid.Rows <= 0 || sh.Grid.Cols <= 0 {
		return nil, fmt.Errorf("invalid grid %dx%d", sh.Grid.Cols, sh.Grid.Rows)
	}
	if w, h := CellSize(&sh.Page, &sh.Grid); w <= 0 || h <= 0 {
		return nil, errNoWorkArea
	}

	pg := &sh.Page
	sc := scene.New(pg.Width, pg.Height, sh.Palette)
	res := &Result{Scene: sc}

	bg := sc.AddLayer(LayerBackground)
	bg.Add(&scene.Rect{Box: sc.Bounds(), Fill: scene.Background})

	sh.titleBlock(sc.AddLayer(LayerTitle))

	studies := sc.AddLayer(LayerStudies)
	for _, cell := range Cells(pg, &sh.Grid) {
		s := study.New(cell.Index, cell.Center, cell.Width, cell.Height, &sh.Study)
		studies.Add(s.Items(&sh.Style)...)
		res.Studies = append(res.Studies, s)
	}

	flow := sc.AddLayer(LayerFlow)
	flow.StrokeAlpha = sh.Flow.Alpha
	segments, rejected := FlowSegments(pg, &sh.Grid, &sh.Flow)
	flow.Add(sh.Flow.items(segments)...)
	res.FlowDrawn = len(segments)
	res.FlowRejected = rejected

	sh.footer(sc.AddLayer(LayerFooter), len(res.Studies))

	return res, nil
}

func (sh *Sheet) titleBlock(l *scene.Layer) {
	pg := &sh.Page
	t := &sh.Text
	y := pg.Height - pg.MarginV + t.TitleRaise
	left := pg.MarginH
	right := pg.Width - pg.MarginH

	l.Add(
		&scene.Text{
			Pos:   vec.Vec2{X: left, Y: y},
			Text:  t.Title,
			Font:  scene.TitleFont,
			Size:  t.TitleSize,
			Color: scene.Primary,
		},
		&scene.Text{
			Pos:   vec.Vec2{X: left, Y: y - t.LineGap},
			Text:  t.Subtitle,
			Font:  scene.MonoFont,
			Size:  t.SubtitleSize,
			Color: scene.Secondary,
		},
		&scene.Text{
			Pos:   vec.Vec2{X: right, Y: y},
			Text:  t.Series,
			Font:  scene.MonoFont,
			Size:  t.SubtitleSize,
			Color: scene.Secondary,
			Align: scene.AlignRight,
		},
		&scene.Text{
			Pos:   vec.Vec2{X: right, Y: y - t.LineGap},
			Text:  t.SeriesNote,
			Font:  scene.MonoFont,
			Size:  t.SeriesNoteSize,
			Color: scene.Secondary,
			Align: scene.AlignRight,
		},
	)
}

func (sh *Sheet) footer(l *scene.Layer, n int) {
	pg := &sh.Page
	t := &sh.Text
	y := pg.MarginV - t.FooterDrop
	left := pg.MarginH
	right := pg.Width - pg.MarginH

	footerRight := t.FooterRight
	if footerRight == "" {
		footerRight = ShiftNote(sh.Study.Shift)
	}

	note := func(x float64, s string, align scene.Align) *scene.Text {
		return &scene.Text{
			Pos:   vec.Vec2{X: x, Y: y},
			Text:  s,
			Font:  scene.MonoFont,
			Size:  t.FooterSize,
			Color: scene.Secondary,
			Align: align,
		}
	}
	l.Add(
		note(left, t.FooterLeft, scene.AlignLeft),
		note(pg.Width/2, SampleSize(n), scene.AlignCenter),
		note(right, footerRight, scene.AlignRight),
		&scene.Line{
			From: vec.Vec2{X: left, Y: y + t.RuleRaise},
			To:   vec.Vec2{X: right, Y: y + t.RuleRaise},
			Stroke: scene.Stroke{
				Color: scene.Highlight,
				Width: t.RuleWidth,
			},
		},
	)
}

// SampleSize returns the sample size annotation, e.g. "n = 20".
func SampleSize(n int) string {
	return "n = " + strconv.Itoa(n)
}

// ShiftNote returns the annotation for the range of angular shifts,
// e.g. "Δθ: 55°–125° variable".
func ShiftNote(r study.Range) string {
	return fmt.Sprintf("Δθ: %g°–%g° variable", r.Min, r.Max)
}

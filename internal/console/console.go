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

// Package console prints the progress messages of the trajectories
// command.  Output to a terminal is styled with lipgloss; output to files
// and pipes is plain text.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	headStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#c8bba6"))
	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0d6c7")).
			Underline(true)
	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7a706b")).
			Italic(true)
)

// Reporter writes completion messages.
type Reporter struct {
	w      io.Writer
	quiet  bool
	styled bool
}

// New returns a reporter writing to w.  If quiet is true, nothing is
// written.  Styling is enabled if w is a terminal.
func New(w io.Writer, quiet bool) *Reporter {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	return &Reporter{w: w, quiet: quiet, styled: styled}
}

func (r *Reporter) render(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

// Created reports a file which has been written.
func (r *Reporter) Created(kind, path string) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.w, "%s %s\n", r.render(headStyle, kind+" created:"), r.render(pathStyle, path))
}

// Note prints an indented line of additional information.
func (r *Reporter) Note(format string, args ...any) {
	if r.quiet {
		return
	}
	fmt.Fprintln(r.w, "  "+r.render(noteStyle, fmt.Sprintf(format, args...)))
}

// Summary describes a finished run.
type Summary struct {
	PDF      string
	SVG, PNG string

	Studies      int
	FlowDrawn    int
	FlowRejected int

	// Fonts lists the source of each font, in loading order.
	Fonts []string

	// Thread is the conceptual thread of the sheet, printed last.
	Thread string
}

// Report prints the messages for a finished run.
func (r *Reporter) Report(s *Summary) {
	r.Created("Artwork", s.PDF)
	if s.SVG != "" {
		r.Created("SVG", s.SVG)
	}
	if s.PNG != "" {
		r.Created("Preview", s.PNG)
	}
	r.Note("%d trajectory studies, %d flow segments (%d rejected)",
		s.Studies, s.FlowDrawn, s.FlowRejected)
	for _, f := range s.Fonts {
		r.Note("font: %s", f)
	}
	if s.Thread != "" {
		r.Note("conceptual thread: %s", s.Thread)
	}
}

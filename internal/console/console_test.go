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

package console

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReport(t *testing.T) {
	buf := &bytes.Buffer{}
	r := New(buf, false)
	r.Report(&Summary{
		PDF:          "sheet.pdf",
		PNG:          "sheet.png",
		Studies:      20,
		FlowDrawn:    41,
		FlowRejected: 4,
		Fonts:        []string{"Go Regular", "Go Mono"},
		Thread:       "directional shift patterns",
	})

	want := `Artwork created: sheet.pdf
Preview created: sheet.png
  20 trajectory studies, 41 flow segments (4 rejected)
  font: Go Regular
  font: Go Mono
  conceptual thread: directional shift patterns
`
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("output (-want +got):\n%s", d)
	}
}

func TestQuiet(t *testing.T) {
	buf := &bytes.Buffer{}
	r := New(buf, true)
	r.Report(&Summary{PDF: "sheet.pdf", Studies: 20})
	if buf.Len() != 0 {
		t.Errorf("quiet reporter wrote %q", buf.String())
	}
}

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

package pdfout

import (
	"strings"
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/xmp"
)

// Metadata is the document information stored in the XMP packet.
type Metadata struct {
	Title       string
	Author      string
	Description string
	Keywords    []string

	// Producer names the program which wrote the file.
	Producer string

	// Created is the creation date.  If it is zero, the current time is
	// used.
	Created time.Time
}

// pdfNamespace is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type pdfNamespace struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

var xDefault = language.MustParse("x-default")

// packet builds the XMP packet for the given metadata.
func (m *Metadata) packet(loc language.Tag) *xmp.Packet {
	dc := &xmp.DublinCore{}
	if m.Title != "" {
		dc.Title.Set(xDefault, m.Title)
		dc.Title.Set(loc, m.Title)
	}
	if m.Author != "" {
		dc.Creator.Append(xmp.NewProperName(m.Author))
	}
	if m.Description != "" {
		dc.Description.Set(xDefault, m.Description)
		dc.Description.Set(loc, m.Description)
	}

	created := m.Created
	if created.IsZero() {
		created = time.Now()
	}
	basic := &xmp.Basic{}
	basic.CreateDate = xmp.NewDate(created)
	basic.ModifyDate = xmp.NewDate(created)

	pdfInfo := &pdfNamespace{}
	if len(m.Keywords) > 0 {
		pdfInfo.Keywords = xmp.NewText(strings.Join(m.Keywords, ", "))
	}
	if m.Producer != "" {
		pdfInfo.Producer = xmp.NewAgentName(m.Producer)
	}

	p := xmp.NewPacket()
	p.Set(dc, basic, pdfInfo)
	return p
}

// writeMetadata adds an XMP metadata stream to the document catalog.
func writeMetadata(out *pdf.Writer, m *Metadata, loc language.Tag, pretty bool) error {
	stmRef := out.Alloc()
	stmDict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	stm, err := out.OpenStream(stmRef, stmDict)
	if err != nil {
		return err
	}
	err = m.packet(loc).Write(stm, &xmp.PacketOptions{Pretty: pretty})
	if err != nil {
		return err
	}
	err = stm.Close()
	if err != nil {
		return err
	}

	out.GetMeta().Catalog.Metadata = stmRef
	return nil
}

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

// Package config holds the settings for generating a trajectory study sheet.
//
// The zero configuration is not useful; start from [Default] and overlay a
// YAML file with [Load].  All lengths in the page section are given in
// inches, everything else uses PDF points.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/trajectories/composition"
	"seehuhn.de/go/trajectories/scene"
	"seehuhn.de/go/trajectories/study"
)

// Defaults for the output settings.
const (
	DefaultOutput = "systematic_reverie.pdf"
	DefaultDPI    = 150
)

// Config is the complete configuration of a run.
type Config struct {
	// Output is the name of the PDF file to write.
	Output string `yaml:"output"`

	// SVG and PNG, if non-empty, name additional renditions of the page.
	SVG string `yaml:"svg,omitempty"`
	PNG string `yaml:"png,omitempty"`

	// DPI is the resolution of the PNG rendition.
	DPI float64 `yaml:"dpi"`

	// HumanReadable makes the PDF output easier to inspect in a text
	// editor, at the cost of a larger file.
	HumanReadable bool `yaml:"human_readable"`

	Page     PageConfig       `yaml:"page"`
	Grid     GridConfig       `yaml:"grid"`
	Study    study.Params     `yaml:"study"`
	Style    study.Style      `yaml:"style"`
	Flow     composition.Flow `yaml:"flow"`
	Palette  scene.Palette    `yaml:"palette"`
	Fonts    FontConfig       `yaml:"fonts"`
	Text     composition.Text `yaml:"text"`
	Metadata MetadataConfig   `yaml:"metadata"`
}

// PageConfig selects the paper size and margins.
type PageConfig struct {
	// Size is the name of a paper size, see [PaperSizes].  If Width and
	// Height are both positive, they override Size.
	Size   string  `yaml:"size"`
	Width  float64 `yaml:"width,omitempty"`  // points
	Height float64 `yaml:"height,omitempty"` // points

	MarginH float64 `yaml:"margin_h"` // inches
	MarginV float64 `yaml:"margin_v"` // inches
}

// GridConfig describes the arrangement of the studies.
type GridConfig struct {
	Rows          int     `yaml:"rows"`
	Cols          int     `yaml:"cols"`
	Count         int     `yaml:"count,omitempty"`
	FooterReserve float64 `yaml:"footer_reserve"` // inches
	TopOffset     float64 `yaml:"top_offset"`     // inches
}

// FontConfig names the font files.  If Dir is empty, the Go fonts are used
// instead.
type FontConfig struct {
	Dir      string `yaml:"dir"`
	Title    string `yaml:"title"`
	Mono     string `yaml:"mono"`
	MonoBold string `yaml:"mono_bold"`
	Data     string `yaml:"data"`
}

// File returns the file name configured for the given font role.
func (f *FontConfig) File(role scene.FontRole) string {
	switch role {
	case scene.TitleFont:
		return f.Title
	case scene.MonoFont:
		return f.Mono
	case scene.MonoBoldFont:
		return f.MonoBold
	case scene.DataFont:
		return f.Data
	}
	return ""
}

// MetadataConfig is written into the XMP metadata of the PDF file.
type MetadataConfig struct {
	Title       string   `yaml:"title"`
	Author      string   `yaml:"author"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
}

const inch = 72

// Default returns the configuration for the "Systematic Reverie" sheet.
func Default() *Config {
	sheet := composition.Default()
	return &Config{
		Output: DefaultOutput,
		DPI:    DefaultDPI,
		Page: PageConfig{
			Size:    "letter",
			MarginH: 1.0,
			MarginV: 1.1,
		},
		Grid: GridConfig{
			Rows:          sheet.Grid.Rows,
			Cols:          sheet.Grid.Cols,
			FooterReserve: 0.6,
			TopOffset:     0.2,
		},
		Study:   sheet.Study,
		Style:   sheet.Style,
		Flow:    sheet.Flow,
		Palette: sheet.Palette,
		Fonts: FontConfig{
			Title:    "WorkSans-Regular.ttf",
			Mono:     "GeistMono-Regular.ttf",
			MonoBold: "GeistMono-Bold.ttf",
			Data:     "DMMono-Regular.ttf",
		},
		Text: sheet.Text,
		Metadata: MetadataConfig{
			Title:       "Systematic Reverie",
			Description: "Vector studies documenting directional shift patterns",
			Keywords:    []string{"vector studies", "generative", "misdirection"},
		},
	}
}

// Load reads a YAML file and overlays it on the default configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// PaperSizes lists the known paper sizes, in points.
var PaperSizes = map[string][2]float64{
	"letter":  {612, 792},
	"letterr": {792, 612},
	"a4":      {595.276, 841.890},
	"a4r":     {841.890, 595.276},
	"a5":      {419.528, 595.276},
	"a3":      {841.890, 1190.551},
}

// PageSize returns the page width and height in points.
func (c *Config) PageSize() (width, height float64, err error) {
	if c.Page.Width > 0 && c.Page.Height > 0 {
		return c.Page.Width, c.Page.Height, nil
	}
	size, ok := PaperSizes[strings.ToLower(c.Page.Size)]
	if !ok {
		return 0, 0, fmt.Errorf("unknown paper size %q", c.Page.Size)
	}
	return size[0], size[1], nil
}

// Sheet converts the configuration into the input for
// [composition.Compose].  The configuration is validated first.
func (c *Config) Sheet() (*composition.Sheet, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	w, h, err := c.PageSize()
	if err != nil {
		return nil, err
	}
	return &composition.Sheet{
		Page: composition.Page{
			Width:   w,
			Height:  h,
			MarginH: c.Page.MarginH * inch,
			MarginV: c.Page.MarginV * inch,
		},
		Grid: composition.Grid{
			Rows:          c.Grid.Rows,
			Cols:          c.Grid.Cols,
			Count:         c.Grid.Count,
			FooterReserve: c.Grid.FooterReserve * inch,
			TopOffset:     c.Grid.TopOffset * inch,
		},
		Study:   c.Study,
		Style:   c.Style,
		Flow:    c.Flow,
		Text:    c.Text,
		Palette: c.Palette,
	}, nil
}

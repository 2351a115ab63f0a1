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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"seehuhn.de/go/trajectories/composition"
	"seehuhn.de/go/trajectories/fonts"
	"seehuhn.de/go/trajectories/internal/buildinfo"
	"seehuhn.de/go/trajectories/internal/console"
	"seehuhn.de/go/trajectories/internal/profile"
	"seehuhn.de/go/trajectories/pdfout"
	"seehuhn.de/go/trajectories/pngout"
	"seehuhn.de/go/trajectories/scene"
	"seehuhn.de/go/trajectories/svgout"
)

func generate(cmd *cobra.Command, opt *options) error {
	stop, err := profile.Start(opt.cpuprofile, opt.memprofile)
	if err != nil {
		return err
	}
	defer stop()

	cfg, err := opt.loadConfig(cmd)
	if err != nil {
		return err
	}
	sheet, err := cfg.Sheet()
	if err != nil {
		return err
	}

	fs, err := fonts.Load(cfg.Fonts.Dir, cfg.Fonts.File)
	if err != nil {
		return fmt.Errorf("loading fonts: %w", err)
	}
	defer fs.Close()

	res, err := composition.Compose(sheet)
	if err != nil {
		return err
	}

	meta := &pdfout.Metadata{
		Title:       cfg.Metadata.Title,
		Author:      cfg.Metadata.Author,
		Description: cfg.Metadata.Description,
		Keywords:    cfg.Metadata.Keywords,
		Producer:    buildinfo.Short(toolName),
	}
	pdfOpt := &pdfout.Options{
		HumanReadable: cfg.HumanReadable,
		Metadata:      meta,
	}
	err = pdfout.WriteFile(cfg.Output, res.Scene, fs, pdfOpt)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Output, err)
	}

	if cfg.SVG != "" {
		err = svgout.WriteFile(cfg.SVG, res.Scene, fs)
		if err != nil {
			return fmt.Errorf("%s: %w", cfg.SVG, err)
		}
	}
	if cfg.PNG != "" {
		err = pngout.WriteFile(cfg.PNG, res.Scene, fs, cfg.DPI)
		if err != nil {
			return fmt.Errorf("%s: %w", cfg.PNG, err)
		}
	}

	var fontNames []string
	for _, role := range scene.AllFonts {
		fontNames = append(fontNames, fmt.Sprintf("%s: %s", role, fs.Source(role)))
	}
	r := console.New(cmd.OutOrStdout(), opt.quiet)
	r.Report(&console.Summary{
		PDF:          cfg.Output,
		SVG:          cfg.SVG,
		PNG:          cfg.PNG,
		Studies:      len(res.Studies),
		FlowDrawn:    res.FlowDrawn,
		FlowRejected: res.FlowRejected,
		Fonts:        fontNames,
		Thread:       thread,
	})
	return nil
}

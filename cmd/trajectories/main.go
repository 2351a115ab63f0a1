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

// Trajectories generates a sheet of procedurally generated vector studies.
//
// Each study shows a tentative "feint" vector followed by a "reality"
// vector which turns away by a substantial angle.  The studies are arranged
// in a grid on a single page, framed by a title block, a faint background
// layer of flow lines, and a footer with annotations.
//
// Running the command without arguments writes "systematic_reverie.pdf" to
// the current directory.  All random choices are derived from fixed seeds,
// so that repeated runs produce the same drawing.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/trajectories/config"
	"seehuhn.de/go/trajectories/internal/buildinfo"
)

const toolName = "trajectories"

// thread is the conceptual thread of the default sheet.
const thread = "vector studies documenting directional shift patterns"

type options struct {
	configFile    string
	output        string
	fontsDir      string
	svg           string
	png           string
	seed          int64
	rows          int
	cols          int
	dpi           float64
	humanReadable bool

	cpuprofile string
	memprofile string
	quiet      bool
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opt := &options{}

	rootCmd := &cobra.Command{
		Use:   toolName,
		Short: "generate a sheet of trajectory studies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd, opt)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opt.configFile, "config", "", "YAML configuration file")
	pf.StringVarP(&opt.output, "output", "o", config.DefaultOutput, "name of the PDF file")
	pf.StringVar(&opt.fontsDir, "fonts", "", "font directory (default: use the Go fonts)")
	pf.Int64Var(&opt.seed, "seed", 42, "base seed for the studies")
	pf.IntVar(&opt.rows, "rows", 5, "number of grid rows")
	pf.IntVar(&opt.cols, "cols", 4, "number of grid columns")
	pf.StringVar(&opt.svg, "svg", "", "also write an SVG file")
	pf.StringVar(&opt.png, "png", "", "also write a PNG preview")
	pf.Float64Var(&opt.dpi, "dpi", config.DefaultDPI, "resolution of the PNG preview")
	pf.BoolVar(&opt.humanReadable, "human-readable", false, "write uncompressed PDF output")

	f := rootCmd.Flags()
	f.StringVar(&opt.cpuprofile, "cpuprofile", "", "write CPU profile to `file`")
	f.StringVar(&opt.memprofile, "memprofile", "", "write memory profile to `file`")
	f.BoolVarP(&opt.quiet, "quiet", "q", false, "do not print completion messages")

	rootCmd.AddCommand(
		newStudiesCmd(opt),
		newConfigCmd(opt),
		&cobra.Command{
			Use:   "version",
			Short: "print version information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", toolName, buildinfo.Version())
			},
		},
	)

	return rootCmd
}

// loadConfig reads the configuration file, if any, and applies the
// settings given on the command line.  The result is not validated.
func (opt *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if opt.configFile != "" {
		var err error
		cfg, err = config.Load(opt.configFile)
		if err != nil {
			return nil, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("output") {
		cfg.Output = opt.output
	}
	if changed("fonts") {
		cfg.Fonts.Dir = opt.fontsDir
	}
	if changed("seed") {
		cfg.Study.BaseSeed = opt.seed
	}
	if changed("rows") {
		cfg.Grid.Rows = opt.rows
	}
	if changed("cols") {
		cfg.Grid.Cols = opt.cols
	}
	if changed("svg") {
		cfg.SVG = opt.svg
	}
	if changed("png") {
		cfg.PNG = opt.png
	}
	if changed("dpi") {
		cfg.DPI = opt.dpi
	}
	if changed("human-readable") {
		cfg.HumanReadable = opt.humanReadable
	}

	return cfg, nil
}

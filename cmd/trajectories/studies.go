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
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/trajectories/composition"
	"seehuhn.de/go/trajectories/config"
)

func newStudiesCmd(opt *options) *cobra.Command {
	return &cobra.Command{
		Use:   "studies",
		Short: "print the parameters of all studies without drawing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opt.loadConfig(cmd)
			if err != nil {
				return err
			}
			sheet, err := cfg.Sheet()
			if err != nil {
				return err
			}
			res, err := composition.Compose(sheet)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "study\tθ₀\tlength₀\tshift\tθ₁\tlength₁\tΔθ\t")
			for _, s := range res.Studies {
				shift := s.Shift
				if s.CounterTurn {
					shift = -shift
				}
				fmt.Fprintf(w, "%s\t%.1f°\t%.1f\t%+.1f°\t%.1f°\t%.1f\t%s\t\n",
					s.Label(), s.InitialAngle, s.InitialLength, shift,
					s.FinalAngle, s.FinalLength, s.DeltaLabel())
			}
			fmt.Fprintf(w, "\t\t\t\t\t\t%s\t\n", composition.SampleSize(len(res.Studies)))
			return w.Flush()
		},
	}
}

func newConfigCmd(opt *options) *cobra.Command {
	var save string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opt.loadConfig(cmd)
			if err != nil {
				return err
			}
			if save != "" {
				return config.Save(save, cfg)
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "write the configuration to `file` instead")
	return cmd
}

// github.com/marcelsimader/septex - a library for writing LaTeX and TikZ documents
// Copyright (C) 2026  Marcel Simader
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
	"github.com/spf13/cobra"

	"github.com/marcelsimader/septex/internal/config"
	"github.com/marcelsimader/septex/internal/logging"
)

var (
	flagVerbose int
	flagQuiet   bool
	flagConfig  string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "septex",
	Short:         "Generate LaTeX and TikZ documents",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(flagVerbose, flagQuiet)
		var err error
		cfg, err = config.Load(flagConfig)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v",
		"increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false,
		"only log errors")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"config file (default "+config.Path()+")")
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/jeranaias/cybersafe-tui/internal/config"
)

// VersionData is the --json payload of the version command.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func newVersionCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOut {
				return NewJSONResponse("version", VersionData{
					Version:   Version,
					GitCommit: GitCommit,
					BuildDate: BuildDate,
					GoVersion: runtime.Version(),
					Platform:  runtime.GOOS + "/" + runtime.GOARCH,
				}).Write(cmd.OutOrStdout())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cybersafe version %s (%s, built %s)\n", Version, GitCommit, BuildDate)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")
	return cmd
}

func (a *app) newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if dir, err := config.ConfigDir(); err == nil {
				fmt.Fprintln(out, DimStyle.Render("# config directory: "+dir))
			}
			fmt.Fprint(out, config.Global().String())
			return nil
		},
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version and Commit can be overridden at build time via ldflags:
// go build -ldflags "-X main.Version=1.0.0 -X main.Commit=abc123"
var (
	Version = "0.1.0-dev"
	Commit  = "unknown"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the autoaudit build version.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionJSON {
			b, err := json.MarshalIndent(map[string]string{
				"version": Version,
				"commit":  Commit,
				"go":      runtime.Version(),
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "autoaudit version=%s commit=%s go=%s\n", Version, Commit, runtime.Version())
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version information as JSON")
}

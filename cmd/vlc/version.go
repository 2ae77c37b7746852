package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ActiveChai/vega-lite/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the vlc version",
	Run: func(cmd *cobra.Command, args []string) {
		v := version.Plain()
		if colorEnabled(cmd, os.Stdout) {
			v = version.Version
		}
		fmt.Println("vlc", v)
		if version.GitCommit != "" {
			fmt.Println("commit", version.GitCommit)
		}
	},
}

package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/tramway"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tramway",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tramway version %s\n", strings.TrimSpace(tramway.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

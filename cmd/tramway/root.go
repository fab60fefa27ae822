package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tramway",
	Short: "Tramway models tram lifecycles as guarded state machines",
	Long: `Tramway hosts a fleet of tram state machines. Each tram is an
independent actor that validates transition requests against its current
state and keeps a passenger count updated at door closure.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "tramway.yaml", "Path to the service config file")
}

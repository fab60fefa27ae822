package main

import (
	"log/slog"
	"os"

	"github.com/aretw0/tramway/internal/cli"
	"github.com/aretw0/tramway/internal/logging"
	"github.com/aretw0/tramway/internal/presentation/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var runCmd = &cobra.Command{
	Use:   "run EVENT...",
	Short: "Drive a fresh tram through a scripted event sequence",
	Long: `Creates an in-process tram (idle, zero passengers) and applies the
given events in order, printing each outcome. close_doors accepts door
counts:

  tramway run power_on open_doors close_doors:entered=5 move stop power_off`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := cli.ParseScript(args)
		if err != nil {
			return err
		}

		debug, _ := cmd.Flags().GetBool("debug")
		logger := logging.NewNop()
		if debug {
			logger = logging.New(slog.LevelDebug)
		}

		color := term.IsTerminal(int(os.Stdout.Fd()))
		if color {
			tui.PrintBanner()
		}

		return cli.Run(cmd.Context(), cli.RunOptions{
			Steps:  steps,
			Out:    os.Stdout,
			Color:  color,
			Logger: logger,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("debug", false, "Log every transition decision")
}

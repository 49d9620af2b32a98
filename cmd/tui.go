package cmd

import (
	"github.com/spf13/cobra"

	"bravactl/cmd/tui"
	"bravactl/internal/bravia"
	"bravactl/internal/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive remote control",
	Long: `Launch a full-screen remote control for the TV. Key presses are sent
over the IRCC protocol as you type; press q or ctrl+c to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Console logging would corrupt the alternate screen
		logger.Configure(false, "info")

		cmd.SilenceUsage = true

		client := bravia.NewClient(host, psk, protoVersion)
		return tui.Run(client, host)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

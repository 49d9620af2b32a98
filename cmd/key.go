package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bravactl/internal/bravia"
	"bravactl/internal/logger"
)

var keyCmd = &cobra.Command{
	Use:   "key <name>",
	Short: "Send an IRCC remote key press",
	Long: `Send a single infrared remote key press over the IRCC protocol.
Run "bravactl key list" to see the available key names.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "list" {
			fmt.Fprintln(cmd.OutOrStdout(), "Available keys:")
			fmt.Fprintln(cmd.OutOrStdout(), "  "+strings.Join(bravia.KeyNames(), ", "))
			return nil
		}

		code, ok := bravia.KeyByName(args[0])
		if !ok {
			return fmt.Errorf("unknown key: %s", args[0])
		}

		cmd.SilenceUsage = true

		log := logger.New()
		log.Info().
			Str("host", host).
			Str("key", args[0]).
			Msg("Sending remote key press")

		client := bravia.NewClient(host, psk, protoVersion)
		return client.SendKey(code)
	},
}

func init() {
	rootCmd.AddCommand(keyCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"bravactl/internal/logger"
)

var (
	host         string
	psk          string
	protoVersion string
	debug        bool
)

var rootCmd = &cobra.Command{
	Use:   "bravactl",
	Short: "Control a Sony Bravia TV from the command line",
	Long: `Bravactl drives a Sony Bravia TV over its JSON-RPC control API and
IRCC remote protocol. Requests are authenticated with the pre-shared
key configured on the TV (Settings > Network > IP control).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			logger.Configure(true, "debug")
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Command names are case-insensitive; underscore aliases cover the
	// punctuation variants.
	cobra.EnableCaseInsensitive = true

	rootCmd.PersistentFlags().StringVar(&host, "host", "192.168.115.144", "TV host address")
	rootCmd.PersistentFlags().StringVar(&psk, "psk", "0000", "pre-shared key configured on the TV")
	rootCmd.PersistentFlags().StringVar(&protoVersion, "version", "1.0", "base protocol version")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bravactl/internal/bravia"
	"bravactl/internal/logger"
	"bravactl/internal/render"
)

// errDeviceFailure marks a failure already rendered to the terminal; main
// only needs the non-zero exit status.
var errDeviceFailure = errors.New("device reported an error")

func init() {
	for _, op := range bravia.Catalogue {
		rootCmd.AddCommand(newControlCommand(op))
	}
}

// newControlCommand builds the cobra subcommand for one catalogue entry.
// Every control command shares the same shape: bind positional arguments,
// invoke the client, render the decoded response.
func newControlCommand(op *bravia.Operation) *cobra.Command {
	var aliases []string
	if alt := strings.ReplaceAll(op.Name, "-", "_"); alt != op.Name {
		aliases = append(aliases, alt)
	}

	cmd := &cobra.Command{
		Use:     op.Usage(),
		Aliases: aliases,
		Short:   op.Summary,
		Args:    cobra.RangeArgs(op.RequiredArgs(), len(op.Params)),
		RunE: func(cmd *cobra.Command, args []string) error {
			bound, err := op.Bind(args)
			if err != nil {
				return err
			}

			// Binding succeeded; later failures are not usage problems
			cmd.SilenceUsage = true

			log := logger.New()
			log.Info().
				Str("host", host).
				Str("operation", op.Name).
				Msg("Invoking control operation")

			client := bravia.NewClient(host, psk, protoVersion)
			resp, err := op.Run(client, bound)
			if err != nil {
				return err
			}

			return renderResponse(cmd, bound, resp)
		},
	}

	return cmd
}

// renderResponse prints the decoded response and translates device failures
// into a non-zero exit status.
func renderResponse(cmd *cobra.Command, bound map[string]any, resp *bravia.Response) error {
	out := cmd.OutOrStdout()

	if resp.Err != nil {
		fmt.Fprint(out, render.FormatError(resp.Err, bound))
		if resp.Err.Code == bravia.ErrIllegalArgument {
			_ = cmd.Usage()
		}
		cmd.SilenceErrors = true
		return errDeviceFailure
	}

	// No result key at all: surface the body unchanged so unexpected
	// replies are still visible.
	if !resp.HasResult {
		fmt.Fprintln(out, strings.TrimSpace(string(resp.Raw)))
		return nil
	}

	text, ok, err := render.Rows(resp.Result, true)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprint(out, text)
	}
	return nil
}

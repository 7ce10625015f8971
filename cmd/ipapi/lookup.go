package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bloomquist/ipapi-cli/internal/ipapi"
	"github.com/bloomquist/ipapi-cli/internal/output"
)

// lookupCmd resolves a single IP address or domain.
var lookupCmd = &cobra.Command{
	Use:   "lookup [ip-or-domain]",
	Short: "Resolve one IP address or domain",
	Long:  `Resolve a single IP address or domain to location metadata. Without an argument, the service reports the location of your own public address.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		result, err := client.Location(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("lookup failed: %w", err)
		}

		return output.FormatResults(os.Stdout, []ipapi.Result{result}, outputCfg())
	},
}

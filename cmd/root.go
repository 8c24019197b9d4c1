package main

import (
	"github.com/spf13/cobra"

	"github.com/guttosm/label-service/config"
)

func newRootCmd() *cobra.Command {
	cfg := config.Load()

	root := &cobra.Command{
		Use:   "labelsvc",
		Short: "Label allocation service",
		Long: `labelsvc splits a received quantity into labeled lots, each with a
unique serial number built from the record's context parts and a counter.

Without a subcommand it runs the HTTP service, configured from the
environment (PORT, MONGODB_URI, JWT_SECRET_KEY, ...).`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}

	root.AddCommand(
		newServeCmd(cfg),
		newAllocateCmd(cfg),
		newTokenCmd(cfg),
		newKeysCmd(),
	)
	return root
}

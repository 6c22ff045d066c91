package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"draftd/internal/daemon"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the draftd version",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "draftd %s\n", daemon.Version)
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quire/internal/bookid"
)

func newNormalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "normalize <title>...",
		Short:       "Print the canonical comparable form of a title",
		Long:        "Print the normalized form used for candidate matching. Useful for debugging why two titles do or do not match.",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				fmt.Fprintln(cmd.OutOrStdout(), bookid.Normalize(arg))
			}
			return nil
		},
	}
}

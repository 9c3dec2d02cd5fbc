package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"quire/internal/bookid"
	"quire/internal/library"
	"quire/internal/services"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var yearFlag string
	var idFlag string
	var jsonFlag bool
	var noSaveFlag bool

	cmd := &cobra.Command{
		Use:   "resolve <title>",
		Short: "Resolve a book title to Google Books metadata",
		Long: `Resolve a loosely-labeled book title to a canonical Google Books volume
and print the mapped library metadata. A trailing parenthesized year in the
title ("Dune (1965)") narrows the match; --id skips the search entirely.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			if strings.TrimSpace(name) == "" && strings.TrimSpace(idFlag) == "" {
				return fmt.Errorf("a title argument or --id is required")
			}

			resolver, err := ctx.newResolver()
			if err != nil {
				return err
			}

			match, err := resolver.Resolve(cmd.Context(), bookid.Query{
				Name:     name,
				Year:     yearFlag,
				VolumeID: idFlag,
			})
			if err != nil {
				if services.IsNotFound(err) {
					fmt.Fprintf(cmd.OutOrStdout(), "No match found for %q\n", name)
					return nil
				}
				return err
			}

			if !noSaveFlag {
				if err := ctx.withStore(func(store *library.Store) error {
					_, err := store.Save(cmd.Context(), name, match)
					return err
				}); err != nil {
					return fmt.Errorf("save resolution: %w", err)
				}
			}

			if jsonFlag {
				return writeJSON(cmd, match)
			}
			printMatch(cmd, match)
			return nil
		},
	}

	cmd.Flags().StringVar(&yearFlag, "year", "", "Publication year hint when the title has none")
	cmd.Flags().StringVar(&idFlag, "id", "", "Known Google Books volume id (bypasses search)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the resolution as JSON")
	cmd.Flags().BoolVar(&noSaveFlag, "no-save", false, "Do not record the resolution in the library catalog")
	return cmd
}

func printMatch(cmd *cobra.Command, match *bookid.Match) {
	rows := [][]string{
		{"Name", match.Name},
		{"Volume ID", match.ExternalID},
		{"Year", formatOptionalInt(match.ProductionYear)},
		{"Rating", formatOptionalFloat(match.CommunityRating)},
		{"Studios", strings.Join(match.Studios, ", ")},
		{"Tags", strings.Join(match.Tags, ", ")},
		{"Matched by ID", yesNo(match.MatchedByID)},
	}
	out := cmd.OutOrStdout()
	if stdoutIsTerminal() {
		fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows, nil))
	} else {
		for _, row := range rows {
			fmt.Fprintf(out, "%s\t%s\n", row[0], row[1])
		}
	}
	if overview := strings.TrimSpace(match.Overview); overview != "" {
		fmt.Fprintf(out, "\n%s\n", overview)
	}
}

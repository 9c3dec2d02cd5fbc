package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"quire/internal/library"
)

func newLibraryCommand(ctx *commandContext) *cobra.Command {
	libraryCmd := &cobra.Command{
		Use:   "library",
		Short: "Inspect the catalog of resolved books",
	}

	libraryCmd.AddCommand(newLibraryListCommand(ctx))
	libraryCmd.AddCommand(newLibraryShowCommand(ctx))
	libraryCmd.AddCommand(newLibraryRemoveCommand(ctx))

	return libraryCmd
}

func newLibraryListCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resolved books, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *library.Store) error {
				records, err := store.List(cmd.Context(), limitFlag)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(records) == 0 {
					fmt.Fprintln(out, "Library catalog is empty")
					return nil
				}

				rows := make([][]string, 0, len(records))
				for _, record := range records {
					rows = append(rows, []string{
						strconv.FormatInt(record.ID, 10),
						record.Name,
						formatOptionalInt(record.ProductionYear),
						record.VolumeID,
						record.ResolvedAt.UTC().Format(time.RFC3339),
					})
				}
				if stdoutIsTerminal() {
					aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignLeft}
					fmt.Fprintln(out, renderTable([]string{"ID", "Name", "Year", "Volume", "Resolved"}, rows, aligns))
				} else {
					for _, row := range rows {
						fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\n", row[0], row[1], row[2], row[3], row[4])
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limitFlag, "limit", 0, "Maximum entries to show (0 for all)")
	return cmd
}

func newLibraryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <volume-id>",
		Short: "Show one resolved book as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *library.Store) error {
				record, err := store.GetByVolumeID(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if record == nil {
					return fmt.Errorf("volume %q not found in library", args[0])
				}
				return writeJSON(cmd, record)
			})
		},
	}
}

func newLibraryRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <volume-id>",
		Short: "Remove one resolved book from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *library.Store) error {
				if err := store.Remove(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed volume %s from the library\n", args[0])
				return nil
			})
		},
	}
}

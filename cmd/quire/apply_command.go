package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"quire/internal/bookid"
	"quire/internal/library"
	"quire/internal/services"
	"quire/internal/services/jellyfin"
)

func newApplyCommand(ctx *commandContext) *cobra.Command {
	var yearFlag string
	var idFlag string
	var noRefreshFlag bool

	cmd := &cobra.Command{
		Use:   "apply <jellyfin-item-id> <title>",
		Short: "Resolve a title and push the metadata to a Jellyfin item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID := strings.TrimSpace(args[0])
			name := args[1]

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Jellyfin.Enabled {
				return fmt.Errorf("jellyfin integration is disabled; enable [jellyfin] in the config first")
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
					return fmt.Errorf("no match found for %q; nothing pushed", name)
				}
				return err
			}

			sink := jellyfin.NewConfiguredService(cfg)
			if err := sink.UpdateItem(cmd.Context(), itemID, match.Metadata); err != nil {
				return fmt.Errorf("push metadata: %w", err)
			}
			if !noRefreshFlag {
				if err := sink.Refresh(cmd.Context()); err != nil {
					return fmt.Errorf("refresh library: %w", err)
				}
			}

			if err := ctx.withStore(func(store *library.Store) error {
				_, err := store.Save(cmd.Context(), name, match)
				return err
			}); err != nil {
				return fmt.Errorf("save resolution: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated item %s with %q (volume %s)\n", itemID, match.Name, match.ExternalID)
			return nil
		},
	}

	cmd.Flags().StringVar(&yearFlag, "year", "", "Publication year hint when the title has none")
	cmd.Flags().StringVar(&idFlag, "id", "", "Known Google Books volume id (bypasses search)")
	cmd.Flags().BoolVar(&noRefreshFlag, "no-refresh", false, "Skip the library refresh after the update")
	return cmd
}

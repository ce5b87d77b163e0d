package main

import (
	"encoding/json"
	"fmt"

	"redlenic/storefront/internal/container"
	"redlenic/storefront/internal/domain"

	"github.com/spf13/cobra"
)

type catalogDump struct {
	Categories []domain.Category `json:"categories"`
	Products   []domain.Product  `json:"products"`
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Dump the generated catalog as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			c := container.NewCatalog(cmd.Context(), cfg)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(catalogDump{
				Categories: c.Categories(),
				Products:   c.Products(),
			})
		},
	}
}

package main

import (
	"fmt"

	"redlenic/storefront/internal/container"

	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [fragment]",
		Short: "Print the HTML of a page for an empty cart",
		Example: `  storefront render
  storefront render catalogo
  storefront render categoria/hogar/electrodomesticos/cocina`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			// Rendering needs no external services
			cfg.Cart.Backend = "memory"
			cfg.Events.Enabled = false

			app, err := container.New(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize container: %w", err)
			}
			defer app.Close()

			fragment := ""
			if len(args) == 1 {
				fragment = args[0]
			}

			page := app.Service.Page(cmd.Context(), "", fragment)
			return app.Renderer.Render(cmd.OutOrStdout(), page)
		},
	}
}

// Package custom shows how a store extends the server without touching core
// packages: everything registers from init().
package custom

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"woocommerce.GO/api"
	"woocommerce.GO/cmd"
	"woocommerce.GO/config"
	"woocommerce.GO/cron"
	gqlregistry "woocommerce.GO/graphql/registry"
)

func init() {
	// GraphQL extension: { _extension(name: "storeSettings") }
	gqlregistry.Register("storeSettings", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		cfg := config.App()
		return map[string]interface{}{
			"currency":       cfg.Currency,
			"currencySymbol": cfg.CurrencySymbol,
			"priceDecimals":  cfg.PriceDecimals,
		}, nil
	})

	// CLI command
	cmd.Register(&cobra.Command{
		Use:   "custom:hello",
		Short: "Custom command example",
		Run: func(c *cobra.Command, args []string) {
			fmt.Fprintln(c.OutOrStdout(), "Hello from", config.App().AppName)
		},
	})

	// Cron job
	cron.Register("customping", "@every 1h", func(args ...string) {
		log.Info().Strs("args", args).Msg("custom cron ping")
	})

	// HTTP route
	api.RegisterGET("/custom/ping", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"pong": "ok"})
	})
}

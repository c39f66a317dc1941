package stock

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"woocommerce.GO/api"
	inventoryRepo "woocommerce.GO/model/repository/inventory"
)

func init() {
	api.RegisterModule(RegisterStockRoutes)
}

// ItemInput is one row of a stock import.
type ItemInput struct {
	SKU      string `json:"sku"`
	Quantity *int   `json:"quantity"`
}

func RegisterStockRoutes(apiGroup *echo.Group, env *api.Env) {
	g := apiGroup.Group("/stock")

	// POST /api/stock/import bulk stock update (auth required via /api middleware)
	g.POST("/import", func(c echo.Context) error {
		start := time.Now()

		var body struct {
			Items []ItemInput `json:"items"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if len(body.Items) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "items array is required and must not be empty"})
		}

		updates := make(map[string]int, len(body.Items))
		warnings := []string{}
		for i, it := range body.Items {
			switch {
			case it.SKU == "":
				warnings = append(warnings, fmt.Sprintf("item %d: missing sku", i))
			case it.Quantity == nil:
				warnings = append(warnings, fmt.Sprintf("item %d (%s): missing quantity", i, it.SKU))
			default:
				updates[it.SKU] = *it.Quantity
			}
		}

		repo, err := inventoryRepo.NewInventoryRepository(env.DB)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "repository init failed"})
		}
		missing, err := repo.BulkSetQuantities(updates)
		duration := time.Since(start).Milliseconds()
		if err != nil {
			log.Error().Err(err).Msg("stock import failed")
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error(), "request_duration_ms": duration})
		}
		sort.Strings(missing)
		for _, sku := range missing {
			warnings = append(warnings, fmt.Sprintf("sku %s: not found", sku))
		}

		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{
			"imported":            len(updates) - len(missing),
			"skipped":             len(body.Items) - len(updates) + len(missing),
			"warnings":            warnings,
			"request_duration_ms": duration,
		})
	})
}

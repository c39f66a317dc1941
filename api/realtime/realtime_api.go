package realtime

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"woocommerce.GO/api"
	"woocommerce.GO/config"
	inventoryRepo "woocommerce.GO/model/repository/inventory"
	priceRepo "woocommerce.GO/model/repository/price"
)

func init() {
	api.RegisterModule(RegisterRealtimeRoutes)
}

// AvailabilityResponse is the price and stock state of one SKU.
type AvailabilityResponse struct {
	SKU          string   `json:"sku"`
	Price        *float64 `json:"price"`
	RegularPrice *float64 `json:"regular_price"`
	SalePrice    *float64 `json:"sale_price"`
	Quantity     *int     `json:"quantity"`
	StockStatus  string   `json:"stock_status"`
	ManageStock  bool     `json:"manage_stock"`
}

// signingKey returns the key availability requests are signed with, if any.
func signingKey() string {
	return config.GetEnv("REALTIME_SIGNING_KEY", "")
}

// verifySignature validates an HMAC-SHA256 of sku using constant-time comparison
func verifySignature(sku, signature, key string) bool {
	if key == "" || sku == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(sku))
	expected := mac.Sum(nil)
	sig, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, sig)
}

// RegisterRealtimeRoutes sets up the price/stock lookup API.
func RegisterRealtimeRoutes(apiGroup *echo.Group, env *api.Env) {
	db := env.DB

	// GET /api/products/availability?sku=XXX public, signed when REALTIME_SIGNING_KEY is set
	apiGroup.GET("/products/availability", func(c echo.Context) error {
		start := time.Now()

		sku := c.QueryParam("sku")
		if sku == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "sku required"})
		}
		if key := signingKey(); key != "" && !verifySignature(sku, c.Request().Header.Get("X-Signature"), key) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid signature"})
		}

		priceR, err := priceRepo.NewPriceRepository(db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "repository init failed"})
		}
		inventoryR, err := inventoryRepo.NewInventoryRepository(db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "repository init failed"})
		}

		var prices *priceRepo.PriceResult
		var stock *inventoryRepo.StockLevel

		// Parallel fetch using errgroup
		eg := new(errgroup.Group)
		eg.Go(func() error {
			var err error
			prices, err = priceR.GetPricesBySKU(sku)
			return err
		})
		eg.Go(func() error {
			var err error
			stock, err = inventoryR.GetStockBySKU(sku)
			return err
		})
		err = eg.Wait()

		duration := time.Since(start).Milliseconds()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found", "request_duration_ms": duration})
		case err != nil:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		return c.JSON(http.StatusOK, AvailabilityResponse{
			SKU:          sku,
			Price:        prices.Price,
			RegularPrice: prices.RegularPrice,
			SalePrice:    prices.SalePrice,
			Quantity:     stock.Quantity,
			StockStatus:  stock.StockStatus,
			ManageStock:  stock.ManageStock,
		})
	})

	g := apiGroup.Group("/realtime")

	// GET /api/realtime/price?sku=XXX - active price only
	g.GET("/price", func(c echo.Context) error {
		sku := c.QueryParam("sku")
		if sku == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "sku required"})
		}
		priceR, err := priceRepo.NewPriceRepository(db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "repository init failed"})
		}
		price, found := priceR.GetPriceBySKU(sku)
		if !found {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "price not found"})
		}
		return c.JSON(http.StatusOK, echo.Map{"sku": sku, "price": price})
	})

	// GET /api/realtime/stock?sku=A&sku=B - managed quantities
	g.GET("/stock", func(c echo.Context) error {
		skus := c.QueryParams()["sku"]
		if len(skus) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "sku required"})
		}
		inventoryR, err := inventoryRepo.NewInventoryRepository(db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "repository init failed"})
		}
		if len(skus) == 1 {
			qty, found := inventoryR.GetQuantityBySKU(skus[0])
			if !found {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "stock not found"})
			}
			return c.JSON(http.StatusOK, echo.Map{"stock": map[string]int{skus[0]: qty}})
		}
		qtys, err := inventoryR.BatchGetQuantities(skus)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"stock": qtys})
	})
}

package resolvers

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"woocommerce.GO/config"
	"woocommerce.GO/core/session"
	"woocommerce.GO/graphql"
	gqlregistry "woocommerce.GO/graphql/registry"
	couponRepo "woocommerce.GO/model/repository/coupon"
	customerRepo "woocommerce.GO/model/repository/customer"
	mediaRepo "woocommerce.GO/model/repository/media"
	orderRepo "woocommerce.GO/model/repository/order"
	priceRepo "woocommerce.GO/model/repository/price"
	productRepo "woocommerce.GO/model/repository/product"
)

// Deps are the domain services every resolver reads from.
type Deps struct {
	Products  *productRepo.ProductRepository
	Prices    *priceRepo.PriceRepository
	Coupons   *couponRepo.CouponRepository
	Customers *customerRepo.CustomerRepository
	Orders    *orderRepo.OrderRepository
	Media     *mediaRepo.MediaRepository
	Sessions  session.Store
	Config    *config.Config
	Now       func() time.Time
}

// NewDeps wires the repositories over db.
func NewDeps(db *gorm.DB, sessions session.Store, cfg *config.Config) (*Deps, error) {
	prices, err := priceRepo.NewPriceRepository(db)
	if err != nil {
		return nil, err
	}
	return &Deps{
		Products:  productRepo.NewProductRepository(db),
		Prices:    prices,
		Coupons:   couponRepo.NewCouponRepository(db),
		Customers: customerRepo.NewCustomerRepository(db),
		Orders:    orderRepo.NewOrderRepository(db),
		Media:     mediaRepo.NewMediaRepository(db),
		Sessions:  sessions,
		Config:    cfg,
		Now:       time.Now,
	}, nil
}

func (d *Deps) priceFormat() graphql.PriceFormat {
	return graphql.PriceFormat{Symbol: d.Config.CurrencySymbol, Decimals: d.Config.PriceDecimals}
}

func (d *Deps) maxAmount() int {
	return d.Config.MaxQueryAmount
}

// RootResolver implements every RootQuery and RootMutation field.
// Fields live in product.go, coupon.go, customer.go, order.go, cart.go,
// media.go and node.go.
type RootResolver struct {
	d *Deps
}

func NewRootResolver(d *Deps) *RootResolver {
	return &RootResolver{d: d}
}

// Extension dispatches _extension(name, args) to the extension registry.
func (r *RootResolver) Extension(ctx context.Context, args struct {
	Name string
	Args *string
}) (*string, error) {
	return gqlregistry.ResolveJSON(ctx, args.Name, args.Args)
}

// notFound turns gorm's not-found error into a nil result.
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func int32p(n int) *int32 {
	v := int32(n)
	return &v
}

func idp(id uint) *int32 {
	v := int32(id)
	return &v
}

func strp(s string) *string {
	return &s
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func boolp(b bool) *bool {
	return &b
}

func floatp(f float64) *float64 {
	return &f
}

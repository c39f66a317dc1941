package resolvers

import (
	"context"
	"strconv"

	gql "github.com/graph-gophers/graphql-go"

	"woocommerce.GO/graphql"
	"woocommerce.GO/graphql/connection"
	"woocommerce.GO/graphql/models"
	productEntity "woocommerce.GO/model/entity/product"
)

// ProductResolver resolves Product. Fields delegate to the entity.
type ProductResolver struct {
	d *Deps
	p *productEntity.Product
}

func (r *RootResolver) newProduct(p *productEntity.Product) *ProductResolver {
	return &ProductResolver{d: r.d, p: p}
}

func (r *RootResolver) productByID(id uint) (*ProductResolver, error) {
	p, err := r.d.Products.FindByID(id)
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.newProduct(p), nil
}

// Product resolves product(id).
func (r *RootResolver) Product(ctx context.Context, args struct{ ID gql.ID }) (*ProductResolver, error) {
	_, id, ok := graphql.FromGlobalID(args.ID)
	if !ok {
		return nil, graphql.NewUserError("The ID input is invalid")
	}
	return r.productByID(id)
}

// ProductBy resolves productBy. The first non-empty argument wins, in the
// order id, productId, slug, sku.
func (r *RootResolver) ProductBy(ctx context.Context, args models.ProductByArgs) (*ProductResolver, error) {
	var (
		id    uint
		label string
		value string
		err   error
	)
	switch {
	case args.ID != nil && *args.ID != "":
		label, value = "ID", string(*args.ID)
		kind, dbID, ok := graphql.FromGlobalID(*args.ID)
		if kind == "" || !ok {
			return nil, graphql.NewUserError(`The "id" is invalid`)
		}
		if kind != graphql.KindProduct {
			return nil, graphql.NewUserError("No product exists with the %s: %s", label, value)
		}
		id = dbID
	case args.ProductID != nil && *args.ProductID != 0:
		label, value = "product ID", strconv.Itoa(int(*args.ProductID))
		if *args.ProductID > 0 {
			id = uint(*args.ProductID)
		}
	case args.Slug != nil && *args.Slug != "":
		label, value = "slug", *args.Slug
		id, err = r.d.Products.IDBySlug(*args.Slug)
	case args.Sku != nil && *args.Sku != "":
		label, value = "sku", *args.Sku
		id, err = r.d.Products.IDBySKU(*args.Sku)
	}
	if err != nil {
		return nil, err
	}
	if id == 0 {
		if label == "" {
			return nil, graphql.NewUserError("No product ID was found corresponding to the input")
		}
		return nil, graphql.NewUserError("No product ID was found corresponding to the %s: %s", label, value)
	}

	p, err := r.d.Products.FindByID(id)
	if notFound(err) || (err == nil && p.Type == productEntity.TypeVariation) {
		return nil, graphql.NewUserError("No product exists with the %s: %s", label, value)
	}
	if err != nil {
		return nil, err
	}
	return r.newProduct(p), nil
}

// Products resolves the root products connection.
func (r *RootResolver) Products(ctx context.Context, args models.ProductsArgs) (*ProductConnectionResolver, error) {
	return r.productConnection(ctx, nil, args, "products")
}

func (r *RootResolver) productConnection(ctx context.Context, source interface{}, args models.ProductsArgs, field string) (*ProductConnectionResolver, error) {
	res, err := connection.NewProductResolver(ctx, r.d.Products, source, args, field, r.d.maxAmount())
	if err != nil {
		return nil, err
	}
	page, err := res.Page(ctx)
	if err != nil {
		return nil, err
	}
	loaded, err := r.d.Products.FindByIDs(page.IDs)
	if err != nil {
		return nil, err
	}
	shown, list := ordered(page.IDs, loaded)
	conn := &ProductConnectionResolver{pageInfo: newPageInfo(page, shown)}
	for i, p := range list {
		conn.edges = append(conn.edges, &ProductEdgeResolver{cursor: graphql.ToCursor(shown[i]), node: r.newProduct(p)})
	}
	return conn, nil
}

type ProductConnectionResolver struct {
	pageInfo *PageInfoResolver
	edges    []*ProductEdgeResolver
}

func (c *ProductConnectionResolver) PageInfo() *PageInfoResolver { return c.pageInfo }
func (c *ProductConnectionResolver) Edges() []*ProductEdgeResolver { return c.edges }

func (c *ProductConnectionResolver) Nodes() []*ProductResolver {
	out := make([]*ProductResolver, len(c.edges))
	for i, e := range c.edges {
		out[i] = e.node
	}
	return out
}

type ProductEdgeResolver struct {
	cursor string
	node   *ProductResolver
}

func (e *ProductEdgeResolver) Cursor() string { return e.cursor }
func (e *ProductEdgeResolver) Node() *ProductResolver { return e.node }

// --- fields ---

func (p *ProductResolver) ID() gql.ID {
	return graphql.ToGlobalID(graphql.KindProduct, p.p.ID)
}

func (p *ProductResolver) ProductID() *int32 { return idp(p.p.ID) }
func (p *ProductResolver) Slug() *string { return strp(p.p.Slug) }
func (p *ProductResolver) Date() *string { return graphql.Date(&p.p.CreatedAt) }
func (p *ProductResolver) Modified() *string { return graphql.Date(&p.p.UpdatedAt) }
func (p *ProductResolver) Type() *string { return graphql.ProductTypes.Name(p.p.Type) }
func (p *ProductResolver) Name() *string { return strp(p.p.Name) }
func (p *ProductResolver) Status() *string { return strp(p.p.Status) }
func (p *ProductResolver) Featured() *bool { return boolp(p.p.Featured) }
func (p *ProductResolver) Description() *string { return strp(p.p.Description) }
func (p *ProductResolver) ShortDescription() *string { return strp(p.p.ShortDescription) }
func (p *ProductResolver) Sku() *string { return strp(p.p.SKU) }
func (p *ProductResolver) DateOnSaleFrom() *string { return graphql.Date(p.p.DateOnSaleFrom) }
func (p *ProductResolver) DateOnSaleTo() *string { return graphql.Date(p.p.DateOnSaleTo) }
func (p *ProductResolver) TotalSales() *int32 { return int32p(p.p.TotalSales) }
func (p *ProductResolver) TaxStatus() *string { return graphql.TaxStatus.Name(p.p.TaxStatus) }
func (p *ProductResolver) TaxClass() *string { return graphql.TaxClass.Name(p.p.TaxClass) }
func (p *ProductResolver) ManageStock() *bool { return boolp(p.p.ManageStock) }
func (p *ProductResolver) StockStatus() *string { return graphql.StockStatus.Name(p.p.StockStatus) }
func (p *ProductResolver) Backorders() *string { return graphql.Backorders.Name(p.p.Backorders) }
func (p *ProductResolver) SoldIndividually() *bool { return boolp(p.p.SoldIndividually) }
func (p *ProductResolver) Weight() *string { return optStr(p.p.Weight) }
func (p *ProductResolver) Length() *string { return optStr(p.p.Length) }
func (p *ProductResolver) Width() *string { return optStr(p.p.Width) }
func (p *ProductResolver) Height() *string { return optStr(p.p.Height) }
func (p *ProductResolver) ReviewsAllowed() *bool { return boolp(p.p.ReviewsAllowed) }
func (p *ProductResolver) PurchaseNote() *string { return strp(p.p.PurchaseNote) }
func (p *ProductResolver) MenuOrder() *int32 { return int32p(p.p.MenuOrder) }
func (p *ProductResolver) Virtual() *bool { return boolp(p.p.Virtual) }
func (p *ProductResolver) DownloadExpiry() *int32 { return int32p(p.p.DownloadExpiry) }
func (p *ProductResolver) Downloadable() *bool { return boolp(p.p.Downloadable) }
func (p *ProductResolver) DownloadLimit() *int32 { return int32p(p.p.DownloadLimit) }
func (p *ProductResolver) AverageRating() *float64 { return floatp(p.p.AverageRating) }
func (p *ProductResolver) ReviewCount() *int32 { return int32p(p.p.ReviewCount) }
func (p *ProductResolver) ShippingClassID() *int32 { return idp(p.p.ShippingClassID) }
func (p *ProductResolver) OnSale() *bool { return boolp(p.p.IsOnSale(p.d.Now())) }
func (p *ProductResolver) Purchasable() *bool { return boolp(p.sellable().IsPurchasable()) }
func (p *ProductResolver) ExternalURL() *string { return optStr(p.p.ExternalURL) }
func (p *ProductResolver) ButtonText() *string { return optStr(p.p.ButtonText) }
func (p *ProductResolver) BackordersAllowed() *bool { return boolp(p.p.BackordersAllowed()) }
func (p *ProductResolver) ShippingRequired() *bool { return boolp(p.p.NeedsShipping()) }
func (p *ProductResolver) ShippingTaxable() *bool { return boolp(p.p.IsShippingTaxable()) }
func (p *ProductResolver) AddToCartText() *string { return strp(p.sellable().AddToCartText()) }

func (p *ProductResolver) AddToCartDescription() *string {
	return strp(p.sellable().AddToCartDescription())
}

// sellable returns the product with a variable parent priced at its cheapest
// variation, which is the price the store shows for it.
func (p *ProductResolver) sellable() *productEntity.Product {
	if p.p.Type != productEntity.TypeVariable || p.p.Price != nil {
		return p.p
	}
	lo, _, ok := p.d.Prices.PriceRange(p.p.ID, "price")
	if !ok {
		return p.p
	}
	priced := *p.p
	priced.Price = &lo
	return &priced
}

func (p *ProductResolver) CatalogVisibility() *string {
	return graphql.CatalogVisibility.Name(p.p.CatalogVisibility)
}

func (p *ProductResolver) StockQuantity() *int32 {
	if !p.p.ManageStock || p.p.StockQuantity == nil {
		return nil
	}
	return int32p(*p.p.StockQuantity)
}

type formatArgs struct {
	Format *string
}

func (p *ProductResolver) Price(args formatArgs) *string {
	return p.price("price", p.p.Price, args.Format)
}

func (p *ProductResolver) RegularPrice(args formatArgs) *string {
	return p.price("regular_price", p.p.RegularPrice, args.Format)
}

func (p *ProductResolver) SalePrice(args formatArgs) *string {
	return p.price("sale_price", p.p.SalePrice, args.Format)
}

// price reports a min - max range for variable products.
func (p *ProductResolver) price(column string, own *float64, format *string) *string {
	f := p.d.priceFormat()
	if p.p.Type == productEntity.TypeVariable {
		if lo, hi, ok := p.d.Prices.PriceRange(p.p.ID, column); ok {
			return f.Range(lo, hi, format)
		}
		return nil
	}
	return f.Price(own, format)
}

func (p *ProductResolver) Parent(ctx context.Context) (*ProductResolver, error) {
	if p.p.ParentID == 0 {
		return nil, nil
	}
	return (&RootResolver{d: p.d}).productByID(p.p.ParentID)
}

func (p *ProductResolver) Image(ctx context.Context) (*MediaItemResolver, error) {
	if p.p.ImageID == 0 {
		return nil, nil
	}
	return (&RootResolver{d: p.d}).mediaByID(p.p.ImageID)
}

func (p *ProductResolver) Downloads() *[]*ProductDownloadResolver {
	if !p.p.Downloadable {
		return nil
	}
	files := p.p.Downloads.Data()
	out := make([]*ProductDownloadResolver, len(files))
	for i := range files {
		out[i] = &ProductDownloadResolver{f: files[i]}
	}
	return &out
}

// Variations lists the children of a variable product.
func (p *ProductResolver) Variations(ctx context.Context, args models.ConnectionArgs) (*ProductConnectionResolver, error) {
	if p.p.Type != productEntity.TypeVariable {
		return nil, nil
	}
	pa := models.ProductsArgs{First: args.First, Last: args.Last, After: args.After, Before: args.Before}
	return (&RootResolver{d: p.d}).productConnection(ctx, p.p, pa, "variations")
}

// ProductDownloadResolver resolves ProductDownload.
type ProductDownloadResolver struct {
	f productEntity.Download
}

func (d *ProductDownloadResolver) DownloadID() string { return d.f.ID }
func (d *ProductDownloadResolver) Name() *string { return strp(d.f.Name) }
func (d *ProductDownloadResolver) File() *string { return strp(d.f.File) }

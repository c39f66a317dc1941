package resolvers

import (
	"context"
	"strconv"

	gql "github.com/graph-gophers/graphql-go"

	"woocommerce.GO/core/auth"
	"woocommerce.GO/graphql"
	"woocommerce.GO/graphql/connection"
	"woocommerce.GO/graphql/models"
	couponEntity "woocommerce.GO/model/entity/coupon"
)

// CouponResolver resolves Coupon.
type CouponResolver struct {
	d *Deps
	c *couponEntity.Coupon
}

func (r *RootResolver) newCoupon(c *couponEntity.Coupon) *CouponResolver {
	return &CouponResolver{d: r.d, c: c}
}

func (r *RootResolver) couponByID(ctx context.Context, id uint) (*CouponResolver, error) {
	if !auth.ViewerFrom(ctx).Can(auth.CapEditShopCoupons) {
		return nil, graphql.NewUserError("Not authorized to access this coupon")
	}
	c, err := r.d.Coupons.FindByID(id)
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.newCoupon(c), nil
}

func (r *RootResolver) Coupon(ctx context.Context, args struct{ ID gql.ID }) (*CouponResolver, error) {
	_, id, ok := graphql.FromGlobalID(args.ID)
	if !ok {
		return nil, graphql.NewUserError("The ID input is invalid")
	}
	return r.couponByID(ctx, id)
}

// CouponBy resolves couponBy. The first non-empty argument wins, in the
// order id, couponId, code.
func (r *RootResolver) CouponBy(ctx context.Context, args models.CouponByArgs) (*CouponResolver, error) {
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
		if kind != graphql.KindCoupon {
			return nil, graphql.NewUserError("No coupon exists with the %s: %s", label, value)
		}
		id = dbID
	case args.CouponID != nil && *args.CouponID != 0:
		label, value = "coupon ID", strconv.Itoa(int(*args.CouponID))
		if *args.CouponID > 0 {
			id = uint(*args.CouponID)
		}
	case args.Code != nil && *args.Code != "":
		label, value = "code", *args.Code
		id, err = r.d.Coupons.IDByCode(*args.Code)
	}
	if err != nil {
		return nil, err
	}
	if id == 0 {
		if label == "" {
			return nil, graphql.NewUserError("No coupon ID was found corresponding to the input")
		}
		return nil, graphql.NewUserError("No coupon ID was found corresponding to the %s: %s", label, value)
	}
	c, err := r.couponByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, graphql.NewUserError("No coupon exists with the %s: %s", label, value)
	}
	return c, nil
}

// Coupons resolves the root coupons connection.
func (r *RootResolver) Coupons(ctx context.Context, args models.CouponsArgs) (*CouponConnectionResolver, error) {
	return r.couponConnection(ctx, nil, args, "coupons")
}

func (r *RootResolver) couponConnection(ctx context.Context, source interface{}, args models.CouponsArgs, field string) (*CouponConnectionResolver, error) {
	res, err := connection.NewCouponResolver(ctx, r.d.Coupons, source, args, field, r.d.maxAmount())
	if err != nil {
		return nil, err
	}
	page, err := res.Page(ctx)
	if err != nil {
		return nil, err
	}
	loaded, err := r.d.Coupons.FindByIDs(page.IDs)
	if err != nil {
		return nil, err
	}
	shown, list := ordered(page.IDs, loaded)
	conn := &CouponConnectionResolver{pageInfo: newPageInfo(page, shown)}
	for i, c := range list {
		conn.edges = append(conn.edges, &CouponEdgeResolver{cursor: graphql.ToCursor(shown[i]), node: r.newCoupon(c)})
	}
	return conn, nil
}

type CouponConnectionResolver struct {
	pageInfo *PageInfoResolver
	edges    []*CouponEdgeResolver
}

func (c *CouponConnectionResolver) PageInfo() *PageInfoResolver { return c.pageInfo }
func (c *CouponConnectionResolver) Edges() []*CouponEdgeResolver { return c.edges }

func (c *CouponConnectionResolver) Nodes() []*CouponResolver {
	out := make([]*CouponResolver, len(c.edges))
	for i, e := range c.edges {
		out[i] = e.node
	}
	return out
}

type CouponEdgeResolver struct {
	cursor string
	node   *CouponResolver
}

func (e *CouponEdgeResolver) Cursor() string { return e.cursor }
func (e *CouponEdgeResolver) Node() *CouponResolver { return e.node }

// --- fields ---

func (c *CouponResolver) ID() gql.ID {
	return graphql.ToGlobalID(graphql.KindCoupon, c.c.ID)
}

func (c *CouponResolver) CouponID() *int32 { return idp(c.c.ID) }
func (c *CouponResolver) Code() *string { return strp(c.c.Code) }
func (c *CouponResolver) Date() *string { return graphql.Date(&c.c.CreatedAt) }
func (c *CouponResolver) Modified() *string { return graphql.Date(&c.c.UpdatedAt) }
func (c *CouponResolver) Description() *string { return strp(c.c.Description) }
func (c *CouponResolver) DiscountType() *string { return graphql.DiscountType.Name(c.c.DiscountType) }
func (c *CouponResolver) Amount() *float64 { return floatp(c.c.Amount) }
func (c *CouponResolver) DateExpiry() *string { return graphql.Date(c.c.DateExpires) }
func (c *CouponResolver) UsageCount() *int32 { return int32p(c.c.UsageCount) }
func (c *CouponResolver) IndividualUse() *bool { return boolp(c.c.IndividualUse) }
func (c *CouponResolver) FreeShipping() *bool { return boolp(c.c.FreeShipping) }
func (c *CouponResolver) ExcludeSaleItems() *bool { return boolp(c.c.ExcludeSaleItems) }
func (c *CouponResolver) MinimumAmount() *float64 { return c.c.MinimumAmount }
func (c *CouponResolver) MaximumAmount() *float64 { return c.c.MaximumAmount }

func (c *CouponResolver) UsageLimit() *int32 { return optInt(c.c.UsageLimit) }
func (c *CouponResolver) UsageLimitPerUser() *int32 { return optInt(c.c.UsageLimitPerUser) }
func (c *CouponResolver) LimitUsageToXItems() *int32 { return optInt(c.c.LimitUsageToXItems) }

func (c *CouponResolver) EmailRestrictions() *[]string {
	list := c.c.EmailRestrictions.Data()
	if list == nil {
		list = []string{}
	}
	return &list
}

func (c *CouponResolver) Products(ctx context.Context) (*[]*ProductResolver, error) {
	return c.products(c.c.ProductIDs.Data())
}

func (c *CouponResolver) ExcludedProducts(ctx context.Context) (*[]*ProductResolver, error) {
	return c.products(c.c.ExcludedProductIDs.Data())
}

func (c *CouponResolver) products(ids []uint) (*[]*ProductResolver, error) {
	loaded, err := c.d.Products.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	_, list := ordered(ids, loaded)
	out := make([]*ProductResolver, len(list))
	for i, p := range list {
		out[i] = &ProductResolver{d: c.d, p: p}
	}
	return &out, nil
}

func optInt(n *int) *int32 {
	if n == nil {
		return nil
	}
	return int32p(*n)
}

package resolvers

import (
	"context"
	"strconv"

	gql "github.com/graph-gophers/graphql-go"

	"woocommerce.GO/core/auth"
	"woocommerce.GO/graphql"
	"woocommerce.GO/graphql/connection"
	"woocommerce.GO/graphql/models"
	orderEntity "woocommerce.GO/model/entity/order"
)

// OrderResolver resolves Order.
type OrderResolver struct {
	d *Deps
	o *orderEntity.Order
}

func (r *RootResolver) newOrder(o *orderEntity.Order) *OrderResolver {
	return &OrderResolver{d: r.d, o: o}
}

func (r *RootResolver) orderByID(ctx context.Context, id uint) (*OrderResolver, error) {
	o, err := r.d.Orders.FindByID(id)
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	viewer := auth.ViewerFrom(ctx)
	if !viewer.Can(auth.CapEditShopOrders) && !viewer.IsCustomer(o.CustomerID) {
		return nil, graphql.NewUserError("Not authorized to access this order")
	}
	return r.newOrder(o), nil
}

func (r *RootResolver) Order(ctx context.Context, args struct{ ID gql.ID }) (*OrderResolver, error) {
	_, id, ok := graphql.FromGlobalID(args.ID)
	if !ok {
		return nil, graphql.NewUserError("The ID input is invalid")
	}
	return r.orderByID(ctx, id)
}

// OrderBy resolves orderBy. The first non-empty argument wins, in the order
// id, orderId, orderKey.
func (r *RootResolver) OrderBy(ctx context.Context, args models.OrderByArgs) (*OrderResolver, error) {
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
		if kind != graphql.KindOrder {
			return nil, graphql.NewUserError("No order exists with the %s: %s", label, value)
		}
		id = dbID
	case args.OrderID != nil && *args.OrderID != 0:
		label, value = "order ID", strconv.Itoa(int(*args.OrderID))
		if *args.OrderID > 0 {
			id = uint(*args.OrderID)
		}
	case args.OrderKey != nil && *args.OrderKey != "":
		label, value = "order key", *args.OrderKey
		id, err = r.d.Orders.IDByOrderKey(*args.OrderKey)
	}
	if err != nil {
		return nil, err
	}
	if id == 0 {
		if label == "" {
			return nil, graphql.NewUserError("No order ID was found corresponding to the input")
		}
		return nil, graphql.NewUserError("No order ID was found corresponding to the %s: %s", label, value)
	}
	o, err := r.orderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, graphql.NewUserError("No order exists with the %s: %s", label, value)
	}
	return o, nil
}

func (r *RootResolver) Orders(ctx context.Context, args models.OrdersArgs) (*OrderConnectionResolver, error) {
	return r.orderConnection(ctx, nil, args, "orders")
}

func (r *RootResolver) orderConnection(ctx context.Context, source interface{}, args models.OrdersArgs, field string) (*OrderConnectionResolver, error) {
	res, err := connection.NewOrderResolver(ctx, r.d.Orders, source, args, field, r.d.maxAmount())
	if err != nil {
		return nil, err
	}
	page, err := res.Page(ctx)
	if err != nil {
		return nil, err
	}
	loaded, err := r.d.Orders.FindByIDs(page.IDs)
	if err != nil {
		return nil, err
	}
	shown, list := ordered(page.IDs, loaded)
	conn := &OrderConnectionResolver{pageInfo: newPageInfo(page, shown)}
	for i, o := range list {
		conn.edges = append(conn.edges, &OrderEdgeResolver{cursor: graphql.ToCursor(shown[i]), node: r.newOrder(o)})
	}
	return conn, nil
}

type OrderConnectionResolver struct {
	pageInfo *PageInfoResolver
	edges    []*OrderEdgeResolver
}

func (c *OrderConnectionResolver) PageInfo() *PageInfoResolver { return c.pageInfo }
func (c *OrderConnectionResolver) Edges() []*OrderEdgeResolver { return c.edges }

func (c *OrderConnectionResolver) Nodes() []*OrderResolver {
	out := make([]*OrderResolver, len(c.edges))
	for i, e := range c.edges {
		out[i] = e.node
	}
	return out
}

type OrderEdgeResolver struct {
	cursor string
	node   *OrderResolver
}

func (e *OrderEdgeResolver) Cursor() string { return e.cursor }
func (e *OrderEdgeResolver) Node() *OrderResolver { return e.node }

// --- fields ---

func (o *OrderResolver) ID() gql.ID {
	return graphql.ToGlobalID(graphql.KindOrder, o.o.ID)
}

func (o *OrderResolver) OrderID() *int32 { return idp(o.o.ID) }
func (o *OrderResolver) OrderKey() *string { return strp(o.o.OrderKey) }
func (o *OrderResolver) Status() *string { return graphql.OrderStatus.Name(o.o.Status) }
func (o *OrderResolver) Date() *string { return graphql.Date(&o.o.CreatedAt) }
func (o *OrderResolver) Modified() *string { return graphql.Date(&o.o.UpdatedAt) }
func (o *OrderResolver) Currency() *string { return strp(o.o.Currency) }
func (o *OrderResolver) CustomerNote() *string { return optStr(o.o.CustomerNote) }
func (o *OrderResolver) PaymentMethod() *string { return optStr(o.o.PaymentMethod) }
func (o *OrderResolver) PaymentMethodTitle() *string { return optStr(o.o.PaymentMethodTitle) }
func (o *OrderResolver) DatePaid() *string { return graphql.Date(o.o.DatePaid) }
func (o *OrderResolver) DateCompleted() *string { return graphql.Date(o.o.DateCompleted) }

func (o *OrderResolver) money(v float64, format *string) *string {
	return o.d.priceFormat().Price(&v, format)
}

func (o *OrderResolver) Total(args formatArgs) *string {
	return o.money(o.o.Total, args.Format)
}

func (o *OrderResolver) Subtotal(args formatArgs) *string {
	return o.money(o.o.Subtotal, args.Format)
}

func (o *OrderResolver) DiscountTotal(args formatArgs) *string {
	return o.money(o.o.DiscountTotal, args.Format)
}

func (o *OrderResolver) ShippingTotal(args formatArgs) *string {
	return o.money(o.o.ShippingTotal, args.Format)
}

func (o *OrderResolver) TotalTax(args formatArgs) *string {
	return o.money(o.o.TotalTax, args.Format)
}

// Customer is null for guest orders.
func (o *OrderResolver) Customer(ctx context.Context) (*CustomerResolver, error) {
	if o.o.CustomerID == 0 {
		return nil, nil
	}
	c, err := o.d.Customers.FindByID(o.o.CustomerID)
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &CustomerResolver{d: o.d, c: c}, nil
}

func (o *OrderResolver) Billing() *CustomerAddressResolver {
	return &CustomerAddressResolver{a: o.o.Billing.Data()}
}

func (o *OrderResolver) Shipping() *CustomerAddressResolver {
	return &CustomerAddressResolver{a: o.o.Shipping.Data()}
}

func (o *OrderResolver) LineItems() []*LineItemResolver {
	items := o.o.LineItems()
	out := make([]*LineItemResolver, len(items))
	for i := range items {
		out[i] = &LineItemResolver{d: o.d, it: items[i]}
	}
	return out
}

func (o *OrderResolver) CouponLines() []*CouponLineResolver {
	items := o.o.CouponLines()
	out := make([]*CouponLineResolver, len(items))
	for i := range items {
		out[i] = &CouponLineResolver{d: o.d, it: items[i]}
	}
	return out
}

// LineItemResolver resolves LineItem. Amounts are raw decimals.
type LineItemResolver struct {
	d  *Deps
	it orderEntity.Item
}

func (l *LineItemResolver) ItemID() int32 { return int32(l.it.ID) }
func (l *LineItemResolver) ProductID() *int32 { return idp(l.it.ProductID) }
func (l *LineItemResolver) Name() *string { return strp(l.it.Name) }
func (l *LineItemResolver) Quantity() *int32 { return int32p(l.it.Quantity) }
func (l *LineItemResolver) Subtotal() *string { return strp(graphql.Raw(l.it.Subtotal)) }
func (l *LineItemResolver) Total() *string { return strp(graphql.Raw(l.it.Total)) }
func (l *LineItemResolver) TotalTax() *string { return strp(graphql.Raw(l.it.TotalTax)) }

func (l *LineItemResolver) VariationID() *int32 {
	if l.it.VariationID == 0 {
		return nil
	}
	return idp(l.it.VariationID)
}

// Product resolves the variation when there is one, else the product.
func (l *LineItemResolver) Product(ctx context.Context) (*ProductResolver, error) {
	id := l.it.ProductID
	if l.it.VariationID != 0 {
		id = l.it.VariationID
	}
	if id == 0 {
		return nil, nil
	}
	return (&RootResolver{d: l.d}).productByID(id)
}

// CouponLineResolver resolves CouponLine.
type CouponLineResolver struct {
	d  *Deps
	it orderEntity.Item
}

func (c *CouponLineResolver) ItemID() int32 { return int32(c.it.ID) }
func (c *CouponLineResolver) Code() *string { return strp(c.it.Code) }
func (c *CouponLineResolver) Discount() *string { return strp(graphql.Raw(c.it.Discount)) }

func (c *CouponLineResolver) Coupon(ctx context.Context) (*CouponResolver, error) {
	cp, err := c.d.Coupons.FindByCode(c.it.Code)
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &CouponResolver{d: c.d, c: cp}, nil
}

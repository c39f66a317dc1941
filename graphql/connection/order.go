package connection

import (
	"context"

	"woocommerce.GO/core/auth"
	"woocommerce.GO/core/hooks"
	"woocommerce.GO/graphql"
	"woocommerce.GO/graphql/models"
	customerEntity "woocommerce.GO/model/entity/customer"
	"woocommerce.GO/model/query"
)

const PostTypeOrder = "shop_order"

var (
	OrderInputFields = hooks.New[map[string]interface{}]("map_input_fields_to_order_query")
	OrderQueryArgs   = hooks.New[query.Args]("order_connection_query_args")
)

// NewOrderResolver builds the order connection. source is nil for the root
// orders field or a *customer.Customer.
func NewOrderResolver(ctx context.Context, q Querier, source interface{}, args models.OrdersArgs, field string, max int) (*Resolver, error) {
	conn := args.Connection()
	raw := conn.Map()
	if m := args.Where.Map(); m != nil {
		raw["where"] = m
	}

	qa, amount, err := base(PostTypeOrder, conn, raw, max)
	if err != nil {
		return nil, err
	}
	env := hooks.Env{Source: source, Args: raw, FieldName: field, PostType: PostTypeOrder}

	if args.Where != nil {
		input := SanitizeInputFields(args.Where.Common())
		if args.Where.CustomerID != nil {
			input["customer_id"] = uint(*args.Where.CustomerID)
		}
		if args.Where.Statuses != nil {
			input[KeyPostStatus] = graphql.OrderStatus.Values(*args.Where.Statuses)
		}
		input = OrderInputFields.Apply(ctx, input, env, args.Where.Map(), source, raw)
		Merge(&qa, input)
	}
	defaultOrder(&qa, conn)

	viewer := auth.ViewerFrom(ctx)
	execute := true
	switch {
	case source != nil:
		c, _ := source.(*customerEntity.Customer)
		if c == nil {
			execute = false
			break
		}
		qa.Set("customer_id", c.ID)
		execute = viewer.Can(auth.CapEditShopOrders) || viewer.IsCustomer(c.ID)
	case viewer.Can(auth.CapEditShopOrders):
	case viewer.CustomerID != 0:
		qa.Set("customer_id", viewer.CustomerID)
	default:
		execute = false
	}

	return &Resolver{
		Args:    qa,
		Env:     env,
		conn:    conn,
		amount:  amount,
		querier: q,
		execute: execute,
		final:   OrderQueryArgs,
	}, nil
}

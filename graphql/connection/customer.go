package connection

import (
	"context"
	"strings"

	"woocommerce.GO/core/auth"
	"woocommerce.GO/core/hooks"
	"woocommerce.GO/graphql/models"
	"woocommerce.GO/model/query"
)

const PostTypeCustomer = "customer"

var (
	CustomerInputFields = hooks.New[map[string]interface{}]("map_input_fields_to_customer_query")
	CustomerQueryArgs   = hooks.New[query.Args]("customer_connection_query_args")
)

// NewCustomerResolver builds the customers connection. Only viewers that can
// list users get results.
func NewCustomerResolver(ctx context.Context, q Querier, args models.CustomersArgs, field string, max int) (*Resolver, error) {
	conn := args.Connection()
	raw := conn.Map()
	if m := args.Where.Map(); m != nil {
		raw["where"] = m
	}

	qa, amount, err := base(PostTypeCustomer, conn, raw, max)
	if err != nil {
		return nil, err
	}
	env := hooks.Env{Args: raw, FieldName: field, PostType: PostTypeCustomer}

	if args.Where != nil {
		input := SanitizeInputFields(args.Where.Common())
		if args.Where.Email != nil && *args.Where.Email != "" {
			input["email"] = strings.ToLower(*args.Where.Email)
		}
		if args.Where.Role != nil && *args.Where.Role != "" {
			input["role"] = *args.Where.Role
		}
		input = CustomerInputFields.Apply(ctx, input, env, args.Where.Map(), nil, raw)
		Merge(&qa, input)
	}
	defaultOrder(&qa, conn)

	return &Resolver{
		Args:    qa,
		Env:     env,
		conn:    conn,
		amount:  amount,
		querier: q,
		execute: auth.ViewerFrom(ctx).Can(auth.CapListUsers),
		final:   CustomerQueryArgs,
	}, nil
}

package connection

import (
	"context"
	"strings"

	"woocommerce.GO/core/auth"
	"woocommerce.GO/core/hooks"
	"woocommerce.GO/graphql"
	"woocommerce.GO/graphql/models"
	productEntity "woocommerce.GO/model/entity/product"
	"woocommerce.GO/model/query"
)

const PostTypeProduct = "product"

var (
	ProductInputFields = hooks.New[map[string]interface{}]("map_input_fields_to_product_query")
	ProductQueryArgs   = hooks.New[query.Args]("product_connection_query_args")
)

// NewProductResolver builds the product connection. source is nil for the
// root products field or the parent *product.Product for variations.
func NewProductResolver(ctx context.Context, q Querier, source interface{}, args models.ProductsArgs, field string, max int) (*Resolver, error) {
	conn := args.Connection()
	raw := conn.Map()
	if m := args.Where.Map(); m != nil {
		raw["where"] = m
	}

	qa, amount, err := base(PostTypeProduct, conn, raw, max)
	if err != nil {
		return nil, err
	}
	qa.PostStatus = []string{"publish"}

	env := hooks.Env{Source: source, Args: raw, FieldName: field, PostType: PostTypeProduct}
	viewer := auth.ViewerFrom(ctx)

	input := productInputFields(args.Where, viewer)
	if args.Where != nil {
		input = ProductInputFields.Apply(ctx, input, env, args.Where.Map(), source, raw)
	}
	_, hasParent := input[KeyPostParent]
	_, hasParentIn := input[KeyPostParentIn]
	if !hasParent && !hasParentIn {
		root := uint(0)
		qa.PostParent = &root
	}
	Merge(&qa, input)

	if parent, ok := source.(*productEntity.Product); ok {
		id := parent.ID
		qa.PostParent = &id
	}
	defaultOrder(&qa, conn)

	return &Resolver{
		Args:    qa,
		Env:     env,
		conn:    conn,
		amount:  amount,
		querier: q,
		execute: true,
		final:   ProductQueryArgs,
	}, nil
}

func productInputFields(w *models.ProductWhere, viewer auth.Viewer) map[string]interface{} {
	if w == nil {
		return map[string]interface{}{}
	}
	input := SanitizeInputFields(w.Common())
	if w.Slug != nil && *w.Slug != "" {
		input["slug"] = *w.Slug
	}
	if w.Sku != nil && *w.Sku != "" {
		input["sku"] = *w.Sku
	}
	if w.Type != nil {
		if v, ok := graphql.ProductTypes.Value(*w.Type); ok {
			input["type"] = v
		}
	}
	if w.TypeIn != nil {
		input["type"] = graphql.ProductTypes.Values(*w.TypeIn)
	}
	if w.Featured != nil {
		input["featured"] = *w.Featured
	}
	if w.StockStatus != nil {
		input["stock_status"] = graphql.StockStatus.Values(*w.StockStatus)
	}
	if w.Status != nil && viewer.Can(auth.CapManageWooCommerce) {
		input[KeyPostStatus] = []string{strings.ToLower(*w.Status)}
	}
	return input
}

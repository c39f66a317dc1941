package connection

import (
	"context"

	"woocommerce.GO/core/auth"
	"woocommerce.GO/core/hooks"
	"woocommerce.GO/core/session"
	"woocommerce.GO/graphql/models"
	"woocommerce.GO/model/query"
)

// PostTypeCoupon is the post type of coupon connections.
const PostTypeCoupon = "shop_coupon"

// FieldAppliedCoupons is the cart field that lists the cart's coupons.
const FieldAppliedCoupons = "appliedCoupons"

var (
	// CouponInputFields filters the mapped where input. Extra args: the raw
	// where map, the source, the connection args map.
	CouponInputFields = hooks.New[map[string]interface{}]("map_input_fields_to_coupon_query")
	// CouponQueryArgs filters the final coupon query args.
	CouponQueryArgs = hooks.New[query.Args]("coupon_connection_query_args")
)

// CouponStore is what the coupon connection needs from the domain layer.
type CouponStore interface {
	Querier
	IDByCode(code string) (uint, error)
}

// NewCouponResolver builds the coupon connection for field on source.
// source is nil for the root coupons field or a *session.Cart.
func NewCouponResolver(ctx context.Context, store CouponStore, source interface{}, args models.CouponsArgs, field string, max int) (*Resolver, error) {
	conn := args.Connection()
	raw := conn.Map()
	if m := args.Where.Map(); m != nil {
		raw["where"] = m
	}

	q, amount, err := base(PostTypeCoupon, conn, raw, max)
	if err != nil {
		return nil, err
	}
	parent := uint(0)
	q.PostParent = &parent

	env := hooks.Env{Source: source, Args: raw, FieldName: field, PostType: PostTypeCoupon}

	if args.Where != nil {
		input, err := couponInputFields(store, args.Where)
		if err != nil {
			return nil, err
		}
		input = CouponInputFields.Apply(ctx, input, env, args.Where.Map(), source, raw)
		Merge(&q, input)
	}
	defaultOrder(&q, conn)

	if cart, ok := source.(*session.Cart); ok && field == FieldAppliedCoupons {
		ids := make([]uint, 0, len(cart.AppliedCoupons))
		for _, code := range cart.AppliedCoupons {
			id, err := store.IDByCode(code)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
		if len(ids) == 0 {
			ids = []uint{0}
		}
		q.PostIn = ids
	}

	viewer := auth.ViewerFrom(ctx)
	return &Resolver{
		Args:    q,
		Env:     env,
		conn:    conn,
		amount:  amount,
		querier: store,
		execute: field == FieldAppliedCoupons || viewer.Can(auth.CapEditShopCoupons),
		final:   CouponQueryArgs,
	}, nil
}

func couponInputFields(store CouponStore, w *models.CouponWhere) (map[string]interface{}, error) {
	input := SanitizeInputFields(w.Common())
	if w.Code == nil || *w.Code == "" {
		return input, nil
	}
	id, err := store.IDByCode(*w.Code)
	if err != nil {
		return nil, err
	}
	ids := []uint{id}
	if in, ok := input[KeyPostIn].([]uint); ok && len(in) > 0 {
		ids = query.Intersect(in, ids)
	}
	if len(ids) == 0 {
		ids = []uint{0}
	}
	input[KeyPostIn] = ids
	return input, nil
}

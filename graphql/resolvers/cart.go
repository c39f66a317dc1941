package resolvers

import (
	"context"

	"woocommerce.GO/core/auth"
	"woocommerce.GO/core/session"
	"woocommerce.GO/graphql"
	"woocommerce.GO/graphql/connection"
	"woocommerce.GO/graphql/models"
	couponRepo "woocommerce.GO/model/repository/coupon"
)

// CartResolver resolves Cart.
type CartResolver struct {
	d    *Deps
	cart *session.Cart
}

func (c *CartResolver) AppliedCouponCodes() []string {
	codes := c.cart.AppliedCoupons
	if codes == nil {
		codes = []string{}
	}
	return codes
}

func (c *CartResolver) AppliedCoupons(ctx context.Context, args models.CouponsArgs) (*CouponConnectionResolver, error) {
	return (&RootResolver{d: c.d}).couponConnection(ctx, c.cart, args, connection.FieldAppliedCoupons)
}

// loadCart returns the request's cart, or an empty unsaved one.
func (r *RootResolver) loadCart(ctx context.Context, token string) (*session.Cart, error) {
	if token != "" {
		cart, err := r.d.Sessions.Load(ctx, token)
		if err != nil {
			return nil, err
		}
		if cart != nil {
			return cart, nil
		}
	}
	return &session.Cart{Key: token, CustomerID: auth.ViewerFrom(ctx).CustomerID}, nil
}

// Cart resolves the cart of the woocommerce-session header.
func (r *RootResolver) Cart(ctx context.Context) (*CartResolver, error) {
	cart, err := r.loadCart(ctx, graphql.SessionFrom(ctx).Token())
	if err != nil {
		return nil, err
	}
	return &CartResolver{d: r.d, cart: cart}, nil
}

type CartPayloadResolver struct {
	clientMutationID *string
	cart             *CartResolver
}

func (p *CartPayloadResolver) ClientMutationID() *string { return p.clientMutationID }
func (p *CartPayloadResolver) Cart() *CartResolver { return p.cart }

// ApplyCoupon validates code and adds it to the session cart, starting a
// session when the request has none.
func (r *RootResolver) ApplyCoupon(ctx context.Context, args struct {
	Input models.ApplyCouponInput
}) (*CartPayloadResolver, error) {
	code := couponRepo.NormalizeCode(args.Input.Code)
	c, err := r.d.Coupons.FindByCode(code)
	if notFound(err) || (err == nil && c.Status != "publish") {
		return nil, graphql.NewUserError("Coupon %q does not exist!", code)
	}
	if err != nil {
		return nil, err
	}
	if c.Expired(r.d.Now()) {
		return nil, graphql.NewUserError("This coupon has expired.")
	}
	if c.UsageExhausted() {
		return nil, graphql.NewUserError("Coupon usage limit has been reached.")
	}

	token := graphql.SessionFrom(ctx).Ensure(session.NewToken)
	cart, err := r.loadCart(ctx, token)
	if err != nil {
		return nil, err
	}
	if !cart.ApplyCoupon(code) {
		return nil, graphql.NewUserError("Coupon code %q already applied!", code)
	}
	cart.UpdatedAt = r.d.Now()
	if err := r.d.Sessions.Save(ctx, cart); err != nil {
		return nil, err
	}
	return &CartPayloadResolver{clientMutationID: args.Input.ClientMutationID, cart: &CartResolver{d: r.d, cart: cart}}, nil
}

// RemoveCoupons drops codes from the session cart. Unknown codes are ignored.
func (r *RootResolver) RemoveCoupons(ctx context.Context, args struct {
	Input models.RemoveCouponsInput
}) (*CartPayloadResolver, error) {
	token := graphql.SessionFrom(ctx).Token()
	cart, err := r.loadCart(ctx, token)
	if err != nil {
		return nil, err
	}
	if removed := cart.RemoveCoupons(args.Input.Codes); len(removed) > 0 && token != "" {
		cart.UpdatedAt = r.d.Now()
		if err := r.d.Sessions.Save(ctx, cart); err != nil {
			return nil, err
		}
	}
	return &CartPayloadResolver{clientMutationID: args.Input.ClientMutationID, cart: &CartResolver{d: r.d, cart: cart}}, nil
}

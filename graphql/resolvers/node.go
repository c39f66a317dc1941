package resolvers

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"

	"woocommerce.GO/graphql"
)

// NodeResolver resolves the Node interface.
type NodeResolver struct {
	node interface{ ID() gql.ID }
}

func (n *NodeResolver) ID() gql.ID {
	return n.node.ID()
}

func (n *NodeResolver) ToProduct() (*ProductResolver, bool) {
	p, ok := n.node.(*ProductResolver)
	return p, ok
}

func (n *NodeResolver) ToCoupon() (*CouponResolver, bool) {
	c, ok := n.node.(*CouponResolver)
	return c, ok
}

func (n *NodeResolver) ToCustomer() (*CustomerResolver, bool) {
	c, ok := n.node.(*CustomerResolver)
	return c, ok
}

func (n *NodeResolver) ToOrder() (*OrderResolver, bool) {
	o, ok := n.node.(*OrderResolver)
	return o, ok
}

func (n *NodeResolver) ToMediaItem() (*MediaItemResolver, bool) {
	m, ok := n.node.(*MediaItemResolver)
	return m, ok
}

// Node resolves any global id. Unknown kinds and missing objects are null.
func (r *RootResolver) Node(ctx context.Context, args struct{ ID gql.ID }) (*NodeResolver, error) {
	kind, id, ok := graphql.FromGlobalID(args.ID)
	if !ok {
		return nil, graphql.NewUserError("The ID input is invalid")
	}
	var node interface{ ID() gql.ID }
	switch kind {
	case graphql.KindProduct:
		p, err := r.productByID(id)
		if err != nil || p == nil {
			return nil, err
		}
		node = p
	case graphql.KindCoupon:
		c, err := r.couponByID(ctx, id)
		if err != nil || c == nil {
			return nil, err
		}
		node = c
	case graphql.KindCustomer:
		c, err := r.customerByID(ctx, id)
		if err != nil || c == nil {
			return nil, err
		}
		node = c
	case graphql.KindOrder:
		o, err := r.orderByID(ctx, id)
		if err != nil || o == nil {
			return nil, err
		}
		node = o
	case graphql.KindMedia:
		m, err := r.mediaByID(id)
		if err != nil || m == nil {
			return nil, err
		}
		node = m
	default:
		return nil, nil
	}
	return &NodeResolver{node: node}, nil
}

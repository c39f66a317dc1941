package auth

import "context"

// Roles.
const (
	RoleAdministrator = "administrator"
	RoleShopManager   = "shop_manager"
	RoleCustomer      = "customer"
)

// Capabilities checked by the schema.
const (
	CapEditShopCoupons   = "edit_shop_coupons"
	CapEditShopOrders    = "edit_shop_orders"
	CapEditUsers         = "edit_users"
	CapListUsers         = "list_users"
	CapManageWooCommerce = "manage_woocommerce"
)

var roleCaps = map[string]map[string]bool{
	RoleAdministrator: {
		CapEditShopCoupons: true, CapEditShopOrders: true, CapEditUsers: true,
		CapListUsers: true, CapManageWooCommerce: true,
	},
	RoleShopManager: {
		CapEditShopCoupons: true, CapEditShopOrders: true, CapEditUsers: true,
		CapListUsers: true, CapManageWooCommerce: true,
	},
	RoleCustomer: {},
}

// Viewer is the identity a request runs as. The zero value is a guest.
type Viewer struct {
	CustomerID uint
	Role       string
}

func (v Viewer) IsGuest() bool {
	return v.CustomerID == 0 && v.Role == ""
}

// Can reports whether the viewer's role grants capability.
func (v Viewer) Can(capability string) bool {
	return roleCaps[v.Role][capability]
}

// IsCustomer reports whether the viewer is signed in as customerID.
func (v Viewer) IsCustomer(customerID uint) bool {
	return customerID != 0 && v.CustomerID == customerID
}

type viewerKey struct{}

func WithViewer(ctx context.Context, v Viewer) context.Context {
	return context.WithValue(ctx, viewerKey{}, v)
}

// ViewerFrom returns the request's viewer, or a guest.
func ViewerFrom(ctx context.Context) Viewer {
	v, _ := ctx.Value(viewerKey{}).(Viewer)
	return v
}

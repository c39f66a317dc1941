package resolvers

import (
	"context"
	"errors"

	gql "github.com/graph-gophers/graphql-go"
	"gorm.io/datatypes"

	"woocommerce.GO/core/auth"
	"woocommerce.GO/graphql"
	"woocommerce.GO/graphql/connection"
	"woocommerce.GO/graphql/models"
	"woocommerce.GO/graphql/mutation"
	"woocommerce.GO/model/entity"
	customerEntity "woocommerce.GO/model/entity/customer"
	customerRepo "woocommerce.GO/model/repository/customer"
)

// CustomerResolver resolves Customer.
type CustomerResolver struct {
	d *Deps
	c *customerEntity.Customer
}

func (r *RootResolver) newCustomer(c *customerEntity.Customer) *CustomerResolver {
	return &CustomerResolver{d: r.d, c: c}
}

func (r *RootResolver) customerByID(ctx context.Context, id uint) (*CustomerResolver, error) {
	viewer := auth.ViewerFrom(ctx)
	if !viewer.IsCustomer(id) && !viewer.Can(auth.CapListUsers) {
		return nil, graphql.NewUserError("Not authorized to access this customer")
	}
	c, err := r.d.Customers.FindByID(id)
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.newCustomer(c), nil
}

// Customer resolves customer(id). Without an id it resolves the viewer.
func (r *RootResolver) Customer(ctx context.Context, args struct{ ID *gql.ID }) (*CustomerResolver, error) {
	if args.ID == nil {
		viewer := auth.ViewerFrom(ctx)
		if viewer.CustomerID == 0 {
			return nil, nil
		}
		return r.customerByID(ctx, viewer.CustomerID)
	}
	kind, id, ok := graphql.FromGlobalID(*args.ID)
	if !ok || kind != graphql.KindCustomer {
		return nil, graphql.NewUserError("The ID input is invalid")
	}
	return r.customerByID(ctx, id)
}

func (r *RootResolver) Customers(ctx context.Context, args models.CustomersArgs) (*CustomerConnectionResolver, error) {
	res, err := connection.NewCustomerResolver(ctx, r.d.Customers, args, "customers", r.d.maxAmount())
	if err != nil {
		return nil, err
	}
	page, err := res.Page(ctx)
	if err != nil {
		return nil, err
	}
	loaded, err := r.d.Customers.FindByIDs(page.IDs)
	if err != nil {
		return nil, err
	}
	shown, list := ordered(page.IDs, loaded)
	conn := &CustomerConnectionResolver{pageInfo: newPageInfo(page, shown)}
	for i, c := range list {
		conn.edges = append(conn.edges, &CustomerEdgeResolver{cursor: graphql.ToCursor(shown[i]), node: r.newCustomer(c)})
	}
	return conn, nil
}

type CustomerConnectionResolver struct {
	pageInfo *PageInfoResolver
	edges    []*CustomerEdgeResolver
}

func (c *CustomerConnectionResolver) PageInfo() *PageInfoResolver { return c.pageInfo }
func (c *CustomerConnectionResolver) Edges() []*CustomerEdgeResolver { return c.edges }

func (c *CustomerConnectionResolver) Nodes() []*CustomerResolver {
	out := make([]*CustomerResolver, len(c.edges))
	for i, e := range c.edges {
		out[i] = e.node
	}
	return out
}

type CustomerEdgeResolver struct {
	cursor string
	node   *CustomerResolver
}

func (e *CustomerEdgeResolver) Cursor() string { return e.cursor }
func (e *CustomerEdgeResolver) Node() *CustomerResolver { return e.node }

// --- fields ---

func (c *CustomerResolver) ID() gql.ID {
	return graphql.ToGlobalID(graphql.KindCustomer, c.c.ID)
}

func (c *CustomerResolver) CustomerID() *int32 { return idp(c.c.ID) }
func (c *CustomerResolver) Email() *string { return strp(c.c.Email) }
func (c *CustomerResolver) Username() *string { return strp(c.c.Username) }
func (c *CustomerResolver) FirstName() *string { return strp(c.c.FirstName) }
func (c *CustomerResolver) LastName() *string { return strp(c.c.LastName) }
func (c *CustomerResolver) DisplayName() *string { return strp(c.c.Name()) }
func (c *CustomerResolver) Role() *string { return strp(c.c.Role) }
func (c *CustomerResolver) Date() *string { return graphql.Date(&c.c.CreatedAt) }
func (c *CustomerResolver) IsPayingCustomer() *bool { return boolp(c.c.IsPayingCustomer) }

func (c *CustomerResolver) Billing() *CustomerAddressResolver {
	return &CustomerAddressResolver{a: c.c.Billing.Data()}
}

func (c *CustomerResolver) Shipping() *CustomerAddressResolver {
	return &CustomerAddressResolver{a: c.c.Shipping.Data()}
}

func (c *CustomerResolver) Orders(ctx context.Context, args models.OrdersArgs) (*OrderConnectionResolver, error) {
	return (&RootResolver{d: c.d}).orderConnection(ctx, c.c, args, "orders")
}

// CustomerAddressResolver resolves CustomerAddress.
type CustomerAddressResolver struct {
	a entity.Address
}

func (a *CustomerAddressResolver) FirstName() *string { return strp(a.a.FirstName) }
func (a *CustomerAddressResolver) LastName() *string { return strp(a.a.LastName) }
func (a *CustomerAddressResolver) Company() *string { return strp(a.a.Company) }
func (a *CustomerAddressResolver) Address1() *string { return strp(a.a.Address1) }
func (a *CustomerAddressResolver) Address2() *string { return strp(a.a.Address2) }
func (a *CustomerAddressResolver) City() *string { return strp(a.a.City) }
func (a *CustomerAddressResolver) State() *string { return strp(a.a.State) }
func (a *CustomerAddressResolver) Postcode() *string { return strp(a.a.Postcode) }
func (a *CustomerAddressResolver) Country() *string { return strp(a.a.Country) }
func (a *CustomerAddressResolver) Email() *string { return optStr(a.a.Email) }
func (a *CustomerAddressResolver) Phone() *string { return optStr(a.a.Phone) }

// --- mutations ---

type CustomerPayloadResolver struct {
	clientMutationID *string
	customer         *CustomerResolver
}

func (p *CustomerPayloadResolver) ClientMutationID() *string { return p.clientMutationID }
func (p *CustomerPayloadResolver) Customer() *CustomerResolver { return p.customer }

func (r *RootResolver) CreateCustomer(ctx context.Context, args struct {
	Input models.CreateCustomerInput
}) (*CustomerPayloadResolver, error) {
	in := args.Input
	raw := map[string]interface{}{"email": in.Email}
	if m := in.Billing.Map(); m != nil {
		raw[mutation.Billing] = m
	}
	if m := in.Shipping.Map(); m != nil {
		raw[mutation.Shipping] = m
	}
	props := mutation.PrepareCustomerProps(ctx, raw, "createCustomer")

	c := &customerEntity.Customer{Email: in.Email}
	setStr(&c.Username, in.Username)
	setStr(&c.FirstName, in.FirstName)
	setStr(&c.LastName, in.LastName)
	setStr(&c.DisplayName, in.DisplayName)
	if role, ok := props["role"].(string); ok {
		c.Role = role
	}
	if err := applyAddresses(c, props); err != nil {
		return nil, err
	}

	password := ""
	if in.Password != nil {
		password = *in.Password
	}
	if err := r.d.Customers.Create(c, password); err != nil {
		return nil, customerError(err)
	}
	return &CustomerPayloadResolver{clientMutationID: in.ClientMutationID, customer: r.newCustomer(c)}, nil
}

// UpdateCustomer updates the customer named by id, or the viewer. The
// viewer must be that customer or hold edit_users.
func (r *RootResolver) UpdateCustomer(ctx context.Context, args struct {
	Input models.UpdateCustomerInput
}) (*CustomerPayloadResolver, error) {
	in := args.Input
	viewer := auth.ViewerFrom(ctx)

	id := viewer.CustomerID
	if in.ID != nil {
		kind, dbID, ok := graphql.FromGlobalID(*in.ID)
		if !ok || kind != graphql.KindCustomer {
			return nil, graphql.NewUserError("The ID input is invalid")
		}
		id = dbID
	}
	if id == 0 || (!viewer.IsCustomer(id) && !viewer.Can(auth.CapEditUsers)) {
		return nil, graphql.NewUserError("Not authorized to update this customer")
	}

	c, err := r.d.Customers.FindByID(id)
	if notFound(err) {
		return nil, graphql.NewUserError("No customer exists with the ID: %d", id)
	}
	if err != nil {
		return nil, err
	}

	raw := map[string]interface{}{}
	if in.Email != nil {
		raw["email"] = *in.Email
	}
	if m := in.Billing.Map(); m != nil {
		raw[mutation.Billing] = m
	}
	if m := in.Shipping.Map(); m != nil {
		raw[mutation.Shipping] = m
	}
	props := mutation.PrepareCustomerProps(ctx, raw, "updateCustomer")

	setStr(&c.Email, in.Email)
	setStr(&c.FirstName, in.FirstName)
	setStr(&c.LastName, in.LastName)
	setStr(&c.DisplayName, in.DisplayName)
	if err := applyAddresses(c, props); err != nil {
		return nil, err
	}

	password := ""
	if in.Password != nil {
		password = *in.Password
	}
	if err := r.d.Customers.Update(c, password); err != nil {
		return nil, customerError(err)
	}
	return &CustomerPayloadResolver{clientMutationID: in.ClientMutationID, customer: r.newCustomer(c)}, nil
}

func applyAddresses(c *customerEntity.Customer, props map[string]interface{}) error {
	if v, ok := props[mutation.Billing]; ok {
		addr := c.Billing.Data()
		if err := mutation.ApplyAddress(&addr, v); err != nil {
			return err
		}
		c.Billing = datatypes.NewJSONType(addr)
	}
	if v, ok := props[mutation.Shipping]; ok {
		addr := c.Shipping.Data()
		if err := mutation.ApplyAddress(&addr, v); err != nil {
			return err
		}
		c.Shipping = datatypes.NewJSONType(addr)
	}
	return nil
}

// customerError surfaces uniqueness conflicts to the client.
func customerError(err error) error {
	if errors.Is(err, customerRepo.ErrEmailExists) || errors.Is(err, customerRepo.ErrUsernameExists) {
		return graphql.NewUserError("%s", err.Error())
	}
	return err
}

func setStr(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

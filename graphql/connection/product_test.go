package connection

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"woocommerce.GO/core/auth"
	"woocommerce.GO/graphql/models"
	customerEntity "woocommerce.GO/model/entity/customer"
	productEntity "woocommerce.GO/model/entity/product"
	"woocommerce.GO/model/query"
)

type recorder struct{ got query.Args }

func (r *recorder) QueryIDs(a query.Args) ([]uint, error) {
	r.got = a
	return nil, nil
}

func TestProduct_Defaults(t *testing.T) {
	r, err := NewProductResolver(context.Background(), &recorder{}, nil, models.ProductsArgs{}, "products", 100)
	if err != nil {
		t.Fatal(err)
	}
	a := r.QueryArgs(context.Background())
	if diff := cmp.Diff([]string{"publish"}, a.PostStatus); diff != "" {
		t.Errorf("PostStatus (-want +got):\n%s", diff)
	}
	if a.PostParent == nil || *a.PostParent != 0 {
		t.Errorf("PostParent = %v, want 0", a.PostParent)
	}
}

func TestProduct_WhereMapping(t *testing.T) {
	featured := true
	w := &models.ProductWhere{
		Sku:         str("ABC"),
		TypeIn:      &[]string{"SIMPLE", "VARIABLE"},
		Featured:    &featured,
		StockStatus: &[]string{"IN_STOCK"},
		ParentIn:    &[]int32{3},
		Status:      str("draft"),
	}
	r, err := NewProductResolver(context.Background(), &recorder{}, nil, models.ProductsArgs{Where: w}, "products", 100)
	if err != nil {
		t.Fatal(err)
	}
	a := r.QueryArgs(context.Background())
	want := map[string]interface{}{
		"sku":          "ABC",
		"type":         []string{"simple", "variable"},
		"featured":     true,
		"stock_status": []string{"instock"},
	}
	if diff := cmp.Diff(want, a.Where); diff != "" {
		t.Errorf("Where (-want +got):\n%s", diff)
	}
	if a.PostParent != nil {
		t.Errorf("PostParent = %d, want unset when parentIn is given", *a.PostParent)
	}
	if diff := cmp.Diff([]string{"publish"}, a.PostStatus); diff != "" {
		t.Errorf("guest status override (-want +got):\n%s", diff)
	}

	admin := auth.WithViewer(context.Background(), auth.Viewer{Role: auth.RoleShopManager})
	r, _ = NewProductResolver(admin, &recorder{}, nil, models.ProductsArgs{Where: w}, "products", 100)
	if diff := cmp.Diff([]string{"draft"}, r.QueryArgs(admin).PostStatus); diff != "" {
		t.Errorf("manager status (-want +got):\n%s", diff)
	}
}

func TestProduct_VariationsSource(t *testing.T) {
	parent := &productEntity.Product{ID: 12, Type: productEntity.TypeVariable}
	r, err := NewProductResolver(context.Background(), &recorder{}, parent, models.ProductsArgs{}, "variations", 100)
	if err != nil {
		t.Fatal(err)
	}
	a := r.QueryArgs(context.Background())
	if a.PostParent == nil || *a.PostParent != 12 {
		t.Errorf("PostParent = %v, want 12", a.PostParent)
	}
}

func TestOrder_ViewerScoping(t *testing.T) {
	guest := context.Background()
	r, _ := NewOrderResolver(guest, &recorder{}, nil, models.OrdersArgs{}, "orders", 100)
	if r.ShouldExecute() {
		t.Error("guest orders should not execute")
	}

	cust := auth.WithViewer(context.Background(), auth.Viewer{CustomerID: 4, Role: auth.RoleCustomer})
	w := &models.OrderWhere{CustomerID: i32(9), Statuses: &[]string{"ON_HOLD"}}
	r, _ = NewOrderResolver(cust, &recorder{}, nil, models.OrdersArgs{Where: w}, "orders", 100)
	a := r.QueryArgs(cust)
	if !r.ShouldExecute() || a.Where["customer_id"] != uint(4) {
		t.Errorf("customer scoping: execute=%v where=%v", r.ShouldExecute(), a.Where)
	}
	if diff := cmp.Diff([]string{"on-hold"}, a.PostStatus); diff != "" {
		t.Errorf("PostStatus (-want +got):\n%s", diff)
	}

	other := &customerEntity.Customer{ID: 5}
	r, _ = NewOrderResolver(cust, &recorder{}, other, models.OrdersArgs{}, "orders", 100)
	if r.ShouldExecute() {
		t.Error("customer should not see another customer's orders")
	}

	admin := auth.WithViewer(context.Background(), auth.Viewer{Role: auth.RoleAdministrator})
	r, _ = NewOrderResolver(admin, &recorder{}, other, models.OrdersArgs{}, "orders", 100)
	if !r.ShouldExecute() || r.QueryArgs(admin).Where["customer_id"] != uint(5) {
		t.Errorf("admin on customer source: execute=%v", r.ShouldExecute())
	}
}

func TestCustomer_RequiresListUsers(t *testing.T) {
	cust := auth.WithViewer(context.Background(), auth.Viewer{CustomerID: 4, Role: auth.RoleCustomer})
	r, _ := NewCustomerResolver(cust, &recorder{}, models.CustomersArgs{}, "customers", 100)
	if r.ShouldExecute() {
		t.Error("customers connection should need list_users")
	}
	admin := auth.WithViewer(context.Background(), auth.Viewer{Role: auth.RoleAdministrator})
	w := &models.CustomerWhere{Email: str("Ada@Example.com")}
	r, _ = NewCustomerResolver(admin, &recorder{}, models.CustomersArgs{Where: w}, "customers", 100)
	if !r.ShouldExecute() || r.QueryArgs(admin).Where["email"] != "ada@example.com" {
		t.Errorf("admin customers: execute=%v", r.ShouldExecute())
	}
}

package connection

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"woocommerce.GO/config"
	"woocommerce.GO/core/auth"
	"woocommerce.GO/core/hooks"
	"woocommerce.GO/core/session"
	"woocommerce.GO/graphql"
	"woocommerce.GO/graphql/models"
	couponEntity "woocommerce.GO/model/entity/coupon"
	couponRepo "woocommerce.GO/model/repository/coupon"
	"woocommerce.GO/model/query"
)

type fakeCoupons struct {
	codes map[string]uint
	ids   []uint
	calls int
	got   query.Args
}

func (f *fakeCoupons) QueryIDs(a query.Args) ([]uint, error) {
	f.calls++
	f.got = a
	return f.ids, nil
}

func (f *fakeCoupons) IDByCode(code string) (uint, error) {
	return f.codes[strings.ToLower(code)], nil
}

func i32(n int32) *int32   { return &n }
func str(s string) *string { return &s }

func adminCtx() context.Context {
	return auth.WithViewer(context.Background(), auth.Viewer{CustomerID: 1, Role: auth.RoleAdministrator})
}

func TestBase_PostsPerPage(t *testing.T) {
	tests := []struct {
		name string
		args models.ConnectionArgs
		max  int
		want int
	}{
		{"default", models.ConnectionArgs{}, 100, 11},
		{"first", models.ConnectionArgs{First: i32(5)}, 100, 6},
		{"last", models.ConnectionArgs{Last: i32(20)}, 100, 21},
		{"capped", models.ConnectionArgs{First: i32(500)}, 100, 101},
		{"zero first falls back", models.ConnectionArgs{First: i32(0)}, 100, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, err := base(PostTypeCoupon, tt.args, nil, tt.max)
			if err != nil {
				t.Fatalf("base: %v", err)
			}
			if a.PostsPerPage != tt.want {
				t.Errorf("PostsPerPage = %d, want %d", a.PostsPerPage, tt.want)
			}
		})
	}
}

func TestAmount_Negative(t *testing.T) {
	_, err := Amount(models.ConnectionArgs{First: i32(-1)}, 100)
	var ue *graphql.UserError
	if !errors.As(err, &ue) || ue.Message != "First must be a positive integer." {
		t.Errorf("Amount(first=-1) err = %v", err)
	}
	if _, err := Amount(models.ConnectionArgs{Last: i32(-2)}, 100); err == nil {
		t.Error("Amount(last=-2): want error")
	}
}

func TestCoupon_BaseArgs(t *testing.T) {
	store := &fakeCoupons{}
	after := graphql.ToCursor(9)
	r, err := NewCouponResolver(adminCtx(), store, nil, models.CouponsArgs{First: i32(3), After: &after}, "coupons", 100)
	if err != nil {
		t.Fatalf("NewCouponResolver: %v", err)
	}
	a := r.QueryArgs(context.Background())
	if a.PostType != PostTypeCoupon || a.Fields != "ids" {
		t.Errorf("PostType/Fields = %q/%q", a.PostType, a.Fields)
	}
	if diff := cmp.Diff([]string{query.StatusAny}, a.PostStatus); diff != "" {
		t.Errorf("PostStatus (-want +got):\n%s", diff)
	}
	if a.PostParent == nil || *a.PostParent != 0 {
		t.Errorf("PostParent = %v, want 0", a.PostParent)
	}
	if a.CursorOffset != 9 || a.CursorCompare != "<" || !a.IgnoreStickyPosts {
		t.Errorf("cursor = %d %q sticky=%v", a.CursorOffset, a.CursorCompare, a.IgnoreStickyPosts)
	}
	if a.Order != query.DESC {
		t.Errorf("Order = %q, want DESC", a.Order)
	}
	if a.GraphQLArgs["first"] != 3 || a.GraphQLArgs["after"] != after {
		t.Errorf("GraphQLArgs = %v", a.GraphQLArgs)
	}
}

func TestCoupon_LastOrdersAscending(t *testing.T) {
	before := graphql.ToCursor(4)
	r, err := NewCouponResolver(adminCtx(), &fakeCoupons{}, nil, models.CouponsArgs{Last: i32(2), Before: &before}, "coupons", 100)
	if err != nil {
		t.Fatal(err)
	}
	a := r.QueryArgs(context.Background())
	if a.CursorCompare != ">" || a.CursorOffset != 4 || a.Order != query.ASC {
		t.Errorf("compare=%q offset=%d order=%q", a.CursorCompare, a.CursorOffset, a.Order)
	}
}

func TestCoupon_ZeroLastPagesForward(t *testing.T) {
	a := models.ConnectionArgs{Last: i32(0)}
	if IsBackward(a) {
		t.Error("IsBackward(last: 0) = true")
	}
	r, err := NewCouponResolver(adminCtx(), &fakeCoupons{}, nil, models.CouponsArgs{Last: i32(0)}, "coupons", 100)
	if err != nil {
		t.Fatal(err)
	}
	q := r.QueryArgs(context.Background())
	if q.CursorCompare != "<" || q.Order != query.DESC {
		t.Errorf("compare=%q order=%q, want < DESC", q.CursorCompare, q.Order)
	}
	if got := Paginate([]uint{3, 2, 1}, a, 2); !got.HasNextPage || got.HasPreviousPage || got.IDs[0] != 3 {
		t.Errorf("Paginate(last: 0) = %+v", got)
	}
}

func TestCoupon_OrderbyLeavesOrderUnset(t *testing.T) {
	where := &models.CouponWhere{Orderby: &[]models.OrderbyInput{{Field: "CODE", Order: str("ASC")}}}
	r, err := NewCouponResolver(adminCtx(), &fakeCoupons{}, nil, models.CouponsArgs{Where: where}, "coupons", 100)
	if err != nil {
		t.Fatal(err)
	}
	a := r.QueryArgs(context.Background())
	if a.Order != "" {
		t.Errorf("Order = %q, want empty", a.Order)
	}
	if diff := cmp.Diff([]query.OrderBy{{Field: "code", Order: "ASC"}}, a.OrderBy); diff != "" {
		t.Errorf("OrderBy (-want +got):\n%s", diff)
	}
}

func TestCoupon_WhereMapping(t *testing.T) {
	store := &fakeCoupons{codes: map[string]uint{"save10": 7}}
	tests := []struct {
		name  string
		where models.CouponWhere
		want  []uint
	}{
		{"code only", models.CouponWhere{Code: str("SAVE10")}, []uint{7}},
		{"code within include", models.CouponWhere{Code: str("save10"), Include: &[]int32{7, 8}}, []uint{7}},
		{"code outside include", models.CouponWhere{Code: str("save10"), Include: &[]int32{8}}, []uint{0}},
		{"unknown code", models.CouponWhere{Code: str("nope")}, []uint{0}},
		{"include only", models.CouponWhere{Include: &[]int32{3, 4}}, []uint{3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tt.where
			r, err := NewCouponResolver(adminCtx(), store, nil, models.CouponsArgs{Where: &w}, "coupons", 100)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, r.QueryArgs(context.Background()).PostIn); diff != "" {
				t.Errorf("PostIn (-want +got):\n%s", diff)
			}
		})
	}

	w := models.CouponWhere{Search: str("summer"), Exclude: &[]int32{2}, ParentIn: &[]int32{0}}
	r, _ := NewCouponResolver(adminCtx(), store, nil, models.CouponsArgs{Where: &w}, "coupons", 100)
	a := r.QueryArgs(context.Background())
	if a.Search != "summer" || !cmp.Equal(a.PostNotIn, []uint{2}) || !cmp.Equal(a.PostParentIn, []uint{0}) {
		t.Errorf("mapped args = %+v", a)
	}
}

func TestCoupon_CartSource(t *testing.T) {
	store := &fakeCoupons{codes: map[string]uint{"a": 1, "b": 2}}
	guest := context.Background()

	cart := &session.Cart{AppliedCoupons: []string{"a", "b"}}
	r, err := NewCouponResolver(guest, store, cart, models.CouponsArgs{Where: &models.CouponWhere{Include: &[]int32{9}}}, FieldAppliedCoupons, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !r.ShouldExecute() {
		t.Error("appliedCoupons should execute for guests")
	}
	if diff := cmp.Diff([]uint{1, 2}, r.QueryArgs(guest).PostIn); diff != "" {
		t.Errorf("PostIn (-want +got):\n%s", diff)
	}

	r, _ = NewCouponResolver(guest, store, &session.Cart{}, models.CouponsArgs{}, FieldAppliedCoupons, 100)
	if diff := cmp.Diff([]uint{0}, r.QueryArgs(guest).PostIn); diff != "" {
		t.Errorf("empty cart PostIn (-want +got):\n%s", diff)
	}
}

func TestCoupon_GuestGetsEmptyConnection(t *testing.T) {
	store := &fakeCoupons{ids: []uint{1, 2}}
	r, err := NewCouponResolver(context.Background(), store, nil, models.CouponsArgs{}, "coupons", 100)
	if err != nil {
		t.Fatal(err)
	}
	page, err := r.Page(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(page.IDs) != 0 || store.calls != 0 {
		t.Errorf("page = %+v, calls = %d; want empty and no query", page, store.calls)
	}
}

func TestCoupon_FilterHooks(t *testing.T) {
	CouponInputFields.Reset()
	CouponQueryArgs.Reset()
	defer CouponInputFields.Reset()
	defer CouponQueryArgs.Reset()

	var sawField string
	CouponInputFields.Add(func(_ context.Context, in map[string]interface{}, env hooks.Env, extra ...interface{}) map[string]interface{} {
		sawField = env.FieldName
		where := extra[0].(map[string]interface{})
		in["discount_type"] = where["search"]
		return in
	})
	CouponQueryArgs.Add(func(_ context.Context, a query.Args, _ hooks.Env, _ ...interface{}) query.Args {
		a.PostsPerPage = 3
		return a
	})

	w := &models.CouponWhere{Search: str("percent")}
	r, err := NewCouponResolver(adminCtx(), &fakeCoupons{}, nil, models.CouponsArgs{Where: w}, "coupons", 100)
	if err != nil {
		t.Fatal(err)
	}
	a := r.QueryArgs(context.Background())
	if sawField != "coupons" {
		t.Errorf("filter saw field %q", sawField)
	}
	if a.Where["discount_type"] != "percent" {
		t.Errorf("Where = %v", a.Where)
	}
	if a.PostsPerPage != 3 {
		t.Errorf("PostsPerPage = %d, want 3", a.PostsPerPage)
	}
}

func TestPaginate(t *testing.T) {
	fwd := Paginate([]uint{5, 4, 3}, models.ConnectionArgs{First: i32(2)}, 2)
	if diff := cmp.Diff(Page{IDs: []uint{5, 4}, HasNextPage: true}, fwd); diff != "" {
		t.Errorf("forward (-want +got):\n%s", diff)
	}
	back := Paginate([]uint{1, 2, 3}, models.ConnectionArgs{Last: i32(2)}, 2)
	if diff := cmp.Diff(Page{IDs: []uint{2, 1}, HasPreviousPage: true}, back); diff != "" {
		t.Errorf("backward (-want +got):\n%s", diff)
	}
	end := Paginate([]uint{1}, models.ConnectionArgs{First: i32(2)}, 2)
	if end.HasNextPage || end.HasPreviousPage {
		t.Errorf("last page = %+v", end)
	}
}

func TestCoupon_WalkVisitsEveryItemOnce(t *testing.T) {
	db, err := config.NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&couponEntity.Coupon{}); err != nil {
		t.Fatal(err)
	}
	repo := couponRepo.NewCouponRepository(db)
	for _, code := range []string{"c1", "c2", "c3", "c4", "c5"} {
		if err := repo.Create(&couponEntity.Coupon{Code: code, Status: "publish"}); err != nil {
			t.Fatal(err)
		}
	}
	ctx := adminCtx()
	want := []uint{5, 4, 3, 2, 1}

	var forward []uint
	var after *string
	for i := 0; i < 10; i++ {
		r, err := NewCouponResolver(ctx, repo, nil, models.CouponsArgs{First: i32(2), After: after}, "coupons", 100)
		if err != nil {
			t.Fatal(err)
		}
		page, err := r.Page(ctx)
		if err != nil {
			t.Fatal(err)
		}
		forward = append(forward, page.IDs...)
		if !page.HasNextPage {
			break
		}
		c := graphql.ToCursor(page.IDs[len(page.IDs)-1])
		after = &c
	}
	if diff := cmp.Diff(want, forward); diff != "" {
		t.Errorf("forward walk (-want +got):\n%s", diff)
	}

	var backward []uint
	var before *string
	for i := 0; i < 10; i++ {
		r, err := NewCouponResolver(ctx, repo, nil, models.CouponsArgs{Last: i32(2), Before: before}, "coupons", 100)
		if err != nil {
			t.Fatal(err)
		}
		page, err := r.Page(ctx)
		if err != nil {
			t.Fatal(err)
		}
		backward = append(append([]uint(nil), page.IDs...), backward...)
		if !page.HasPreviousPage {
			break
		}
		c := graphql.ToCursor(page.IDs[0])
		before = &c
	}
	if diff := cmp.Diff(want, backward); diff != "" {
		t.Errorf("backward walk (-want +got):\n%s", diff)
	}
}

package graphql

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"woocommerce.GO/api"
	"woocommerce.GO/config"
	"woocommerce.GO/core/session"
	couponEntity "woocommerce.GO/model/entity/coupon"
	"woocommerce.GO/model/migrations"
	couponRepo "woocommerce.GO/model/repository/coupon"
)

func newServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	db, err := config.NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := migrations.Up(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cfg := &config.Config{BaseURL: "http://shop.test", CurrencySymbol: "$", PriceDecimals: 2, MaxQueryAmount: 100}
	e := echo.New()
	RegisterGraphQLRoutes(e, &api.Env{DB: db, Sessions: session.NewMemoryStore(time.Hour), Config: cfg})
	return e, db
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func post(t *testing.T, e *echo.Echo, query string, headers map[string]string) (*httptest.ResponseRecorder, gqlResponse) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"query": query})
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	var resp gqlResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return rec, resp
}

func TestGraphQL_SessionHeaderRoundTrip(t *testing.T) {
	e, db := newServer(t)
	if err := couponRepo.NewCouponRepository(db).Create(&couponEntity.Coupon{Code: "SAVE10", Status: "publish"}); err != nil {
		t.Fatalf("seed coupon: %v", err)
	}

	rec, resp := post(t, e, `mutation { applyCoupon(input: {code: "SAVE10"}) { cart { appliedCouponCodes } } }`, nil)
	if len(resp.Errors) > 0 {
		t.Fatalf("applyCoupon errors: %v", resp.Errors)
	}
	token := rec.Header().Get(session.HeaderName)
	if token == "" {
		t.Fatal("response carries no session token")
	}

	rec, resp = post(t, e, `{ cart { appliedCouponCodes } }`, map[string]string{session.HeaderName: "Session " + token})
	if len(resp.Errors) > 0 {
		t.Fatalf("cart errors: %v", resp.Errors)
	}
	if got := rec.Header().Get(session.HeaderName); got != "" {
		t.Errorf("token re-issued for an existing session: %q", got)
	}
	var data struct {
		Cart struct{ AppliedCouponCodes []string }
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"save10"}, data.Cart.AppliedCouponCodes); diff != "" {
		t.Errorf("cart codes (-want +got):\n%s", diff)
	}
}

func TestGraphQL_BearerViewer(t *testing.T) {
	t.Setenv("API_KEY", "staff-key")
	e, _ := newServer(t)

	const q = `{ coupons(first: 1) { nodes { code } } }`
	_, guest := post(t, e, q, nil)
	var guestData struct {
		Coupons *struct{ Nodes []struct{ Code string } }
	}
	if err := json.Unmarshal(guest.Data, &guestData); err != nil {
		t.Fatal(err)
	}
	if guestData.Coupons != nil && len(guestData.Coupons.Nodes) != 0 {
		t.Errorf("guest sees coupons: %+v", guestData.Coupons.Nodes)
	}

	_, staff := post(t, e, q, map[string]string{"Authorization": "Bearer staff-key"})
	if len(staff.Errors) > 0 {
		t.Errorf("staff errors: %v", staff.Errors)
	}
}

func TestPlayground(t *testing.T) {
	e, _ := newServer(t)
	req := httptest.NewRequest(http.MethodGet, "/playground", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "GraphQLPlayground") {
		t.Errorf("playground: status %d", rec.Code)
	}
}

package mutation

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"woocommerce.GO/core/hooks"
	"woocommerce.GO/model/entity"
)

func TestAddressInputMapping_RenamesAndCopies(t *testing.T) {
	in := map[string]interface{}{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"address1":  "1 Main St",
		"address2":  "Apt 2",
		"city":      "London",
		"overwrite": false,
	}
	want := map[string]interface{}{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"address_1":  "1 Main St",
		"address_2":  "Apt 2",
		"city":       "London",
	}
	if diff := cmp.Diff(want, AddressInputMapping(context.Background(), Shipping, in)); diff != "" {
		t.Errorf("mapping (-want +got):\n%s", diff)
	}
}

func TestAddressInputMapping_OverwriteStartsFromTemplate(t *testing.T) {
	in := map[string]interface{}{"city": "Paris", "overwrite": true}

	got := AddressInputMapping(context.Background(), Billing, in)
	want := EmptyBilling()
	want["city"] = "Paris"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("billing overwrite (-want +got):\n%s", diff)
	}

	got = AddressInputMapping(context.Background(), Shipping, in)
	if _, ok := got["email"]; ok {
		t.Error("shipping template should not carry email")
	}
	if len(got) != len(EmptyShipping()) {
		t.Errorf("shipping keys = %d, want %d", len(got), len(EmptyShipping()))
	}
}

func TestAddressInputMapping_SkipFilter(t *testing.T) {
	AddressSkippedKeys.Reset()
	defer AddressSkippedKeys.Reset()
	AddressSkippedKeys.Add(func(_ context.Context, keys []string, _ hooks.Env, _ ...interface{}) []string {
		return append(keys, "phone")
	})

	got := AddressInputMapping(context.Background(), Billing, map[string]interface{}{"phone": "555", "overwrite": true, "firstName": "A"})
	if _, ok := got["overwrite"]; ok {
		t.Error("overwrite should be skipped")
	}
	if got["phone"] != "" {
		t.Errorf("phone = %v, want template value", got["phone"])
	}
	if got["first_name"] != "A" {
		t.Errorf("first_name = %v", got["first_name"])
	}
}

func TestPrepareCustomerProps(t *testing.T) {
	NewCustomerData.Reset()
	defer NewCustomerData.Reset()
	var sawMutation string
	NewCustomerData.Add(func(_ context.Context, props map[string]interface{}, _ hooks.Env, extra ...interface{}) map[string]interface{} {
		sawMutation = extra[1].(string)
		props["source"] = "test"
		return props
	})

	in := map[string]interface{}{
		"email":   "ada@example.com",
		"billing": map[string]interface{}{"firstName": "Ada"},
	}
	got := PrepareCustomerProps(context.Background(), in, "createCustomer")
	want := map[string]interface{}{
		"billing": map[string]interface{}{"first_name": "Ada"},
		"role":    "customer",
		"source":  "test",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("props (-want +got):\n%s", diff)
	}
	if sawMutation != "createCustomer" {
		t.Errorf("filter saw mutation %q", sawMutation)
	}
}

func TestApplyAddress_KeepsUnsetKeys(t *testing.T) {
	addr := entity.Address{FirstName: "Old", City: "Berlin", Phone: "123"}
	if err := ApplyAddress(&addr, map[string]interface{}{"first_name": "New", "address_1": "Street 1"}); err != nil {
		t.Fatal(err)
	}
	want := entity.Address{FirstName: "New", Address1: "Street 1", City: "Berlin", Phone: "123"}
	if diff := cmp.Diff(want, addr); diff != "" {
		t.Errorf("address (-want +got):\n%s", diff)
	}

	if err := ApplyAddress(&addr, EmptyBilling()); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(entity.Address{}, addr); diff != "" {
		t.Errorf("overwrite (-want +got):\n%s", diff)
	}
}

// Package mutation maps mutation inputs onto the domain's property keys.
package mutation

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"woocommerce.GO/core/auth"
	"woocommerce.GO/core/hooks"
	"woocommerce.GO/model/entity"
)

// Address kinds.
const (
	Billing  = "billing"
	Shipping = "shipping"
)

var (
	// AddressSkippedKeys filters the input keys address mapping drops.
	AddressSkippedKeys = hooks.New[[]string]("customer_address_input_mapping_skipped")
	// NewCustomerData filters the props a customer mutation writes. Extra
	// args: the raw input map, the mutation name.
	NewCustomerData = hooks.New[map[string]interface{}]("new_customer_data")
)

var addressKeyMap = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"address1":  "address_1",
	"address2":  "address_2",
}

// EmptyShipping is the shipping template an overwrite starts from.
func EmptyShipping() map[string]interface{} {
	return map[string]interface{}{
		"first_name": "",
		"last_name":  "",
		"company":    "",
		"address_1":  "",
		"address_2":  "",
		"city":       "",
		"state":      "",
		"postcode":   "",
		"country":    "",
	}
}

// EmptyBilling is EmptyShipping plus email and phone.
func EmptyBilling() map[string]interface{} {
	m := EmptyShipping()
	m["email"] = ""
	m["phone"] = ""
	return m
}

// AddressInputMapping renames address input keys to property keys. kind is
// Billing or Shipping.
func AddressInputMapping(ctx context.Context, kind string, input map[string]interface{}) map[string]interface{} {
	skipped := AddressSkippedKeys.Apply(ctx, []string{"overwrite"}, hooks.Env{FieldName: kind}, input)
	skip := make(map[string]bool, len(skipped))
	for _, k := range skipped {
		skip[k] = true
	}

	out := map[string]interface{}{}
	if overwrite, _ := input["overwrite"].(bool); overwrite {
		if kind == Billing {
			out = EmptyBilling()
		} else {
			out = EmptyShipping()
		}
	}
	for key, v := range input {
		if mapped, ok := addressKeyMap[key]; ok {
			out[mapped] = v
			continue
		}
		if skip[key] {
			continue
		}
		out[key] = v
	}
	return out
}

// PrepareCustomerProps builds the customer props from a mutation input map.
// Only provided addresses are mapped.
func PrepareCustomerProps(ctx context.Context, input map[string]interface{}, mutation string) map[string]interface{} {
	props := map[string]interface{}{}
	if billing, ok := input[Billing].(map[string]interface{}); ok {
		props[Billing] = AddressInputMapping(ctx, Billing, billing)
	}
	if shipping, ok := input[Shipping].(map[string]interface{}); ok {
		props[Shipping] = AddressInputMapping(ctx, Shipping, shipping)
	}
	props["role"] = auth.RoleCustomer
	return NewCustomerData.Apply(ctx, props, hooks.Env{FieldName: mutation}, input, mutation)
}

// ApplyAddress decodes mapped address props over addr. Keys absent from
// props keep their current value.
func ApplyAddress(addr *entity.Address, props interface{}) error {
	m, ok := props.(map[string]interface{})
	if !ok {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           addr,
		WeaklyTypedInput: true,
		ZeroFields:       false,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(m); err != nil {
		return fmt.Errorf("address: %w", err)
	}
	return nil
}

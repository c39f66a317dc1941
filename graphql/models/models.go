// Package models holds the argument and input structs graph-gophers decodes
// GraphQL arguments into. Field names follow the SDL.
package models

import (
	graphql "github.com/graph-gophers/graphql-go"
)

// --- Connections ---

// ConnectionArgs are the relay pagination arguments.
type ConnectionArgs struct {
	First  *int32
	Last   *int32
	After  *string
	Before *string
}

// Map returns the set arguments keyed by their GraphQL names.
func (a ConnectionArgs) Map() map[string]interface{} {
	m := map[string]interface{}{}
	if a.First != nil {
		m["first"] = int(*a.First)
	}
	if a.Last != nil {
		m["last"] = int(*a.Last)
	}
	if a.After != nil {
		m["after"] = *a.After
	}
	if a.Before != nil {
		m["before"] = *a.Before
	}
	return m
}

// OrderbyInput is shared by every *OrderbyInput type.
type OrderbyInput struct {
	Field string
	Order *string
}

// CommonWhere holds the where fields every post-backed connection accepts.
type CommonWhere struct {
	Search      *string
	Include     *[]int32
	Exclude     *[]int32
	Parent      *int32
	ParentIn    *[]int32
	ParentNotIn *[]int32
	Orderby     *[]OrderbyInput
}

// --- Product ---

type ProductWhere struct {
	Search      *string
	Include     *[]int32
	Exclude     *[]int32
	Parent      *int32
	ParentIn    *[]int32
	ParentNotIn *[]int32
	Orderby     *[]OrderbyInput
	Slug        *string
	Sku         *string
	Type        *string
	TypeIn      *[]string
	Featured    *bool
	StockStatus *[]string
	Status      *string
}

func (w *ProductWhere) Common() CommonWhere {
	if w == nil {
		return CommonWhere{}
	}
	return CommonWhere{w.Search, w.Include, w.Exclude, w.Parent, w.ParentIn, w.ParentNotIn, w.Orderby}
}

func (w *ProductWhere) Map() map[string]interface{} {
	if w == nil {
		return nil
	}
	m := w.Common().Map()
	putString(m, "slug", w.Slug)
	putString(m, "sku", w.Sku)
	putString(m, "type", w.Type)
	putStrings(m, "typeIn", w.TypeIn)
	if w.Featured != nil {
		m["featured"] = *w.Featured
	}
	putStrings(m, "stockStatus", w.StockStatus)
	putString(m, "status", w.Status)
	return m
}

type ProductsArgs struct {
	First  *int32
	Last   *int32
	After  *string
	Before *string
	Where  *ProductWhere
}

func (a ProductsArgs) Connection() ConnectionArgs {
	return ConnectionArgs{a.First, a.Last, a.After, a.Before}
}

type ProductByArgs struct {
	ID        *graphql.ID
	ProductID *int32
	Slug      *string
	Sku       *string
}

// --- Coupon ---

type CouponWhere struct {
	Code        *string
	Search      *string
	Include     *[]int32
	Exclude     *[]int32
	Parent      *int32
	ParentIn    *[]int32
	ParentNotIn *[]int32
	Orderby     *[]OrderbyInput
}

func (w *CouponWhere) Common() CommonWhere {
	if w == nil {
		return CommonWhere{}
	}
	return CommonWhere{w.Search, w.Include, w.Exclude, w.Parent, w.ParentIn, w.ParentNotIn, w.Orderby}
}

func (w *CouponWhere) Map() map[string]interface{} {
	if w == nil {
		return nil
	}
	m := w.Common().Map()
	putString(m, "code", w.Code)
	return m
}

type CouponsArgs struct {
	First  *int32
	Last   *int32
	After  *string
	Before *string
	Where  *CouponWhere
}

func (a CouponsArgs) Connection() ConnectionArgs {
	return ConnectionArgs{a.First, a.Last, a.After, a.Before}
}

type CouponByArgs struct {
	ID       *graphql.ID
	CouponID *int32
	Code     *string
}

// --- Customer ---

type CustomerWhere struct {
	Search  *string
	Include *[]int32
	Exclude *[]int32
	Email   *string
	Role    *string
	Orderby *[]OrderbyInput
}

func (w *CustomerWhere) Common() CommonWhere {
	if w == nil {
		return CommonWhere{}
	}
	return CommonWhere{Search: w.Search, Include: w.Include, Exclude: w.Exclude, Orderby: w.Orderby}
}

func (w *CustomerWhere) Map() map[string]interface{} {
	if w == nil {
		return nil
	}
	m := w.Common().Map()
	putString(m, "email", w.Email)
	putString(m, "role", w.Role)
	return m
}

type CustomersArgs struct {
	First  *int32
	Last   *int32
	After  *string
	Before *string
	Where  *CustomerWhere
}

func (a CustomersArgs) Connection() ConnectionArgs {
	return ConnectionArgs{a.First, a.Last, a.After, a.Before}
}

// CustomerAddressInput is the billing/shipping input of the customer mutations.
type CustomerAddressInput struct {
	FirstName *string
	LastName  *string
	Company   *string
	Address1  *string
	Address2  *string
	City      *string
	State     *string
	Postcode  *string
	Country   *string
	Email     *string
	Phone     *string
	Overwrite *bool
}

// Map returns the provided keys under their GraphQL names.
func (in *CustomerAddressInput) Map() map[string]interface{} {
	if in == nil {
		return nil
	}
	m := map[string]interface{}{}
	putString(m, "firstName", in.FirstName)
	putString(m, "lastName", in.LastName)
	putString(m, "company", in.Company)
	putString(m, "address1", in.Address1)
	putString(m, "address2", in.Address2)
	putString(m, "city", in.City)
	putString(m, "state", in.State)
	putString(m, "postcode", in.Postcode)
	putString(m, "country", in.Country)
	putString(m, "email", in.Email)
	putString(m, "phone", in.Phone)
	if in.Overwrite != nil {
		m["overwrite"] = *in.Overwrite
	}
	return m
}

type CreateCustomerInput struct {
	ClientMutationID *string
	Email            string
	Username         *string
	Password         *string
	FirstName        *string
	LastName         *string
	DisplayName      *string
	Billing          *CustomerAddressInput
	Shipping         *CustomerAddressInput
}

type UpdateCustomerInput struct {
	ClientMutationID *string
	ID               *graphql.ID
	Email            *string
	Password         *string
	FirstName        *string
	LastName         *string
	DisplayName      *string
	Billing          *CustomerAddressInput
	Shipping         *CustomerAddressInput
}

// --- Order ---

type OrderWhere struct {
	Search      *string
	Include     *[]int32
	Exclude     *[]int32
	Parent      *int32
	ParentIn    *[]int32
	ParentNotIn *[]int32
	CustomerID  *int32
	Statuses    *[]string
	Orderby     *[]OrderbyInput
}

func (w *OrderWhere) Common() CommonWhere {
	if w == nil {
		return CommonWhere{}
	}
	return CommonWhere{w.Search, w.Include, w.Exclude, w.Parent, w.ParentIn, w.ParentNotIn, w.Orderby}
}

func (w *OrderWhere) Map() map[string]interface{} {
	if w == nil {
		return nil
	}
	m := w.Common().Map()
	if w.CustomerID != nil {
		m["customerId"] = int(*w.CustomerID)
	}
	putStrings(m, "statuses", w.Statuses)
	return m
}

type OrdersArgs struct {
	First  *int32
	Last   *int32
	After  *string
	Before *string
	Where  *OrderWhere
}

func (a OrdersArgs) Connection() ConnectionArgs {
	return ConnectionArgs{a.First, a.Last, a.After, a.Before}
}

type OrderByArgs struct {
	ID       *graphql.ID
	OrderID  *int32
	OrderKey *string
}

// --- Cart ---

type ApplyCouponInput struct {
	ClientMutationID *string
	Code             string
}

type RemoveCouponsInput struct {
	ClientMutationID *string
	Codes            []string
}

// --- helpers ---

// Map returns the set common fields keyed by their GraphQL names.
func (w CommonWhere) Map() map[string]interface{} {
	m := map[string]interface{}{}
	putString(m, "search", w.Search)
	putInts(m, "include", w.Include)
	putInts(m, "exclude", w.Exclude)
	if w.Parent != nil {
		m["parent"] = int(*w.Parent)
	}
	putInts(m, "parentIn", w.ParentIn)
	putInts(m, "parentNotIn", w.ParentNotIn)
	if w.Orderby != nil {
		list := make([]map[string]interface{}, 0, len(*w.Orderby))
		for _, ob := range *w.Orderby {
			item := map[string]interface{}{"field": ob.Field}
			if ob.Order != nil {
				item["order"] = *ob.Order
			}
			list = append(list, item)
		}
		m["orderby"] = list
	}
	return m
}

// IDs converts GraphQL ints to database ids, dropping negatives.
func IDs(in *[]int32) []uint {
	if in == nil {
		return nil
	}
	out := make([]uint, 0, len(*in))
	for _, v := range *in {
		if v >= 0 {
			out = append(out, uint(v))
		}
	}
	return out
}

func putString(m map[string]interface{}, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}

func putStrings(m map[string]interface{}, key string, v *[]string) {
	if v != nil {
		m[key] = append([]string(nil), *v...)
	}
}

func putInts(m map[string]interface{}, key string, v *[]int32) {
	if v == nil {
		return
	}
	out := make([]int, len(*v))
	for i, n := range *v {
		out[i] = int(n)
	}
	m[key] = out
}

package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func strp(s string) *string { return &s }

func TestCustomerAddressInput_Map_OnlyProvided(t *testing.T) {
	yes := true
	in := &CustomerAddressInput{FirstName: strp("Ada"), Address1: strp("1 Main St"), Overwrite: &yes}
	want := map[string]interface{}{"firstName": "Ada", "address1": "1 Main St", "overwrite": true}
	if diff := cmp.Diff(want, in.Map()); diff != "" {
		t.Errorf("Map() mismatch (-want +got):\n%s", diff)
	}
	var nilIn *CustomerAddressInput
	if nilIn.Map() != nil {
		t.Error("nil input should map to nil")
	}
}

func TestCouponWhere_Map(t *testing.T) {
	asc := "ASC"
	w := &CouponWhere{
		Code:    strp("SAVE10"),
		Include: &[]int32{3, 4},
		Orderby: &[]OrderbyInput{{Field: "CODE", Order: &asc}},
	}
	want := map[string]interface{}{
		"code":    "SAVE10",
		"include": []int{3, 4},
		"orderby": []map[string]interface{}{{"field": "CODE", "order": "ASC"}},
	}
	if diff := cmp.Diff(want, w.Map()); diff != "" {
		t.Errorf("Map() mismatch (-want +got):\n%s", diff)
	}
}

func TestConnectionArgs_Map(t *testing.T) {
	first := int32(5)
	a := ConnectionArgs{First: &first, After: strp("c")}
	want := map[string]interface{}{"first": 5, "after": "c"}
	if diff := cmp.Diff(want, a.Map()); diff != "" {
		t.Errorf("Map() mismatch (-want +got):\n%s", diff)
	}
}

func TestIDs(t *testing.T) {
	if got := IDs(&[]int32{1, -2, 0, 7}); !cmp.Equal(got, []uint{1, 0, 7}) {
		t.Errorf("IDs = %v", got)
	}
	if IDs(nil) != nil {
		t.Error("IDs(nil) should be nil")
	}
}

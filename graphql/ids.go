package graphql

import (
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// Global ID kinds.
const (
	KindProduct  = "product"
	KindCoupon   = "shop_coupon"
	KindCustomer = "customer"
	KindOrder    = "shop_order"
	KindMedia    = "attachment"
)

const cursorKind = "arrayconnection"

// ToGlobalID encodes kind and database id as a relay global id.
func ToGlobalID(kind string, id uint) gql.ID {
	return relay.MarshalID(kind, id)
}

// FromGlobalID decodes a global id. ok is false when the id is malformed or
// carries no positive database id.
func FromGlobalID(id gql.ID) (kind string, dbID uint, ok bool) {
	kind = relay.UnmarshalKind(id)
	if kind == "" {
		return "", 0, false
	}
	var n int64
	if err := relay.UnmarshalSpec(id, &n); err != nil || n <= 0 {
		return kind, 0, false
	}
	return kind, uint(n), true
}

// ToCursor encodes a connection cursor for id.
func ToCursor(id uint) string {
	return string(relay.MarshalID(cursorKind, id))
}

// FromCursor decodes a cursor. Malformed cursors decode to 0.
func FromCursor(cursor string) uint {
	if relay.UnmarshalKind(gql.ID(cursor)) != cursorKind {
		return 0
	}
	var n int64
	if err := relay.UnmarshalSpec(gql.ID(cursor), &n); err != nil || n < 0 {
		return 0
	}
	return uint(n)
}

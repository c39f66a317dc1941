// Package query holds the argument object connection resolvers build and the
// gorm executor that turns it into a list of ids.
package query

// Order directions.
const (
	ASC  = "ASC"
	DESC = "DESC"
)

// StatusAny disables the status filter.
const StatusAny = "any"

// OrderBy is one sort key. Field is a key of Options.OrderColumns.
type OrderBy struct {
	Field string
	Order string
}

// Args describes one connection query. Resolvers fill it from GraphQL
// arguments, filters may rewrite it, Execute runs it.
type Args struct {
	PostType          string
	PostStatus        []string
	Fields            string
	PostsPerPage      int
	CursorOffset      uint
	CursorCompare     string
	PostIn            []uint
	PostNotIn         []uint
	PostParent        *uint
	PostParentIn      []uint
	PostParentNotIn   []uint
	Search            string
	Order             string
	OrderBy           []OrderBy
	IgnoreStickyPosts bool

	// Where holds extra column equality filters. Slice values become IN.
	Where map[string]interface{}

	GraphQLArgs map[string]interface{}
}

// Set stores an extra column filter.
func (a *Args) Set(column string, value interface{}) {
	if a.Where == nil {
		a.Where = make(map[string]interface{})
	}
	a.Where[column] = value
}

// Intersect returns the ids present in both a and b, keeping a's order.
func Intersect(a, b []uint) []uint {
	in := make(map[uint]struct{}, len(b))
	for _, id := range b {
		in[id] = struct{}{}
	}
	out := make([]uint, 0, len(a))
	for _, id := range a {
		if _, ok := in[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// Flip returns the opposite direction.
func Flip(order string) string {
	if order == ASC {
		return DESC
	}
	return ASC
}

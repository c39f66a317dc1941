package resolvers

import (
	"woocommerce.GO/graphql"
	"woocommerce.GO/graphql/connection"
)

// PageInfoResolver resolves PageInfo.
type PageInfoResolver struct {
	page connection.Page
	ids  []uint
}

func newPageInfo(page connection.Page, shown []uint) *PageInfoResolver {
	return &PageInfoResolver{page: page, ids: shown}
}

func (p *PageInfoResolver) HasNextPage() bool { return p.page.HasNextPage }
func (p *PageInfoResolver) HasPreviousPage() bool { return p.page.HasPreviousPage }

func (p *PageInfoResolver) StartCursor() *string {
	if len(p.ids) == 0 {
		return nil
	}
	return strp(graphql.ToCursor(p.ids[0]))
}

func (p *PageInfoResolver) EndCursor() *string {
	if len(p.ids) == 0 {
		return nil
	}
	return strp(graphql.ToCursor(p.ids[len(p.ids)-1]))
}

// ordered keeps page order and drops ids the loader did not return.
func ordered[T any](ids []uint, loaded map[uint]*T) ([]uint, []*T) {
	shown := make([]uint, 0, len(ids))
	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		if v, ok := loaded[id]; ok {
			shown = append(shown, id)
			out = append(out, v)
		}
	}
	return shown, out
}

// Package connection turns relay connection arguments into query.Args, runs
// them through the filter hooks and pages the ids the domain layer returns.
package connection

import (
	"context"

	"woocommerce.GO/core/hooks"
	"woocommerce.GO/core/metrics"
	"woocommerce.GO/graphql"
	"woocommerce.GO/graphql/models"
	"woocommerce.GO/model/query"
)

// DefaultAmount is the page size when neither first nor last is set.
const DefaultAmount = 10

// Querier executes query args and returns ids in page order.
type Querier interface {
	QueryIDs(args query.Args) ([]uint, error)
}

// Page is one resolved page of ids, in display order.
type Page struct {
	IDs             []uint
	HasNextPage     bool
	HasPreviousPage bool
}

// Amount returns the requested page size capped at max.
func Amount(a models.ConnectionArgs, max int) (int, error) {
	if a.First != nil && *a.First < 0 {
		return 0, graphql.NewUserError("First must be a positive integer.")
	}
	if a.Last != nil && *a.Last < 0 {
		return 0, graphql.NewUserError("Last must be a positive integer.")
	}
	amount := DefaultAmount
	switch {
	case a.First != nil && *a.First > 0:
		amount = int(*a.First)
	case a.Last != nil && *a.Last > 0:
		amount = int(*a.Last)
	}
	if max > 0 && amount > max {
		amount = max
	}
	return amount, nil
}

// IsBackward reports whether the connection pages from the end. last: 0
// counts as unset.
func IsBackward(a models.ConnectionArgs) bool {
	return a.Last != nil && *a.Last > 0
}

// Offset is the database id named by after, or else before.
func Offset(a models.ConnectionArgs) uint {
	if a.After != nil && *a.After != "" {
		return graphql.FromCursor(*a.After)
	}
	if a.Before != nil && *a.Before != "" {
		return graphql.FromCursor(*a.Before)
	}
	return 0
}

// Resolver is a connection query ready to run.
type Resolver struct {
	Args      query.Args
	Env       hooks.Env
	conn      models.ConnectionArgs
	amount    int
	querier   Querier
	execute   bool
	finalized bool
	final     *hooks.Filter[query.Args]
}

// base builds the query args every connection starts from.
func base(postType string, a models.ConnectionArgs, raw map[string]interface{}, max int) (query.Args, int, error) {
	amount, err := Amount(a, max)
	if err != nil {
		return query.Args{}, 0, err
	}

	first, last := 0, 0
	if a.First != nil {
		first = int(*a.First)
	}
	if a.Last != nil {
		last = int(*a.Last)
	}
	perPage := first
	if last > perPage {
		perPage = last
	}
	if DefaultAmount > perPage {
		perPage = DefaultAmount
	}
	if amount < perPage {
		perPage = amount
	}

	args := query.Args{
		PostType:     postType,
		PostStatus:   []string{query.StatusAny},
		Fields:       "ids",
		PostsPerPage: perPage + 1,
		CursorOffset: Offset(a),
		GraphQLArgs:  raw,
	}
	if IsBackward(a) {
		args.CursorCompare = ">"
	} else {
		args.CursorCompare = "<"
	}
	if args.CursorOffset != 0 {
		args.IgnoreStickyPosts = true
	}
	return args, amount, nil
}

// defaultOrder sets the id order when no orderby was requested.
func defaultOrder(args *query.Args, a models.ConnectionArgs) {
	if len(args.OrderBy) > 0 {
		return
	}
	if IsBackward(a) {
		args.Order = query.ASC
	} else {
		args.Order = query.DESC
	}
}

// ShouldExecute reports whether the query will run at all.
func (r *Resolver) ShouldExecute() bool {
	return r.execute
}

// QueryArgs returns the final args after the connection's args filter.
func (r *Resolver) QueryArgs(ctx context.Context) query.Args {
	if !r.finalized {
		if r.final != nil {
			r.Args = r.final.Apply(ctx, r.Args, r.Env)
		}
		r.finalized = true
	}
	return r.Args
}

// Page runs the query and slices one page out of it.
func (r *Resolver) Page(ctx context.Context) (Page, error) {
	args := r.QueryArgs(ctx)
	if !r.execute {
		return Page{}, nil
	}
	metrics.ConnectionQueries.WithLabelValues(args.PostType).Inc()
	ids, err := r.querier.QueryIDs(args)
	if err != nil {
		return Page{}, err
	}
	return Paginate(ids, r.conn, r.amount), nil
}

// Paginate trims the extra lookahead id and orders ids for display.
func Paginate(ids []uint, a models.ConnectionArgs, amount int) Page {
	more := len(ids) > amount
	if more {
		ids = ids[:amount]
	}
	out := make([]uint, len(ids))
	copy(out, ids)
	backward := IsBackward(a)
	if backward {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return Page{
		IDs:             out,
		HasNextPage:     !backward && more,
		HasPreviousPage: backward && more,
	}
}

package query

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"woocommerce.GO/core/metrics"
)

// Options describes the table an Args runs against.
type Options struct {
	// SearchColumns are matched with LIKE for Args.Search.
	SearchColumns []string
	// OrderColumns maps OrderBy.Field to a column. Unknown fields are ignored.
	OrderColumns map[string]string
	HasStatus    bool
	HasParent    bool
}

type sortKey struct {
	column string
	desc   bool
}

// Execute runs args against model's table and returns matching ids in page
// order. At most PostsPerPage ids are returned.
func Execute(db *gorm.DB, model interface{}, args Args, opts Options) ([]uint, error) {
	start := time.Now()
	defer func() {
		metrics.DBQueryDuration.WithLabelValues("connection_" + args.PostType).Observe(time.Since(start).Seconds())
	}()

	q := db.Model(model)
	q = applyFilters(q, args, opts)

	keys := sortKeys(args, opts)
	if args.CursorOffset > 0 {
		pred, err := cursorPredicate(db, model, keys, args)
		if err != nil {
			return nil, err
		}
		q = q.Where(pred)
	}
	for _, k := range keys {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: k.column}, Desc: k.desc})
	}
	if args.PostsPerPage > 0 {
		q = q.Limit(args.PostsPerPage)
	}

	var ids []uint
	if err := q.Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("query %s: %w", args.PostType, err)
	}
	return ids, nil
}

func applyFilters(q *gorm.DB, args Args, opts Options) *gorm.DB {
	if opts.HasStatus && len(args.PostStatus) > 0 && !containsString(args.PostStatus, StatusAny) {
		q = q.Where(clause.IN{Column: clause.Column{Name: "status"}, Values: toValues(args.PostStatus)})
	}
	if len(args.PostIn) > 0 {
		q = q.Where(clause.IN{Column: clause.Column{Name: "id"}, Values: toValues(args.PostIn)})
	}
	if len(args.PostNotIn) > 0 {
		q = q.Not(clause.IN{Column: clause.Column{Name: "id"}, Values: toValues(args.PostNotIn)})
	}
	if opts.HasParent {
		if args.PostParent != nil {
			q = q.Where(clause.Eq{Column: clause.Column{Name: "parent_id"}, Value: *args.PostParent})
		}
		if len(args.PostParentIn) > 0 {
			q = q.Where(clause.IN{Column: clause.Column{Name: "parent_id"}, Values: toValues(args.PostParentIn)})
		}
		if len(args.PostParentNotIn) > 0 {
			q = q.Not(clause.IN{Column: clause.Column{Name: "parent_id"}, Values: toValues(args.PostParentNotIn)})
		}
	}
	if args.Search != "" && len(opts.SearchColumns) > 0 {
		like := "%" + args.Search + "%"
		ors := make([]clause.Expression, 0, len(opts.SearchColumns))
		for _, col := range opts.SearchColumns {
			ors = append(ors, clause.Like{Column: clause.Column{Name: col}, Value: like})
		}
		q = q.Where(clause.Or(ors...))
	}
	for col, v := range args.Where {
		switch vv := v.(type) {
		case []string:
			q = q.Where(clause.IN{Column: clause.Column{Name: col}, Values: toValues(vv)})
		case []uint:
			q = q.Where(clause.IN{Column: clause.Column{Name: col}, Values: toValues(vv)})
		default:
			q = q.Where(clause.Eq{Column: clause.Column{Name: col}, Value: v})
		}
	}
	return q
}

// sortKeys resolves the effective ORDER BY, always ending with id. When
// paginating backward with an explicit orderby every key is flipped; the
// caller reverses the page. An explicit id key ends the list, since nothing
// after it can break a tie.
func sortKeys(args Args, opts Options) []sortKey {
	backward := args.CursorCompare == ">"
	var keys []sortKey
	for _, ob := range args.OrderBy {
		col, ok := opts.OrderColumns[ob.Field]
		if !ok {
			continue
		}
		order := ob.Order
		if order == "" {
			order = args.Order
		}
		if order == "" {
			order = DESC
		}
		if backward {
			order = Flip(order)
		}
		keys = append(keys, sortKey{column: col, desc: order == DESC})
		if col == "id" {
			return keys
		}
	}
	idOrder := args.Order
	if idOrder == "" {
		idOrder = DESC
		if backward {
			idOrder = ASC
		}
	}
	idDesc := idOrder == DESC
	if len(keys) > 0 {
		idDesc = keys[0].desc
	}
	return append(keys, sortKey{column: "id", desc: idDesc})
}

// cursorPredicate builds (k1 op v1) OR (k1 = v1 AND k2 op v2) ... over the
// sort keys, using the cursor row's values.
func cursorPredicate(db *gorm.DB, model interface{}, keys []sortKey, args Args) (clause.Expression, error) {
	cursor := args.CursorOffset
	if len(keys) == 1 {
		return compare(keys[0].column, cursorOp(args, keys[0]), cursor), nil
	}

	cols := make([]string, 0, len(keys))
	for _, k := range keys {
		cols = append(cols, k.column)
	}
	row := map[string]interface{}{}
	err := db.Model(model).Select(cols).Where(clause.Eq{Column: clause.Column{Name: "id"}, Value: cursor}).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return compare("id", cursorOp(args, keys[len(keys)-1]), cursor), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cursor %d: %w", cursor, err)
	}
	row["id"] = cursor

	ors := make([]clause.Expression, 0, len(keys))
	for i, k := range keys {
		ands := make([]clause.Expression, 0, i+1)
		for _, prev := range keys[:i] {
			ands = append(ands, clause.Eq{Column: clause.Column{Name: prev.column}, Value: row[prev.column]})
		}
		ands = append(ands, compare(k.column, keyOp(k), row[k.column]))
		ors = append(ors, clause.And(ands...))
	}
	return clause.Or(ors...), nil
}

// cursorOp honours an explicit CursorCompare for the default id order. An
// explicit orderby decides the direction through its keys.
func cursorOp(args Args, k sortKey) string {
	if len(args.OrderBy) > 0 {
		return keyOp(k)
	}
	if args.CursorCompare == ">" || args.CursorCompare == "<" {
		return args.CursorCompare
	}
	return keyOp(k)
}

func keyOp(k sortKey) string {
	if k.desc {
		return "<"
	}
	return ">"
}

func compare(col, op string, v interface{}) clause.Expression {
	c := clause.Column{Name: col}
	if op == ">" {
		return clause.Gt{Column: c, Value: v}
	}
	return clause.Lt{Column: c, Value: v}
}

func toValues[T any](in []T) []interface{} {
	out := make([]interface{}, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

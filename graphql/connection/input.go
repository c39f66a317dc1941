package connection

import (
	"strings"

	"woocommerce.GO/graphql/models"
	"woocommerce.GO/model/query"
)

// Keys of the mapped where input, in the host's query-var vocabulary.
const (
	KeySearch          = "search"
	KeyPostIn          = "post__in"
	KeyPostNotIn       = "post__not_in"
	KeyPostParent      = "post_parent"
	KeyPostParentIn    = "post_parent__in"
	KeyPostParentNotIn = "post_parent__not_in"
	KeyOrderBy         = "orderby"
	KeyPostStatus      = "post_status"
)

// SanitizeInputFields maps the shared where fields onto query vars.
func SanitizeInputFields(w models.CommonWhere) map[string]interface{} {
	out := map[string]interface{}{}
	if w.Search != nil && *w.Search != "" {
		out[KeySearch] = *w.Search
	}
	if w.Include != nil {
		out[KeyPostIn] = models.IDs(w.Include)
	}
	if w.Exclude != nil {
		out[KeyPostNotIn] = models.IDs(w.Exclude)
	}
	if w.Parent != nil && *w.Parent >= 0 {
		out[KeyPostParent] = uint(*w.Parent)
	}
	if w.ParentIn != nil {
		out[KeyPostParentIn] = models.IDs(w.ParentIn)
	}
	if w.ParentNotIn != nil {
		out[KeyPostParentNotIn] = models.IDs(w.ParentNotIn)
	}
	if w.Orderby != nil && len(*w.Orderby) > 0 {
		obs := make([]query.OrderBy, 0, len(*w.Orderby))
		for _, in := range *w.Orderby {
			if in.Field == "" {
				continue
			}
			ob := query.OrderBy{Field: strings.ToLower(in.Field)}
			if in.Order != nil {
				ob.Order = *in.Order
			}
			obs = append(obs, ob)
		}
		out[KeyOrderBy] = obs
	}
	return out
}

// Merge applies mapped input over args. Keys outside the query-var
// vocabulary become column filters.
func Merge(args *query.Args, input map[string]interface{}) {
	for key, v := range input {
		switch key {
		case KeySearch:
			args.Search, _ = v.(string)
		case KeyPostIn:
			args.PostIn, _ = v.([]uint)
		case KeyPostNotIn:
			args.PostNotIn, _ = v.([]uint)
		case KeyPostParent:
			if id, ok := v.(uint); ok {
				args.PostParent = &id
			}
		case KeyPostParentIn:
			args.PostParentIn, _ = v.([]uint)
		case KeyPostParentNotIn:
			args.PostParentNotIn, _ = v.([]uint)
		case KeyOrderBy:
			args.OrderBy, _ = v.([]query.OrderBy)
		case KeyPostStatus:
			args.PostStatus, _ = v.([]string)
		default:
			args.Set(key, v)
		}
	}
}

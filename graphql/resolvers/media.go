package resolvers

import (
	"context"
	"fmt"
	"strings"

	gql "github.com/graph-gophers/graphql-go"

	"woocommerce.GO/graphql"
	mediaEntity "woocommerce.GO/model/entity/media"
)

// MediaItemResolver resolves MediaItem.
type MediaItemResolver struct {
	d *Deps
	m *mediaEntity.MediaItem
}

func (r *RootResolver) mediaByID(id uint) (*MediaItemResolver, error) {
	m, err := r.d.Media.FindByID(id)
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &MediaItemResolver{d: r.d, m: m}, nil
}

func (r *RootResolver) MediaItem(ctx context.Context, args struct{ ID gql.ID }) (*MediaItemResolver, error) {
	_, id, ok := graphql.FromGlobalID(args.ID)
	if !ok {
		return nil, graphql.NewUserError("The ID input is invalid")
	}
	return r.mediaByID(id)
}

func (m *MediaItemResolver) ID() gql.ID {
	return graphql.ToGlobalID(graphql.KindMedia, m.m.ID)
}

func (m *MediaItemResolver) MediaItemID() *int32 { return idp(m.m.ID) }
func (m *MediaItemResolver) Title() *string { return strp(m.m.Title) }
func (m *MediaItemResolver) AltText() *string { return strp(m.m.AltText) }
func (m *MediaItemResolver) MimeType() *string { return strp(m.m.MimeType) }
func (m *MediaItemResolver) Width() *int32 { return int32p(m.m.Width) }
func (m *MediaItemResolver) Height() *int32 { return int32p(m.m.Height) }

// SourceURL points at the media route; without a size it serves the original.
func (m *MediaItemResolver) SourceURL(args struct{ Size *string }) *string {
	size := "full"
	if args.Size != nil {
		if v, ok := graphql.MediaSize.Value(*args.Size); ok {
			size = v
		}
	}
	base := strings.TrimRight(m.d.Config.BaseURL, "/")
	return strp(fmt.Sprintf("%s/media/%d/%s", base, m.m.ID, size))
}

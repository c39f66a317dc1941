// Package graphqlserver builds the executable schema and its HTTP handler.
package graphqlserver

import (
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"gorm.io/gorm"

	"woocommerce.GO/config"
	"woocommerce.GO/core/session"
	"woocommerce.GO/graphql"
	"woocommerce.GO/graphql/resolvers"
)

// NewSchema parses the schema against the root resolver over db.
func NewSchema(db *gorm.DB, sessions session.Store, cfg *config.Config) (*gql.Schema, error) {
	deps, err := resolvers.NewDeps(db, sessions, cfg)
	if err != nil {
		return nil, err
	}
	return NewSchemaWithDeps(deps)
}

// NewSchemaWithDeps parses the schema against prepared dependencies.
func NewSchemaWithDeps(deps *resolvers.Deps) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), resolvers.NewRootResolver(deps),
		gql.UseFieldResolvers(),
		gql.MaxDepth(15),
	)
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}

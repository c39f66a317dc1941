package graphql

import (
	"net/http"
	"strconv"
	"time"

	"github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"

	"woocommerce.GO/api"
	"woocommerce.GO/core/auth"
	"woocommerce.GO/core/metrics"
	"woocommerce.GO/core/session"
	_ "woocommerce.GO/custom"
	graphqlpkg "woocommerce.GO/graphql"
	"woocommerce.GO/graphqlserver"
	authRepo "woocommerce.GO/model/repository/auth"
)

func init() {
	api.RegisterRoute(RegisterGraphQLRoutes)
}

// RegisterGraphQLRoutes mounts /graphql and /playground.
func RegisterGraphQLRoutes(e *echo.Echo, env *api.Env) {
	schema, err := graphqlserver.NewSchema(env.DB, env.Sessions, env.Config)
	if err != nil {
		panic("graphql schema: " + err.Error())
	}
	registerRoutes(e, schema, authRepo.NewAuthRepository(env.DB))
}

// RegisterGraphQLRoutesWithSchema registers /graphql with a prepared schema (tests).
func RegisterGraphQLRoutesWithSchema(e *echo.Echo, schema *graphql.Schema, tokens *authRepo.AuthRepository) {
	registerRoutes(e, schema, tokens)
}

func registerRoutes(e *echo.Echo, schema *graphql.Schema, tokens *authRepo.AuthRepository) {
	handler := graphqlserver.Handler(schema)
	h := requestContextMiddleware(tokens, handler)
	e.POST("/graphql", echo.WrapHandler(h))
	e.GET("/graphql", echo.WrapHandler(h))
	e.GET("/playground", echo.WrapHandler(playgroundHandler()))
}

// requestContextMiddleware puts the viewer and the cart session on the request
// context. A session token created while resolving is sent back in the
// woocommerce-session response header.
func requestContextMiddleware(tokens *authRepo.AuthRepository, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		viewer := auth.Viewer{}
		if tokens != nil {
			viewer = auth.ResolveBearer(tokens, r.Header.Get("Authorization"))
		}
		ctx := auth.WithViewer(r.Context(), viewer)

		token := session.ParseHeader(r.Header.Get(session.HeaderName))
		sess := graphqlpkg.NewRequestSession(token, func(issued string) {
			w.Header().Set(session.HeaderName, issued)
		})
		ctx = graphqlpkg.WithSession(ctx, sess)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		metrics.GraphQLRequestDuration.WithLabelValues(strconv.Itoa(rec.status)).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func playgroundHandler() http.Handler {
	html := `<!DOCTYPE html>
<html>
<head>
	<title>GraphQL Playground</title>
	<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/css/index.css"/>
</head>
<body>
	<div id="root"/>
	<script src="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/js/middleware.js"></script>
	<script>window.addEventListener('load', function() {
		GraphQLPlayground.init({ endpoint: '/graphql', settings: { 'request.credentials': 'include' } });
	})</script>
</body>
</html>`
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(html))
	})
}

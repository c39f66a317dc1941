package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// GraphQL resolves its own viewer; availability, media and metrics are public.
	return []string{
		"/api/products/availability",
		"/graphql",
		"/playground",
		"/media/:id/:size",
		"/metrics",
	}
}

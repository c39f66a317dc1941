package api

import (
	"sync"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"woocommerce.GO/config"
	"woocommerce.GO/core/registry"
	"woocommerce.GO/core/session"
)

// Env is what route modules are built from.
type Env struct {
	DB       *gorm.DB
	Config   *config.Config
	Sessions session.Store
}

var mu sync.Mutex

// ModuleFunc registers routes on the authenticated /api group.
type ModuleFunc func(g *echo.Group, env *Env)

// RouteFunc registers public routes on the root Echo instance.
type RouteFunc func(e *echo.Echo, env *Env)

func entries[T any](key string) []T {
	if v, ok := registry.GlobalRegistry.GetGlobal(key); ok && v != nil {
		return v.([]T)
	}
	return nil
}

func add[T any](key, what string, fn T) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(key) {
		panic("api/registry: " + what + " locked (register only during init)")
	}
	registry.GlobalRegistry.SetGlobal(key, append(entries[T](key), fn))
}

// RegisterModule registers an /api module. Call from init().
func RegisterModule(fn ModuleFunc) {
	add(registry.KeyRegistryAPI, "API modules", fn)
}

// RegisterRoute registers a root-level route module. Call from init().
func RegisterRoute(fn RouteFunc) {
	add(registry.KeyRegistryRoutes, "routes", fn)
}

// RegisterGET is shorthand for a public GET route.
func RegisterGET(path string, handler echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ *Env) {
		e.GET(path, handler)
	})
}

// RegisterPOST is shorthand for a public POST route.
func RegisterPOST(path string, handler echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ *Env) {
		e.POST(path, handler)
	})
}

// ApplyModules mounts every /api module on g and locks the module list.
func ApplyModules(g *echo.Group, env *Env) {
	registry.GlobalRegistry.Lock(registry.KeyRegistryAPI)
	for _, fn := range entries[ModuleFunc](registry.KeyRegistryAPI) {
		fn(g, env)
	}
}

// ApplyRoutes mounts every root-level route module on e and locks the list.
func ApplyRoutes(e *echo.Echo, env *Env) {
	registry.GlobalRegistry.Lock(registry.KeyRegistryRoutes)
	for _, fn := range entries[RouteFunc](registry.KeyRegistryRoutes) {
		fn(e, env)
	}
}

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"woocommerce.GO/config"
	"woocommerce.GO/core/registry"
)

func TestRegistry_RoutesAndModules(t *testing.T) {
	RegisterGET("/test/registry/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	var gotEnv *Env
	RegisterModule(func(g *echo.Group, env *Env) {
		gotEnv = env
		g.GET("/test/module", func(c echo.Context) error {
			return c.String(http.StatusOK, env.Config.AppName)
		})
	})
	defer registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryAPI)
	defer registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryRoutes)

	env := &Env{Config: &config.Config{AppName: "shop"}}
	e := echo.New()
	ApplyModules(e.Group("/api"), env)
	ApplyRoutes(e, env)
	if gotEnv != env {
		t.Error("module did not receive the env")
	}

	for path, want := range map[string]string{
		"/test/registry/check": `{"status":"ok"}` + "\n",
		"/api/test/module":     "shop",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK || rec.Body.String() != want {
			t.Errorf("%s: %d %q, want 200 %q", path, rec.Code, rec.Body.String(), want)
		}
	}
}

func TestRegistry_LockedPanics(t *testing.T) {
	ApplyRoutes(echo.New(), &Env{})
	defer registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryRoutes)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic registering after ApplyRoutes")
		}
	}()
	RegisterGET("/late", func(c echo.Context) error { return nil })
}

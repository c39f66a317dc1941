package auth

import (
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"woocommerce.GO/config"
	entity "woocommerce.GO/model/entity"
	authRepo "woocommerce.GO/model/repository/auth"
)

// Middleware returns the auth middleware based on AUTH_TYPE env var.
func Middleware(db *gorm.DB) echo.MiddlewareFunc {
	skipper := buildSkipper()
	authType := os.Getenv("AUTH_TYPE")
	switch authType {
	case "key":
		return keyAuth(skipper)
	case "token":
		return tokenAuth(authRepo.NewAuthRepository(db), skipper)
	default:
		return basicAuth(skipper)
	}
}

func buildSkipper() middleware.Skipper {
	skipPaths := config.GetAuthSkipperPaths()
	return func(c echo.Context) bool {
		path := c.Path()
		for _, skip := range skipPaths {
			if path == skip {
				return true
			}
		}
		return false
	}
}

func basicAuth(skipper middleware.Skipper) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Validator: func(username, password string, c echo.Context) (bool, error) {
			ok := username == os.Getenv("API_USER") && password == os.Getenv("API_PASS")
			if ok {
				setViewer(c, Viewer{Role: RoleAdministrator})
			}
			return ok, nil
		},
		Skipper: skipper,
	})
}

func keyAuth(skipper middleware.Skipper) echo.MiddlewareFunc {
	apiKey := os.Getenv("API_KEY")
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Validator: func(key string, c echo.Context) (bool, error) {
			ok := apiKey != "" && key == apiKey
			if ok {
				setViewer(c, Viewer{Role: RoleAdministrator})
			}
			return ok, nil
		},
		Skipper: skipper,
	})
}

func tokenAuth(repo *authRepo.AuthRepository, skipper middleware.Skipper) echo.MiddlewareFunc {
	staticKey := os.Getenv("API_KEY")
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Validator: func(token string, c echo.Context) (bool, error) {
			if staticKey != "" && token == staticKey {
				c.Set("auth_type", "static")
				setViewer(c, Viewer{Role: RoleAdministrator})
				return true, nil
			}
			apiToken, err := repo.FindActiveToken(token)
			if err != nil {
				return false, nil
			}
			c.Set("auth_type", "token")
			c.Set("api_token", apiToken)
			setViewer(c, ViewerForToken(apiToken))
			return true, nil
		},
		Skipper: skipper,
	})
}

// ViewerForToken maps a stored token to the viewer it authenticates.
func ViewerForToken(t *entity.APIToken) Viewer {
	v := Viewer{Role: t.Role}
	if t.CustomerID != nil {
		v.CustomerID = *t.CustomerID
	}
	if v.Role == "" {
		v.Role = RoleCustomer
	}
	return v
}

// ResolveBearer returns the viewer for an "Authorization: Bearer <token>"
// header value. Unknown tokens resolve to a guest.
func ResolveBearer(repo *authRepo.AuthRepository, header string) Viewer {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return Viewer{}
	}
	if staticKey := os.Getenv("API_KEY"); staticKey != "" && token == staticKey {
		return Viewer{Role: RoleAdministrator}
	}
	t, err := repo.FindActiveToken(token)
	if err != nil {
		return Viewer{}
	}
	return ViewerForToken(t)
}

func setViewer(c echo.Context, v Viewer) {
	c.Set("viewer", v)
	c.SetRequest(c.Request().WithContext(WithViewer(c.Request().Context(), v)))
}

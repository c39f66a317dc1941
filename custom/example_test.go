package custom

import (
	"context"
	"strings"
	"testing"

	gqlregistry "woocommerce.GO/graphql/registry"
)

func TestStoreSettingsExtension(t *testing.T) {
	out, err := gqlregistry.ResolveJSON(context.Background(), "storeSettings", nil)
	if err != nil {
		t.Fatalf("ResolveJSON: %v", err)
	}
	if out == nil || !strings.Contains(*out, `"currencySymbol"`) {
		t.Errorf("storeSettings = %v", out)
	}
}

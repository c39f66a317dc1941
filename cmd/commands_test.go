package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func run(t *testing.T, out *bytes.Buffer, args ...string) {
	t.Helper()
	out.Reset()
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
}

func TestCommands_MigrateImportTokens(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "shop.db"))
	t.Setenv("GORM_LOG", "off")

	csvPath := filepath.Join(dir, "products.csv")
	if err := os.WriteFile(csvPath, []byte("sku,name,regular_price\nHD-1,Hoodie,10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := &bytes.Buffer{}
	run(t, out, "migrate")

	run(t, out, "products:import", "-f", csvPath, "--media-dir", dir)
	if !strings.Contains(out.String(), "Created:        1") {
		t.Errorf("import report:\n%s", out.String())
	}

	run(t, out, "tokens:create", "--role", "shop_manager")
	if tok := strings.TrimSpace(out.String()); len(tok) != 64 {
		t.Errorf("token = %q, want 64 hex chars", tok)
	}
}

func TestNewToken(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	tok, err := NewToken("customer", time.Hour, now)
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}
	if tok.ExpiresAt == nil || !tok.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Errorf("ExpiresAt = %v", tok.ExpiresAt)
	}
	other, _ := NewToken("customer", 0, now)
	if other.ExpiresAt != nil || other.Token == tok.Token {
		t.Errorf("zero ttl token = %+v", other)
	}
	if _, err := NewToken("root", 0, now); err == nil {
		t.Error("unknown role: want error")
	}
}

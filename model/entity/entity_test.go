package entity

import "testing"

func TestAPIToken_TableName(t *testing.T) {
	if got := (APIToken{}).TableName(); got != "wc_api_tokens" {
		t.Errorf("TableName() = %q, want wc_api_tokens", got)
	}
}

package models

import "testing"

func TestProfileCloneIsDeep(t *testing.T) {
	original := Profile{
		Name:       "work",
		ProviderID: "anthropic",
		APIKey:     "sk-test",
		Model:      "claude-3-5-sonnet-20241022",
		Headers:    map[string]string{"X-Team": "infra"},
	}

	clone := original.Clone()
	clone.Headers["X-Team"] = "changed"

	if original.Headers["X-Team"] != "infra" {
		t.Errorf("mutating clone headers affected the original")
	}
}

func TestProviderPresetCloneIsDeep(t *testing.T) {
	limit := &RateLimit{RequestsPerMinute: 50}
	original := ProviderPreset{
		ID:            "anthropic",
		Name:          "anthropic",
		DisplayName:   "Anthropic",
		BaseURL:       "https://api.anthropic.com",
		DefaultModels: []string{"claude-3-5-sonnet-20241022"},
		AuthType:      AuthTypeAPIKey,
		Headers:       map[string]string{"X-Custom": "v"},
		RateLimit:     limit,
	}

	clone := original.Clone()
	clone.DefaultModels[0] = "changed"
	clone.Headers["X-Custom"] = "changed"
	clone.RateLimit.RequestsPerMinute = 1

	if original.DefaultModels[0] != "claude-3-5-sonnet-20241022" {
		t.Errorf("mutating clone models affected the original")
	}
	if original.Headers["X-Custom"] != "v" {
		t.Errorf("mutating clone headers affected the original")
	}
	if original.RateLimit.RequestsPerMinute != 50 {
		t.Errorf("mutating clone rate limit affected the original")
	}
}

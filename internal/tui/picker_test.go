package tui

import (
	"testing"

	"ccswitch/config/models"
)

func pickerOptions() []models.ProviderPreset {
	return []models.ProviderPreset{
		{ID: "anthropic", DisplayName: "Anthropic"},
		{ID: "deepseek", DisplayName: "DeepSeek"},
		{ID: "zhipu", DisplayName: "Zhipu GLM"},
	}
}

func TestFilterProvidersEmptyQuery(t *testing.T) {
	options := pickerOptions()
	got := filterProviders(options, "  ")
	if len(got) != len(options) {
		t.Errorf("blank query should keep everything, got %d of %d", len(got), len(options))
	}
}

func TestFilterProvidersMatchesIDAndDisplayName(t *testing.T) {
	options := pickerOptions()

	got := filterProviders(options, "deep")
	if len(got) != 1 || got[0].ID != "deepseek" {
		t.Errorf("id substring match failed: %v", got)
	}

	got = filterProviders(options, "GLM")
	if len(got) != 1 || got[0].ID != "zhipu" {
		t.Errorf("case-insensitive display name match failed: %v", got)
	}
}

func TestFilterProvidersNoMatch(t *testing.T) {
	if got := filterProviders(pickerOptions(), "nomatch"); len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}

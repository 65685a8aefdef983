package providers

import (
	"testing"

	"ccswitch/config/models"
)

func newTestResolver(t *testing.T) (*Resolver, *Store) {
	t.Helper()
	store := newTestStore(t)
	return NewResolver(store), store
}

func TestResolverAllMergesUserProviders(t *testing.T) {
	resolver, store := newTestResolver(t)

	if err := store.Upsert(userProvider("internal")); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	all := resolver.All()
	if len(all) != len(Presets())+1 {
		t.Fatalf("expected %d providers, got %d", len(Presets())+1, len(all))
	}
	last := all[len(all)-1]
	if last.ID != "internal" {
		t.Errorf("user-only provider should follow built-ins, got %q last", last.ID)
	}
}

func TestResolverUserShadowsBuiltin(t *testing.T) {
	resolver, store := newTestResolver(t)

	override := userProvider("deepseek")
	override.BaseURL = "https://proxy.internal.example.com"
	if err := store.Upsert(override); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	got, ok := resolver.Resolve("deepseek")
	if !ok {
		t.Fatalf("deepseek did not resolve")
	}
	if got.BaseURL != "https://proxy.internal.example.com" {
		t.Errorf("user entry should shadow the built-in, got baseURL %q", got.BaseURL)
	}

	// The merged list keeps the built-in's position but carries the user body.
	all := resolver.All()
	if len(all) != len(Presets()) {
		t.Fatalf("shadowing should not grow the registry: got %d entries", len(all))
	}
	for _, p := range all {
		if p.ID == "deepseek" && p.BaseURL != "https://proxy.internal.example.com" {
			t.Errorf("merged list does not carry the shadowing entry")
		}
	}

	if !resolver.IsShadowed("deepseek") {
		t.Errorf("IsShadowed should report the override")
	}
	if resolver.IsShadowed("anthropic") {
		t.Errorf("anthropic is not shadowed")
	}
	if resolver.IsShadowed("internal") {
		t.Errorf("a user-only id is not a shadowed built-in")
	}
}

func TestResolverResolveUnknown(t *testing.T) {
	resolver, _ := newTestResolver(t)
	if _, ok := resolver.Resolve("missing"); ok {
		t.Errorf("unknown id should not resolve")
	}
}

func TestEffectiveUsesPresetEndpoint(t *testing.T) {
	resolver, _ := newTestResolver(t)

	profile := models.Profile{
		Name:       "work",
		ProviderID: "deepseek",
		APIKey:     "sk-test",
		Model:      "deepseek-chat",
	}

	ec, resolved := resolver.Effective(profile)
	if !resolved {
		t.Fatalf("deepseek should resolve")
	}
	if ec.BaseURL != "https://api.deepseek.com/anthropic" {
		t.Errorf("expected preset endpoint, got %q", ec.BaseURL)
	}
	if ec.AuthType != models.AuthTypeBearer {
		t.Errorf("expected preset auth type, got %q", ec.AuthType)
	}
}

func TestEffectiveProfileOverridesEndpoint(t *testing.T) {
	resolver, _ := newTestResolver(t)

	profile := models.Profile{
		Name:       "work",
		ProviderID: "deepseek",
		APIKey:     "sk-test",
		Model:      "deepseek-chat",
		BaseURL:    "https://mirror.example.com/",
	}

	ec, _ := resolver.Effective(profile)
	if ec.BaseURL != "https://mirror.example.com" {
		t.Errorf("profile endpoint should win and be normalized, got %q", ec.BaseURL)
	}
}

func TestEffectiveUnknownProviderFallsBack(t *testing.T) {
	resolver, _ := newTestResolver(t)

	profile := models.Profile{
		Name:       "work",
		ProviderID: "gone",
		APIKey:     "sk-test",
		Model:      "some-model",
		BaseURL:    "https://api.gone.example.com",
	}

	ec, resolved := resolver.Effective(profile)
	if resolved {
		t.Errorf("unknown provider should report unresolved")
	}
	if ec.AuthType != models.AuthTypeAPIKey {
		t.Errorf("unresolved provider should fall back to api-key auth, got %q", ec.AuthType)
	}
	if ec.BaseURL != "https://api.gone.example.com" {
		t.Errorf("profile fields should be used as-is, got %q", ec.BaseURL)
	}
}

func TestEffectiveHeaderMerge(t *testing.T) {
	resolver, store := newTestResolver(t)

	provider := userProvider("internal")
	provider.Headers = map[string]string{"X-Team": "platform", "X-Region": "eu"}
	if err := store.Upsert(provider); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	profile := models.Profile{
		Name:       "work",
		ProviderID: "internal",
		APIKey:     "sk-test",
		Model:      "internal-chat",
		Headers:    map[string]string{"X-Region": "us"},
	}

	ec, _ := resolver.Effective(profile)
	if ec.Headers["X-Team"] != "platform" {
		t.Errorf("preset header lost in merge")
	}
	if ec.Headers["X-Region"] != "us" {
		t.Errorf("profile header should win per key, got %q", ec.Headers["X-Region"])
	}
}

func TestEnvMapping(t *testing.T) {
	bearer := EffectiveConfig{
		BaseURL:  "https://api.deepseek.com/anthropic",
		Model:    "deepseek-chat",
		APIKey:   "sk-bearer",
		AuthType: models.AuthTypeBearer,
	}
	env := bearer.Env()
	if env["ANTHROPIC_AUTH_TOKEN"] != "sk-bearer" {
		t.Errorf("bearer auth should set ANTHROPIC_AUTH_TOKEN")
	}
	if _, ok := env["ANTHROPIC_API_KEY"]; ok {
		t.Errorf("bearer auth should not set ANTHROPIC_API_KEY")
	}
	if env["ANTHROPIC_BASE_URL"] != "https://api.deepseek.com/anthropic" {
		t.Errorf("base url not mapped")
	}
	if env["ANTHROPIC_MODEL"] != "deepseek-chat" {
		t.Errorf("model not mapped")
	}

	apiKey := EffectiveConfig{APIKey: "sk-key", AuthType: models.AuthTypeAPIKey}
	env = apiKey.Env()
	if env["ANTHROPIC_API_KEY"] != "sk-key" {
		t.Errorf("api-key auth should set ANTHROPIC_API_KEY")
	}
	if _, ok := env["ANTHROPIC_AUTH_TOKEN"]; ok {
		t.Errorf("api-key auth should not set ANTHROPIC_AUTH_TOKEN")
	}
}

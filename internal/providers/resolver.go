package providers

import (
	"ccswitch/config/models"
	"ccswitch/internal/utils"
)

// Resolver merges the built-in catalog with the user provider store into one
// logical registry. On id collision the user-defined entry shadows the
// built-in, so a user can locally override a built-in endpoint without losing
// the preset as a template. The merge is recomputed on every call; both
// sources are small and local.
type Resolver struct {
	store *Store
}

// NewResolver creates a Resolver over the given user provider store.
func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store}
}

// All returns the merged registry: built-ins in catalog order (shadowed by
// user entries where ids collide), followed by user-only providers in store
// order.
func (r *Resolver) All() []models.ProviderPreset {
	user := r.store.Load()
	byID := make(map[string]models.ProviderPreset, len(user))
	for _, p := range user {
		byID[p.ID] = p
	}

	seen := make(map[string]bool)
	var out []models.ProviderPreset
	for _, p := range presets {
		if u, ok := byID[p.ID]; ok {
			out = append(out, u.Clone())
		} else {
			out = append(out, p.Clone())
		}
		seen[p.ID] = true
	}
	for _, p := range user {
		if !seen[p.ID] {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Resolve looks up a provider id across the merged registry, user entries
// first. Absence is a normal outcome.
func (r *Resolver) Resolve(id string) (models.ProviderPreset, bool) {
	if p, ok := r.store.Get(id); ok {
		return p, true
	}
	return GetPresetByID(id)
}

// IsShadowed reports whether a built-in preset with the given id is hidden by
// a user-defined provider.
func (r *Resolver) IsShadowed(id string) bool {
	if _, builtin := GetPresetByID(id); !builtin {
		return false
	}
	return r.store.Exists(id)
}

// EffectiveConfig is the runtime configuration a profile yields once its
// provider preset is applied: the preset's endpoint and auth style with the
// profile's own overrides on top.
type EffectiveConfig struct {
	ProviderID string
	BaseURL    string
	Model      string
	APIKey     string
	AuthType   string
	Headers    map[string]string
}

// Env maps the effective configuration onto the ANTHROPIC_* environment
// variables Claude Code reads. Bearer providers authenticate through
// ANTHROPIC_AUTH_TOKEN; everything else uses ANTHROPIC_API_KEY.
func (ec EffectiveConfig) Env() map[string]string {
	env := make(map[string]string)
	if ec.APIKey != "" {
		if ec.AuthType == models.AuthTypeBearer {
			env["ANTHROPIC_AUTH_TOKEN"] = ec.APIKey
		} else {
			env["ANTHROPIC_API_KEY"] = ec.APIKey
		}
	}
	if ec.BaseURL != "" {
		env["ANTHROPIC_BASE_URL"] = ec.BaseURL
	}
	if ec.Model != "" {
		env["ANTHROPIC_MODEL"] = ec.Model
	}
	return env
}

// Effective computes a profile's runtime configuration against the merged
// registry. The profile's baseURL replaces the preset's when set; headers
// merge with the profile winning per key. A provider id that fails to resolve
// is not an error: the profile's own fields are used as-is and the auth type
// falls back to api-key. The boolean reports whether the provider resolved.
func (r *Resolver) Effective(p models.Profile) (EffectiveConfig, bool) {
	ec := EffectiveConfig{
		ProviderID: p.ProviderID,
		Model:      p.Model,
		APIKey:     p.APIKey,
		AuthType:   models.AuthTypeAPIKey,
		BaseURL:    utils.NormalizeURL(p.BaseURL),
	}

	preset, resolved := r.Resolve(p.ProviderID)
	if resolved {
		ec.AuthType = preset.AuthType
		if ec.BaseURL == "" {
			ec.BaseURL = utils.NormalizeURL(preset.BaseURL)
		}
		if len(preset.Headers) > 0 {
			ec.Headers = make(map[string]string, len(preset.Headers))
			for k, v := range preset.Headers {
				ec.Headers[k] = v
			}
		}
	}

	if len(p.Headers) > 0 {
		if ec.Headers == nil {
			ec.Headers = make(map[string]string, len(p.Headers))
		}
		for k, v := range p.Headers {
			ec.Headers[k] = v
		}
	}

	return ec, resolved
}

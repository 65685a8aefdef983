// Package models defines the persisted data structures shared by the
// provider registry and the profile store.
package models

// Document version strings written into persisted files.
const (
	ConfigVersion    = "1.0.0"
	ProvidersVersion = "1.0.0"
	ExportVersion    = "1.0.0"
)

// Auth types accepted for a provider preset.
const (
	AuthTypeBearer = "bearer"
	AuthTypeAPIKey = "api-key"
	AuthTypeCustom = "custom"
)

// CustomPresetID is the reserved id of the built-in template preset. It has no
// baseURL or models of its own and exists to seed user-defined providers.
const CustomPresetID = "custom"

// RedactedAPIKey replaces apiKey values in sanitized exports.
const RedactedAPIKey = "***REDACTED***"

// RateLimit describes optional request throughput hints for a provider.
type RateLimit struct {
	RequestsPerMinute int `json:"requestsPerMinute,omitempty"`
	TokensPerMinute   int `json:"tokensPerMinute,omitempty"`
}

// ProviderPreset is a provider identity record: an endpoint, its auth style
// and the models it serves. Built-in presets are compiled-in constants;
// user-defined presets live in the providers.json document.
type ProviderPreset struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	DisplayName   string            `json:"displayName"`
	BaseURL       string            `json:"baseURL"`
	DefaultModels []string          `json:"defaultModels"`
	AuthType      string            `json:"authType"`
	Headers       map[string]string `json:"headers,omitempty"`
	RateLimit     *RateLimit        `json:"rateLimit,omitempty"`
	Docs          string            `json:"docs,omitempty"`
	IsChinese     bool              `json:"isChinese,omitempty"`
}

// Clone returns a deep copy so callers can mutate the result freely.
func (p ProviderPreset) Clone() ProviderPreset {
	out := p
	if p.DefaultModels != nil {
		out.DefaultModels = make([]string, len(p.DefaultModels))
		copy(out.DefaultModels, p.DefaultModels)
	}
	if p.Headers != nil {
		out.Headers = make(map[string]string, len(p.Headers))
		for k, v := range p.Headers {
			out.Headers[k] = v
		}
	}
	if p.RateLimit != nil {
		rl := *p.RateLimit
		out.RateLimit = &rl
	}
	return out
}

// UserProvidersFile is the persisted container for user-defined providers.
// The whole document is the unit of persistence: every mutation rewrites it.
type UserProvidersFile struct {
	Version   string           `json:"version"`
	Providers []ProviderPreset `json:"providers"`
}

// Profile binds credentials, a model and optional endpoint overrides to a
// provider id. Timestamps are RFC 3339 strings supplied by the caller.
type Profile struct {
	Name       string            `json:"name"`
	ProviderID string            `json:"providerId"`
	APIKey     string            `json:"apiKey"`
	Model      string            `json:"model"`
	BaseURL    string            `json:"baseURL,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	CreatedAt  string            `json:"createdAt"`
	UpdatedAt  string            `json:"updatedAt"`
}

// Clone returns a deep copy of the profile.
func (p Profile) Clone() Profile {
	out := p
	if p.Headers != nil {
		out.Headers = make(map[string]string, len(p.Headers))
		for k, v := range p.Headers {
			out.Headers[k] = v
		}
	}
	return out
}

// File is the profile config document. ActiveProfile may name a profile that
// no longer exists; readers treat that as "no active profile".
type File struct {
	ActiveProfile string     `json:"activeProfile"`
	Profiles      ProfileMap `json:"profiles"`
	Version       string     `json:"version"`
}

// ExportFile is a point-in-time snapshot of profiles. Sanitized reports
// whether apiKey values were redacted before serialization.
type ExportFile struct {
	Profiles   []Profile `json:"profiles"`
	ExportedAt string    `json:"exportedAt"`
	Version    string    `json:"version"`
	Sanitized  bool      `json:"sanitized,omitempty"`
}

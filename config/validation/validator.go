// Package validation implements the schema checks that guard every record
// before it is accepted from external input or written to disk. Validation is
// pure: the same checks apply to freshly constructed values and to values just
// deserialized from a document.
package validation

import (
	"fmt"
	"strings"

	"ccswitch/config/models"
	"ccswitch/internal/utils"
)

// Violation describes a single failed constraint.
type Violation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError aggregates every constraint a record violates, not just the
// first one, so callers can report all problems at once.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Field + ": " + v.Reason
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// errs collects violations during a validation pass.
type errs struct {
	violations []Violation
}

func (e *errs) add(field, reason string) {
	e.violations = append(e.violations, Violation{Field: field, Reason: reason})
}

func (e *errs) err() error {
	if len(e.violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: e.violations}
}

// Validator validates provider presets and profiles.
type Validator struct {
}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// MaxNameLength caps profile names and provider ids.
const MaxNameLength = 50

var validAuthTypes = map[string]bool{
	models.AuthTypeBearer: true,
	models.AuthTypeAPIKey: true,
	models.AuthTypeCustom: true,
}

// ValidatePreset checks a provider preset against its schema. On failure the
// returned error is a *ValidationError listing every violated constraint.
func (v *Validator) ValidatePreset(p models.ProviderPreset) error {
	var e errs

	if p.ID == "" {
		e.add("id", "cannot be empty")
	} else {
		if strings.ContainsAny(p.ID, "<>\"'&/\\ \t") {
			e.add("id", "contains invalid characters")
		}
		if len(p.ID) > MaxNameLength {
			e.add("id", fmt.Sprintf("is too long (max %d characters)", MaxNameLength))
		}
	}

	if p.Name == "" {
		e.add("name", "cannot be empty")
	}
	if p.DisplayName == "" {
		e.add("displayName", "cannot be empty")
	}

	// Only the reserved template preset may omit its endpoint.
	if p.BaseURL == "" {
		if p.ID != models.CustomPresetID {
			e.add("baseURL", "cannot be empty")
		}
	} else if !utils.ValidateURL(p.BaseURL) {
		e.add("baseURL", "must be an absolute http(s) URL")
	}

	if !validAuthTypes[p.AuthType] {
		e.add("authType", fmt.Sprintf("must be one of %q, %q, %q",
			models.AuthTypeBearer, models.AuthTypeAPIKey, models.AuthTypeCustom))
	}

	for i, model := range p.DefaultModels {
		if strings.TrimSpace(model) == "" {
			e.add(fmt.Sprintf("defaultModels[%d]", i), "cannot be blank")
		}
	}

	if p.Docs != "" && !utils.ValidateURL(p.Docs) {
		e.add("docs", "must be an absolute http(s) URL")
	}

	if p.RateLimit != nil {
		if p.RateLimit.RequestsPerMinute < 0 {
			e.add("rateLimit.requestsPerMinute", "cannot be negative")
		}
		if p.RateLimit.TokensPerMinute < 0 {
			e.add("rateLimit.tokensPerMinute", "cannot be negative")
		}
	}

	return e.err()
}

// ValidateProfile checks a profile against its schema. On failure the returned
// error is a *ValidationError listing every violated constraint.
func (v *Validator) ValidateProfile(p models.Profile) error {
	var e errs

	if p.Name == "" {
		e.add("name", "cannot be empty")
	} else {
		if strings.ContainsAny(p.Name, "<>\"'&/\\") {
			e.add("name", "contains invalid characters")
		}
		if len(p.Name) > MaxNameLength {
			e.add("name", fmt.Sprintf("is too long (max %d characters)", MaxNameLength))
		}
	}

	if p.ProviderID == "" {
		e.add("providerId", "cannot be empty")
	}
	if p.APIKey == "" {
		e.add("apiKey", "cannot be empty")
	}
	if p.Model == "" {
		e.add("model", "cannot be empty")
	}

	if p.BaseURL != "" && !utils.ValidateURL(p.BaseURL) {
		e.add("baseURL", "must be an absolute http(s) URL")
	}

	return e.err()
}

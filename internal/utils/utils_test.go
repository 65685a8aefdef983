package utils

import "testing"

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", "****"},
		{"short", "****"},
		{"12345678", "****"},
		{"sk-ant-api03-abcdef", "sk-a****cdef"},
	}
	for _, tt := range tests {
		if got := MaskAPIKey(tt.key); got != tt.want {
			t.Errorf("MaskAPIKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestMaskAPIKeyNeverLeaksMiddle(t *testing.T) {
	key := "sk-ant-REDACTED"
	masked := MaskAPIKey(key)
	if masked == key {
		t.Fatalf("mask returned the key unchanged")
	}
	if len(masked) >= len(key) {
		t.Errorf("masked form should be shorter than the key")
	}
}

func TestValidateURL(t *testing.T) {
	valid := []string{
		"https://api.anthropic.com",
		"http://localhost:8080",
		"https://api.deepseek.com/anthropic",
	}
	for _, u := range valid {
		if !ValidateURL(u) {
			t.Errorf("ValidateURL(%q) = false, want true", u)
		}
	}

	invalid := []string{
		"",
		"not-a-url",
		"ftp://files.example.com",
		"https://",
		"/relative/path",
	}
	for _, u := range invalid {
		if ValidateURL(u) {
			t.Errorf("ValidateURL(%q) = true, want false", u)
		}
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"https://api.example.com", "https://api.example.com"},
		{"https://api.example.com/", "https://api.example.com"},
		{"https://api.example.com//", "https://api.example.com"},
	}
	for _, tt := range tests {
		if got := NormalizeURL(tt.in); got != tt.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

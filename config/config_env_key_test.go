package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"backend": map[string]any{
			"baseUrl":   "",
			"jwtSecret": "",
		},
		"catalog": map[string]any{
			"searchDebounce": "300ms",
		},
		"demoLogin": map[string]any{
			"email": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "BACKEND_BASEURL", want: "backend.baseUrl"},
		{envKey: "BACKEND_JWTSECRET", want: "backend.jwtSecret"},
		{envKey: "CATALOG_SEARCHDEBOUNCE", want: "catalog.searchDebounce"},
		{envKey: "DEMOLOGIN_EMAIL", want: "demoLogin.email"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

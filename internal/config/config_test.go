package config

import "testing"

func TestAllowOrigin(t *testing.T) {
	cfg := Config{AllowedOriginSuffixes: []string{".vercel.app"}}

	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"http://localhost:3000", true},
		{"http://127.0.0.1:5173", true},
		{"https://playful-learning.vercel.app", true},
		{"https://preview-abc123.vercel.app", true},
		{"https://evil.example.com", false},
		{"https://vercel.app.evil.com", false},
	}

	for _, tc := range tests {
		if got := cfg.AllowOrigin(tc.origin); got != tc.want {
			t.Errorf("AllowOrigin(%q) = %v, want %v", tc.origin, got, tc.want)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port == "" {
		t.Error("port default missing")
	}
	if cfg.Mongo.URI == "" {
		t.Error("mongo URI default missing")
	}
	if cfg.Gemini.Model == "" {
		t.Error("gemini model default missing")
	}
	if len(cfg.AllowedOriginSuffixes) == 0 {
		t.Error("no allowed origin suffixes configured")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ALLOWED_ORIGIN_SUFFIXES", ".netlify.app,.example.org")

	cfg := Load()

	if cfg.Port != "9999" {
		t.Errorf("port = %q, want 9999", cfg.Port)
	}
	if len(cfg.AllowedOriginSuffixes) != 2 {
		t.Fatalf("suffixes = %v, want 2 entries", cfg.AllowedOriginSuffixes)
	}
	if !cfg.AllowOrigin("https://site.netlify.app") {
		t.Error("netlify origin rejected after override")
	}
	if cfg.AllowOrigin("https://site.vercel.app") {
		t.Error("vercel origin still allowed after override")
	}
}

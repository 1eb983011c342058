package redis

import (
	"testing"
)

func TestKeyBuilder_Environment_Prefixes(t *testing.T) {
	tests := []struct {
		name           string
		environment    string
		expectedPrefix string
	}{
		{
			name:           "Production environment should use prod prefix",
			environment:    "production",
			expectedPrefix: "prod",
		},
		{
			name:           "Development environment should use staging prefix",
			environment:    "development",
			expectedPrefix: "staging",
		},
		{
			name:           "Staging environment should use staging prefix",
			environment:    "staging",
			expectedPrefix: "staging",
		},
		{
			name:           "Unknown environment should default to prod prefix",
			environment:    "unknown",
			expectedPrefix: "prod",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := NewKeyBuilder(tt.environment)
			if kb.GetPrefix() != tt.expectedPrefix {
				t.Errorf("NewKeyBuilder(%s).GetPrefix() = %s, want %s",
					tt.environment, kb.GetPrefix(), tt.expectedPrefix)
			}
		})
	}
}

func TestKeyBuilder_KeySignupRateLimit(t *testing.T) {
	tests := []struct {
		environment string
		ipHash      string
		expected    string
	}{
		{"production", "abc123", "prod:signup:ratelimit:abc123"},
		{"staging", "abc123", "staging:signup:ratelimit:abc123"},
		{"development", "ffff", "staging:signup:ratelimit:ffff"},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			got := NewKeyBuilder(tt.environment).KeySignupRateLimit(tt.ipHash)
			if got != tt.expected {
				t.Errorf("KeySignupRateLimit(%s) = %s, want %s", tt.ipHash, got, tt.expected)
			}
		})
	}
}

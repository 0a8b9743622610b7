package auth

import (
	"strings"
	"testing"
)

func TestParseAPIKey(t *testing.T) {
	secretID := strings.Repeat("ab", 16)  // 32 hex chars
	randomData := strings.Repeat("cd", 32) // 64 hex chars
	valid := FormatAPIKey(secretID, randomData)

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"valid key", valid, false},
		{"empty", "", true},
		{"wrong prefix", "tk-v1-" + secretID + "-" + randomData, true},
		{"wrong version", "sv-v2-" + secretID + "-" + randomData, true},
		{"short secret id", "sv-v1-abcd-" + randomData, true},
		{"short random data", "sv-v1-" + secretID + "-abcd", true},
		{"uppercase hex", "sv-v1-" + strings.ToUpper(secretID) + "-" + randomData, true},
		{"non-hex chars", "sv-v1-" + strings.Repeat("zz", 16) + "-" + randomData, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSecretID, gotRandom, err := ParseAPIKey(tt.key)
			if tt.wantErr {
				if err != ErrInvalidKeyFormat {
					t.Fatalf("err = %v, want ErrInvalidKeyFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAPIKey failed: %v", err)
			}
			if gotSecretID != secretID || gotRandom != randomData {
				t.Errorf("parsed (%s, %s), want (%s, %s)", gotSecretID, gotRandom, secretID, randomData)
			}
		})
	}
}

func TestScopePermits(t *testing.T) {
	tests := []struct {
		keyScope string
		required string
		want     bool
	}{
		{ScopeAdmin, ScopeAdmin, true},
		{ScopeAdmin, ScopeEvaluate, true},
		{ScopeEvaluate, ScopeEvaluate, true},
		{ScopeEvaluate, ScopeAdmin, false},
		{"", ScopeEvaluate, false},
		{"bogus", ScopeAdmin, false},
	}

	for _, tt := range tests {
		if got := scopePermits(tt.keyScope, tt.required); got != tt.want {
			t.Errorf("scopePermits(%q, %q) = %v, want %v", tt.keyScope, tt.required, got, tt.want)
		}
	}
}

func TestHMACRoundTrip(t *testing.T) {
	secret := []byte(strings.Repeat("s", 32))
	key := FormatAPIKey(strings.Repeat("ab", 16), strings.Repeat("cd", 32))

	h1 := ComputeHMAC(secret, key)
	h2 := ComputeHMAC(secret, key)
	if !VerifyHMAC(h1, h2) {
		t.Error("identical inputs produced different HMACs")
	}

	other := ComputeHMAC([]byte(strings.Repeat("x", 32)), key)
	if VerifyHMAC(h1, other) {
		t.Error("different secrets produced identical HMACs")
	}
}

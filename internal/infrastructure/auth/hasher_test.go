package auth

import (
	"strings"
	"testing"
)

func TestPBKDF2PasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPBKDF2PasswordHasher(minIterations)

	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "correct horse battery staple"},
		{name: "empty password", password: ""},
		{name: "unicode password", password: "pässwörd✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := hasher.Hash(tt.password)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}

			if err := hasher.Verify(tt.password, encoded); err != nil {
				t.Errorf("Verify() with correct password = %v", err)
			}

			if err := hasher.Verify(tt.password+"x", encoded); err == nil {
				t.Error("Verify() with wrong password should fail")
			}
		})
	}
}

func TestPBKDF2PasswordHasher_SaltedEncoding(t *testing.T) {
	hasher := NewPBKDF2PasswordHasher(minIterations)

	first, err := hasher.Hash("same password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := hasher.Hash("same password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password should differ (random salt)")
	}
	for _, encoded := range []string{first, second} {
		if !strings.Contains(encoded, ":") {
			t.Errorf("encoded hash %q missing salt separator", encoded)
		}
		if err := hasher.Verify("same password", encoded); err != nil {
			t.Errorf("Verify() = %v", err)
		}
	}
}

func TestPBKDF2PasswordHasher_MalformedStoredHash(t *testing.T) {
	hasher := NewPBKDF2PasswordHasher(minIterations)

	for _, encoded := range []string{"", "nocolon", "zz:zz", "abcd:abcd"} {
		if err := hasher.Verify("whatever", encoded); err == nil {
			t.Errorf("Verify() with malformed hash %q should fail", encoded)
		}
	}
}

func TestNewPBKDF2PasswordHasher_EnforcesMinimumIterations(t *testing.T) {
	h := NewPBKDF2PasswordHasher(10)
	if h.iterations != DefaultIterations {
		t.Errorf("iterations = %d, want %d", h.iterations, DefaultIterations)
	}
}

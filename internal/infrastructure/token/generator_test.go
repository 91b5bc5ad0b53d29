package token

import (
	"strings"
	"testing"
)

func TestGenerator_Generate(t *testing.T) {
	gen := NewGenerator()

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "api key prefix", prefix: "ak_"},
		{name: "no prefix", prefix: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain, hash, err := gen.Generate(tt.prefix)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}

			if !strings.HasPrefix(plain, tt.prefix) {
				t.Errorf("plain = %v, want prefix %v", plain, tt.prefix)
			}
			if len(plain) != len(tt.prefix)+tokenRandomBytes*2 {
				t.Errorf("plain length = %d, want %d", len(plain), len(tt.prefix)+tokenRandomBytes*2)
			}
			if len(hash) != 64 {
				t.Errorf("hash length = %d, want 64 (SHA256 hex)", len(hash))
			}
			if plain == hash {
				t.Error("plain token and hash should differ")
			}
		})
	}
}

func TestGenerator_Uniqueness(t *testing.T) {
	gen := NewGenerator()

	t1, h1, err := gen.Generate("ak_")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	t2, h2, err := gen.Generate("ak_")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if t1 == t2 {
		t.Error("tokens should be unique")
	}
	if h1 == h2 {
		t.Error("hashes should be unique")
	}
}

func TestGenerator_Verify(t *testing.T) {
	gen := NewGenerator()

	plain, hash, err := gen.Generate("ak_")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !gen.Verify(plain, hash) {
		t.Error("Verify() with matching token should succeed")
	}
	if gen.Verify(plain+"x", hash) {
		t.Error("Verify() with altered token should fail")
	}
	if gen.Verify("", hash) {
		t.Error("Verify() with empty token should fail")
	}
}

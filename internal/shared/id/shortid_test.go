package id

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name       string
		length     int
		wantLength int
	}{
		{name: "default length for zero", length: 0, wantLength: DefaultLength},
		{name: "default length for negative", length: -3, wantLength: DefaultLength},
		{name: "explicit length", length: 20, wantLength: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.length)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(got) != tt.wantLength {
				t.Errorf("len = %d, want %d", len(got), tt.wantLength)
			}
			for _, c := range got {
				if !strings.ContainsRune(alphabet, c) {
					t.Errorf("character %q not in alphabet", c)
				}
			}
		})
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := MustGenerate(DefaultLength)
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestEntityIDPrefixes(t *testing.T) {
	tests := []struct {
		name   string
		gen    func() string
		prefix string
	}{
		{"user", NewUserID, PrefixUser},
		{"class", NewClassID, PrefixClass},
		{"student", NewStudentID, PrefixStudent},
		{"enrollment", NewEnrollmentID, PrefixEnrollment},
		{"attendance", NewAttendanceID, PrefixAttendance},
		{"api key", NewAPIKeyID, PrefixAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := tt.gen()
			if err := ValidatePrefix(id, tt.prefix); err != nil {
				t.Errorf("ValidatePrefix(%q, %q) = %v", id, tt.prefix, err)
			}
		})
	}
}

func TestParsePrefixedID(t *testing.T) {
	prefix, short, err := ParsePrefixedID("cls_xK9mP2vL3nQ4")
	if err != nil {
		t.Fatalf("ParsePrefixedID() error = %v", err)
	}
	if prefix != "cls" || short != "xK9mP2vL3nQ4" {
		t.Errorf("got (%q, %q)", prefix, short)
	}

	if _, _, err := ParsePrefixedID("noprefix"); err == nil {
		t.Error("expected error for unprefixed ID")
	}
}

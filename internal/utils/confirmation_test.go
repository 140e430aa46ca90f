package utils

import (
	"strings"
	"testing"
)

func TestNewConfirmationCode(t *testing.T) {
	code, err := NewConfirmationCode(10)
	if err != nil {
		t.Fatalf("NewConfirmationCode: %v", err)
	}
	if len(code) != 10 {
		t.Fatalf("length = %d, want 10", len(code))
	}
	for _, r := range code {
		if !strings.ContainsRune(confirmationAlphabet, r) {
			t.Fatalf("code %q contains %q outside the alphabet", code, r)
		}
	}
}

func TestNewConfirmationCodeVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := NewConfirmationCode(10)
		if err != nil {
			t.Fatalf("NewConfirmationCode: %v", err)
		}
		if seen[code] {
			t.Fatalf("duplicate code %q after %d draws", code, i)
		}
		seen[code] = true
	}
}

package utils

import (
	"regexp"
	"testing"
)

func TestGenerateReferralCode(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9A-F]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateReferralCode()
		if err != nil {
			t.Fatalf("GenerateReferralCode failed: %v", err)
		}
		if !pattern.MatchString(code) {
			t.Fatalf("code %q is not 8 uppercase hex chars", code)
		}
		seen[code] = true
	}
	if len(seen) < 45 {
		t.Errorf("codes collide far too often: %d unique of 50", len(seen))
	}
}

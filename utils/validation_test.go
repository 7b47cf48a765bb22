package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.com", "user.name@example.co.uk", " padded@example.com "}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "plain", "@missing.local", "no-at.example.com", "two@@example.com"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"+15551234567", "+44 20 7946 0958", "(555) 123-4567"}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("expected %q to be valid", phone)
		}
	}

	invalid := []string{"", "abc", "0"}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("expected %q to be invalid", phone)
		}
	}
}

package utils

import (
	"testing"
	"time"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("password stored in the clear")
	}
	if !CheckPasswordHash("correct horse battery staple", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestBookingTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateBookingToken("booking-123", time.Hour)
	if err != nil {
		t.Fatalf("GenerateBookingToken failed: %v", err)
	}

	bookingID, err := VerifyBookingToken(token)
	if err != nil {
		t.Fatalf("VerifyBookingToken failed: %v", err)
	}
	if bookingID != "booking-123" {
		t.Errorf("got booking ID %q, want booking-123", bookingID)
	}
}

func TestBookingTokenExpiry(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateBookingToken("booking-123", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateBookingToken failed: %v", err)
	}
	if _, err := VerifyBookingToken(token); err == nil {
		t.Error("expired token should be rejected")
	}
}

func TestBookingTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateBookingToken("booking-123", time.Hour)
	if err != nil {
		t.Fatalf("GenerateBookingToken failed: %v", err)
	}

	t.Setenv("JWT_SECRET", "another-secret")
	if _, err := VerifyBookingToken(token); err == nil {
		t.Error("token signed with a different secret should be rejected")
	}
}

func TestUserTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := GenerateToken("user-1", false); err == nil {
		t.Error("expected an error when JWT_SECRET is unset")
	}
}

// utils/referral.go
package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// GenerateReferralCode returns an 8-character uppercase hex code.
func GenerateReferralCode() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

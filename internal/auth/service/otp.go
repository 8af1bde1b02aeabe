package service

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// DefaultOTPDigits is the passcode length when none is configured.
const DefaultOTPDigits = 6

// OTPGenerator produces one-time passcodes for email delivery. Each call
// feeds a fresh 128-bit random seed through the TOTP derivation, so the
// output is an unpredictable numeric string; the seed is never persisted
// and no counter state is shared with the verifier.
type OTPGenerator struct {
	Digits int
}

// Generate returns a new numeric passcode.
func (g *OTPGenerator) Generate() (string, error) {
	digits := g.Digits
	if digits <= 0 {
		digits = DefaultOTPDigits
	}

	var seed [16]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return "", fmt.Errorf("otp seed: %w", err)
	}
	secret := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(seed[:])

	code, err := totp.GenerateCodeCustom(secret, time.Now(), totp.ValidateOpts{
		Period:    30,
		Digits:    otp.Digits(digits),
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", fmt.Errorf("otp generate: %w", err)
	}
	return code, nil
}

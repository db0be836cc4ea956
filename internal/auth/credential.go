// Package auth implements the admin credential gate and the login failure
// lockout tracker.
package auth

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/pquerna/otp/totp"
	"github.com/rs/zerolog/log"
)

const argon2idPrefix = "$argon2id$"

// Verify reports whether the submitted credential matches the configured
// admin secret. The configured value may be either the plain secret or an
// argon2id hash of it. Comparison time does not depend on where the strings
// first differ. An empty configured secret never matches.
func Verify(submitted, configured string) bool {
	if configured == "" {
		return false
	}

	if strings.HasPrefix(configured, argon2idPrefix) {
		match, err := argon2id.ComparePasswordAndHash(submitted, configured)
		if err != nil {
			log.Error().Err(err).Msg("failed to verify password hash")
			return false
		}

		return match
	}

	return subtle.ConstantTimeCompare([]byte(submitted), []byte(configured)) == 1
}

// VerifyTOTP reports whether code is a currently valid TOTP code for the
// configured secret. An empty secret means the second factor is disabled and
// any code is accepted.
func VerifyTOTP(code, secret string) bool {
	if secret == "" {
		return true
	}

	return totp.Validate(strings.TrimSpace(code), secret)
}

// timeNow is an injectable clock for tests.
type timeNow func() time.Time

// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"

	"jobly/config"
	domainerrors "jobly/internal/domain/errors"
	"jobly/internal/domain/service"
	"jobly/internal/errors"
)

const (
	pbkdf2Prefix      = "$pbkdf2-sha256$"
	legacyPrefix      = "$sha256$"
	maxPBKDF2Rounds   = 5_000_000
	bcryptMaxPassword = 72
)

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

type passwordPolicy struct {
	minLength        int
	maxLength        int
	requireUppercase bool
	requireLowercase bool
	requireNumbers   bool
	requireSpecial   bool
}

var defaultPolicy = passwordPolicy{
	minLength:        8,
	maxLength:        bcryptMaxPassword,
	requireUppercase: true,
	requireLowercase: true,
	requireNumbers:   true,
}

// credentialCodec hashes with bcrypt and verifies bcrypt, passlib pbkdf2-sha256
// and the deprecated "$sha256$<salt>$<digest>" values.
type credentialCodec struct {
	cost          int
	legacyEnabled bool
	policy        passwordPolicy
}

// NewCredentialCodec builds the codec from the auth and passwordStrength config sections.
func NewCredentialCodec(cfg *config.Config) service.CredentialCodec {
	cost := bcrypt.DefaultCost
	legacy := false
	if cfg.Auth != nil {
		if cfg.Auth.BcryptCost != 0 {
			cost = cfg.Auth.BcryptCost
		}
		legacy = cfg.Auth.LegacySchemeEnabled
	}

	return newCredentialCodec(cost, legacy, policyFromConfig(cfg.PasswordStrength))
}

func newCredentialCodec(cost int, legacyEnabled bool, policy passwordPolicy) *credentialCodec {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &credentialCodec{
		cost:          cost,
		legacyEnabled: legacyEnabled,
		policy:        policy,
	}
}

func policyFromConfig(cfg *config.PasswordStrengthConfig) passwordPolicy {
	if cfg == nil {
		return defaultPolicy
	}

	policy := passwordPolicy{
		minLength:        cfg.MinLength,
		maxLength:        cfg.MaxLength,
		requireUppercase: cfg.RequireUppercase,
		requireLowercase: cfg.RequireLowercase,
		requireNumbers:   cfg.RequireNumbers,
		requireSpecial:   cfg.RequireSpecial,
	}
	if policy.minLength <= 0 {
		policy.minLength = defaultPolicy.minLength
	}
	if policy.maxLength <= 0 || policy.maxLength > bcryptMaxPassword {
		policy.maxLength = bcryptMaxPassword
	}

	return policy
}

// Hash generates a salted bcrypt hash. bcrypt handles salt generation.
func (c *credentialCodec) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), c.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt generate")
	}

	return string(hashed), nil
}

func (c *credentialCodec) Verify(plaintext, value string) bool {
	scheme, ok := c.IdentifyScheme(value)
	if !ok {
		return false
	}

	switch scheme {
	case service.SchemeBcrypt:
		return bcrypt.CompareHashAndPassword([]byte(value), []byte(plaintext)) == nil
	case service.SchemePBKDF2SHA256:
		return verifyPBKDF2(plaintext, value)
	default:
		return false
	}
}

func (c *credentialCodec) IdentifyScheme(value string) (service.Scheme, bool) {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(value, prefix) {
			if _, err := bcrypt.Cost([]byte(value)); err != nil {
				return "", false
			}

			return service.SchemeBcrypt, true
		}
	}

	if strings.HasPrefix(value, pbkdf2Prefix) {
		if _, _, _, ok := parsePBKDF2(value); ok {
			return service.SchemePBKDF2SHA256, true
		}
	}

	return "", false
}

func (c *credentialCodec) IsPlaintext(value string) bool {
	if strings.HasPrefix(value, "$") {
		return false
	}
	_, ok := c.IdentifyScheme(value)

	return !ok
}

// VerifyLegacy checks "$sha256$<hex salt>$<hex sha256(salt || password)>".
func (c *credentialCodec) VerifyLegacy(plaintext, value string) bool {
	if !c.legacyEnabled || !strings.HasPrefix(value, legacyPrefix) {
		return false
	}

	parts := strings.Split(strings.TrimPrefix(value, legacyPrefix), "$")
	if len(parts) != 2 {
		return false
	}

	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(parts[1])
	if err != nil || len(want) != sha256.Size {
		return false
	}

	digest := sha256.New()
	digest.Write(salt)
	digest.Write([]byte(plaintext))

	return subtle.ConstantTimeCompare(digest.Sum(nil), want) == 1
}

// ValidatePasswordStrength validates password strength requirements
func (c *credentialCodec) ValidatePasswordStrength(plaintext string) error {
	if len(plaintext) < c.policy.minLength {
		return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("must be at least %d characters long", c.policy.minLength))
	}
	if len(plaintext) > c.policy.maxLength {
		return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("must be at most %d bytes long", c.policy.maxLength))
	}
	if c.policy.requireUppercase && !c.hasUppercase(plaintext) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one uppercase letter")
	}
	if c.policy.requireLowercase && !c.hasLowercase(plaintext) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one lowercase letter")
	}
	if c.policy.requireNumbers && !c.hasNumbers(plaintext) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one number")
	}
	if c.policy.requireSpecial && !c.hasSpecialChars(plaintext) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one special character")
	}

	return nil
}

func (c *credentialCodec) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (c *credentialCodec) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (c *credentialCodec) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (c *credentialCodec) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
	}) >= 0
}

// parsePBKDF2 splits "$pbkdf2-sha256$<rounds>$<salt>$<checksum>" where salt and
// checksum use passlib's adapted base64 ("." instead of "+", no padding).
func parsePBKDF2(value string) (rounds int, salt, checksum []byte, ok bool) {
	parts := strings.Split(strings.TrimPrefix(value, pbkdf2Prefix), "$")
	if len(parts) != 3 {
		return 0, nil, nil, false
	}

	rounds, err := strconv.Atoi(parts[0])
	if err != nil || rounds <= 0 || rounds > maxPBKDF2Rounds {
		return 0, nil, nil, false
	}

	salt, err = decodeAB64(parts[1])
	if err != nil {
		return 0, nil, nil, false
	}
	checksum, err = decodeAB64(parts[2])
	if err != nil || len(checksum) == 0 {
		return 0, nil, nil, false
	}

	return rounds, salt, checksum, true
}

func verifyPBKDF2(plaintext, value string) bool {
	rounds, salt, checksum, ok := parsePBKDF2(value)
	if !ok {
		return false
	}

	derived := pbkdf2.Key([]byte(plaintext), salt, rounds, len(checksum), sha256.New)

	return subtle.ConstantTimeCompare(derived, checksum) == 1
}

func decodeAB64(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.ReplaceAll(s, ".", "+"))
}

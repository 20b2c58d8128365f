// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// Scheme names a credential hashing scheme recognised by the codec.
type Scheme string

const (
	SchemeBcrypt       Scheme = "bcrypt"
	SchemePBKDF2SHA256 Scheme = "pbkdf2_sha256"
)

// CredentialCodec hashes new passwords and verifies stored credential values.
// Stored values may be current hashes, plaintext left over from older rows,
// or a deprecated salted digest. None of the methods panic on malformed input.
type CredentialCodec interface {
	// Hash derives a fresh salted hash under the current scheme.
	Hash(plaintext string) (string, error)

	// Verify re-derives plaintext under the scheme embedded in value.
	Verify(plaintext, value string) bool

	// IdentifyScheme reports which supported scheme produced value.
	IdentifyScheme(value string) (Scheme, bool)

	// IsPlaintext reports whether value looks like an unhashed password.
	IsPlaintext(value string) bool

	// VerifyLegacy checks value under the deprecated scheme. It returns false
	// when the legacy verifier is disabled.
	VerifyLegacy(plaintext, value string) bool

	// ValidatePasswordStrength enforces the password policy for new credentials.
	ValidatePasswordStrength(plaintext string) error
}

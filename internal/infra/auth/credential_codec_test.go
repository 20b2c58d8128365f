package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"

	"jobly/config"
	domainerrors "jobly/internal/domain/errors"
	"jobly/internal/domain/service"
	"jobly/internal/errors"
)

func newTestCodec() *credentialCodec {
	return newCredentialCodec(bcrypt.MinCost, true, defaultPolicy)
}

func pbkdf2Value(password string, salt []byte, rounds int) string {
	checksum := pbkdf2.Key([]byte(password), salt, rounds, sha256.Size, sha256.New)
	ab64 := func(b []byte) string {
		return strings.ReplaceAll(base64.RawStdEncoding.EncodeToString(b), "+", ".")
	}

	return pbkdf2Prefix + strconv.Itoa(rounds) + "$" + ab64(salt) + "$" + ab64(checksum)
}

func legacyValue(password string, salt []byte) string {
	digest := sha256.Sum256(append(append([]byte{}, salt...), []byte(password)...))

	return legacyPrefix + hex.EncodeToString(salt) + "$" + hex.EncodeToString(digest[:])
}

func TestCredentialCodec_HashRoundTrip(t *testing.T) {
	codec := newTestCodec()

	for _, password := range []string{"Passw0rd", "Pässphräse123!", "x", ""} {
		hashed, err := codec.Hash(password)
		require.NoError(t, err)

		scheme, ok := codec.IdentifyScheme(hashed)
		assert.True(t, ok)
		assert.Equal(t, service.SchemeBcrypt, scheme)
		assert.False(t, codec.IsPlaintext(hashed))
		assert.True(t, codec.Verify(password, hashed))
		assert.False(t, codec.Verify(password+"x", hashed))
	}
}

func TestCredentialCodec_HashUsesFreshSalt(t *testing.T) {
	codec := newTestCodec()

	first, err := codec.Hash("Passw0rd")
	require.NoError(t, err)
	second, err := codec.Hash("Passw0rd")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCredentialCodec_HashUsesConfiguredCost(t *testing.T) {
	codec := newCredentialCodec(6, false, defaultPolicy)

	hashed, err := codec.Hash("Passw0rd")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestCredentialCodec_PBKDF2(t *testing.T) {
	codec := newTestCodec()
	value := pbkdf2Value("Passw0rd", []byte("0123456789abcdef"), 1000)

	scheme, ok := codec.IdentifyScheme(value)
	require.True(t, ok)
	assert.Equal(t, service.SchemePBKDF2SHA256, scheme)
	assert.False(t, codec.IsPlaintext(value))
	assert.True(t, codec.Verify("Passw0rd", value))
	assert.False(t, codec.Verify("passw0rd", value))
}

func TestCredentialCodec_IsPlaintext(t *testing.T) {
	codec := newTestCodec()

	assert.True(t, codec.IsPlaintext("hunter2"))
	assert.True(t, codec.IsPlaintext("Passw0rd"))
	assert.True(t, codec.IsPlaintext(""))

	assert.False(t, codec.IsPlaintext("$sha256$00$00"), "dollar prefix is never plaintext")
	assert.False(t, codec.IsPlaintext("$unknown$scheme"))
}

func TestCredentialCodec_MalformedValuesNeverVerify(t *testing.T) {
	codec := newTestCodec()
	malformed := []string{
		"",
		"$",
		"$2b$",
		"$2b$10$short",
		"$pbkdf2-sha256$",
		"$pbkdf2-sha256$abc$salt$hash",
		"$pbkdf2-sha256$-1$c2FsdA$aGFzaA",
		"$pbkdf2-sha256$99999999999$c2FsdA$aGFzaA",
		"$pbkdf2-sha256$1000$!!!$aGFzaA",
		"plaintext",
	}

	for _, value := range malformed {
		t.Run(value, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, codec.Verify("Passw0rd", value))
			})
		})
	}
}

func TestCredentialCodec_VerifyLegacy(t *testing.T) {
	codec := newTestCodec()
	value := legacyValue("Passw0rd", []byte("pepper"))

	_, identified := codec.IdentifyScheme(value)
	assert.False(t, identified)
	assert.False(t, codec.IsPlaintext(value))

	assert.True(t, codec.VerifyLegacy("Passw0rd", value))
	assert.False(t, codec.VerifyLegacy("Passw0rd!", value))

	for _, bad := range []string{"", "$sha256$", "$sha256$zz$00", "$sha256$00$abcd", "Passw0rd"} {
		assert.NotPanics(t, func() {
			assert.False(t, codec.VerifyLegacy("Passw0rd", bad))
		})
	}
}

func TestCredentialCodec_VerifyLegacyDisabled(t *testing.T) {
	codec := newCredentialCodec(bcrypt.MinCost, false, defaultPolicy)
	value := legacyValue("Passw0rd", []byte("pepper"))

	assert.False(t, codec.VerifyLegacy("Passw0rd", value))
}

func TestCredentialCodec_ValidatePasswordStrength(t *testing.T) {
	codec := newTestCodec()

	for _, password := range []string{"Passw0rd", "StrongPass123!", "Pässphräse123"} {
		assert.NoError(t, codec.ValidatePasswordStrength(password), password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"", "must be at least 8 characters long"},
		{"Pa1", "must be at least 8 characters long"},
		{"PASSWORD123", "must contain at least one lowercase letter"},
		{"password123", "must contain at least one uppercase letter"},
		{"PasswordABC", "must contain at least one number"},
		{"Aa1" + strings.Repeat("x", 70), "must be at most 72 bytes long"},
	}

	for _, tc := range testCases {
		err := codec.ValidatePasswordStrength(tc.password)
		require.Error(t, err, tc.password)
		assert.Equal(t, tc.expectedErr, strengthDetails(t, err))
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	}
}

func strengthDetails(t *testing.T, err error) string {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))

	return appErr.Details()
}

func TestCredentialCodec_RequireSpecial(t *testing.T) {
	policy := defaultPolicy
	policy.requireSpecial = true
	codec := newCredentialCodec(bcrypt.MinCost, false, policy)

	err := codec.ValidatePasswordStrength("Password123")
	require.Error(t, err)
	assert.Equal(t, "must contain at least one special character", strengthDetails(t, err))
	assert.NoError(t, codec.ValidatePasswordStrength("Password123!"))
}

func TestCredentialCodec_PasswordStrengthHelpers(t *testing.T) {
	codec := &credentialCodec{}

	assert.True(t, codec.hasUppercase("Password"))
	assert.False(t, codec.hasUppercase("password"))
	assert.True(t, codec.hasLowercase("Password"))
	assert.False(t, codec.hasLowercase("PASSWORD"))
	assert.True(t, codec.hasNumbers("Password123"))
	assert.False(t, codec.hasNumbers("Password"))
	assert.True(t, codec.hasSpecialChars("Password!"))
	assert.False(t, codec.hasSpecialChars("Password"))
}

func TestNewCredentialCodec_FromConfig(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 5, LegacySchemeEnabled: true},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength: 10,
		},
	}

	codec := NewCredentialCodec(cfg).(*credentialCodec)

	assert.Equal(t, 5, codec.cost)
	assert.True(t, codec.legacyEnabled)
	assert.Equal(t, 10, codec.policy.minLength)
	assert.Equal(t, bcryptMaxPassword, codec.policy.maxLength)
	assert.False(t, codec.policy.requireUppercase)
}

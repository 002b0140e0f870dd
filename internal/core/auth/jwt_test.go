package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"terravolt-cms/internal/domain"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	j := New("test-secret", "terravolt", time.Hour)

	token, err := j.Issue("u-1", "admin@x.com", domain.RoleSuperadmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "u-1", claims.UID)
	require.Equal(t, "admin@x.com", claims.Email)
	require.Equal(t, domain.RoleSuperadmin, claims.Role)
}

func TestVerifyExpiredToken(t *testing.T) {
	j := New("test-secret", "terravolt", -time.Hour)

	token, err := j.Issue("u-1", "admin@x.com", domain.RoleAdmin)
	require.NoError(t, err)

	// Signature is valid, expiry is not; still one collapsed outcome.
	_, err = j.Verify(token)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := New("secret-a", "terravolt", time.Hour)
	verifier := New("secret-b", "terravolt", time.Hour)

	token, err := issuer.Issue("u-1", "admin@x.com", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerifyMalformed(t *testing.T) {
	j := New("test-secret", "terravolt", time.Hour)
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := j.Verify(tok)
		require.ErrorIs(t, err, domain.ErrInvalidToken)
	}
}

func TestDefaultSecretFallback(t *testing.T) {
	j := New("", "terravolt", 0)
	require.Equal(t, []byte(DefaultSecret), j.Secret)
	require.Equal(t, TokenTTL, j.TTL)
}

package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/warehouse-service/internal/domain"
)

func testIdentity() domain.Identity {
	return domain.Identity{
		ID:       "u-1",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     domain.RoleUser,
	}
}

func TestTokenCodec_IssueAndVerify(t *testing.T) {
	codec := NewTokenCodec(7 * 24 * time.Hour)

	token, expiresAt, err := codec.Issue(testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, time.Minute)

	identity, err := codec.Verify(token)
	require.NoError(t, err)
	require.Equal(t, testIdentity(), *identity)
}

func TestTokenCodec_Expired(t *testing.T) {
	codec := NewTokenCodec(time.Hour)

	issued := time.Now().Add(-2 * time.Hour)
	token, err := codec.IssueWithExpiry(testIdentity(), issued, issued.Add(time.Hour))
	require.NoError(t, err)

	_, err = codec.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenCodec_Garbage(t *testing.T) {
	codec := NewTokenCodec(time.Hour)

	for _, token := range []string{"", "not-base64!!", "aGVsbG8="} {
		_, err := codec.Verify(token)
		require.ErrorIs(t, err, ErrTokenInvalid, "token %q", token)
	}
}

func TestSignedTokenManager_IssueAndVerify(t *testing.T) {
	mgr := NewSignedTokenManager("secret", time.Hour)

	token, _, err := mgr.Issue(testIdentity())
	require.NoError(t, err)

	identity, err := mgr.Verify(token)
	require.NoError(t, err)
	require.Equal(t, testIdentity(), *identity)
}

func TestSignedTokenManager_WrongSecret(t *testing.T) {
	token, _, err := NewSignedTokenManager("secret-a", time.Hour).Issue(testIdentity())
	require.NoError(t, err)

	_, err = NewSignedTokenManager("secret-b", time.Hour).Verify(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestSignedTokenManager_Expired(t *testing.T) {
	mgr := NewSignedTokenManager("secret", time.Hour)

	claims := &Claims{
		User: testIdentity(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u-1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = mgr.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

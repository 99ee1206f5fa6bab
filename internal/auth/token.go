package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/warehouse-service/internal/domain"
)

// Token verification failures. Callers map these onto session error kinds.
var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// TokenIssuer issues and verifies session tokens carrying an identity
// snapshot. Verification returns the snapshot as issued; it is not a fresh
// lookup against the user collection.
type TokenIssuer interface {
	Issue(identity domain.Identity) (token string, expiresAt time.Time, err error)
	Verify(token string) (*domain.Identity, error)
}

// tokenPayload is the wire form shared by both issuers. Instants are unix
// milliseconds.
type tokenPayload struct {
	User     domain.Identity `json:"user"`
	IssuedAt int64           `json:"iat"`
	Expires  int64           `json:"exp"`
}

// TokenCodec issues reversible, unsigned tokens: base64 over the JSON
// payload. Anyone holding the raw bytes can reconstruct or forge the
// payload, so this mode is only suitable where the token never crosses a
// trust boundary (the embedded single-client variant).
type TokenCodec struct {
	ttl time.Duration
}

// NewTokenCodec builds a codec with the given token lifetime.
func NewTokenCodec(ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &TokenCodec{ttl: ttl}
}

// Issue encodes a fresh token for the identity.
func (c *TokenCodec) Issue(identity domain.Identity) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(c.ttl)
	token, err := c.IssueWithExpiry(identity, now, expiresAt)
	return token, expiresAt, err
}

// IssueWithExpiry encodes a token with explicit instants. Used to mint
// short-lived or already-expired tokens in tests.
func (c *TokenCodec) IssueWithExpiry(identity domain.Identity, issuedAt, expiresAt time.Time) (string, error) {
	payload := tokenPayload{
		User:     identity,
		IssuedAt: issuedAt.UnixMilli(),
		Expires:  expiresAt.UnixMilli(),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Verify decodes the token and checks expiry.
func (c *TokenCodec) Verify(token string) (*domain.Identity, error) {
	data, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	var payload tokenPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, ErrTokenInvalid
	}
	if payload.Expires <= time.Now().UnixMilli() {
		return nil, ErrTokenExpired
	}
	identity := payload.User
	return &identity, nil
}

// SignedTokenManager issues HS256-signed tokens for server deployments,
// where clients must not be able to forge identities.
type SignedTokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewSignedTokenManager builds a new manager.
func NewSignedTokenManager(secret string, ttl time.Duration) *SignedTokenManager {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &SignedTokenManager{secret: []byte(secret), ttl: ttl}
}

// Claims describes the signed token payload.
type Claims struct {
	User domain.Identity `json:"user"`
	jwt.RegisteredClaims
}

// Issue builds and signs a token for the identity.
func (m *SignedTokenManager) Issue(identity domain.Identity) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.ttl)
	claims := &Claims{
		User: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify validates the signature and expiry, returning the identity snapshot.
func (m *SignedTokenManager) Verify(tokenStr string) (*domain.Identity, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	identity := claims.User
	return &identity, nil
}

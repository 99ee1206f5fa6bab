package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/warehouse-service/internal/domain"
	apperrors "github.com/spec-kit/warehouse-service/pkg/util"
)

const principalKey = "auth_principal"

type identityCtxKey struct{}

// WithIdentity attaches a verified identity to a context. The credential
// store resolves identities from here before falling back to the stored
// session slot, so request-scoped bearer tokens take precedence.
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

// IdentityFromContext retrieves an identity attached by the middleware.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(domain.Identity)
	return identity, ok
}

// AuthMiddleware validates bearer tokens and loads the acting identity.
type AuthMiddleware struct {
	tokens TokenIssuer
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens TokenIssuer) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewNoSession()
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	identity, err := m.tokens.Verify(parts[1])
	if err != nil {
		return apperrors.NewInvalidSession(err.Error())
	}

	c.Locals(principalKey, *identity)
	c.SetUserContext(WithIdentity(c.UserContext(), *identity))
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated identity for a request.
func PrincipalFromContext(c *fiber.Ctx) (domain.Identity, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return domain.Identity{}, false
	}
	identity, ok := val.(domain.Identity)
	return identity, ok
}

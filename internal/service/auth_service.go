package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/warehouse-service/internal/auth"
	"github.com/spec-kit/warehouse-service/internal/config"
	"github.com/spec-kit/warehouse-service/internal/domain"
	"github.com/spec-kit/warehouse-service/internal/repository"
	apperrors "github.com/spec-kit/warehouse-service/pkg/util"
)

// IdentityResolver resolves the acting identity for a store operation.
// Entity services depend on this to stamp createdBy at write time.
type IdentityResolver interface {
	CurrentIdentity(ctx context.Context) (*domain.Identity, error)
}

// AuthService is the credential store: it owns account records and the
// issuance and verification of session tokens.
type AuthService struct {
	users      repository.UserRepository
	sessions   repository.SessionRepository
	tokens     auth.TokenIssuer
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
}

// NewAuthService builds the service, selecting the token issuer from config.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	var issuer auth.TokenIssuer
	if cfg.Auth.TokenMode == config.TokenModeSigned {
		issuer = auth.NewSignedTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	} else {
		issuer = auth.NewTokenCodec(cfg.Auth.TokenTTL())
	}
	return &AuthService{
		users:      deps.UserRepo,
		sessions:   deps.SessionRepo,
		tokens:     issuer,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new account. Uniqueness is joint across username and
// email: a clash on either rejects creation. On success the fresh token
// becomes the current session.
func (s *AuthService) Register(ctx context.Context, username, email, password string, role domain.Role) (*domain.Identity, string, time.Time, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("username, email, password required", nil)
	}
	if role == "" {
		role = domain.RoleUser
	}

	taken, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	if taken {
		return nil, "", time.Time{}, apperrors.NewDuplicateIdentity()
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	return s.openSession(ctx, user.PublicView())
}

// Login authenticates by email and password. Unknown email and wrong
// password fail identically so account existence cannot be probed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Identity, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}
	return s.openSession(ctx, user.PublicView())
}

func (s *AuthService) openSession(ctx context.Context, identity domain.Identity) (*domain.Identity, string, time.Time, error) {
	token, expiresAt, err := s.tokens.Issue(identity)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	if err := s.sessions.SaveToken(ctx, token); err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return &identity, token, expiresAt, nil
}

// CurrentIdentity resolves the acting identity. A bearer identity already
// verified by the HTTP middleware takes precedence; otherwise the stored
// session slot is read and verified. The returned snapshot is the one
// embedded at issue time, not a fresh lookup.
func (s *AuthService) CurrentIdentity(ctx context.Context) (*domain.Identity, error) {
	if identity, ok := auth.IdentityFromContext(ctx); ok {
		return &identity, nil
	}

	token, ok, err := s.sessions.GetToken(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if !ok {
		return nil, apperrors.NewNoSession()
	}

	identity, err := s.tokens.Verify(token)
	if err != nil {
		return nil, apperrors.NewInvalidSession(err.Error())
	}
	return identity, nil
}

// Logout clears the current session slot unconditionally.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.ClearToken(ctx); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// TokenIssuer exposes the underlying issuer for middleware usage.
func (s *AuthService) TokenIssuer() auth.TokenIssuer {
	return s.tokens
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/quoteshelf/api/internal/domain"
	jwtinfra "github.com/quoteshelf/api/internal/infrastructure/jwt"
	"github.com/quoteshelf/api/internal/infrastructure/social"
	"github.com/quoteshelf/api/internal/pkg/password"
	"golang.org/x/crypto/bcrypt"
)

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	UpdateSocialLink(ctx context.Context, userID int64, provider domain.SocialProvider, socialID string) error
}

type verifiedStore interface {
	IsVerified(ctx context.Context, email string) (bool, error)
	ConsumeVerified(ctx context.Context, email string) error
}

type providerRegistry interface {
	Resolve(name string) (social.Provider, error)
}

type Service interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req domain.LoginRequest) (string, error)
	SocialLogin(ctx context.Context, req domain.SocialLoginRequest) (string, error)
	Logout(ctx context.Context) error
}

type service struct {
	users     userStore
	verified  verifiedStore
	providers providerRegistry
	// jwtProvider is nil when the signing secret was absent at startup.
	// Token issuance then fails with domain.ErrConfigMissing instead of
	// taking the whole process down.
	jwtProvider *jwtinfra.Provider
}

func NewService(users userStore, verified verifiedStore, providers providerRegistry, jwtProvider *jwtinfra.Provider) Service {
	return &service{
		users:       users,
		verified:    verified,
		providers:   providers,
		jwtProvider: jwtProvider,
	}
}

// Register creates a local account for a verified email. The verified
// marker is consumed only after the insert has committed, so a failed
// registration leaves it usable. The unique index on email is the source
// of truth for duplicates; the lookup here is just a cheaper first check.
func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	if err := password.Validate(req.Password); err != nil {
		return nil, err
	}
	ok, err := s.verified.IsVerified(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check verified marker: %v: %w", err, domain.ErrStoreUnavailable)
	}
	if !ok {
		return nil, fmt.Errorf("email %s: %w", req.Email, domain.ErrEmailNotVerified)
	}
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("email %s: %w", req.Email, domain.ErrEmailExists)
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{Email: req.Email, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	if err := s.verified.ConsumeVerified(ctx, req.Email); err != nil {
		slog.Warn("failed to consume verified marker", "email", req.Email, "err", err)
	}
	return u, nil
}

// Login verifies local credentials and issues a session token. A
// social-only account gets a distinct error so the client can hint at the
// right login method instead of a generic credentials failure.
func (s *service) Login(ctx context.Context, req domain.LoginRequest) (string, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if u.PasswordHash == "" {
		if u.SocialOnly() {
			return "", fmt.Errorf("login with %s instead: %w", u.Provider, domain.ErrSocialNoPassword)
		}
		return "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	return s.issue(u.ID)
}

// SocialLogin resolves the provider access token to a stable identity,
// links or creates the account, and issues a session token.
func (s *service) SocialLogin(ctx context.Context, req domain.SocialLoginRequest) (string, error) {
	provider, err := s.providers.Resolve(req.SocialProvider)
	if err != nil {
		return "", err
	}
	profile, err := provider.Profile(ctx, req.AccessToken)
	if err != nil {
		return "", err
	}
	userID, err := s.linkOrCreate(ctx, profile.Email, provider.Name(), profile.ID)
	if err != nil {
		return "", err
	}
	return s.issue(userID)
}

// linkOrCreate enforces one provider per account: an account already linked
// to a different provider conflicts, re-linking the same provider is an
// idempotent update, and an unknown email becomes a social-only account.
func (s *service) linkOrCreate(ctx context.Context, email string, provider domain.SocialProvider, socialID string) (int64, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		if u.Provider != "" && u.Provider != provider {
			return 0, fmt.Errorf("account linked to %s: %w", u.Provider, domain.ErrProviderConflict)
		}
		if err := s.users.UpdateSocialLink(ctx, u.ID, provider, socialID); err != nil {
			return 0, err
		}
		return u.ID, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return 0, err
	}
	nu := &domain.User{Email: email, Provider: provider, SocialID: socialID}
	if err := s.users.Create(ctx, nu); err != nil {
		return 0, err
	}
	return nu.ID, nil
}

// Logout is a stateless acknowledgement. Tokens are self-contained bearer
// credentials with no server-side revocation; the client discards its copy.
func (s *service) Logout(context.Context) error {
	return nil
}

func (s *service) issue(userID int64) (string, error) {
	if s.jwtProvider == nil {
		return "", domain.ErrConfigMissing
	}
	return s.jwtProvider.Sign(userID)
}

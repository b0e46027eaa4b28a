package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopstack/commerce-system/internal/api/metrics"
	"github.com/shopstack/commerce-system/internal/core/domain"
	"github.com/shopstack/commerce-system/internal/core/ports"
	"github.com/shopstack/commerce-system/internal/core/token"
)

// AdminSeed holds the startup admin account configuration.
type AdminSeed struct {
	Username string
	Password string
	Role     string
}

// AuthService implements registration, login, token refresh, and the
// role-aware user directory.
type AuthService struct {
	repo     ports.UserRepository
	codec    *token.Codec
	tokenTTL time.Duration
	seed     AdminSeed
	log      zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *token.Codec, tokenTTL time.Duration, seed AdminSeed, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{repo: repo, codec: codec, tokenTTL: tokenTTL, seed: seed, log: log}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	created, err := s.repo.Insert(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	})
	if err != nil {
		return "", err
	}

	s.log.Info().Str("username", username).Msg("user registered")
	return created.ID, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", "", domain.ErrInvalidCredentials
		}
		return "", "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", "", domain.ErrInvalidCredentials
	}

	role := user.Role
	if role == "" {
		role = domain.RoleUser
	}

	tkn, err := s.codec.Issue(user.ID, role, s.tokenTTL)
	if err != nil {
		return "", "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.WithLabelValues("login").Inc()
	return tkn, role, nil
}

// Refresh is a sliding-session renewal: a fresh token with a full TTL is
// issued while the presented token is still valid. The presented token is
// not revoked.
func (s *AuthService) Refresh(ctx context.Context, rawToken string) (string, string, error) {
	claims, err := s.codec.Verify(rawToken)
	if err != nil {
		return "", "", domain.ErrInvalidCredentials
	}

	role := claims.Role
	if !claims.RoleKnown {
		role = s.resolveRole(ctx, claims.Subject)
	}

	tkn, err := s.codec.Issue(claims.Subject, role, s.tokenTTL)
	if err != nil {
		return "", "", err
	}

	metrics.TokensIssuedTotal.WithLabelValues("refresh").Inc()
	return tkn, role, nil
}

// resolveRole looks up the authoritative role for tokens minted before the
// role claim existed, defaulting to "user" on any lookup failure.
func (s *AuthService) resolveRole(ctx context.Context, subject string) string {
	user, err := s.repo.FindByID(ctx, subject)
	if err != nil || user == nil || user.Role == "" {
		return domain.RoleUser
	}
	return user.Role
}

func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Role == "" {
			users[i].Role = domain.RoleUser
		}
	}
	return users, nil
}

// SeedAdmin creates the configured admin account when absent, or corrects
// its role when it drifted. Errors are returned for logging only; callers
// must not let a seeding failure abort startup.
func (s *AuthService) SeedAdmin(ctx context.Context) error {
	existing, err := s.repo.FindByUsername(ctx, s.seed.Username)
	switch {
	case err == nil:
		if existing.Role == s.seed.Role {
			return nil
		}
		if err := s.repo.UpdateRole(ctx, existing.ID, s.seed.Role); err != nil {
			return err
		}
		s.log.Info().Str("username", s.seed.Username).Str("role", s.seed.Role).Msg("admin role corrected")
		return nil
	case errors.Is(err, domain.ErrUserNotFound):
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(s.seed.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return hashErr
		}
		if _, err := s.repo.Insert(ctx, &domain.User{
			Username:     s.seed.Username,
			PasswordHash: string(hash),
			Role:         s.seed.Role,
		}); err != nil {
			return err
		}
		s.log.Info().Str("username", s.seed.Username).Msg("admin account seeded")
		return nil
	default:
		return err
	}
}

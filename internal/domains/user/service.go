package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-ozzo/ozzo-validation/v4/is"
	"golang.org/x/crypto/bcrypt"

	"midnightsoldiers-backend/internal/config"
	"midnightsoldiers-backend/internal/infrastructure/database"
	"midnightsoldiers-backend/pkg/cache"
	"midnightsoldiers-backend/pkg/jwt"
	"midnightsoldiers-backend/pkg/logger"
)

type Service interface {
	// Login resolves a username or email to the admin account and issues
	// an access token. ip scopes the failed-attempt throttle.
	Login(ctx context.Context, req LoginRequest, ip string) (*LoginResponse, error)

	// EnsureAdmin seeds the admin account on startup when the configured
	// password is set and no account exists yet.
	EnsureAdmin(ctx context.Context) error
}

type service struct {
	repo       Repository
	cache      cache.Cache
	jwtManager *jwt.Manager
	cfg        config.AuthConfig
}

func NewService(repo Repository, c cache.Cache, jwtManager *jwt.Manager, cfg config.AuthConfig) Service {
	return &service{
		repo:       repo,
		cache:      c,
		jwtManager: jwtManager,
		cfg:        cfg,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest, ip string) (*LoginResponse, error) {
	if s.cfg.AdminEmail == "" {
		return nil, ErrMisconfigured
	}

	email, err := s.resolveEmail(req.Username)
	if err != nil {
		return nil, err
	}

	throttleKey := fmt.Sprintf("login_attempts:%s:%s", strings.ToLower(req.Username), ip)
	if err := s.checkThrottle(ctx, throttleKey); err != nil {
		return nil, err
	}

	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrDocumentNotFound) {
			s.recordFailure(ctx, throttleKey)
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		s.recordFailure(ctx, throttleKey)
		return nil, ErrWrongPassword
	}

	if err := s.cache.Delete(ctx, throttleKey); err != nil {
		logger.Warn("failed to reset login throttle", map[string]interface{}{"error": err.Error()})
	}

	token, err := s.jwtManager.GenerateAccessToken(admin.Email, admin.Email, admin.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		Email:       admin.Email,
		Role:        admin.Role,
	}, nil
}

// resolveEmail maps a bare username through the alias table; anything with
// an @ is treated as an email address directly.
func (s *service) resolveEmail(usernameOrEmail string) (string, error) {
	if !strings.Contains(usernameOrEmail, "@") {
		alias := strings.ToLower(usernameOrEmail)
		for _, known := range s.cfg.AdminAliases {
			if alias == known {
				return s.cfg.AdminEmail, nil
			}
		}
		return "", ErrUserNotFound
	}

	if err := is.Email.Validate(usernameOrEmail); err != nil {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(usernameOrEmail), nil
}

func (s *service) checkThrottle(ctx context.Context, key string) error {
	var attempts int64
	found, err := s.cache.Get(ctx, key, &attempts)
	if err != nil {
		// A cache outage must not lock the admin out.
		logger.Warn("login throttle lookup failed", map[string]interface{}{"error": err.Error()})
		return nil
	}
	if found && attempts >= int64(s.cfg.MaxLoginAttempts) {
		return ErrTooManyRequests
	}
	return nil
}

func (s *service) recordFailure(ctx context.Context, key string) {
	attempts, err := s.cache.Increment(ctx, key)
	if err != nil {
		logger.Warn("failed to record login failure", map[string]interface{}{"error": err.Error()})
		return
	}
	if attempts == 1 {
		if err := s.cache.Expire(ctx, key, s.cfg.LoginLockWindow); err != nil {
			logger.Warn("failed to set login throttle window", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (s *service) EnsureAdmin(ctx context.Context) error {
	if s.cfg.AdminEmail == "" || s.cfg.AdminPassword == "" {
		return nil
	}

	_, err := s.repo.GetByEmail(ctx, s.cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, database.ErrDocumentNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &Admin{
		Email:        s.cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         RoleAdmin,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.repo.Save(ctx, admin); err != nil {
		return err
	}

	logger.Info("seeded admin account", map[string]interface{}{"email": admin.Email})
	return nil
}

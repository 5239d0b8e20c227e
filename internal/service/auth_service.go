package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/publication-cms-api/internal/apperr"
	"github.com/publication-cms-api/internal/config"
	"github.com/publication-cms-api/internal/models"
	"github.com/publication-cms-api/internal/repository"
	"github.com/publication-cms-api/internal/validation"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService
type authService struct {
	userRepo repository.UserRepository
	cfg      *config.AuthConfig
	log      zerolog.Logger
}

// newAuthService creates a new AuthService
func newAuthService(userRepo repository.UserRepository, cfg *config.AuthConfig, log zerolog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
		log:      log.With().Str("service", "auth").Logger(),
	}
}

// dummyHash is a well-formed bcrypt hash compared against when the email
// is unknown, so that path costs the same as a real mismatch.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// tokenClaims are the claims embedded in an identity token
type tokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Register creates a new user with the configured default role. The
// plaintext password exists only on the stack here: it is hashed with
// bcrypt and never stored or logged.
func (s *authService) Register(ctx context.Context, email, password string) (string, error) {
	if errs := validation.ValidateCredentials(email, password); len(errs) > 0 {
		return "", errs
	}
	email = validation.NormalizeEmail(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         s.cfg.DefaultRole,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	s.log.Info().Str("user_id", user.ID).Msg("User registered")
	return user.ID, nil
}

// Verify checks an email/password pair. An unknown email and a wrong
// password produce the exact same error so callers cannot enumerate
// accounts.
func (s *authService) Verify(ctx context.Context, email, password string) (*models.Principal, error) {
	email = validation.NormalizeEmail(email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	return &models.Principal{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}

// IssueToken produces a signed HS256 token embedding the principal with
// the configured expiry
func (s *authService) IssueToken(principal *models.Principal) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Email: principal.Email,
		Role:  principal.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies signature and expiry and returns the embedded
// principal. Any verification failure is ErrForbidden.
func (s *authService) ParseToken(rawToken string) (*models.Principal, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(rawToken, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.ErrForbidden
	}

	return &models.Principal{ID: claims.Subject, Email: claims.Email, Role: claims.Role}, nil
}

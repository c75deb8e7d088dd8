// internal/auth/service.go
package auth

import (
    "context"
    "errors"
    "time"

    "github.com/dgrijalva/jwt-go"
    "github.com/google/uuid"
    "golang.org/x/crypto/bcrypt"

    "gne-trainer/internal/models"
)

const sessionTTL = 24 * time.Hour

// TokenStore is the session revocation list, normally Redis-backed.
type TokenStore interface {
    RevokeToken(ctx context.Context, token string, ttl time.Duration) error
    IsTokenRevoked(ctx context.Context, token string) (bool, error)
}

type Service struct {
    repo      *Repository
    tokens    TokenStore
    jwtSecret []byte
}

func NewService(repo *Repository, tokens TokenStore, jwtSecret string) *Service {
    return &Service{
        repo:      repo,
        tokens:    tokens,
        jwtSecret: []byte(jwtSecret),
    }
}

// SignUp provisions a Profile for a new identity. Everyone starts as a
// member; promoting to admin is an operator action done directly in the
// database.
func (s *Service) SignUp(email, password string) error {
    hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
    if err != nil {
        return err
    }

    profile := &models.Profile{
        ID:           uuid.New(),
        Email:        email,
        Role:         models.RoleMember,
        PasswordHash: string(hashed),
    }
    return s.repo.CreateProfile(profile)
}

func (s *Service) SignIn(email, password string) (string, error) {
    profile, err := s.repo.GetProfileByEmail(email)
    if err != nil {
        return "", errors.New("user not found")
    }

    if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
        return "", errors.New("invalid password")
    }

    token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
        "user_id": profile.ID.String(),
        "email":   profile.Email,
        "exp":     time.Now().Add(sessionTTL).Unix(),
    })

    return token.SignedString(s.jwtSecret)
}

// SignOut revokes the presented token for the remainder of its lifetime.
func (s *Service) SignOut(ctx context.Context, rawToken string) error {
    claims := jwt.MapClaims{}
    _, err := jwt.ParseWithClaims(rawToken, &claims, func(token *jwt.Token) (interface{}, error) {
        return s.jwtSecret, nil
    })
    if err != nil {
        return errors.New("invalid token")
    }

    ttl := sessionTTL
    if exp, ok := claims["exp"].(float64); ok {
        ttl = time.Until(time.Unix(int64(exp), 0))
    }
    return s.tokens.RevokeToken(ctx, rawToken, ttl)
}

func (s *Service) Profile(id uuid.UUID) (*models.Profile, error) {
    return s.repo.GetProfileByID(id)
}

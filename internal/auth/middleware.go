// internal/auth/middleware.go
package auth

import (
    "context"
    "log"
    "net/http"
    "strings"

    "github.com/dgrijalva/jwt-go"
    "github.com/google/uuid"

    "gne-trainer/internal/models"
)

// Unauthenticated and unauthorized callers are redirected, never shown an
// error body: missing identity goes to the login flow, a missing admin role
// goes back to the landing view.
const (
    loginPath   = "/login"
    landingPath = "/"
)

type ctxKey int

const (
    userIDKey ctxKey = iota
    rawTokenKey
)

// UserID returns the authenticated user's id from the request context.
func UserID(ctx context.Context) (uuid.UUID, bool) {
    id, ok := ctx.Value(userIDKey).(uuid.UUID)
    return id, ok
}

// RawToken returns the bearer token the request authenticated with.
func RawToken(ctx context.Context) (string, bool) {
    token, ok := ctx.Value(rawTokenKey).(string)
    return token, ok
}

// Middleware resolves the current user on every request. Each call
// re-validates the session, so a token that expired or was revoked between
// presenting an item and submitting an answer fails here before any write.
func Middleware(jwtSecret string, tokens TokenStore) func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            authHeader := r.Header.Get("Authorization")
            if authHeader == "" {
                http.Redirect(w, r, loginPath, http.StatusSeeOther)
                return
            }

            bearerToken := strings.Split(authHeader, " ")
            if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
                http.Redirect(w, r, loginPath, http.StatusSeeOther)
                return
            }
            rawToken := bearerToken[1]

            claims := jwt.MapClaims{}
            token, err := jwt.ParseWithClaims(rawToken, &claims, func(token *jwt.Token) (interface{}, error) {
                return []byte(jwtSecret), nil
            })
            if err != nil || !token.Valid {
                http.Redirect(w, r, loginPath, http.StatusSeeOther)
                return
            }

            revoked, err := tokens.IsTokenRevoked(r.Context(), rawToken)
            if err != nil {
                log.Printf("Error checking token revocation: %v", err)
                http.Error(w, "Session check failed", http.StatusInternalServerError)
                return
            }
            if revoked {
                http.Redirect(w, r, loginPath, http.StatusSeeOther)
                return
            }

            rawID, ok := claims["user_id"].(string)
            if !ok {
                http.Redirect(w, r, loginPath, http.StatusSeeOther)
                return
            }
            userID, err := uuid.Parse(rawID)
            if err != nil {
                http.Redirect(w, r, loginPath, http.StatusSeeOther)
                return
            }

            ctx := context.WithValue(r.Context(), userIDKey, userID)
            ctx = context.WithValue(ctx, rawTokenKey, rawToken)
            next.ServeHTTP(w, r.WithContext(ctx))
        })
    }
}

// ProfileSource loads the profile row backing an identity.
type ProfileSource interface {
    GetProfileByID(id uuid.UUID) (*models.Profile, error)
}

// AdminOnly gates the content-management surface. It runs after Middleware.
func AdminOnly(profiles ProfileSource) func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            userID, ok := UserID(r.Context())
            if !ok {
                http.Redirect(w, r, loginPath, http.StatusSeeOther)
                return
            }

            profile, err := profiles.GetProfileByID(userID)
            if err != nil {
                log.Printf("Error loading profile %s: %v", userID, err)
                http.Redirect(w, r, landingPath, http.StatusSeeOther)
                return
            }
            if profile.Role != models.RoleAdmin {
                http.Redirect(w, r, landingPath, http.StatusSeeOther)
                return
            }

            next.ServeHTTP(w, r)
        })
    }
}

package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"

	"medcamp/internal/domain"
	"medcamp/internal/infra"
	"medcamp/internal/sqlinline"
)

// TokenTTL matches the 7-day expiry the frontend expects.
const TokenTTL = 7 * 24 * time.Hour

const tokenIssuer = "medcamp-server"

// TokenClaims are the verified bearer-token claims. Email is the identity
// every downstream check keys on.
type TokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

type emailContextKey struct{}

var emailKey = emailContextKey{}

// SignToken issues an HS256 bearer token for the given identity.
func SignToken(secret, email, name string, now time.Time) (string, error) {
	claims := TokenClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyToken parses and validates a bearer token, returning its claims.
func VerifyToken(secret, token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Email == "" {
		return nil, errors.New("token missing email claim")
	}
	return claims, nil
}

// AuthJWT gates a route on a valid bearer token. A missing header is 401, an
// invalid or expired token is 403; on success the claims' email lands in the
// request context.
func AuthJWT(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				deny(w, domain.ErrUnauthorized)
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				deny(w, domain.ErrUnauthorized)
				return
			}
			claims, err := VerifyToken(secret, parts[1])
			if err != nil {
				deny(w, domain.ErrForbidden)
				return
			}
			ctx := context.WithValue(r.Context(), emailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin looks up the authenticated user's stored role and rejects
// anyone who is not an admin. It must be composed after AuthJWT: the lookup
// reads the email AuthJWT verified into the context.
func RequireAdmin(sql infra.SQLExecutor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := EmailFromContext(r.Context())
			if email == "" {
				deny(w, domain.ErrUnauthorized)
				return
			}
			var role domain.UserRole
			err := sql.QueryRow(r.Context(), sqlinline.QSelectUserRoleByEmail, email).Scan(&role)
			if err != nil || !role.IsAdmin() {
				if err != nil && !errors.Is(err, pgx.ErrNoRows) {
					respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
					return
				}
				deny(w, domain.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// EmailFromContext returns the verified token email, or "" when the request
// did not pass AuthJWT.
func EmailFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(emailKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithEmail injects a verified email, mainly for tests.
func ContextWithEmail(ctx context.Context, email string) context.Context {
	if strings.TrimSpace(email) == "" {
		return ctx
	}
	return context.WithValue(ctx, emailKey, email)
}

// deny writes the auth rejection for a credential sentinel: a missing
// credential is 401, a bad credential or insufficient role is 403.
func deny(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrUnauthorized) {
		respondJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized access"})
		return
	}
	respondJSON(w, http.StatusForbidden, map[string]string{"message": "forbidden access"})
}

func respondJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

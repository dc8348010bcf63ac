package middleware

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const (
	CtxEmail     ctxKey = "email"
	CtxTokenID   ctxKey = "jti"
	CtxExpiresAt ctxKey = "exp"
)

// RevocationList remembers logged-out token ids until they would have expired
// anyway.
type RevocationList struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewRevocationList() *RevocationList {
	return &RevocationList{revoked: make(map[string]time.Time), now: time.Now}
}

func (l *RevocationList) Revoke(jti string, expiresAt time.Time) {
	if jti == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.revoked[jti] = expiresAt
	now := l.now()
	for id, exp := range l.revoked {
		if exp.Before(now) {
			delete(l.revoked, id)
		}
	}
}

func (l *RevocationList) Revoked(jti string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.revoked[jti]
	return ok
}

func JWTAuth(secret string, revoked *RevocationList) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Missing Authorization header", http.StatusUnauthorized)
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Invalid Authorization header", http.StatusUnauthorized)
				return
			}
			tokenString := parts[1]

			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithLeeway(30*time.Second))
			if err != nil || token == nil || !token.Valid {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "Invalid token claims", http.StatusUnauthorized)
				return
			}

			email, _ := claims["email"].(string)
			if email == "" {
				email, _ = claims["sub"].(string)
			}
			if email == "" {
				http.Error(w, "Invalid token subject", http.StatusUnauthorized)
				return
			}

			jti, _ := claims["jti"].(string)
			if revoked != nil && jti != "" && revoked.Revoked(jti) {
				http.Error(w, "Session has ended", http.StatusUnauthorized)
				return
			}

			var expiresAt time.Time
			if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
				expiresAt = exp.Time
			}

			ctx := context.WithValue(r.Context(), CtxEmail, email)
			ctx = context.WithValue(ctx, CtxTokenID, jti)
			ctx = context.WithValue(ctx, CtxExpiresAt, expiresAt)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Email returns the signed-in user's email, or "" outside an authenticated
// request.
func Email(ctx context.Context) string {
	email, _ := ctx.Value(CtxEmail).(string)
	return email
}

func TokenID(ctx context.Context) string {
	jti, _ := ctx.Value(CtxTokenID).(string)
	return jti
}

func ExpiresAt(ctx context.Context) time.Time {
	exp, _ := ctx.Value(CtxExpiresAt).(time.Time)
	return exp
}

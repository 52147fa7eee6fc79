package auth

import (
	"context"
	"net/http"
)

type claimsKey struct{}

// AuthMiddleware пропускает запрос только с действительным токеном
// и кладет его утверждения в контекст
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := Authenticate(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	return claims, ok && claims != nil
}

// RequireAuth возвращает ID пользователя, чью сессию обслуживает запрос
func RequireAuth(ctx context.Context) (int64, error) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

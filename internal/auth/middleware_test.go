package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"utility-calculator/internal/auth"
	"utility-calculator/internal/calculator"
	"utility-calculator/internal/db"
)

func tokenFor(t *testing.T, id int64) string {
	t.Helper()
	token, err := auth.GenerateToken(&db.User{ID: id, Login: "user"})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return token
}

func display(t *testing.T, registry *calculator.Registry, userID int64) string {
	t.Helper()
	var got string
	registry.With(userID, func(s *calculator.Session) error {
		got, _ = s.Field(calculator.FieldDisplay)
		return nil
	})
	return got
}

// TestAuthMiddlewareSelectsSession проверяет, что токен выбирает сессию своего пользователя
func TestAuthMiddlewareSelectsSession(t *testing.T) {
	useTestConfig(60)
	registry := calculator.NewRegistry(nil)

	// Обработчик дописывает цифру в дисплей сессии пользователя из токена
	handler := auth.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := auth.RequireAuth(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		registry.With(userID, func(s *calculator.Session) error {
			s.Append(r.URL.Query().Get("digit"))
			return nil
		})
	}))

	now := time.Now()
	expired := sign(t, jwt.SigningMethodHS256, testSecret, sessionClaims(1, now.Add(-time.Hour), now.Add(-time.Minute)))

	tests := []struct {
		name          string
		authorization string
		digit         string
		wantStatus    int
	}{
		{"First user", "Bearer " + tokenFor(t, 1), "1", http.StatusOK},
		{"Second user", "Bearer " + tokenFor(t, 2), "2", http.StatusOK},
		{"First user again", "Bearer " + tokenFor(t, 1), "3", http.StatusOK},
		{"Missing token", "", "9", http.StatusUnauthorized},
		{"Basic scheme", "Basic " + tokenFor(t, 1), "9", http.StatusUnauthorized},
		{"Expired token", "Bearer " + expired, "9", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/session/keys?digit="+tt.digit, nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
		})
	}

	if got := display(t, registry, 1); got != "13" {
		t.Errorf("first user display = %q, want 13", got)
	}
	if got := display(t, registry, 2); got != "2" {
		t.Errorf("second user display = %q, want 2", got)
	}
	if n := registry.Len(); n != 2 {
		t.Errorf("sessions = %d, rejected requests must not create one", n)
	}
}

// TestRequireAuth проверяет чтение пользователя из контекста
func TestRequireAuth(t *testing.T) {
	if _, err := auth.RequireAuth(context.Background()); err != auth.ErrInvalidToken {
		t.Errorf("RequireAuth() without claims error = %v", err)
	}

	ctx := auth.WithClaims(context.Background(), &auth.Claims{UserID: 42})
	if id, err := auth.RequireAuth(ctx); err != nil || id != 42 {
		t.Errorf("RequireAuth() = %d, %v, want 42", id, err)
	}

	if _, ok := auth.ClaimsFromContext(auth.WithClaims(context.Background(), nil)); ok {
		t.Error("ClaimsFromContext() accepted nil claims")
	}
}

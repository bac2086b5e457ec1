package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New().String()
	token, err := GenerateToken(userID, "staff", "Laura Pérez", "laura.perez@hpq.in")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var got *Claims
	handler := JWTMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetClaims(r)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got == nil {
		t.Fatal("claims not found in request context")
	}
	if got.UserID != userID || got.Role != "staff" || got.Email != "laura.perez@hpq.in" {
		t.Errorf("claims = %+v", got)
	}
}

func TestSigningKeyFollowsEnvironment(t *testing.T) {
	// the secret may only appear after .env is loaded, well past package
	// init; issuing and validating must both see the value current then
	t.Setenv("JWT_SECRET", "clave-uno")
	token, err := GenerateToken(uuid.New().String(), "staff", "Prueba", "prueba@hpq.in")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	handler := JWTMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status with matching key = %d, want 200", rec.Code)
	}

	// a token signed under another secret is rejected
	t.Setenv("JWT_SECRET", "clave-dos")
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status with rotated key = %d, want 401", rec.Code)
	}
}

func TestMiddlewareRejectsBadHeaders(t *testing.T) {
	handler := JWTMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run")
	}))

	cases := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer definitely.not.a.jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("%s: status = %d, want 401", tc.name, rec.Code)
			}
		})
	}
}

package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rahmanshaon/A10-civic-clean-server/internal/domain"
)

type fakeVerifier struct {
	calls int
	valid map[string]domain.Identity
}

func (f *fakeVerifier) VerifyIDToken(_ context.Context, raw string) (domain.Identity, error) {
	f.calls++
	if raw == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	id, ok := f.valid[raw]
	if !ok {
		return domain.Identity{}, fmt.Errorf("%w: unknown token", domain.ErrInvalidToken)
	}
	return id, nil
}

func TestAuthenticate(t *testing.T) {
	alice := domain.Identity{Subject: "uid-1", Email: "alice@example.com"}

	tests := []struct {
		name        string
		header      string
		wantStatus  int
		wantCode    string
		wantVerify  bool
		wantReached bool
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantCode: "unauthorized"},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantCode: "unauthorized"},
		{name: "bearer without token", header: "Bearer ", wantStatus: http.StatusUnauthorized, wantCode: "unauthorized"},
		{name: "lowercase scheme", header: "bearer good", wantStatus: http.StatusUnauthorized, wantCode: "unauthorized"},
		{name: "rejected token", header: "Bearer forged", wantStatus: http.StatusForbidden, wantCode: "forbidden", wantVerify: true},
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusOK, wantVerify: true, wantReached: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			verifier := &fakeVerifier{valid: map[string]domain.Identity{"good": alice}}
			reached := false
			h := Authenticate(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				id, ok := IdentityFromContext(r.Context())
				if !ok || id.Email != alice.Email {
					t.Errorf("identity = %+v, %v", id, ok)
				}
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodPost, "/issues", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if reached != tc.wantReached {
				t.Fatalf("handler reached = %v, want %v", reached, tc.wantReached)
			}
			if (verifier.calls > 0) != tc.wantVerify {
				t.Fatalf("verifier calls = %d", verifier.calls)
			}
			if tc.wantCode != "" && !strings.Contains(rec.Body.String(), `"error":"`+tc.wantCode+`"`) {
				t.Fatalf("body = %s, want error %q", rec.Body.String(), tc.wantCode)
			}
		})
	}
}

func TestIdentityFromContextEmpty(t *testing.T) {
	if _, ok := IdentityFromContext(context.Background()); ok {
		t.Fatalf("expected no identity")
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	t.Run("listed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/issues", nil)
		req.Header.Set("Origin", "https://civic.example")
		rec := httptest.NewRecorder()
		CORS([]string{"https://civic.example"})(next).ServeHTTP(rec, req)
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://civic.example" {
			t.Fatalf("allow origin = %q", got)
		}
	})

	t.Run("unlisted origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/issues", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		CORS([]string{"https://civic.example"})(next).ServeHTTP(rec, req)
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Fatalf("allow origin = %q, want empty", got)
		}
	})

	t.Run("wildcard preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/issues", nil)
		req.Header.Set("Origin", "https://any.example")
		rec := httptest.NewRecorder()
		CORS([]string{"*"})(next).ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", rec.Code)
		}
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://any.example" {
			t.Fatalf("allow origin = %q", got)
		}
	})
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if seen != "abc-123" || rec.Header().Get("X-Request-ID") != "abc-123" {
		t.Fatalf("request id = %q / %q", seen, rec.Header().Get("X-Request-ID"))
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || seen == "abc-123" {
		t.Fatalf("expected generated request id, got %q", seen)
	}
}

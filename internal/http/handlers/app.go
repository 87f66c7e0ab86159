package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/rahmanshaon/A10-civic-clean-server/internal/domain"
	"github.com/rahmanshaon/A10-civic-clean-server/internal/middleware"
	"github.com/rahmanshaon/A10-civic-clean-server/internal/storage"
)

// App carries the dependencies shared by every handler. All fields are set
// once at startup and only read afterwards.
type App struct {
	Issues        domain.IssueRepository
	Contributions domain.ContributionRepository
	Store         domain.Pinger
	Images        storage.ObjectStore
	Logger        zerolog.Logger

	MaxUploadBytes int64
	Now            func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, msg string) {
	a.json(w, code, map[string]string{"error": errCode, "message": msg})
}

// fail maps domain errors onto HTTP responses. Anything unrecognised is logged
// and reported as a generic 500.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		a.error(w, http.StatusUnauthorized, "unauthorized", "unauthorized access")
	case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrForbidden):
		a.error(w, http.StatusForbidden, "forbidden", "forbidden access")
	case errors.Is(err, domain.ErrMissingParam):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrInvalidID):
		a.error(w, http.StatusBadRequest, "invalid_id", "invalid identifier")
	case errors.Is(err, domain.ErrInvalidPayload):
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
	default:
		a.Logger.Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

// currentIdentity returns the caller verified by the authentication
// middleware.
func (a *App) currentIdentity(r *http.Request) (domain.Identity, error) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return id, nil
}

// decode reads a JSON object into dst. An empty body decodes as an empty
// object; unknown fields are ignored.
func decode(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	return nil
}

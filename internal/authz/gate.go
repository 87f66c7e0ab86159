// Package authz holds the per-request authorization checks that run after a
// caller has been authenticated and before any store access.
package authz

import (
	"fmt"
	"strings"

	"github.com/rahmanshaon/A10-civic-clean-server/internal/domain"
)

// RequireParam rejects a blank scoping parameter so that a caller-scoped
// listing can never degrade into an unfiltered one.
func RequireParam(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", domain.ErrMissingParam, name)
	}
	return nil
}

// RequireOwnership allows the request only when the verified caller is the
// identity named by the request. The comparison is exact.
func RequireOwnership(caller domain.Identity, ownerEmail string) error {
	if caller.Email == "" || caller.Email != ownerEmail {
		return fmt.Errorf("%w: caller is not the resource owner", domain.ErrForbidden)
	}
	return nil
}

// RequireOwnedScope combines RequireParam and RequireOwnership for listings
// scoped by an email query parameter.
func RequireOwnedScope(caller domain.Identity, param, value string) error {
	if err := RequireParam(param, value); err != nil {
		return err
	}
	return RequireOwnership(caller, value)
}

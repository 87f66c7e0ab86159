// Package identity verifies bearer ID tokens issued by the external identity
// provider. Firebase Authentication tokens are standard OIDC ID tokens whose
// issuer is https://securetoken.google.com/<project> and whose audience is the
// project id, so the same verifier serves Firebase and any other OIDC issuer.
package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/rahmanshaon/A10-civic-clean-server/internal/domain"
)

type Verifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewVerifier discovers the issuer's signing keys. Keys are fetched lazily and
// cached by go-oidc; verified tokens are never cached.
func NewVerifier(ctx context.Context, issuer, audience string) (*Verifier, error) {
	if issuer == "" || audience == "" {
		return nil, fmt.Errorf("identity: issuer and audience are required")
	}
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("identity: discover %s: %w", issuer, err)
	}
	return &Verifier{verifier: provider.Verifier(&oidc.Config{ClientID: audience})}, nil
}

// NewStaticVerifier verifies against a fixed key set without discovery.
func NewStaticVerifier(issuer, audience string, keys oidc.KeySet) *Verifier {
	return &Verifier{verifier: oidc.NewVerifier(issuer, keys, &oidc.Config{ClientID: audience})}
}

// VerifyIDToken returns the identity carried by raw. A blank token yields
// domain.ErrUnauthenticated; any rejection by the provider, or a token without
// an email claim, yields domain.ErrInvalidToken.
func (v *Verifier) VerifyIDToken(ctx context.Context, raw string) (domain.Identity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	token, err := v.verifier.Verify(ctx, raw)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	var claims map[string]any
	if err := token.Claims(&claims); err != nil {
		return domain.Identity{}, fmt.Errorf("%w: decode claims: %v", domain.ErrInvalidToken, err)
	}
	email := stringClaim(claims, "email")
	if email == "" {
		return domain.Identity{}, fmt.Errorf("%w: token has no email claim", domain.ErrInvalidToken)
	}
	verified, _ := claims["email_verified"].(bool)
	return domain.Identity{
		Subject:       token.Subject,
		Email:         email,
		EmailVerified: verified,
		Name:          stringClaim(claims, "name"),
		Claims:        claims,
	}, nil
}

func stringClaim(claims map[string]any, key string) string {
	s, _ := claims[key].(string)
	return strings.TrimSpace(s)
}

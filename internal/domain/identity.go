package domain

// Identity is the verified caller derived from a bearer ID token.
type Identity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
	Claims        map[string]any
}

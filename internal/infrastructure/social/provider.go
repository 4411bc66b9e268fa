package social

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/quoteshelf/api/internal/domain"
)

// Profile is the provider-agnostic result of resolving an access token:
// a stable provider-assigned identifier plus the account email.
type Profile struct {
	ID    string
	Email string
}

// Provider resolves an access token against one identity provider's
// user-info endpoint. The set of implementations is closed; adding a
// provider means adding a variant, not branching logic.
type Provider interface {
	Name() domain.SocialProvider
	Profile(ctx context.Context, accessToken string) (*Profile, error)
}

// Registry dispatches by provider name.
type Registry struct {
	providers map[domain.SocialProvider]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	m := make(map[domain.SocialProvider]Provider, len(providers))
	for _, p := range providers {
		m[p.Name()] = p
	}
	return &Registry{providers: m}
}

// Resolve returns the adapter for name, or domain.ErrInvalidProvider.
func (r *Registry) Resolve(name string) (Provider, error) {
	p, ok := r.providers[domain.SocialProvider(name)]
	if !ok {
		return nil, fmt.Errorf("provider %q: %w", name, domain.ErrInvalidProvider)
	}
	return p, nil
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

package session

import (
	"context"
)

// Identity describes the authenticated user as reported by the identity
// provider. OwnerID scopes every store read and write.
type Identity struct {
	OwnerID     string
	Email       string
	DisplayName string
	PhotoURL    string
}

// Provider supplies the current authenticated identity and the sign-in and
// sign-out operations. Subscribers are notified on every identity transition:
// sign-in delivers the new identity, sign-out delivers nil. A token refresh
// reuses the existing identity and does not re-notify.
type Provider interface {
	// SignIn authenticates interactively and returns the resulting identity.
	SignIn(ctx context.Context) (*Identity, error)

	// SignOut clears the current identity and cached credentials.
	SignOut(ctx context.Context) error

	// Current returns the signed-in identity, or nil when signed out.
	Current() *Identity

	// Subscribe registers a callback for identity transitions and returns a
	// function that removes the subscription.
	Subscribe(fn func(*Identity)) (unsubscribe func())
}

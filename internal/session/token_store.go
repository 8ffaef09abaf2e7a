package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
)

// storedSession is the on-disk shape of a cached session: the OAuth token
// pair plus the identity resolved when it was obtained. Keeping the identity
// alongside the token lets a later process restore the session without a
// network round trip.
type storedSession struct {
	Token    *oauth2.Token `json:"token"`
	Identity *Identity     `json:"identity"`
}

// TokenStore persists session credentials under the auth directory
// (~/.ojt/auth by default).
type TokenStore struct {
	path string
}

// NewTokenStore creates a token store writing to dir/tokens.json.
func NewTokenStore(dir string) *TokenStore {
	return &TokenStore{path: filepath.Join(dir, "tokens.json")}
}

// Load reads the cached session. Returns (nil, nil, nil) when no session has
// been stored yet.
func (ts *TokenStore) Load() (*oauth2.Token, *Identity, error) {
	data, err := os.ReadFile(ts.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	var stored storedSession
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, nil, err
	}
	return stored.Token, stored.Identity, nil
}

// Save writes the session to disk, creating the auth directory if needed.
// The file is user-only; it holds a refresh token.
func (ts *TokenStore) Save(token *oauth2.Token, identity *Identity) error {
	if err := os.MkdirAll(filepath.Dir(ts.path), 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(storedSession{Token: token, Identity: identity}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(ts.path, data, 0600)
}

// Clear removes the cached session. Missing file is not an error.
func (ts *TokenStore) Clear() error {
	err := os.Remove(ts.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/oauth2"

	"ojt-tracker/internal/errors"
	"ojt-tracker/internal/logging"
)

// Google OAuth endpoints. Declared here rather than importing the
// oauth2/google subpackage, which drags in a cloud metadata dependency.
var googleEndpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.google.com/o/oauth2/auth",
	TokenURL: "https://oauth2.googleapis.com/token",
}

const userinfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

// OAuthConfig holds the provider client settings.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	AuthDir      string
}

// OAuthProvider implements Provider using the OAuth2 authorization code flow
// with a loopback redirect: sign-in opens the provider's consent page in the
// user's browser, the local listener captures the redirect. The loopback
// listener plays the role the popup plays in a hosted client.
type OAuthProvider struct {
	config  *oauth2.Config
	store   *TokenStore
	openURL func(string) error

	mu          sync.Mutex
	current     *Identity
	token       *oauth2.Token
	subscribers map[int]func(*Identity)
	nextSubID   int
}

// NewOAuthProvider creates a provider and silently restores any cached
// session. Restoring is not an identity transition; no notification fires.
func NewOAuthProvider(cfg OAuthConfig) *OAuthProvider {
	p := &OAuthProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     googleEndpoint,
			Scopes:       []string{"openid", "email", "profile"},
		},
		store:       NewTokenStore(cfg.AuthDir),
		openURL:     openBrowser,
		subscribers: make(map[int]func(*Identity)),
	}

	token, identity, err := p.store.Load()
	if err != nil {
		logging.Debugf("session restore failed: %v\n", err)
		return p
	}
	if token != nil && identity != nil && (token.Valid() || token.RefreshToken != "") {
		p.token = token
		p.current = identity
	}
	return p
}

// Current returns the signed-in identity, or nil when signed out.
func (p *OAuthProvider) Current() *Identity {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Subscribe registers a callback for identity transitions.
func (p *OAuthProvider) Subscribe(fn func(*Identity)) func() {
	p.mu.Lock()
	id := p.nextSubID
	p.nextSubID++
	p.subscribers[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subscribers, id)
		p.mu.Unlock()
	}
}

// SignIn runs the interactive sign-in flow. The three user-visible failure
// modes are kept distinct: the local redirect page could not be opened, the
// provider rejected this client's redirect, and any other provider failure
// with the provider-supplied message. Application state is unchanged on
// failure.
func (p *OAuthProvider) SignIn(ctx context.Context) (*Identity, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, errors.NewAuthError(errors.CodeSignInBlocked,
			"The sign-in page could not be opened. Please check that local connections are allowed and try again.", err)
	}
	defer listener.Close()

	redirectURL := fmt.Sprintf("http://%s/callback", listener.Addr().String())
	cfg := *p.config
	cfg.RedirectURL = redirectURL

	state, err := randomState()
	if err != nil {
		return nil, errors.NewAuthError(errors.CodeAuthFailed, "Sign-in failed: could not generate request state.", err)
	}

	code, errCh := make(chan string, 1), make(chan error, 1)
	server := &http.Server{Handler: callbackHandler(state, code, errCh)}
	go server.Serve(listener)
	defer server.Close()

	authURL := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
	if err := p.openURL(authURL); err != nil {
		return nil, errors.NewAuthError(errors.CodeSignInBlocked,
			"The sign-in page could not be opened in your browser. Please allow it and try again.", err)
	}

	var authCode string
	select {
	case <-ctx.Done():
		return nil, errors.NewAuthError(errors.CodeAuthFailed, "Sign-in was cancelled before completing.", ctx.Err())
	case err := <-errCh:
		return nil, classifyProviderError(err)
	case authCode = <-code:
	}

	token, err := cfg.Exchange(ctx, authCode)
	if err != nil {
		return nil, classifyProviderError(err)
	}

	identity, err := fetchIdentity(ctx, &cfg, token)
	if err != nil {
		return nil, classifyProviderError(err)
	}

	p.mu.Lock()
	p.token = token
	p.current = identity
	p.mu.Unlock()

	if err := p.store.Save(token, identity); err != nil {
		logging.Debugf("failed to persist session: %v\n", err)
	}

	p.notify(identity)
	return identity, nil
}

// SignOut clears the current identity and cached credentials and notifies
// subscribers with nil.
func (p *OAuthProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	p.token = nil
	p.current = nil
	p.mu.Unlock()

	if err := p.store.Clear(); err != nil {
		return errors.NewAuthError(errors.CodeAuthFailed, "Sign-out failed: could not clear the cached session.", err)
	}

	p.notify(nil)
	return nil
}

// notify delivers an identity transition to all subscribers, synchronously.
func (p *OAuthProvider) notify(identity *Identity) {
	p.mu.Lock()
	fns := make([]func(*Identity), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	for _, fn := range fns {
		fn(identity)
	}
}

// callbackHandler serves the loopback redirect, validating state and pushing
// the authorization code or provider error to the flow.
func callbackHandler(state string, code chan<- string, errCh chan<- error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/callback" {
			http.NotFound(w, r)
			return
		}
		query := r.URL.Query()
		if errCode := query.Get("error"); errCode != "" {
			desc := query.Get("error_description")
			fmt.Fprintln(w, "Sign-in failed. You can close this window.")
			errCh <- fmt.Errorf("%s: %s", errCode, desc)
			return
		}
		if query.Get("state") != state {
			fmt.Fprintln(w, "Sign-in failed. You can close this window.")
			errCh <- fmt.Errorf("state mismatch in redirect")
			return
		}
		fmt.Fprintln(w, "Signed in. You can close this window and return to the terminal.")
		code <- query.Get("code")
	})
}

// userinfoResp is the raw JSON response from the userinfo endpoint.
type userinfoResp struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// fetchIdentity resolves the authenticated identity from the userinfo
// endpoint using the freshly obtained token.
func fetchIdentity(ctx context.Context, cfg *oauth2.Config, token *oauth2.Token) (*Identity, error) {
	client := cfg.Client(ctx, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userinfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("userinfo request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request: unexpected status %d", resp.StatusCode)
	}

	var ui userinfoResp
	if err := json.NewDecoder(resp.Body).Decode(&ui); err != nil {
		return nil, fmt.Errorf("decoding userinfo response: %w", err)
	}
	if ui.Sub == "" {
		return nil, fmt.Errorf("userinfo response missing subject")
	}

	return &Identity{
		OwnerID:     ui.Sub,
		Email:       ui.Email,
		DisplayName: ui.Name,
		PhotoURL:    ui.Picture,
	}, nil
}

// classifyProviderError maps provider failures onto the auth error taxonomy.
func classifyProviderError(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "redirect_uri_mismatch") ||
		strings.Contains(msg, "unauthorized_client") ||
		strings.Contains(msg, "access_denied") {
		return errors.NewAuthError(errors.CodeUnauthorizedDomain,
			"This client is not authorized with the identity provider. Please check the registered redirect settings.", err)
	}
	return errors.NewAuthError(errors.CodeAuthFailed, fmt.Sprintf("Sign-in failed: %s", msg), err)
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}

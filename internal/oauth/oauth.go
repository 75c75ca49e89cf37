package oauth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const (
	AuthURL   = "https://app.asana.com/-/oauth_authorize"
	TokenURL  = "https://app.asana.com/-/oauth_token"
	RevokeURL = "https://app.asana.com/-/oauth_revoke"

	defaultScope = "default"
)

type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string

	// Endpoint overrides; empty means the Asana endpoints.
	AuthURL   string
	TokenURL  string
	RevokeURL string

	HTTPClient *http.Client
}

// Flow runs the authorization code grant with PKCE against Asana.
type Flow struct {
	conf      *oauth2.Config
	revokeURL string
	http      *http.Client
}

func New(cfg Config) *Flow {
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{defaultScope}
	}
	httpc := cfg.HTTPClient
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Flow{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   orDefault(cfg.AuthURL, AuthURL),
				TokenURL:  orDefault(cfg.TokenURL, TokenURL),
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		revokeURL: orDefault(cfg.RevokeURL, RevokeURL),
		http:      httpc,
	}
}

// Authorization is one pending login. Keep State and Verifier until the
// code comes back.
type Authorization struct {
	URL      string
	State    string
	Verifier string
}

func (f *Flow) Begin() Authorization {
	state := uuid.NewString()
	verifier := oauth2.GenerateVerifier()
	return Authorization{
		URL:      f.conf.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier)),
		State:    state,
		Verifier: verifier,
	}
}

// Exchange trades an authorization code for tokens.
func (f *Flow) Exchange(ctx context.Context, code, verifier string) (*oauth2.Token, error) {
	if strings.TrimSpace(code) == "" {
		return nil, errors.New("authorization code is required")
	}
	tok, err := f.conf.Exchange(f.ctx(ctx), code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}
	return tok, nil
}

// Refresh gets a new access token for refreshToken.
func (f *Flow) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	if refreshToken == "" {
		return nil, errors.New("refresh token is required")
	}
	tok, err := f.conf.TokenSource(f.ctx(ctx), &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %w", err)
	}
	return tok, nil
}

// Revoke invalidates a refresh token and the access tokens issued from it.
func (f *Flow) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("token is required")
	}
	form := url.Values{
		"client_id":     {f.conf.ClientID},
		"client_secret": {f.conf.ClientSecret},
		"token":         {token},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.revokeURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("token revocation failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return nil
}

// ParseCode accepts either a bare authorization code or the full redirect
// URL. For a URL, the state parameter must match.
func ParseCode(input, state string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", errors.New("authorization code is required")
	}
	u, err := url.Parse(input)
	if err != nil || u.RawQuery == "" {
		return input, nil
	}

	q := u.Query()
	if e := q.Get("error"); e != "" {
		return "", fmt.Errorf("authorization denied: %s", e)
	}
	if got := q.Get("state"); got != state {
		return "", fmt.Errorf("state mismatch: got %q", got)
	}
	code := q.Get("code")
	if code == "" {
		return "", errors.New("redirect URL has no code parameter")
	}
	return code, nil
}

func (f *Flow) ctx(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, f.http)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

package asana

import (
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	DefaultBaseURL = "https://app.asana.com/api/1.0/"
	userAgent      = "asana-go/1.0 (+github.com/ArnautVasile/asana-go)"
	defaultTimeout = 30 * time.Second
)

// Config is consumed once by New.
type Config struct {
	// APIKey is the personal access token used with AuthBasic.
	APIKey   string
	AuthMode AuthMode
	// OAuthToken is required with AuthOAuth.
	OAuthToken string

	// BaseURL defaults to DefaultBaseURL.
	BaseURL string

	// HTTPClient is used as-is when set; Timeout is ignored in that case.
	HTTPClient *http.Client
	// Header holds default headers sent with every request. An Authorization
	// value already present here is never replaced.
	Header  http.Header
	Timeout time.Duration

	UserAgent string
	Logger    hclog.Logger
}

// Client is safe for concurrent use.
type Client struct {
	baseURL string
	header  http.Header
	http    *http.Client
	logger  hclog.Logger

	observers observers
}

func New(cfg Config) (*Client, error) {
	header, err := defaultHeader(cfg)
	if err != nil {
		return nil, err
	}

	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	httpc := cfg.HTTPClient
	if httpc == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		httpc = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Client{
		baseURL: base,
		header:  header,
		http:    httpc,
		logger:  logger.Named("asana"),
	}, nil
}

// BaseURL returns the normalized base URL, always ending in a slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func defaultHeader(cfg Config) (http.Header, error) {
	h := make(http.Header)
	for k, v := range cfg.Header {
		h[http.CanonicalHeaderKey(k)] = append([]string(nil), v...)
	}

	auth, err := authorization(cfg.AuthMode, cfg.APIKey, cfg.OAuthToken)
	if err != nil {
		return nil, err
	}
	if h.Get("Authorization") == "" {
		h.Set("Authorization", auth)
	}

	h.Set("Accept", "application/json")
	if cfg.UserAgent != "" {
		h.Set("User-Agent", cfg.UserAgent)
	} else if h.Get("User-Agent") == "" {
		h.Set("User-Agent", userAgent)
	}
	return h, nil
}

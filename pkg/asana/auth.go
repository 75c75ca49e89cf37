package asana

import (
	"encoding/base64"
	"strings"
)

type AuthMode string

const (
	AuthBasic AuthMode = "basic"
	AuthOAuth AuthMode = "oauth"
)

// ParseAuthMode is case-insensitive; an empty string means AuthBasic.
func ParseAuthMode(s string) (AuthMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(AuthBasic):
		return AuthBasic, nil
	case string(AuthOAuth), "bearer":
		return AuthOAuth, nil
	}
	return "", &ConfigError{Message: "Unsupported authentication type: " + s}
}

func authorization(mode AuthMode, apiKey, oauthToken string) (string, error) {
	switch mode {
	case "", AuthBasic:
		return "Basic " + base64.StdEncoding.EncodeToString([]byte(apiKey+":")), nil
	case AuthOAuth:
		if oauthToken == "" {
			return "", &ConfigError{Message: "OAuth token is required"}
		}
		return "Bearer " + oauthToken, nil
	}
	return "", &ConfigError{Message: "Unsupported authentication type: " + string(mode)}
}

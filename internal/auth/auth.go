// Package auth implements the OAuth2 installed-app flow and token
// persistence for the Sheets API.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gsheet "google.golang.org/api/sheets/v4"

	"github.com/coderustle/budgetcli/internal/config"
)

const (
	tokenFileName  = "token.json"
	secretFileName = "credentials.json"

	// redirectPort is registered in the OAuth client's authorized
	// redirect URIs.
	redirectPort = "60880"

	authorizeTimeout = 5 * time.Minute
)

// ErrNotAuthenticated is reported when no usable token is available;
// the caller aborts the action and points the user at `budgetcli auth`.
var ErrNotAuthenticated = errors.New("not authenticated, run 'budgetcli auth' first")

// TokenPath returns the path of the stored user token.
func TokenPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, tokenFileName), nil
}

// SecretPath returns the path the client secret file is copied to.
func SecretPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, secretFileName), nil
}

// HTTPClient returns an HTTP client carrying the bearer token,
// refreshing it on expiry. ok is false when the user has not completed
// the authorization flow.
func HTTPClient(ctx context.Context) (*http.Client, bool) {
	cfg, err := oauthConfig()
	if err != nil {
		return nil, false
	}
	tok, ok := loadToken()
	if !ok {
		return nil, false
	}
	return oauth2.NewClient(ctx, cfg.TokenSource(ctx, tok)), true
}

// Authorize runs the local-redirect authorization flow and persists the
// obtained token in the config dir.
func Authorize(ctx context.Context) error {
	cfg, err := oauthConfig()
	if err != nil {
		return err
	}
	cfg.RedirectURL = "http://localhost:" + redirectPort + "/"

	codeCh := make(chan string, 1)
	mux := http.NewServeMux()
	srv := &http.Server{Addr: ":" + redirectPort, Handler: mux}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if errStr := r.URL.Query().Get("error"); errStr != "" {
			http.Error(w, "authorization error: "+errStr, http.StatusBadRequest)
			return
		}
		fmt.Fprintln(w, "You may close this window and return to the terminal.")
		codeCh <- r.URL.Query().Get("code")
	})
	go func() { _ = srv.ListenAndServe() }()
	defer srv.Close()

	url := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Open this URL to authorize:\n%s\n", url)

	select {
	case code := <-codeCh:
		tok, err := cfg.Exchange(ctx, code)
		if err != nil {
			return fmt.Errorf("token exchange: %w", err)
		}
		return saveToken(tok)
	case <-time.After(authorizeTimeout):
		return errors.New("authorization timed out")
	case <-ctx.Done():
		return ctx.Err()
	}
}

func oauthConfig() (*oauth2.Config, error) {
	path, err := SecretPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: missing client secret", ErrNotAuthenticated)
	}
	cfg, err := google.ConfigFromJSON(b, gsheet.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("oauth config: %w", err)
	}
	return cfg, nil
}

func loadToken() (*oauth2.Token, bool) {
	path, err := TokenPath()
	if err != nil {
		return nil, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, false
	}
	return &tok, true
}

func saveToken(tok *oauth2.Token) error {
	path, err := TokenPath()
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open token file: %w", err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

const (
	// Installation tokens are refreshed this long before they expire so a
	// token handed out is never on the verge of dying mid-request.
	tokenRefreshMargin = 60 * time.Second

	// App JWT lifetime, the maximum GitHub accepts.
	appJWTLifetime = 10 * time.Minute

	// Issued-at is backdated to tolerate clock drift between us and GitHub.
	appJWTBackdate = 60 * time.Second
)

// Credentials holds the GitHub App identity used to authenticate every call.
type Credentials struct {
	AppID          int64
	InstallationID int64
	PrivateKey     []byte
	WebhookSecret  string
}

// TokenManager exchanges a GitHub App JWT for installation access tokens and
// caches them until shortly before expiry. It implements oauth2.TokenSource.
type TokenManager struct {
	creds      Credentials
	baseURL    string
	httpClient *http.Client
	now        func() time.Time

	mu    sync.Mutex
	token *oauth2.Token
}

var _ oauth2.TokenSource = (*TokenManager)(nil)

// NewTokenManager creates a token manager for the given app credentials.
// baseURL is the API root, e.g. https://api.github.com.
func NewTokenManager(creds Credentials, baseURL string) *TokenManager {
	return &TokenManager{
		creds:      creds,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		now:        time.Now,
	}
}

// Token returns a valid installation access token, exchanging a fresh one
// when the cached token is missing or within the refresh margin of expiry.
func (m *TokenManager) Token() (*oauth2.Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != nil && m.now().Before(m.token.Expiry.Add(-tokenRefreshMargin)) {
		return m.token, nil
	}

	token, err := m.exchange(context.Background())
	if err != nil {
		return nil, err
	}
	m.token = token
	return m.token, nil
}

func (m *TokenManager) exchange(ctx context.Context) (*oauth2.Token, error) {
	appJWT, err := m.signAppJWT()
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/app/installations/%d/access_tokens", m.baseURL, m.creds.InstallationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(nil))
	if err != nil {
		return nil, &AuthError{Reason: "failed to build token request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+appJWT)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set(apiVersionHeader, apiVersion)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, &AuthError{Reason: "token exchange request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &AuthError{Reason: "failed to read token response", Err: err}
	}

	if resp.StatusCode != http.StatusCreated {
		return nil, &AuthError{Reason: fmt.Sprintf("token exchange returned status %d: %s", resp.StatusCode, string(body))}
	}

	var payload struct {
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &AuthError{Reason: "malformed token response", Err: err}
	}
	if payload.Token == "" {
		return nil, &AuthError{Reason: "token response missing token"}
	}

	return &oauth2.Token{
		AccessToken: payload.Token,
		TokenType:   "token",
		Expiry:      payload.ExpiresAt,
	}, nil
}

// signAppJWT builds the short-lived RS256 JWT that identifies the app itself.
func (m *TokenManager) signAppJWT() (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(m.creds.PrivateKey)
	if err != nil {
		return "", &AuthError{Reason: "invalid private key", Err: err}
	}

	now := m.now()
	claims := jwt.MapClaims{
		"iat": now.Add(-appJWTBackdate).Unix(),
		"exp": now.Add(appJWTLifetime).Unix(),
		"iss": strconv.FormatInt(m.creds.AppID, 10),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", &AuthError{Reason: "failed to sign app JWT", Err: err}
	}
	return signed, nil
}

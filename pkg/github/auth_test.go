package github

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testPrivateKeyPEM(t *testing.T) []byte {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
}

func TestTokenManager(t *testing.T) {
	t.Run("caches token until refresh margin", func(t *testing.T) {
		exchanges := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			exchanges++
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			if !strings.HasSuffix(r.URL.Path, "/app/installations/42/access_tokens") {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
				t.Errorf("missing bearer JWT")
			}
			w.WriteHeader(http.StatusCreated)
			fmt.Fprintf(w, `{"token":"ghs_test","expires_at":%q}`, time.Now().Add(time.Hour).Format(time.RFC3339))
		}))
		defer srv.Close()

		m := NewTokenManager(Credentials{AppID: 7, InstallationID: 42, PrivateKey: testPrivateKeyPEM(t)}, srv.URL)
		m.httpClient = srv.Client()

		tok1, err := m.Token()
		if err != nil {
			t.Fatalf("first Token: %v", err)
		}
		tok2, err := m.Token()
		if err != nil {
			t.Fatalf("second Token: %v", err)
		}

		if tok1.AccessToken != "ghs_test" || tok2.AccessToken != "ghs_test" {
			t.Errorf("unexpected tokens: %q, %q", tok1.AccessToken, tok2.AccessToken)
		}
		if exchanges != 1 {
			t.Errorf("expected 1 exchange, got %d", exchanges)
		}
	})

	t.Run("refreshes inside the margin", func(t *testing.T) {
		exchanges := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			exchanges++
			w.WriteHeader(http.StatusCreated)
			fmt.Fprintf(w, `{"token":"ghs_%d","expires_at":%q}`, exchanges, time.Now().Add(30*time.Second).Format(time.RFC3339))
		}))
		defer srv.Close()

		m := NewTokenManager(Credentials{AppID: 7, InstallationID: 42, PrivateKey: testPrivateKeyPEM(t)}, srv.URL)
		m.httpClient = srv.Client()

		if _, err := m.Token(); err != nil {
			t.Fatalf("first Token: %v", err)
		}
		// Expiry is only 30s away, inside the 60s margin.
		tok, err := m.Token()
		if err != nil {
			t.Fatalf("second Token: %v", err)
		}
		if exchanges != 2 {
			t.Errorf("expected 2 exchanges, got %d", exchanges)
		}
		if tok.AccessToken != "ghs_2" {
			t.Errorf("expected refreshed token, got %q", tok.AccessToken)
		}
	})

	t.Run("invalid private key is an auth error", func(t *testing.T) {
		m := NewTokenManager(Credentials{AppID: 7, InstallationID: 42, PrivateKey: []byte("not a key")}, "http://unused")

		_, err := m.Token()
		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
	})

	t.Run("rejected exchange is an auth error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"message":"bad credentials"}`)
		}))
		defer srv.Close()

		m := NewTokenManager(Credentials{AppID: 7, InstallationID: 42, PrivateKey: testPrivateKeyPEM(t)}, srv.URL)
		m.httpClient = srv.Client()

		_, err := m.Token()
		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
	})
}

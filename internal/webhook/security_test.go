package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http/httptest"
	"testing"
)

func signPayload(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestValidateSignature(t *testing.T) {
	secret := "test-webhook-secret"
	payload := []byte(`{"action":"opened"}`)

	v := NewSecurityValidator(SecurityConfig{Secret: secret, RateLimitPerMin: 60})

	t.Run("valid signature", func(t *testing.T) {
		if err := v.ValidateSignature(payload, signPayload(secret, payload)); err != nil {
			t.Errorf("expected valid signature, got %v", err)
		}
	})

	t.Run("tampered payload", func(t *testing.T) {
		sig := signPayload(secret, payload)
		tampered := []byte(`{"action":"closed"}`)
		if err := v.ValidateSignature(tampered, sig); err == nil {
			t.Error("expected error for tampered payload")
		}
	})

	t.Run("flipped signature byte", func(t *testing.T) {
		sig := []byte(signPayload(secret, payload))
		if sig[len(sig)-1] == 'a' {
			sig[len(sig)-1] = 'b'
		} else {
			sig[len(sig)-1] = 'a'
		}
		if err := v.ValidateSignature(payload, string(sig)); err == nil {
			t.Error("expected error for altered signature")
		}
	})

	t.Run("missing sha256 prefix", func(t *testing.T) {
		if err := v.ValidateSignature(payload, "deadbeef"); err == nil {
			t.Error("expected error for signature without prefix")
		}
	})

	t.Run("empty signature", func(t *testing.T) {
		if err := v.ValidateSignature(payload, ""); err == nil {
			t.Error("expected error for empty signature")
		}
	})

	t.Run("invalid hex", func(t *testing.T) {
		if err := v.ValidateSignature(payload, "sha256=not-hex-at-all"); err == nil {
			t.Error("expected error for non-hex signature")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		sig := signPayload("other-secret", payload)
		if err := v.ValidateSignature(payload, sig); err == nil {
			t.Error("expected error for signature from wrong secret")
		}
	})

	t.Run("unconfigured secret", func(t *testing.T) {
		empty := NewSecurityValidator(SecurityConfig{RateLimitPerMin: 60})
		if err := empty.ValidateSignature(payload, signPayload("", payload)); err == nil {
			t.Error("expected error when secret is not configured")
		}
	})
}

func TestValidateIPAddress(t *testing.T) {
	tests := []struct {
		name       string
		allowedIPs []string
		remoteAddr string
		forwarded  string
		wantErr    bool
	}{
		{
			name:       "no restriction",
			remoteAddr: "203.0.113.7:443",
		},
		{
			name:       "exact match",
			allowedIPs: []string{"140.82.112.5"},
			remoteAddr: "140.82.112.5:52314",
		},
		{
			name:       "cidr match",
			allowedIPs: []string{"140.82.112.0/20"},
			remoteAddr: "140.82.115.33:443",
		},
		{
			name:       "forwarded-for takes precedence",
			allowedIPs: []string{"140.82.112.5"},
			remoteAddr: "10.0.0.1:8080",
			forwarded:  "140.82.112.5, 10.0.0.1",
		},
		{
			name:       "not whitelisted",
			allowedIPs: []string{"140.82.112.0/20"},
			remoteAddr: "203.0.113.7:443",
			wantErr:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewSecurityValidator(SecurityConfig{AllowedIPs: tc.allowedIPs, RateLimitPerMin: 60})

			req := httptest.NewRequest("POST", "/webhook/github", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}

			err := v.ValidateIPAddress(req)
			if tc.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("expected nil, got %v", err)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	rl := newRateLimiter(60)

	// Burst allowance is requestsPerMin/10.
	for i := 0; i < 6; i++ {
		if err := rl.Allow("github"); err != nil {
			t.Fatalf("request %d within burst rejected: %v", i+1, err)
		}
	}
	if err := rl.Allow("github"); err == nil {
		t.Error("expected rate limit error after burst exhausted")
	}

	// Independent keys have independent budgets.
	if err := rl.Allow("other"); err != nil {
		t.Errorf("unrelated key rejected: %v", err)
	}
}

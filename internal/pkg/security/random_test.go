package security_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/inflowkit/internal/pkg/security"
)

func TestGenerateRandomBytesURLEncoded(t *testing.T) {
	t.Parallel()

	const length = 32
	a, err := security.GenerateRandomBytesURLEncoded(length)
	if err != nil {
		t.Fatalf("security.GenerateRandomBytesURLEncoded() error = %v", err)
	}

	b, err := security.GenerateRandomBytesURLEncoded(length)
	if err != nil {
		t.Fatalf("security.GenerateRandomBytesURLEncoded() error = %v", err)
	}

	if a == b {
		t.Error("two generated values are identical")
	}
}

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
		err    error
	}{
		{"Valid bearer token", "Bearer abc123", "abc123", nil},
		{"Missing header", "", "", security.ErrMissingBearer},
		{"Wrong scheme", "Basic abc123", "", security.ErrMissingBearer},
		{"Empty token", "Bearer ", "", security.ErrMissingBearer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := security.ExtractBearerToken(req)
			if !errors.Is(err, tt.err) {
				t.Fatalf("security.ExtractBearerToken() error = %v, want: %v", err, tt.err)
			}

			if got, want := token, tt.want; got != want {
				t.Errorf("token = %q, want: %q", got, want)
			}
		})
	}
}

package jwt_test

import (
	"testing"
	"time"

	"github.com/ferdiebergado/inflowkit/internal/config"
	"github.com/ferdiebergado/inflowkit/internal/platform/jwt"
)

func newTestSigner(key string) jwt.Signer {
	cfg := &config.JWT{JTILength: 16, Issuer: "inflowkit"}
	return jwt.NewGolangJWTSigner(cfg, key)
}

func TestGolangJWTSigner_SignAndVerify(t *testing.T) {
	t.Parallel()

	signer := newTestSigner("test-key")

	token, err := signer.Sign("user-1", []string{"inflowkit"}, time.Minute)
	if err != nil {
		t.Fatalf("signer.Sign() error = %v", err)
	}

	claims, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("signer.Verify() error = %v", err)
	}

	if got, want := claims.UserID, "user-1"; got != want {
		t.Errorf("claims.UserID = %q, want: %q", got, want)
	}
}

func TestGolangJWTSigner_VerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	signer := newTestSigner("test-key")

	token, err := signer.Sign("user-1", []string{"inflowkit"}, -time.Minute)
	if err != nil {
		t.Fatalf("signer.Sign() error = %v", err)
	}

	if _, err := signer.Verify(token); err == nil {
		t.Error("signer.Verify() error = nil, want an error for an expired token")
	}
}

func TestGolangJWTSigner_VerifyRejectsWrongKey(t *testing.T) {
	t.Parallel()

	signer := newTestSigner("test-key")
	other := newTestSigner("other-key")

	token, err := signer.Sign("user-1", []string{"inflowkit"}, time.Minute)
	if err != nil {
		t.Fatalf("signer.Sign() error = %v", err)
	}

	if _, err := other.Verify(token); err == nil {
		t.Error("other.Verify() error = nil, want an error for a token signed with a different key")
	}
}

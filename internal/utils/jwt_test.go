package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "account-service"
	userID := int64(123)
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "account-service"
	userID := int64(456)
	key := "secret-key"

	generated, err := GenerateJWTToken(issuer, userID, 5*time.Minute, key)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.UserID != userID {
		t.Errorf("expected UserID %d, got %d", userID, parsed.UserID)
	}
	if parsed.Subject != "456" {
		t.Errorf("expected subject claim '456', got %q", parsed.Subject)
	}
}

// Parsed and generated tokens carry their registered claims on the wrapper,
// so the subject accessor agrees with the cached UserID on both sides of a
// round trip.
func TestJWTToken_SubjectAccessorRoundTrip(t *testing.T) {
	issuer := "account-service"
	key := "secret-key"

	generated, err := GenerateJWTToken(issuer, 42, time.Minute, key)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if id, err := generated.GetUserID(); err != nil || id != 42 {
		t.Errorf("generated token subject accessor: id=%d err=%v", id, err)
	}

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if id, err := parsed.GetUserID(); err != nil || id != 42 {
		t.Errorf("parsed token subject accessor: id=%d err=%v", id, err)
	}
}

// A token just short of its TTL still validates; one past its TTL is
// rejected with ErrTokenExpired.
func TestValidateAndParseJWTToken_TTLBoundary(t *testing.T) {
	issuer := "account-service"
	key := "secret-key"

	fresh, err := GenerateJWTToken(issuer, 1, time.Minute, key)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := ValidateAndParseJWTToken(fresh.SignedString, key, issuer); err != nil {
		t.Errorf("token within TTL rejected: %v", err)
	}

	expired, err := GenerateJWTToken(issuer, 1, -time.Minute, key)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	_, err = ValidateAndParseJWTToken(expired.SignedString, key, issuer)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issuer := "account-service"

	generated, err := GenerateJWTToken(issuer, 7, time.Minute, "right-key")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	_, err = ValidateAndParseJWTToken(generated.SignedString, "wrong-key", issuer)
	if !errors.Is(err, ErrTokenSignatureInvalid) {
		t.Errorf("expected ErrTokenSignatureInvalid, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, err := GenerateJWTToken("issuer-a", 7, time.Minute, "key")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	_, err = ValidateAndParseJWTToken(generated.SignedString, "key", "issuer-b")
	if !errors.Is(err, ErrTokenMalformed) {
		t.Errorf("expected ErrTokenMalformed, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "issuer")
	if !errors.Is(err, ErrTokenMalformed) {
		t.Errorf("expected ErrTokenMalformed, got: %v", err)
	}
}

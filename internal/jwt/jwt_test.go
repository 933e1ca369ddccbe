package jwt

import (
	"testing"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	secret := []byte("test-secret-32-bytes-long-12345!")
	params := JWTParams{Role: "admin", UserID: "42"}

	raw, err := GenerateJWT(params, secret, "1")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	token, err := ValidateJWT(raw, "1", secret)
	if err != nil {
		t.Fatalf("ValidateJWT() error = %v", err)
	}
	if !token.Valid {
		t.Error("token.Valid = false, want true")
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		t.Fatalf("GetSubject() error = %v", err)
	}
	if sub != "42" {
		t.Errorf("subject = %q, want %q", sub, "42")
	}
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	raw, err := GenerateJWT(JWTParams{Role: "admin", UserID: "42"},
		[]byte("test-secret-32-bytes-long-12345!"), "1")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	if _, err := ValidateJWT(raw, "1", []byte("a-different-secret-entirely-1234")); err == nil {
		t.Error("ValidateJWT() with wrong secret succeeded, want error")
	}
}

func TestValidateJWT_WrongKeyVersion(t *testing.T) {
	secret := []byte("test-secret-32-bytes-long-12345!")
	raw, err := GenerateJWT(JWTParams{Role: "admin", UserID: "42"}, secret, "1")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	if _, err := ValidateJWT(raw, "2", secret); err == nil {
		t.Error("ValidateJWT() with mismatched kid succeeded, want error")
	}
}

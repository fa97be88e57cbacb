package util

import "testing"

func TestHashPasswordDeterministic(t *testing.T) {
	SetJWTSecret("test-secret-123")

	first := HashPassword("admin123")
	second := HashPassword("admin123")
	if first == "" {
		t.Fatal("digest is empty")
	}
	if first != second {
		t.Fatalf("same input hashed differently: %s vs %s", first, second)
	}
	if first == "admin123" {
		t.Fatal("digest equals plaintext")
	}
}

func TestHashPasswordDependsOnSecret(t *testing.T) {
	SetJWTSecret("secret-a")
	a := HashPassword("admin123")
	SetJWTSecret("secret-b")
	b := HashPassword("admin123")
	if a == b {
		t.Fatal("digest did not change with the secret")
	}
}

func TestVerifyPassword(t *testing.T) {
	SetJWTSecret("test-secret-123")
	digest := HashPassword("patient123")

	if !VerifyPassword("patient123", digest) {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword("patient124", digest) {
		t.Fatal("wrong password accepted")
	}
	if VerifyPassword("", digest) {
		t.Fatal("empty password accepted")
	}
}

package security

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("hash does not look like bcrypt output: %q", hash)
	}
	if !CheckPassword(hash, "s3cret") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestNewToken(t *testing.T) {
	a, err := NewToken(TokenBytes)
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}
	b, err := NewToken(TokenBytes)
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}
	if a == b {
		t.Error("two tokens should not collide")
	}
	// 32 bytes → 43 unpadded base64 characters.
	if len(a) != 43 {
		t.Errorf("token length = %d, want 43", len(a))
	}
	if strings.ContainsAny(a, "+/=") {
		t.Errorf("token %q is not URL-safe", a)
	}
}

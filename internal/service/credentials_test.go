package service

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashIsSaltedAndVerifies(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, err := h.Hash("redpill")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	b, err := h.Hash("redpill")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct salted hashes, got identical %q", a)
	}
	if a == "redpill" || strings.Contains(a, "redpill") {
		t.Fatalf("hash leaks the password: %q", a)
	}
	if !h.Verify("redpill", a) || !h.Verify("redpill", b) {
		t.Fatalf("both hashes must verify")
	}
	if h.Verify("bluepill", a) {
		t.Fatalf("wrong password verified")
	}
}

func TestBcryptHasher_VerifyMalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	for _, bad := range []string{"", "not-a-hash", "$2a$10$short", "$2a$99$" + strings.Repeat("x", 53)} {
		if h.Verify("anything", bad) {
			t.Errorf("malformed hash %q verified", bad)
		}
	}
}

func TestBcryptHasher_RejectsUnusablePasswords(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	for _, pw := range []string{"", "   ", strings.Repeat("a", 73)} {
		if _, err := h.Hash(pw); !errors.Is(err, ErrInvalidPassword) {
			t.Errorf("Hash(%d bytes) err = %v, want ErrInvalidPassword", len(pw), err)
		}
	}
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	if got := NewBcryptHasher(0).cost; got != bcrypt.DefaultCost {
		t.Fatalf("cost 0: got %d, want %d", got, bcrypt.DefaultCost)
	}
	if got := NewBcryptHasher(99).cost; got != bcrypt.DefaultCost {
		t.Fatalf("cost 99: got %d, want %d", got, bcrypt.DefaultCost)
	}
	if got := NewBcryptHasher(5).cost; got != 5 {
		t.Fatalf("cost 5: got %d", got)
	}
}

package crypto

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHash_ProducesVerifiableHash(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hash == "" {
		t.Fatalf("expected non-empty hash")
	}
	if hash == "secret1" {
		t.Fatalf("hash must not equal the plaintext password")
	}

	if !hasher.Verify("secret1", hash) {
		t.Fatalf("expected Verify to accept the original password")
	}
}

func TestVerify_RejectsWrongPassword(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if hasher.Verify("secret2", hash) {
		t.Fatalf("expected Verify to reject a different password")
	}
	if hasher.Verify("", hash) {
		t.Fatalf("expected Verify to reject an empty password")
	}
}

func TestHash_SaltedHashesDiffer(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	h1, err := hasher.Hash("same password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, err := hasher.Hash("same password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("expected two hashes of the same password to differ")
	}
	if !hasher.Verify("same password", h1) || !hasher.Verify("same password", h2) {
		t.Fatalf("expected both salted hashes to verify")
	}
}

func TestVerify_MalformedHashIsMismatch(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	if hasher.Verify("secret1", "not-a-bcrypt-hash") {
		t.Fatalf("expected Verify to reject a malformed stored hash")
	}
	if hasher.Verify("secret1", "") {
		t.Fatalf("expected Verify to reject an empty stored hash")
	}
}

func TestHash_LongPasswordsAreTruncatedConsistently(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	long := strings.Repeat("a", 100)
	hash, err := hasher.Hash(long)
	if err != nil {
		t.Fatalf("Hash error for long password: %v", err)
	}

	if !hasher.Verify(long, hash) {
		t.Fatalf("expected the long password to verify against its own hash")
	}
	// Bytes beyond the bcrypt limit do not participate in the hash.
	if !hasher.Verify(strings.Repeat("a", 72), hash) {
		t.Fatalf("expected the 72-byte prefix to verify")
	}
	if hasher.Verify(strings.Repeat("a", 71), hash) {
		t.Fatalf("expected a shorter prefix to be rejected")
	}
}

func TestNewPasswordHasher_ZeroCostUsesDefault(t *testing.T) {
	hasher := NewPasswordHasher(0)

	hash, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("Cost error: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("cost = %d, want bcrypt.DefaultCost (%d)", cost, bcrypt.DefaultCost)
	}
}

func TestNewPasswordHasher_ExplicitCostIsEmbedded(t *testing.T) {
	hasher := NewPasswordHasher(6)

	hash, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("Cost error: %v", err)
	}
	if cost != 6 {
		t.Fatalf("cost = %d, want 6", cost)
	}
}

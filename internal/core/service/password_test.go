package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatalf("expected password to be hashed")
	}
	if !hasher.Verify("s3cret-password", hash) {
		t.Fatalf("correct password did not verify")
	}
	if hasher.Verify("wrong-password", hash) {
		t.Fatalf("wrong password verified")
	}
}

func TestPasswordHasher_DistinctSalts(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	h1, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	h2, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password are identical, salt missing")
	}
	if !hasher.Verify("same-password", h1) || !hasher.Verify("same-password", h2) {
		t.Fatalf("hashes do not verify against the original password")
	}
}

func TestPasswordHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewPasswordHasher(99)

	hash, err := hasher.Hash("pw")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("Cost returned error: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}

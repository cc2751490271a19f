package utils

import "testing"

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("p")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "p" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "p") {
		t.Error("hash does not verify against its plaintext")
	}
	if CheckPassword(hash, "q") {
		t.Error("hash verified against the wrong plaintext")
	}

	again, err := HashPassword("p")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if again == hash {
		t.Error("expected a fresh salt per hash")
	}
}

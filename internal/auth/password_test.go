package auth

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	digest, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if digest == "pw123" {
		t.Fatal("digest equals plaintext")
	}
	if !CheckPassword("pw123", digest) {
		t.Error("CheckPassword rejected the original password")
	}
	if CheckPassword("wrongpw", digest) {
		t.Error("CheckPassword accepted a wrong password")
	}
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	first, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password are identical; salt is not fresh")
	}
	if !CheckPassword("same-input", first) || !CheckPassword("same-input", second) {
		t.Error("both digests should verify against the original password")
	}
}

package util

import "testing"

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("12345"); err == nil {
		t.Error("five characters should fail the policy")
	}
	if err := ValidatePassword("123456"); err != nil {
		t.Errorf("six characters should pass: %v", err)
	}
}

func TestHashAndCompare(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash equals plaintext")
	}
	if !ComparePassword(hash, "secret123") {
		t.Error("correct password rejected")
	}
	if ComparePassword(hash, "secret124") {
		t.Error("wrong password accepted")
	}
	if ComparePassword("not-a-hash", "secret123") {
		t.Error("garbage hash accepted")
	}
}

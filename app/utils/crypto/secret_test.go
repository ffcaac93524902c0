package crypto

import "testing"

func TestSha256Hex(t *testing.T) {
	got := Sha256Hex("plume")
	if len(got) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(got))
	}
	if got != Sha256Hex("plume") {
		t.Fatalf("digest is not deterministic")
	}
	if got == Sha256Hex("plume2") {
		t.Fatalf("different inputs produced the same digest")
	}
}

func TestUploadSignatureIsDoubleDigest(t *testing.T) {
	secret := "site-secret"
	if UploadSignature(secret) != Sha256Hex(Sha256Hex(secret)) {
		t.Fatalf("upload signature is not the double digest of the secret")
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	secret := "settings-secret"
	plaintext := "smtp-password"

	encrypted, err := EncryptString(secret, plaintext)
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if encrypted == plaintext {
		t.Fatalf("ciphertext equals plaintext")
	}

	decrypted, err := DecryptString(secret, encrypted)
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if decrypted != plaintext {
		t.Fatalf("expected %q, got %q", plaintext, decrypted)
	}
}

func TestDecryptWithWrongSecretFails(t *testing.T) {
	encrypted, err := EncryptString("right", "value")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if _, err := DecryptString("wrong", encrypted); err == nil {
		t.Fatalf("expected decryption with the wrong secret to fail")
	}
}

func TestEncryptRejectsEmptySecret(t *testing.T) {
	if _, err := EncryptString("", "value"); err != ErrSecretEmpty {
		t.Fatalf("expected ErrSecretEmpty, got %v", err)
	}
}

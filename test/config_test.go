package test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/maxviazov/portal-tools/internal/config"
)

func writeTempKeyfile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "keypairs.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp keyfile: %v", err)
	}
	return path
}

func TestLoadKeyfile_ValidEntry(t *testing.T) {
	keyfile := `{
  "default": {
    "key": "ABC123",
    "secret": "shh",
    "server": "https://www.encodeproject.org"
  },
  "test": {
    "server": "https://test.encodedcc.org"
  }
}`
	path := writeTempKeyfile(t, keyfile)

	creds, err := config.LoadKeyfile(path, "default")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.Key != "ABC123" || creds.Secret != "shh" || creds.Server != "https://www.encodeproject.org" {
		t.Fatalf("entry not loaded as expected: key=%q secret=%q server=%q", creds.Key, creds.Secret, creds.Server)
	}
	if !creds.Authenticated() {
		t.Fatalf("expected entry with key pair to report authenticated")
	}
}

func TestLoadKeyfile_AnonymousEntry(t *testing.T) {
	keyfile := `{"test": {"server": "https://test.encodedcc.org"}}`
	path := writeTempKeyfile(t, keyfile)

	creds, err := config.LoadKeyfile(path, "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.Authenticated() {
		t.Fatalf("entry without key pair must not report authenticated")
	}
}

func TestLoadKeyfile_MissingTargetFails(t *testing.T) {
	keyfile := `{"default": {"server": "https://www.encodeproject.org"}}`
	path := writeTempKeyfile(t, keyfile)

	_, err := config.LoadKeyfile(path, "production")
	if err == nil {
		t.Fatalf("expected error for missing target, got nil")
	}
	if !errors.Is(err, config.ErrUnknownTarget) {
		t.Fatalf("expected ErrUnknownTarget, got %v", err)
	}
}

func TestLoadKeyfile_MalformedJSONFails(t *testing.T) {
	path := writeTempKeyfile(t, `{"default": {`)

	_, err := config.LoadKeyfile(path, "default")
	if err == nil {
		t.Fatalf("expected error for malformed keyfile, got nil")
	}
}

func TestLoadKeyfile_MissingFileFails(t *testing.T) {
	_, err := config.LoadKeyfile(filepath.Join(t.TempDir(), "nope.json"), "default")
	if err == nil {
		t.Fatalf("expected error for missing keyfile, got nil")
	}
}

func TestLoadKeyfile_EntryWithoutServerFails(t *testing.T) {
	keyfile := `{"default": {"key": "ABC123", "secret": "shh"}}`
	path := writeTempKeyfile(t, keyfile)

	_, err := config.LoadKeyfile(path, "default")
	if err == nil {
		t.Fatalf("expected validation error for entry without server, got nil")
	}
}

func TestLoadKeyfile_KeyWithoutSecretFails(t *testing.T) {
	keyfile := `{"default": {"key": "ABC123", "server": "https://www.encodeproject.org"}}`
	path := writeTempKeyfile(t, keyfile)

	_, err := config.LoadKeyfile(path, "default")
	if err == nil {
		t.Fatalf("expected validation error for key without secret, got nil")
	}
}

package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeJellyfinConfig(t *testing.T, baseDir, googleBooksURL, jellyfinURL string) string {
	t.Helper()
	path := filepath.Join(baseDir, "config.toml")
	content := fmt.Sprintf(`[paths]
data_dir = %q
log_dir = %q

[googlebooks]
base_url = %q

[jellyfin]
enabled = true
url = %q
api_key = "token"

[match_cache]
enabled = false
`,
		filepath.Join(baseDir, "data"),
		filepath.Join(baseDir, "logs"),
		googleBooksURL,
		jellyfinURL,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestApplyCommand(t *testing.T) {
	books := newGoogleBooksStub(t)

	var updatedPaths []string
	jellyfinServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Emby-Token") != "token" {
			t.Fatalf("missing token on %s", r.URL.Path)
		}
		updatedPaths = append(updatedPaths, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(jellyfinServer.Close)

	configPath := writeJellyfinConfig(t, t.TempDir(), books.URL, jellyfinServer.URL)

	out, _, err := runCLI(t, []string{"apply", "item42", "Dune (1965)"}, configPath)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	requireContains(t, out, "Updated item item42")

	wantPaths := []string{"/Items/item42", "/Library/Refresh"}
	if len(updatedPaths) != len(wantPaths) {
		t.Fatalf("jellyfin calls = %v, want %v", updatedPaths, wantPaths)
	}
	for i, want := range wantPaths {
		if updatedPaths[i] != want {
			t.Fatalf("jellyfin call %d = %q, want %q", i, updatedPaths[i], want)
		}
	}
}

func TestApplyCommandRequiresJellyfin(t *testing.T) {
	env := setupCLITestEnv(t, "")
	if _, _, err := runCLI(t, []string{"apply", "item42", "Dune"}, env.configPath); err == nil {
		t.Fatal("expected error when jellyfin is disabled")
	}
}

func TestApplyCommandNoRefresh(t *testing.T) {
	books := newGoogleBooksStub(t)

	var updatedPaths []string
	jellyfinServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		updatedPaths = append(updatedPaths, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(jellyfinServer.Close)

	configPath := writeJellyfinConfig(t, t.TempDir(), books.URL, jellyfinServer.URL)

	if _, _, err := runCLI(t, []string{"apply", "item42", "Dune (1965)", "--no-refresh"}, configPath); err != nil {
		t.Fatalf("apply --no-refresh: %v", err)
	}
	if len(updatedPaths) != 1 || updatedPaths[0] != "/Items/item42" {
		t.Fatalf("jellyfin calls = %v, want only the item update", updatedPaths)
	}
}

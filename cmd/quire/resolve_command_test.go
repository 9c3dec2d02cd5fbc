package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newGoogleBooksStub(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/volumes":
			if strings.Contains(r.URL.Query().Get("q"), "Dune") {
				_, _ = w.Write([]byte(`{"totalItems":1,"items":[{"id":"abc","volumeInfo":{"title":"Dune","publishedDate":"1965"}}]}`))
				return
			}
			_, _ = w.Write([]byte(`{"totalItems":0}`))
		case r.URL.Path == "/volumes/abc":
			_, _ = w.Write([]byte(`{"id":"abc","volumeInfo":{"title":"Dune","description":"Desert planet politics.","publisher":"Chilton Books","publishedDate":"1965-08-01","averageRating":4.0}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestResolveCommand(t *testing.T) {
	server := newGoogleBooksStub(t)
	env := setupCLITestEnv(t, server.URL)

	out, _, err := runCLI(t, []string{"resolve", "Dune (1965)"}, env.configPath)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	requireContains(t, out, "Dune")
	requireContains(t, out, "abc")
	requireContains(t, out, "Desert planet politics.")

	// The resolution was recorded in the library catalog.
	out, _, err = runCLI(t, []string{"library", "show", "abc"}, env.configPath)
	if err != nil {
		t.Fatalf("library show: %v", err)
	}
	requireContains(t, out, `"abc"`)
}

func TestResolveCommandJSON(t *testing.T) {
	server := newGoogleBooksStub(t)
	env := setupCLITestEnv(t, server.URL)

	out, _, err := runCLI(t, []string{"resolve", "Dune (1965)", "--json", "--no-save"}, env.configPath)
	if err != nil {
		t.Fatalf("resolve --json: %v", err)
	}
	requireContains(t, out, `"external_id": "abc"`)
	requireContains(t, out, `"production_year": 1965`)
}

func TestResolveCommandNoMatch(t *testing.T) {
	server := newGoogleBooksStub(t)
	env := setupCLITestEnv(t, server.URL)

	out, _, err := runCLI(t, []string{"resolve", "Unknown Book", "--no-save"}, env.configPath)
	if err != nil {
		t.Fatalf("resolve miss should not fail the command: %v", err)
	}
	requireContains(t, out, "No match found")
}

func TestResolveCommandRequiresTitleOrID(t *testing.T) {
	env := setupCLITestEnv(t, "")
	if _, _, err := runCLI(t, []string{"resolve"}, env.configPath); err == nil {
		t.Fatal("expected error without a title or --id")
	}
}

func TestResolveCommandByID(t *testing.T) {
	server := newGoogleBooksStub(t)
	env := setupCLITestEnv(t, server.URL)

	out, _, err := runCLI(t, []string{"resolve", "--id", "abc", "--no-save"}, env.configPath)
	if err != nil {
		t.Fatalf("resolve --id: %v", err)
	}
	requireContains(t, out, "Dune")
	requireContains(t, out, "yes")
}

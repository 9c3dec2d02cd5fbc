package main

import "testing"

func TestCacheListEmpty(t *testing.T) {
	env := setupCLITestEnv(t, "")
	out, _, err := runCLI(t, []string{"cache", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("cache list: %v", err)
	}
	requireContains(t, out, "Match cache is empty")
}

func TestCacheListAfterResolveAndClear(t *testing.T) {
	server := newGoogleBooksStub(t)
	env := setupCLITestEnv(t, server.URL)

	if _, _, err := runCLI(t, []string{"resolve", "Dune (1965)", "--no-save"}, env.configPath); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	out, _, err := runCLI(t, []string{"cache", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("cache list: %v", err)
	}
	requireContains(t, out, "dune|1965")
	requireContains(t, out, "abc")

	out, _, err = runCLI(t, []string{"cache", "remove", "dune|1965"}, env.configPath)
	if err != nil {
		t.Fatalf("cache remove: %v", err)
	}
	requireContains(t, out, "Removed")

	out, _, err = runCLI(t, []string{"cache", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	requireContains(t, out, "Cleared 0 cached mappings")
}

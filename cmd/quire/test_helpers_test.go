package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
}

// setupCLITestEnv writes a config file pointing every path at a per-test
// temp directory so commands never touch the real user environment.
func setupCLITestEnv(t *testing.T, googleBooksURL string) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, base, googleBooksURL)

	return &cliTestEnv{baseDir: base, configPath: configPath}
}

func writeTestConfig(t *testing.T, path, baseDir, googleBooksURL string) {
	t.Helper()
	if googleBooksURL == "" {
		googleBooksURL = "https://www.googleapis.com/books/v1"
	}
	content := fmt.Sprintf(`[paths]
data_dir = %q
log_dir = %q

[googlebooks]
base_url = %q

[match_cache]
enabled = true
path = %q
`,
		filepath.Join(baseDir, "data"),
		filepath.Join(baseDir, "logs"),
		googleBooksURL,
		filepath.Join(baseDir, "cache", "match_cache.json"),
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, fragment string) {
	t.Helper()
	if !strings.Contains(output, fragment) {
		t.Fatalf("expected output to contain %q, got:\n%s", fragment, output)
	}
}

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/skill-gap-analyzer/internal/config"
)

// executeCommand runs a fresh root command in-process with the given stdin and
// arguments and returns what it wrote to stdout and stderr
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	// keep a developer's $SKILLGAP_CONFIG out of tests
	t.Setenv(config.EnvConfigPath, "")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

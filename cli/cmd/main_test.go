package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteHelp(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"No help", []string{"append-version", "--single-file", "a.html"}, []string{"append-version", "--single-file", "a.html"}},
		{"Root help", []string{"/?"}, []string{"help"}},
		{"Command help", []string{"inline-resources", "-HELP"}, []string{"help", "inline-resources"}},
		{"Unknown command", []string{"nope", "--help"}, []string{"help"}},
		{"Flag value spelled like help", []string{"replace-value", "--new-value", "-help"}, []string{"replace-value", "--new-value", "-help"}},
		{"Flag value slash help", []string{"replace-value", "--xpath", "//title", "--new-value", "/?"}, []string{"replace-value", "--xpath", "//title", "--new-value", "/?"}},
		{"Persistent flag value", []string{"append-version", "--log-level", "--help"}, []string{"append-version", "--log-level", "--help"}},
		{"After terminator", []string{"replace-value", "--", "-?"}, []string{"replace-value", "--", "-?"}},
		{"Bool flag before help", []string{"replace-value", "-v", "-help"}, []string{"help", "replace-value"}},
		{"Help after flag value", []string{"replace-value", "--xpath", "//a", "/?"}, []string{"help", "replace-value"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, routeHelp(newRoot(io.Discard, io.Discard), tt.args))
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"replace-value", "-?"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "--xpath")
	assert.Contains(t, stdout.String(), "--new-value")
}

func TestRun_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(page, []byte(`<p>x</p>`), 0644))

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"append-version", "--single-file", page}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Updated 0 nodes in")

	assert.Equal(t, 255, run([]string{"append-version", "--file-pattern", "{x", "--root-directory", dir}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"unknown-command"}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"append-version", "--log-level", "loud"}, &stdout, &stderr))
}

func TestRun_FlagValueLooksLikeHelp(t *testing.T) {
	page := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(page, []byte(`<html><head><title>Draft</title></head><body></body></html>`), 0644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"replace-value", "--single-file", page, "--xpath", "//title", "--new-value", "-help"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	got, err := os.ReadFile(page)
	require.NoError(t, err)
	assert.Contains(t, string(got), "<title>-help</title>")
	assert.Contains(t, stdout.String(), "Updated 1 nodes in")
}

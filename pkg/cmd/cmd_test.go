// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carvel.dev/mdbook-variables/pkg/cmd"
	"carvel.dev/mdbook-variables/pkg/cmd/ui"
	"carvel.dev/mdbook-variables/pkg/experiments"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const preprocessorInput = `[
  {"root": "/book", "config": {"variables": {"who": "World"}}, "renderer": "html", "mdbook_version": "0.4.36"},
  {"sections": [
    {"Chapter": {"name": "A", "content": "Hello ${{who}} from ${{place}}", "number": [1], "sub_items": [
      {"Chapter": {"name": "B", "content": "${{who}} again", "number": [1, 1], "sub_items": [], "path": "b.md", "source_path": "b.md", "parent_names": ["A"]}}
    ], "path": "a.md", "source_path": "a.md", "parent_names": []}}
  ], "__non_exhaustive": null}
]`

func init() {
	experiments.ResetForTesting()
	os.Unsetenv(experiments.Env)
}

func newTestTTY() (ui.TTY, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return ui.NewCustomWriterTTY(false, &stdout, &stderr), &stdout, &stderr
}

func TestPreprocessRun(t *testing.T) {
	tty, stdout, stderr := newTestTTY()

	opts := cmd.NewPreprocessOptions()
	opts.VariablesFlags.KVs = []string{"place=flags"}

	err := opts.Run(tty, strings.NewReader(preprocessorInput))
	require.NoError(t, err)

	assert.JSONEq(t, `{"sections": [
    {"Chapter": {"name": "A", "content": "Hello World from flags", "number": [1], "sub_items": [
      {"Chapter": {"name": "B", "content": "World again", "number": [1, 1], "sub_items": [], "path": "b.md", "source_path": "b.md", "parent_names": ["A"]}}
    ], "path": "a.md", "source_path": "a.md", "parent_names": []}}
  ], "__non_exhaustive": null}`, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestPreprocessRunWithInvalidInput(t *testing.T) {
	tty, stdout, _ := newTestTTY()

	err := cmd.NewPreprocessOptions().Run(tty, strings.NewReader(`not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unmarshaling preprocessor input")
	assert.Empty(t, stdout.String())
}

func TestPreprocessRunWithInvalidKV(t *testing.T) {
	tty, _, _ := newTestTTY()

	opts := cmd.NewPreprocessOptions()
	opts.VariablesFlags.KVs = []string{"novalue"}

	err := opts.Run(tty, strings.NewReader(preprocessorInput))
	require.EqualError(t, err, "Extracting variables from KV: Expected format key=value, but was 'novalue'")
}

func TestSupportsCmd(t *testing.T) {
	for renderer, supported := range map[string]bool{"html": true, "markdown": true, "not-supported": false} {
		command := cmd.NewDefaultMdbookVariablesCmd()
		command.SetArgs([]string{"supports", renderer})
		command.SetOut(&bytes.Buffer{})
		command.SetErr(&bytes.Buffer{})

		err := command.Execute()
		if supported {
			assert.NoError(t, err, renderer)
			continue
		}

		var unsupportedErr cmd.UnsupportedRendererError
		require.True(t, errors.As(err, &unsupportedErr), renderer)
		assert.Equal(t, "not-supported", unsupportedErr.Renderer)
	}
}

func TestSupportsCmdRequiresRenderer(t *testing.T) {
	command := cmd.NewDefaultMdbookVariablesCmd()
	command.SetArgs([]string{"supports"})
	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})

	err := command.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s), received 0")
}

func TestRootRejectsExtraArgs(t *testing.T) {
	command := cmd.NewDefaultMdbookVariablesCmd()
	command.SetArgs([]string{"unexpected"})
	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})

	err := command.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not accept extra arguments 'unexpected'")
}

func TestVersionCmd(t *testing.T) {
	tty, stdout, _ := newTestTTY()

	require.NoError(t, cmd.NewVersionOptions().Run(tty))
	assert.Contains(t, stdout.String(), "mdbook-variables version ")
	assert.Contains(t, stdout.String(), "supported mdBook versions: >= 0.4.0, < 0.5.0")
	assert.NotContains(t, stdout.String(), "enabled experiments")
}

func TestVersionCmdListsEnabledExperiments(t *testing.T) {
	experiments.ResetForTesting()
	t.Setenv(experiments.Env, "exact-delimiters")
	t.Cleanup(experiments.ResetForTesting)

	tty, stdout, _ := newTestTTY()

	require.NoError(t, cmd.NewVersionOptions().Run(tty))
	assert.Contains(t, stdout.String(), "enabled experiments: exact-delimiters\n")
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

const bookTOML = `[book]
title = "Example"

[variables]
who = "World"
version = "1.0"
`

func TestSubstituteCmdPrintsOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "a.md"), "Hello ${{who}} v${{version}}\n")
	writeFile(t, filepath.Join(dir, "src", "b.md"), "${{missing}}\n")

	tty, stdout, stderr := newTestTTY()

	opts := cmd.NewSubstituteOptions()
	opts.Files = []string{filepath.Join(dir, "src")}
	opts.BookTOML = writeFile(t, filepath.Join(dir, "book.toml"), bookTOML)
	opts.VariablesFlags.KVs = []string{"version=2.0"}

	require.NoError(t, opts.Run(tty))
	assert.Equal(t, "Hello World v2.0\nUNKNOWN VARIABLE 'missing'\n", stdout.String())
	assert.Equal(t, "Unknown variable(s): 'missing' (1x)\n", stderr.String())
}

func TestSubstituteCmdWritesOutputDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "nested", "a.md"), "Hello ${{who}}\n")

	tty, stdout, _ := newTestTTY()

	opts := cmd.NewSubstituteOptions()
	opts.Files = []string{filepath.Join(dir, "src")}
	opts.OutputDirectory = filepath.Join(dir, "out")
	opts.VariablesFlags.Files = []string{writeFile(t, filepath.Join(dir, "vars.yml"), "who: YAML\n")}

	require.NoError(t, opts.Run(tty))
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(filepath.Join(dir, "out", "nested", "a.md"))
	require.NoError(t, err)
	assert.Equal(t, "Hello YAML\n", string(data))
}

func TestSubstituteCmdDiff(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "same\nHello ${{who}}\n")
	writeFile(t, filepath.Join(dir, "b.md"), "unchanged\n")

	tty, stdout, _ := newTestTTY()

	opts := cmd.NewSubstituteOptions()
	opts.Files = []string{filepath.Join(dir, "a.md"), filepath.Join(dir, "b.md")}
	opts.Diff = true
	opts.VariablesFlags.KVs = []string{"who=World"}

	require.NoError(t, opts.Run(tty))
	assert.Contains(t, stdout.String(), "--- a.md\n")
	assert.Contains(t, stdout.String(), "Hello ${{who}}")
	assert.Contains(t, stdout.String(), "Hello World")
	assert.NotContains(t, stdout.String(), "b.md")
}

func TestSubstituteCmdExactDelimiters(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "${{who}} }} ${{open\n")

	tty, stdout, _ := newTestTTY()

	opts := cmd.NewSubstituteOptions()
	opts.Files = []string{filepath.Join(dir, "a.md")}
	opts.ExactDelimiters = true
	opts.VariablesFlags.KVs = []string{"who=World"}

	require.NoError(t, opts.Run(tty))
	assert.Equal(t, "World }} ${{open\n", stdout.String())
}

func TestSubstituteCmdInspect(t *testing.T) {
	dir := t.TempDir()

	tty, stdout, _ := newTestTTY()

	opts := cmd.NewSubstituteOptions()
	opts.BookTOML = writeFile(t, filepath.Join(dir, "book.toml"), bookTOML)
	opts.VariablesFlags.KVs = []string{"extra=plain"}
	opts.Inspect = true

	require.NoError(t, opts.Run(tty))
	assert.Equal(t, "who: World\nversion: \"1.0\"\nextra: plain\n", stdout.String())
}

func TestSubstituteCmdRequiresFiles(t *testing.T) {
	tty, _, _ := newTestTTY()

	err := cmd.NewSubstituteOptions().Run(tty)
	require.EqualError(t, err, "Expected at least one file (use -f)")
}

func TestVariablesFlagsLaterSourcesWin(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "vars.yml"), "a: file\nb: file\n")

	var flags cmd.VariablesFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.SetOnFlagSet(fs)
	require.NoError(t, fs.Parse([]string{"--vars-file", path, "-v", "b=kv"}))

	table, err := flags.Table("variables")
	require.NoError(t, err)

	val, ok := table.String("a")
	require.True(t, ok)
	assert.Equal(t, "file", val)

	val, ok = table.String("b")
	require.True(t, ok)
	assert.Equal(t, "kv", val)
}

func TestSubstituteCmdRejectsOutputDirectoryHoldingInputs(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	writeFile(t, filepath.Join(src, "a.md"), "Hello ${{who}}\n")
	image := writeFile(t, filepath.Join(src, "image.png"), "png")

	for _, outDir := range []string{src, dir} {
		tty, stdout, _ := newTestTTY()

		opts := cmd.NewSubstituteOptions()
		opts.Files = []string{src}
		opts.OutputDirectory = outDir
		opts.VariablesFlags.KVs = []string{"who=World"}

		err := opts.Run(tty)
		require.Error(t, err, outDir)
		assert.Contains(t, err.Error(), "to not contain input", outDir)
		assert.Empty(t, stdout.String())
	}

	data, err := os.ReadFile(image)
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))

	data, err = os.ReadFile(filepath.Join(src, "a.md"))
	require.NoError(t, err)
	assert.Equal(t, "Hello ${{who}}\n", string(data))
}

func TestSubstituteCmdAllowsOutputDirectoryNextToInputs(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, filepath.Join(dir, "a.md"), "Hello ${{who}}\n")

	tty, _, _ := newTestTTY()

	opts := cmd.NewSubstituteOptions()
	opts.Files = []string{input}
	opts.OutputDirectory = filepath.Join(dir, "out")
	opts.VariablesFlags.KVs = []string{"who=World"}

	require.NoError(t, opts.Run(tty))

	data, err := os.ReadFile(filepath.Join(dir, "out", "a.md"))
	require.NoError(t, err)
	assert.Equal(t, "Hello World\n", string(data))
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/itrans"
)

func newTestTransliterator(t *testing.T) *itrans.Transliterator {
	t.Helper()
	tr, err := itrans.New(itrans.BackendDAT)
	require.NoError(t, err)
	return tr
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	config, err := LoadConfig(defaultConfigFile)
	require.NoError(t, err)
	assert.Equal(t, "dat", config.Backend)
	assert.Equal(t, "ITRANS: ", config.Prompt)
	assert.Equal(t, []string{"quit", "exit", "q"}, config.ExitCommands)
	assert.False(t, config.Breakdown)
	assert.Equal(t, "error", config.TraceLevel)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := writeConfig(t, `
backend: trie
prompt: "> "
exit-commands: [" Bye "]
breakdown: true
trace-level: debug
`)
	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "trie", config.Backend)
	assert.Equal(t, "> ", config.Prompt)
	assert.Equal(t, []string{"bye"}, config.ExitCommands)
	assert.True(t, config.Breakdown)
	assert.Equal(t, "debug", config.TraceLevel)
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "backend: btree\n"))
	require.ErrorIs(t, err, itrans.ErrUnknownBackend)
}

func TestLoadConfigRejectsUnknownTraceLevel(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "trace-level: verbose\n"))
	require.Error(t, err)
}

func TestReplTranslatesUntilExit(t *testing.T) {
	config := defaultConfig()
	in := strings.NewReader("namaste\n\n  raam  \nQUIT\nhindi\n")
	var out bytes.Buffer
	require.NoError(t, repl(in, &out, newTestTransliterator(t), &config, false))
	want := "Devanagari: नमस्ते\n\nDevanagari: राम\n\nGoodbye!\n"
	assert.Equal(t, want, out.String())
}

func TestReplStopsAtEOF(t *testing.T) {
	config := defaultConfig()
	var out bytes.Buffer
	require.NoError(t, repl(strings.NewReader("bharat"), &out, newTestTransliterator(t), &config, false))
	assert.Equal(t, "Devanagari: भारत\n\n", out.String())
}

func TestReplInteractivePromptAndBreakdown(t *testing.T) {
	config := defaultConfig()
	config.Breakdown = true
	var out bytes.Buffer
	require.NoError(t, repl(strings.NewReader("ham\n"), &out, newTestTransliterator(t), &config, true))
	s := out.String()
	assert.Contains(t, s, "Type 'quit' or 'exit' or 'q' to stop")
	assert.Contains(t, s, "ITRANS: Devanagari: हम\n")
	assert.Contains(t, s, "  0: ह (U+0939 DEVANAGARI LETTER HA)\n")
	assert.True(t, strings.HasSuffix(s, "ITRANS: "), "prompt should be shown again before EOF")
}

func TestCheckFixture(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "golden.txt"))
	require.NoError(t, err)
	var out bytes.Buffer
	rep, err := check(&out, newTestTransliterator(t), bytes.NewReader(data), false)
	require.NoError(t, err)
	assert.Zero(t, rep.Failed)
	assert.Contains(t, out.String(), "Failed: 0")
}

func TestCheckReportsMismatch(t *testing.T) {
	var out bytes.Buffer
	src := strings.NewReader("raam\tराम\nham\tहमा\n")
	rep, err := check(&out, newTestTransliterator(t), src, true)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Passed)
	assert.Equal(t, 1, rep.Failed)
	s := out.String()
	assert.Contains(t, s, "✗")
	assert.Contains(t, s, "U+093E DEVANAGARI VOWEL SIGN AA")
	assert.Contains(t, s, "Passed: 1, Failed: 1, Total: 2")
}

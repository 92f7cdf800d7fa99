package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/pwgen-go/internal/clipboard"
	"github.com/vaultpass/pwgen-go/internal/config"
	"github.com/vaultpass/pwgen-go/internal/crypto"
	"github.com/vaultpass/pwgen-go/internal/model"
	"github.com/vaultpass/pwgen-go/internal/tui"
)

func testConfig() config.Config {
	return config.Config{
		Defaults:     crypto.DefaultOptions(),
		CopyReset:    20 * time.Millisecond,
		RandomSource: config.SourceCrypto,
		RateRPS:      1,
		RateBurst:    1,
	}
}

func execute(t *testing.T, cb clipboard.Writer, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(testConfig(), cb)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenerateCommand(t *testing.T) {
	out, _, err := execute(t, nil, "generate", "-l", "16", "--symbols=false", "-n", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		fields := strings.Split(line, "\t")
		require.Len(t, fields, 2)
		assert.Len(t, fields[0], 16)
		assert.False(t, strings.ContainsAny(fields[0], crypto.Symbols))
		assert.Equal(t, string(crypto.Classify(fields[0])), fields[1])
	}
}

func TestGenerateCommandJSON(t *testing.T) {
	out, _, err := execute(t, nil, "generate", "--json", "--digits=false", "--symbols=false")
	require.NoError(t, err)

	var results []model.GenerateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Len(t, results[0].Password, crypto.DefaultLength)
	assert.False(t, strings.ContainsAny(results[0].Password, crypto.Digits+crypto.Symbols))
}

func TestGenerateCommandRejectsLength(t *testing.T) {
	_, _, err := execute(t, nil, "generate", "-l", "3")
	assert.ErrorIs(t, err, crypto.ErrLengthOutOfRange)

	_, _, err = execute(t, nil, "generate", "-l", "33")
	assert.ErrorIs(t, err, crypto.ErrLengthOutOfRange)

	_, _, err = execute(t, nil, "generate", "-n", "0")
	assert.ErrorIs(t, err, errCount)
}

func TestGenerateCommandCopy(t *testing.T) {
	var copied string
	out, stderr, err := execute(t, clipboard.WriterFunc(func(text string) error {
		copied = text
		return nil
	}), "generate", "--copy", "-n", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Split(lines[1], "\t")[0], copied)
	assert.Contains(t, stderr, "copied")
}

func TestGenerateCommandCopyFailure(t *testing.T) {
	_, _, err := execute(t, clipboard.WriterFunc(func(string) error {
		return errors.New("no display")
	}), "generate", "--copy")
	assert.ErrorIs(t, err, clipboard.ErrCopyFailed)
}

func TestRootLaunchesWidget(t *testing.T) {
	orig := runProgram
	defer func() { runProgram = orig }()

	var got tea.Model
	runProgram = func(m tea.Model) error {
		got = m
		return nil
	}

	_, _, err := execute(t, nil)
	require.NoError(t, err)
	require.IsType(t, tui.Model{}, got)
	assert.Contains(t, got.View(), "Password Generator")
}

func TestSetupLoggingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pwgen.log")
	closeLog, err := setupLogging(path)
	require.NoError(t, err)
	require.NotNil(t, closeLog)
	assert.NoError(t, closeLog())

	closeLog, err = setupLogging("")
	require.NoError(t, err)
	assert.Nil(t, closeLog)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PWGEN_TEST_DOTENV=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("PWGEN_TEST_DOTENV") })

	loadDotEnv(path)
	assert.Equal(t, "loaded", os.Getenv("PWGEN_TEST_DOTENV"))

	// A missing file only warns.
	assert.NotPanics(t, func() { loadDotEnv(filepath.Join(t.TempDir(), "missing.env")) })
}

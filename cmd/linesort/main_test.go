package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/linesort/internal/config"
	"git.home.luguber.info/inful/linesort/internal/engine"
)

func resetCLI() {
	CLI.Reverse = false
	CLI.IgnoreCase = false
	CLI.Natural = false
	CLI.Locale = ""
	CLI.Unique = false
	CLI.Shuffle = false
	CLI.Seed = nil
	CLI.Trim = false
	CLI.SkipBlank = false
	CLI.ForceFlush = false
	CLI.KeepGoing = false
	CLI.Encoding = ""
	CLI.Output = ""
	CLI.Config = ""
	CLI.Files = nil
}

func TestApplyFlags_BooleansOnlyEnable(t *testing.T) {
	resetCLI()
	CLI.Natural = true

	opts := &config.Options{Unique: true, Encoding: "utf-8"}
	applyFlags(opts)

	require.True(t, opts.Natural)
	require.True(t, opts.Unique) // defaults-file value survives
	require.Equal(t, "utf-8", opts.Encoding)
}

func TestApplyFlags_StringsOverride(t *testing.T) {
	resetCLI()
	CLI.Encoding = "latin-1"
	CLI.Locale = "sv"

	opts := &config.Options{Encoding: "utf-8", Locale: "en"}
	applyFlags(opts)

	require.Equal(t, "latin-1", opts.Encoding)
	require.Equal(t, "sv", opts.Locale)
}

func TestReadSource_FileIntoEngine(t *testing.T) {
	resetCLI()
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("b\na\na\n"), 0o644))

	opts := &config.Options{Encoding: "utf-8"}
	eng, err := engine.Build(opts)
	require.NoError(t, err)

	require.NoError(t, readSource(path, opts, eng))

	var buf strings.Builder
	require.NoError(t, eng.Emit(&buf, false))
	require.Equal(t, "a\na\nb\n", buf.String())
}

func TestReadSource_MissingFile(t *testing.T) {
	resetCLI()
	opts := &config.Options{Encoding: "utf-8"}
	eng, err := engine.Build(opts)
	require.NoError(t, err)

	err = readSource(filepath.Join(t.TempDir(), "absent.txt"), opts, eng)
	require.Error(t, err)
	require.Zero(t, eng.Len())
}

func TestReadSource_MultipleSourcesAccumulate(t *testing.T) {
	resetCLI()
	dir := t.TempDir()
	first := filepath.Join(dir, "one.txt")
	second := filepath.Join(dir, "two.txt")
	require.NoError(t, os.WriteFile(first, []byte("c\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("a\nb"), 0o644)) // "b" is truncated

	opts := &config.Options{Encoding: "utf-8"}
	eng, err := engine.Build(opts)
	require.NoError(t, err)

	require.NoError(t, readSource(first, opts, eng))
	require.NoError(t, readSource(second, opts, eng))

	var buf strings.Builder
	require.NoError(t, eng.Emit(&buf, false))
	require.Equal(t, "a\nc\n", buf.String())
}

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"pazar/internal/config"
	"pazar/internal/logging"
	"pazar/internal/market"
	"pazar/internal/query"
)

// resetGlobals installs defaults for the package-level state the commands
// read, and restores the table flags afterwards.
func resetGlobals(t *testing.T) {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	cfg.UI.Theme = config.ThemeDark

	tableFilter, tableSort, tableDesc = "", "", false
	tablePage, tableSize, tableFormat = 1, 0, FormatText
	t.Cleanup(func() {
		tableFilter, tableSort, tableDesc = "", "", false
		tablePage, tableSize, tableFormat = 1, 0, FormatText
	})
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PAZAR_DATASET", "PAZAR_THEME", "PAZAR_LOG_LEVEL", "PAZAR_LOG_FILE"} {
		t.Setenv(k, "")
	}
}

// run invokes a RunE function with its output captured.
func run(t *testing.T, fn func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	err := fn(cmd, args)
	return buf.String(), err
}

func decodePage(t *testing.T, out string) tablePageView {
	t.Helper()
	var v tablePageView
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

func rowDistricts(v tablePageView) []string {
	out := make([]string, len(v.Rows))
	for i, r := range v.Rows {
		out[i] = r.District
	}
	return out
}

func TestRunTable_Text(t *testing.T) {
	resetGlobals(t)

	out, err := run(t, runTable)
	require.NoError(t, err)
	assert.Contains(t, out, "Pazar Yerleri")
	assert.Contains(t, out, "Osmangazi")
	assert.Contains(t, out, "Pazartesi")
	assert.Contains(t, out, "1 / 1 · 11 of 11 districts")
}

func TestRunTable_FilterJSON(t *testing.T) {
	resetGlobals(t)
	tableFilter = "nilüfer"
	tableFormat = FormatJSON

	out, err := run(t, runTable)
	require.NoError(t, err)

	v := decodePage(t, out)
	assert.Equal(t, 11, v.Total)
	assert.Equal(t, len(v.Rows), v.Matches)
	assert.Contains(t, rowDistricts(v), "Nilüfer")
	for _, r := range v.Rows {
		assert.Len(t, r.Days, 7)
		assert.Equal(t, "Pazartesi", r.Days[0].Day)
	}
}

func TestRunTable_SortDescending(t *testing.T) {
	resetGlobals(t)
	tableSort = "İlçe"
	tableDesc = true
	tableFormat = FormatJSON

	out, err := run(t, runTable)
	require.NoError(t, err)

	got := rowDistricts(decodePage(t, out))
	require.Len(t, got, 11)
	want := slices.Clone(got)
	slices.Sort(want)
	slices.Reverse(want)
	assert.Equal(t, want, got)
}

func TestRunTable_PageClamps(t *testing.T) {
	resetGlobals(t)
	tableSize = 5
	tablePage = 99
	tableFormat = FormatYAML

	out, err := run(t, runTable)
	require.NoError(t, err)

	var v tablePageView
	require.NoError(t, yaml.Unmarshal([]byte(out), &v))
	assert.Equal(t, 3, v.PageCount)
	assert.Equal(t, 3, v.Page)
	assert.Len(t, v.Rows, 1)
}

func TestRunTable_ConfiguredPageSize(t *testing.T) {
	resetGlobals(t)
	cfg.Table.DefaultPageSize = 5
	tableFormat = FormatJSON

	out, err := run(t, runTable)
	require.NoError(t, err)
	v := decodePage(t, out)
	assert.Equal(t, 3, v.PageCount)
	assert.Len(t, v.Rows, 5)

	// --size wins over the configured size.
	tableSize = 20
	out, err = run(t, runTable)
	require.NoError(t, err)
	v = decodePage(t, out)
	assert.Equal(t, 1, v.PageCount)
	assert.Len(t, v.Rows, 11)
}

func TestRunTable_Markdown(t *testing.T) {
	resetGlobals(t)
	tableFormat = FormatMarkdown

	out, err := run(t, runTable)
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))
}

func TestRunTable_ArgumentErrors(t *testing.T) {
	t.Run("unknown column", func(t *testing.T) {
		resetGlobals(t)
		tableSort = "Funday"
		_, err := run(t, runTable)
		assert.ErrorIs(t, err, query.ErrUnknownColumn)
	})
	t.Run("unknown format", func(t *testing.T) {
		resetGlobals(t)
		tableFormat = "csv"
		_, err := run(t, runTable)
		assert.ErrorIs(t, err, errUnknownFormat)
	})
	t.Run("page zero", func(t *testing.T) {
		resetGlobals(t)
		tablePage = 0
		_, err := run(t, runTable)
		assert.Error(t, err)
	})
	t.Run("desc without sort", func(t *testing.T) {
		resetGlobals(t)
		tableDesc = true
		_, err := run(t, runTable)
		assert.ErrorIs(t, err, errDescWithoutSort)
	})
	t.Run("negative size", func(t *testing.T) {
		resetGlobals(t)
		tableSize = -1
		_, err := run(t, runTable)
		assert.Error(t, err)
	})
}

func TestRunValidate_Bundled(t *testing.T) {
	resetGlobals(t)

	output := captureOutput(t, func() {
		if err := runValidate(&cobra.Command{}, nil); err != nil {
			t.Fatalf("runValidate returned error: %v", err)
		}
	})

	if !strings.Contains(output, "Dataset OK: 7 days, 11 districts") {
		t.Fatalf("expected summary line, got: %s", output)
	}
	if !strings.Contains(output, "Cumartesi") {
		t.Fatalf("expected per-day counts, got: %s", output)
	}
}

func TestRunValidate_Malformed(t *testing.T) {
	resetGlobals(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Pazartesi": {"İlçe": {"Osmangazi": {}}}}`), 0644))
	cfg.Dataset.Path = path

	core, logs := observer.New(zapcore.InfoLevel)
	restore := logging.SetLogger(zap.New(core))
	defer restore()

	_, err := run(t, runValidate)
	require.Error(t, err)
	assert.ErrorIs(t, err, market.ErrMalformedDataset)

	var me *market.MalformedDatasetError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, "Pazartesi", me.Day)
	assert.Equal(t, "Osmangazi", me.District)

	entries := logs.FilterMessage("malformed dataset").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "dataset", entries[0].LoggerName)
	assert.Equal(t, "Osmangazi", entries[0].ContextMap()["district"])
}

func TestRunLink(t *testing.T) {
	resetGlobals(t)

	out, err := run(t, runLink, "Kuruçeşme Pazarı", "Kuruçeşme Mah.")
	require.NoError(t, err)
	assert.Equal(t, "https://www.google.com/maps/search/Kuru%C3%A7e%C5%9Fme+Pazar%C4%B1%2C+Kuru%C3%A7e%C5%9Fme+Mah.\n", out)

	out, err = run(t, runLink, "Gemlik Pazarı")
	require.NoError(t, err)
	assert.Equal(t, "https://www.google.com/maps/search/Gemlik+Pazar%C4%B1\n", out)
}

func TestConfigInitAndShow(t *testing.T) {
	resetGlobals(t)
	clearEnv(t)
	prev := configPath
	configPath = filepath.Join(t.TempDir(), "pazar.yaml")
	defer func() { configPath = prev }()

	out, err := run(t, runConfigInit)
	require.NoError(t, err)
	assert.Contains(t, out, configPath)

	loaded, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Table, loaded.Table)

	_, err = run(t, runConfigInit)
	assert.Error(t, err, "existing file without --force")

	out, err = run(t, runConfigShow)
	require.NoError(t, err)
	assert.Contains(t, out, "search_url:")
	assert.Contains(t, out, "page_sizes:")
}

func TestSetup(t *testing.T) {
	prevPath, prevVerbose := configPath, verbose
	defer func() { configPath, verbose = prevPath, prevVerbose }()
	restore := logging.SetLogger(nil)
	defer restore()
	clearEnv(t)

	configPath = filepath.Join(t.TempDir(), "missing.yaml")
	verbose = true
	t.Setenv("PAZAR_THEME", config.ThemeLight)

	require.NoError(t, setup(true))
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, config.ThemeLight, cfg.UI.Theme)
	assert.NotNil(t, logger)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("ui:\n  theme: neon\n"), 0644))
	configPath = bad
	t.Setenv("PAZAR_THEME", "")
	assert.ErrorIs(t, setup(true), config.ErrInvalidConfig)
}

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origOut := os.Stdout
	origErr := os.Stderr
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		_, _ = io.Copy(&buf, rErr)
		done <- buf.String()
	}()

	fn()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = origOut
	os.Stderr = origErr
	return <-done
}

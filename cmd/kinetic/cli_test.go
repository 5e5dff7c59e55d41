package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phanxgames/kinetic"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testCmd resets the globals a command reads and returns a command whose
// output is captured.
func testCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	logger = zap.NewNop()
	presets = kinetic.DefaultConfig()
	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestCurveCmd(t *testing.T) {
	cmd, out := testCmd(t)
	curveSteps, curveSpring = 11, false

	require.NoError(t, runCurve(cmd, []string{"experience"}))
	text := out.String()
	assert.Contains(t, text, "progress")
	assert.Regexp(t, `0\.100\s+0\.500\s+4\.00\s+0\.00\s+0\.00\s+1\.000`, text)
	assert.Regexp(t, `0\.500\s+1\.000\s+0\.00`, text)
}

func TestCurveCmdSpring(t *testing.T) {
	cmd, out := testCmd(t)
	curveSteps, curveSpring = 600, true
	defer func() { curveSteps, curveSpring = 11, false }()

	require.NoError(t, runCurve(cmd, []string{"experience"}))
	assert.Regexp(t, `(?m)^1\s+0\.0`, out.String())
	assert.Contains(t, out.String(), "settled after")
}

func TestCurveCmdErrors(t *testing.T) {
	cmd, _ := testCmd(t)
	curveSteps = 11
	assert.ErrorIs(t, runCurve(cmd, []string{"missing"}), kinetic.ErrUnknownPreset)

	curveSteps = 1
	defer func() { curveSteps = 11 }()
	assert.Error(t, runCurve(cmd, []string{"experience"}))
}

func TestMenuCmd(t *testing.T) {
	cmd, out := testCmd(t)
	menuPreset = "floating-menu"

	require.NoError(t, runMenu(cmd, nil))
	text := out.String()
	assert.Contains(t, text, "floating-menu: 6 items, collapse wait 800ms")
	assert.Regexp(t, `0s\s+closed\s+opening`, text)
	assert.Regexp(t, `400ms\s+opening\s+open\n`, text)
	assert.Regexp(t, `400ms\s+open\s+closing`, text)
	assert.Regexp(t, `1\.2s\s+closing\s+closed`, text)
	assert.Regexp(t, `(?m)^5\s+1s\s+500ms\s+700ms`, text)
}

func TestMenuCmdUnknownPreset(t *testing.T) {
	cmd, _ := testCmd(t)
	menuPreset = "nope"
	defer func() { menuPreset = "floating-menu" }()
	assert.ErrorIs(t, runMenu(cmd, nil), kinetic.ErrUnknownPreset)
}

func TestRevealCmd(t *testing.T) {
	cmd, out := testCmd(t)
	revealPreset = "projects"

	require.NoError(t, runReveal(cmd, nil))
	text := out.String()
	assert.Regexp(t, `(?m)^0\s+0s\s+0s\s+1\.000`, text)
	assert.Regexp(t, `(?m)^3\s+600ms\s+600ms\s+1\.000\s+0\.00\s+0\.00\s+0\.00\s+1\.000`, text)
}

func TestTypeCmdHeadless(t *testing.T) {
	cmd, out := testCmd(t)
	typePreset, typeHeadless, typeDuration = "hero", true, 400*time.Millisecond
	defer func() { typeHeadless, typeDuration = false, 0 }()

	require.NoError(t, runType(cmd, nil))
	text := out.String()
	assert.Contains(t, text, `150ms  "c"`)
	assert.Contains(t, text, `300ms  "co"`)
	assert.NotContains(t, text, `"cof"`)
}

func TestTypeCmdNegativeDuration(t *testing.T) {
	cmd, _ := testCmd(t)
	typePreset, typeDuration = "hero", -time.Second
	defer func() { typeDuration = 0 }()
	assert.Error(t, runType(cmd, nil))
}

func TestPresetsCmd(t *testing.T) {
	cmd, out := testCmd(t)
	require.NoError(t, presetsCmd.RunE(cmd, nil))
	text := out.String()
	assert.Contains(t, text, "disclosures: floating-menu, skill-card\n")
	assert.Contains(t, text, "typewriters: hero\n")
	assert.Contains(t, text, "easings: ")
	assert.Contains(t, text, "outBack")
}

func TestLoadPresetsMergesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.yaml")
	doc := "disclosures:\n  drawer: {items: 2, stagger: 50ms, itemExit: 100ms, grow: 200ms, enterDelay: 0s}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := loadPresets(path)
	require.NoError(t, err)
	assert.Contains(t, c.Disclosures, "drawer")
	assert.Contains(t, c.Disclosures, "floating-menu")

	_, err = loadPresets(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadPresetsUsesBuiltinSpring(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.yaml")
	doc := "scroll:\n  mine:\n    spring: section\n    blur: {breakpoints: [0, 1], values: [8, 0]}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := loadPresets(path)
	require.NoError(t, err)
	sc, err := c.ScrollConfig("mine")
	require.NoError(t, err)
	require.NotNil(t, sc.Spring)
	assert.Equal(t, kinetic.DefaultSpringConfig(), *sc.Spring)

	cmd, out := testCmd(t)
	presets = c
	curveSteps, curveSpring = 3, false
	defer func() { curveSteps = 11 }()
	require.NoError(t, runCurve(cmd, []string{"mine"}))
	assert.Regexp(t, `0\.500\s+1\.000\s+4\.00`, out.String())
}

func TestRootCmdConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte("typewriters:\n  tag: {words: [go], typeDelay: 10ms, deleteDelay: 5ms}\n"), 0o644))
	defer func() { configPath = "" }()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"presets", "--config", path})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "typewriters: hero, tag\n")
}

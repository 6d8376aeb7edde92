package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProfile = `
discount:
  cauldron_cost_reduction: 100
  bubble_twelve: 12
  bargain_tag: 1
vials:
  Barley Brew: 5
upgrades:
  Yellow: [0, 0, 0, 0, 0, 0, 70]
  Orange: [10, 4]
goals:
  Orange: [12, 0]
bubbles:
  Orange:
    - name: Roid Ragin
      x1: 40
      x2: 12
      func: decay
    - name: Warriors Rule
      x1: 2
      x2: 0
      func: add
`

// run executes the CLI and returns stdout and stderr
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("ALCHEMY_ENV", "test")
	t.Setenv("PROFILE_PATH", "")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeProfile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testProfile), 0o644))
	return path
}

func TestVialsCommand(t *testing.T) {
	out, _, err := run(t, "vials", "-q", "--roll", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Copper Corona")
	assert.NotContains(t, out, "Barley Brew")

	out, _, err = run(t, "vials", "-q", "--level", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Barley Brew")
	assert.Contains(t, out, "5.00")

	_, _, err = run(t, "vials", "--roll", "101")
	assert.Error(t, err)
}

func TestCostsCommand(t *testing.T) {
	out, _, err := run(t, "costs")
	require.NoError(t, err)
	assert.Contains(t, out, "1000000000")
}

func TestDiscountCommand(t *testing.T) {
	out, _, err := run(t, "discount", "-q", "--tag", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Bubbles cost 25.00% less")

	out, _, err = run(t, "discount", "-q", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Undev + vial:  0.00")
	assert.Contains(t, out, "Total:         0.00")
}

func TestDiscountCommandWithProfile(t *testing.T) {
	path := writeProfile(t)

	// 0.55 * 0.8 * 0.75 (undev 70 + vial 5) * 0.75 = 0.2475
	out, _, err := run(t, "discount", "-q", "--profile", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Bubbles cost 75.25% less")

	// an explicit flag wins over the profile
	out, _, err = run(t, "discount", "-q", "--profile", path, "--tag", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Bubbles cost 67.00% less")
}

func TestEffectCommand(t *testing.T) {
	out, _, err := run(t, "effect", "--func", "decay", "--x1", "40", "--x2", "12", "--now", "12")
	require.NoError(t, err)
	assert.Equal(t, "20.00", strings.TrimSpace(out))

	out, _, err = run(t, "effect", "--func", "decay", "--x1", "40", "--x2", "12", "--now", "10", "--goal", "5")
	require.NoError(t, err)
	assert.Equal(t, " 18.18 =>  18.18\n", out)

	_, _, err = run(t, "effect", "--func", "sqrt", "--now", "1")
	assert.Error(t, err)

	_, _, err = run(t, "effect", "--now", "1")
	assert.Error(t, err, "func is required")
}

func TestPlanCommand(t *testing.T) {
	path := writeProfile(t)

	out, _, err := run(t, "plan", "-q", "--profile", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Roid Ragin")
	assert.Contains(t, out, "18.18 =>  20.00")
	assert.NotContains(t, out, "Warriors Rule", "goal below current level is hidden")

	out, _, err = run(t, "plan", "-q", "--all", "--profile", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Warriors Rule")
}

func TestPlanCommandRequiresProfile(t *testing.T) {
	_, _, err := run(t, "plan")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no profile")

	_, _, err = run(t, "plan", "--profile", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Defacto2/helper"
	"github.com/ItzSteveHuh/shellext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestMenu(t *testing.T) {
	tmp := t.TempDir()
	archive := filepath.Join(tmp, "FONTS.7z")
	require.NoError(t, helper.Touch(archive))

	out, _, err := run(t, "menu", archive)
	require.NoError(t, err)
	assert.Contains(t, out, "Open archive")
	assert.Contains(t, out, `Extract to "FONTS`)
	assert.Contains(t, out, `Add to "FONTS.7z"`)
	assert.Contains(t, out, "  sha256")

	text := filepath.Join(tmp, "README.TXT")
	require.NoError(t, helper.Touch(text))
	out, _, err = run(t, "menu", archive, text)
	require.NoError(t, err)
	assert.NotContains(t, out, "Open archive")
	assert.NotContains(t, out, "Extract Here")
	assert.Contains(t, out, `Add to "`+filepath.Base(tmp)+`.zip"`)

	out, _, err = run(t, "menu", "--all", archive, text)
	require.NoError(t, err)
	assert.Contains(t, out, "hidden")
	assert.Contains(t, out, "Open archive")

	_, _, err = run(t, "menu")
	require.Error(t, err)
}

func TestInvoke_DryRun(t *testing.T) {
	tmp := t.TempDir()
	x := filepath.Join(tmp, "X.7z")
	y := filepath.Join(tmp, "Y.zip")
	require.NoError(t, helper.Touch(x))
	require.NoError(t, helper.Touch(y))

	out, _, err := run(t, "invoke", "--dry-run", "--tools-dir", tmp, "extract-here", x, y)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "-oX")
	assert.Contains(t, lines[1], "-oY")

	out, _, err = run(t, "invoke", "-n", "extract-here", x)
	require.NoError(t, err)
	assert.NotContains(t, out, "-o")

	out, _, err = run(t, "invoke", "-n", "sha1", x, y)
	require.NoError(t, err)
	assert.Contains(t, out, "h -scrcSHA1")
}

func TestInvoke_Nothing(t *testing.T) {
	tmp := t.TempDir()
	text := filepath.Join(tmp, "README.TXT")
	require.NoError(t, helper.Touch(text))
	out, errOut, err := run(t, "invoke", "-n", "open", text)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "nothing to run")
	assert.Contains(t, errOut, "request=")

	_, _, err = run(t, "invoke", "-n", "unknown", text)
	require.ErrorIs(t, err, shellext.ErrAction)
}

func TestInspect(t *testing.T) {
	tmp := t.TempDir()
	fake := filepath.Join(tmp, "FAKE.zip")
	require.NoError(t, helper.Touch(fake))
	out, _, err := run(t, "inspect", fake, tmp)
	require.NoError(t, err)
	assert.Contains(t, out, fake)
	assert.Contains(t, out, tmp+": directory")
}

func TestActions(t *testing.T) {
	out, _, err := run(t, "actions")
	require.NoError(t, err)
	for _, name := range []string{"open", "extract-to", "add-zip", "email-7z", "crc64"} {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "CRC SHA")
}

func TestStatus(t *testing.T) {
	out, _, err := run(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "objects=0 locks=0 unload=true")
}

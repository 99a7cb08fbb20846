package shellext_test

import (
	"testing"

	"github.com/ItzSteveHuh/shellext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	t.Parallel()
	for _, id := range shellext.Actions() {
		got, err := shellext.ParseAction(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
	got, err := shellext.ParseAction(" Extract-Here ")
	require.NoError(t, err)
	assert.Equal(t, shellext.ExtractHereSmart, got)

	_, err = shellext.ParseAction("compress")
	require.ErrorIs(t, err, shellext.ErrAction)
	_, err = shellext.ParseAction("")
	require.ErrorIs(t, err, shellext.ErrAction)
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	for _, id := range shellext.Actions() {
		d := shellext.Describe(id)
		assert.Equal(t, id, d.ID)
		assert.NotEmpty(t, d.Label, id.String())
		if d.Composite {
			assert.Equal(t, shellext.None, d.Template, id.String())
		} else {
			assert.NotEqual(t, shellext.None, d.Template, id.String())
		}
	}
	d := shellext.Describe(shellext.AddToZip)
	require.Equal(t, []string{"-tzip"}, d.Switches)
	d.Switches[0] = "-t7z"
	assert.Equal(t, []string{"-tzip"}, shellext.Describe(shellext.AddToZip).Switches)

	assert.Panics(t, func() { shellext.Describe(shellext.ActionID(-1)) })
	assert.Panics(t, func() { shellext.Describe(shellext.ActionID(len(shellext.Actions()))) })
	assert.Equal(t, "ActionID(99)", shellext.ActionID(99).String())
}

func TestTopLevel(t *testing.T) {
	t.Parallel()
	ids := shellext.TopLevel()
	require.Len(t, ids, 12)
	assert.Equal(t, shellext.Open, ids[0])
	assert.Equal(t, shellext.HashMenu, ids[len(ids)-1])
	for _, id := range ids {
		assert.NotContains(t, []shellext.ActionID{
			shellext.HashCRC32, shellext.HashCRC64, shellext.HashSHA1, shellext.HashSHA256,
		}, id)
	}
}

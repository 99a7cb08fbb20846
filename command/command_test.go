package command

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestExe(t *testing.T) {
	t.Parallel()
	be.Equal(t, exe("windows", GUI), "7zG.exe")
	be.Equal(t, exe("windows", "7zG.exe"), "7zG.exe")
	be.Equal(t, exe("linux", GUI), "7zG")
	be.Equal(t, exe("darwin", CLI), "7z")
	be.Equal(t, exe("windows", ""), "")
}

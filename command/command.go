// Package command lists the 7-Zip program names that dispatches are handed to.
package command

import (
	"runtime"
	"strings"
)

// A note about the program names: the Windows distribution of 7-Zip ships
// 7zFM.exe, 7zG.exe and 7z.exe side by side in its install directory.
// Linux builds of the console program are usually named 7zz, but the file
// manager and GUI programs only exist on Windows.

const (
	Manager = "7zFM" // Manager is the 7-Zip File Manager used to browse an archive.
	GUI     = "7zG"  // GUI is the 7-Zip graphical program with progress and prompt dialogs.
	CLI     = "7z"   // CLI is the 7-Zip console program used for hashing.
)

// Exe returns the program name with the executable suffix of the host, .exe on Windows.
func Exe(name string) string {
	return exe(runtime.GOOS, name)
}

func exe(goos, name string) string {
	if goos != "windows" || name == "" {
		return name
	}
	const suffix = ".exe"
	if strings.HasSuffix(strings.ToLower(name), suffix) {
		return name
	}
	return name + suffix
}

package shellext

// Package file dispatch.go contains the external program invocation plan.

import (
	"strings"

	"github.com/ItzSteveHuh/shellext/command"
)

// ToolKind is the 7-Zip program that runs a dispatch.
type ToolKind int

const (
	GUI     ToolKind = iota // GUI is the interactive 7zG program.
	CLI                     // CLI is the batch 7z console program.
	Manager                 // Manager is the 7zFM file manager.
)

// Program returns the program name, without an executable suffix.
func (k ToolKind) Program() string {
	switch k {
	case GUI:
		return command.GUI
	case CLI:
		return command.CLI
	case Manager:
		return command.Manager
	}
	return ""
}

func (k ToolKind) String() string {
	switch k {
	case GUI:
		return "gui"
	case CLI:
		return "cli"
	case Manager:
		return "manager"
	}
	return "unknown"
}

// Dispatch describes running a 7-Zip program with the argument list,
// optionally in the working directory. It is produced per request
// and is never executed by this package.
type Dispatch struct {
	Tool ToolKind // Tool is the program to run.
	Args []string // Args are the unquoted program arguments.
	Dir  string   // Dir is the working directory, empty for the host default.
}

// CommandLine returns the arguments as a single Windows command line,
// as expected by ShellExecute style launchers. Arguments containing
// spaces, quotes or that are paths are double-quoted.
func (d Dispatch) CommandLine() string {
	var b strings.Builder
	for i, arg := range d.Args {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(quote(arg))
	}
	return b.String()
}

// quote escapes the argument using the Windows command line rules,
// where backslashes are only special when they precede a double quote.
func quote(arg string) string {
	if arg == "" {
		return `""`
	}
	if !strings.ContainsAny(arg, " \t\"\\/") {
		return arg
	}
	var b strings.Builder
	b.WriteByte('"')
	slashes := 0
	for i := range len(arg) {
		c := arg[i]
		switch c {
		case backslash:
			slashes++
		case '"':
			b.WriteString(strings.Repeat(`\`, slashes+1))
			slashes = 0
		default:
			slashes = 0
		}
		b.WriteByte(c)
	}
	// double any trailing backslashes so the closing quote is kept
	b.WriteString(strings.Repeat(`\`, slashes))
	b.WriteByte('"')
	return b.String()
}

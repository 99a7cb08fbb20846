// Package launch starts the 7-Zip programs described by the dispatches of a menu action.
//
// Programs are started and never waited on by the caller, so a file manager
// that invokes an action regains control as soon as the programs are running.
package launch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ItzSteveHuh/shellext"
	"github.com/ItzSteveHuh/shellext/command"
	"github.com/sirupsen/logrus"
)

var (
	ErrDispatch = errors.New("dispatch has no arguments")
	ErrProgram  = errors.New("7-zip program not found")
)

// Launcher starts dispatches using the 7-Zip programs found in Dir or on the PATH.
//
//	func Invoke(paths []string) error {
//	    e := shellext.NewEngine()
//	    defer e.Close()
//	    plans := e.BuildDispatch(shellext.AddTo7z, shellext.Classify(paths...))
//	    return launch.Launcher{Dir: `C:\Program Files\7-Zip`}.Run(plans)
//	}
type Launcher struct {
	Dir    string             // Dir is the 7-Zip install directory, searched before the PATH.
	Log    logrus.FieldLogger // Log receives the program start and exit events, nil discards them.
	DryRun bool               // DryRun writes the command lines to Out instead of starting programs.
	Out    io.Writer          // Out receives the dry run command lines, nil uses os.Stdout.
}

func (l Launcher) logger() logrus.FieldLogger {
	if l.Log != nil {
		return l.Log
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return discard
}

// Path returns the location of the 7-Zip program of the kind.
// A regular file in Dir is preferred, otherwise the PATH is searched.
func (l Launcher) Path(kind shellext.ToolKind) (string, error) {
	if kind.Program() == "" {
		return "", fmt.Errorf("launch %w: %s", ErrProgram, kind)
	}
	name := command.Exe(kind.Program())
	if l.Dir != "" {
		p := filepath.Join(l.Dir, name)
		if st, err := os.Stat(p); err == nil && st.Mode().IsRegular() {
			return p, nil
		}
	}
	prog, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("launch %w: %s: %w", ErrProgram, name, err)
	}
	return prog, nil
}

// Start runs the dispatch without waiting for the program to exit.
// The exit status is only reported to the logger.
func (l Launcher) Start(d shellext.Dispatch) error {
	if len(d.Args) == 0 {
		return fmt.Errorf("launch %w: %s", ErrDispatch, d.Tool)
	}
	log := l.logger()
	if l.DryRun {
		name := command.Exe(d.Tool.Program())
		if prog, err := l.Path(d.Tool); err == nil {
			name = prog
		}
		w := l.Out
		if w == nil {
			w = os.Stdout
		}
		_, err := fmt.Fprintln(w, name, d.CommandLine())
		return err
	}
	prog, err := l.Path(d.Tool)
	if err != nil {
		return err
	}
	// a context is not used, the program must outlive the request that started it
	cmd := exec.Command(prog, d.Args...) //nolint:noctx
	cmd.Dir = d.Dir
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch start %s: %w", prog, err)
	}
	entry := log.WithFields(logrus.Fields{
		"program": prog,
		"pid":     cmd.Process.Pid,
		"dir":     d.Dir,
	})
	entry.Debug("program started")
	go func() {
		if err := cmd.Wait(); err != nil {
			entry.WithError(err).Warn("program exited")
			return
		}
		entry.Debug("program exited")
	}()
	return nil
}

// Run starts every dispatch in order. A failure does not stop the remaining
// dispatches and all of the errors are returned together.
func (l Launcher) Run(plans []shellext.Dispatch) error {
	errs := make([]error, 0, len(plans))
	for _, d := range plans {
		if err := l.Start(d); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

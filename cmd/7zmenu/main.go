// 7zmenu previews and runs the 7-Zip context menu for a selection of files,
// acting as the file manager host of the shellext package.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// envHome names the 7-Zip install directory when --tools-dir is not given.
const envHome = "SEVENZIP_HOME"

type options struct {
	toolsDir string
	debug    bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "7zmenu",
		Short:         "Preview and run the 7-Zip context menu for a selection",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	flags := root.PersistentFlags()
	flags.StringVar(&opts.toolsDir, "tools-dir", os.Getenv(envHome),
		"7-Zip install directory searched before the PATH, defaults to $"+envHome)
	flags.BoolVar(&opts.debug, "debug", false, "log debug messages")
	root.AddCommand(
		menuCmd(),
		invokeCmd(opts),
		inspectCmd(),
		actionsCmd(),
		statusCmd(),
	)
	return root
}

// newLogger returns the request logger, tagged with a unique request id.
func newLogger(w io.Writer, debug bool) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l.WithField("request", uuid.NewString())
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ItzSteveHuh/shellext"
	"github.com/ItzSteveHuh/shellext/launch"
	"github.com/ItzSteveHuh/shellext/probe"
	"github.com/spf13/cobra"
)

func menuCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "menu <path>...",
		Short: "Print the menu shown for the selected paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := shellext.NewEngine()
			defer e.Close()
			menu := e.Build(shellext.Classify(args...))
			defer menu.Close()
			for n := range menu.All() {
				printNode(cmd.OutOrStdout(), n, 0, all)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include the hidden actions")
	return cmd
}

func printNode(w io.Writer, n shellext.CommandNode, depth int, all bool) {
	if n.State == shellext.Hidden && !all {
		return
	}
	indent := strings.Repeat("  ", depth)
	if all {
		fmt.Fprintf(w, "%s%-12s %-7s %s\n", indent, n.ID, n.State, n.Label)
	} else {
		fmt.Fprintf(w, "%s%-12s %s\n", indent, n.ID, n.Label)
	}
	for _, child := range n.Children {
		printNode(w, child, depth+1, all)
	}
}

func invokeCmd(opts *options) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "invoke <action> <path>...",
		Short: "Run a menu action on the selected paths",
		Long: "Run a menu action on the selected paths.\n" +
			"The 7-Zip programs are started in the background and are not waited on.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd.ErrOrStderr(), opts.debug)
			id, err := shellext.ParseAction(args[0])
			if err != nil {
				return err
			}
			e := shellext.NewEngine()
			defer e.Close()
			sel := shellext.Classify(args[1:]...)
			log = log.WithField("action", id.String())
			plans := e.BuildDispatch(id, sel)
			if len(plans) == 0 {
				log.WithField("state", e.Visibility(id, sel)).Info("nothing to run for the selection")
				return nil
			}
			log.WithField("dispatches", len(plans)).Debug("invoke")
			l := launch.Launcher{
				Dir:    opts.toolsDir,
				Log:    log,
				DryRun: dryRun,
				Out:    cmd.OutOrStdout(),
			}
			if err := l.Run(plans); err != nil {
				return fmt.Errorf("invoke %s: %w", id, err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the command lines instead of running them")
	return cmd
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <path>...",
		Short: "Compare the filename extension of the paths with their content",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, f := range probe.Report(shellext.Classify(args...)) {
				switch {
				case f.Dir:
					fmt.Fprintf(w, "%s: directory\n", f.Path)
				case f.Err != nil:
					fmt.Fprintf(w, "%s: %v\n", f.Path, f.Err)
				default:
					fmt.Fprintf(w, "%s: extension archive=%t, content archive=%t (%s)\n",
						f.Path, f.Extension, f.Content, f.Format)
				}
				if f.Mismatch() {
					fmt.Fprintf(w, "%s: the extension does not match the content\n", f.Path)
				}
			}
			return nil
		},
	}
}

func actionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List the action names accepted by invoke",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, id := range shellext.Actions() {
				d := shellext.Describe(id)
				if d.Composite {
					continue
				}
				fmt.Fprintf(w, "%-12s %-7s %s\n", id, d.Tool, d.Label)
			}
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the live object and lock counts used to decide unloading",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := &shellext.Module
			fmt.Fprintf(cmd.OutOrStdout(), "objects=%d locks=%d unload=%t\n",
				m.Objects(), m.Locks(), m.CanUnload())
			return nil
		},
	}
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// globalFlags holds the persistent flags shared by all subcommands.
type globalFlags struct {
	cfgFile string
	verbose bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "tagtree",
		Short: "Parse XML-like markup into a tree",
		Long: `tagtree parses XML-like markup documents into a tree of elements and
prints the tree as JSON, YAML or normalized markup.

The parser tolerates irregular whitespace and mixed quoting, skips comments,
and keeps an optional leading <?xml ...?> declaration. It does not decode
entities or interpret DTDs and namespaces.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&g.cfgFile, "config", "c", "", "config file path (YAML)")
	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(newParseCmd(g))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger returns a text logger writing to w, at debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

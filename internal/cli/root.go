package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the information displayed by --version; main injects
// the values via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute builds the command tree and runs it under ctx.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "lvldense",
		Short:        "lvldense runs classical graph algorithms over dense-index graphs",
		Long:         `lvldense generates, inspects and analyzes graphs whose vertices are dense integer indices: traversal, connectivity, ordering, shortest paths and spanning forests from the command line.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("lvldense %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newInfoCmd())

	return root.ExecuteContext(ctx)
}

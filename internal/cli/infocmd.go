package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvldense/connectivity"
	"github.com/katalvlaran/lvldense/cycle"
	"github.com/katalvlaran/lvldense/scc"
	"github.com/katalvlaran/lvldense/symgraph"
)

// newInfoCmd creates the info command: print the structural profile of a
// delimited symbol graph.
func newInfoCmd() *cobra.Command {
	opts := runOpts{delimiter: " "}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the structural profile of a delimited symbol graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.applyConfig(cmd); err != nil {
				return err
			}
			f, err := os.Open(opts.input)
			if err != nil {
				return errors.Wrapf(err, "open %s", opts.input)
			}
			defer f.Close()

			if opts.directed {
				return infoDirected(cmd.OutOrStdout(), f, &opts)
			}

			return infoUndirected(cmd.OutOrStdout(), f, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input file (required)")
	cmd.Flags().StringVarP(&opts.delimiter, "delimiter", "d", opts.delimiter, "field delimiter")
	cmd.Flags().BoolVar(&opts.directed, "directed", false, "treat edges as directed")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// infoUndirected profiles an undirected input: size, degeneracies,
// component count, bipartiteness and acyclicity.
func infoUndirected(out io.Writer, r io.Reader, opts *runOpts) error {
	sg, err := symgraph.New(r, opts.delimiter)
	if err != nil {
		return err
	}
	g := sg.Graph()

	cc, err := connectivity.NewComponents(g)
	if err != nil {
		return err
	}
	bp, err := connectivity.NewBipartite(g)
	if err != nil {
		return err
	}
	w, err := cycle.Undirected(g)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "vertices:   %d\n", g.V())
	fmt.Fprintf(out, "edges:      %d\n", g.E())
	fmt.Fprintf(out, "self-loops: %d\n", g.Loops())
	fmt.Fprintf(out, "parallel:   %d\n", g.Parallels())
	fmt.Fprintf(out, "components: %d\n", cc.Count())
	fmt.Fprintf(out, "bipartite:  %v\n", bp.IsBipartite())
	fmt.Fprintf(out, "acyclic:    %v\n", !w.HasCycle())

	return nil
}

// infoDirected profiles a directed input: size, degeneracies, strong
// component count and acyclicity.
func infoDirected(out io.Writer, r io.Reader, opts *runOpts) error {
	sg, err := symgraph.NewDigraph(r, opts.delimiter)
	if err != nil {
		return err
	}
	g := sg.Graph()

	s, err := scc.Tarjan(g)
	if err != nil {
		return err
	}
	w, err := cycle.Directed(g)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "vertices:   %d\n", g.V())
	fmt.Fprintf(out, "edges:      %d\n", g.E())
	fmt.Fprintf(out, "self-loops: %d\n", g.Loops())
	fmt.Fprintf(out, "parallel:   %d\n", g.Parallels())
	fmt.Fprintf(out, "strong:     %d\n", s.Count())
	fmt.Fprintf(out, "acyclic:    %v\n", !w.HasCycle())

	return nil
}

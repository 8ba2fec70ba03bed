package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvldense/connectivity"
	"github.com/katalvlaran/lvldense/scc"
	"github.com/katalvlaran/lvldense/symgraph"
	"github.com/katalvlaran/lvldense/toposort"
	"github.com/katalvlaran/lvldense/traverse"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	input      string
	delimiter  string
	directed   bool
	from       string // bfs source vertex name
	to         string // bfs target vertex name
	configPath string
}

// applyConfig fills unset flags from the [run] section of a config file.
func (o *runOpts) applyConfig(cmd *cobra.Command) error {
	if o.configPath == "" {
		return nil
	}
	c, err := loadConfig(o.configPath)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("delimiter") && c.Run.Delimiter != "" {
		o.delimiter = c.Run.Delimiter
	}
	if !cmd.Flags().Changed("directed") {
		o.directed = c.Run.Directed
	}

	return nil
}

// newRunCmd creates the run command: load a delimited symbol graph and
// run one algorithm over it.
func newRunCmd() *cobra.Command {
	opts := runOpts{delimiter: " "}

	cmd := &cobra.Command{
		Use:       "run {components|bfs|topo|scc}",
		Short:     "Run an algorithm over a delimited symbol graph",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"components", "bfs", "topo", "scc"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.applyConfig(cmd); err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			logger.Debugf("loading %s (delimiter %q, directed %v)",
				opts.input, opts.delimiter, opts.directed)

			f, err := os.Open(opts.input)
			if err != nil {
				return errors.Wrapf(err, "open %s", opts.input)
			}
			defer f.Close()

			out := cmd.OutOrStdout()
			switch args[0] {
			case "components":
				return runComponents(out, f, &opts)
			case "bfs":
				return runBFS(out, f, &opts)
			case "topo":
				return runTopo(out, f, &opts)
			case "scc":
				return runSCC(out, f, &opts)
			default:
				return errors.Errorf("unknown algorithm %q", args[0])
			}
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input file (required)")
	cmd.Flags().StringVarP(&opts.delimiter, "delimiter", "d", opts.delimiter, "field delimiter")
	cmd.Flags().BoolVar(&opts.directed, "directed", false, "treat edges as directed")
	cmd.Flags().StringVar(&opts.from, "from", "", "source vertex name (bfs)")
	cmd.Flags().StringVar(&opts.to, "to", "", "target vertex name (bfs)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// runComponents prints the connected components of an undirected input.
func runComponents(out io.Writer, r io.Reader, opts *runOpts) error {
	if opts.directed {
		return errors.New("components requires an undirected graph; drop --directed")
	}
	sg, err := symgraph.New(r, opts.delimiter)
	if err != nil {
		return err
	}
	cc, err := connectivity.NewComponents(sg.Graph())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%d components\n", cc.Count())
	for v := 0; v < sg.V(); v++ {
		id, errID := cc.ID(v)
		if errID != nil {
			return errID
		}
		if id != v {
			continue // only representatives get a line
		}
		size, errSize := cc.Size(v)
		if errSize != nil {
			return errSize
		}
		name, errName := sg.Name(v)
		if errName != nil {
			return errName
		}
		fmt.Fprintf(out, "%s: %d vertices\n", name, size)
	}

	return nil
}

// runBFS prints the hop distance and path between two named vertices.
func runBFS(out io.Writer, r io.Reader, opts *runOpts) error {
	if opts.from == "" || opts.to == "" {
		return errors.New("bfs requires --from and --to")
	}

	var (
		g     traverse.Unweighted
		names interface {
			Index(string) (int, error)
			Name(int) (string, error)
		}
	)
	if opts.directed {
		sg, err := symgraph.NewDigraph(r, opts.delimiter)
		if err != nil {
			return err
		}
		g, names = sg.Graph(), sg
	} else {
		sg, err := symgraph.New(r, opts.delimiter)
		if err != nil {
			return err
		}
		g, names = sg.Graph(), sg
	}

	s, err := names.Index(opts.from)
	if err != nil {
		return err
	}
	t, err := names.Index(opts.to)
	if err != nil {
		return err
	}
	paths, err := traverse.BFS(g, s)
	if err != nil {
		return err
	}
	ok, err := paths.HasPathTo(t)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(out, "%s is unreachable from %s\n", opts.to, opts.from)

		return nil
	}

	hops, err := paths.DistTo(t)
	if err != nil {
		return err
	}
	path, err := paths.PathTo(t)
	if err != nil {
		return err
	}
	hopNames := make([]string, len(path))
	for i, v := range path {
		if hopNames[i], err = names.Name(v); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "%d hops: %s\n", hops, strings.Join(hopNames, " -> "))

	return nil
}

// runTopo prints a topological order of a directed input, or reports the
// absence of one.
func runTopo(out io.Writer, r io.Reader, opts *runOpts) error {
	if !opts.directed {
		return errors.New("topo requires --directed")
	}
	sg, err := symgraph.NewDigraph(r, opts.delimiter)
	if err != nil {
		return err
	}
	o, err := toposort.Kahn(sg.Graph())
	if err != nil {
		return err
	}
	if !o.HasOrder() {
		fmt.Fprintln(out, "no topological order: the digraph is cyclic")

		return nil
	}

	names := make([]string, 0, sg.V())
	for _, v := range o.Order() {
		name, errName := sg.Name(v)
		if errName != nil {
			return errName
		}
		names = append(names, name)
	}
	fmt.Fprintln(out, strings.Join(names, " "))

	return nil
}

// runSCC prints the strong components of a directed input.
func runSCC(out io.Writer, r io.Reader, opts *runOpts) error {
	if !opts.directed {
		return errors.New("scc requires --directed")
	}
	sg, err := symgraph.NewDigraph(r, opts.delimiter)
	if err != nil {
		return err
	}
	s, err := scc.Tarjan(sg.Graph())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%d strong components\n", s.Count())
	groups := make([][]string, s.Count())
	for v := 0; v < sg.V(); v++ {
		id, errID := s.ID(v)
		if errID != nil {
			return errID
		}
		name, errName := sg.Name(v)
		if errName != nil {
			return errName
		}
		groups[id] = append(groups[id], name)
	}
	for _, grp := range groups {
		fmt.Fprintln(out, strings.Join(grp, " "))
	}

	return nil
}

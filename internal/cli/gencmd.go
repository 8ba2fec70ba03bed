package cli

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvldense/gen"
)

// genOpts holds the command-line flags for the gen command.
type genOpts struct {
	kind       string // graph | digraph | weighted | wdigraph
	vertices   int
	edges      int
	seed       int64
	output     string // output file path, stdout when empty
	configPath string
}

// applyConfig fills unset flags from the [gen] section of a config file.
func (o *genOpts) applyConfig(cmd *cobra.Command) error {
	if o.configPath == "" {
		return nil
	}
	c, err := loadConfig(o.configPath)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("kind") && c.Gen.Kind != "" {
		o.kind = c.Gen.Kind
	}
	if !cmd.Flags().Changed("vertices") && c.Gen.Vertices != 0 {
		o.vertices = c.Gen.Vertices
	}
	if !cmd.Flags().Changed("edges") && c.Gen.Edges != 0 {
		o.edges = c.Gen.Edges
	}
	if !cmd.Flags().Changed("seed") && c.Gen.Seed != 0 {
		o.seed = c.Gen.Seed
	}

	return nil
}

// newGenCmd creates the gen command: write a random graph dump.
func newGenCmd() *cobra.Command {
	opts := genOpts{kind: "graph", vertices: 10, edges: 20, seed: 1}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random graph and write its textual dump",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.applyConfig(cmd); err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			logger.Debugf("generating %s V=%d E=%d seed=%d",
				opts.kind, opts.vertices, opts.edges, opts.seed)

			rng := rand.New(rand.NewSource(opts.seed))
			dump, err := generate(rng, &opts)
			if err != nil {
				return err
			}

			if opts.output == "" {
				fmt.Fprint(cmd.OutOrStdout(), dump)

				return nil
			}
			if err := os.WriteFile(opts.output, []byte(dump), 0o644); err != nil {
				return errors.Wrapf(err, "write %s", opts.output)
			}
			logger.Infof("wrote %s", opts.output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", opts.kind,
		"graph kind: graph, digraph, weighted or wdigraph")
	cmd.Flags().IntVarP(&opts.vertices, "vertices", "n", opts.vertices, "vertex count")
	cmd.Flags().IntVarP(&opts.edges, "edges", "e", opts.edges, "edge count")
	cmd.Flags().Int64VarP(&opts.seed, "seed", "s", opts.seed, "random seed")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")

	return cmd
}

// generate dispatches on the requested kind and renders the dump.
func generate(rng *rand.Rand, opts *genOpts) (string, error) {
	switch opts.kind {
	case "graph":
		g, err := gen.Simple(rng, opts.vertices, opts.edges)
		if err != nil {
			return "", err
		}

		return g.String(), nil
	case "digraph":
		g, err := gen.SimpleDigraph(rng, opts.vertices, opts.edges)
		if err != nil {
			return "", err
		}

		return g.String(), nil
	case "weighted":
		g, err := gen.EdgeWeighted(rng, opts.vertices, opts.edges)
		if err != nil {
			return "", err
		}

		return g.String(), nil
	case "wdigraph":
		g, err := gen.EdgeWeightedDigraph(rng, opts.vertices, opts.edges)
		if err != nil {
			return "", err
		}

		return g.String(), nil
	default:
		return "", errors.Errorf("unknown kind %q (want graph, digraph, weighted or wdigraph)", opts.kind)
	}
}

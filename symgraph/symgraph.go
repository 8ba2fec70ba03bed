// Package symgraph builds dense-index graphs from delimited text where
// vertices are named by strings instead of integers.
//
// Input is one record per line, fields split on a caller-chosen
// delimiter: the first field names a vertex, every following field names
// a neighbor. Names are interned into dense indices through an ordered
// symbol table, so the same input always produces the same index
// assignment (first-appearance order), and lookups back and forth are
// cheap.
//
// Both orientations are supported: New produces an undirected Graph,
// NewDigraph a Digraph with edges pointing from the first field to each
// following field.
package symgraph

import (
	"bufio"
	"io"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvldense/core"
)

// Sentinel errors for symbol graph construction and queries.
var (
	// ErrNilReader is returned when a nil input reader is supplied.
	ErrNilReader = errors.New("symgraph: reader is nil")

	// ErrEmptyDelimiter is returned when the delimiter is empty.
	ErrEmptyDelimiter = errors.New("symgraph: delimiter is empty")

	// ErrUnknownName is returned by Index for a name absent from the input.
	ErrUnknownName = errors.New("symgraph: unknown vertex name")

	// ErrVertexRange is returned by Name for an index outside [0, V).
	ErrVertexRange = errors.New("symgraph: vertex out of range")
)

// SymbolGraph is an undirected graph whose vertices carry string names.
type SymbolGraph struct {
	symbols
	graph *core.Graph
}

// Graph returns the underlying dense-index graph.
func (sg *SymbolGraph) Graph() *core.Graph { return sg.graph }

// SymbolDigraph is a digraph whose vertices carry string names.
type SymbolDigraph struct {
	symbols
	graph *core.Digraph
}

// Graph returns the underlying dense-index digraph.
func (sg *SymbolDigraph) Graph() *core.Digraph { return sg.graph }

// symbols is the shared two-way name↔index table.
type symbols struct {
	st   *redblacktree.Tree // name → index
	keys []string           // index → name
}

// V returns the number of distinct names seen.
func (s *symbols) V() int { return len(s.keys) }

// Contains reports whether name appeared in the input.
func (s *symbols) Contains(name string) bool {
	_, ok := s.st.Get(name)

	return ok
}

// Index returns the dense index assigned to name.
func (s *symbols) Index(name string) (int, error) {
	v, ok := s.st.Get(name)
	if !ok {
		return 0, errors.Wrapf(ErrUnknownName, "Index(%q)", name)
	}

	return v.(int), nil
}

// Name returns the name assigned to dense index v.
func (s *symbols) Name(v int) (string, error) {
	if v < 0 || v >= len(s.keys) {
		return "", errors.Wrapf(ErrVertexRange, "Name(%d): not in [0,%d)", v, len(s.keys))
	}

	return s.keys[v], nil
}

// intern returns the index of name, assigning the next one on first sight.
func (s *symbols) intern(name string) int {
	if v, ok := s.st.Get(name); ok {
		return v.(int)
	}
	idx := len(s.keys)
	s.st.Put(name, idx)
	s.keys = append(s.keys, name)

	return idx
}

// record is one parsed input line: a vertex and its neighbors, as indices.
type record struct {
	v     int
	heads []int
}

// New reads delimited records from r and builds an undirected symbol
// graph: each line contributes an edge from its first field to every
// following field. Blank lines are skipped.
func New(r io.Reader, delimiter string) (*SymbolGraph, error) {
	recs, syms, err := parse(r, delimiter)
	if err != nil {
		return nil, err
	}

	g, err := core.NewGraph(syms.V())
	if err != nil {
		return nil, errors.Wrap(err, "symgraph.New")
	}
	for _, rec := range recs {
		for _, w := range rec.heads {
			if err = g.AddEdge(rec.v, w); err != nil {
				return nil, errors.Wrap(err, "symgraph.New")
			}
		}
	}

	return &SymbolGraph{symbols: *syms, graph: g}, nil
}

// NewDigraph is the directed counterpart of New: edges point from the
// first field of each line to every following field.
func NewDigraph(r io.Reader, delimiter string) (*SymbolDigraph, error) {
	recs, syms, err := parse(r, delimiter)
	if err != nil {
		return nil, err
	}

	g, err := core.NewDigraph(syms.V())
	if err != nil {
		return nil, errors.Wrap(err, "symgraph.NewDigraph")
	}
	for _, rec := range recs {
		for _, w := range rec.heads {
			if err = g.AddEdge(rec.v, w); err != nil {
				return nil, errors.Wrap(err, "symgraph.NewDigraph")
			}
		}
	}

	return &SymbolDigraph{symbols: *syms, graph: g}, nil
}

// parse interns every name and collects the edge records. Two passes are
// folded into one: the vertex count is only known at the end, so edges
// are buffered as index records and replayed by the callers.
func parse(r io.Reader, delimiter string) ([]record, *symbols, error) {
	if r == nil {
		return nil, nil, ErrNilReader
	}
	if delimiter == "" {
		return nil, nil, ErrEmptyDelimiter
	}

	syms := &symbols{st: redblacktree.NewWithStringComparator()}
	var recs []record
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, delimiter)
		rec := record{v: syms.intern(fields[0])}
		for _, name := range fields[1:] {
			rec.heads = append(rec.heads, syms.intern(name))
		}
		recs = append(recs, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "symgraph: read input")
	}

	return recs, syms, nil
}

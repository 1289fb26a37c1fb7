package flow

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pennant/core"
)

// Algorithm selects a max-flow implementation.
type Algorithm int

const (
	// AlgorithmEdmondsKarp is BFS shortest augmenting paths (the default).
	AlgorithmEdmondsKarp Algorithm = iota
	// AlgorithmDinic is level graph + blocking flow.
	AlgorithmDinic
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmEdmondsKarp:
		return "edmonds-karp"
	case AlgorithmDinic:
		return "dinic"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a configuration name to an Algorithm.
// The empty string selects AlgorithmEdmondsKarp.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "edmonds-karp", "edmondskarp", "ek":
		return AlgorithmEdmondsKarp, nil
	case "dinic":
		return AlgorithmDinic, nil
	default:
		return 0, fmt.Errorf("flow: unknown algorithm %q", name)
	}
}

// MaxFlow dispatches to the implementation selected by a.
func (a Algorithm) MaxFlow(g *core.Graph, source, sink string, opts FlowOptions) (*Result, error) {
	switch a {
	case AlgorithmDinic:
		return Dinic(g, source, sink, opts)
	case AlgorithmEdmondsKarp:
		return EdmondsKarp(g, source, sink, opts)
	default:
		return nil, fmt.Errorf("flow: unknown algorithm %s", a)
	}
}

package elimination

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/pennant/division"
	"github.com/katalvlaran/pennant/flow"
	"github.com/katalvlaran/pennant/logging"
)

// Method records which check settled a team's status.
type Method int

const (
	// MethodNone means the team is not eliminated.
	MethodNone Method = iota
	// MethodTrivial means some team already has more wins than the candidate can reach.
	MethodTrivial
	// MethodFlow means the max-flow check found the candidate eliminated.
	MethodFlow
)

func (m Method) String() string {
	switch m {
	case MethodTrivial:
		return "trivial"
	case MethodFlow:
		return "flow"
	default:
		return "none"
	}
}

// MarshalText encodes the method by name.
func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Result is the settled status of one team.
// Certificate is nil when the team is not eliminated; otherwise it lists
// the teams of R in division order.
type Result struct {
	Team        string   `json:"team"`
	Eliminated  bool     `json:"eliminated"`
	Certificate []string `json:"certificate,omitempty"`
	Method      Method   `json:"method"`
}

func (r Result) clone() Result {
	if r.Certificate != nil {
		r.Certificate = append([]string(nil), r.Certificate...)
	}

	return r
}

// Option configures an Engine.
type Option func(*Engine)

// WithAlgorithm selects the max-flow algorithm (default Edmonds–Karp).
func WithAlgorithm(a flow.Algorithm) Option {
	return func(e *Engine) { e.algorithm = a }
}

// WithLogger sets the logger; nil keeps the engine silent.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine answers elimination queries for one Division.
type Engine struct {
	div       *division.Division
	teams     []division.Team
	algorithm flow.Algorithm
	logger    *slog.Logger

	memo []entry
}

type entry struct {
	once sync.Once
	res  Result
	err  error
}

// New returns an Engine over d. Nothing is computed until the first query.
func New(d *division.Division, opts ...Option) *Engine {
	e := &Engine{
		div:       d,
		teams:     d.Teams(),
		algorithm: flow.AlgorithmEdmondsKarp,
		logger:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.memo = make([]entry, len(e.teams))

	return e
}

// Division returns the division the engine was built over.
func (e *Engine) Division() *division.Division {
	return e.div
}

// IsEliminated reports whether the named team is mathematically eliminated.
func (e *Engine) IsEliminated(name string) (bool, error) {
	r, err := e.Result(name)
	if err != nil {
		return false, err
	}

	return r.Eliminated, nil
}

// CertificateOfElimination returns the teams that eliminate name, or nil
// if it is still alive.
func (e *Engine) CertificateOfElimination(name string) ([]string, error) {
	r, err := e.Result(name)
	if err != nil {
		return nil, err
	}

	return r.Certificate, nil
}

// Result returns the full status of the named team, computing it on first use.
// An unknown name fails with division.ErrUnknownTeam.
func (e *Engine) Result(name string) (Result, error) {
	i, err := e.div.IndexOf(name)
	if err != nil {
		return Result{}, err
	}

	return e.resultAt(i)
}

// Results returns every team's status in division order.
func (e *Engine) Results() ([]Result, error) {
	out := make([]Result, len(e.teams))
	for i := range e.teams {
		r, err := e.resultAt(i)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return out, nil
}

func (e *Engine) resultAt(i int) (Result, error) {
	m := &e.memo[i]
	m.once.Do(func() {
		m.res, m.err = e.compute(i)
		if m.err != nil {
			e.logger.Error("elimination check failed", "team", e.teams[i].Name, "error", m.err)
			return
		}
		e.logger.Debug("team checked",
			"team", m.res.Team,
			"eliminated", m.res.Eliminated,
			"method", m.res.Method.String(),
			"certificate_size", len(m.res.Certificate),
		)
	})
	if m.err != nil {
		return Result{}, m.err
	}

	return m.res.clone(), nil
}

// compute runs the trivial check and, if it is inconclusive, the flow check.
func (e *Engine) compute(t int) (Result, error) {
	cand := e.teams[t]
	res := Result{Team: cand.Name}

	for i, other := range e.teams {
		if i != t && cand.MaxWins() < other.Wins {
			res.Certificate = append(res.Certificate, other.Name)
		}
	}
	if len(res.Certificate) > 0 {
		res.Eliminated, res.Method = true, MethodTrivial
		return res, nil
	}

	net, err := BuildNetwork(e.div, t)
	if err != nil {
		return Result{}, err
	}
	opts := flow.DefaultOptions()
	opts.Logger = e.logger.With("team", cand.Name)
	mf, err := e.algorithm.MaxFlow(net.Graph, net.Source, net.Sink, opts)
	if err != nil {
		return Result{}, fmt.Errorf("elimination: max flow for %q: %w", cand.Name, err)
	}
	if mf.Value >= net.TotalOtherRemaining {
		return res, nil
	}

	for i, v := range net.TeamVertices {
		if v != "" && mf.InSourceSide(v) {
			res.Certificate = append(res.Certificate, e.teams[i].Name)
		}
	}
	res.Eliminated, res.Method = true, MethodFlow

	return res, nil
}

package elimination

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pennant/division"
)

// ErrInvalidCertificate is returned for an empty certificate, one naming the
// team itself, or one naming a team twice.
var ErrInvalidCertificate = errors.New("elimination: invalid certificate")

// Proof is the arithmetic behind a certificate R for team t.
//
// Wins is the sum of wins over R, Games the games left among teams of R,
// Size is |R| and MaxWins is wins(t)+remaining(t).
type Proof struct {
	Wins    int `json:"wins"`
	Games   int `json:"games"`
	Size    int `json:"size"`
	MaxWins int `json:"max_wins"`
}

// Holds reports whether R's teams average more final wins than t can reach:
// (Wins+Games)/Size > MaxWins.
func (p Proof) Holds() bool {
	return p.Size > 0 && p.Wins+p.Games > p.MaxWins*p.Size
}

// VerifyCertificate computes the Proof of cert against team in d.
// Unknown names fail with division.ErrUnknownTeam.
func VerifyCertificate(d *division.Division, team string, cert []string) (Proof, error) {
	t, err := d.IndexOf(team)
	if err != nil {
		return Proof{}, err
	}
	if len(cert) == 0 {
		return Proof{}, fmt.Errorf("%w: empty", ErrInvalidCertificate)
	}

	idx := make([]int, 0, len(cert))
	seen := make(map[int]bool, len(cert))
	for _, name := range cert {
		i, err := d.IndexOf(name)
		if err != nil {
			return Proof{}, err
		}
		if i == t || seen[i] {
			return Proof{}, fmt.Errorf("%w: %q", ErrInvalidCertificate, name)
		}
		seen[i] = true
		idx = append(idx, i)
	}

	cand, _ := d.Team(t)
	p := Proof{Size: len(idx), MaxWins: cand.MaxWins()}
	for a, i := range idx {
		w, _ := d.Wins(i)
		p.Wins += w
		for _, j := range idx[a+1:] {
			g, _ := d.Against(i, j)
			p.Games += g
		}
	}

	return p, nil
}

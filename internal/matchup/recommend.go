package matchup

import (
	"fmt"
	"sort"

	"pokecalc-service/internal/domain/pokemon"
)

const (
	DefaultSize  = 3
	DefaultLimit = 3
	MaxRoster    = 6
)

// Options controls the sub-team size and how many ranked results to keep.
// Zero values fall back to DefaultSize and DefaultLimit.
type Options struct {
	Size  int
	Limit int
}

func (o Options) normalized() Options {
	if o.Size <= 0 {
		o.Size = DefaultSize
	}
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	return o
}

// Combination is one candidate sub-team.
type Combination struct {
	Members []string `json:"members"`
	Indices []int    `json:"indices"`
	Score   float64  `json:"score"`
}

// Recommendation is the ranked output of Recommend.
type Recommendation struct {
	Size         int           `json:"size"`
	Evaluated    int           `json:"evaluated"`
	Combinations []Combination `json:"combinations"`
	Scores       []MemberScore `json:"scores"`
}

// Recommend enumerates every Size-member subset of mine, sums the members'
// scores against the whole enemy roster, and returns the best Limit subsets.
// Equal scores keep generation order, which follows roster order.
func Recommend(mine, enemy []Member, opts Options) (Recommendation, error) {
	opts = opts.normalized()
	if len(mine) > MaxRoster {
		return Recommendation{}, fmt.Errorf("%w: %d members, at most %d", pokemon.ErrRosterTooLarge, len(mine), MaxRoster)
	}
	if len(enemy) == 0 {
		return Recommendation{}, pokemon.ErrEmptyOpponentRoster
	}
	if len(mine) < opts.Size {
		return Recommendation{}, fmt.Errorf("%w: need %d members, have %d", pokemon.ErrInsufficientRosterSize, opts.Size, len(mine))
	}

	scores := Score(mine, enemy)
	var ranked []Combination
	Combinations(len(mine), opts.Size, func(idx []int) {
		c := Combination{
			Members: make([]string, len(idx)),
			Indices: append([]int(nil), idx...),
		}
		for i, k := range idx {
			c.Members[i] = scores[k].Name
			c.Score += scores[k].Score
		}
		ranked = append(ranked, c)
	})

	evaluated := len(ranked)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	if len(ranked) > opts.Limit {
		ranked = ranked[:opts.Limit]
	}
	return Recommendation{
		Size:         opts.Size,
		Evaluated:    evaluated,
		Combinations: ranked,
		Scores:       scores,
	}, nil
}

// Combinations calls fn with every k-subset of [0, n) in lexicographic order.
// The slice passed to fn is reused between calls.
func Combinations(n, k int, fn func([]int)) {
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

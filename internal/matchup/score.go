// Package matchup scores rosters against each other by type advantage and
// ranks sub-team selections.
//
// Offensive pressure sums across the attacker's types but multiplies across
// the defender's types. A dual-typed attacker is modelled as carrying one STAB
// move of each type, while each of those moves hits both defending types at once.
package matchup

import (
	"sort"

	"pokecalc-service/internal/domain/pokemon"
	"pokecalc-service/internal/typechart"
)

// Verdict thresholds on an aggregate score.
const (
	FavorableThreshold   = 3.0
	UnfavorableThreshold = -3.0
)

// Verdict classes an aggregate score.
type Verdict string

const (
	Favorable   Verdict = "favorable"
	Neutral     Verdict = "neutral"
	Unfavorable Verdict = "unfavorable"
)

// Classify maps a score onto a verdict.
func Classify(score float64) Verdict {
	switch {
	case score > FavorableThreshold:
		return Favorable
	case score < UnfavorableThreshold:
		return Unfavorable
	default:
		return Neutral
	}
}

// Member is one roster slot. Missing marks a slot whose data could not be resolved.
type Member struct {
	Name    string
	Types   []pokemon.Type
	Missing bool
}

// MemberScore is the advantage of one member over a whole opposing roster.
type MemberScore struct {
	Name    string         `json:"name"`
	Types   []pokemon.Type `json:"types"`
	Score   float64        `json:"score"`
	Verdict Verdict        `json:"verdict"`
	Missing bool           `json:"missing,omitempty"`
}

// Offensive sums, over each attacking type, the product of its effectiveness
// against every defending type.
func Offensive(attacker, defender []pokemon.Type) float64 {
	total := 0.0
	for _, t := range attacker {
		total += typechart.Against(t, defender)
	}
	return total
}

// Pair is the net advantage of a over b: Offensive(a->b) - Offensive(b->a).
func Pair(a, b []pokemon.Type) float64 {
	return Offensive(a, b) - Offensive(b, a)
}

// Score returns one entry per member of mine, in roster order.
// Missing members score 0; missing opponents are skipped.
func Score(mine, enemy []Member) []MemberScore {
	scores := make([]MemberScore, 0, len(mine))
	for _, m := range mine {
		entry := MemberScore{Name: m.Name, Types: m.Types, Missing: m.Missing}
		if !m.Missing {
			for _, e := range enemy {
				if e.Missing {
					continue
				}
				entry.Score += Pair(m.Types, e.Types)
			}
		}
		entry.Verdict = Classify(entry.Score)
		scores = append(scores, entry)
	}
	return scores
}

// Analysis scores both rosters against each other.
type Analysis struct {
	Mine       []MemberScore `json:"mine"`
	Enemy      []MemberScore `json:"enemy"`
	MineTotal  float64       `json:"mineTotal"`
	EnemyTotal float64       `json:"enemyTotal"`
	Verdict    Verdict       `json:"verdict"`
	TopPicks   []MemberScore `json:"topPicks"`
	Threats    []MemberScore `json:"threats"`
}

const highlightCount = 3

// Analyze scores mine against enemy and enemy against mine, and highlights the
// strongest members on each side.
func Analyze(mine, enemy []Member) Analysis {
	a := Analysis{
		Mine:  Score(mine, enemy),
		Enemy: Score(enemy, mine),
	}
	a.MineTotal = total(a.Mine)
	a.EnemyTotal = total(a.Enemy)
	a.Verdict = Classify(a.MineTotal)
	a.TopPicks = best(a.Mine, highlightCount)
	a.Threats = best(a.Enemy, highlightCount)
	return a
}

func total(scores []MemberScore) float64 {
	sum := 0.0
	for _, s := range scores {
		sum += s.Score
	}
	return sum
}

// best returns the n highest scoring resolved entries, ties kept in roster order.
func best(scores []MemberScore, n int) []MemberScore {
	out := make([]MemberScore, 0, len(scores))
	for _, s := range scores {
		if !s.Missing {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

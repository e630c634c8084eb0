// Package matching scores candidates against opportunity requirements.
//
// Everything in this package is a pure function of its arguments. Nothing is
// cached between calls, so an Engine may be shared by any number of goroutines.
package matching

type Engine struct {
	scorer *Scorer
}

func NewEngine(w Weights) *Engine {
	return &Engine{scorer: NewScorer(w)}
}

func (e *Engine) Weights() Weights {
	return e.scorer.Weights()
}

func (e *Engine) MatchDetail(c CandidateProfile, o OpportunityRequirement) MatchResult {
	return e.scorer.Score(c, o)
}

// ScoreAndRank scores one candidate against every opportunity in the pool and
// returns the results best-first.
func (e *Engine) ScoreAndRank(c CandidateProfile, pool []OpportunityRequirement) []MatchResult {
	results := make([]MatchResult, 0, len(pool))
	for _, o := range pool {
		results = append(results, e.scorer.Score(c, o))
	}
	return Rank(results)
}

// RankCandidates scores an applicant pool against one opportunity. Ties keep the
// pool order.
func (e *Engine) RankCandidates(o OpportunityRequirement, pool []CandidateProfile) []MatchResult {
	results := make([]MatchResult, 0, len(pool))
	for _, c := range pool {
		results = append(results, e.scorer.Score(c, o))
	}
	return Rank(results)
}

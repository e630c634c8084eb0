package matching

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

var ErrInvalidWeights = errors.New("invalid match weights")

// Weights are the maximum points each component contributes to a score.
type Weights struct {
	Coverage    float64
	Proficiency float64
	GPA         float64
	Experience  float64
}

func DefaultWeights() Weights {
	return Weights{Coverage: 60, Proficiency: 20, GPA: 10, Experience: 10}
}

func (w Weights) Total() float64 {
	return w.Coverage + w.Proficiency + w.GPA + w.Experience
}

func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"coverage":    w.Coverage,
		"proficiency": w.Proficiency,
		"gpa":         w.GPA,
		"experience":  w.Experience,
	} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s weight must be a non-negative number", ErrInvalidWeights, name)
		}
	}
	if math.Abs(w.Total()-100) > 1e-9 {
		return fmt.Errorf("%w: weights sum to %.2f, want 100", ErrInvalidWeights, w.Total())
	}
	return nil
}

// Breakdown holds the points earned per component before rounding.
type Breakdown struct {
	Coverage    float64
	Proficiency float64
	GPA         float64
	Experience  float64
}

type MatchResult struct {
	CandidateID   uuid.UUID
	OpportunityID uuid.UUID
	Score         int
	MatchedSkills []MatchedSkill
	MissingSkills []MissingSkill
	CoverageRatio float64
	Breakdown     Breakdown
}

type Scorer struct {
	weights Weights
}

func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w}
}

func (s *Scorer) Weights() Weights {
	return s.weights
}

// Score is a pure function of its inputs: the same candidate and opportunity always
// produce the same result.
func (s *Scorer) Score(c CandidateProfile, o OpportunityRequirement) MatchResult {
	m := MatchSkills(c.Skills, o.RequiredSkills)
	w := s.weights

	b := Breakdown{
		Coverage:    m.CoverageRatio * w.Coverage,
		Proficiency: proficiencyRatio(m) * w.Proficiency,
		GPA:         gpaGate(c.GPA, o.MinGPA) * w.GPA,
		Experience:  experienceRatio(c.ExperienceYears, o.MinExperienceYears) * w.Experience,
	}

	total := b.Coverage + b.Proficiency + b.GPA + b.Experience
	score := clampInt(int(math.Round(total)), 0, 100)

	return MatchResult{
		CandidateID:   c.ID,
		OpportunityID: o.ID,
		Score:         score,
		MatchedSkills: m.Matched,
		MissingSkills: m.Missing,
		CoverageRatio: m.CoverageRatio,
		Breakdown:     b,
	}
}

var defaultScorer = NewScorer(DefaultWeights())

// Score uses DefaultWeights.
func Score(c CandidateProfile, o OpportunityRequirement) MatchResult {
	return defaultScorer.Score(c, o)
}

// proficiencyRatio averages min(1, candidate/required) over matched skills. An
// opportunity without skill requirements earns the full bonus; one whose
// requirements are all unmet earns nothing.
func proficiencyRatio(m SkillMatch) float64 {
	if len(m.Matched) == 0 {
		if len(m.Missing) == 0 {
			return 1
		}
		return 0
	}
	sum := 0.0
	for _, ms := range m.Matched {
		req := ms.Required
		if !req.Valid() {
			sum += 1
			continue
		}
		sum += math.Min(1, float64(ms.Proficiency)/float64(req))
	}
	return sum / float64(len(m.Matched))
}

// gpaGate is binary: GPA is an eligibility cutoff, not a preference.
func gpaGate(gpa float64, minGPA *float64) float64 {
	if minGPA == nil || math.IsNaN(*minGPA) {
		return 1
	}
	if math.IsNaN(gpa) {
		gpa = 0
	}
	if gpa < *minGPA {
		return 0
	}
	return 1
}

func experienceRatio(years int, minYears *int) float64 {
	if minYears == nil || *minYears <= 0 {
		return 1
	}
	if years <= 0 {
		return 0
	}
	return math.Min(1, float64(years)/float64(max(1, *minYears)))
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

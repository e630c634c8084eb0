package matching

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Proficiency is the ordinal skill level. The zero value is not a valid level and
// marks a malformed entry.
type Proficiency int

const (
	ProficiencyUnknown Proficiency = iota
	ProficiencyBeginner
	ProficiencyIntermediate
	ProficiencyAdvanced
	ProficiencyExpert
)

var proficiencyNames = map[Proficiency]string{
	ProficiencyBeginner:     "beginner",
	ProficiencyIntermediate: "intermediate",
	ProficiencyAdvanced:     "advanced",
	ProficiencyExpert:       "expert",
}

func (p Proficiency) Valid() bool {
	return p >= ProficiencyBeginner && p <= ProficiencyExpert
}

func (p Proficiency) String() string {
	if n, ok := proficiencyNames[p]; ok {
		return n
	}
	return "unknown"
}

// ParseProficiency accepts a level name in any case or its ordinal ("1".."4").
func ParseProficiency(s string) (Proficiency, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ProficiencyUnknown, false
	}
	for p, n := range proficiencyNames {
		if n == s {
			return p, true
		}
	}
	if v, err := strconv.Atoi(s); err == nil {
		p := Proficiency(v)
		if p.Valid() {
			return p, true
		}
	}
	return ProficiencyUnknown, false
}

func (p Proficiency) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText never fails: unknown labels decode to ProficiencyUnknown so that
// imperfect upstream records are scored as absent skills instead of rejected.
func (p *Proficiency) UnmarshalText(b []byte) error {
	v, _ := ParseProficiency(string(b))
	*p = v
	return nil
}

type Skill struct {
	Name        string      `json:"name"`
	Category    string      `json:"category,omitempty"`
	Proficiency Proficiency `json:"proficiency"`
}

type Requirement struct {
	Name           string      `json:"name"`
	MinProficiency Proficiency `json:"min_proficiency"`
}

type CandidateProfile struct {
	ID              uuid.UUID
	Skills          []Skill
	GPA             float64
	ExperienceYears int
	AppliedAt       time.Time
}

type OpportunityRequirement struct {
	ID                 uuid.UUID
	RequiredSkills     []Requirement
	MinGPA             *float64
	MinExperienceYears *int
	Type               string
	Location           string
	Department         string
}

package matching

type MissingReason string

const (
	MissingAbsent         MissingReason = "absent"
	MissingUnderQualified MissingReason = "under_qualified"
)

type MatchedSkill struct {
	Name        string
	Category    string
	Proficiency Proficiency
	Required    Proficiency
}

type MissingSkill struct {
	Name     string
	Required Proficiency
	Reason   MissingReason
	// Actual is ProficiencyUnknown when the candidate lacks the skill.
	Actual Proficiency
}

type SkillMatch struct {
	Matched       []MatchedSkill
	Missing       []MissingSkill
	CoverageRatio float64
}

// MatchSkills compares a candidate's skills with an opportunity's requirements.
// Entries with blank names are ignored on both sides; candidate entries with an
// unknown proficiency count as absent. Duplicate requirements collapse to the
// strictest minimum, duplicate candidate skills to the highest level.
func MatchSkills(candidate []Skill, required []Requirement) SkillMatch {
	reqs := normalizeRequirements(required)
	if len(reqs) == 0 {
		return SkillMatch{
			Matched:       []MatchedSkill{},
			Missing:       []MissingSkill{},
			CoverageRatio: 1,
		}
	}

	byName := indexCandidateSkills(candidate)

	matched := make([]MatchedSkill, 0, len(reqs))
	missing := make([]MissingSkill, 0)
	for _, r := range reqs {
		s, ok := byName[r.Name]
		if !ok {
			missing = append(missing, MissingSkill{Name: r.Name, Required: r.MinProficiency, Reason: MissingAbsent})
			continue
		}
		if s.Proficiency < r.MinProficiency {
			missing = append(missing, MissingSkill{
				Name:     r.Name,
				Required: r.MinProficiency,
				Reason:   MissingUnderQualified,
				Actual:   s.Proficiency,
			})
			continue
		}
		matched = append(matched, MatchedSkill{
			Name:        r.Name,
			Category:    s.Category,
			Proficiency: s.Proficiency,
			Required:    r.MinProficiency,
		})
	}

	return SkillMatch{
		Matched:       matched,
		Missing:       missing,
		CoverageRatio: float64(len(matched)) / float64(len(reqs)),
	}
}

func indexCandidateSkills(skills []Skill) map[string]Skill {
	out := make(map[string]Skill, len(skills))
	for _, s := range skills {
		name := NormalizeSkillName(s.Name)
		if name == "" || !s.Proficiency.Valid() {
			continue
		}
		if prev, ok := out[name]; ok && prev.Proficiency >= s.Proficiency {
			continue
		}
		s.Name = name
		out[name] = s
	}
	return out
}

// normalizeRequirements keeps first-seen order. A requirement without a valid
// minimum level is satisfied by any level.
func normalizeRequirements(reqs []Requirement) []Requirement {
	out := make([]Requirement, 0, len(reqs))
	seen := make(map[string]int, len(reqs))
	for _, r := range reqs {
		name := NormalizeSkillName(r.Name)
		if name == "" {
			continue
		}
		minLvl := r.MinProficiency
		if !minLvl.Valid() {
			minLvl = ProficiencyBeginner
		}
		if idx, ok := seen[name]; ok {
			if minLvl > out[idx].MinProficiency {
				out[idx].MinProficiency = minLvl
			}
			continue
		}
		seen[name] = len(out)
		out = append(out, Requirement{Name: name, MinProficiency: minLvl})
	}
	return out
}

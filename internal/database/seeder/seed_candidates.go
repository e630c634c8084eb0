package seeder

import (
	"context"
	"errors"
	"time"

	"talent-sync/internal/database"
	"talent-sync/internal/domain/candidate"
	"talent-sync/internal/domain/matching"
	"talent-sync/internal/repository"
)

type CandidatesSeeder struct{}

func (CandidatesSeeder) Name() string { return "candidates" }

type seedCandidate struct {
	candidate.Candidate
	// AppliesTo lists opportunity titles, in application order.
	AppliesTo []string
}

func skill(name string, p matching.Proficiency) matching.Skill {
	return matching.Skill{Name: name, Proficiency: p}
}

func seedCandidates() []seedCandidate {
	return []seedCandidate{
		{
			Candidate: candidate.Candidate{
				Name: "Ayu Lestari", Institution: "Universitas Indonesia", Program: "Computer Science", Location: "Jakarta",
				Bio:             "Backend-leaning student who enjoys databases.",
				Skills:          []matching.Skill{skill("golang", matching.ProficiencyAdvanced), skill("SQL", matching.ProficiencyIntermediate), skill("PostgreSQL", matching.ProficiencyIntermediate), skill("Docker", matching.ProficiencyBeginner)},
				GPA:             3.6,
				ExperienceYears: 1,
			},
			AppliesTo: []string{"Backend Engineering Intern", "Cloud Native Workshop"},
		},
		{
			Candidate: candidate.Candidate{
				Name: "Bima Pratama", Institution: "Institut Teknologi Bandung", Program: "Electrical Engineering", Location: "Bandung",
				Bio:             "Research assistant in a signal processing lab.",
				Skills:          []matching.Skill{skill("Python", matching.ProficiencyExpert), skill("DL", matching.ProficiencyIntermediate), skill("CV", matching.ProficiencyAdvanced), skill("Stats", matching.ProficiencyIntermediate)},
				GPA:             3.4,
				ExperienceYears: 2,
			},
			AppliesTo: []string{"Computer Vision Research Assistant", "Applied Statistics Research Fellow"},
		},
		{
			Candidate: candidate.Candidate{
				Name: "Citra Dewi", Institution: "Universitas Gadjah Mada", Program: "Information Systems", Location: "Yogyakarta",
				Bio:             "Frontend developer and hackathon regular.",
				Skills:          []matching.Skill{skill("JavaScript", matching.ProficiencyAdvanced), skill("ReactJS", matching.ProficiencyIntermediate), skill("SQL", matching.ProficiencyBeginner)},
				GPA:             3.1,
				ExperienceYears: 0,
			},
			AppliesTo: []string{"Frontend Developer Intern", "Backend Engineering Intern", "Data Analytics Bootcamp"},
		},
		{
			Candidate: candidate.Candidate{
				Name: "Dimas Saputra", Institution: "Universitas Brawijaya", Program: "Statistics", Location: "Malang",
				Bio:             "Statistics major moving into data analytics.",
				Skills:          []matching.Skill{skill("Statistics", matching.ProficiencyAdvanced), skill("MS Excel", matching.ProficiencyExpert), skill("Python", matching.ProficiencyBeginner)},
				GPA:             3.7,
				ExperienceYears: 0,
			},
			AppliesTo: []string{"Applied Statistics Research Fellow", "Data Analytics Bootcamp"},
		},
	}
}

func (CandidatesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "candidates", "id", "name", "gpa", "experience_years", "created_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "applications", "id", "candidate_id", "opportunity_id", "applied_at"); err != nil {
		return err
	}

	repo := repository.NewPostgresCandidateRepository(db)
	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	step := 0

	for _, sc := range seedCandidates() {
		c := sc.Candidate
		c.ID = seedID("candidate", c.Name)

		if _, err := repo.GetByID(ctx, c.ID); errors.Is(err, repository.ErrCandidateNotFound) {
			if _, err := repo.Create(ctx, c); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		for _, title := range sc.AppliesTo {
			appliedAt := base.Add(time.Duration(step) * 30 * time.Minute)
			step++
			if err := repo.Apply(ctx, c.ID, seedID("opportunity", title), appliedAt); err != nil {
				return err
			}
		}
	}
	return nil
}

package seeder

import (
	"context"
	"errors"
	"time"

	"talent-sync/internal/database"
	"talent-sync/internal/domain/matching"
	"talent-sync/internal/domain/opportunity"
	"talent-sync/internal/repository"
)

type OpportunitiesSeeder struct{}

func (OpportunitiesSeeder) Name() string { return "opportunities" }

func ptr[T any](v T) *T { return &v }

func req(name string, p matching.Proficiency) matching.Requirement {
	return matching.Requirement{Name: name, MinProficiency: p}
}

// seedOpportunities is ordered by creation time, which is also the tie order
// when match scores are equal.
func seedOpportunities() []opportunity.Opportunity {
	base := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	items := []opportunity.Opportunity{
		{
			Title:        "Backend Engineering Intern",
			Organization: "Nusantara Tech",
			Department:   "Platform",
			Description:  "Build and operate Go services backed by PostgreSQL.",
			Type:         opportunity.TypeInternship,
			Location:     "Jakarta, Indonesia",
			RequiredSkills: []matching.Requirement{
				req("Go", matching.ProficiencyIntermediate),
				req("SQL", matching.ProficiencyIntermediate),
				req("Docker", matching.ProficiencyBeginner),
			},
			MinGPA:     ptr(3.0),
			Internship: &opportunity.InternshipDetails{DurationMonths: ptr(6), Paid: true, Stipend: ptr("IDR 4.000.000 / month")},
		},
		{
			Title:        "Computer Vision Research Assistant",
			Organization: "Institut Teknologi Bandung",
			Department:   "School of Electrical Engineering",
			Description:  "Assist with dataset curation and model evaluation for medical imaging.",
			Type:         opportunity.TypeResearch,
			Location:     "Bandung, Indonesia",
			RequiredSkills: []matching.Requirement{
				req("Python", matching.ProficiencyAdvanced),
				req("Deep Learning", matching.ProficiencyIntermediate),
				req("Computer Vision", matching.ProficiencyIntermediate),
			},
			MinGPA:             ptr(3.25),
			MinExperienceYears: ptr(1),
			Research:           &opportunity.ResearchDetails{Supervisor: ptr("Dr. Sari Wulandari"), Lab: ptr("Medical Imaging Lab")},
		},
		{
			Title:        "Data Analytics Bootcamp",
			Organization: "Akademi Data",
			Department:   "Education",
			Description:  "Eight-week program covering SQL, spreadsheets and dashboarding.",
			Type:         opportunity.TypeTraining,
			Location:     "Remote",
			RequiredSkills: []matching.Requirement{
				req("Excel", matching.ProficiencyBeginner),
			},
			Training: &opportunity.TrainingDetails{Provider: ptr("Akademi Data"), Hours: ptr(120), Certificate: true},
		},
		{
			Title:        "Frontend Developer Intern",
			Organization: "Kopi Labs",
			Department:   "Product",
			Description:  "Ship React features for a consumer mobile web app.",
			Type:         opportunity.TypeInternship,
			Location:     "Yogyakarta, Indonesia",
			RequiredSkills: []matching.Requirement{
				req("JS", matching.ProficiencyIntermediate),
				req("TypeScript", matching.ProficiencyBeginner),
				req("React", matching.ProficiencyIntermediate),
			},
			Internship: &opportunity.InternshipDetails{DurationMonths: ptr(3), Remote: true},
		},
		{
			Title:        "Applied Statistics Research Fellow",
			Organization: "Universitas Indonesia",
			Department:   "Department of Mathematics",
			Description:  "Survey methodology and statistical modelling for public health data.",
			Type:         opportunity.TypeResearch,
			Location:     "Depok, Indonesia",
			RequiredSkills: []matching.Requirement{
				req("Statistics", matching.ProficiencyAdvanced),
				req("Python", matching.ProficiencyIntermediate),
				req("Technical Writing", matching.ProficiencyIntermediate),
			},
			MinGPA:             ptr(3.5),
			MinExperienceYears: ptr(2),
			Research:           &opportunity.ResearchDetails{FundingNote: ptr("Fully funded for 12 months")},
		},
		{
			Title:        "Cloud Native Workshop",
			Organization: "CNCF Jakarta",
			Department:   "Community",
			Description:  "Hands-on weekend workshop on containers and Kubernetes.",
			Type:         opportunity.TypeTraining,
			Location:     "Jakarta, Indonesia",
			RequiredSkills: []matching.Requirement{
				req("Docker", matching.ProficiencyBeginner),
				req("K8s", matching.ProficiencyBeginner),
			},
			Training: &opportunity.TrainingDetails{StartsAt: ptr(base.AddDate(0, 2, 0)), Hours: ptr(16)},
		},
	}

	for i := range items {
		items[i].ID = seedID("opportunity", items[i].Title)
		items[i].CreatedAt = base.Add(time.Duration(i) * time.Hour)
	}
	return items
}

func (OpportunitiesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "opportunities", "id", "title", "type", "details", "min_gpa", "created_at"); err != nil {
		return err
	}

	repo := repository.NewPostgresOpportunityRepository(db)
	for _, o := range seedOpportunities() {
		if _, err := repo.GetByID(ctx, o.ID); err == nil {
			continue
		} else if !errors.Is(err, repository.ErrOpportunityNotFound) {
			return err
		}
		if _, err := repo.Create(ctx, o); err != nil {
			return err
		}
	}
	return nil
}

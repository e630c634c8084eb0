package seeder

import (
	"context"

	"talent-sync/internal/database"
	"talent-sync/internal/repository"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "created_at"); err != nil {
		return err
	}

	items := []struct {
		Name     string
		Category string
	}{
		{Name: "Go", Category: "Programming Language"},
		{Name: "Python", Category: "Programming Language"},
		{Name: "JavaScript", Category: "Programming Language"},
		{Name: "TypeScript", Category: "Programming Language"},
		{Name: "SQL", Category: "Database"},
		{Name: "PostgreSQL", Category: "Database"},
		{Name: "Machine Learning", Category: "Data"},
		{Name: "Deep Learning", Category: "Data"},
		{Name: "Statistics", Category: "Data"},
		{Name: "Data Analytics", Category: "Data"},
		{Name: "Computer Vision", Category: "Data"},
		{Name: "React", Category: "Frontend"},
		{Name: "Docker", Category: "DevOps"},
		{Name: "Kubernetes", Category: "DevOps"},
		{Name: "Microsoft Excel", Category: "Productivity"},
		{Name: "Technical Writing", Category: "Communication"},
	}

	skills := repository.NewPostgresSkillRepository(db)
	for _, it := range items {
		if _, err := skills.UpsertSkill(ctx, it.Name, it.Category); err != nil {
			return err
		}
	}
	return nil
}

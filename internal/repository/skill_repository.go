package repository

import (
	"context"
	"errors"
	"strings"

	"talent-sync/internal/database"
	"talent-sync/internal/domain/matching"

	"github.com/google/uuid"
)

var ErrEmptySkillName = errors.New("empty skill name")

type Skill struct {
	ID       uuid.UUID
	Name     string
	Category string
}

type SkillRepository interface {
	GetAllSkills(ctx context.Context) ([]Skill, error)
	UpsertSkill(ctx context.Context, name, category string) (Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) GetAllSkills(ctx context.Context) ([]Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, COALESCE(category, '') FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertSkill stores the skill under its normalized name. An existing category is
// kept when the new one is empty.
func (r *PostgresSkillRepository) UpsertSkill(ctx context.Context, name, category string) (Skill, error) {
	id, normalized, err := upsertSkill(ctx, r.db, name, category)
	if err != nil {
		return Skill{}, err
	}
	return Skill{ID: id, Name: normalized, Category: strings.TrimSpace(category)}, nil
}

type rowQuerier interface {
	QueryRow(ctx context.Context, query string, args ...any) database.Row
}

func upsertSkill(ctx context.Context, q rowQuerier, name, category string) (uuid.UUID, string, error) {
	normalized := matching.NormalizeSkillName(name)
	if normalized == "" {
		return uuid.Nil, "", ErrEmptySkillName
	}

	var cat *string
	if c := strings.TrimSpace(category); c != "" {
		cat = &c
	}

	var id uuid.UUID
	row := q.QueryRow(ctx,
		`INSERT INTO skills (id, name, category)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (name) DO UPDATE SET category = COALESCE(EXCLUDED.category, skills.category)
		 RETURNING id`,
		uuid.New(), normalized, cat,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, "", err
	}
	return id, normalized, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

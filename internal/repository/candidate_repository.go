package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"talent-sync/internal/database"
	"talent-sync/internal/domain/candidate"
	"talent-sync/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, error)
	// ListApplicants returns earliest application first, with AppliedAt set.
	ListApplicants(ctx context.Context, opportunityID uuid.UUID) ([]candidate.Candidate, error)
}

type CandidateRepository interface {
	CandidateStore
	Create(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error)
	Apply(ctx context.Context, candidateID, opportunityID uuid.UUID, appliedAt time.Time) error
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, error) {
	row := r.db.QueryRow(ctx,
		`SELECT c.id, c.name, c.institution, c.program, c.location, c.bio, c.gpa, c.experience_years, c.created_at
		 FROM candidates c
		 WHERE c.id = $1`,
		id,
	)

	var c candidate.Candidate
	var exp int32
	if err := row.Scan(&c.ID, &c.Name, &c.Institution, &c.Program, &c.Location, &c.Bio, &c.GPA, &exp, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return candidate.Candidate{}, ErrCandidateNotFound
		}
		return candidate.Candidate{}, err
	}
	c.ExperienceYears = int(exp)

	skills, err := r.loadSkills(ctx, []uuid.UUID{c.ID})
	if err != nil {
		return candidate.Candidate{}, err
	}
	c.Skills = nonNilSkills(skills[c.ID])
	return c, nil
}

func (r *PostgresCandidateRepository) ListApplicants(ctx context.Context, opportunityID uuid.UUID) ([]candidate.Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.name, c.institution, c.program, c.location, c.bio, c.gpa, c.experience_years, c.created_at, a.applied_at
		 FROM applications a
		 JOIN candidates c ON c.id = a.candidate_id
		 WHERE a.opportunity_id = $1
		 ORDER BY a.applied_at ASC, a.id ASC`,
		opportunityID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Candidate, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var c candidate.Candidate
		var exp int32
		if err := rows.Scan(&c.ID, &c.Name, &c.Institution, &c.Program, &c.Location, &c.Bio, &c.GPA, &exp, &c.CreatedAt, &c.AppliedAt); err != nil {
			return nil, err
		}
		c.ExperienceYears = int(exp)
		out = append(out, c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	skills, err := r.loadSkills(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Skills = nonNilSkills(skills[out[i].ID])
	}
	return out, nil
}

func (r *PostgresCandidateRepository) loadSkills(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]matching.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT cs.candidate_id, s.name, COALESCE(s.category, ''), cs.proficiency
		 FROM candidate_skills cs
		 JOIN skills s ON s.id = cs.skill_id
		 WHERE cs.candidate_id = ANY($1::uuid[])
		 ORDER BY cs.candidate_id, s.name ASC`,
		uuidStrings(ids),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]matching.Skill, len(ids))
	for rows.Next() {
		var (
			candID uuid.UUID
			s      matching.Skill
			level  int16
		)
		if err := rows.Scan(&candID, &s.Name, &s.Category, &level); err != nil {
			return nil, err
		}
		s.Proficiency = matching.Proficiency(level)
		out[candID] = append(out[candID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts the candidate with its skills. Skills with a blank name or an
// unknown proficiency are not stored.
func (r *PostgresCandidateRepository) Create(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return candidate.Candidate{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO candidates (id, name, institution, program, location, bio, gpa, experience_years, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		c.ID, c.Name, c.Institution, c.Program, c.Location, c.Bio, c.GPA, c.ExperienceYears, c.CreatedAt,
	)
	if err != nil {
		return candidate.Candidate{}, err
	}

	for _, s := range c.Skills {
		if !s.Proficiency.Valid() {
			continue
		}
		skillID, _, err := upsertSkill(ctx, tx, s.Name, s.Category)
		if errors.Is(err, ErrEmptySkillName) {
			continue
		}
		if err != nil {
			return candidate.Candidate{}, err
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO candidate_skills (candidate_id, skill_id, proficiency)
			 VALUES ($1,$2,$3)
			 ON CONFLICT (candidate_id, skill_id) DO UPDATE SET
				proficiency = GREATEST(candidate_skills.proficiency, EXCLUDED.proficiency)`,
			c.ID, skillID, int16(s.Proficiency),
		)
		if err != nil {
			return candidate.Candidate{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return candidate.Candidate{}, err
	}
	return c, nil
}

func (r *PostgresCandidateRepository) Apply(ctx context.Context, candidateID, opportunityID uuid.UUID, appliedAt time.Time) error {
	if appliedAt.IsZero() {
		appliedAt = time.Now().UTC()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, candidate_id, opportunity_id, applied_at)
		 VALUES ($1,$2,$3,$4)
		 ON CONFLICT (candidate_id, opportunity_id) DO NOTHING`,
		uuid.New(), candidateID, opportunityID, appliedAt,
	)
	return err
}

func nonNilSkills(in []matching.Skill) []matching.Skill {
	if in == nil {
		return []matching.Skill{}
	}
	return in
}

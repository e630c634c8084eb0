package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"talent-sync/internal/database"
	"talent-sync/internal/domain/matching"
	"talent-sync/internal/domain/opportunity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrOpportunityNotFound = errors.New("opportunity not found")

// poolPageSize bounds one round trip while List walks the pool.
const poolPageSize = 500

// OpportunityStore returns active opportunities oldest first, so ties in a stable
// ranking go to the earlier posting. List with limit <= 0 returns the whole pool.
type OpportunityStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (opportunity.Opportunity, error)
	List(ctx context.Context, limit int) ([]opportunity.Opportunity, error)
}

type OpportunityRepository interface {
	OpportunityStore
	Create(ctx context.Context, o opportunity.Opportunity) (opportunity.Opportunity, error)
}

type PostgresOpportunityRepository struct {
	db       database.DB
	pageSize int
}

func NewPostgresOpportunityRepository(db database.DB) *PostgresOpportunityRepository {
	return &PostgresOpportunityRepository{db: db, pageSize: poolPageSize}
}

const opportunityColumns = `o.id, o.title, o.organization, o.department, o.description, o.type, o.location,
	o.min_gpa, o.min_experience_years, o.details, o.created_at`

func (r *PostgresOpportunityRepository) GetByID(ctx context.Context, id uuid.UUID) (opportunity.Opportunity, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+opportunityColumns+`
		 FROM opportunities o
		 WHERE o.id = $1 AND o.is_active = true`,
		id,
	)

	o, err := scanOpportunity(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return opportunity.Opportunity{}, ErrOpportunityNotFound
		}
		return opportunity.Opportunity{}, err
	}

	skills, err := r.loadRequirements(ctx, []uuid.UUID{o.ID})
	if err != nil {
		return opportunity.Opportunity{}, err
	}
	o.RequiredSkills = nonNilRequirements(skills[o.ID])
	return o, nil
}

// List walks the pool in keyset pages of pageSize rows ordered by
// (created_at, id), so no active opportunity is left out when limit <= 0.
func (r *PostgresOpportunityRepository) List(ctx context.Context, limit int) ([]opportunity.Opportunity, error) {
	pageSize := r.pageSize
	if pageSize <= 0 {
		pageSize = poolPageSize
	}

	out := make([]opportunity.Opportunity, 0)
	var after *opportunity.Opportunity
	for {
		n := pageSize
		if limit > 0 {
			remaining := limit - len(out)
			if remaining <= 0 {
				break
			}
			n = min(n, remaining)
		}

		page, err := r.listPage(ctx, after, n)
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if len(page) < n {
			break
		}
		after = &page[len(page)-1]
	}
	return out, nil
}

func (r *PostgresOpportunityRepository) listPage(ctx context.Context, after *opportunity.Opportunity, n int) ([]opportunity.Opportunity, error) {
	var (
		rows database.Rows
		err  error
	)
	if after == nil {
		rows, err = r.db.Query(ctx,
			`SELECT `+opportunityColumns+`
			 FROM opportunities o
			 WHERE o.is_active = true
			 ORDER BY o.created_at ASC, o.id ASC
			 LIMIT $1`,
			n,
		)
	} else {
		rows, err = r.db.Query(ctx,
			`SELECT `+opportunityColumns+`
			 FROM opportunities o
			 WHERE o.is_active = true AND (o.created_at, o.id) > ($1, $2)
			 ORDER BY o.created_at ASC, o.id ASC
			 LIMIT $3`,
			after.CreatedAt, after.ID, n,
		)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]opportunity.Opportunity, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	skills, err := r.loadRequirements(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].RequiredSkills = nonNilRequirements(skills[out[i].ID])
	}
	return out, nil
}

func (r *PostgresOpportunityRepository) loadRequirements(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]matching.Requirement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT os.opportunity_id, s.name, os.min_proficiency
		 FROM opportunity_skills os
		 JOIN skills s ON s.id = os.skill_id
		 WHERE os.opportunity_id = ANY($1::uuid[])
		 ORDER BY os.opportunity_id, os.position ASC, s.name ASC`,
		uuidStrings(ids),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]matching.Requirement, len(ids))
	for rows.Next() {
		var (
			oppID uuid.UUID
			name  string
			level int16
		)
		if err := rows.Scan(&oppID, &name, &level); err != nil {
			return nil, err
		}
		out[oppID] = append(out[oppID], matching.Requirement{Name: name, MinProficiency: matching.Proficiency(level)})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts the opportunity and its required skills in one transaction.
// Zero ID and CreatedAt are filled in.
func (r *PostgresOpportunityRepository) Create(ctx context.Context, o opportunity.Opportunity) (opportunity.Opportunity, error) {
	if err := o.Validate(); err != nil {
		return opportunity.Opportunity{}, err
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}

	details, err := encodeDetails(o)
	if err != nil {
		return opportunity.Opportunity{}, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return opportunity.Opportunity{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO opportunities (id, title, organization, department, description, type, location,
			min_gpa, min_experience_years, details, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		o.ID, o.Title, o.Organization, o.Department, o.Description, string(o.Type), o.Location,
		o.MinGPA, o.MinExperienceYears, details, o.CreatedAt,
	)
	if err != nil {
		return opportunity.Opportunity{}, err
	}

	for i, req := range o.RequiredSkills {
		skillID, _, err := upsertSkill(ctx, tx, req.Name, "")
		if errors.Is(err, ErrEmptySkillName) {
			continue
		}
		if err != nil {
			return opportunity.Opportunity{}, err
		}
		level := req.MinProficiency
		if !level.Valid() {
			level = matching.ProficiencyBeginner
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO opportunity_skills (opportunity_id, skill_id, min_proficiency, position)
			 VALUES ($1,$2,$3,$4)
			 ON CONFLICT (opportunity_id, skill_id) DO UPDATE SET
				min_proficiency = GREATEST(opportunity_skills.min_proficiency, EXCLUDED.min_proficiency)`,
			o.ID, skillID, int16(level), i,
		)
		if err != nil {
			return opportunity.Opportunity{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return opportunity.Opportunity{}, err
	}
	return o, nil
}

func scanOpportunity(row database.Row) (opportunity.Opportunity, error) {
	var (
		o       opportunity.Opportunity
		typ     string
		minGPA  *float64
		minExp  *int32
		details []byte
	)
	if err := row.Scan(
		&o.ID, &o.Title, &o.Organization, &o.Department, &o.Description, &typ, &o.Location,
		&minGPA, &minExp, &details, &o.CreatedAt,
	); err != nil {
		return opportunity.Opportunity{}, err
	}

	o.Type = opportunity.Type(typ)
	o.MinGPA = minGPA
	if minExp != nil {
		v := int(*minExp)
		o.MinExperienceYears = &v
	}
	if err := decodeDetails(&o, details); err != nil {
		return opportunity.Opportunity{}, fmt.Errorf("opportunity %s: %w", o.ID, err)
	}
	return o, nil
}

func encodeDetails(o opportunity.Opportunity) ([]byte, error) {
	var v any
	switch {
	case o.Internship != nil:
		v = o.Internship
	case o.Research != nil:
		v = o.Research
	case o.Training != nil:
		v = o.Training
	default:
		return nil, nil
	}
	return json.Marshal(v)
}

func decodeDetails(o *opportunity.Opportunity, raw []byte) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	switch o.Type {
	case opportunity.TypeInternship:
		o.Internship = &opportunity.InternshipDetails{}
		return json.Unmarshal(raw, o.Internship)
	case opportunity.TypeResearch:
		o.Research = &opportunity.ResearchDetails{}
		return json.Unmarshal(raw, o.Research)
	case opportunity.TypeTraining:
		o.Training = &opportunity.TrainingDetails{}
		return json.Unmarshal(raw, o.Training)
	default:
		return nil
	}
}

func nonNilRequirements(in []matching.Requirement) []matching.Requirement {
	if in == nil {
		return []matching.Requirement{}
	}
	return in
}

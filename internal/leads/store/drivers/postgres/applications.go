package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
)

type applicationsRepo struct {
	q querier
}

const applicationColumns = `id, name, email, phone, position, resume_url, message, created_at`

func scanApplication(row pgx.Row) (domain.JobApplication, error) {
	var (
		a      domain.JobApplication
		resume *string
	)
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.Position, &resume, &a.Message, &a.CreatedAt)
	a.ResumeURL = deref(resume)
	return a, err
}

func (r *applicationsRepo) CreateApplication(ctx context.Context, a domain.JobApplication) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO job_applications (`+applicationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.Name, a.Email, a.Phone, a.Position, nullable(a.ResumeURL), a.Message, a.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *applicationsRepo) GetApplicationByID(ctx context.Context, id string) (domain.JobApplication, error) {
	a, err := scanApplication(r.q.QueryRow(ctx, `SELECT `+applicationColumns+` FROM job_applications WHERE id = $1`, id))
	if err != nil {
		return domain.JobApplication{}, mapNotFound(err)
	}
	return a, nil
}

func (r *applicationsRepo) ListApplications(ctx context.Context, page domain.Page) ([]domain.JobApplication, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+applicationColumns+`
		FROM job_applications
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.JobApplication, 0, page.Limit)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *applicationsRepo) CountApplications(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM job_applications`).Scan(&n)
	return n, err
}

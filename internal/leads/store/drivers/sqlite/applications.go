package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
)

type applicationsRepo struct {
	q querier
}

const applicationColumns = `id, name, email, phone, position, resume_url, message, created_at`

func scanApplication(row scanner) (domain.JobApplication, error) {
	var (
		a         domain.JobApplication
		resume    sql.NullString
		createdAt string
	)
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.Position, &resume, &a.Message, &createdAt); err != nil {
		return domain.JobApplication{}, err
	}
	a.ResumeURL = mapNullString(resume)

	var err error
	if a.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.JobApplication{}, err
	}
	return a, nil
}

func (r *applicationsRepo) CreateApplication(ctx context.Context, a domain.JobApplication) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO job_applications (`+applicationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, a.Email, a.Phone, a.Position, mapStringNull(a.ResumeURL), a.Message, formatTime(a.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *applicationsRepo) GetApplicationByID(ctx context.Context, id string) (domain.JobApplication, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM job_applications WHERE id = ?`, id)
	a, err := scanApplication(row)
	if err != nil {
		return domain.JobApplication{}, mapNotFound(err)
	}
	return a, nil
}

func (r *applicationsRepo) ListApplications(ctx context.Context, page domain.Page) ([]domain.JobApplication, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+applicationColumns+`
		FROM job_applications
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`, page.Limit, page.Offset)
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
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM job_applications`).Scan(&n)
	return n, err
}

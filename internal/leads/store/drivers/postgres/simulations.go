package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
)

type simulationsRepo struct {
	q querier
}

const simulationColumns = `id, name, email, phone, consortium_type, credit_amount_cents,
	term_months, admin_fee_bps, installment_cents, created_at`

func scanSimulation(row pgx.Row) (domain.Simulation, error) {
	var (
		s    domain.Simulation
		kind string
	)
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &kind, &s.CreditAmountCents,
		&s.TermMonths, &s.AdminFeeBps, &s.InstallmentCents, &s.CreatedAt)
	s.ConsortiumType = domain.ConsortiumType(kind)
	return s, err
}

func (r *simulationsRepo) CreateSimulation(ctx context.Context, s domain.Simulation) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO simulations (`+simulationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.Name, s.Email, s.Phone, string(s.ConsortiumType), s.CreditAmountCents,
		s.TermMonths, s.AdminFeeBps, s.InstallmentCents, s.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *simulationsRepo) GetSimulationByID(ctx context.Context, id string) (domain.Simulation, error) {
	s, err := scanSimulation(r.q.QueryRow(ctx, `SELECT `+simulationColumns+` FROM simulations WHERE id = $1`, id))
	if err != nil {
		return domain.Simulation{}, mapNotFound(err)
	}
	return s, nil
}

func (r *simulationsRepo) ListSimulations(ctx context.Context, page domain.Page) ([]domain.Simulation, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+simulationColumns+`
		FROM simulations
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Simulation, 0, page.Limit)
	for rows.Next() {
		s, err := scanSimulation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *simulationsRepo) CountSimulations(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM simulations`).Scan(&n)
	return n, err
}

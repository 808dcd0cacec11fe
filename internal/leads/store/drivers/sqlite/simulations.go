package sqlite

import (
	"context"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
)

type simulationsRepo struct {
	q querier
}

const simulationColumns = `id, name, email, phone, consortium_type, credit_amount_cents,
	term_months, admin_fee_bps, installment_cents, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanSimulation(row scanner) (domain.Simulation, error) {
	var (
		s         domain.Simulation
		kind      string
		createdAt string
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &kind, &s.CreditAmountCents,
		&s.TermMonths, &s.AdminFeeBps, &s.InstallmentCents, &createdAt); err != nil {
		return domain.Simulation{}, err
	}
	s.ConsortiumType = domain.ConsortiumType(kind)

	var err error
	if s.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Simulation{}, err
	}
	return s, nil
}

func (r *simulationsRepo) CreateSimulation(ctx context.Context, s domain.Simulation) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO simulations (`+simulationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Email, s.Phone, string(s.ConsortiumType), s.CreditAmountCents,
		s.TermMonths, s.AdminFeeBps, s.InstallmentCents, formatTime(s.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *simulationsRepo) GetSimulationByID(ctx context.Context, id string) (domain.Simulation, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+simulationColumns+` FROM simulations WHERE id = ?`, id)
	s, err := scanSimulation(row)
	if err != nil {
		return domain.Simulation{}, mapNotFound(err)
	}
	return s, nil
}

func (r *simulationsRepo) ListSimulations(ctx context.Context, page domain.Page) ([]domain.Simulation, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+simulationColumns+`
		FROM simulations
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`, page.Limit, page.Offset)
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
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM simulations`).Scan(&n)
	return n, err
}

package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
)

type revokedTokensRepo struct {
	q querier
}

func (r *revokedTokensRepo) RevokeToken(ctx context.Context, t domain.RevokedToken) error {
	if t.RevokedAt.IsZero() {
		t.RevokedAt = time.Now()
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO revoked_tokens (jti, subject, expires_at, revoked_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (jti) DO NOTHING`,
		t.JTI, t.Subject, t.ExpiresAt, t.RevokedAt,
	)
	return err
}

func (r *revokedTokensRepo) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE jti = $1)`, jti,
	).Scan(&exists)
	return exists, err
}

func (r *revokedTokensRepo) DeleteExpiredRevokedTokens(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at < $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

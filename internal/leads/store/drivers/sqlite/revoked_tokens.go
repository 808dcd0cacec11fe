package sqlite

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
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO revoked_tokens (jti, subject, expires_at, revoked_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (jti) DO NOTHING`,
		t.JTI, t.Subject, formatTime(t.ExpiresAt), formatTime(t.RevokedAt),
	)
	return err
}

func (r *revokedTokensRepo) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE jti = ?)`, jti,
	).Scan(&exists)
	return exists, err
}

func (r *revokedTokensRepo) DeleteExpiredRevokedTokens(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM revoked_tokens WHERE expires_at < ?`, formatTime(now))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

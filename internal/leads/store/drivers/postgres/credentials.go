package postgres

import (
	"context"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
	"github.com/aussiebroadwan/leads/internal/leads/store"
)

type credentialsRepo struct {
	q querier
}

func (r *credentialsRepo) GetCredentialByUsername(ctx context.Context, username string) (domain.Credential, error) {
	var (
		c    domain.Credential
		totp *string
	)
	err := r.q.QueryRow(ctx, `
		SELECT id, username, password_hash, totp_secret, created_at, updated_at
		FROM credentials
		WHERE username = $1`, username,
	).Scan(&c.ID, &c.Username, &c.PasswordHash, &totp, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Credential{}, mapNotFound(err)
	}
	c.TOTPSecret = deref(totp)
	return c, nil
}

func (r *credentialsRepo) CreateCredential(ctx context.Context, c domain.Credential) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO credentials (id, username, password_hash, totp_secret)
		VALUES ($1, $2, $3, $4)`,
		c.ID, c.Username, c.PasswordHash, nullable(c.TOTPSecret),
	)
	return mapConstraint(err)
}

func (r *credentialsRepo) UpdateCredential(ctx context.Context, c domain.Credential) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE credentials
		SET password_hash = $1, totp_secret = $2, updated_at = now()
		WHERE username = $3`,
		c.PasswordHash, nullable(c.TOTPSecret), c.Username,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
	"github.com/aussiebroadwan/leads/internal/leads/store"
)

type credentialsRepo struct {
	q querier
}

func (r *credentialsRepo) GetCredentialByUsername(ctx context.Context, username string) (domain.Credential, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, username, password_hash, totp_secret, created_at, updated_at
		FROM credentials
		WHERE username = ?`, username)

	var (
		c                    domain.Credential
		totp                 sql.NullString
		createdAt, updatedAt string
	)
	if err := row.Scan(&c.ID, &c.Username, &c.PasswordHash, &totp, &createdAt, &updatedAt); err != nil {
		return domain.Credential{}, mapNotFound(err)
	}
	c.TOTPSecret = mapNullString(totp)

	var err error
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Credential{}, err
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.Credential{}, err
	}
	return c, nil
}

func (r *credentialsRepo) CreateCredential(ctx context.Context, c domain.Credential) error {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}

	_, err := r.q.ExecContext(ctx, `
		INSERT INTO credentials (id, username, password_hash, totp_secret, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Username, c.PasswordHash, mapStringNull(c.TOTPSecret),
		formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *credentialsRepo) UpdateCredential(ctx context.Context, c domain.Credential) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE credentials
		SET password_hash = ?, totp_secret = ?, updated_at = ?
		WHERE username = ?`,
		c.PasswordHash, mapStringNull(c.TOTPSecret), formatTime(time.Now()), c.Username,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

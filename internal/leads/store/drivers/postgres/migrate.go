package postgres

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/aussiebroadwan/leads/internal/leads/store/drivers/postgres/migrations"
)

// ErrNoLivePool is returned by ApplyMigrations on a store built from a mock.
var ErrNoLivePool = errors.New("postgres: migrations need a live pool")

// ApplyMigrations applies any pending migrations embedded in the binary.
func (s *Store) ApplyMigrations() (err error) {
	if s.raw == nil {
		return ErrNoLivePool
	}

	db := stdlib.OpenDBFromPool(s.raw)
	defer func() {
		if cerr := db.Close(); err == nil {
			err = cerr
		}
	}()

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		return err
	}

	src, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return err
	}

	instance, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = instance.Close()
	}()

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

package postgres

import (
	stderrors "errors"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // pgx5:// database driver
	_ "github.com/golang-migrate/migrate/v4/source/file"     // file:// source driver

	"github.com/turtacn/GenApp-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GenApp-Engine/pkg/errors"
)

// MigrateURL converts a pgx DSN into the URL scheme the migrate pgx/v5
// driver registers under.
func MigrateURL(dsn string) string {
	return strings.Replace(dsn, "postgres://", "pgx5://", 1)
}

// RunMigrations applies all pending schema migrations.  Called on startup;
// an already up-to-date schema is not an error.
func RunMigrations(dbURL, migrationsPath string, logger logging.Logger) error {
	m, err := migrate.New(migrationsPath, MigrateURL(dbURL))
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "create migrator")
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if stderrors.Is(err, migrate.ErrNoChange) {
			logger.Debug("schema already up to date")
			return nil
		}
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "apply migrations")
	}

	version, dirty, err := m.Version()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "read migration version")
	}
	logger.Info("schema migrated",
		logging.Int("version", int(version)),
		logging.Bool("dirty", dirty))
	return nil
}

// RollbackMigrations reverts the given number of migration steps.  Exposed
// for the operations CLI only.
func RollbackMigrations(dbURL, migrationsPath string, steps int, logger logging.Logger) error {
	if steps < 1 {
		return errors.InvalidParam("steps must be at least 1")
	}
	m, err := migrate.New(migrationsPath, MigrateURL(dbURL))
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "create migrator")
	}
	defer m.Close()

	if err := m.Steps(-steps); err != nil {
		if stderrors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "rollback migrations")
	}
	logger.Info("schema rolled back", logging.Int("steps", steps))
	return nil
}

package db

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"agency-desk/db/migrations"
)

// Migrate brings the schema at addr up to the latest embedded version.
// A dirty schema is reported and left for manual repair.
func Migrate(addr string, logger *slog.Logger) error {
	target, err := migrations.Latest()
	if err != nil {
		return err
	}

	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return err
	}
	defer mg.Close()
	mg.Log = migrateLogger{logger}

	current, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return fmt.Errorf("database is in dirty state at version %d", current)
	}

	if err = mg.Migrate(target); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	logger.Info("schema version", slog.Uint64("from", uint64(current)), slog.Uint64("to", uint64(target)))
	return nil
}

// migrateLogger adapts slog to migrate.Logger.
type migrateLogger struct {
	logger *slog.Logger
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l migrateLogger) Verbose() bool {
	return false
}

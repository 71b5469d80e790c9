package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"hotel/config"
	"hotel/infras/postgres"
	"net"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionDrop   = "drop"
	ActionStepUp = "step-up"
)

var errUnknownAction = errors.New("unknown migration action")

// migrations run against the write endpoint; the read side may be a replica.
func databaseURL(cfg *config.Config) string {
	pg := cfg.DB.Postgres
	query := url.Values{}
	query.Set("sslmode", pg.Write.SSLMode)
	query.Set("x-migrations-table", pg.MigrationTable)

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(pg.Write.Username, pg.Write.Password),
		Host:     net.JoinHostPort(pg.Write.Host, pg.Write.Port),
		Path:     postgres.DatabaseName(cfg, pg.Write.Name),
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func newMigrate(cfg *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New("file://"+cfg.DB.Postgres.MigrationPath, databaseURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return mig, nil
}

// Run applies action to the hotel schema. An already up-to-date schema is
// not an error.
func Run(cfg *config.Config, action string) error {
	steps := map[string]func(mig *migrate.Migrate) error{
		ActionUp:     (*migrate.Migrate).Up,
		ActionDown:   func(mig *migrate.Migrate) error { return mig.Steps(-1) },
		ActionDrop:   (*migrate.Migrate).Down,
		ActionStepUp: func(mig *migrate.Migrate) error { return mig.Steps(1) },
	}

	step, ok := steps[action]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownAction, action)
	}

	mig, err := newMigrate(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := step(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration %s: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migration finished")

	return nil
}

// Up brings the schema to the latest version, used by AUTO_MIGRATE at start-up.
func Up(cfg *config.Config) error {
	return Run(cfg, ActionUp)
}

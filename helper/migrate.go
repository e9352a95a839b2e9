package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/postgres"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const defaultMigrationSource = "file://migrations/postgres"

// MigrationURL is the store descriptor with the migration table appended.
func MigrationURL(config *config.Config) (string, error) {
	descriptor, err := url.Parse(postgres.Descriptor(config))
	if err != nil {
		return "", fmt.Errorf("error parsing database descriptor: %w", err)
	}

	if table := config.DB.Postgres.MigrationTable; table != "" {
		query := descriptor.Query()
		query.Set("x-migrations-table", table)
		descriptor.RawQuery = query.Encode()
	}

	return descriptor.String(), nil
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	connectionString, err := MigrationURL(config)
	if err != nil {
		return nil, err
	}

	source := config.DB.Postgres.MigrationSourcePath
	if source == "" {
		source = defaultMigrationSource
	}

	mig, err := migrate.New(source, connectionString)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func closeConnection(mig *migrate.Migrate) {
	sourceErr, dbErr := mig.Close()
	if sourceErr != nil || dbErr != nil {
		log.Warn().AnErr("source", sourceErr).AnErr("database", dbErr).Msg("Failed to close migrate instance")
	}
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Msg("No migration to apply")

		return nil
	}

	return err
}

func Up(config *config.Config) error {
	mig, err := getConnection(config)
	if err != nil {
		return err
	}
	defer closeConnection(mig)

	if err := ignoreNoChange(mig.Up()); err != nil {
		return fmt.Errorf("error running migrations: %w", err)
	}

	log.Info().Msg("Database migrations completed successfully")

	return nil
}

// Steps applies n migrations forward, or rolls back -n when n is negative.
func Steps(config *config.Config, n int) error {
	mig, err := getConnection(config)
	if err != nil {
		return err
	}
	defer closeConnection(mig)

	if err := ignoreNoChange(mig.Steps(n)); err != nil {
		return fmt.Errorf("error running %d migration steps: %w", n, err)
	}

	log.Info().Int("steps", n).Msg("Database migration steps completed successfully")

	return nil
}

func Down(config *config.Config) error {
	return Steps(config, -1)
}

// Drop rolls back every migration.
func Drop(config *config.Config) error {
	mig, err := getConnection(config)
	if err != nil {
		return err
	}
	defer closeConnection(mig)

	if err := ignoreNoChange(mig.Down()); err != nil {
		return fmt.Errorf("error rolling back migrations: %w", err)
	}

	log.Info().Msg("Database migrations rolled back successfully")

	return nil
}

func Version(config *config.Config) (uint, bool, error) {
	mig, err := getConnection(config)
	if err != nil {
		return 0, false, err
	}
	defer closeConnection(mig)

	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, fmt.Errorf("error reading migration version: %w", err)
	}

	return version, dirty, nil
}

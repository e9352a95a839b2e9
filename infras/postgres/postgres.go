package postgres

//go:generate go run go.uber.org/mock/mockgen -source=./postgres.go -destination=./mocks/postgres_mock.go -package=mocks

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"frontdesk/config"
	"net"
	"net/url"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"

	// The desk owns exactly one connection; no pooling, no concurrent transactions.
	postgresMaxIdleConnection = 1
	postgresMaxOpenConnection = 1

	defaultConnectTimeout = 5 * time.Second
)

// ErrNotConnected is returned by a Provider while no connection is open.
var ErrNotConnected = errors.New("store is not connected")

// Dialer opens a connection to the store.
type Dialer interface {
	Dial(ctx context.Context) (*sqlx.DB, error)
}

// Provider hands the live connection to repositories.
type Provider interface {
	DB() (*sqlx.DB, error)
}

type dialerImpl struct {
	config *config.Config
}

func New(config *config.Config) Dialer {
	return &dialerImpl{config: config}
}

// getDBName returns the database name with prefix if configured
func getDBName(config *config.Config) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + config.DB.Postgres.Name
	}

	return config.DB.Postgres.Name
}

// Descriptor builds the connection URL shared by the dialer and the migration runner.
func Descriptor(config *config.Config) string {
	pg := config.DB.Postgres

	descriptor := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(pg.Username, pg.Password),
		Host:   net.JoinHostPort(pg.Host, pg.Port),
		Path:   "/" + getDBName(config),
	}

	if pg.SSLMode != "" {
		descriptor.RawQuery = url.Values{"sslmode": []string{pg.SSLMode}}.Encode()
	}

	return descriptor.String()
}

func driverName(config *config.Config) string {
	if config.DB.Postgres.Driver == DriverPgx {
		return DriverPgx
	}

	return DriverPostgres
}

// Dial makes a single connection attempt. Retrying is left to whoever asked for the connection.
func (d *dialerImpl) Dial(ctx context.Context) (*sqlx.DB, error) {
	pg := d.config.DB.Postgres
	driver := driverName(d.config)

	timeout := defaultConnectTimeout
	if pg.ConnectTimeoutSecs > 0 {
		timeout = time.Duration(pg.ConnectTimeoutSecs) * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	sqlDB, err := sqlx.ConnectContext(ctx, driver, Descriptor(d.config))
	if err != nil {
		log.
			Error().
			Err(err).
			Str("driver", driver).
			Str("host", pg.Host).
			Str("port", pg.Port).
			Str("dbName", getDBName(d.config)).
			Msg("Failed connecting to database")

		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
	sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

	log.
		Info().
		Str("driver", driver).
		Str("host", pg.Host).
		Str("port", pg.Port).
		Str("dbName", getDBName(d.config)).
		Msg("Connected to database")

	return sqlDB, nil
}

//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aanand-mishra/names-api/internal/config"
	"github.com/aanand-mishra/names-api/internal/storage/postgres"
	"github.com/aanand-mishra/names-api/internal/storage/storagetest"
)

type PostgresStoreSuite struct {
	storagetest.Suite
	container *tcpostgres.PostgresContainer
	dsn       string
	store     *postgres.Postgres
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("names"),
		tcpostgres.WithUsername("names"),
		tcpostgres.WithPassword("names"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)
	s.dsn = dsn

	store, err := postgres.New(ctx, config.Storage{Driver: config.DriverPostgres, DSN: dsn, MaxOpenConns: 5})
	s.Require().NoError(err)
	s.store = store
	s.Store = store
}

func (s *PostgresStoreSuite) TearDownSuite() {
	if s.store != nil {
		s.NoError(s.store.Close())
	}
	if s.container != nil {
		s.NoError(s.container.Terminate(context.Background()))
	}
}

func (s *PostgresStoreSuite) SetupTest() {
	db, err := sql.Open("pgx", s.dsn)
	s.Require().NoError(err)
	defer db.Close()

	_, err = db.ExecContext(context.Background(), "TRUNCATE TABLE names RESTART IDENTITY")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestNewFromDBReusesExistingSchema() {
	db, err := sql.Open("pgx", s.dsn)
	s.Require().NoError(err)
	defer db.Close()

	_, err = postgres.NewFromDB(context.Background(), db)
	s.NoError(err)
}

package app

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/ubuntu-explorer/internal/config"
)

const (
	dbPingTimeout      = 5 * time.Second
	dbMaxOpenConns     = 10
	dbMaxIdleConns     = 5
	dbConnMaxLifetime  = 30 * time.Minute
	dbConnMaxIdleTime  = 5 * time.Minute
	postgresDriverName = "postgres"
)

// openDB opens the profile directory database with query tracing.
func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	target := parseDBTarget(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open(postgresDriverName, target.DSN,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(target.Name),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetMaxIdleConns(dbMaxIdleConns)
	db.SetConnMaxLifetime(dbConnMaxLifetime)
	db.SetConnMaxIdleTime(dbConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}

	return db, nil
}

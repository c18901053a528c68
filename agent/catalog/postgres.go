package catalog

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	statex "github.com/semsarlabs/semsar/agent/state"
)

// PostgresConfig configures the database-backed catalog source.
type PostgresConfig struct {
	DSN     string        `envconfig:"DSN" split_words:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"10s"`
}

// propertyRow mirrors the properties table; the raw text columns map
// straight onto statex.Property.
type propertyRow struct {
	bun.BaseModel `bun:"table:properties,alias:p"`

	ID       int64  `bun:"id,pk,autoincrement"`
	Type     string `bun:"type"`
	Location string `bun:"location"`
	Price    string `bun:"price"`
	Bedrooms string `bun:"bedrooms"`
	Features string `bun:"features"`
}

// PostgresSource loads the inventory snapshot from Postgres via bun.
type PostgresSource struct {
	db      *bun.DB
	timeout time.Duration
}

func NewPostgresSource(cfg PostgresConfig) (*PostgresSource, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	return &PostgresSource{db: db, timeout: timeout}, nil
}

// Load fetches every property row in insertion order. A query failure
// degrades to an empty catalog with a logged warning; the host keeps
// running without inventory.
func (s *PostgresSource) Load(ctx context.Context) *Catalog {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var rows []propertyRow
	if err := s.db.NewSelect().Model(&rows).Order("id ASC").Scan(ctx); err != nil {
		log.Warn().Err(err).Msg("property catalog query failed, starting empty")
		return New(nil)
	}

	properties := make([]statex.Property, 0, len(rows))
	for _, row := range rows {
		properties = append(properties, statex.Property{
			Type:     row.Type,
			Location: row.Location,
			Price:    row.Price,
			Bedrooms: row.Bedrooms,
			Features: row.Features,
		})
	}
	return New(properties)
}

func (s *PostgresSource) Close() error {
	return s.db.Close()
}

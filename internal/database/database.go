package database

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the PostgreSQL pool. The working schema is fixed per
// connection through the search_path startup parameter, so the stored
// procedures resolve by unqualified name without a SET before every call.
func Connect(dsn, schema string) (*gorm.DB, error) {
	dsn, err := withSearchPath(dsn, schema)
	if err != nil {
		return nil, fmt.Errorf("invalid database url: %w", err)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Printf("Connected to PostgreSQL (search_path=%s)", schema)
	return db, nil
}

// withSearchPath injects the schema as a connection-scoped runtime parameter.
// pgx forwards unknown DSN keywords to the server at session startup.
func withSearchPath(dsn, schema string) (string, error) {
	if schema == "" {
		return dsn, nil
	}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", err
		}
		q := u.Query()
		q.Set("search_path", schema)
		u.RawQuery = q.Encode()
		return u.String(), nil
	}
	// keyword/value form
	return dsn + " search_path=" + schema, nil
}

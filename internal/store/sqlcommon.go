package store

import (
	"database/sql"
	"strings"
	"time"

	"channel-crawler-go/internal/config"
)

const (
	backendNone     = "none"
	backendFile     = "file"
	backendSQLite   = "sqlite"
	backendMySQL    = "mysql"
	backendPostgres = "postgres"
	backendMongo    = "mongodb"
)

func backendKind() string {
	switch strings.ToLower(strings.TrimSpace(config.AppConfig.StoreBackend)) {
	case "", backendNone:
		return backendNone
	case backendFile, "json", "csv", "xlsx":
		return backendFile
	case backendSQLite, "sqlite3":
		return backendSQLite
	case backendMySQL:
		return backendMySQL
	case backendPostgres, "pg", "postgresql":
		return backendPostgres
	case backendMongo, "mongo":
		return backendMongo
	default:
		return backendNone
	}
}

func setDBPoolDefaults(db *sql.DB, maxOpen int) {
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen / 2)
	db.SetConnMaxLifetime(30 * time.Minute)
}

package store

import (
	"context"
	"time"
)

// Init connects and pings the configured backend so a bad DSN fails the run
// up front instead of on the first save. File and "none" backends need no
// setup.
func Init(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	switch backendKind() {
	case backendSQLite:
		db, err := getSQLiteDB()
		if err != nil {
			return err
		}
		return db.PingContext(ctx)
	case backendMySQL:
		db, err := getMySQLDB()
		if err != nil {
			return err
		}
		return db.PingContext(ctx)
	case backendPostgres:
		db, err := postgresDB()
		if err != nil {
			return err
		}
		return db.PingContext(ctx)
	case backendMongo:
		_, err := mongoClient()
		return err
	default:
		return nil
	}
}

package store

import (
	"database/sql"
	"errors"
	"strings"
	"sync"
	"time"

	"channel-crawler-go/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	pgOnce sync.Once
	pgInst *sql.DB
	pgErr  error
)

func postgresDB() (*sql.DB, error) {
	pgOnce.Do(func() {
		dsn := strings.TrimSpace(config.AppConfig.PostgresDSN)
		if dsn == "" {
			pgErr = errors.New("POSTGRES_DSN is empty")
			return
		}
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			pgErr = err
			return
		}
		setDBPoolDefaults(db, 8)
		db.SetConnMaxIdleTime(2 * time.Minute)

		if err := initPostgresSchema(db); err != nil {
			_ = db.Close()
			pgErr = err
			return
		}
		pgInst = db
	})
	return pgInst, pgErr
}

func initPostgresSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS videos (
			channel_id TEXT NOT NULL,
			video_id   TEXT NOT NULL,
			data_json  TEXT NOT NULL,
			updated_at BIGINT NOT NULL,
			PRIMARY KEY (channel_id, video_id)
		)`)
	return err
}

func postgresUpsertVideo(channelID, videoID, dataJSON string) error {
	db, err := postgresDB()
	if err != nil {
		return err
	}
	now := time.Now().Unix()
	_, err = db.Exec(
		`INSERT INTO videos(channel_id, video_id, data_json, updated_at)
		 VALUES($1, $2, $3, $4)
		 ON CONFLICT (channel_id, video_id)
		 DO UPDATE SET data_json=EXCLUDED.data_json, updated_at=EXCLUDED.updated_at;`,
		channelID, videoID, dataJSON, now,
	)
	return err
}

package store

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	"channel-crawler-go/internal/config"

	_ "modernc.org/sqlite"
)

var (
	sqliteOnce sync.Once
	sqliteDB   *sql.DB
	sqliteErr  error
)

func getSQLiteDB() (*sql.DB, error) {
	sqliteOnce.Do(func() {
		path := config.AppConfig.SQLitePath
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				sqliteErr = err
				return
			}
		}
		db, err := sql.Open("sqlite", path)
		if err != nil {
			sqliteErr = err
			return
		}
		// modernc sqlite is single-writer; keep the pool small.
		setDBPoolDefaults(db, 2)
		if err := initSQLiteSchema(db); err != nil {
			sqliteErr = err
			return
		}
		sqliteDB = db
	})
	return sqliteDB, sqliteErr
}

func initSQLiteSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS videos (
			channel_id TEXT NOT NULL,
			video_id   TEXT NOT NULL,
			data_json  TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (channel_id, video_id)
		)`)
	return err
}

func sqliteUpsertVideo(channelID, videoID, dataJSON string) error {
	db, err := getSQLiteDB()
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO videos (channel_id, video_id, data_json, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(channel_id, video_id) DO UPDATE SET
			data_json = excluded.data_json,
			updated_at = CURRENT_TIMESTAMP`,
		channelID, videoID, dataJSON)
	return err
}

package store

import (
	"database/sql"
	"sync"

	"channel-crawler-go/internal/config"

	_ "github.com/go-sql-driver/mysql"
)

var (
	mysqlOnce sync.Once
	mysqlDB   *sql.DB
	mysqlErr  error
)

func getMySQLDB() (*sql.DB, error) {
	mysqlOnce.Do(func() {
		db, err := sql.Open("mysql", config.AppConfig.MySQLDSN)
		if err != nil {
			mysqlErr = err
			return
		}
		setDBPoolDefaults(db, 10)
		if err := initMySQLSchema(db); err != nil {
			mysqlErr = err
			return
		}
		mysqlDB = db
	})
	return mysqlDB, mysqlErr
}

func initMySQLSchema(db *sql.DB) error {
	// VARCHAR(191) keeps the composite key under the utf8mb4 index limit.
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS videos (
			channel_id VARCHAR(191) NOT NULL,
			video_id   VARCHAR(191) NOT NULL,
			data_json  LONGTEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			PRIMARY KEY (channel_id, video_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`)
	return err
}

func mysqlUpsertVideo(channelID, videoID, dataJSON string) error {
	db, err := getMySQLDB()
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO videos (channel_id, video_id, data_json)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE data_json = VALUES(data_json)`,
		channelID, videoID, dataJSON)
	return err
}

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

func sqlUpsertVideo(channelID, videoID string, video any) error {
	channelID = strings.TrimSpace(channelID)
	videoID = strings.TrimSpace(videoID)
	if channelID == "" {
		return errors.New("channel_id is empty")
	}
	if videoID == "" {
		return errors.New("video_id is empty")
	}
	b, err := json.Marshal(video)
	if err != nil {
		return fmt.Errorf("marshal video %s: %w", videoID, err)
	}

	switch backendKind() {
	case backendSQLite:
		return sqliteUpsertVideo(channelID, videoID, string(b))
	case backendMySQL:
		return mysqlUpsertVideo(channelID, videoID, string(b))
	case backendPostgres:
		return postgresUpsertVideo(channelID, videoID, string(b))
	case backendMongo:
		return mongoUpsertVideo(channelID, videoID, string(b))
	default:
		return fmt.Errorf("unsupported store backend %q", backendKind())
	}
}

package store

import (
	"channel-crawler-go/internal/config"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Store appends one record to a file sink. The JSON array the CLI emits is
// separate; these sinks persist per-video records across runs.
type Store interface {
	Save(data interface{}, filename string) error
}

type CSVer interface {
	ToCSV() []string
	CSVHeader() []string
}

type JsonStore struct {
	Dir string
}

func NewJsonStore(dir string) *JsonStore {
	return &JsonStore{Dir: dir}
}

func (s *JsonStore) Save(data interface{}, filename string) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}

	path := filepath.Join(s.Dir, filename)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	return encoder.Encode(data)
}

type CsvStore struct {
	Dir string
	mu  sync.Mutex
}

func NewCsvStore(dir string) *CsvStore {
	return &CsvStore{Dir: dir}
}

func (s *CsvStore) Save(data interface{}, filename string) error {
	item, ok := data.(CSVer)
	if !ok {
		return fmt.Errorf("data does not implement CSVer interface")
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}

	path := filepath.Join(s.Dir, filename)

	s.mu.Lock()
	defer s.mu.Unlock()

	fileExists := false
	if _, err := os.Stat(path); err == nil {
		fileExists = true
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	// Write BOM for Excel compatibility
	if !fileExists {
		file.WriteString("\xEF\xBB\xBF")
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if !fileExists {
		if err := writer.Write(item.CSVHeader()); err != nil {
			return err
		}
	}

	return writer.Write(item.ToCSV())
}

func GetStore() Store {
	dir := filepath.Join(config.AppConfig.DataDir, "youtube")

	switch config.AppConfig.SaveDataOption {
	case "csv":
		return NewCsvStore(dir)
	case "xlsx":
		return NewXlsxStore(dir)
	default:
		return NewJsonStore(dir)
	}
}

func fileExt() string {
	switch config.AppConfig.SaveDataOption {
	case "csv":
		return "csv"
	case "xlsx":
		return "xlsx"
	default:
		return "json"
	}
}

// SaveVideo persists one harvested video under its channel. With the file
// backend it appends to a dated file; with a database backend it upserts
// keyed by (channel_id, video_id). Backend "none" drops the record.
func SaveVideo(channelID, videoID string, video any) error {
	kind := backendKind()
	if kind == backendNone {
		return nil
	}
	if kind != backendFile {
		return sqlUpsertVideo(channelID, videoID, video)
	}
	s := GetStore()
	date := time.Now().Format("2006-01-02")
	return s.Save(video, fmt.Sprintf("videos_%s.%s", date, fileExt()))
}

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/xuri/excelize/v2"
)

type XlsxStore struct {
	Dir string
	mu  sync.Mutex
}

func NewXlsxStore(dir string) *XlsxStore {
	return &XlsxStore{Dir: dir}
}

func (s *XlsxStore) Save(data interface{}, filename string) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}
	path := filepath.Join(s.Dir, filename)

	header, row, err := toTabular(data)
	if err != nil {
		return err
	}
	if len(header) == 0 {
		return errors.New("empty header")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, sheet, err := openWorkbook(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}

	next := len(rows) + 1
	if len(rows) == 0 {
		if err := writeRow(f, sheet, 1, header); err != nil {
			return err
		}
		next = 2
	} else if !slices.Equal(rows[0], header) {
		return fmt.Errorf("xlsx header mismatch for %s", filename)
	}

	if err := writeRow(f, sheet, next, row); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func openWorkbook(path string) (*excelize.File, string, error) {
	if _, err := os.Stat(path); err == nil {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, "", err
		}
		if sheets := f.GetSheetList(); len(sheets) > 0 {
			return f, sheets[0], nil
		}
		f.NewSheet("Sheet1")
		return f, "Sheet1", nil
	}

	f := excelize.NewFile()
	if sheets := f.GetSheetList(); len(sheets) > 0 {
		return f, sheets[0], nil
	}
	f.NewSheet("Sheet1")
	return f, "Sheet1", nil
}

func writeRow(f *excelize.File, sheet string, rowIndex int, values []string) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowIndex)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func toTabular(data any) (header []string, row []string, err error) {
	if v, ok := data.(CSVer); ok {
		return v.CSVHeader(), v.ToCSV(), nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return nil, nil, err
	}
	return []string{"json"}, []string{string(b)}, nil
}

package tracker

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"watd/internal/models"
	"watd/internal/providers"
)

// FileManager persists day-keyed tables as CSV files with a fixed header.
// Every write replaces the whole file through a sibling temp file and a
// rename, so a concurrent reader never sees a partial table and a failed
// write leaves the committed file untouched.
type FileManager struct {
	logger providers.Logger
}

func NewFileManager(logger providers.Logger) *FileManager {
	return &FileManager{logger: logger}
}

// LoadTable reads all records from the table at path. A missing file is an
// empty table, not an error.
func (f *FileManager) LoadTable(path string, schema models.Schema) ([]*models.DayRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	lines, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse table %s: %w", path, err)
	}
	if len(lines) <= 1 {
		return nil, nil
	}

	records := make([]*models.DayRecord, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rec := models.DayRecordFromValues(schema, line)
		if rec.Date == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// SaveTable rewrites the full table, header first, records in given order.
func (f *FileManager) SaveTable(path string, schema models.Schema, records []*models.DayRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmpFile := path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(file)
	if err = writer.Write(schema); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	for _, rec := range records {
		if err = writer.Write(rec.Values(schema)); err != nil {
			file.Close()
			os.Remove(tmpFile)
			return err
		}
	}
	writer.Flush()
	if err = writer.Error(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, path)
}

// EnsureTable creates the table's directory and header-only file when the
// table does not exist yet.
func (f *FileManager) EnsureTable(path string, schema models.Schema) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return f.SaveTable(path, schema, nil)
}

package tracker

import (
	"watd/internal/models"
)

// Upsert sets one field on the record keyed by date, appending a fresh
// record when the date is not present. The whole table is read, modified and
// rewritten. Callers must serialize per table; within the daemon everything
// funnels through the scheduler's ops mutex.
func (f *FileManager) Upsert(path string, schema models.Schema, date, field string, value interface{}) error {
	return f.UpsertFields(path, schema, date, map[string]interface{}{field: value})
}

// UpsertFields is Upsert for several fields of the same date in a single
// read-modify-write pass.
func (f *FileManager) UpsertFields(path string, schema models.Schema, date string, fields map[string]interface{}) error {
	records, err := f.LoadTable(path, schema)
	if err != nil {
		return err
	}

	var target *models.DayRecord
	for _, rec := range records {
		if rec.Date == date {
			target = rec
			break
		}
	}
	if target == nil {
		target = models.NewDayRecord(date)
		records = append(records, target)
	}

	for field, value := range fields {
		target.Set(field, value)
	}

	return f.SaveTable(path, schema, records)
}

package models

import (
	"github.com/spf13/cast"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Column names shared between the persisted tables and the combined view.
const (
	ColDate        = "Date"
	ColFirst       = "First Activity"
	ColLast        = "Last Activity"
	ColFirstClick  = "First Click"
	ColLastClick   = "Last Click"
	ColOutstanding = "Outstanding Orders"
	ColShipped     = "Shipped Today"
)

// Schema lists a table's column names in serialization order.
// The first column is always Date.
type Schema []string

var (
	ActivitySchema = Schema{ColDate, ColFirst, ColLast}
	OrdersSchema   = Schema{ColDate, ColOutstanding, ColShipped}
	CombinedSchema = Schema{ColDate, ColFirstClick, ColLastClick, ColOutstanding, ColShipped}
)

// DayRecord is one row of a day-keyed table: the calendar date plus the
// schema's remaining fields. An absent field holds the empty string.
type DayRecord struct {
	Date   string
	Fields map[string]string
}

func NewDayRecord(date string) *DayRecord {
	return &DayRecord{
		Date:   date,
		Fields: make(map[string]string),
	}
}

func (r *DayRecord) Get(field string) string {
	return r.Fields[field]
}

// Set stores a field value, stringifying non-string values.
func (r *DayRecord) Set(field string, value interface{}) {
	if r.Fields == nil {
		r.Fields = make(map[string]string)
	}
	r.Fields[field] = cast.ToString(value)
}

// Values renders the record as a CSV line in schema order.
func (r *DayRecord) Values(schema Schema) []string {
	out := make([]string, len(schema))
	for i, col := range schema {
		if col == ColDate {
			out[i] = r.Date
			continue
		}
		out[i] = r.Fields[col]
	}
	return out
}

// DayRecordFromValues builds a record from a CSV line. Short lines leave the
// trailing fields absent; extra values are dropped.
func DayRecordFromValues(schema Schema, values []string) *DayRecord {
	rec := NewDayRecord("")
	for i, col := range schema {
		if i >= len(values) {
			break
		}
		if col == ColDate {
			rec.Date = values[i]
			continue
		}
		if values[i] != "" {
			rec.Fields[col] = values[i]
		}
	}
	return rec
}

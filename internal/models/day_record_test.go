package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayRecord_SetStringifiesValues(t *testing.T) {
	rec := NewDayRecord("2024-06-03")
	rec.Set(ColOutstanding, 7)
	rec.Set(ColShipped, "12")

	assert.Equal(t, "7", rec.Get(ColOutstanding))
	assert.Equal(t, "12", rec.Get(ColShipped))
}

func TestDayRecord_ValuesFollowSchemaOrder(t *testing.T) {
	rec := NewDayRecord("2024-06-03")
	rec.Set(ColLast, "17:45:02")

	values := rec.Values(ActivitySchema)
	assert.Equal(t, []string{"2024-06-03", "", "17:45:02"}, values)
}

func TestDayRecordFromValues_RoundTrip(t *testing.T) {
	rec := DayRecordFromValues(OrdersSchema, []string{"2024-06-03", "7", ""})

	assert.Equal(t, "2024-06-03", rec.Date)
	assert.Equal(t, "7", rec.Get(ColOutstanding))
	assert.Equal(t, "", rec.Get(ColShipped))
	assert.Equal(t, []string{"2024-06-03", "7", ""}, rec.Values(OrdersSchema))
}

func TestDayRecordFromValues_ShortLine(t *testing.T) {
	rec := DayRecordFromValues(CombinedSchema, []string{"2024-06-03", "09:02:11"})

	assert.Equal(t, "2024-06-03", rec.Date)
	assert.Equal(t, "09:02:11", rec.Get(ColFirstClick))
	assert.Equal(t, "", rec.Get(ColShipped))
}

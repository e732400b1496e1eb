package tracker

import (
	"os"
	"path/filepath"
	"testing"
	"watd/internal/models"
	"watd/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsert_AppendsNewDate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orders_log.csv")
	fm := NewFileManager(&testutil.MockLogger{})

	require.NoError(t, fm.Upsert(path, models.OrdersSchema, "2024-06-03", models.ColOutstanding, 7))

	records, err := fm.LoadTable(path, models.OrdersSchema)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "7", records[0].Get(models.ColOutstanding))
	assert.Equal(t, "", records[0].Get(models.ColShipped))
}

func TestUpsert_SecondFieldSameDateKeepsFirst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orders_log.csv")
	fm := NewFileManager(&testutil.MockLogger{})

	require.NoError(t, fm.Upsert(path, models.OrdersSchema, "2024-06-03", models.ColOutstanding, 7))
	require.NoError(t, fm.Upsert(path, models.OrdersSchema, "2024-06-03", models.ColShipped, 12))

	records, err := fm.LoadTable(path, models.OrdersSchema)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "7", records[0].Get(models.ColOutstanding))
	assert.Equal(t, "12", records[0].Get(models.ColShipped))
}

func TestUpsert_OtherDatesByteUnchanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orders_log.csv")
	fm := NewFileManager(&testutil.MockLogger{})

	require.NoError(t, fm.Upsert(path, models.OrdersSchema, "2024-06-03", models.ColOutstanding, 7))
	require.NoError(t, fm.Upsert(path, models.OrdersSchema, "2024-06-04", models.ColOutstanding, 9))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, fm.Upsert(path, models.OrdersSchema, "2024-06-04", models.ColShipped, 3))

	after, err := os.ReadFile(path)
	require.NoError(t, err)

	// The 2024-06-03 line must survive byte for byte.
	assert.Contains(t, string(before), "2024-06-03,7,\n")
	assert.Contains(t, string(after), "2024-06-03,7,\n")
}

func TestUpsert_UpdateOverwritesField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "activity_log.csv")
	fm := NewFileManager(&testutil.MockLogger{})

	require.NoError(t, fm.UpsertFields(path, models.ActivitySchema, "2024-06-03", map[string]interface{}{
		models.ColFirst: "09:02:11",
		models.ColLast:  "09:02:11",
	}))
	require.NoError(t, fm.UpsertFields(path, models.ActivitySchema, "2024-06-03", map[string]interface{}{
		models.ColFirst: "09:02:11",
		models.ColLast:  "09:02:45",
	}))

	records, err := fm.LoadTable(path, models.ActivitySchema)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "09:02:11", records[0].Get(models.ColFirst))
	assert.Equal(t, "09:02:45", records[0].Get(models.ColLast))
}

func TestUpsert_IsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "activity_log.csv")
	fm := NewFileManager(&testutil.MockLogger{})

	fields := map[string]interface{}{
		models.ColFirst: "09:02:11",
		models.ColLast:  "17:45:02",
	}
	require.NoError(t, fm.UpsertFields(path, models.ActivitySchema, "2024-06-03", fields))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, fm.UpsertFields(path, models.ActivitySchema, "2024-06-03", fields))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

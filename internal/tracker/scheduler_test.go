package tracker

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	"watd/internal/models"
	"watd/internal/structures"
	"watd/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrders struct {
	morningRuns   int
	afternoonRuns int
}

func (f *fakeOrders) RunMorning() error   { f.morningRuns++; return nil }
func (f *fakeOrders) RunAfternoon() error { f.afternoonRuns++; return nil }

func schedulerConfig(t *testing.T) *structures.Config {
	return &structures.Config{
		Tables: structures.TablesConfig{
			Dir:          t.TempDir(),
			ActivityFile: "activity_log.csv",
			OrdersFile:   "orders_log.csv",
			CombinedFile: "combined_log.csv",
		},
		Tracker: structures.TrackerConfig{
			FlushInterval:         time.Hour,
			RolloverCheckInterval: time.Hour,
		},
	}
}

func newTestScheduler(t *testing.T, conf *structures.Config, activity *testutil.MockActivityService, now time.Time) *Scheduler {
	fm := NewFileManager(&testutil.MockLogger{})
	metrics := testutil.NewMockMetrics()
	return &Scheduler{
		config:   conf,
		logger:   &testutil.MockLogger{},
		activity: activity,
		orders:   &fakeOrders{},
		files:    fm,
		combined: NewCombinedBuilder(conf, fm, metrics),
		archiver: NewArchiver(conf, &testutil.MockCompressor{}, &testutil.MockLogger{}),
		metrics:  metrics,
		now:      func() time.Time { return now },
	}
}

func schedTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.Local)
	require.NoError(t, err)
	return ts
}

func TestScheduler_Restore_CreatesHeaderFiles(t *testing.T) {
	conf := schedulerConfig(t)
	now := schedTime(t, "2024-06-03 08:00:00")
	s := newTestScheduler(t, conf, testutil.NewMockActivityService(now), now)

	require.NoError(t, s.Restore())

	for _, path := range []string{conf.ActivityPath(), conf.OrdersPath(), conf.CombinedPath()} {
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
	}
}

func TestScheduler_Restore_SeedsTodayFromTable(t *testing.T) {
	conf := schedulerConfig(t)
	now := schedTime(t, "2024-06-03 12:00:00")
	activity := testutil.NewMockActivityService(now)
	s := newTestScheduler(t, conf, activity, now)

	fm := NewFileManager(&testutil.MockLogger{})
	require.NoError(t, fm.UpsertFields(conf.ActivityPath(), models.ActivitySchema, "2024-06-03", map[string]interface{}{
		models.ColFirst: "08:30:00",
		models.ColLast:  "11:59:00",
	}))

	require.NoError(t, s.Restore())

	require.Len(t, activity.Seeded, 1)
	assert.Equal(t, "08:30:00", activity.Seeded[0].First)
	snap := activity.Snapshot()
	assert.Equal(t, "08:30:00", snap.FirstString())
	assert.Equal(t, "11:59:00", snap.LastString())
}

func TestScheduler_Restore_IgnoresOtherDates(t *testing.T) {
	conf := schedulerConfig(t)
	now := schedTime(t, "2024-06-03 12:00:00")
	activity := testutil.NewMockActivityService(now)
	s := newTestScheduler(t, conf, activity, now)

	fm := NewFileManager(&testutil.MockLogger{})
	require.NoError(t, fm.UpsertFields(conf.ActivityPath(), models.ActivitySchema, "2024-06-02", map[string]interface{}{
		models.ColFirst: "08:30:00",
		models.ColLast:  "17:00:00",
	}))

	require.NoError(t, s.Restore())
	assert.Empty(t, activity.Seeded)
}

func TestScheduler_FlushWritesActivityAndCombined(t *testing.T) {
	conf := schedulerConfig(t)
	now := schedTime(t, "2024-06-03 09:02:45")
	activity := testutil.NewMockActivityService(now)
	s := newTestScheduler(t, conf, activity, now)

	activity.RecordEvent(schedTime(t, "2024-06-03 09:02:11"))
	activity.RecordEvent(schedTime(t, "2024-06-03 09:02:45"))

	require.NoError(t, s.flush())

	data, err := os.ReadFile(conf.ActivityPath())
	require.NoError(t, err)
	assert.Equal(t, "Date,First Activity,Last Activity\n2024-06-03,09:02:11,09:02:45\n", string(data))

	combined, err := os.ReadFile(conf.CombinedPath())
	require.NoError(t, err)
	assert.Contains(t, string(combined), "2024-06-03,09:02:11,09:02:45,,\n")
}

func TestScheduler_FlushLeavesOtherDatesUntouched(t *testing.T) {
	conf := schedulerConfig(t)
	now := schedTime(t, "2024-06-03 09:02:45")
	activity := testutil.NewMockActivityService(now)
	s := newTestScheduler(t, conf, activity, now)

	require.NoError(t, s.files.UpsertFields(conf.ActivityPath(), models.ActivitySchema, "2024-05-31", map[string]interface{}{
		models.ColFirst: "07:00:00",
		models.ColLast:  "15:00:00",
	}))

	activity.RecordEvent(schedTime(t, "2024-06-03 09:02:11"))
	require.NoError(t, s.flush())

	data, err := os.ReadFile(conf.ActivityPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "2024-05-31,07:00:00,15:00:00\n")
	assert.Contains(t, string(data), "2024-06-03,09:02:11,09:02:11\n")
}

func TestScheduler_RolloverFlushesOldDayAndResets(t *testing.T) {
	conf := schedulerConfig(t)
	monday := schedTime(t, "2024-06-03 23:59:30")
	activity := testutil.NewMockActivityService(monday)
	s := newTestScheduler(t, conf, activity, monday)
	require.NoError(t, s.Restore())

	activity.RecordEvent(schedTime(t, "2024-06-03 09:02:11"))
	activity.RecordEvent(schedTime(t, "2024-06-03 23:59:30"))

	// Clock crosses midnight before the next check.
	s.now = func() time.Time { return schedTime(t, "2024-06-04 00:00:40") }
	s.checkRollover()

	data, err := os.ReadFile(conf.ActivityPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "2024-06-03,09:02:11,23:59:30\n")

	assert.Equal(t, []string{"2024-06-04"}, activity.Rollovers)
	assert.Equal(t, "2024-06-04", activity.CurrentDate())
	assert.Empty(t, activity.Snapshot().FirstString())

	// A fresh event starts a new pair for the new day.
	activity.RecordEvent(schedTime(t, "2024-06-04 00:01:00"))
	require.NoError(t, s.flush())
	data, err = os.ReadFile(conf.ActivityPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "2024-06-03,09:02:11,23:59:30\n")
	assert.Contains(t, string(data), "2024-06-04,00:01:00,00:01:00\n")
}

func TestScheduler_RolloverNoopWhenDateUnchanged(t *testing.T) {
	conf := schedulerConfig(t)
	now := schedTime(t, "2024-06-03 10:00:00")
	activity := testutil.NewMockActivityService(now)
	s := newTestScheduler(t, conf, activity, now)
	require.NoError(t, s.Restore())

	s.checkRollover()

	assert.Empty(t, activity.Rollovers)
}

func TestScheduler_RolloverArchivesEndedDay(t *testing.T) {
	conf := schedulerConfig(t)
	conf.Tables.ArchiveDir = t.TempDir()
	monday := schedTime(t, "2024-06-03 23:00:00")
	activity := testutil.NewMockActivityService(monday)
	s := newTestScheduler(t, conf, activity, monday)
	require.NoError(t, s.Restore())

	activity.RecordEvent(monday)
	s.now = func() time.Time { return schedTime(t, "2024-06-04 00:01:00") }
	s.checkRollover()

	archived, err := os.ReadFile(filepath.Join(conf.Tables.ArchiveDir, "2024-06-03", "activity_log.csv.zst"))
	require.NoError(t, err)
	// Identity compressor in tests: plain CSV bytes.
	assert.Contains(t, string(archived), "2024-06-03,23:00:00,23:00:00\n")
}

func TestScheduler_PersistFlushesCurrentDay(t *testing.T) {
	conf := schedulerConfig(t)
	now := schedTime(t, "2024-06-03 17:45:02")
	activity := testutil.NewMockActivityService(now)
	s := newTestScheduler(t, conf, activity, now)

	activity.RecordEvent(now)
	require.NoError(t, s.Persist())

	data, err := os.ReadFile(conf.ActivityPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "2024-06-03,17:45:02,17:45:02\n")
}

func TestScheduler_InitStopLifecycle(t *testing.T) {
	conf := schedulerConfig(t)
	conf.Orders.Enabled = true
	conf.Orders.MorningAt = "05:30"
	conf.Orders.AfternoonAt = "16:15"
	now := time.Now()
	activity := testutil.NewMockActivityService(now)
	s := newTestScheduler(t, conf, activity, now)

	s.Init()
	s.Stop()

	assert.True(t, activity.Started)
	assert.True(t, activity.Stopped)
}

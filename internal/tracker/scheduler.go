package tracker

import (
	"sync"
	"time"
	"watd/internal/models"
	"watd/internal/providers"
	"watd/internal/services"
	"watd/internal/structures"
	"watd/internal/tracker/interfaces"

	"github.com/roylee0704/gron"
	"github.com/roylee0704/gron/xtime"
)

// Scheduler owns every periodic job: the flush cadence, the day-rollover
// check and the two order-count pulls. opsMu serializes all table writes so
// overlapping jobs never interleave on the same file.
type Scheduler struct {
	config        *structures.Config
	logger        providers.Logger
	activity      services.ActivityServiceInterface
	orders        OrdersServiceInterface
	files         *FileManager
	combined      *CombinedBuilder
	archiver      *Archiver
	metrics       providers.MetricsProviderInterface
	cron          *gron.Cron
	opsMu         sync.Mutex
	lastKnownDate string
	now           func() time.Time
}

func NewScheduler(config *structures.Config, logger providers.Logger, activity services.ActivityServiceInterface, orders OrdersServiceInterface, files *FileManager, combined *CombinedBuilder, archiver *Archiver, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:   config,
		logger:   logger,
		activity: activity,
		orders:   orders,
		files:    files,
		combined: combined,
		archiver: archiver,
		metrics:  metrics,
		now:      time.Now,
	}
}

func (s *Scheduler) Init() {
	s.activity.Start()

	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Tracker.FlushInterval), func() {
		if err := s.flush(); err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while flushing activity: %s", err)
		}
	})

	s.cron.AddFunc(gron.Every(s.config.Tracker.RolloverCheckInterval), func() {
		s.checkRollover()
	})

	if s.config.Orders.Enabled {
		s.cron.AddFunc(gron.Every(1*xtime.Day).At(s.config.Orders.MorningAt), func() {
			s.runOrders(s.orders.RunMorning)
		})
		s.cron.AddFunc(gron.Every(1*xtime.Day).At(s.config.Orders.AfternoonAt), func() {
			s.runOrders(s.orders.RunAfternoon)
		})
	}

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	s.activity.Stop()
}

// Restore prepares the tables and seeds today's state from a previous run,
// so a mid-day restart keeps the real first activity.
func (s *Scheduler) Restore() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	if err := s.files.EnsureTable(s.config.ActivityPath(), models.ActivitySchema); err != nil {
		return err
	}
	if err := s.files.EnsureTable(s.config.OrdersPath(), models.OrdersSchema); err != nil {
		return err
	}
	if err := s.files.EnsureTable(s.config.CombinedPath(), models.CombinedSchema); err != nil {
		return err
	}

	today := s.now().Format(models.DateLayout)
	s.lastKnownDate = today

	records, err := s.files.LoadTable(s.config.ActivityPath(), models.ActivitySchema)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if rec.Date == today {
			s.activity.SeedDay(today, rec.Get(models.ColFirst), rec.Get(models.ColLast))
			s.logger.Infof(providers.TypeApp, "Restored state for %s: first=%q last=%q", today, rec.Get(models.ColFirst), rec.Get(models.ColLast))
			break
		}
	}
	return nil
}

// Persist is the final flush on shutdown.
func (s *Scheduler) Persist() error {
	s.logger.Infof(providers.TypeApp, "Persisting activity tables...")
	if err := s.flush(); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	return nil
}

func (s *Scheduler) flush() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	snap := s.activity.Snapshot()
	return s.flushSnapshot(snap)
}

// flushSnapshot writes a day snapshot through the upsert engine and rebuilds
// the combined view. Callers hold opsMu; the activity state lock is not held
// during any of this.
func (s *Scheduler) flushSnapshot(snap models.DaySnapshot) error {
	start := time.Now()

	err := s.files.UpsertFields(s.config.ActivityPath(), models.ActivitySchema, snap.Date, map[string]interface{}{
		models.ColFirst: snap.FirstString(),
		models.ColLast:  snap.LastString(),
	})
	if err != nil {
		return err
	}
	if err := s.combined.Rebuild(); err != nil {
		return err
	}

	s.metrics.ObserveFlushDuration(time.Since(start))
	s.logger.Debugf(providers.TypeApp, "Flushed %s: first=%q last=%q", snap.Date, snap.FirstString(), snap.LastString())
	return nil
}

// checkRollover compares calendar dates rather than elapsed time, so a
// missed tick (process asleep across midnight) still rolls over correctly on
// the next wake.
func (s *Scheduler) checkRollover() {
	today := s.now().Format(models.DateLayout)

	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	if today == s.lastKnownDate {
		return
	}

	s.logger.Infof(providers.TypeApp, "Day rollover: %s -> %s", s.lastKnownDate, today)
	snap := s.activity.Rollover(today)
	if err := s.flushSnapshot(snap); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while flushing ended day %s: %s", snap.Date, err)
	}

	if s.archiver.Enabled() {
		err := s.archiver.ArchiveDay(snap.Date, s.config.ActivityPath(), s.config.OrdersPath(), s.config.CombinedPath())
		if err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while archiving %s: %s", snap.Date, err)
		}
	}

	s.lastKnownDate = today
}

func (s *Scheduler) runOrders(run func() error) {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	// Errors are already logged and counted by the orders service; the
	// daily cadence is the retry mechanism.
	_ = run()
}

package services

import (
	"sync"
	"time"
	"watd/internal/models"
	"watd/internal/structures"

	"go.uber.org/atomic"
)

type ActivityServiceInterface interface {
	RecordEvent(t time.Time)
	Start()
	Stop()
	Snapshot() models.DaySnapshot
	Rollover(newDate string) models.DaySnapshot
	CurrentDate() string
	SeedDay(date, first, last string)
	PendingEvents() int
	EventsReceived() int64
}

// ActivityService owns the in-progress day's state. Events funnel through a
// buffered channel into a single consumer goroutine, so ingestion never
// contends with flush-side file I/O.
type ActivityService struct {
	day      *models.ActiveDay
	events   chan time.Time
	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
	received atomic.Int64
}

func NewActivityService(conf *structures.Config) ActivityServiceInterface {
	buffer := conf.Tracker.EventBuffer
	if buffer <= 0 {
		buffer = 1024
	}
	return &ActivityService{
		day:    models.NewActiveDay(time.Now()),
		events: make(chan time.Time, buffer),
		done:   make(chan struct{}),
	}
}

func (as *ActivityService) Start() {
	as.wg.Add(1)
	go as.run()
}

func (as *ActivityService) run() {
	defer as.wg.Done()
	for {
		select {
		case t := <-as.events:
			as.day.Observe(t)
		case <-as.done:
			// Drain whatever is already queued before going down.
			for {
				select {
				case t := <-as.events:
					as.day.Observe(t)
				default:
					return
				}
			}
		}
	}
}

// RecordEvent enqueues one input event. Blocks only when the buffer is full,
// and never longer than the consumer's O(1) state update.
func (as *ActivityService) RecordEvent(t time.Time) {
	as.received.Inc()
	select {
	case as.events <- t:
	case <-as.done:
	}
}

func (as *ActivityService) Stop() {
	as.stopOnce.Do(func() {
		close(as.done)
	})
	as.wg.Wait()
}

func (as *ActivityService) Snapshot() models.DaySnapshot {
	return as.day.Snapshot()
}

func (as *ActivityService) Rollover(newDate string) models.DaySnapshot {
	return as.day.Rollover(newDate)
}

func (as *ActivityService) CurrentDate() string {
	return as.day.Date()
}

func (as *ActivityService) SeedDay(date, first, last string) {
	as.day.Seed(date, first, last)
}

func (as *ActivityService) PendingEvents() int {
	return len(as.events)
}

func (as *ActivityService) EventsReceived() int64 {
	return as.received.Load()
}

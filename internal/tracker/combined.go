package tracker

import (
	"sort"
	"watd/internal/models"
	"watd/internal/providers"
	"watd/internal/structures"
)

// CombinedBuilder derives the combined table from the activity and orders
// tables. It is rebuilt in full on every write, so the output is always
// consistent with both sources as of the rebuild.
type CombinedBuilder struct {
	config  *structures.Config
	files   *FileManager
	metrics providers.MetricsProviderInterface
}

func NewCombinedBuilder(config *structures.Config, files *FileManager, metrics providers.MetricsProviderInterface) *CombinedBuilder {
	return &CombinedBuilder{
		config:  config,
		files:   files,
		metrics: metrics,
	}
}

func (b *CombinedBuilder) Rebuild() error {
	activity, err := b.files.LoadTable(b.config.ActivityPath(), models.ActivitySchema)
	if err != nil {
		return err
	}
	orders, err := b.files.LoadTable(b.config.OrdersPath(), models.OrdersSchema)
	if err != nil {
		return err
	}

	combined := JoinTables(activity, orders)
	if err := b.files.SaveTable(b.config.CombinedPath(), models.CombinedSchema, combined); err != nil {
		return err
	}

	b.metrics.SetTableRows("activity", len(activity))
	b.metrics.SetTableRows("orders", len(orders))
	b.metrics.SetTableRows("combined", len(combined))
	return nil
}

// JoinTables computes the full outer join of the two tables by date,
// ascending. Activity fields are renamed to the click columns; a date absent
// from one side leaves that side's fields empty.
func JoinTables(activity, orders []*models.DayRecord) []*models.DayRecord {
	activityByDate := make(map[string]*models.DayRecord, len(activity))
	for _, rec := range activity {
		activityByDate[rec.Date] = rec
	}
	ordersByDate := make(map[string]*models.DayRecord, len(orders))
	for _, rec := range orders {
		ordersByDate[rec.Date] = rec
	}

	dates := make([]string, 0, len(activityByDate)+len(ordersByDate))
	for date := range activityByDate {
		dates = append(dates, date)
	}
	for date := range ordersByDate {
		if _, ok := activityByDate[date]; !ok {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)

	combined := make([]*models.DayRecord, 0, len(dates))
	for _, date := range dates {
		rec := models.NewDayRecord(date)
		if act, ok := activityByDate[date]; ok {
			rec.Set(models.ColFirstClick, act.Get(models.ColFirst))
			rec.Set(models.ColLastClick, act.Get(models.ColLast))
		}
		if ord, ok := ordersByDate[date]; ok {
			rec.Set(models.ColOutstanding, ord.Get(models.ColOutstanding))
			rec.Set(models.ColShipped, ord.Get(models.ColShipped))
		}
		combined = append(combined, rec)
	}
	return combined
}

package insights

import (
	"fmt"
	"sort"
	"time"
)

// DayKeyLayout is the fixed-width bucket key format shared with the upstream
// result map. It does not sort lexically by date, so buckets are ordered by
// parsed date, never by string.
const DayKeyLayout = "02-01-2006"

// TimezonePolicy resolves the wall-clock timezone an order's calendar day is
// computed in, per storefront tag.
type TimezonePolicy struct {
	locations map[string]*time.Location
	fallback  *time.Location
}

// DefaultTimezonePolicy maps Paradis to the real Europe/Amsterdam zone
// (daylight-saving aware) and Persoliebe to a true fixed UTC-8, matching the
// source system's own day boundaries. Unknown tags stay in UTC.
func DefaultTimezonePolicy() (TimezonePolicy, error) {
	amsterdam, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		return TimezonePolicy{}, fmt.Errorf("loading Europe/Amsterdam: %w", err)
	}
	return TimezonePolicy{
		locations: map[string]*time.Location{
			AppParadis:    amsterdam,
			AppPersoliebe: time.FixedZone("UTC-8", -8*60*60),
		},
		fallback: time.UTC,
	}, nil
}

// NewTimezonePolicy builds a policy from explicit app→location mappings.
func NewTimezonePolicy(locations map[string]*time.Location, fallback *time.Location) TimezonePolicy {
	if fallback == nil {
		fallback = time.UTC
	}
	return TimezonePolicy{locations: locations, fallback: fallback}
}

// LocationFor returns the timezone for the given app tag.
func (p TimezonePolicy) LocationFor(app string) *time.Location {
	if loc, ok := p.locations[app]; ok {
		return loc
	}
	return p.fallback
}

// DayKey computes the DD-MM-YYYY calendar-day bucket for an order timestamp
// in the app's timezone.
func (p TimezonePolicy) DayKey(createdAt, app string) (string, error) {
	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return "", fmt.Errorf("parsing order timestamp %q: %w", createdAt, err)
	}
	return ts.In(p.LocationFor(app)).Format(DayKeyLayout), nil
}

// DayGroup pairs one day's summary stats with the orders that fall on it.
type DayGroup struct {
	Stats  DailyStat `json:"stats"`
	Orders []Order   `json:"orders"`
}

// GroupByDay partitions orders into calendar-day buckets. Buckets are seeded
// from the stat keys so zero-order days still appear; an order landing on a
// day with no summary row gets an all-zero stats placeholder. Orders whose
// timestamp fails to parse are dropped. Output is sorted ascending by true
// calendar date.
func GroupByDay(stats map[string]DailyStat, orders []Order, policy TimezonePolicy) []DayGroup {
	groups := make(map[string]*DayGroup, len(stats))
	for key, day := range stats {
		if day.Date == "" {
			day.Date = key
		}
		groups[key] = &DayGroup{Stats: day, Orders: []Order{}}
	}

	for _, order := range orders {
		key, err := policy.DayKey(order.CreatedAt, order.App)
		if err != nil {
			continue
		}
		group, ok := groups[key]
		if !ok {
			group = &DayGroup{Stats: DailyStat{Date: key}, Orders: []Order{}}
			groups[key] = group
		}
		group.Orders = append(group.Orders, order)
	}

	out := make([]DayGroup, 0, len(groups))
	for _, group := range groups {
		out = append(out, *group)
	}
	sort.Slice(out, func(i, j int) bool {
		return lessByDayKey(out[i].Stats.Date, out[j].Stats.Date)
	})
	return out
}

// SortedDays returns the daily stats ordered by true calendar date, for the
// table and per-field chart views.
func SortedDays(stats map[string]DailyStat) []DailyStat {
	out := make([]DailyStat, 0, len(stats))
	for key, day := range stats {
		if day.Date == "" {
			day.Date = key
		}
		out = append(out, day)
	}
	sort.Slice(out, func(i, j int) bool {
		return lessByDayKey(out[i].Date, out[j].Date)
	})
	return out
}

func lessByDayKey(a, b string) bool {
	ta, errA := time.Parse(DayKeyLayout, a)
	tb, errB := time.Parse(DayKeyLayout, b)
	if errA != nil || errB != nil {
		return a < b
	}
	return ta.Before(tb)
}

package domain

import (
	"sort"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Window rolling range of Days calendar days anchored at Start ("today")
type Window struct {
	Start types.Date
	Days  int
}

// NewWindow creates a window [today, today+days-1]
func NewWindow(today types.Date, days int) Window {
	if days < MinWindowDays {
		days = MinWindowDays
	}
	return Window{Start: today, Days: days}
}

// End returns the last date inside the window
func (w Window) End() types.Date {
	return w.Start.AddDays(w.Days - 1)
}

// Contains reports 0 <= d-Start <= Days-1
func (w Window) Contains(d types.Date) bool {
	offset := d.DaysSince(w.Start)
	return offset >= 0 && offset <= w.Days-1
}

// Dates lists every date of the window in order
func (w Window) Dates() []types.Date {
	dates := make([]types.Date, 0, w.Days)
	for i := 0; i < w.Days; i++ {
		dates = append(dates, w.Start.AddDays(i))
	}
	return dates
}

// Missing returns window dates that have no entry, in order
func (w Window) Missing(entries []*WorkingHoursEntry) []types.Date {
	existing := make(map[types.Date]struct{}, len(entries))
	for _, e := range entries {
		existing[e.Date] = struct{}{}
	}

	missing := make([]types.Date, 0)
	for _, d := range w.Dates() {
		if _, ok := existing[d]; !ok {
			missing = append(missing, d)
		}
	}
	return missing
}

// CountWithin counts distinct dates inside the window that have an entry
func (w Window) CountWithin(entries []*WorkingHoursEntry) int {
	seen := make(map[types.Date]struct{}, len(entries))
	for _, e := range entries {
		if w.Contains(e.Date) {
			seen[e.Date] = struct{}{}
		}
	}
	return len(seen)
}

// IsFull reports that every day of the window already has an entry
func (w Window) IsFull(entries []*WorkingHoursEntry) bool {
	return w.CountWithin(entries) >= w.Days
}

// CopyForwardTarget returns d+7 when it falls inside the window
func (w Window) CopyForwardTarget(d types.Date) (types.Date, bool) {
	target := d.AddDays(CopyForwardOffsetDays)
	if !w.Contains(target) {
		return types.Date{}, false
	}
	return target, true
}

// Filter keeps entries inside the window, sorted by date
func (w Window) Filter(entries []*WorkingHoursEntry) []*WorkingHoursEntry {
	out := make([]*WorkingHoursEntry, 0, len(entries))
	for _, e := range entries {
		if w.Contains(e.Date) {
			out = append(out, e)
		}
	}
	SortByDate(out)
	return out
}

// SortByDate sorts in place by date ascending
func SortByDate(entries []*WorkingHoursEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
}

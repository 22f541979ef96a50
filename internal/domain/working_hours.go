package domain

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// DayName lowercase English weekday name stored redundantly next to the date
type DayName string

const (
	Monday    DayName = "monday"
	Tuesday   DayName = "tuesday"
	Wednesday DayName = "wednesday"
	Thursday  DayName = "thursday"
	Friday    DayName = "friday"
	Saturday  DayName = "saturday"
	Sunday    DayName = "sunday"
)

// DayNames is Monday-first (ISO 8601): index 0 = monday ... 6 = sunday
var DayNames = [7]DayName{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// DayFromDate returns the ISO weekday name of the date.
// time.Weekday is Sunday=0, so it is shifted onto the Monday-first table.
func DayFromDate(d types.Date) DayName {
	return DayNames[(int(d.Weekday())+6)%7]
}

// ParseDayName accepts any casing ("Monday", "MONDAY")
func ParseDayName(s string) (DayName, error) {
	name := DayName(strings.ToLower(strings.TrimSpace(s)))
	for _, d := range DayNames {
		if d == name {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: unknown day %q", ErrInvalidEntry, s)
}

// WorkingHoursEntry one calendar day of a tenant's schedule
type WorkingHoursEntry struct {
	ID         string
	TenantID   string
	Date       types.Date
	Day        DayName
	IsClosed   bool
	Start      *types.TimeString
	End        *types.TimeString
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
	Workforce  int
}

// Schedule is the part of an entry that copy-forward propagates
type Schedule struct {
	IsClosed   bool
	Start      *types.TimeString
	End        *types.TimeString
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
	Workforce  int
}

// DefaultSchedule open 09:00-20:00, no break, workforce 3
func DefaultSchedule() Schedule {
	start, end := DefaultTemplateStart, DefaultTemplateEnd
	return Schedule{
		IsClosed:  false,
		Start:     &start,
		End:       &end,
		Workforce: DefaultTemplateWorkforce,
	}
}

// Schedule extracts the copyable fields
func (e *WorkingHoursEntry) Schedule() Schedule {
	return Schedule{
		IsClosed:   e.IsClosed,
		Start:      cloneTime(e.Start),
		End:        cloneTime(e.End),
		BreakStart: cloneTime(e.BreakStart),
		BreakEnd:   cloneTime(e.BreakEnd),
		Workforce:  e.Workforce,
	}
}

// ForDate builds a new (unsaved) entry for date with this schedule; Day is derived from date
func (s Schedule) ForDate(tenantID string, date types.Date) *WorkingHoursEntry {
	e := &WorkingHoursEntry{
		TenantID:   tenantID,
		Date:       date,
		IsClosed:   s.IsClosed,
		Start:      cloneTime(s.Start),
		End:        cloneTime(s.End),
		BreakStart: cloneTime(s.BreakStart),
		BreakEnd:   cloneTime(s.BreakEnd),
		Workforce:  s.Workforce,
	}
	e.Normalize()
	return e
}

// Clone returns a deep copy
func (e *WorkingHoursEntry) Clone() *WorkingHoursEntry {
	if e == nil {
		return nil
	}
	c := *e
	c.Start = cloneTime(e.Start)
	c.End = cloneTime(e.End)
	c.BreakStart = cloneTime(e.BreakStart)
	c.BreakEnd = cloneTime(e.BreakEnd)
	return &c
}

// Normalize enforces the storage shape before any write:
// Day is recomputed from Date, empty times become nil, a closed day carries no times.
func (e *WorkingHoursEntry) Normalize() {
	if !e.Date.IsZero() {
		e.Day = DayFromDate(e.Date)
	}

	e.Start = emptyToNil(e.Start)
	e.End = emptyToNil(e.End)
	e.BreakStart = emptyToNil(e.BreakStart)
	e.BreakEnd = emptyToNil(e.BreakEnd)

	if e.IsClosed {
		e.Start, e.End, e.BreakStart, e.BreakEnd = nil, nil, nil, nil
	}
}

// Validate checks entry invariants. Call after Normalize.
func (e *WorkingHoursEntry) Validate() error {
	if e.TenantID == "" {
		return fmt.Errorf("%w: tenantId is required", ErrInvalidEntry)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidEntry)
	}
	if e.Day != DayFromDate(e.Date) {
		return fmt.Errorf("%w: day %q does not match date %s", ErrInvalidEntry, e.Day, e.Date)
	}
	if e.Workforce < MinWorkforce || e.Workforce > MaxWorkforce {
		return fmt.Errorf("%w: workforce must be between %d and %d", ErrInvalidEntry, MinWorkforce, MaxWorkforce)
	}

	if e.IsClosed {
		if e.Start != nil || e.End != nil || e.BreakStart != nil || e.BreakEnd != nil {
			return fmt.Errorf("%w: closed day must not have hours", ErrInvalidEntry)
		}
		return nil
	}

	if e.Start == nil || e.End == nil {
		return fmt.Errorf("%w: start and end are required for an open day", ErrInvalidEntry)
	}
	for _, t := range []*types.TimeString{e.Start, e.End, e.BreakStart, e.BreakEnd} {
		if t == nil {
			continue
		}
		if err := t.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidEntry, err)
		}
	}
	if !e.Start.IsBefore(*e.End) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidEntry)
	}

	if (e.BreakStart == nil) != (e.BreakEnd == nil) {
		return fmt.Errorf("%w: break_start and break_end go together", ErrInvalidEntry)
	}
	if e.BreakStart != nil {
		if !e.BreakStart.IsBefore(*e.BreakEnd) {
			return fmt.Errorf("%w: break_start must be before break_end", ErrInvalidEntry)
		}
		if e.BreakStart.IsBefore(*e.Start) || e.BreakEnd.IsAfter(*e.End) {
			return fmt.Errorf("%w: break must be inside working hours", ErrInvalidEntry)
		}
	}

	return nil
}

func cloneTime(t *types.TimeString) *types.TimeString {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func emptyToNil(t *types.TimeString) *types.TimeString {
	if t == nil || t.IsZero() {
		return nil
	}
	return t
}

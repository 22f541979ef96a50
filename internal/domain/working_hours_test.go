package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func ts(s string) *types.TimeString {
	return ptr.Ptr(types.TimeString(s))
}

func TestDayFromDate_AllWeekdays(t *testing.T) {
	// 2024-06-03 is a Monday
	monday := types.MustParseDate("2024-06-03")
	want := []DayName{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

	for i, day := range want {
		d := monday.AddDays(i)
		assert.Equal(t, day, DayFromDate(d), "date %s", d)
	}

	assert.Equal(t, Saturday, DayFromDate(types.MustParseDate("2024-06-01")))
	assert.Equal(t, Sunday, DayFromDate(types.MustParseDate("2024-06-09")))
}

func TestParseDayName(t *testing.T) {
	d, err := ParseDayName(" Friday ")
	require.NoError(t, err)
	assert.Equal(t, Friday, d)

	_, err = ParseDayName("funday")
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestNormalize_ClosedClearsTimes(t *testing.T) {
	e := &WorkingHoursEntry{
		TenantID:   "t1",
		Date:       types.MustParseDate("2024-06-05"),
		Day:        Monday, // wrong on purpose
		IsClosed:   true,
		Start:      ts("09:00"),
		End:        ts("18:00"),
		BreakStart: ts("13:00"),
		BreakEnd:   ts("14:00"),
		Workforce:  2,
	}

	e.Normalize()

	assert.Equal(t, Wednesday, e.Day)
	assert.Nil(t, e.Start)
	assert.Nil(t, e.End)
	assert.Nil(t, e.BreakStart)
	assert.Nil(t, e.BreakEnd)
	assert.NoError(t, e.Validate())
}

func TestNormalize_EmptyBreakBecomesNil(t *testing.T) {
	e := DefaultSchedule().ForDate("t1", types.MustParseDate("2024-06-01"))
	e.BreakStart = ts("")
	e.BreakEnd = ts("")

	e.Normalize()

	assert.Nil(t, e.BreakStart)
	assert.Nil(t, e.BreakEnd)
	assert.NoError(t, e.Validate())
}

func TestValidate(t *testing.T) {
	base := func() *WorkingHoursEntry {
		e := DefaultSchedule().ForDate("t1", types.MustParseDate("2024-06-01"))
		return e
	}

	tests := []struct {
		name    string
		mutate  func(e *WorkingHoursEntry)
		wantErr bool
	}{
		{"default template is valid", func(e *WorkingHoursEntry) {}, false},
		{"valid break", func(e *WorkingHoursEntry) { e.BreakStart, e.BreakEnd = ts("13:00"), ts("14:00") }, false},
		{"missing tenant", func(e *WorkingHoursEntry) { e.TenantID = "" }, true},
		{"missing end", func(e *WorkingHoursEntry) { e.End = nil }, true},
		{"start after end", func(e *WorkingHoursEntry) { e.Start, e.End = ts("20:00"), ts("09:00") }, true},
		{"start equals end", func(e *WorkingHoursEntry) { e.End = ts("09:00") }, true},
		{"bad time format", func(e *WorkingHoursEntry) { e.Start = ts("9am") }, true},
		{"half break", func(e *WorkingHoursEntry) { e.BreakStart = ts("13:00") }, true},
		{"reversed break", func(e *WorkingHoursEntry) { e.BreakStart, e.BreakEnd = ts("14:00"), ts("13:00") }, true},
		{"break outside hours", func(e *WorkingHoursEntry) { e.BreakStart, e.BreakEnd = ts("19:30"), ts("21:00") }, true},
		{"negative workforce", func(e *WorkingHoursEntry) { e.Workforce = -1 }, true},
		{"day mismatch", func(e *WorkingHoursEntry) { e.Day = Monday }, true},
		{"closed with hours", func(e *WorkingHoursEntry) { e.IsClosed = true }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := base()
			tt.mutate(e)
			err := e.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEntry)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScheduleForDate_RecomputesDayAndCopies(t *testing.T) {
	src := &WorkingHoursEntry{
		ID:         "a1",
		TenantID:   "t1",
		Date:       types.MustParseDate("2024-06-01"),
		Day:        Saturday,
		Start:      ts("10:00"),
		End:        ts("16:00"),
		BreakStart: ts("12:00"),
		BreakEnd:   ts("12:30"),
		Workforce:  5,
	}

	copied := src.Schedule().ForDate("t1", types.MustParseDate("2024-06-08"))

	assert.Empty(t, copied.ID)
	assert.Equal(t, Saturday, copied.Day)
	assert.Equal(t, "2024-06-08", copied.Date.String())
	assert.Equal(t, 5, copied.Workforce)
	assert.Equal(t, *src.Start, *copied.Start)
	assert.Equal(t, *src.BreakEnd, *copied.BreakEnd)

	// the copy does not alias the source
	*copied.Start = "11:00"
	assert.Equal(t, types.TimeString("10:00"), *src.Start)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyCopyForward, p)

	p, err = ParsePolicy("PRUNE_AND_BACKFILL")
	require.NoError(t, err)
	assert.Equal(t, PolicyPruneAndBackfill, p)

	_, err = ParsePolicy("auto")
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

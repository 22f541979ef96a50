package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.June, Day: 1}, d)

	d, err = ParseDate("2024-06-08T00:00:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-08", d.String())

	_, err = ParseDate("06/01/2024")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestDate_Arithmetic(t *testing.T) {
	today := MustParseDate("2024-06-01")

	assert.Equal(t, "2024-06-14", today.AddDays(13).String())
	assert.Equal(t, "2024-05-31", today.AddDays(-1).String())
	assert.Equal(t, "2023-06-02", today.AddDays(-365).String())

	assert.Equal(t, 7, today.AddDays(7).DaysSince(today))
	assert.Equal(t, -1, today.AddDays(-1).DaysSince(today))
	assert.Equal(t, 0, today.DaysSince(today))

	assert.True(t, today.Before(today.AddDays(1)))
	assert.True(t, today.After(today.AddDays(-1)))
	assert.False(t, today.Before(today))
}

func TestDate_AcrossMonthAndLeapYear(t *testing.T) {
	assert.Equal(t, "2024-02-29", MustParseDate("2024-02-22").AddDays(7).String())
	assert.Equal(t, "2024-03-07", MustParseDate("2024-02-29").AddDays(7).String())
	assert.Equal(t, 366, MustParseDate("2025-01-01").DaysSince(MustParseDate("2024-01-01")))
}

func TestDate_DateOfUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	moment := time.Date(2024, 5, 31, 20, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-05-31", DateOf(moment).String())
	assert.Equal(t, "2024-06-01", DateOf(moment.In(loc)).String())
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		Date Date `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-06-10T00:00:00.000Z"}`), &payload))
	assert.Equal(t, "2024-06-10", payload.Date.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-06-10"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"date":42}`), &payload))
}

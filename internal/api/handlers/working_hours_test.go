package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

func TestEntryPayload_ParseOpenDay(t *testing.T) {
	p := &EntryPayload{
		Date:       "2024-06-03T00:00:00.000Z",
		Start:      ptr.Ptr("10:00"),
		End:        ptr.Ptr("18:00"),
		BreakStart: ptr.Ptr(""),
		Workforce:  2,
	}

	parsed, err := p.Parse()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-03", parsed.Date.String())
	require.NotNil(t, parsed.Start)
	assert.Equal(t, "10:00", parsed.Start.String())
	assert.Nil(t, parsed.BreakStart)
	assert.Nil(t, parsed.BreakEnd)
}

func TestEntryPayload_ParseRejectsBadTime(t *testing.T) {
	p := &EntryPayload{Date: "2024-06-03", Start: ptr.Ptr("9am"), End: ptr.Ptr("18:00")}

	_, err := p.Parse()
	assert.Error(t, err)
}

func TestEntryPayload_ParseClosedDayIgnoresTimes(t *testing.T) {
	p := &EntryPayload{
		Date:       "2024-06-09",
		IsClosed:   true,
		Start:      ptr.Ptr("garbage"),
		End:        ptr.Ptr("18:00"),
		BreakStart: ptr.Ptr("13:00"),
	}

	parsed, err := p.Parse()
	require.NoError(t, err)
	assert.True(t, parsed.IsClosed)
	assert.Nil(t, parsed.Start)
	assert.Nil(t, parsed.End)
	assert.Nil(t, parsed.BreakStart)
	assert.Nil(t, parsed.BreakEnd)
}

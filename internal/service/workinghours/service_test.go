package workinghours

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/backend/backendtest"
	"github.com/m04kA/SMC-ScheduleService/internal/service/maintainer"
	"github.com/m04kA/SMC-ScheduleService/internal/service/workinghours/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

const tenant = "salon-1"

func setup(t *testing.T) (*Service, *backendtest.Backend, *backendtest.Clock) {
	t.Helper()
	fake := backendtest.New()
	clock := backendtest.NewClock(time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))
	log := logger.NewWithWriter(io.Discard, logger.LevelDebug)

	windows := maintainer.NewService(maintainer.Settings{Location: time.UTC}, fake, nil, nil, nil, clock, log)
	return NewService(fake, windows, log), fake, clock
}

func seed(fake *backendtest.Backend, dates ...string) {
	for _, d := range dates {
		fake.Seed(domain.DefaultSchedule().ForDate(tenant, types.MustParseDate(d)))
	}
}

func TestGetWindow_ServesCacheWithinSameDay(t *testing.T) {
	svc, fake, _ := setup(t)
	seed(fake, "2024-06-01", "2024-06-02", "2024-06-20")

	view, err := svc.GetWindow(context.Background(), tenant)
	require.NoError(t, err)
	assert.Len(t, view.Entries, 2)
	assert.False(t, view.IsFull())

	_, err = svc.GetWindow(context.Background(), tenant)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.CallCount("list"))
}

func TestGetWindow_ReloadsAfterMidnight(t *testing.T) {
	svc, fake, clock := setup(t)
	seed(fake, "2024-06-01", "2024-06-15")

	view, err := svc.GetWindow(context.Background(), tenant)
	require.NoError(t, err)
	require.Len(t, view.Entries, 1)
	assert.Equal(t, "2024-06-01", view.Entries[0].Date.String())

	clock.Set(time.Date(2024, 6, 2, 0, 1, 0, 0, time.UTC))

	view, err = svc.GetWindow(context.Background(), tenant)
	require.NoError(t, err)
	assert.Equal(t, 2, fake.CallCount("list"))
	assert.Equal(t, "2024-06-02", view.Window.Start.String())
	require.Len(t, view.Entries, 1)
	assert.Equal(t, "2024-06-15", view.Entries[0].Date.String())
}

func TestApply_PatchesCacheWithoutBackend(t *testing.T) {
	svc, fake, _ := setup(t)
	seed(fake, "2024-06-01", "2024-06-02")

	view, err := svc.GetWindow(context.Background(), tenant)
	require.NoError(t, err)

	edited := view.Entries[0].Clone()
	edited.Workforce = 9
	svc.Apply(tenant, domain.Mutation{Kind: domain.MutationUpdated, Entry: edited})

	// returned views are copies
	view.Entries[1].Workforce = 42

	view, err = svc.GetWindow(context.Background(), tenant)
	require.NoError(t, err)
	assert.Equal(t, 9, view.Entries[0].Workforce)
	assert.Equal(t, domain.DefaultTemplateWorkforce, view.Entries[1].Workforce)
	assert.Equal(t, 1, fake.CallCount("list"))
}

func TestApply_DropsEntriesOutsideWindow(t *testing.T) {
	svc, fake, _ := setup(t)
	seed(fake, "2024-06-01")

	_, err := svc.GetWindow(context.Background(), tenant)
	require.NoError(t, err)

	far := domain.DefaultSchedule().ForDate(tenant, types.MustParseDate("2024-06-21"))
	far.ID = "far"
	near := domain.DefaultSchedule().ForDate(tenant, types.MustParseDate("2024-06-05"))
	near.ID = "near"
	svc.Apply(tenant, domain.Mutation{Kind: domain.MutationCreated, Entry: far})
	svc.Apply(tenant, domain.Mutation{Kind: domain.MutationCreated, Entry: near})

	view, err := svc.GetWindow(context.Background(), tenant)
	require.NoError(t, err)
	require.Len(t, view.Entries, 2)
	assert.Equal(t, "2024-06-01", view.Entries[0].Date.String())
	assert.Equal(t, "near", view.Entries[1].ID)
}

func TestApply_WithoutCacheIsNoop(t *testing.T) {
	svc, _, _ := setup(t)

	svc.Apply(tenant, domain.Mutation{Kind: domain.MutationDeleted, ID: "x"})

	svc.mu.RLock()
	defer svc.mu.RUnlock()
	assert.Empty(t, svc.views)
}

func TestInvalidate(t *testing.T) {
	svc, fake, _ := setup(t)

	_, err := svc.GetWindow(context.Background(), tenant)
	require.NoError(t, err)
	svc.Invalidate(tenant)
	_, err = svc.GetWindow(context.Background(), tenant)
	require.NoError(t, err)

	assert.Equal(t, 2, fake.CallCount("list"))
}

func TestReload_Error(t *testing.T) {
	svc, fake, _ := setup(t)
	fake.ListErr = backendtest.ServerError("list_working_hours")

	_, err := svc.Reload(context.Background(), tenant)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetEntry(t *testing.T) {
	svc, fake, _ := setup(t)
	fake.Seed(&domain.WorkingHoursEntry{ID: "a1", TenantID: tenant, Date: types.MustParseDate("2024-06-03"), Day: domain.Monday, IsClosed: true})
	fake.Seed(&domain.WorkingHoursEntry{ID: "b1", TenantID: "other", Date: types.MustParseDate("2024-06-03"), Day: domain.Monday, IsClosed: true})

	e, err := svc.GetEntry(context.Background(), tenant, "a1")
	require.NoError(t, err)
	assert.True(t, e.IsClosed)

	_, err = svc.GetEntry(context.Background(), tenant, "b1")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	_, err = svc.GetEntry(context.Background(), tenant, "missing")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestSearch(t *testing.T) {
	svc, fake, _ := setup(t)
	seed(fake, "2024-05-27", "2024-06-03", "2024-06-04", "2024-06-10")

	start := types.MustParseDate("2024-06-01")
	entries, err := svc.Search(context.Background(), models.SearchRequest{
		TenantID:  tenant,
		StartDate: &start,
		Day:       ptr.Ptr(domain.Monday),
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2024-06-03", entries[0].Date.String())
	assert.Equal(t, "2024-06-10", entries[1].Date.String())
}

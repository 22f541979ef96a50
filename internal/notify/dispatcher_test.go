package notify

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

type blockingClient struct {
	release chan struct{}

	mu    sync.Mutex
	calls []Request
	err   error
}

func (c *blockingClient) DetectAffectedBookings(_ context.Context, tenantID string, dates []types.Date) (int, error) {
	if c.release != nil {
		<-c.release
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, Request{TenantID: tenantID, Dates: dates})
	return len(dates), c.err
}

func (c *blockingClient) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

func discard() *logger.Logger {
	return logger.NewWithWriter(io.Discard, logger.LevelDebug)
}

func TestDispatcher_DeliversAndDrainsOnClose(t *testing.T) {
	client := &blockingClient{}
	d := NewDispatcher(client, 10, time.Second, discard())

	dates := []types.Date{types.MustParseDate("2024-06-01")}
	for i := 0; i < 5; i++ {
		require.True(t, d.Dispatch("t1", dates))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	assert.Equal(t, 5, client.count())
	assert.Equal(t, "t1", client.calls[0].TenantID)
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	client := &blockingClient{release: make(chan struct{})}
	d := NewDispatcher(client, 1, time.Second, discard())
	dates := []types.Date{types.MustParseDate("2024-06-01")}

	// first request is taken by the worker which then blocks,
	// second fills the queue, the rest must be dropped
	accepted := 0
	for i := 0; i < 10; i++ {
		if d.Dispatch("t1", dates) {
			accepted++
		}
	}
	assert.LessOrEqual(t, accepted, 2)
	assert.GreaterOrEqual(t, accepted, 1)

	close(client.release)
	require.NoError(t, d.Close(context.Background()))
	assert.Equal(t, accepted, client.count())
}

func TestDispatcher_RejectsAfterClose(t *testing.T) {
	d := NewDispatcher(&blockingClient{}, 1, time.Second, discard())
	require.NoError(t, d.Close(context.Background()))
	require.NoError(t, d.Close(context.Background()))

	assert.False(t, d.Dispatch("t1", nil))
}

func TestDispatcher_ClientErrorDoesNotStopWorker(t *testing.T) {
	client := &blockingClient{err: errors.New("backend down")}
	d := NewDispatcher(client, 4, time.Second, discard())

	assert.True(t, d.Dispatch("t1", nil))
	assert.True(t, d.Dispatch("t2", nil))
	require.NoError(t, d.Close(context.Background()))

	assert.Equal(t, 2, client.count())
}

func TestDispatcher_CloseHonoursContext(t *testing.T) {
	client := &blockingClient{release: make(chan struct{})}
	d := NewDispatcher(client, 1, time.Second, discard())
	require.True(t, d.Dispatch("t1", nil))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Close(ctx), context.DeadlineExceeded)

	close(client.release)
	require.NoError(t, d.Close(context.Background()))
}

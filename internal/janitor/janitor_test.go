package janitor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-booking-api/internal/model"
	"service-booking-api/internal/store"
)

func TestRunNowPurgesExpiredSessions(t *testing.T) {
	st := store.New(store.NewMemory(), nil)
	defer st.Close()
	ctx := context.Background()

	_, err := st.CreateSession(ctx, "old", "ann@example.com", time.Millisecond)
	require.NoError(t, err)
	_, err = st.CreateSession(ctx, "fresh", "ann@example.com", time.Hour)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	var removed int
	j := New(time.UTC, nil)
	require.NoError(t, j.Add("sessions", "@every 1m", func(ctx context.Context) (int, error) {
		n, err := st.PurgeExpiredSessions(ctx, time.Now())
		removed += n
		return n, err
	}))
	j.RunNow(ctx)
	assert.Equal(t, 1, removed)

	_, err = st.GetSession(ctx, "old")
	assert.ErrorIs(t, err, store.ErrNotFound)
	var s *model.Session
	s, err = st.GetSession(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", s.Email)
}

func TestFailingJobDoesNotStopOthers(t *testing.T) {
	var ran atomic.Int32
	j := New(nil, nil)
	require.NoError(t, j.Add("broken", "@every 1h", func(context.Context) (int, error) {
		return 0, errors.New("backend down")
	}))
	require.NoError(t, j.Add("panics", "@every 1h", func(context.Context) (int, error) {
		panic("boom")
	}))
	require.NoError(t, j.Add("counter", "@every 1h", func(context.Context) (int, error) {
		ran.Add(1)
		return 1, nil
	}))

	j.RunNow(context.Background())
	assert.Equal(t, int32(1), ran.Load())
}

func TestBadSchedule(t *testing.T) {
	j := New(nil, nil)
	assert.Error(t, j.Add("x", "every now and then", func(context.Context) (int, error) { return 0, nil }))
}

func TestScheduledRun(t *testing.T) {
	done := make(chan struct{}, 1)
	j := New(nil, nil)
	require.NoError(t, j.Add("tick", "@every 1s", func(context.Context) (int, error) {
		select {
		case done <- struct{}{}:
		default:
		}
		return 0, nil
	}))
	j.Start()
	defer j.Stop()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("job never ran")
	}
}

package scheduler

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	jobs := NewJobs(nil, nil, nil, nil, nil, 0, time.UTC, zerolog.Nop())
	return New(time.UTC, jobs, zerolog.Nop())
}

func TestScheduler_StartRegistersAllJobs(t *testing.T) {
	s := newTestScheduler(t)
	defer s.Stop()

	require.NoError(t, s.Start())
	assert.True(t, s.Running())
	assert.Len(t, s.entries, 3)
	assert.Contains(t, s.entries, "check_expiring_items")
	assert.Contains(t, s.entries, "check_space_usage")
	assert.Contains(t, s.entries, "send_monthly_stats")
	assert.Len(t, s.cron.Entries(), 3)
}

func TestScheduler_StartTwiceIsIdempotent(t *testing.T) {
	s := newTestScheduler(t)
	defer s.Stop()

	require.NoError(t, s.Start())
	require.NoError(t, s.Start())
	assert.Len(t, s.cron.Entries(), 3)
}

func TestScheduler_RestartReplacesEntries(t *testing.T) {
	s := newTestScheduler(t)

	require.NoError(t, s.Start())
	s.Stop()
	assert.False(t, s.Running())

	// Re-registration replaces the old entries instead of stacking them.
	require.NoError(t, s.Start())
	defer s.Stop()
	assert.True(t, s.Running())
	assert.Len(t, s.cron.Entries(), 3)
}

func TestScheduler_StopWithoutStartIsNoop(t *testing.T) {
	s := newTestScheduler(t)

	s.Stop()
	assert.False(t, s.Running())
}

package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalkit/portalkit/internal/shared/logger"
)

type mockBatchJob struct {
	count int
	err   error
	calls int
}

func (m *mockBatchJob) Execute(context.Context) (int, error) {
	m.calls++
	return m.count, m.err
}

func TestRegisterOTPPurgeJob(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNop())
	require.NoError(t, err)

	require.NoError(t, m.RegisterOTPPurgeJob("*/10 * * * *", &mockBatchJob{}))

	jobs := m.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "otp-purge", jobs[0].Name())
	assert.ElementsMatch(t, []string{"otp", "cleanup"}, jobs[0].Tags())
}

func TestRegisterOTPPurgeJobRejectsBadCron(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNop())
	require.NoError(t, err)

	assert.Error(t, m.RegisterOTPPurgeJob("every ten minutes", &mockBatchJob{}))
}

func TestRunBatch(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNop())
	require.NoError(t, err)

	ok := &mockBatchJob{count: 3}
	m.runBatch(context.Background(), "otp-purge", ok)
	assert.Equal(t, 1, ok.calls)

	failing := &mockBatchJob{err: errors.New("db down")}
	m.runBatch(context.Background(), "otp-purge", failing)
	assert.Equal(t, 1, failing.calls)
}

func TestStartStop(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNop())
	require.NoError(t, err)

	assert.NoError(t, m.Stop(), "stopping an idle scheduler is a no-op")
	m.Start()
	m.Start()
	assert.True(t, m.IsStarted())
	require.NoError(t, m.Stop())
	assert.False(t, m.IsStarted())
}

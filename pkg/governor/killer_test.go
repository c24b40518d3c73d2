package governor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchd-io/punchd/pkg/models"
)

type fakeAborter struct {
	alreadyDead bool
	err         error
	calls       []string
}

func (f *fakeAborter) Abort(_ context.Context, sessionID string) (bool, error) {
	f.calls = append(f.calls, sessionID)
	return f.alreadyDead, f.err
}

type fakePunchWriter struct {
	punches []*models.Punch
	err     error
}

func (f *fakePunchWriter) WritePunch(_ context.Context, p *models.Punch) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	// Mimic the unique source_hash constraint.
	for _, existing := range f.punches {
		if existing.SourceHash == p.SourceHash {
			return false, nil
		}
	}
	f.punches = append(f.punches, p)
	return true, nil
}

func testDetection() models.LoopDetection {
	return models.LoopDetection{
		SessionID:      "s1",
		Classification: models.LoopStepOverflow,
		Reason:         "step count 12 exceeded limit 10",
		Metrics:        models.SessionMetrics{StepCount: 12, TotalCost: 1.5},
	}
}

func TestKiller_Kill(t *testing.T) {
	t.Run("aborts and records the kill punch", func(t *testing.T) {
		aborter := &fakeAborter{}
		writer := &fakePunchWriter{}
		killer := NewKiller(aborter, writer)

		conf, err := killer.Kill(context.Background(), testDetection())
		require.NoError(t, err)
		assert.Equal(t, []string{"s1"}, aborter.calls)
		assert.Equal(t, "s1", conf.SessionID)
		assert.False(t, conf.AlreadyDead)
		assert.Equal(t, 12, conf.FinalMetrics.StepCount)

		require.Len(t, writer.punches, 1)
		punch := writer.punches[0]
		assert.Equal(t, models.PunchTypeGovernorKill, punch.PunchType)
		assert.Equal(t, "step_overflow", punch.PunchKey)
		require.NotNil(t, punch.Cost)
		assert.InDelta(t, 1.5, *punch.Cost, 1e-9)
	})

	t.Run("already-dead session is still a successful kill", func(t *testing.T) {
		aborter := &fakeAborter{alreadyDead: true}
		writer := &fakePunchWriter{}
		killer := NewKiller(aborter, writer)

		conf, err := killer.Kill(context.Background(), testDetection())
		require.NoError(t, err)
		assert.True(t, conf.AlreadyDead)
		assert.Contains(t, conf.Trigger.Reason, "(session was already terminated)")
		assert.Len(t, writer.punches, 1)
	})

	t.Run("repeated kills record exactly one punch", func(t *testing.T) {
		writer := &fakePunchWriter{}
		killer := NewKiller(&fakeAborter{}, writer)

		detection := testDetection()
		_, err := killer.Kill(context.Background(), detection)
		require.NoError(t, err)
		_, err = killer.Kill(context.Background(), detection)
		require.NoError(t, err)

		assert.Len(t, writer.punches, 1)
	})

	t.Run("abort error fails the kill", func(t *testing.T) {
		aborter := &fakeAborter{err: errors.New("host unreachable")}
		killer := NewKiller(aborter, &fakePunchWriter{})

		_, err := killer.Kill(context.Background(), testDetection())
		assert.Error(t, err)
	})

	t.Run("writer failure does not fail the kill", func(t *testing.T) {
		writer := &fakePunchWriter{err: errors.New("db down")}
		killer := NewKiller(&fakeAborter{}, writer)

		conf, err := killer.Kill(context.Background(), testDetection())
		require.NoError(t, err)
		assert.Equal(t, "s1", conf.SessionID)
	})

	t.Run("nil writer skips the record", func(t *testing.T) {
		killer := NewKiller(&fakeAborter{}, nil)
		_, err := killer.Kill(context.Background(), testDetection())
		assert.NoError(t, err)
	})
}

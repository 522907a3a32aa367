package Requests

import (
	"Encore/Admission"
	"Encore/Classify"
	"Encore/Retry"
	"Encore/Utils"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pipelineFixture struct {

	Pipeline *Pipeline
	Now      *time.Time
	Slept    *[]time.Duration

}

func newPipelineFixture(t *testing.T) pipelineFixture {

	t.Helper()

	Now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	Slept := []time.Duration{}

	Gate := Admission.NewGate(Admission.NewMemoryStore(0), 5*time.Second, Utils.NopLogging())
	Gate.Clock = func() time.Time { return Now }

	Executor, ErrorCreating := Retry.NewExecutor(Retry.DefaultConfig(), Utils.NopLogging())
	require.NoError(t, ErrorCreating)

	Executor.Sleep = func(Ctx context.Context, Delay time.Duration) error {

		Slept = append(Slept, Delay)
		return nil

	}

	return pipelineFixture{

		Pipeline: NewPipeline(Gate, Executor, time.Minute, Utils.NopLogging()),
		Now:      &Now,
		Slept:    &Slept,

	}

}

func TestExecuteSucceedsAfterRateLimits(t *testing.T) {

	Fixture := newPipelineFixture(t)

	Calls := 0

	Result := Fixture.Pipeline.Execute(context.Background(), "guild", "play", func(context.Context) error {

		Calls++

		if Calls < 3 {

			return &Classify.PlaybackError{Status: 429}

		}

		return nil

	})

	assert.Equal(t, StatusSucceeded, Result.Status)
	assert.Equal(t, 3, Result.Attempts)
	assert.NoError(t, Result.Err)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, *Fixture.Slept)

}

func TestExecuteRejectedNeverCallsOperation(t *testing.T) {

	Fixture := newPipelineFixture(t)

	Calls := 0
	Operation := func(context.Context) error { Calls++; return nil }

	require.Equal(t, StatusSucceeded, Fixture.Pipeline.Execute(context.Background(), "guild", "play", Operation).Status)

	*Fixture.Now = Fixture.Now.Add(2 * time.Second)

	Result := Fixture.Pipeline.Execute(context.Background(), "guild", "play", Operation)

	assert.Equal(t, StatusRejected, Result.Status)
	assert.False(t, Result.Admitted())
	assert.Equal(t, 3*time.Second, Result.RetryAfter)
	assert.NoError(t, Result.Err)
	assert.Equal(t, 1, Calls)

}

func TestExecuteTerminalKeepsOriginalError(t *testing.T) {

	Fixture := newPipelineFixture(t)

	Unavailable := errors.New("Video unavailable")

	Result := Fixture.Pipeline.Execute(context.Background(), "guild", "play", func(context.Context) error { return Unavailable })

	assert.Equal(t, StatusFailed, Result.Status)
	assert.Same(t, Unavailable, Result.Err)
	assert.Equal(t, 1, Result.Attempts)
	assert.False(t, Result.RateLimited())
	assert.Empty(t, *Fixture.Slept)

}

func TestExecuteExhaustedRateLimit(t *testing.T) {

	Fixture := newPipelineFixture(t)

	Result := Fixture.Pipeline.Execute(context.Background(), "guild", "play", func(context.Context) error {

		return errors.New("Too Many Requests")

	})

	assert.True(t, Result.RateLimited())
	assert.Equal(t, 3, Result.Attempts)

}

func TestExecuteNotifiesObservers(t *testing.T) {

	Fixture := newPipelineFixture(t)

	Seen := []Outcome{}

	Fixture.Pipeline.Observe(func(Result Outcome) { Seen = append(Seen, Result) })

	Fixture.Pipeline.Execute(context.Background(), "a", "play", func(context.Context) error { return nil })
	Fixture.Pipeline.Execute(context.Background(), "a", "play", func(context.Context) error { return nil })

	require.Len(t, Seen, 2)
	assert.Equal(t, StatusSucceeded, Seen[0].Status)
	assert.Equal(t, StatusRejected, Seen[1].Status)

}

func TestExecuteTimeoutReachesOperation(t *testing.T) {

	Fixture := newPipelineFixture(t)
	Fixture.Pipeline.Timeout = time.Millisecond

	Result := Fixture.Pipeline.Execute(context.Background(), "guild", "play", func(Ctx context.Context) error {

		<-Ctx.Done()
		return Ctx.Err()

	})

	assert.Equal(t, StatusFailed, Result.Status)
	assert.ErrorIs(t, Result.Err, context.DeadlineExceeded)

}

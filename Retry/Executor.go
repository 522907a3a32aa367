package Retry

import (
	"Encore/Classify"
	"Encore/Utils"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Report describes a finished run. Class is the classification of the last failure, if any.
type Report struct {

	Attempts int
	Delays   []time.Duration
	Class    Classify.Class

}

// Executor runs a single fallible operation with bounded exponential backoff on rate-limit failures.
type Executor struct {

	Config Config
	Logger *Utils.Logging

	// Sleep waits between attempts; replaced in tests.
	Sleep func(Ctx context.Context, Delay time.Duration) error

}

func NewExecutor(Config Config, Logger *Utils.Logging) (*Executor, error) {

	if ErrorValidating := Config.Validate(); ErrorValidating != nil {

		return nil, fmt.Errorf("invalid retry config: %w", ErrorValidating)

	}

	if Logger == nil {

		Logger = Utils.Logger

	}

	return &Executor{

		Config: Config,
		Logger: Logger,
		Sleep:  SleepContext,

	}, nil

}

// SleepContext blocks for Delay or until the context ends.
func SleepContext(Ctx context.Context, Delay time.Duration) error {

	if Delay <= 0 {

		return Ctx.Err()

	}

	Timer := time.NewTimer(Delay)
	defer Timer.Stop()

	select {

		case <-Ctx.Done():

			return Ctx.Err()

		case <-Timer.C:

			return nil

	}

}

// Run is RunWithBackoff for operations without a result value, using the configured MaxRetries.
func (E *Executor) Run(Ctx context.Context, Label string, Operation func(context.Context) error) (Report, error) {

	_, RunReport, ErrorRunning := RunWithBackoff(Ctx, E, Label, 0, func(Ctx context.Context) (struct{}, error) {

		return struct{}{}, Operation(Ctx)

	})

	return RunReport, ErrorRunning

}

// RunWithBackoff invokes Operation at most MaxRetries times (the executor's config when MaxRetries <= 0).
// A failure is terminal when it is not rate-limit class or when it happens on the last attempt; the
// operation's own error is returned unchanged in that case.
func RunWithBackoff[T any](Ctx context.Context, E *Executor, Label string, MaxRetries int, Operation func(context.Context) (T, error)) (T, Report, error) {

	var Zero T
	var RunReport Report

	if MaxRetries <= 0 {

		MaxRetries = E.Config.MaxRetries

	}

	Sleep := E.Sleep

	if Sleep == nil {

		Sleep = SleepContext

	}

	for Attempt := 1; ; Attempt++ {

		if ErrorContext := Ctx.Err(); ErrorContext != nil {

			return Zero, RunReport, ErrorContext

		}

		RunReport.Attempts = Attempt

		Result, ErrorRunning := Operation(Ctx)

		if ErrorRunning == nil {

			return Result, RunReport, nil

		}

		RunReport.Class = Classify.Of(ErrorRunning)

		if !RunReport.Class.Retryable() || Attempt >= MaxRetries {

			return Zero, RunReport, ErrorRunning

		}

		Delay := E.Config.Delay(Attempt)

		E.Logger.Warn("Rate limited, retrying",

			zap.String("label", Label),
			zap.Int("attempt", Attempt),
			zap.Int("max_retries", MaxRetries),
			zap.Duration("delay", Delay),
			zap.Error(ErrorRunning),

		)

		RunReport.Delays = append(RunReport.Delays, Delay)

		if ErrorSleeping := Sleep(Ctx, Delay); ErrorSleeping != nil {

			return Zero, RunReport, fmt.Errorf("%s: retry cancelled after attempt %d: %w (last error: %w)", Label, Attempt, ErrorSleeping, ErrorRunning)

		}

	}

}

package Requests

import (
	"Encore/Admission"
	"Encore/Metrics"
	"Encore/Retry"
	"Encore/Utils"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Pipeline is the only path from a command to the playback engine: admission first, then the
// retry executor.
type Pipeline struct {

	Gate     *Admission.Gate
	Executor *Retry.Executor

	// Timeout bounds one admitted request including all of its backoff; 0 disables it.
	Timeout time.Duration

	Logger *Utils.Logging

	Observers      []func(Outcome)
	ObserversMutex sync.RWMutex

}

func NewPipeline(Gate *Admission.Gate, Executor *Retry.Executor, Timeout time.Duration, Logger *Utils.Logging) *Pipeline {

	if Logger == nil {

		Logger = Utils.Logger

	}

	return &Pipeline{

		Gate:     Gate,
		Executor: Executor,
		Timeout:  Timeout,
		Logger:   Logger,

	}

}

// Observe registers a callback invoked with every outcome.
func (P *Pipeline) Observe(Observer func(Outcome)) {

	P.ObserversMutex.Lock()
	defer P.ObserversMutex.Unlock()

	P.Observers = append(P.Observers, Observer)

}

// Execute admits GuildID and, when admitted, runs Operation under the retry executor.
func (P *Pipeline) Execute(Ctx context.Context, GuildID string, Label string, Operation func(context.Context) error) Outcome {

	Result := Outcome{GuildID: GuildID, Label: Label}

	Decision := P.Gate.Admit(Ctx, GuildID)

	if !Decision.Admitted {

		Metrics.Admissions.WithLabelValues("rejected").Inc()

		Result.Status = StatusRejected
		Result.RetryAfter = Decision.RetryAfter

		P.Logger.Debug("Request rejected by cooldown", zap.String("guild", GuildID), zap.Duration("retry_after", Decision.RetryAfter))

		return P.finish(Result)

	}

	Metrics.Admissions.WithLabelValues("admitted").Inc()

	if P.Timeout > 0 {

		var CancelFunc context.CancelFunc

		Ctx, CancelFunc = context.WithTimeout(Ctx, P.Timeout)
		defer CancelFunc()

	}

	RunReport, ErrorRunning := P.Executor.Run(Ctx, Label, Operation)

	Result.Attempts = RunReport.Attempts
	Result.Class = RunReport.Class

	Metrics.Retries.Add(float64(len(RunReport.Delays)))
	Metrics.Attempts.Observe(float64(RunReport.Attempts))

	if ErrorRunning != nil {

		Result.Status = StatusFailed
		Result.Err = ErrorRunning

		P.Logger.Warn("Request failed",

			zap.String("guild", GuildID),
			zap.String("label", Label),
			zap.Int("attempts", RunReport.Attempts),
			zap.Stringer("class", RunReport.Class),
			zap.Error(ErrorRunning),

		)

		return P.finish(Result)

	}

	Result.Status = StatusSucceeded

	P.Logger.Info("Request completed", zap.String("guild", GuildID), zap.String("label", Label), zap.Int("attempts", RunReport.Attempts))

	return P.finish(Result)

}

func (P *Pipeline) finish(Result Outcome) Outcome {

	Metrics.Requests.WithLabelValues(string(Result.Status), Result.Class.String()).Inc()

	P.ObserversMutex.RLock()
	Observers := append([]func(Outcome){}, P.Observers...)
	P.ObserversMutex.RUnlock()

	for _, Observer := range Observers {

		Observer(Result)

	}

	return Result

}

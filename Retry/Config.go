package Retry

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Config defines backoff behaviour for calls into the playback engine.
type Config struct {

	MaxRetries    int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64

}

// DefaultConfig returns the configuration the bot ships with.
func DefaultConfig() Config {

	return Config{

		MaxRetries:    3,
		BaseDelay:     2 * time.Second,
		MaxDelay:      30 * time.Second,
		BackoffFactor: 2,

	}

}

func (C Config) Validate() error {

	if C.MaxRetries < 1 {

		return fmt.Errorf("max retries must be at least 1, got %d", C.MaxRetries)

	}

	if C.BaseDelay < 0 {

		return errors.New("base delay must not be negative")

	}

	if C.MaxDelay < C.BaseDelay {

		return fmt.Errorf("max delay %s is below base delay %s", C.MaxDelay, C.BaseDelay)

	}

	if C.BackoffFactor <= 1 {

		return fmt.Errorf("backoff factor must be greater than 1, got %g", C.BackoffFactor)

	}

	return nil

}

// Delay returns the wait after the given failed attempt (1-based): BaseDelay * Factor^(Attempt-1), capped at MaxDelay.
func (C Config) Delay(Attempt int) time.Duration {

	if Attempt < 1 {

		Attempt = 1

	}

	Delay := float64(C.BaseDelay) * math.Pow(C.BackoffFactor, float64(Attempt-1))

	if math.IsInf(Delay, 0) || math.IsNaN(Delay) || Delay > float64(C.MaxDelay) {

		return C.MaxDelay

	}

	return time.Duration(Delay)

}

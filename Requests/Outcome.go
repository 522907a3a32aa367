package Requests

import (
	"Encore/Classify"
	"time"
)

type Status string

const (

	StatusSucceeded Status = "succeeded"
	StatusRejected  Status = "rejected"
	StatusFailed    Status = "failed"

)

// Outcome is what the core hands back to the presentation layer. Rejected is not an error;
// Failed carries the operation's original error.
type Outcome struct {

	GuildID string         `json:"guild_id"`
	Label   string         `json:"label"`
	Status  Status         `json:"status"`
	Class   Classify.Class `json:"class"`

	Attempts   int           `json:"attempts"`
	RetryAfter time.Duration `json:"retry_after"`

	Err error `json:"-"`

}

func (O Outcome) Admitted() bool {

	return O.Status != StatusRejected

}

// RateLimited reports a failure that exhausted its retries on rate limits.
func (O Outcome) RateLimited() bool {

	return O.Status == StatusFailed && O.Class == Classify.RateLimited

}

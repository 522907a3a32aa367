package Classify

import (
	"errors"
	"net/http"
	"strings"

	"github.com/disgoorg/disgo/rest"
)

// Class is the retry classification of a failure, computed once per failure.
type Class int

const (

	Other Class = iota
	RateLimited

)

func (C Class) String() string {

	switch C {

		case RateLimited:

			return "rate_limited"

		default:

			return "other"

	}

}

func (C Class) MarshalText() ([]byte, error) {

	return []byte(C.String()), nil

}

// Retryable reports whether failures of this class may be retried.
func (C Class) Retryable() bool {

	return C == RateLimited

}

// StatusCoder is implemented by errors that carry a transport status code.
type StatusCoder interface {

	StatusCode() int

}

// Of classifies an error. Nil and unrecognised errors are Other.
func Of(Err error) Class {

	if Err == nil {

		return Other

	}

	if Status, Found := StatusOf(Err); Found && Status == http.StatusTooManyRequests {

		return RateLimited

	}

	if MessageIsRateLimit(MessageOf(Err)) {

		return RateLimited

	}

	return Other

}

// MessageIsRateLimit applies the message rules: "429", "Too Many Requests" (exact case) or "rate limit" (any case).
func MessageIsRateLimit(Message string) bool {

	if Message == "" {

		return false

	}

	if strings.Contains(Message, "429") || strings.Contains(Message, "Too Many Requests") {

		return true

	}

	return strings.Contains(strings.ToLower(Message), "rate limit")

}

// StatusOf finds the first status code in the error chain.
func StatusOf(Err error) (Status int, Found bool) {

	defer func() {

		if recover() != nil {

			Status, Found = 0, false

		}

	}()

	var RestError *rest.Error

	if errors.As(Err, &RestError) && RestError != nil && RestError.Response != nil {

		return RestError.Response.StatusCode, true

	}

	var Coder StatusCoder

	if errors.As(Err, &Coder) && Coder != nil {

		Code := Coder.StatusCode()

		return Code, Code != 0

	}

	return 0, false

}

// MessageOf returns Err.Error(), or "" when the error cannot describe itself.
func MessageOf(Err error) (Message string) {

	if Err == nil {

		return ""

	}

	defer func() {

		if Recovered := recover(); Recovered != nil {

			Message = ""

		}

	}()

	return Err.Error()

}

package Classify

import "fmt"

// PlaybackError is the failure contract of the playback engine: an optional status code, a message and an optional cause.
type PlaybackError struct {

	Status  int
	Message string

	Err error

}

func (E *PlaybackError) Error() string {

	if E == nil {

		return ""

	}

	switch {

		case E.Message != "" && E.Err != nil:

			return fmt.Sprintf("%s: %s", E.Message, E.Err.Error())

		case E.Message != "":

			return E.Message

		case E.Err != nil:

			return E.Err.Error()

		case E.Status != 0:

			return fmt.Sprintf("playback failed with status %d", E.Status)

		default:

			return "playback failed"

	}

}

func (E *PlaybackError) Unwrap() error {

	if E == nil {

		return nil

	}

	return E.Err

}

// StatusCode returns the status, 0 when absent.
func (E *PlaybackError) StatusCode() int {

	if E == nil {

		return 0

	}

	return E.Status

}

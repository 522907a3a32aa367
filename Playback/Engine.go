package Playback

import (
	"context"
	"errors"
	"time"
)

var (

	ErrNothingPlaying = errors.New("nothing playing")
	ErrNoNextTrack    = errors.New("no next track")

)

// Request is one "play Query in guild GuildID" call.
type Request struct {

	GuildID   string
	ChannelID string
	Requestor string

	Query string

}

// Track is what the engine resolved and queued.
type Track struct {

	Title     string        `json:"title"`
	URL       string        `json:"url"`
	Thumbnail string        `json:"thumbnail"`
	Duration  time.Duration `json:"duration"`
	Requestor string        `json:"requestor"`

	Position int `json:"position"`

}

// Engine is the external playback engine. Failures should carry a status code when one is
// known (see Classify.PlaybackError); the retry layer only looks at status and message.
type Engine interface {

	Play(Ctx context.Context, Request Request) (Track, error)

}

// Queue is the engine's per-guild track list. The head is the current track.
type Queue interface {

	Pending(GuildID string) []Track

	// Skip drops the current track and returns it with the number of tracks left.
	Skip(GuildID string) (Track, int, error)

	// Clear drops the guild's list and returns how many tracks it held.
	Clear(GuildID string) int

}

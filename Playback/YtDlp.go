package Playback

import (
	"Encore/Classify"
	"Encore/Utils"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/wader/goutubedl"
	"go.uber.org/zap"
)

// GuildQueue is one guild's pending tracks and when they last changed.
type GuildQueue struct {

	Tracks  []Track
	Touched time.Time

}

// YtDlp resolves queries through yt-dlp and keeps a bounded per-guild pending list. Decoding and
// voice transport happen elsewhere.
type YtDlp struct {

	Search string // yt-dlp search prefix, e.g. "ytsearch1"

	Resolve func(Ctx context.Context, Target string) (goutubedl.Result, error)

	Queues      map[string]*GuildQueue
	QueuesMutex sync.Mutex

	Limit int           // tracks per guild, 0 for no limit
	Idle  time.Duration // queues untouched this long are swept, 0 keeps them
	Clock func() time.Time

	Logger *Utils.Logging

}

func NewYtDlp(BinaryPath string, Limit int, Idle time.Duration, Logger *Utils.Logging) *YtDlp {

	if BinaryPath != "" {

		goutubedl.Path = BinaryPath

	}

	if Logger == nil {

		Logger = Utils.Logger

	}

	return &YtDlp{

		Search: "ytsearch1",

		Resolve: func(Ctx context.Context, Target string) (goutubedl.Result, error) {

			return goutubedl.New(Ctx, Target, goutubedl.Options{Type: goutubedl.TypeAny})

		},

		Queues: make(map[string]*GuildQueue),
		Limit:  Limit,
		Idle:   Idle,
		Clock:  time.Now,
		Logger: Logger,

	}

}

func (Y *YtDlp) Play(Ctx context.Context, Request Request) (Track, error) {

	if Request.Query == "" {

		return Track{}, &Classify.PlaybackError{Message: "empty query"}

	}

	if Y.full(Request.GuildID) {

		return Track{}, queueFull(Y.Limit)

	}

	Result, ErrorResolving := Y.Resolve(Ctx, fmt.Sprintf("%s:%s", Y.Search, Request.Query))

	if ErrorResolving != nil {

		if errors.Is(ErrorResolving, context.Canceled) || errors.Is(ErrorResolving, context.DeadlineExceeded) {

			return Track{}, ErrorResolving

		}

		return Track{}, &Classify.PlaybackError{Message: "failed to resolve query", Err: ErrorResolving}

	}

	Info := Result.Info

	if len(Info.Entries) > 0 {

		Info = Info.Entries[0]

	}

	if Info.Title == "" {

		return Track{}, &Classify.PlaybackError{Message: "no results found"}

	}

	Found := Track{

		Title:     Info.Title,
		URL:       Info.WebpageURL,
		Thumbnail: Info.Thumbnail,
		Duration:  time.Duration(Info.Duration * float64(time.Second)),
		Requestor: Request.Requestor,

	}

	Position, Queued := Y.enqueue(Request.GuildID, Found)

	if !Queued {

		return Track{}, queueFull(Y.Limit)

	}

	Found.Position = Position

	Y.Logger.Info("Track queued", zap.String("guild", Request.GuildID), zap.String("title", Found.Title), zap.Int("position", Found.Position))

	return Found, nil

}

func queueFull(Limit int) error {

	return &Classify.PlaybackError{Message: fmt.Sprintf("queue is full (%d tracks)", Limit)}

}

func (Y *YtDlp) now() time.Time {

	if Y.Clock != nil {

		return Y.Clock()

	}

	return time.Now()

}

func (Y *YtDlp) full(GuildID string) bool {

	Y.QueuesMutex.Lock()
	defer Y.QueuesMutex.Unlock()

	Queue, Exists := Y.Queues[GuildID]

	return Exists && Y.Limit > 0 && len(Queue.Tracks) >= Y.Limit

}

func (Y *YtDlp) enqueue(GuildID string, Found Track) (int, bool) {

	Y.QueuesMutex.Lock()
	defer Y.QueuesMutex.Unlock()

	Queue, Exists := Y.Queues[GuildID]

	if !Exists {

		Queue = &GuildQueue{}
		Y.Queues[GuildID] = Queue

	}

	if Y.Limit > 0 && len(Queue.Tracks) >= Y.Limit {

		return 0, false

	}

	Found.Position = len(Queue.Tracks) + 1

	Queue.Tracks = append(Queue.Tracks, Found)
	Queue.Touched = Y.now()

	return Found.Position, true

}

// Pending returns a copy of the guild's queued tracks, current track first.
func (Y *YtDlp) Pending(GuildID string) []Track {

	Y.QueuesMutex.Lock()
	defer Y.QueuesMutex.Unlock()

	Queue, Exists := Y.Queues[GuildID]

	if !Exists {

		return nil

	}

	return append([]Track{}, Queue.Tracks...)

}

func (Y *YtDlp) Skip(GuildID string) (Track, int, error) {

	Y.QueuesMutex.Lock()
	defer Y.QueuesMutex.Unlock()

	Queue, Exists := Y.Queues[GuildID]

	if !Exists || len(Queue.Tracks) == 0 {

		return Track{}, 0, ErrNothingPlaying

	}

	if len(Queue.Tracks) == 1 {

		return Track{}, 1, ErrNoNextTrack

	}

	Skipped := Queue.Tracks[0]

	Queue.Tracks = append([]Track{}, Queue.Tracks[1:]...)
	Queue.Touched = Y.now()

	for Index := range Queue.Tracks {

		Queue.Tracks[Index].Position = Index + 1

	}

	return Skipped, len(Queue.Tracks), nil

}

// Clear drops the guild's queue, e.g. on stop or after the bot leaves voice.
func (Y *YtDlp) Clear(GuildID string) int {

	Y.QueuesMutex.Lock()
	defer Y.QueuesMutex.Unlock()

	Queue, Exists := Y.Queues[GuildID]

	if !Exists {

		return 0

	}

	delete(Y.Queues, GuildID)

	return len(Queue.Tracks)

}

// CleanIdle drops queues untouched for Idle at Now and returns how many were dropped.
func (Y *YtDlp) CleanIdle(Now time.Time) int {

	if Y.Idle <= 0 {

		return 0

	}

	Y.QueuesMutex.Lock()
	defer Y.QueuesMutex.Unlock()

	Removed := 0

	for GuildID, Queue := range Y.Queues {

		if Now.Sub(Queue.Touched) >= Y.Idle {

			delete(Y.Queues, GuildID)
			Removed++

		}

	}

	return Removed

}

// StartAutoCleanup sweeps idle queues every Interval until Ctx ends.
func (Y *YtDlp) StartAutoCleanup(Ctx context.Context, Interval time.Duration) {

	if Interval <= 0 || Y.Idle <= 0 {

		return

	}

	go func() {

		Ticker := time.NewTicker(Interval)
		defer Ticker.Stop()

		for {

			select {

				case <-Ctx.Done():

					return

				case <-Ticker.C:

					if Removed := Y.CleanIdle(Y.now()); Removed > 0 {

						Y.Logger.Debug("Swept idle queues", zap.Int("removed", Removed))

					}

			}

		}

	}()

}

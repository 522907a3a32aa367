package Commands

import (
	"Encore/Admission"
	"Encore/Playback"
	"Encore/Requests"
	"Encore/Retry"
	"Encore/Utils"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wader/goutubedl"
)

func newTestPlayer(t *testing.T) (*Player, *time.Time) {

	t.Helper()

	Now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	Gate := Admission.NewGate(Admission.NewMemoryStore(0), 5*time.Second, Utils.NopLogging())
	Gate.Clock = func() time.Time { return Now }

	Executor, ErrorCreating := Retry.NewExecutor(Retry.DefaultConfig(), Utils.NopLogging())
	require.NoError(t, ErrorCreating)

	Engine := Playback.NewYtDlp("", 10, time.Hour, Utils.NopLogging())
	Engine.Resolve = func(_ context.Context, Target string) (goutubedl.Result, error) {

		return goutubedl.Result{Info: goutubedl.Info{Title: Target, WebpageURL: "https://youtube.com/watch?v=x", Duration: 200}}, nil

	}

	return &Player{

		Pipeline: Requests.NewPipeline(Gate, Executor, time.Minute, Utils.NopLogging()),
		Engine:   Engine,
		Queue:    Engine,
		Prefix:   "w!",

	}, &Now

}

func TestCommandsShareCooldown(t *testing.T) {

	Player, Now := newTestPlayer(t)

	Played := Player.PlayReply(Playback.Request{GuildID: "g", Query: "Despacito", Requestor: "<@1>"})
	assert.Equal(t, "🎵 Now Playing", Played.Title)

	assert.Equal(t, "⏳ Slow Down", Player.QueueReply("g").Title)
	assert.Equal(t, "⏳ Slow Down", Player.StopReply("g").Title)
	assert.Equal(t, "⏳ Slow Down", Player.SkipReply("g").Title)

	// Other guilds are not affected
	assert.Equal(t, "📭 Empty Queue", Player.QueueReply("h").Title)

	*Now = Now.Add(5 * time.Second)

	Queue := Player.QueueReply("g")

	assert.Equal(t, "🎵 Music Queue", Queue.Title)
	require.NotEmpty(t, Queue.Fields)
	assert.Contains(t, Queue.Fields[0].Value, "ytsearch1:Despacito")

	*Now = Now.Add(5 * time.Second)

	assert.Equal(t, "⏹️ Music Stopped", Player.StopReply("g").Title)
	assert.Empty(t, Player.Queue.Pending("g"))

}

func TestSkipAndNowPlayingReplies(t *testing.T) {

	Player, Now := newTestPlayer(t)

	for _, Query := range []string{"first", "second"} {

		Player.PlayReply(Playback.Request{GuildID: "g", Query: Query})
		*Now = Now.Add(5 * time.Second)

	}

	assert.Contains(t, Player.NowPlayingReply("g").Description, "ytsearch1:first")
	*Now = Now.Add(5 * time.Second)

	assert.Equal(t, "⏭️ Song Skipped", Player.SkipReply("g").Title)
	*Now = Now.Add(5 * time.Second)

	assert.Equal(t, "❌ No Next Song", Player.SkipReply("g").Title)
	*Now = Now.Add(5 * time.Second)

	assert.Contains(t, Player.NowPlayingReply("g").Description, "ytsearch1:second")

}

package Commands

import (
	"Encore/Classify"
	"Encore/Playback"
	"Encore/Requests"
	"Encore/Utils"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayEmbed(t *testing.T) {

	Options := PlayEmbed(Playback.Track{

		Title:     "Despacito",
		URL:       "https://youtube.com/watch?v=kJQP7kiw5Fk",
		Thumbnail: "https://i.ytimg.com/vi/kJQP7kiw5Fk/hq720.jpg",
		Duration:  281500 * time.Millisecond,
		Requestor: "<@1>",
		Position:  2,

	})

	assert.Equal(t, "✅ Song Added to Queue", Options.Title)
	assert.Contains(t, Options.Description, "[Despacito](https://youtube.com/watch?v=kJQP7kiw5Fk)")
	assert.Equal(t, "Position in queue: 2", Options.Footer)
	assert.Equal(t, "https://i.ytimg.com/vi/kJQP7kiw5Fk/hq720.jpg", Options.Thumbnail)

	require.Len(t, Options.Fields, 2)
	assert.Equal(t, "`4:42`", Options.Fields[0].Value)
	assert.Equal(t, "<@1>", Options.Fields[1].Value)

	First := PlayEmbed(Playback.Track{Title: "Despacito", Position: 1})

	assert.Equal(t, "🎵 Now Playing", First.Title)
	assert.Equal(t, "Unknown", First.Fields[1].Value)

}

func TestOutcomeEmbedSucceeded(t *testing.T) {

	_, Unsuccessful := OutcomeEmbed(Requests.Outcome{Status: Requests.StatusSucceeded, Attempts: 1}, "w!")

	assert.False(t, Unsuccessful)

}

func TestOutcomeEmbedRejected(t *testing.T) {

	Options, Unsuccessful := OutcomeEmbed(Requests.Outcome{Status: Requests.StatusRejected, RetryAfter: 3200 * time.Millisecond}, "w!")

	require.True(t, Unsuccessful)
	assert.Equal(t, Utils.WARNING, Options.Color)
	assert.Contains(t, Options.Description, "4 seconds")

}

func TestOutcomeEmbedRateLimited(t *testing.T) {

	Options, Unsuccessful := OutcomeEmbed(Requests.Outcome{

		Status:   Requests.StatusFailed,
		Class:    Classify.RateLimited,
		Attempts: 3,
		Err:      errors.New("429 Too Many Requests"),

	}, "w!")

	require.True(t, Unsuccessful)
	assert.Equal(t, "⏳ Rate Limited", Options.Title)
	assert.Contains(t, Options.Description, "3 attempts")

}

func TestOutcomeEmbedFailedTruncates(t *testing.T) {

	Options, Unsuccessful := OutcomeEmbed(Requests.Outcome{

		Status: Requests.StatusFailed,
		Class:  Classify.Other,
		Err:    errors.New(strings.Repeat("x", 150)),

	}, "w!")

	require.True(t, Unsuccessful)
	assert.Equal(t, Utils.ERROR, Options.Color)
	assert.Contains(t, Options.Description, strings.Repeat("x", 100)+"...")
	assert.NotContains(t, Options.Description, strings.Repeat("x", 101))

}

func TestOutcomeEmbedFailedKeepsRunesWhole(t *testing.T) {

	Message := strings.Repeat("é", 99) + "日本語の動画は利用できません"

	Options, _ := OutcomeEmbed(Requests.Outcome{Status: Requests.StatusFailed, Err: errors.New(Message)}, "w!")

	assert.True(t, utf8.ValidString(Options.Description))
	assert.Contains(t, Options.Description, strings.Repeat("é", 99)+"日...")

}

func TestTruncate(t *testing.T) {

	assert.Equal(t, "short", truncate("short", 100))
	assert.Equal(t, "日本...", truncate("日本語", 2))
	assert.Equal(t, "日本語", truncate("日本語", 3))

}

func TestWaitText(t *testing.T) {

	assert.Equal(t, "1 second", waitText(0))
	assert.Equal(t, "1 second", waitText(time.Second))
	assert.Equal(t, "2 seconds", waitText(1001*time.Millisecond))
	assert.Equal(t, "5 seconds", waitText(5*time.Second))

}

func TestFormatDuration(t *testing.T) {

	assert.Equal(t, "Live", formatDuration(0))
	assert.Equal(t, "0:07", formatDuration(7*time.Second))
	assert.Equal(t, "3:32", formatDuration(212*time.Second))
	assert.Equal(t, "1:02:03", formatDuration(time.Hour+2*time.Minute+3*time.Second))

}

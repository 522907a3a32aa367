package Validation

import (
	"Encore/Globals"
	"net/url"
	"regexp"
	"strings"

	"github.com/disgoorg/snowflake/v2"
)

var musicHosts = regexp.MustCompile(`(?i)^https?://(www\.)?(youtube\.com|youtu\.be|spotify\.com|open\.spotify\.com|soundcloud\.com|music\.apple\.com|deezer\.com|tidal\.com|pandora\.com)`)

// IsURL reports whether the query is a link rather than a song title.
func IsURL(Query string) bool {

	Query = strings.TrimSpace(Query)

	if musicHosts.MatchString(Query) || strings.HasPrefix(strings.ToLower(Query), "http://") || strings.HasPrefix(strings.ToLower(Query), "https://") {

		return true

	}

	Parsed, ErrorParsing := url.Parse(Query)

	return ErrorParsing == nil && Parsed.Scheme != "" && Parsed.Host != ""

}

// VoiceChannel returns the user's current voice channel, from the cache first and the API second.
func VoiceChannel(GuildID snowflake.ID, UserID snowflake.ID) (snowflake.ID, bool) {

	VoiceState, VoiceStateExists := Globals.DiscordClient.Caches.VoiceState(GuildID, UserID)

	if VoiceStateExists && VoiceState.ChannelID != nil {

		return *VoiceState.ChannelID, true

	}

	RestVoiceState, RestError := Globals.DiscordClient.Rest.GetUserVoiceState(GuildID, UserID)

	if RestError != nil || RestVoiceState == nil || RestVoiceState.ChannelID == nil {

		return 0, false

	}

	return *RestVoiceState.ChannelID, true

}

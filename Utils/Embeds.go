package Utils

import (
	"time"

	"github.com/disgoorg/disgo/discord"
)

// Embed / Bot colors
const (

	PRIMARY = 0x96BEFF
	SUCCESS = 0x4ECDC4
	WARNING = 0xFFD93D
	ERROR   = 0xD196FF
	QUEUE   = 0x9B59B6

)

type EmbedField struct {

	Name   string
	Value  string
	Inline bool

}

// EmbedOptions describes a reply embed. Empty strings are left unset; a zero Color means PRIMARY.
type EmbedOptions struct {

	Title       string
	Description string
	URL         string

	Author    string
	Footer    string
	Thumbnail string

	Color  int
	Fields []EmbedField

	Timestamp bool

}

// Field appends a field and returns the options for chaining.
func (O EmbedOptions) Field(Name string, Value string, Inline bool) EmbedOptions {

	O.Fields = append(append([]EmbedField{}, O.Fields...), EmbedField{Name: Name, Value: Value, Inline: Inline})

	return O

}

func CreateEmbed(Options EmbedOptions) discord.Embed {

	Color := Options.Color

	if Color == 0 {

		Color = PRIMARY

	}

	Builder := discord.NewEmbedBuilder().SetColor(Color)

	Setters := []struct {

		Value string
		Set   func(string) *discord.EmbedBuilder

	}{

		{Options.Title, Builder.SetTitle},
		{Options.Description, Builder.SetDescription},
		{Options.URL, Builder.SetURL},
		{Options.Author, Builder.SetAuthorName},
		{Options.Footer, Builder.SetFooterText},
		{Options.Thumbnail, Builder.SetThumbnail},

	}

	for _, Setter := range Setters {

		if Setter.Value != "" {

			Setter.Set(Setter.Value)

		}

	}

	for _, Field := range Options.Fields {

		Builder.AddField(Field.Name, Field.Value, Field.Inline)

	}

	if Options.Timestamp {

		Builder.SetTimestamp(time.Now())

	}

	return Builder.Build()

}

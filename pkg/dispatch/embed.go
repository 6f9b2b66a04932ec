package dispatch

import (
	"fmt"
	"strings"

	"github.com/reddalert/reddalert/ent"
)

// embedColor is the brand orange used on every outgoing embed.
const embedColor = 16729344

// Payload is the webhook request body: one embed per message.
type Payload struct {
	Embeds []Embed `json:"embeds"`
}

// Embed is a Discord-style rich embed.
type Embed struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url,omitempty"`
	Color       int     `json:"color"`
	Fields      []Field `json:"fields"`
	Footer      Footer  `json:"footer"`
}

// Field is one name/value pair inside an embed.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Footer labels the embed with the product name.
type Footer struct {
	Text string `json:"text"`
}

// SingleEmbed renders the payload for one match.
func SingleEmbed(m *ent.Match) Payload {
	description := m.Snippet
	if len(description) > 200 {
		description = description[:197] + "..."
	}

	fields := []Field{
		{Name: "Keyword", Value: m.MatchedPhrase, Inline: true},
		{Name: "Subreddit", Value: "r/" + m.Community, Inline: true},
		{Name: "Author", Value: "u/" + m.Author, Inline: true},
	}
	if len(m.AlsoMatched) > 0 {
		fields = append(fields, Field{
			Name:   "Also Matched",
			Value:  strings.Join(m.AlsoMatched, ", "),
			Inline: false,
		})
	}

	return Payload{Embeds: []Embed{{
		Title:       fmt.Sprintf("Keyword Match in r/%s", m.Community),
		Description: description,
		URL:         m.RedditURL,
		Color:       embedColor,
		Fields:      fields,
		Footer:      Footer{Text: "Reddalert"},
	}}}
}

// TestEmbed renders the payload sent by the webhook test endpoint.
func TestEmbed() Payload {
	return Payload{Embeds: []Embed{{
		Title:       "Reddalert Test",
		Description: "This webhook is wired up correctly. Keyword alerts will arrive here.",
		Color:       embedColor,
		Footer:      Footer{Text: "Reddalert"},
	}}}
}

// BatchEmbed renders the payload for a batch of matches, one field per
// match with a shortened snippet and a link.
func BatchEmbed(matches []*ent.Match) Payload {
	fields := make([]Field, 0, len(matches))
	for _, m := range matches {
		snippet := m.Snippet
		if len(snippet) > 100 {
			snippet = snippet[:100]
		}
		fields = append(fields, Field{
			Name:   fmt.Sprintf("%s in r/%s", m.MatchedPhrase, m.Community),
			Value:  fmt.Sprintf("%s\n[View post](%s)", snippet, m.RedditURL),
			Inline: false,
		})
	}

	return Payload{Embeds: []Embed{{
		Title:       fmt.Sprintf("%d New Keyword Matches", len(matches)),
		Description: fmt.Sprintf("Batch alert — %d matches detected recently.", len(matches)),
		Color:       embedColor,
		Fields:      fields,
		Footer:      Footer{Text: "Reddalert"},
	}}}
}

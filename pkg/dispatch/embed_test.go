package dispatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reddalert/reddalert/ent"
)

func sampleMatch() *ent.Match {
	return &ent.Match{
		ID:            "m1",
		Community:     "sportsbook",
		MatchedPhrase: "arbitrage",
		Snippet:       "found a nice arbitrage opportunity here",
		RedditURL:     "https://reddit.com/r/sportsbook/comments/abc1",
		Author:        "alice",
	}
}

func TestSingleEmbed(t *testing.T) {
	payload := SingleEmbed(sampleMatch())

	require.Len(t, payload.Embeds, 1)
	e := payload.Embeds[0]

	assert.Equal(t, "Keyword Match in r/sportsbook", e.Title)
	assert.Equal(t, "found a nice arbitrage opportunity here", e.Description)
	assert.Equal(t, "https://reddit.com/r/sportsbook/comments/abc1", e.URL)
	assert.Equal(t, 16729344, e.Color)
	assert.Equal(t, "Reddalert", e.Footer.Text)

	require.Len(t, e.Fields, 3)
	assert.Equal(t, Field{Name: "Keyword", Value: "arbitrage", Inline: true}, e.Fields[0])
	assert.Equal(t, Field{Name: "Subreddit", Value: "r/sportsbook", Inline: true}, e.Fields[1])
	assert.Equal(t, Field{Name: "Author", Value: "u/alice", Inline: true}, e.Fields[2])
}

func TestSingleEmbedAlsoMatched(t *testing.T) {
	m := sampleMatch()
	m.AlsoMatched = []string{"betting", "hedge"}

	payload := SingleEmbed(m)
	fields := payload.Embeds[0].Fields

	require.Len(t, fields, 4)
	assert.Equal(t, Field{Name: "Also Matched", Value: "betting, hedge", Inline: false}, fields[3])
}

func TestSingleEmbedTruncatesLongDescription(t *testing.T) {
	m := sampleMatch()
	m.Snippet = strings.Repeat("a", 250)

	payload := SingleEmbed(m)
	desc := payload.Embeds[0].Description

	assert.Len(t, desc, 200)
	assert.True(t, strings.HasSuffix(desc, "..."))
}

func TestBatchEmbed(t *testing.T) {
	m1 := sampleMatch()
	m2 := sampleMatch()
	m2.ID = "m2"
	m2.MatchedPhrase = "betting"
	m2.Snippet = strings.Repeat("b", 150)

	payload := BatchEmbed([]*ent.Match{m1, m2})

	require.Len(t, payload.Embeds, 1)
	e := payload.Embeds[0]

	assert.Equal(t, "2 New Keyword Matches", e.Title)
	assert.Equal(t, "Batch alert — 2 matches detected recently.", e.Description)
	assert.Equal(t, 16729344, e.Color)
	assert.Empty(t, e.URL)

	require.Len(t, e.Fields, 2)
	assert.Equal(t, "arbitrage in r/sportsbook", e.Fields[0].Name)
	assert.Contains(t, e.Fields[0].Value, "[View post](https://reddit.com/r/sportsbook/comments/abc1)")
	assert.False(t, e.Fields[0].Inline)

	// Batch snippets are capped at 100 chars.
	assert.Contains(t, e.Fields[1].Value, strings.Repeat("b", 100)+"\n")
	assert.NotContains(t, e.Fields[1].Value, strings.Repeat("b", 101))
}

package spell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no fence",
			in:   `{"title":"x"}`,
			want: `{"title":"x"}`,
		},
		{
			name: "plain fence",
			in:   "```\n{\"title\":\"x\"}\n```",
			want: `{"title":"x"}`,
		},
		{
			name: "json language tag",
			in:   "```json\n{\"title\":\"x\"}\n```",
			want: `{"title":"x"}`,
		},
		{
			name: "surrounding whitespace",
			in:   "  \n```json\n{\"a\":1}\n```\n  ",
			want: `{"a":1}`,
		},
		{
			name: "fence without closing",
			in:   "```json\n{\"a\":1}",
			want: `{"a":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.in))
		})
	}
}

func TestParseWellFormed(t *testing.T) {
	raw := "```json\n" + `{
		"title": "Charm of the Morning Crow",
		"subtitle": "A protection working",
		"introduction": "A simple charm.",
		"materials": [
			{"name": "black feather", "icon": "feather", "note": "found, not taken"},
			{"name": "red thread", "icon": "thread", "note": "arm's length"}
		],
		"timing": {"moon_phase": "waxing", "time_of_day": "dawn", "day_of_week": "tuesday", "note": ""},
		"steps": [
			{"number": 1, "title": "Prepare", "instruction": "Lay out the materials.", "duration": "5 minutes"},
			{"number": 2, "title": "Bind", "instruction": "Wind the thread around the feather."}
		],
		"spoken_words": {"invocation": "Crow of the morning", "main_incantation": "Carry my intent", "closing": "So it is done"},
		"historical_context": {
			"tradition": "English folk magic",
			"period": "1910-1945",
			"practitioners": ["Dion Fortune"],
			"sources": [{"author": "D. Fortune", "work": "Psychic Self-Defence", "year": "1930", "relevance": "protective technique"}],
			"cultural_notes": "Revival-era practice."
		},
		"variations": ["Use a magpie feather for truth work"],
		"warnings": ["Do not burn indoors"],
		"closing_message": "Walk lightly.",
		"image_prompt": "a crow feather bound in red thread on a windowsill at dawn"
	}` + "\n```"

	sp, ok := Parse(raw)
	require.True(t, ok)
	assert.Equal(t, "Charm of the Morning Crow", sp.Title)
	assert.Len(t, sp.Materials, 2)
	assert.Len(t, sp.Steps, 2)
	require.NotNil(t, sp.SpokenWords)
	assert.Equal(t, "So it is done", sp.SpokenWords.Closing)
	require.NotNil(t, sp.HistoricalContext)
	assert.Len(t, sp.HistoricalContext.Sources, 1)
	assert.Equal(t, "a crow feather bound in red thread on a windowsill at dawn", sp.ImagePrompt)
	assert.False(t, sp.ParseError)
	assert.Empty(t, sp.RawResponse)
}

func TestParseMalformedDegrades(t *testing.T) {
	raw := "I am sorry, I cannot produce JSON today."

	sp, ok := Parse(raw)
	assert.False(t, ok)
	assert.True(t, sp.ParseError)
	assert.Equal(t, "Your Custom Spell", sp.Title)
	assert.Equal(t, raw, sp.RawResponse)
}

func TestParseEmptyTitleGetsFallback(t *testing.T) {
	sp, ok := Parse(`{"subtitle":"untitled working"}`)
	assert.True(t, ok)
	assert.Equal(t, "Your Custom Spell", sp.Title)
	assert.False(t, sp.ParseError)
}

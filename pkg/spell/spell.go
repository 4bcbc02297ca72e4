// Package spell defines the structured output schema of the spell
// generator and the parser that recovers it from raw model text.
package spell

type Material struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	Note string `json:"note"`
}

type Timing struct {
	MoonPhase string `json:"moon_phase"`
	TimeOfDay string `json:"time_of_day"`
	DayOfWeek string `json:"day_of_week"`
	Note      string `json:"note"`
}

type Step struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Instruction string `json:"instruction"`
	Duration    string `json:"duration,omitempty"`
	Note        string `json:"note,omitempty"`
}

type SpokenWords struct {
	Invocation      string `json:"invocation"`
	MainIncantation string `json:"main_incantation"`
	Closing         string `json:"closing"`
}

type Source struct {
	Author    string `json:"author"`
	Work      string `json:"work"`
	Year      string `json:"year"`
	Relevance string `json:"relevance"`
}

type HistoricalContext struct {
	Tradition     string   `json:"tradition"`
	Period        string   `json:"period"`
	Practitioners []string `json:"practitioners"`
	Sources       []Source `json:"sources"`
	CulturalNotes string   `json:"cultural_notes"`
}

// Spell is the full generated payload. When the model output cannot be
// parsed, only Title, RawResponse, and ParseError are populated; the request
// still succeeds with that degraded payload.
type Spell struct {
	Title             string            `json:"title"`
	Subtitle          string            `json:"subtitle,omitempty"`
	Introduction      string            `json:"introduction,omitempty"`
	Materials         []Material        `json:"materials,omitempty"`
	Timing            *Timing           `json:"timing,omitempty"`
	Steps             []Step            `json:"steps,omitempty"`
	SpokenWords       *SpokenWords      `json:"spoken_words,omitempty"`
	HistoricalContext *HistoricalContext `json:"historical_context,omitempty"`
	Variations        []string          `json:"variations,omitempty"`
	Warnings          []string          `json:"warnings,omitempty"`
	ClosingMessage    string            `json:"closing_message,omitempty"`
	ImagePrompt       string            `json:"image_prompt,omitempty"`

	RawResponse string `json:"raw_response,omitempty"`
	ParseError  bool   `json:"parse_error,omitempty"`
}

package constant

const (
	ChatMessageRoleUser   = "user"
	ChatMessageRoleModel  = "model"
	ChatMessageRoleSystem = "system"

	// SpellSchemaInstruction demands the fixed JSON shape the parser expects.
	// Field constraints (4-8 materials, 5-8 steps, 2-3 sources) keep the
	// output substantial enough to render as a full ritual page.
	SpellSchemaInstruction = `Create a complete, historically grounded spell or ritual for the following intention. Respond ONLY with a JSON object in exactly this shape:

{
  "title": "evocative spell title",
  "subtitle": "one-line poetic subtitle",
  "introduction": "2-3 sentences introducing the working and its lineage",
  "materials": [
    {"name": "item name", "icon": "one of: candle, herb, stone, tool, liquid, cloth, paper, other", "note": "how it is used and why"}
  ],
  "timing": {
    "moon_phase": "recommended moon phase",
    "time_of_day": "recommended time",
    "day_of_week": "recommended day",
    "note": "why this timing"
  },
  "steps": [
    {"number": 1, "title": "step title", "instruction": "full instruction", "duration": "optional duration", "note": "optional practitioner note"}
  ],
  "spoken_words": {
    "invocation": "opening words",
    "main_incantation": "the central incantation",
    "closing": "closing words"
  },
  "historical_context": {
    "tradition": "named tradition this draws on",
    "period": "time period",
    "practitioners": ["historical practitioners associated with this kind of working"],
    "sources": [
      {"author": "name", "work": "title", "year": "year", "relevance": "what this source contributes"}
    ],
    "cultural_notes": "cultural and regional notes"
  },
  "variations": ["simpler or alternative versions"],
  "warnings": ["practical and traditional cautions"],
  "closing_message": "a warm closing message to the practitioner",
  "image_prompt": "a one-sentence visual description of the ritual scene for an illustrator"
}

Constraints: 4-8 materials, 5-8 steps, at least 2-3 cited historical sources. Ground everything in real occult-revival history (1910-1945) where possible.`

	// SchemaComplianceSuffix is appended to every persona system prompt
	// before a generation call.
	SchemaComplianceSuffix = `

When asked to create a spell, you must respond with valid JSON only, no prose before or after, no markdown fences. Stay within the requested schema exactly.`

	// ImagePromptSuffix closes every composite image prompt.
	ImagePromptSuffix = ", ritual scene, no text"
)

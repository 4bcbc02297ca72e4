package dto

// Reference read responses mirror the seeded collections field for field.
// These endpoints return bare payloads, not the command envelope.

type DeityResponse struct {
	Id                  string   `json:"id"`
	Name                string   `json:"name"`
	Origin              string   `json:"origin"`
	Description         string   `json:"description"`
	History             string   `json:"history"`
	AssociatedPractices []string `json:"associated_practices"`
	ImageURL            string   `json:"image_url"`
	TimePeriod          string   `json:"time_period"`
}

type FigureResponse struct {
	Id              string   `json:"id"`
	Name            string   `json:"name"`
	BirthDeath      string   `json:"birth_death"`
	Bio             string   `json:"bio"`
	Contributions   string   `json:"contributions"`
	AssociatedWorks []string `json:"associated_works"`
	ImageURL        string   `json:"image_url"`
}

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type SiteResponse struct {
	Id                     string              `json:"id"`
	Name                   string              `json:"name"`
	Location               string              `json:"location"`
	Country                string              `json:"country"`
	Coordinates            CoordinatesResponse `json:"coordinates"`
	HistoricalSignificance string              `json:"historical_significance"`
	TimePeriod             string              `json:"time_period"`
	ImageURL               string              `json:"image_url"`
}

type RitualResponse struct {
	Id               string  `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	DeityAssociation *string `json:"deity_association"`
	TimePeriod       string  `json:"time_period"`
	Source           string  `json:"source"`
	Category         string  `json:"category"`
}

type TimelineEventResponse struct {
	Id          string `json:"id"`
	Year        int    `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

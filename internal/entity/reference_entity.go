// Reference collections are read-only: rows come from the seeder and are
// never mutated through the API.
package entity

type Deity struct {
	Id                  string
	Name                string
	Origin              string
	Description         string
	History             string
	AssociatedPractices []string
	ImageURL            string
	TimePeriod          string
}

type HistoricalFigure struct {
	Id              string
	Name            string
	BirthDeath      string
	Bio             string
	Contributions   string
	AssociatedWorks []string
	ImageURL        string
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type SacredSite struct {
	Id                     string
	Name                   string
	Location               string
	Country                string
	Coordinates            Coordinates
	HistoricalSignificance string
	TimePeriod             string
	ImageURL               string
}

type Ritual struct {
	Id               string
	Name             string
	Description      string
	DeityAssociation *string
	TimePeriod       string
	Source           string
	Category         string
}

type TimelineEvent struct {
	Id          string
	Year        int
	Title       string
	Description string
	Category    string
}

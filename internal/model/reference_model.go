package model

import (
	"gorm.io/datatypes"
)

// Reference tables use semantic string ids (e.g. "hecate-001") assigned by
// the seeder, not generated uuids.

type Deity struct {
	Id                  string                         `gorm:"type:varchar(100);primaryKey"`
	Name                string                         `gorm:"type:varchar(255);not null"`
	Origin              string                         `gorm:"type:varchar(255)"`
	Description         string                         `gorm:"type:text"`
	History             string                         `gorm:"type:text"`
	AssociatedPractices datatypes.JSONSlice[string]    `gorm:"type:jsonb"`
	ImageURL            string                         `gorm:"type:text"`
	TimePeriod          string                         `gorm:"type:varchar(255)"`
}

func (Deity) TableName() string {
	return "deities"
}

type HistoricalFigure struct {
	Id              string                      `gorm:"type:varchar(100);primaryKey"`
	Name            string                      `gorm:"type:varchar(255);not null"`
	BirthDeath      string                      `gorm:"type:varchar(100)"`
	Bio             string                      `gorm:"type:text"`
	Contributions   string                      `gorm:"type:text"`
	AssociatedWorks datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	ImageURL        string                      `gorm:"type:text"`
}

func (HistoricalFigure) TableName() string {
	return "historical_figures"
}

type SacredSite struct {
	Id                     string  `gorm:"type:varchar(100);primaryKey"`
	Name                   string  `gorm:"type:varchar(255);not null"`
	Location               string  `gorm:"type:varchar(255)"`
	Country                string  `gorm:"type:varchar(100)"`
	Lat                    float64 `gorm:"type:double precision"`
	Lng                    float64 `gorm:"type:double precision"`
	HistoricalSignificance string  `gorm:"type:text"`
	TimePeriod             string  `gorm:"type:varchar(255)"`
	ImageURL               string  `gorm:"type:text"`
}

func (SacredSite) TableName() string {
	return "sacred_sites"
}

type Ritual struct {
	Id               string  `gorm:"type:varchar(100);primaryKey"`
	Name             string  `gorm:"type:varchar(255);not null"`
	Description      string  `gorm:"type:text"`
	DeityAssociation *string `gorm:"type:varchar(100);index"`
	TimePeriod       string  `gorm:"type:varchar(255)"`
	Source           string  `gorm:"type:text"`
	Category         string  `gorm:"type:varchar(100);index"`
}

func (Ritual) TableName() string {
	return "rituals"
}

type TimelineEvent struct {
	Id          string `gorm:"type:varchar(100);primaryKey"`
	Year        int    `gorm:"not null;index"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"type:varchar(100)"`
}

func (TimelineEvent) TableName() string {
	return "timeline_events"
}

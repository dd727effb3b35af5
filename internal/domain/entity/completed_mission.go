package entity

import (
	"time"
)

const DateLayout = "2006-01-02"

// CompletedMission is a closed mission in a professional's history.
// TotalEarnings is fixed when the record is built and never re-derived.
type CompletedMission struct {
	ID             string  `json:"id"`
	ProfessionalID string  `json:"professionalId"`
	MissionID      string  `json:"missionId"`
	Title          string  `json:"title"`
	BakeryName     string  `json:"bakeryName"`
	CompletedDate  string  `json:"completedDate"`
	Hours          float64 `json:"hours"`
	HourlyRate     float64 `json:"hourlyRate"`
	TotalEarnings  float64 `json:"totalEarnings"`
	Rating         int     `json:"rating,omitempty"`
	Review         string  `json:"review,omitempty"`
}

func NewCompletedMission(id, professionalID, missionID, title, bakeryName, completedDate string, hours, hourlyRate float64) CompletedMission {
	return CompletedMission{
		ID:             id,
		ProfessionalID: professionalID,
		MissionID:      missionID,
		Title:          title,
		BakeryName:     bakeryName,
		CompletedDate:  completedDate,
		Hours:          hours,
		HourlyRate:     hourlyRate,
		TotalEarnings:  hours * hourlyRate,
	}
}

// WithRating attaches a 1-5 rating and optional review text.
func (m CompletedMission) WithRating(rating int, review string) CompletedMission {
	m.Rating = rating
	m.Review = review
	return m
}

func (m CompletedMission) IsRated() bool {
	return m.Rating > 0
}

func (m CompletedMission) CompletedOn() (time.Time, error) {
	return time.Parse(DateLayout, m.CompletedDate)
}

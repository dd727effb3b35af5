package entity

import (
	"time"
)

// MissionType classifies how a mission is scheduled.
type MissionType string

const (
	MissionTypeOneOff    MissionType = "ponctuel"
	MissionTypeRecurring MissionType = "recurrent"
	MissionTypeUrgent    MissionType = "urgence"
	MissionTypeEvent     MissionType = "evenement"
)

// Position is the trade a mission is staffed for.
type Position string

const (
	PositionBaker      Position = "boulanger"
	PositionPastryChef Position = "patissier"
	PositionSeller     Position = "vendeur"
	PositionTurner     Position = "tourneur"
)

type MissionStatus string

const (
	MissionStatusOpen      MissionStatus = "open"
	MissionStatusFilled    MissionStatus = "filled"
	MissionStatusCompleted MissionStatus = "completed"
	MissionStatusCancelled MissionStatus = "cancelled"
)

type Urgency string

const (
	UrgencyImmediate  Urgency = "immediate"
	UrgencySameDay    Urgency = "same-day"
	UrgencyWithinWeek Urgency = "within-week"
)

type Requirements struct {
	Experience     int      `json:"experience"`
	Certifications []string `json:"certifications"`
	Specialties    []string `json:"specialties"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	Address     string       `json:"address"`
	City        string       `json:"city"`
	PostalCode  string       `json:"postalCode"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Mission is a job posting. Bakery fields are denormalized copies for display;
// BakeryID is a weak reference that is never validated.
type Mission struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	BakeryID      string        `json:"bakeryId"`
	BakeryName    string        `json:"bakeryName"`
	BakeryAddress string        `json:"bakeryAddress"`
	BakeryAvatar  string        `json:"bakeryAvatar,omitempty"`
	Type          MissionType   `json:"type"`
	Position      Position      `json:"position"`
	Duration      string        `json:"duration"`
	StartDate     string        `json:"startDate"`
	EndDate       string        `json:"endDate,omitempty"`
	Schedule      string        `json:"schedule"`
	HourlyRate    float64       `json:"hourlyRate"`
	Requirements  Requirements  `json:"requirements"`
	Equipment     []string      `json:"equipment"`
	Status        MissionStatus `json:"status"`
	Applicants    int           `json:"applicants"`
	Location      Location      `json:"location"`
	CreatedAt     time.Time     `json:"createdAt"`
	Urgency       Urgency       `json:"urgency,omitempty"`
}

func (m Mission) IsOpen() bool {
	return m.Status == MissionStatusOpen
}

// IsUrgent reports whether the mission needs someone today at the latest.
func (m Mission) IsUrgent() bool {
	return m.Urgency == UrgencyImmediate || m.Urgency == UrgencySameDay
}

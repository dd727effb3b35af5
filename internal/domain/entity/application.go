package entity

import (
	"time"
)

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn ApplicationStatus = "withdrawn"
)

// Application is a professional's bid on a mission.
type Application struct {
	ID                 string            `json:"id"`
	MissionID          string            `json:"missionId"`
	ProfessionalID     string            `json:"professionalId"`
	ProfessionalName   string            `json:"professionalName"`
	ProfessionalAvatar string            `json:"professionalAvatar,omitempty"`
	Message            string            `json:"message"`
	ProposedRate       *float64          `json:"proposedRate,omitempty"`
	Status             ApplicationStatus `json:"status"`
	AppliedAt          time.Time         `json:"appliedAt"`
}

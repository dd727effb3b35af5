package entity

import (
	"time"
)

type ProfessionalLocation struct {
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

type Experience struct {
	BakeryName string `json:"bakeryName"`
	Role       string `json:"role"`
	Period     string `json:"period"`
	City       string `json:"city"`
}

// Professional is a worker profile. It is read-only outside of seeding.
type Professional struct {
	ID                string               `json:"id"`
	FirstName         string               `json:"firstName"`
	LastName          string               `json:"lastName"`
	Avatar            string               `json:"avatar,omitempty"`
	Specialties       []string             `json:"specialties"`
	Domains           []string             `json:"domains"`
	YearsExperience   int                  `json:"yearsExperience"`
	Location          ProfessionalLocation `json:"location"`
	HourlyRate        float64              `json:"hourlyRate"`
	MissionsCompleted int                  `json:"missionsCompleted"`
	IsPremium         bool                 `json:"isPremium"`
	Bio               string               `json:"bio"`
	Certifications    []string             `json:"certifications"`
	Portfolio         []string             `json:"portfolio,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
	Experiences       []Experience         `json:"experiences,omitempty"`

	Phone                 string                 `json:"phone,omitempty"`
	Siret                 string                 `json:"siret,omitempty"`
	VerificationStatus    VerificationStatus     `json:"verificationStatus,omitempty"`
	VerificationDocuments []VerificationDocument `json:"verificationDocuments,omitempty"`
	Notes                 string                 `json:"notes,omitempty"`
	SuspendedUntil        string                 `json:"suspendedUntil,omitempty"`
}

func (p Professional) FullName() string {
	return p.FirstName + " " + p.LastName
}

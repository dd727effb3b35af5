package entity

import (
	"encoding/json"
	"fmt"
)

type UserType string

const (
	UserTypeBakery       UserType = "bakery"
	UserTypeProfessional UserType = "professional"
	UserTypeAdmin        UserType = "admin"
)

type ProfessionalStatus string

const (
	StatusAutoEntrepreneur ProfessionalStatus = "auto-entrepreneur"
	StatusInterim          ProfessionalStatus = "interim"
)

type BakeryProfile struct {
	BakeryID          string   `json:"bakeryId,omitempty"`
	BusinessName      string   `json:"businessName"`
	Address           string   `json:"address"`
	Phone             string   `json:"phone"`
	Description       string   `json:"description,omitempty"`
	EstablishmentType []string `json:"establishmentType"`
	CreatedAt         string   `json:"createdAt"`
}

type ProfessionalProfile struct {
	ProfessionalID string             `json:"professionalId,omitempty"`
	FirstName      string             `json:"firstName"`
	LastName       string             `json:"lastName"`
	Phone          string             `json:"phone"`
	Specialties    []string           `json:"specialties"`
	Experience     int                `json:"experience"`
	Location       string             `json:"location"`
	HourlyRate     float64            `json:"hourlyRate"`
	Availability   []string           `json:"availability"`
	Certifications []string           `json:"certifications"`
	Portfolio      []string           `json:"portfolio"`
	Status         ProfessionalStatus `json:"status"`
	CreatedAt      string             `json:"createdAt"`
}

// User is the authenticated session identity. Exactly one of the profile
// projections is set, chosen by Type; admins carry none. On the wire the
// active projection is written under a single "profile" key.
type User struct {
	ID     string   `json:"id"`
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Type   UserType `json:"type"`
	Avatar string   `json:"avatar,omitempty"`

	BakeryProfile       *BakeryProfile       `json:"-"`
	ProfessionalProfile *ProfessionalProfile `json:"-"`
}

type userWire struct {
	ID      string          `json:"id"`
	Email   string          `json:"email"`
	Name    string          `json:"name"`
	Type    UserType        `json:"type"`
	Avatar  string          `json:"avatar,omitempty"`
	Profile json.RawMessage `json:"profile"`
}

func (u User) MarshalJSON() ([]byte, error) {
	var profile interface{}
	switch u.Type {
	case UserTypeBakery:
		profile = u.BakeryProfile
	case UserTypeProfessional:
		profile = u.ProfessionalProfile
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return nil, err
	}

	return json.Marshal(userWire{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		Type:    u.Type,
		Avatar:  u.Avatar,
		Profile: raw,
	})
}

func (u *User) UnmarshalJSON(data []byte) error {
	var w userWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*u = User{
		ID:     w.ID,
		Email:  w.Email,
		Name:   w.Name,
		Type:   w.Type,
		Avatar: w.Avatar,
	}

	if len(w.Profile) == 0 || string(w.Profile) == "null" {
		return nil
	}

	switch w.Type {
	case UserTypeBakery:
		u.BakeryProfile = &BakeryProfile{}
		return json.Unmarshal(w.Profile, u.BakeryProfile)
	case UserTypeProfessional:
		u.ProfessionalProfile = &ProfessionalProfile{}
		return json.Unmarshal(w.Profile, u.ProfessionalProfile)
	case UserTypeAdmin:
		return nil
	default:
		return fmt.Errorf("unknown user type %q", w.Type)
	}
}

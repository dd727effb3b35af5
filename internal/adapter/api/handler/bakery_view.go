package handler

import (
	"choukette/internal/domain/entity"
)

// bakeryResponse is the public shape of a bakery account. The stored
// password is never part of it.
type bakeryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	Avatar      string `json:"avatar,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`

	Siret                 string                        `json:"siret,omitempty"`
	Siren                 string                        `json:"siren,omitempty"`
	TVANumber             string                        `json:"tvaNumber,omitempty"`
	Phone                 string                        `json:"phone,omitempty"`
	ManagerName           string                        `json:"managerName,omitempty"`
	ManagerEmail          string                        `json:"managerEmail,omitempty"`
	VerificationStatus    entity.VerificationStatus     `json:"verificationStatus,omitempty"`
	VerificationDocuments []entity.VerificationDocument `json:"verificationDocuments,omitempty"`
	Notes                 string                        `json:"notes,omitempty"`
	SuspendedUntil        string                        `json:"suspendedUntil,omitempty"`
}

func toBakeryResponse(b *entity.Bakery) *bakeryResponse {
	if b == nil {
		return nil
	}
	return &bakeryResponse{
		ID:                    b.ID,
		Name:                  b.Name,
		Email:                 b.Email,
		Address:               b.Address,
		City:                  b.City,
		PostalCode:            b.PostalCode,
		Avatar:                b.Avatar,
		Description:           b.Description,
		CreatedAt:             b.CreatedAt,
		Siret:                 b.Siret,
		Siren:                 b.Siren,
		TVANumber:             b.TVANumber,
		Phone:                 b.Phone,
		ManagerName:           b.ManagerName,
		ManagerEmail:          b.ManagerEmail,
		VerificationStatus:    b.VerificationStatus,
		VerificationDocuments: b.VerificationDocuments,
		Notes:                 b.Notes,
		SuspendedUntil:        b.SuspendedUntil,
	}
}

func toBakeryResponses(bakeries []entity.Bakery) []*bakeryResponse {
	out := make([]*bakeryResponse, 0, len(bakeries))
	for i := range bakeries {
		out = append(out, toBakeryResponse(&bakeries[i]))
	}
	return out
}

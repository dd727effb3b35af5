package seed

import (
	"time"

	"choukette/internal/domain/entity"
)

// MinBakeryMissions is the dashboard threshold below which filler missions
// are appended to a bakery's own list.
const MinBakeryMissions = 5

// FillerMissions returns the three demo missions attached to a bakery that
// has fewer than MinBakeryMissions postings. The first two are filled and
// the last one is open.
func FillerMissions(b entity.Bakery) []entity.Mission {
	name := b.Name
	if name == "" {
		name = "Boulangerie"
	}
	loc := entity.Location{City: "Paris", PostalCode: "75001"}

	base := func(id string) entity.Mission {
		return entity.Mission{
			ID:            id,
			BakeryID:      b.ID,
			BakeryName:    name,
			BakeryAddress: b.Address,
			BakeryAvatar:  b.Avatar,
			Location:      loc,
		}
	}

	m1 := base("bakery-mock-1")
	m1.Title = "Boulanger expérimenté - Remplacement matin"
	m1.Description = "Mission de remplacement matin pour production de pains traditionnels"
	m1.Type = entity.MissionTypeOneOff
	m1.Position = entity.PositionBaker
	m1.Duration = "1 jour"
	m1.StartDate = "2024-02-25"
	m1.Schedule = "04h00 - 12h00"
	m1.HourlyRate = 28
	m1.Requirements = entity.Requirements{Experience: 3, Certifications: []string{"CAP"}, Specialties: []string{"Pains traditionnels"}}
	m1.Equipment = []string{"Four", "Pétrin"}
	m1.Status = entity.MissionStatusFilled
	m1.Applicants = 2
	m1.CreatedAt = day("2024-02-20")

	m2 := base("bakery-mock-2")
	m2.Title = "Pâtissier weekend - Événement"
	m2.Description = "Recherche pâtissier pour événement spécial"
	m2.Type = entity.MissionTypeEvent
	m2.Position = entity.PositionPastryChef
	m2.Duration = "2 jours"
	m2.StartDate = "2024-03-02"
	m2.Schedule = "08h00 - 18h00"
	m2.HourlyRate = 32
	m2.Requirements = entity.Requirements{Experience: 5, Certifications: []string{"CAP"}, Specialties: []string{"Pâtisserie fine"}}
	m2.Equipment = []string{"Four", "Refroidisseur"}
	m2.Status = entity.MissionStatusFilled
	m2.Applicants = 1
	m2.CreatedAt = day("2024-02-22")

	m3 := base("bakery-mock-3")
	m3.Title = "Vendeur/Vendeuse - CDI week-end"
	m3.Description = "Recherche vendeur pour weekend"
	m3.Type = entity.MissionTypeRecurring
	m3.Position = entity.PositionSeller
	m3.Duration = "Permanent"
	m3.StartDate = "2024-03-09"
	m3.Schedule = "07h00 - 14h00"
	m3.HourlyRate = 22
	m3.Requirements = entity.Requirements{Experience: 1, Certifications: []string{}, Specialties: []string{"Vente"}}
	m3.Equipment = []string{}
	m3.Status = entity.MissionStatusOpen
	m3.Applicants = 3
	m3.CreatedAt = day("2024-02-18")

	return []entity.Mission{m1, m2, m3}
}

// DemoApplications returns the two pending applications shown on every
// freshly loaded bakery dashboard. They always target mission "1".
func DemoApplications() []entity.Application {
	return []entity.Application{
		{
			ID:                 "app1",
			MissionID:          "1",
			ProfessionalID:     "pro1",
			ProfessionalName:   "Camille Moreau",
			ProfessionalAvatar: "boulanger1.jpeg",
			Message:            "Intéressé par cette mission, j'ai 10 ans d'expérience en levain.",
			Status:             entity.ApplicationStatusPending,
			AppliedAt:          mustTime("2024-01-20T10:30:00Z"),
		},
		{
			ID:                 "app2",
			MissionID:          "1",
			ProfessionalID:     "pro3",
			ProfessionalName:   "Omar Bensaïd",
			ProfessionalAvatar: "boulanger3.jpeg",
			Message:            "Disponible ce weekend, très motivé.",
			Status:             entity.ApplicationStatusPending,
			AppliedAt:          mustTime("2024-01-20T14:15:00Z"),
		},
	}
}

func day(s string) time.Time {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

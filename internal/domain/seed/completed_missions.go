package seed

import (
	"choukette/internal/domain/entity"
)

// DemoProfessionalID owns the completed-mission history below.
const DemoProfessionalID = "pro1"

// CompletedMissions returns the closed missions of the demo professional.
func CompletedMissions() []entity.CompletedMission {
	return []entity.CompletedMission{
		entity.NewCompletedMission("cm1", DemoProfessionalID, "1", "Remplacement weekend - Boulangerie du Moulin", "Boulangerie du Moulin", "2024-01-28", 16, 28).
			WithRating(5, "Excellent travail, très professionnel."),
		entity.NewCompletedMission("cm2", DemoProfessionalID, "3", "Vendeur/Vendeuse - CDI week-end", "La Mie Dorée", "2024-02-04", 14, 22).
			WithRating(4, ""),
		entity.NewCompletedMission("cm3", DemoProfessionalID, "5", "Boulanger levain - Remplacement matin", "Le Levain Parisien", "2024-02-12", 24, 29).
			WithRating(5, "Très satisfait du travail réalisé."),
		entity.NewCompletedMission("cm4", DemoProfessionalID, "7", "Pâtissier - Mission événement", "Pâtisserie Délices", "2024-02-18", 20, 32).
			WithRating(5, "Excellent professionnel, très créatif."),
		entity.NewCompletedMission("cm5", DemoProfessionalID, "9", "Tourneur - Production viennoiseries", "La Feuilletée", "2024-02-20", 12, 28).
			WithRating(4, ""),
		entity.NewCompletedMission("cm6", DemoProfessionalID, "11", "Boulanger - Remplacement urgent", "Boulangerie du Canal", "2024-02-22", 18, 30).
			WithRating(5, ""),
	}
}

// CompletedMissionsFor keeps only the history owned by professionalID.
func CompletedMissionsFor(professionalID string) []entity.CompletedMission {
	out := []entity.CompletedMission{}
	for _, m := range CompletedMissions() {
		if m.ProfessionalID == professionalID {
			out = append(out, m)
		}
	}
	return out
}

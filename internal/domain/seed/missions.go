package seed

import (
	"time"

	"choukette/internal/domain/entity"
)

// Missions returns the mission catalogue. createdAt stamps every posting.
func Missions(createdAt time.Time) []entity.Mission {
	return []entity.Mission{
		{
			ID:            "1",
			Title:         "Boulanger expérimenté - Remplacement weekend",
			Description:   "Remplacement au fournil sur un volume soutenu le weekend.",
			BakeryID:      "bakery1",
			BakeryName:    "Boulangerie du Moulin",
			BakeryAddress: "23 Rue de Rivoli, 75001 Paris",
			BakeryAvatar:  "boulangerie1.jpeg",
			Type:          entity.MissionTypeOneOff,
			Position:      entity.PositionBaker,
			Duration:      "2 jours",
			StartDate:     "2024-01-27",
			EndDate:       "2024-01-28",
			Schedule:      "05h00 - 13h00",
			HourlyRate:    28,
			Requirements: entity.Requirements{
				Experience:     3,
				Certifications: []string{"CAP Boulanger"},
				Specialties:    []string{"Boulangerie artisanale", "Viennoiserie"},
			},
			Equipment:  []string{"Four à sole", "Pétrin spirale", "Chambre de fermentation"},
			Status:     entity.MissionStatusOpen,
			Applicants: 5,
			Location:   entity.Location{Address: "23 Rue de Rivoli", City: "Paris", PostalCode: "75001", Coordinates: &entity.Coordinates{Lat: 48.8606, Lng: 2.3376}},
			CreatedAt:  createdAt,
		},
		{
			ID:            "2",
			Title:         "URGENT - Pâtissier pour mariage demain",
			Description:   "Intervention express pour finaliser des entremets et un wedding cake de haut niveau.",
			BakeryID:      "bakery2",
			BakeryName:    "Pâtisserie Délices",
			BakeryAddress: "45 Avenue des Champs-Élysées, 75008 Paris",
			BakeryAvatar:  "boulangerie2.jpeg",
			Type:          entity.MissionTypeUrgent,
			Position:      entity.PositionPastryChef,
			Duration:      "1 jour",
			StartDate:     "2024-01-21",
			Schedule:      "08h00 - 18h00",
			HourlyRate:    35,
			Requirements: entity.Requirements{
				Experience:     5,
				Certifications: []string{"CAP Pâtissier", "BTM Pâtissier"},
				Specialties:    []string{"Pâtisserie française traditionnelle", "Décoration/wedding cake"},
			},
			Equipment:  []string{"Four ventilé", "Tempéreuse chocolat", "Matériel décoration"},
			Status:     entity.MissionStatusOpen,
			Applicants: 2,
			Location:   entity.Location{Address: "45 Avenue des Champs-Élysées", City: "Paris", PostalCode: "75008", Coordinates: &entity.Coordinates{Lat: 48.8698, Lng: 2.3076}},
			CreatedAt:  createdAt,
			Urgency:    entity.UrgencySameDay,
		},
		{
			ID:            "3",
			Title:         "Vendeur/Vendeuse - CDI week-end",
			Description:   "Week-end en boutique: accueil chaleureux, conseil sur pains/viennoiseries/pâtisseries, mise en avant des produits de saison.",
			BakeryID:      "bakery3",
			BakeryName:    "La Mie Dorée",
			BakeryAddress: "12 Place Saint-Germain, 75006 Paris",
			BakeryAvatar:  "boulangerie3.jpeg",
			Type:          entity.MissionTypeRecurring,
			Position:      entity.PositionSeller,
			Duration:      "Tous les week-ends",
			StartDate:     "2024-02-01",
			Schedule:      "07h00 - 14h00",
			HourlyRate:    22,
			Requirements: entity.Requirements{
				Experience:     1,
				Certifications: []string{},
				Specialties:    []string{"Vente", "Accueil clientèle"},
			},
			Equipment:  []string{"Caisse enregistreuse", "Balance", "Vitrine réfrigérée"},
			Status:     entity.MissionStatusOpen,
			Applicants: 8,
			Location:   entity.Location{Address: "12 Place Saint-Germain", City: "Paris", PostalCode: "75006", Coordinates: &entity.Coordinates{Lat: 48.8534, Lng: 2.3354}},
			CreatedAt:  createdAt,
		},
		{
			ID:            "4",
			Title:         "Tourneur - Production nocturne",
			Description:   "Production nocturne en viennoiserie: détrempes, beurrage, tours réguliers, façonnages (croissants, pains au chocolat, chaussons, brioches).",
			BakeryID:      "bakery4",
			BakeryName:    "Artisan Boulanger",
			BakeryAddress: "8 Rue Mouffetard, 75005 Paris",
			BakeryAvatar:  "boulangerie4.jpeg",
			Type:          entity.MissionTypeOneOff,
			Position:      entity.PositionTurner,
			Duration:      "5 jours",
			StartDate:     "2024-01-25",
			EndDate:       "2024-01-29",
			Schedule:      "02h00 - 08h00",
			HourlyRate:    26,
			Requirements: entity.Requirements{
				Experience:     4,
				Certifications: []string{"CAP Boulanger"},
				Specialties:    []string{"Façonnage", "Pains spéciaux"},
			},
			Equipment:  []string{"Diviseuse", "Façonneuse", "Chambre de pousse"},
			Status:     entity.MissionStatusOpen,
			Applicants: 3,
			Location:   entity.Location{Address: "8 Rue Mouffetard", City: "Paris", PostalCode: "75005", Coordinates: &entity.Coordinates{Lat: 48.8426, Lng: 2.3488}},
			CreatedAt:  createdAt,
		},
		{
			ID:            "5",
			Title:         "Boulanger levain - Remplacement matin",
			Description:   "Poste focalisé sur le levain naturel (rafraîchis quotidiens, suivi pH/arômes), pétrissages doux (spirale/bassinage), pointage en cuve et en bac selon le planning.",
			BakeryID:      "bakery5",
			BakeryName:    "Le Levain Parisien",
			BakeryAddress: "5 Rue Oberkampf, 75011 Paris",
			BakeryAvatar:  "boulangerie5.jpeg",
			Type:          entity.MissionTypeOneOff,
			Position:      entity.PositionBaker,
			Duration:      "3 jours",
			StartDate:     "2024-02-10",
			Schedule:      "04h30 - 12h30",
			HourlyRate:    29,
			Requirements: entity.Requirements{
				Experience:     4,
				Certifications: []string{"CAP Boulanger"},
				Specialties:    []string{"Levain naturel", "Pains anciens"},
			},
			Equipment:  []string{"Four à sole", "Bassinage", "Chambre de pousse"},
			Status:     entity.MissionStatusOpen,
			Applicants: 1,
			Location:   entity.Location{Address: "5 Rue Oberkampf", City: "Paris", PostalCode: "75011"},
			CreatedAt:  createdAt,
		},
		{
			ID:            "6",
			Title:         "Pâtisserie moderne - entremets et glaçage miroir",
			Description:   "Production d’entremets modernes exigeants: réalisation de biscuits moelleux, croustillants stables, mousses aérées, inserts calibrés (fruit, praliné, chocolat).",
			BakeryID:      "bakery6",
			BakeryName:    "Maison Sucrée",
			BakeryAddress: "18 Rue du Bac, 75007 Paris",
			BakeryAvatar:  "boulangerie6.jpeg",
			Type:          entity.MissionTypeOneOff,
			Position:      entity.PositionPastryChef,
			Duration:      "1 semaine",
			StartDate:     "2024-02-15",
			Schedule:      "06h00 - 14h00",
			HourlyRate:    32,
			Requirements: entity.Requirements{
				Experience:     3,
				Certifications: []string{"CAP Pâtissier"},
				Specialties:    []string{"Pâtisserie moderne", "Glaçage miroir"},
			},
			Equipment:  []string{"Cellule de refroidissement", "Tempéreuse chocolat"},
			Status:     entity.MissionStatusOpen,
			Applicants: 4,
			Location:   entity.Location{Address: "18 Rue du Bac", City: "Paris", PostalCode: "75007"},
			CreatedAt:  createdAt,
		},
		{
			ID:            "7",
			Title:         "Viennoiserie artisanale - feuilletage pur beurre",
			Description:   "Feuilletage pur beurre: détrempes, beurrage uniforme, tours simples/doubles.",
			BakeryID:      "bakery7",
			BakeryName:    "La Feuilletée",
			BakeryAddress: "9 Rue Lafayette, 75009 Paris",
			BakeryAvatar:  "boulangerie7.jpeg",
			Type:          entity.MissionTypeRecurring,
			Position:      entity.PositionTurner,
			Duration:      "Tous les lundis et mardis",
			StartDate:     "2024-02-05",
			Schedule:      "03h30 - 10h30",
			HourlyRate:    27,
			Requirements: entity.Requirements{
				Experience:     2,
				Certifications: []string{"CAP Boulanger"},
				Specialties:    []string{"Viennoiserie", "Tourage"},
			},
			Equipment:  []string{"Laminoir", "Chambre de pousse"},
			Status:     entity.MissionStatusOpen,
			Applicants: 3,
			Location:   entity.Location{Address: "9 Rue Lafayette", City: "Paris", PostalCode: "75009"},
			CreatedAt:  createdAt,
		},
		{
			ID:            "8",
			Title:         "Vente en boutique - accueil premium",
			Description:   "Accueil premium, conseils personnalisés (dégustation/conservation), encaissement fluide, gestion des flux de midi.",
			BakeryID:      "bakery8",
			BakeryName:    "Champs Gourmands",
			BakeryAddress: "120 Av. Victor Hugo, 75016 Paris",
			BakeryAvatar:  "boulangerie8.jpeg",
			Type:          entity.MissionTypeOneOff,
			Position:      entity.PositionSeller,
			Duration:      "10 jours",
			StartDate:     "2024-02-20",
			Schedule:      "10h00 - 19h00",
			HourlyRate:    21,
			Requirements: entity.Requirements{
				Experience:     1,
				Certifications: []string{},
				Specialties:    []string{"Accueil", "Vente"},
			},
			Equipment:  []string{"Caisse", "Balance"},
			Status:     entity.MissionStatusOpen,
			Applicants: 6,
			Location:   entity.Location{Address: "120 Av. Victor Hugo", City: "Paris", PostalCode: "75016"},
			CreatedAt:  createdAt,
		},
		{
			ID:            "9",
			Title:         "Boulangerie bio - pains anciens",
			Description:   "Gamme pains anciens en farines bio (épeautre, seigle, blés anciens) avec forte exigence sur l’authenticité.",
			BakeryID:      "bakery9",
			BakeryName:    "Graines & Levains",
			BakeryAddress: "3 Rue de la République, 92100 Boulogne-Billancourt",
			BakeryAvatar:  "boulangerie9.jpeg",
			Type:          entity.MissionTypeEvent,
			Position:      entity.PositionBaker,
			Duration:      "2 semaines",
			StartDate:     "2024-03-01",
			Schedule:      "05h00 - 12h00",
			HourlyRate:    30,
			Requirements: entity.Requirements{
				Experience:     4,
				Certifications: []string{"CAP Boulanger"},
				Specialties:    []string{"Pains anciens", "Bio"},
			},
			Equipment:  []string{"Four à sole", "Banneton"},
			Status:     entity.MissionStatusOpen,
			Applicants: 2,
			Location:   entity.Location{Address: "3 Rue de la République", City: "Boulogne-Billancourt", PostalCode: "92100"},
			CreatedAt:  createdAt,
		},
		{
			ID:            "10",
			Title:         "Pâtisserie classique - tartes & choux",
			Description:   "Tartes & choux: fonçage et cuisson à blanc, appareils (crème d’amande/pâtissière/citron), pochage régulier, glaçages brillants.",
			BakeryID:      "bakery10",
			BakeryName:    "Classiques Gourmands",
			BakeryAddress: "22 Rue de Paris, 94300 Vincennes",
			BakeryAvatar:  "boulangerie10.jpeg",
			Type:          entity.MissionTypeRecurring,
			Position:      entity.PositionPastryChef,
			Duration:      "Chaque samedi",
			StartDate:     "2024-03-05",
			Schedule:      "06h00 - 14h00",
			HourlyRate:    26,
			Requirements: entity.Requirements{
				Experience:     2,
				Certifications: []string{"CAP Pâtissier"},
				Specialties:    []string{"Pâtisserie classique"},
			},
			Equipment:  []string{"Four ventilé"},
			Status:     entity.MissionStatusOpen,
			Applicants: 5,
			Location:   entity.Location{Address: "22 Rue de Paris", City: "Vincennes", PostalCode: "94300"},
			CreatedAt:  createdAt,
		},
		{
			ID:            "11",
			Title:         "Nuit - fournier expérimenté",
			Description:   "Fournier nuit: chauffe, chargement/pelage, coups de buée, lecture de coloration.",
			BakeryID:      "bakery11",
			BakeryName:    "La Fournée",
			BakeryAddress: "14 Rue de Belleville, 75020 Paris",
			BakeryAvatar:  "boulangerie11.jpeg",
			Type:          entity.MissionTypeOneOff,
			Position:      entity.PositionBaker,
			Duration:      "1 semaine",
			StartDate:     "2024-03-12",
			Schedule:      "01h00 - 07h00",
			HourlyRate:    31,
			Requirements: entity.Requirements{
				Experience:     5,
				Certifications: []string{"CAP Boulanger"},
				Specialties:    []string{"Cuisson", "Gestion de cadence"},
			},
			Equipment:  []string{"Four à sole"},
			Status:     entity.MissionStatusOpen,
			Applicants: 1,
			Location:   entity.Location{Address: "14 Rue de Belleville", City: "Paris", PostalCode: "75020"},
			CreatedAt:  createdAt,
		},
		{
			ID:            "12",
			Title:         "Assistant vente - renfort midi",
			Description:   "Rush de midi: prise de commandes sandwicherie, encaissement rapide et exact, réassort vitrine salée/sucrée, maintien propreté comptoir/salle.",
			BakeryID:      "bakery12",
			BakeryName:    "Au Blé d’Or",
			BakeryAddress: "7 Rue Danton, 75006 Paris",
			BakeryAvatar:  "boulangerie12.jpeg",
			Type:          entity.MissionTypeUrgent,
			Position:      entity.PositionSeller,
			Duration:      "3 jours",
			StartDate:     "2024-02-01",
			Schedule:      "11h00 - 15h00",
			HourlyRate:    23,
			Requirements: entity.Requirements{
				Experience:     1,
				Certifications: []string{},
				Specialties:    []string{"Vente", "Relation client"},
			},
			Equipment:  []string{"Caisse"},
			Status:     entity.MissionStatusOpen,
			Applicants: 7,
			Location:   entity.Location{Address: "7 Rue Danton", City: "Paris", PostalCode: "75006"},
			CreatedAt:  createdAt,
			Urgency:    entity.UrgencyImmediate,
		},
		{
			ID:            "13",
			Title:         "Boulangerie traditionnelle française - fournil levain",
			Description:   "Mission cœur tradition avec exigence de constance.",
			BakeryID:      "bakery13",
			BakeryName:    "Tradition & Levain",
			BakeryAddress: "4 Rue Rambuteau, 75003 Paris",
			BakeryAvatar:  "boulangerie13.jpeg",
			Type:          entity.MissionTypeOneOff,
			Position:      entity.PositionBaker,
			Duration:      "10 jours",
			StartDate:     "2024-03-18",
			Schedule:      "04h00 - 12h00",
			HourlyRate:    30,
			Requirements: entity.Requirements{
				Experience:     3,
				Certifications: []string{"CAP Boulanger"},
				Specialties:    []string{"Pains de tradition française", "Fournil traditionnel"},
			},
			Equipment:  []string{"Four à sole", "Banneton"},
			Status:     entity.MissionStatusOpen,
			Applicants: 2,
			Location:   entity.Location{Address: "4 Rue Rambuteau", City: "Paris", PostalCode: "75003"},
			CreatedAt:  createdAt,
		},
		{
			ID:            "14",
			Title:         "Pains spéciaux bio - farines anciennes",
			Description:   "Pains spéciaux bio: farines anciennes (épeautre/seigle), graines/céréales, levain chef certifié bio.",
			BakeryID:      "bakery14",
			BakeryName:    "Bio & Graines",
			BakeryAddress: "12 Rue des Ternes, 75017 Paris",
			BakeryAvatar:  "boulangerie14.jpeg",
			Type:          entity.MissionTypeRecurring,
			Position:      entity.PositionBaker,
			Duration:      "Tous les jeudis et vendredis",
			StartDate:     "2024-03-07",
			Schedule:      "05h00 - 12h30",
			HourlyRate:    31,
			Requirements: entity.Requirements{
				Experience:     3,
				Certifications: []string{"CAP Boulanger"},
				Specialties:    []string{"Boulangerie bio", "Pains spéciaux"},
			},
			Equipment:  []string{"Four à sole", "Chambre de pousse"},
			Status:     entity.MissionStatusOpen,
			Applicants: 4,
			Location:   entity.Location{Address: "12 Rue des Ternes", City: "Paris", PostalCode: "75017"},
			CreatedAt:  createdAt,
		},
		{
			ID:            "15",
			Title:         "Viennoiserie - tourage pur beurre",
			Description:   "Viennoiserie: détrempes/beurrage, tours réguliers, façonnages croissants/pains choco/chaussons, brioches feuilletées.",
			BakeryID:      "bakery15",
			BakeryName:    "Beurre & Feuilletage",
			BakeryAddress: "8 Rue du Commerce, 75015 Paris",
			BakeryAvatar:  "boulangerie15.jpeg",
			Type:          entity.MissionTypeOneOff,
			Position:      entity.PositionTurner,
			Duration:      "2 semaines",
			StartDate:     "2024-03-11",
			Schedule:      "03h30 - 10h30",
			HourlyRate:    28,
			Requirements: entity.Requirements{
				Experience:     2,
				Certifications: []string{"CAP Boulanger"},
				Specialties:    []string{"Travail des pâtes levées feuilletées", "Viennoiserie"},
			},
			Equipment:  []string{"Laminoir", "Chambre de pousse"},
			Status:     entity.MissionStatusOpen,
			Applicants: 5,
			Location:   entity.Location{Address: "8 Rue du Commerce", City: "Paris", PostalCode: "75015"},
			CreatedAt:  createdAt,
		},
		{
			ID:            "16",
			Title:         "Pâtisserie fine - entremets et gâteaux de voyage",
			Description:   "Pâtisserie fine orientée boutique premium et restauration à emporter: biscuits moelleux structurés, croustillants techniques résistants au temps, mousses légères et stables.",
			BakeryID:      "bakery16",
			BakeryName:    "Pâtisserie Élégante",
			BakeryAddress: "3 Rue de Passy, 75016 Paris",
			BakeryAvatar:  "boulangerie16.jpeg",
			Type:          entity.MissionTypeEvent,
			Position:      entity.PositionPastryChef,
			Duration:      "1 semaine",
			StartDate:     "2024-03-25",
			Schedule:      "06h00 - 14h00",
			HourlyRate:    34,
			Requirements: entity.Requirements{
				Experience:     4,
				Certifications: []string{"CAP Pâtissier"},
				Specialties:    []string{"Pâtisserie fine", "Glaçage miroir"},
			},
			Equipment:  []string{"Cellule de refroidissement", "Tempéreuse"},
			Status:     entity.MissionStatusOpen,
			Applicants: 2,
			Location:   entity.Location{Address: "3 Rue de Passy", City: "Paris", PostalCode: "75016"},
			CreatedAt:  createdAt,
		},
		{
			ID:            "17",
			Title:         "Pains du monde - ciabatta & focaccia",
			Description:   "Panification italienne: hydratations élevées, huile d’olive, maturations longues au froid.",
			BakeryID:      "bakery17",
			BakeryName:    "Four des Mondes",
			BakeryAddress: "21 Rue Oberkampf, 75011 Paris",
			BakeryAvatar:  "boulangerie17.jpeg",
			Type:          entity.MissionTypeOneOff,
			Position:      entity.PositionBaker,
			Duration:      "6 jours",
			StartDate:     "2024-03-05",
			Schedule:      "05h00 - 12h00",
			HourlyRate:    29,
			Requirements: entity.Requirements{
				Experience:     2,
				Certifications: []string{},
				Specialties:    []string{"Pains du monde"},
			},
			Equipment:  []string{"Four ventilé"},
			Status:     entity.MissionStatusOpen,
			Applicants: 1,
			Location:   entity.Location{Address: "21 Rue Oberkampf", City: "Paris", PostalCode: "75011"},
			CreatedAt:  createdAt,
		},
		{
			ID:            "18",
			Title:         "Traiteur boulanger - quiches & pizzas",
			Description:   "Pôle salé: bases de quiches, appareils, fonçage/cuits, pâtons pizza (pointage/apprêt), garnitures équilibrées.",
			BakeryID:      "bakery18",
			BakeryName:    "Salé & Gourmand",
			BakeryAddress: "5 Rue de la Pompe, 75116 Paris",
			BakeryAvatar:  "boulangerie18.jpeg",
			Type:          entity.MissionTypeRecurring,
			Position:      entity.PositionBaker,
			Duration:      "Lundis, mercredis, vendredis",
			StartDate:     "2024-03-04",
			Schedule:      "07h00 - 15h00",
			HourlyRate:    25,
			Requirements: entity.Requirements{
				Experience:     2,
				Certifications: []string{},
				Specialties:    []string{"Traiteur boulanger", "Sandwicherie"},
			},
			Equipment:  []string{"Four ventilé"},
			Status:     entity.MissionStatusOpen,
			Applicants: 6,
			Location:   entity.Location{Address: "5 Rue de la Pompe", City: "Paris", PostalCode: "75116"},
			CreatedAt:  createdAt,
		},
		{
			ID:            "19",
			Title:         "Sans gluten - farines alternatives",
			Description:   "Atelier 100% sans gluten: maîtrise des farines alternatives (riz, sarrasin, maïs), des liants (psyllium, gomme xanthane) et des hydratations spécifiques.",
			BakeryID:      "bakery19",
			BakeryName:    "Grain Libre",
			BakeryAddress: "10 Rue Houdan, 92330 Sceaux",
			BakeryAvatar:  "boulangerie19.jpeg",
			Type:          entity.MissionTypeOneOff,
			Position:      entity.PositionBaker,
			Duration:      "8 jours",
			StartDate:     "2024-03-20",
			Schedule:      "05h30 - 12h30",
			HourlyRate:    32,
			Requirements: entity.Requirements{
				Experience:     3,
				Certifications: []string{},
				Specialties:    []string{"Boulangerie sans gluten"},
			},
			Equipment:  []string{"Four ventilé"},
			Status:     entity.MissionStatusOpen,
			Applicants: 2,
			Location:   entity.Location{Address: "10 Rue Houdan", City: "Sceaux", PostalCode: "92330"},
			CreatedAt:  createdAt,
		},
		{
			ID:            "20",
			Title:         "Four à bois - cuisson traditionnelle",
			Description:   "Four à bois: allumage et maintien de la braise, gestion de la sole, coups de buée alternatifs.",
			BakeryID:      "bakery20",
			BakeryName:    "Au Feu de Bois",
			BakeryAddress: "2 Rue de Paris, 94130 Nogent-sur-Marne",
			BakeryAvatar:  "boulangerie20.jpeg",
			Type:          entity.MissionTypeEvent,
			Position:      entity.PositionBaker,
			Duration:      "4 jours",
			StartDate:     "2024-04-02",
			Schedule:      "03h30 - 11h30",
			HourlyRate:    33,
			Requirements: entity.Requirements{
				Experience:     4,
				Certifications: []string{"CAP Boulanger"},
				Specialties:    []string{"Four à bois"},
			},
			Equipment:  []string{"Four à bois"},
			Status:     entity.MissionStatusOpen,
			Applicants: 1,
			Location:   entity.Location{Address: "2 Rue de Paris", City: "Nogent-sur-Marne", PostalCode: "94130"},
			CreatedAt:  createdAt,
		},
		{
			ID:            "21",
			Title:         "Pâtisserie de restaurant - dressages minute",
			Description:   "Pâtisserie de restaurant: dressages minute à l’assiette, contrastes chaud/froid et croquant/fondant, sauces et crèmes montées.",
			BakeryID:      "bakery21",
			BakeryName:    "La Table Sucrée",
			BakeryAddress: "6 Rue de l’Odéon, 75006 Paris",
			BakeryAvatar:  "boulangerie21.jpeg",
			Type:          entity.MissionTypeOneOff,
			Position:      entity.PositionPastryChef,
			Duration:      "9 jours",
			StartDate:     "2024-03-28",
			Schedule:      "12h00 - 22h00",
			HourlyRate:    36,
			Requirements: entity.Requirements{
				Experience:     5,
				Certifications: []string{"CAP Pâtissier"},
				Specialties:    []string{"Pâtisserie de restaurant"},
			},
			Equipment:  []string{"Batteur", "Plaques froides"},
			Status:     entity.MissionStatusOpen,
			Applicants: 3,
			Location:   entity.Location{Address: "6 Rue de l’Odéon", City: "Paris", PostalCode: "75006"},
			CreatedAt:  createdAt,
		},
		{
			ID:            "22",
			Title:         "Bagels & pita - pains du monde salés",
			Description:   "Bagels & pita: façonnage précis, pochage avant cuisson pour brillance, pâtes pita très hydratées pour poches régulières.",
			BakeryID:      "bakery22",
			BakeryName:    "World Bakery",
			BakeryAddress: "18 Rue Jean Jaurès, 93200 Saint-Denis",
			BakeryAvatar:  "boulangerie22.jpeg",
			Type:          entity.MissionTypeRecurring,
			Position:      entity.PositionBaker,
			Duration:      "Tous les week-ends",
			StartDate:     "2024-04-06",
			Schedule:      "06h00 - 14h30",
			HourlyRate:    27,
			Requirements: entity.Requirements{
				Experience:     2,
				Certifications: []string{},
				Specialties:    []string{"Pains du monde", "Sandwicherie"},
			},
			Equipment:  []string{"Four ventilé"},
			Status:     entity.MissionStatusOpen,
			Applicants: 4,
			Location:   entity.Location{Address: "18 Rue Jean Jaurès", City: "Saint-Denis", PostalCode: "93200"},
			CreatedAt:  createdAt,
		},
	}
}

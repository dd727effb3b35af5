package seed

import (
	"time"

	"choukette/internal/domain/entity"
)

// Professionals returns the worker profiles. Avatars are assigned by the
// caller with PickAvatar.
func Professionals(createdAt time.Time) []entity.Professional {
	return []entity.Professional{
		{
			ID:                "pro1",
			FirstName:         "Camille",
			LastName:          "Moreau",
			Specialties:       []string{"Pains de tradition française", "Levain naturel"},
			Domains:           []string{"Pain et viennoiserie", "Fournil traditionnel"},
			YearsExperience:   10,
			Location:          entity.ProfessionalLocation{City: "Paris", PostalCode: "75011"},
			HourlyRate:        29,
			MissionsCompleted: 140,
			IsPremium:         true,
			Bio:               "Boulanger spécialisé levain et farines anciennes, avec une approche très technique des fermentations lentes (pétrissages doux, pointage cuve/bac, apprêts contrôlés).",
			Certifications:    []string{"CAP Boulanger", "BP Boulanger"},
			CreatedAt:         createdAt,
			Experiences: []entity.Experience{
				{BakeryName: "Boulangerie du Canal", Role: "Chef de fournil", Period: "2022–2024", City: "Paris"},
				{BakeryName: "Le Grenier Bio", Role: "Boulanger", Period: "2019–2022", City: "Montreuil"},
				{BakeryName: "Maison Martin", Role: "Second de fournil", Period: "2016–2019", City: "Paris"},
			},
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentIdentity, URL: "/documents/id_pro1.pdf", UploadedAt: "2023-09-01", Verified: true},
				{Type: entity.DocumentDiploma, URL: "/documents/diploma_pro1.pdf", UploadedAt: "2023-09-01", Verified: true, DiplomaType: "CAP Boulanger", Year: 2014},
			},
		},
		{
			ID:                "pro2",
			FirstName:         "Sofiane",
			LastName:          "Leroux",
			Specialties:       []string{"Entremets modernes", "Glaçage miroir", "Dressages"},
			Domains:           []string{"Pâtisserie fine"},
			YearsExperience:   8,
			Location:          entity.ProfessionalLocation{City: "Paris", PostalCode: "75007"},
			HourlyRate:        34,
			MissionsCompleted: 96,
			IsPremium:         true,
			Bio:               "Pâtissier boutique et restaurant, orienté entremets modernes, tartes fines et dressages minute.",
			Certifications:    []string{"CAP Pâtissier", "BTM Pâtissier"},
			CreatedAt:         createdAt,
			Experiences: []entity.Experience{
				{BakeryName: "Salon Sucré", Role: "Chef pâtissier", Period: "2021–2024", City: "Paris"},
				{BakeryName: "Éclats de Sucre", Role: "Pâtissier", Period: "2018–2021", City: "Boulogne"},
				{BakeryName: "Hôtel Marceau", Role: "Chef de partie pâtisserie", Period: "2016–2018", City: "Paris"},
			},
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentIdentity, URL: "/documents/id_pro2.pdf", UploadedAt: "2023-09-01", Verified: true},
				{Type: entity.DocumentDiploma, URL: "/documents/diploma_pro2.pdf", UploadedAt: "2023-09-01", Verified: true, DiplomaType: "CAP Pâtissier", Year: 2016},
			},
		},
		{
			ID:                "pro3",
			FirstName:         "Omar",
			LastName:          "Bensaïd",
			Specialties:       []string{"Viennoiserie pur beurre", "Tourage"},
			Domains:           []string{"Tournier/Tourier"},
			YearsExperience:   6,
			Location:          entity.ProfessionalLocation{City: "Paris", PostalCode: "75009"},
			HourlyRate:        28,
			MissionsCompleted: 74,
			IsPremium:         false,
			Bio:               "Tourier spécialisé en feuilletage pur beurre: détrempes précises, beurrage régulier, tours simples/doubles au bon tempo.",
			Certifications:    []string{"CAP Boulanger"},
			CreatedAt:         createdAt,
			Experiences: []entity.Experience{
				{BakeryName: "La Feuilletée", Role: "Tourier", Period: "2020–2024", City: "Paris"},
				{BakeryName: "Maison des Viennoiseries", Role: "Aide tourier", Period: "2018–2020", City: "Saint-Denis"},
			},
			VerificationStatus: entity.VerificationPending,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentIdentity, URL: "/documents/id_pro3.pdf", UploadedAt: "2023-09-01", Verified: false},
				{Type: entity.DocumentDiploma, URL: "/documents/diploma_pro3.pdf", UploadedAt: "2023-09-01", Verified: false, DiplomaType: "CAP Boulanger", Year: 2018},
			},
		},
		{
			ID:                "pro4",
			FirstName:         "Lino",
			LastName:          "Dupuis",
			Specialties:       []string{"Pains du monde", "Ciabatta", "Focaccia"},
			Domains:           []string{"Pain et viennoiserie", "Pains du monde"},
			YearsExperience:   7,
			Location:          entity.ProfessionalLocation{City: "Boulogne-Billancourt", PostalCode: "92100"},
			HourlyRate:        30,
			MissionsCompleted: 68,
			IsPremium:         false,
			Bio:               "Panification italienne et pains du monde: hydratations élevées, maturations longues au froid, manipulation délicate des pâtes pour préserver les alvéoles.",
			Certifications:    []string{"CAP Boulanger"},
			CreatedAt:         createdAt,
			Experiences: []entity.Experience{
				{BakeryName: "Forno Paris", Role: "Boulanger", Period: "2021–2024", City: "Paris"},
				{BakeryName: "Pane e Amore", Role: "Aide boulanger", Period: "2017–2021", City: "Paris"},
				{BakeryName: "Casa Pane", Role: "Boulanger", Period: "2015–2017", City: "Rome"},
			},
			VerificationStatus: entity.VerificationPending,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentIdentity, URL: "/documents/id_pro4.pdf", UploadedAt: "2023-09-01", Verified: false},
				{Type: entity.DocumentDiploma, URL: "/documents/diploma_pro4.pdf", UploadedAt: "2023-09-01", Verified: false, DiplomaType: "CAP Boulanger", Year: 2017},
			},
		},
		{
			ID:                "pro5",
			FirstName:         "Victor",
			LastName:          "Rossi",
			Specialties:       []string{"Sans gluten", "Farines alternatives"},
			Domains:           []string{"Spécialisations techniques"},
			YearsExperience:   9,
			Location:          entity.ProfessionalLocation{City: "Vincennes", PostalCode: "94300"},
			HourlyRate:        35,
			MissionsCompleted: 82,
			IsPremium:         true,
			Bio:               "Spécialiste farines alternatives (riz, sarrasin, maïs) et environnement 100% sans gluten.",
			Certifications:    []string{"CAP Boulanger"},
			CreatedAt:         createdAt,
			Experiences: []entity.Experience{
				{BakeryName: "Grain Libre", Role: "Chef de production", Period: "2020–2024", City: "Paris"},
				{BakeryName: "Sans-G", Role: "Boulanger", Period: "2016–2020", City: "Paris"},
			},
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentIdentity, URL: "/documents/id_pro5.pdf", UploadedAt: "2023-09-01", Verified: true},
				{Type: entity.DocumentDiploma, URL: "/documents/diploma_pro5.pdf", UploadedAt: "2023-09-01", Verified: true, DiplomaType: "CAP Boulanger", Year: 2015},
			},
		},
		{
			ID:                "pro6",
			FirstName:         "Nino",
			LastName:          "Bernard",
			Specialties:       []string{"Pâtisserie classique", "Tartes", "Choux"},
			Domains:           []string{"Pâtisserie"},
			YearsExperience:   6,
			Location:          entity.ProfessionalLocation{City: "Paris", PostalCode: "75012"},
			HourlyRate:        27,
			MissionsCompleted: 58,
			IsPremium:         false,
			Bio:               "Pâtissier polyvalent orienté classiques français: tartes (fonçage, cuisson à blanc, appareils), choux (pochage régulier, glaçages), entremets à la carte.",
			Certifications:    []string{"CAP Pâtissier"},
			CreatedAt:         createdAt,
			Experiences: []entity.Experience{
				{BakeryName: "Classiques Gourmands", Role: "Pâtissier", Period: "2021–2024", City: "Vincennes"},
				{BakeryName: "Maison Dupont", Role: "Commis pâtisserie", Period: "2019–2021", City: "Paris"},
				{BakeryName: "Pâtisserie du Parc", Role: "Apprenti pâtissier", Period: "2018–2019", City: "Paris"},
			},
			VerificationStatus: entity.VerificationPending,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentIdentity, URL: "/documents/id_pro6.pdf", UploadedAt: "2023-09-01", Verified: false},
				{Type: entity.DocumentDiploma, URL: "/documents/diploma_pro6.pdf", UploadedAt: "2023-09-01", Verified: false, DiplomaType: "CAP Pâtissier", Year: 2018},
			},
		},
		{
			ID:                "pro7",
			FirstName:         "Hugo",
			LastName:          "Petit",
			Specialties:       []string{"Viennoiserie", "Tourage", "Brioches feuilletées"},
			Domains:           []string{"Tournier/Tourier"},
			YearsExperience:   5,
			Location:          entity.ProfessionalLocation{City: "Saint-Denis", PostalCode: "93200"},
			HourlyRate:        26,
			MissionsCompleted: 52,
			IsPremium:         false,
			Bio:               "Tourier attentif à la régularité des tours et au respect des repos.",
			Certifications:    []string{"CAP Boulanger"},
			CreatedAt:         createdAt,
			Experiences: []entity.Experience{
				{BakeryName: "La Mie Dorée", Role: "Tourier", Period: "2022–2024", City: "Paris"},
				{BakeryName: "Atelier Viennois", Role: "Aide tourier", Period: "2019–2022", City: "Saint-Denis"},
			},
			VerificationStatus: entity.VerificationPending,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentIdentity, URL: "/documents/id_pro7.pdf", UploadedAt: "2023-09-01", Verified: false},
				{Type: entity.DocumentDiploma, URL: "/documents/diploma_pro7.pdf", UploadedAt: "2023-09-01", Verified: false, DiplomaType: "CAP Boulanger", Year: 2019},
			},
		},
		{
			ID:                "pro8",
			FirstName:         "Mounir",
			LastName:          "Robert",
			Specialties:       []string{"Pains spéciaux", "Bio", "Farines anciennes"},
			Domains:           []string{"Pain et viennoiserie"},
			YearsExperience:   7,
			Location:          entity.ProfessionalLocation{City: "Paris", PostalCode: "75014"},
			HourlyRate:        30,
			MissionsCompleted: 61,
			IsPremium:         true,
			Bio:               "Boulanger orienté bio et terroir: farines anciennes, levain, fermentation longue au froid.",
			Certifications:    []string{"CAP Boulanger"},
			CreatedAt:         createdAt,
			Experiences: []entity.Experience{
				{BakeryName: "Graines & Levains", Role: "Boulanger", Period: "2020–2024", City: "Boulogne"},
				{BakeryName: "La Meule Bio", Role: "Boulanger", Period: "2016–2020", City: "Paris"},
			},
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentIdentity, URL: "/documents/id_pro8.pdf", UploadedAt: "2023-09-01", Verified: true},
				{Type: entity.DocumentDiploma, URL: "/documents/diploma_pro8.pdf", UploadedAt: "2023-09-01", Verified: true, DiplomaType: "CAP Boulanger", Year: 2017},
			},
		},
		{
			ID:                "pro9",
			FirstName:         "Arthur",
			LastName:          "Richard",
			Specialties:       []string{"Four à bois", "Tradition"},
			Domains:           []string{"Pain et viennoiserie"},
			YearsExperience:   11,
			Location:          entity.ProfessionalLocation{City: "Nogent-sur-Marne", PostalCode: "94130"},
			HourlyRate:        33,
			MissionsCompleted: 120,
			IsPremium:         true,
			Bio:               "Spécialiste four à bois: allumage, gestion de la braise, chargement à la pelle, coups de buée alternatifs.",
			Certifications:    []string{"CAP Boulanger"},
			CreatedAt:         createdAt,
			Experiences: []entity.Experience{
				{BakeryName: "Au Feu de Bois", Role: "Chef fournier", Period: "2021–2024", City: "Nogent"},
				{BakeryName: "Le Four des Halles", Role: "Fournier", Period: "2015–2021", City: "Paris"},
				{BakeryName: "Boulangerie des Arts", Role: "Boulanger", Period: "2010–2015", City: "Paris"},
			},
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentIdentity, URL: "/documents/id_pro9.pdf", UploadedAt: "2023-09-01", Verified: true},
				{Type: entity.DocumentDiploma, URL: "/documents/diploma_pro9.pdf", UploadedAt: "2023-09-01", Verified: true, DiplomaType: "CAP Boulanger", Year: 2013},
			},
		},
		{
			ID:                "pro10",
			FirstName:         "Sofiane",
			LastName:          "Durand",
			Specialties:       []string{"Pâtisserie fine", "Entremets", "Dressages minute"},
			Domains:           []string{"Pâtisserie"},
			YearsExperience:   9,
			Location:          entity.ProfessionalLocation{City: "Paris", PostalCode: "75006"},
			HourlyRate:        34,
			MissionsCompleted: 88,
			IsPremium:         true,
			Bio:               "Pâtissier de restaurant et boutique: dressages minute, textures contrastées et finitions haut de gamme.",
			Certifications:    []string{"CAP Pâtissier", "BTM Pâtissier"},
			CreatedAt:         createdAt,
			Experiences: []entity.Experience{
				{BakeryName: "La Table Sucrée", Role: "Chef de partie", Period: "2020–2024", City: "Paris"},
				{BakeryName: "Bistrot Étoilé", Role: "Pâtissier", Period: "2017–2020", City: "Paris"},
			},
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentIdentity, URL: "/documents/id_pro10.pdf", UploadedAt: "2023-09-01", Verified: true},
				{Type: entity.DocumentDiploma, URL: "/documents/diploma_pro10.pdf", UploadedAt: "2023-09-01", Verified: true, DiplomaType: "CAP Pâtissier", Year: 2015},
			},
		},
		{
			ID:                "pro11",
			FirstName:         "Yanis",
			LastName:          "Dubois",
			Specialties:       []string{"Baguette tradition", "Organisation fournil"},
			Domains:           []string{"Pain et viennoiserie"},
			YearsExperience:   8,
			Location:          entity.ProfessionalLocation{City: "Paris", PostalCode: "75020"},
			HourlyRate:        28,
			MissionsCompleted: 90,
			IsPremium:         false,
			Bio:               "Boulanger orienté tradition, rigoureux sur les grammages, les temps et la coloration.",
			Certifications:    []string{"CAP Boulanger"},
			CreatedAt:         createdAt,
			Experiences: []entity.Experience{
				{BakeryName: "La Fournée", Role: "Boulanger", Period: "2019–2024", City: "Paris"},
				{BakeryName: "Boulange 20e", Role: "Boulanger", Period: "2016–2019", City: "Paris"},
			},
			VerificationStatus: entity.VerificationPending,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentIdentity, URL: "/documents/id_pro11.pdf", UploadedAt: "2023-09-01", Verified: false},
				{Type: entity.DocumentDiploma, URL: "/documents/diploma_pro11.pdf", UploadedAt: "2023-09-01", Verified: false, DiplomaType: "CAP Boulanger", Year: 2016},
			},
		},
		{
			ID:                "pro12",
			FirstName:         "Clément",
			LastName:          "Morel",
			Specialties:       []string{"Viennoiserie", "Brioches", "Feuilletage"},
			Domains:           []string{"Tournier/Tourier"},
			YearsExperience:   4,
			Location:          entity.ProfessionalLocation{City: "Paris", PostalCode: "75005"},
			HourlyRate:        25,
			MissionsCompleted: 40,
			IsPremium:         false,
			Bio:               "Tourier soigneux et régulier.",
			Certifications:    []string{"CAP Boulanger"},
			CreatedAt:         createdAt,
			Experiences: []entity.Experience{
				{BakeryName: "Artisan Boulanger", Role: "Tourier", Period: "2022–2024", City: "Paris"},
				{BakeryName: "Maison Fradin", Role: "Aide tourier", Period: "2020–2022", City: "Paris"},
				{BakeryName: "La Brioche Dorée", Role: "Tourier", Period: "2019–2020", City: "Paris"},
			},
			VerificationStatus: entity.VerificationPending,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentIdentity, URL: "/documents/id_pro12.pdf", UploadedAt: "2023-09-01", Verified: false},
				{Type: entity.DocumentDiploma, URL: "/documents/diploma_pro12.pdf", UploadedAt: "2023-09-01", Verified: false, DiplomaType: "CAP Boulanger", Year: 2020},
			},
		},
		{
			ID:                "pro13",
			FirstName:         "Mehdi",
			LastName:          "Fournier",
			Specialties:       []string{"Levain", "Pains anciens"},
			Domains:           []string{"Pain et viennoiserie"},
			YearsExperience:   12,
			Location:          entity.ProfessionalLocation{City: "Paris", PostalCode: "75003"},
			HourlyRate:        31,
			MissionsCompleted: 150,
			IsPremium:         true,
			Bio:               "Boulanger senior, levain et farines anciennes, très à l’aise sur la stabilisation des process.",
			Certifications:    []string{"CAP Boulanger", "BP Boulanger"},
			CreatedAt:         createdAt,
			Experiences: []entity.Experience{
				{BakeryName: "Tradition & Levain", Role: "Chef de fournil", Period: "2020–2024", City: "Paris"},
				{BakeryName: "Le Vieux Levain", Role: "Boulanger", Period: "2015–2020", City: "Paris"},
				{BakeryName: "Au Pain d’Antan", Role: "Boulanger", Period: "2012–2015", City: "Paris"},
			},
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentIdentity, URL: "/documents/id_pro13.pdf", UploadedAt: "2023-09-01", Verified: true},
				{Type: entity.DocumentDiploma, URL: "/documents/diploma_pro13.pdf", UploadedAt: "2023-09-01", Verified: true, DiplomaType: "CAP Boulanger", Year: 2012},
			},
		},
		{
			ID:                "pro14",
			FirstName:         "Ilyes",
			LastName:          "Girard",
			Specialties:       []string{"Pains bio", "Graines", "Autolyse"},
			Domains:           []string{"Pain et viennoiserie"},
			YearsExperience:   6,
			Location:          entity.ProfessionalLocation{City: "Paris", PostalCode: "75017"},
			HourlyRate:        29,
			MissionsCompleted: 60,
			IsPremium:         false,
			Bio:               "Boulanger bio, très sensible aux matières premières et au terroir.",
			Certifications:    []string{"CAP Boulanger"},
			CreatedAt:         createdAt,
			Experiences: []entity.Experience{
				{BakeryName: "Bio & Graines", Role: "Boulanger", Period: "2021–2024", City: "Paris"},
				{BakeryName: "Le Moulin Vert", Role: "Boulanger", Period: "2018–2021", City: "Paris"},
			},
			VerificationStatus: entity.VerificationPending,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentIdentity, URL: "/documents/id_pro14.pdf", UploadedAt: "2023-09-01", Verified: false},
				{Type: entity.DocumentDiploma, URL: "/documents/diploma_pro14.pdf", UploadedAt: "2023-09-01", Verified: false, DiplomaType: "CAP Boulanger", Year: 2018},
			},
		},
		{
			ID:                "pro15",
			FirstName:         "Paul",
			LastName:          "Bonnet",
			Specialties:       []string{"Tourage", "Croissants", "Pains au chocolat"},
			Domains:           []string{"Tournier/Tourier"},
			YearsExperience:   7,
			Location:          entity.ProfessionalLocation{City: "Paris", PostalCode: "75015"},
			HourlyRate:        27,
			MissionsCompleted: 72,
			IsPremium:         false,
			Bio:               "Tourier méticuleux, constant sur les grammages et la pousse.",
			Certifications:    []string{"CAP Boulanger"},
			CreatedAt:         createdAt,
			Experiences: []entity.Experience{
				{BakeryName: "Beurre & Feuilletage", Role: "Tourier", Period: "2020–2024", City: "Paris"},
				{BakeryName: "La Viennoise", Role: "Tourier", Period: "2017–2020", City: "Paris"},
			},
			VerificationStatus: entity.VerificationPending,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentIdentity, URL: "/documents/id_pro15.pdf", UploadedAt: "2023-09-01", Verified: false},
				{Type: entity.DocumentDiploma, URL: "/documents/diploma_pro15.pdf", UploadedAt: "2023-09-01", Verified: false, DiplomaType: "CAP Boulanger", Year: 2017},
			},
		},
		{
			ID:                "pro16",
			FirstName:         "Léo",
			LastName:          "Lambert",
			Specialties:       []string{"Entremets", "Glaçage miroir", "Velours"},
			Domains:           []string{"Pâtisserie"},
			YearsExperience:   6,
			Location:          entity.ProfessionalLocation{City: "Paris", PostalCode: "75016"},
			HourlyRate:        32,
			MissionsCompleted: 66,
			IsPremium:         true,
			Bio:               "Pâtissier orienté finition haut de gamme.",
			Certifications:    []string{"CAP Pâtissier"},
			CreatedAt:         createdAt,
			Experiences: []entity.Experience{
				{BakeryName: "Pâtisserie Élégante", Role: "Pâtissier", Period: "2021–2024", City: "Paris"},
				{BakeryName: "Maison des Délices", Role: "Pâtissier", Period: "2018–2021", City: "Paris"},
			},
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentIdentity, URL: "/documents/id_pro16.pdf", UploadedAt: "2023-09-01", Verified: true},
				{Type: entity.DocumentDiploma, URL: "/documents/diploma_pro16.pdf", UploadedAt: "2023-09-01", Verified: true, DiplomaType: "CAP Pâtissier", Year: 2018},
			},
		},
		{
			ID:                "pro17",
			FirstName:         "Noah",
			LastName:          "Fontaine",
			Specialties:       []string{"Pains du monde", "Hydratations élevées"},
			Domains:           []string{"Pain et viennoiserie"},
			YearsExperience:   5,
			Location:          entity.ProfessionalLocation{City: "Paris", PostalCode: "75011"},
			HourlyRate:        27,
			MissionsCompleted: 50,
			IsPremium:         false,
			Bio:               "Boulanger ouvert sur les pains internationaux: ciabatta, focaccia, bagels, pita.",
			Certifications:    []string{"CAP Boulanger"},
			CreatedAt:         createdAt,
			Experiences: []entity.Experience{
				{BakeryName: "Four des Mondes", Role: "Boulanger", Period: "2022–2024", City: "Paris"},
				{BakeryName: "Boulangerie Roma", Role: "Boulanger", Period: "2019–2022", City: "Paris"},
			},
			VerificationStatus: entity.VerificationPending,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentIdentity, URL: "/documents/id_pro17.pdf", UploadedAt: "2023-09-01", Verified: false},
				{Type: entity.DocumentDiploma, URL: "/documents/diploma_pro17.pdf", UploadedAt: "2023-09-01", Verified: false, DiplomaType: "CAP Boulanger", Year: 2019},
			},
		},
		{
			ID:                "pro18",
			FirstName:         "Maël",
			LastName:          "Carpentier",
			Specialties:       []string{"Traiteur boulanger", "Sandwicherie", "Quiches"},
			Domains:           []string{"Traiteur boulanger"},
			YearsExperience:   6,
			Location:          entity.ProfessionalLocation{City: "Paris", PostalCode: "75116"},
			HourlyRate:        26,
			MissionsCompleted: 62,
			IsPremium:         false,
			Bio:               "Production salée: bases de quiches, appareils, pâtons pizza, mise en place sandwicherie.",
			Certifications:    []string{"CAP Boulanger"},
			CreatedAt:         createdAt,
			Experiences: []entity.Experience{
				{BakeryName: "Salé & Gourmand", Role: "Chef salé", Period: "2021–2024", City: "Paris"},
				{BakeryName: "Le Comptoir Salé", Role: "Adjoint chef salé", Period: "2018–2021", City: "Paris"},
			},
			VerificationStatus: entity.VerificationPending,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentIdentity, URL: "/documents/id_pro18.pdf", UploadedAt: "2023-09-01", Verified: false},
				{Type: entity.DocumentDiploma, URL: "/documents/diploma_pro18.pdf", UploadedAt: "2023-09-01", Verified: false, DiplomaType: "CAP Boulanger", Year: 2018},
			},
		},
		{
			ID:                "pro19",
			FirstName:         "Jules",
			LastName:          "Renaud",
			Specialties:       []string{"Sans gluten", "Process qualité"},
			Domains:           []string{"Spécialisations techniques"},
			YearsExperience:   7,
			Location:          entity.ProfessionalLocation{City: "Sceaux", PostalCode: "92330"},
			HourlyRate:        33,
			MissionsCompleted: 70,
			IsPremium:         true,
			Bio:               "Référent qualité en environnement sans gluten: écriture de procédures, formation des équipes, contrôles anti-contamination.",
			Certifications:    []string{"CAP Boulanger"},
			CreatedAt:         createdAt,
			Experiences: []entity.Experience{
				{BakeryName: "Grain Libre", Role: "Référent qualité", Period: "2020–2024", City: "Paris"},
				{BakeryName: "Sans-G", Role: "Boulanger", Period: "2017–2020", City: "Paris"},
			},
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentIdentity, URL: "/documents/id_pro19.pdf", UploadedAt: "2023-09-01", Verified: true},
				{Type: entity.DocumentDiploma, URL: "/documents/diploma_pro19.pdf", UploadedAt: "2023-09-01", Verified: true, DiplomaType: "CAP Boulanger", Year: 2017},
			},
		},
		{
			ID:                "pro20",
			FirstName:         "Amine",
			LastName:          "Bougheraba",
			Specialties:       []string{"Chef de fournil", "Plan de four", "Encadrement"},
			Domains:           []string{"Pain et viennoiserie"},
			YearsExperience:   13,
			Location:          entity.ProfessionalLocation{City: "Saint-Denis", PostalCode: "93200"},
			HourlyRate:        36,
			MissionsCompleted: 180,
			IsPremium:         true,
			Bio:               "Chef de fournil expérimenté: planification des productions, gestion du plan de four, coordination avec la boutique et encadrement des équipes.",
			Certifications:    []string{"CAP Boulanger", "BP Boulanger"},
			CreatedAt:         createdAt,
			Experiences: []entity.Experience{
				{BakeryName: "Maison Chabrier", Role: "Chef de fournil", Period: "2021–2024", City: "Paris"},
				{BakeryName: "Atelier des Saveurs", Role: "Boulanger", Period: "2017–2021", City: "Paris"},
				{BakeryName: "Maison Delacroix", Role: "Boulanger", Period: "2014–2017", City: "Paris"},
			},
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentIdentity, URL: "/documents/id_pro20.pdf", UploadedAt: "2023-09-01", Verified: true},
				{Type: entity.DocumentDiploma, URL: "/documents/diploma_pro20.pdf", UploadedAt: "2023-09-01", Verified: true, DiplomaType: "CAP Boulanger", Year: 2011},
			},
		},
	}
}

package seed

import (
	"choukette/internal/domain/entity"
)

// Bakeries returns the bakery accounts. Avatars are left empty and assigned
// by the caller with PickAvatar.
func Bakeries() []entity.Bakery {
	return []entity.Bakery{
		{
			ID:                 "bakery1",
			Name:               "Boulangerie du Moulin",
			Email:              "boulangerie@moulin.fr",
			Password:           "demo123",
			Address:            "23 Rue de Rivoli",
			City:               "Paris",
			PostalCode:         "75001",
			Description:        "Boulangerie artisanale familiale depuis 1950",
			CreatedAt:          "2020-01-15",
			Siret:              "12345678901234",
			Siren:              "123456789",
			TVANumber:          "FR12123456789",
			Phone:              "+33 1 42 33 44 55",
			ManagerName:        "Pierre Martin",
			ManagerEmail:       "pierre.martin@moulin.fr",
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery1.pdf", UploadedAt: "2020-01-10", Verified: true},
				{Type: entity.DocumentKbis, URL: "/documents/kbis_bakery1.pdf", UploadedAt: "2020-01-10", Verified: true},
				{Type: entity.DocumentIdentity, URL: "/documents/id_martin.pdf", UploadedAt: "2020-01-10", Verified: true},
			},
			Notes: "Boulangerie très professionnelle, excellente relation avec les artisans.",
		},
		{
			ID:                 "bakery2",
			Name:               "Pâtisserie Délices",
			Email:              "contact@delices.fr",
			Password:           "demo123",
			Address:            "45 Avenue des Champs-Élysées",
			City:               "Paris",
			PostalCode:         "75008",
			Description:        "Pâtisserie fine haut de gamme",
			CreatedAt:          "2018-03-20",
			Siret:              "98765432109876",
			Siren:              "987654321",
			TVANumber:          "FR98987654321",
			Phone:              "+33 1 42 55 66 77",
			ManagerName:        "Sophie Dubois",
			ManagerEmail:       "sophie.dubois@delices.fr",
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery2.pdf", UploadedAt: "2018-03-15", Verified: true},
				{Type: entity.DocumentKbis, URL: "/documents/kbis_bakery2.pdf", UploadedAt: "2018-03-15", Verified: true},
			},
			Notes: "Pâtisserie premium, très exigeante sur la qualité.",
		},
		{
			ID:                 "bakery3",
			Name:               "La Mie Dorée",
			Email:              "contact@miedoree.fr",
			Password:           "demo123",
			Address:            "12 Place Saint-Germain",
			City:               "Paris",
			PostalCode:         "75006",
			Description:        "Boulangerie de quartier",
			CreatedAt:          "2021-05-10",
			Siret:              "11122233344455",
			Siren:              "111222333",
			TVANumber:          "FR11111122233",
			Phone:              "+33 1 43 22 33 44",
			ManagerName:        "Marc Leroy",
			ManagerEmail:       "marc.leroy@miedoree.fr",
			VerificationStatus: entity.VerificationPending,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery3.pdf", UploadedAt: "2021-05-08", Verified: false},
			},
			Notes: "En attente de vérification des documents.",
		},
		{
			ID:                 "bakery4",
			Name:               "Le Pain de la Terre",
			Email:              "contact@painterre.fr",
			Password:           "demo123",
			Address:            "78 Rue de la Paix",
			City:               "Paris",
			PostalCode:         "75002",
			Description:        "Boulangerie bio et responsable",
			CreatedAt:          "2019-08-12",
			Siret:              "22233344455566",
			Siren:              "222333444",
			TVANumber:          "FR22222233344",
			Phone:              "+33 1 44 55 66 77",
			ManagerName:        "Julie Bernard",
			ManagerEmail:       "julie.bernard@painterre.fr",
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery4.pdf", UploadedAt: "2019-08-10", Verified: true},
				{Type: entity.DocumentKbis, URL: "/documents/kbis_bakery4.pdf", UploadedAt: "2019-08-10", Verified: true},
			},
			Notes: "Boulangerie engagée, très appréciée.",
		},
		{
			ID:                 "bakery5",
			Name:               "La Croûte Dorée",
			Email:              "contact@croute-doree.fr",
			Password:           "demo123",
			Address:            "15 Boulevard Haussmann",
			City:               "Paris",
			PostalCode:         "75009",
			Description:        "Boulangerie traditionnelle",
			CreatedAt:          "2020-02-20",
			Siret:              "33344455566677",
			Siren:              "333444555",
			TVANumber:          "FR33333344455",
			Phone:              "+33 1 45 66 77 88",
			ManagerName:        "Thomas Moreau",
			ManagerEmail:       "thomas.moreau@croute-doree.fr",
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery5.pdf", UploadedAt: "2020-02-18", Verified: true},
			},
			Notes: "Très active, nombreuses missions.",
		},
		{
			ID:                 "bakery6",
			Name:               "Pâtisserie Royale",
			Email:              "contact@royale.fr",
			Password:           "demo123",
			Address:            "32 Avenue des Ternes",
			City:               "Paris",
			PostalCode:         "75017",
			Description:        "Pâtisserie de luxe",
			CreatedAt:          "2017-11-05",
			Siret:              "44455566677788",
			Siren:              "444555666",
			TVANumber:          "FR44444455566",
			Phone:              "+33 1 46 77 88 99",
			ManagerName:        "Marie Lefebvre",
			ManagerEmail:       "marie.lefebvre@royale.fr",
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery6.pdf", UploadedAt: "2017-11-03", Verified: true},
				{Type: entity.DocumentKbis, URL: "/documents/kbis_bakery6.pdf", UploadedAt: "2017-11-03", Verified: true},
			},
			Notes: "Pâtisserie haut de gamme, très sélective.",
		},
		{
			ID:                 "bakery7",
			Name:               "Le Fournil Artisanal",
			Email:              "contact@fournil-art.fr",
			Password:           "demo123",
			Address:            "56 Rue de Vaugirard",
			City:               "Paris",
			PostalCode:         "75006",
			Description:        "Fournil artisanal",
			CreatedAt:          "2021-03-15",
			Siret:              "55566677788899",
			Siren:              "555666777",
			TVANumber:          "FR55555566677",
			Phone:              "+33 1 47 88 99 00",
			ManagerName:        "David Rousseau",
			ManagerEmail:       "david.rousseau@fournil-art.fr",
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery7.pdf", UploadedAt: "2021-03-13", Verified: true},
			},
			Notes: "Nouvelle boulangerie prometteuse.",
		},
		{
			ID:                 "bakery8",
			Name:               "Boulangerie du Quartier",
			Email:              "contact@bq.fr",
			Password:           "demo123",
			Address:            "89 Rue de Belleville",
			City:               "Paris",
			PostalCode:         "75020",
			Description:        "Boulangerie de quartier",
			CreatedAt:          "2018-06-22",
			Siret:              "66677788899900",
			Siren:              "666777888",
			TVANumber:          "FR66666677788",
			Phone:              "+33 1 48 99 00 11",
			ManagerName:        "Sophie Martin",
			ManagerEmail:       "sophie.martin@bq.fr",
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery8.pdf", UploadedAt: "2018-06-20", Verified: true},
			},
			Notes: "Boulangerie populaire et appréciée.",
		},
		{
			ID:                 "bakery9",
			Name:               "La Maison du Pain",
			Email:              "contact@maison-pain.fr",
			Password:           "demo123",
			Address:            "12 Rue de la République",
			City:               "Boulogne-Billancourt",
			PostalCode:         "92100",
			Description:        "Boulangerie familiale",
			CreatedAt:          "2019-04-10",
			Siret:              "77788899900011",
			Siren:              "777888999",
			TVANumber:          "FR77777788899",
			Phone:              "+33 1 49 00 11 22",
			ManagerName:        "Pierre Durand",
			ManagerEmail:       "pierre.durand@maison-pain.fr",
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery9.pdf", UploadedAt: "2019-04-08", Verified: true},
			},
			Notes: "Boulangerie familiale bien établie.",
		},
		{
			ID:                 "bakery10",
			Name:               "Pâtisserie des Rêves",
			Email:              "contact@reves.fr",
			Password:           "demo123",
			Address:            "45 Avenue Montaigne",
			City:               "Paris",
			PostalCode:         "75008",
			Description:        "Pâtisserie créative",
			CreatedAt:          "2020-09-18",
			Siret:              "88899900011122",
			Siren:              "888999000",
			TVANumber:          "FR88888899900",
			Phone:              "+33 1 50 11 22 33",
			ManagerName:        "Claire Petit",
			ManagerEmail:       "claire.petit@reves.fr",
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery10.pdf", UploadedAt: "2020-09-16", Verified: true},
			},
			Notes: "Pâtisserie innovante et créative.",
		},
		{
			ID:                 "bakery11",
			Name:               "Le Grenier à Pain",
			Email:              "contact@grenier-pain.fr",
			Password:           "demo123",
			Address:            "23 Rue de la Sorbonne",
			City:               "Paris",
			PostalCode:         "75005",
			Description:        "Boulangerie étudiante",
			CreatedAt:          "2021-01-25",
			Siret:              "99900011122233",
			Siren:              "999000111",
			TVANumber:          "FR99999900011",
			Phone:              "+33 1 51 22 33 44",
			ManagerName:        "Lucas Bernard",
			ManagerEmail:       "lucas.bernard@grenier-pain.fr",
			VerificationStatus: entity.VerificationPending,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery11.pdf", UploadedAt: "2021-01-23", Verified: false},
			},
			Notes: "En attente de validation.",
		},
		{
			ID:                 "bakery12",
			Name:               "Boulangerie Moderne",
			Email:              "contact@moderne.fr",
			Password:           "demo123",
			Address:            "67 Rue de Rivoli",
			City:               "Paris",
			PostalCode:         "75004",
			Description:        "Boulangerie moderne",
			CreatedAt:          "2018-12-08",
			Siret:              "00011122233344",
			Siren:              "000111222",
			TVANumber:          "FR00000011122",
			Phone:              "+33 1 52 33 44 55",
			ManagerName:        "Emma Dubois",
			ManagerEmail:       "emma.dubois@moderne.fr",
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery12.pdf", UploadedAt: "2018-12-06", Verified: true},
			},
			Notes: "Boulangerie moderne et dynamique.",
		},
		{
			ID:                 "bakery13",
			Name:               "La Tradition",
			Email:              "contact@tradition.fr",
			Password:           "demo123",
			Address:            "34 Rue Saint-Antoine",
			City:               "Paris",
			PostalCode:         "75004",
			Description:        "Boulangerie traditionnelle",
			CreatedAt:          "2017-05-30",
			Siret:              "11122233344455",
			Siren:              "111222333",
			TVANumber:          "FR11111122233",
			Phone:              "+33 1 53 44 55 66",
			ManagerName:        "Antoine Moreau",
			ManagerEmail:       "antoine.moreau@tradition.fr",
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery13.pdf", UploadedAt: "2017-05-28", Verified: true},
			},
			Notes: "Boulangerie traditionnelle réputée.",
		},
		{
			ID:                 "bakery14",
			Name:               "Pâtisserie Fine",
			Email:              "contact@fine.fr",
			Password:           "demo123",
			Address:            "78 Boulevard Saint-Germain",
			City:               "Paris",
			PostalCode:         "75006",
			Description:        "Pâtisserie fine",
			CreatedAt:          "2019-10-14",
			Siret:              "22233344455566",
			Siren:              "222333444",
			TVANumber:          "FR22222233344",
			Phone:              "+33 1 54 55 66 77",
			ManagerName:        "Isabelle Leroy",
			ManagerEmail:       "isabelle.leroy@fine.fr",
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery14.pdf", UploadedAt: "2019-10-12", Verified: true},
			},
			Notes: "Pâtisserie fine très réputée.",
		},
		{
			ID:                 "bakery15",
			Name:               "Le Petit Four",
			Email:              "contact@petit-four.fr",
			Password:           "demo123",
			Address:            "56 Rue de Charonne",
			City:               "Paris",
			PostalCode:         "75011",
			Description:        "Boulangerie de quartier",
			CreatedAt:          "2020-07-03",
			Siret:              "33344455566677",
			Siren:              "333444555",
			TVANumber:          "FR33333344455",
			Phone:              "+33 1 55 66 77 88",
			ManagerName:        "Jean Dupont",
			ManagerEmail:       "jean.dupont@petit-four.fr",
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery15.pdf", UploadedAt: "2020-07-01", Verified: true},
			},
			Notes: "Boulangerie chaleureuse de quartier.",
		},
		{
			ID:                 "bakery16",
			Name:               "Boulangerie Bio",
			Email:              "contact@bio-boulange.fr",
			Password:           "demo123",
			Address:            "12 Rue de la Roquette",
			City:               "Paris",
			PostalCode:         "75011",
			Description:        "Boulangerie bio",
			CreatedAt:          "2018-02-12",
			Siret:              "44455566677788",
			Siren:              "444555666",
			TVANumber:          "FR44444455566",
			Phone:              "+33 1 56 77 88 99",
			ManagerName:        "Marie Rousseau",
			ManagerEmail:       "marie.rousseau@bio-boulange.fr",
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery16.pdf", UploadedAt: "2018-02-10", Verified: true},
			},
			Notes: "Boulangerie bio engagée.",
		},
		{
			ID:                 "bakery17",
			Name:               "La Mie Croustillante",
			Email:              "contact@mie-croustillante.fr",
			Password:           "demo123",
			Address:            "89 Avenue de la République",
			City:               "Paris",
			PostalCode:         "75011",
			Description:        "Boulangerie artisanale",
			CreatedAt:          "2021-06-20",
			Siret:              "55566677788899",
			Siren:              "555666777",
			TVANumber:          "FR55555566677",
			Phone:              "+33 1 57 88 99 00",
			ManagerName:        "Thomas Martin",
			ManagerEmail:       "thomas.martin@mie-croustillante.fr",
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery17.pdf", UploadedAt: "2021-06-18", Verified: true},
			},
			Notes: "Boulangerie artisanale de qualité.",
		},
		{
			ID:                 "bakery18",
			Name:               "Pâtisserie Élégante",
			Email:              "contact@elegante.fr",
			Password:           "demo123",
			Address:            "45 Rue de Passy",
			City:               "Paris",
			PostalCode:         "75016",
			Description:        "Pâtisserie élégante",
			CreatedAt:          "2017-09-25",
			Siret:              "66677788899900",
			Siren:              "666777888",
			TVANumber:          "FR66666677788",
			Phone:              "+33 1 58 99 00 11",
			ManagerName:        "Sophie Bernard",
			ManagerEmail:       "sophie.bernard@elegante.fr",
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery18.pdf", UploadedAt: "2017-09-23", Verified: true},
			},
			Notes: "Pâtisserie élégante et raffinée.",
		},
		{
			ID:                 "bakery19",
			Name:               "Le Four à Bois",
			Email:              "contact@four-bois.fr",
			Password:           "demo123",
			Address:            "23 Rue de Turenne",
			City:               "Paris",
			PostalCode:         "75003",
			Description:        "Boulangerie au four à bois",
			CreatedAt:          "2019-11-08",
			Siret:              "77788899900011",
			Siren:              "777888999",
			TVANumber:          "FR77777788899",
			Phone:              "+33 1 59 00 11 22",
			ManagerName:        "Pierre Lefebvre",
			ManagerEmail:       "pierre.lefebvre@four-bois.fr",
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery19.pdf", UploadedAt: "2019-11-06", Verified: true},
			},
			Notes: "Spécialiste four à bois.",
		},
		{
			ID:                 "bakery20",
			Name:               "Boulangerie du Matin",
			Email:              "contact@matin.fr",
			Password:           "demo123",
			Address:            "67 Rue de la Convention",
			City:               "Paris",
			PostalCode:         "75015",
			Description:        "Boulangerie du matin",
			CreatedAt:          "2020-04-17",
			Siret:              "88899900011122",
			Siren:              "888999000",
			TVANumber:          "FR88888899900",
			Phone:              "+33 1 60 11 22 33",
			ManagerName:        "David Petit",
			ManagerEmail:       "david.petit@matin.fr",
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery20.pdf", UploadedAt: "2020-04-15", Verified: true},
			},
			Notes: "Boulangerie matinale très fréquentée.",
		},
		{
			ID:                 "bakery21",
			Name:               "La Pâte à Tartiner",
			Email:              "contact@tartiner.fr",
			Password:           "demo123",
			Address:            "34 Rue de Belleville",
			City:               "Paris",
			PostalCode:         "75020",
			Description:        "Boulangerie gourmande",
			CreatedAt:          "2018-08-22",
			Siret:              "99900011122233",
			Siren:              "999000111",
			TVANumber:          "FR99999900011",
			Phone:              "+33 1 61 22 33 44",
			ManagerName:        "Julie Moreau",
			ManagerEmail:       "julie.moreau@tartiner.fr",
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery21.pdf", UploadedAt: "2018-08-20", Verified: true},
			},
			Notes: "Boulangerie gourmande et créative.",
		},
		{
			ID:                 "bakery22",
			Name:               "Pâtisserie du Bonheur",
			Email:              "contact@bonheur.fr",
			Password:           "demo123",
			Address:            "78 Rue de Vaugirard",
			City:               "Paris",
			PostalCode:         "75006",
			Description:        "Pâtisserie du bonheur",
			CreatedAt:          "2019-12-30",
			Siret:              "00011122233344",
			Siren:              "000111222",
			TVANumber:          "FR00000011122",
			Phone:              "+33 1 62 33 44 55",
			ManagerName:        "Claire Durand",
			ManagerEmail:       "claire.durand@bonheur.fr",
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery22.pdf", UploadedAt: "2019-12-28", Verified: true},
			},
			Notes: "Pâtisserie joyeuse et accueillante.",
		},
		{
			ID:                 "bakery23",
			Name:               "Le Pain Rustique",
			Email:              "contact@rustique.fr",
			Password:           "demo123",
			Address:            "56 Boulevard Voltaire",
			City:               "Paris",
			PostalCode:         "75011",
			Description:        "Boulangerie rustique",
			CreatedAt:          "2020-10-05",
			Siret:              "11122233344455",
			Siren:              "111222333",
			TVANumber:          "FR11111122233",
			Phone:              "+33 1 63 44 55 66",
			ManagerName:        "Lucas Martin",
			ManagerEmail:       "lucas.martin@rustique.fr",
			VerificationStatus: entity.VerificationVerified,
			VerificationDocuments: []entity.VerificationDocument{
				{Type: entity.DocumentSiret, URL: "/documents/kbis_bakery23.pdf", UploadedAt: "2020-10-03", Verified: true},
			},
			Notes: "Boulangerie rustique authentique.",
		},
	}
}

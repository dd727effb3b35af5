package seed

import (
	"time"

	"choukette/internal/domain/entity"
)

// BlogSeedVersion is written next to the persisted posts. A stored list
// carrying an older version is replaced by the current seed.
const BlogSeedVersion = 1

// BlogCategories lists the categories in display order.
func BlogCategories() []entity.BlogCategoryInfo {
	return []entity.BlogCategoryInfo{
		{ID: entity.CategoryTechnique, Label: "Technique", Icon: "🔧"},
		{ID: entity.CategoryBusiness, Label: "Business", Icon: "💼"},
		{ID: entity.CategoryRecettes, Label: "Recettes", Icon: "🍞"},
		{ID: entity.CategoryTendances, Label: "Tendances", Icon: "📈"},
		{ID: entity.CategoryConseils, Label: "Conseils", Icon: "💡"},
		{ID: entity.CategoryActualites, Label: "Actualités", Icon: "📰"},
	}
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// BlogPosts returns the editorial articles.
func BlogPosts() []entity.BlogPost {
	return []entity.BlogPost{
		{
			ID:           "1",
			Title:        "Les secrets du levain naturel : maîtrisez la fermentation",
			Excerpt:      "Découvrez les techniques essentielles pour créer et entretenir un levain naturel de qualité, avec des conseils pratiques pour obtenir des pains aux saveurs authentiques.",
			Content:      "<h2>Introduction au levain naturel</h2><p>Le levain naturel est l'âme de la boulangerie artisanale. Contrairement à la levure de boulangerie, le levain est une culture vivante de micro-organismes qui transforme la farine en un produit fermenté unique.</p>",
			Author:       "Marie Dubois",
			AuthorAvatar: "https://i.pravatar.cc/150?img=12",
			PublishedAt:  mustTime("2024-01-15T10:00:00Z"),
			Category:     entity.CategoryTechnique,
			Tags:         []string{"levain", "fermentation", "pains naturels", "technique"},
			ImageURL:     BakeryImage(0),
			ReadTime:     8,
			Views:        1245,
			Featured:     true,
		},
		{
			ID:           "2",
			Title:        "Comment optimiser votre rentabilité en boulangerie artisanale",
			Excerpt:      "Stratégies concrètes pour améliorer vos marges sans compromettre la qualité : gestion des stocks, optimisation des prix, réduction du gaspillage.",
			Content:      "<h2>Les enjeux de rentabilité en boulangerie</h2><p>La boulangerie artisanale fait face à des défis économiques croissants : hausse des matières premières, concurrence des grandes surfaces, attentes des consommateurs en matière de qualité et de prix.</p>",
			Author:       "Pierre Martin",
			AuthorAvatar: "https://i.pravatar.cc/150?img=33",
			PublishedAt:  mustTime("2024-01-12T14:30:00Z"),
			Category:     entity.CategoryBusiness,
			Tags:         []string{"rentabilité", "gestion", "business", "stratégie"},
			ImageURL:     BakeryImage(1),
			ReadTime:     6,
			Views:        892,
		},
		{
			ID:           "3",
			Title:        "Recette : Le pain de campagne traditionnel parfait",
			Excerpt:      "Une recette détaillée étape par étape pour réaliser un pain de campagne aux saveurs authentiques, avec tous les secrets de pétrissage et de cuisson.",
			Content:      "<h2>Ingrédients (pour 2 pains)</h2><h2>Préparation</h2>",
			Author:       "Sophie Laurent",
			AuthorAvatar: "https://i.pravatar.cc/150?img=45",
			PublishedAt:  mustTime("2024-01-10T09:15:00Z"),
			Category:     entity.CategoryRecettes,
			Tags:         []string{"recette", "pain de campagne", "tradition", "levain"},
			ImageURL:     BakeryImage(2),
			ReadTime:     12,
			Views:        2156,
			Featured:     true,
		},
		{
			ID:           "4",
			Title:        "Les tendances 2024 : ce qui va marquer la boulangerie",
			Excerpt:      "Découvrez les nouvelles tendances qui façonnent le secteur : produits bio, farines anciennes, zéro déchet, et nouvelles attentes des consommateurs.",
			Content:      "<h2>Les grandes tendances 2024</h2><p>Le secteur de la boulangerie évolue rapidement, porté par de nouvelles attentes consommateurs et des enjeux environnementaux croissants.</p>",
			Author:       "Lucas Bernard",
			AuthorAvatar: "https://i.pravatar.cc/150?img=20",
			PublishedAt:  mustTime("2024-01-08T16:45:00Z"),
			Category:     entity.CategoryTendances,
			Tags:         []string{"tendances", "2024", "bio", "durable"},
			ImageURL:     BakeryImage(3),
			ReadTime:     5,
			Views:        678,
		},
		{
			ID:           "5",
			Title:        "10 conseils pour réussir votre première mission en intérim",
			Excerpt:      "Guide pratique pour les professionnels qui débutent dans l'intérim boulangerie : comment s'intégrer rapidement, gérer le stress, et faire bonne impression.",
			Content:      "<h2>Conseils pour réussir votre première mission</h2><p>Démarrer une mission en intérim peut être stressant, surtout si c'est votre première expérience. Voici nos conseils pour mettre toutes les chances de votre côté.</p>",
			Author:       "Camille Moreau",
			AuthorAvatar: "https://i.pravatar.cc/150?img=47",
			PublishedAt:  mustTime("2024-01-05T11:20:00Z"),
			Category:     entity.CategoryConseils,
			Tags:         []string{"intérim", "conseils", "débutant", "professionnel"},
			ImageURL:     BakeryImage(4),
			ReadTime:     7,
			Views:        1432,
		},
		{
			ID:           "6",
			Title:        "Nouvelle réglementation : ce qui change en 2024",
			Excerpt:      "Mise à jour sur les nouvelles normes sanitaires, les obligations légales, et les changements réglementaires qui impactent les boulangeries artisanales.",
			Content:      "<h2>Les changements réglementaires 2024</h2><p>Plusieurs évolutions réglementaires impactent le secteur de la boulangerie cette année. Voici ce qu'il faut retenir.</p>",
			Author:       "Thomas Durand",
			AuthorAvatar: "https://i.pravatar.cc/150?img=15",
			PublishedAt:  mustTime("2024-01-03T08:00:00Z"),
			Category:     entity.CategoryActualites,
			Tags:         []string{"réglementation", "2024", "normes", "légal"},
			ImageURL:     BakeryImage(5),
			ReadTime:     4,
			Views:        567,
		},
		{
			ID:           "7",
			Title:        "Maîtriser la température : la clé de la réussite",
			Excerpt:      "Comprendre l'impact de la température sur la fermentation, le développement du gluten, et la qualité finale de vos produits. Guide complet avec conseils pratiques.",
			Content:      "<h2>L'importance de la température</h2><p>La température est l'un des paramètres les plus critiques en boulangerie. Une mauvaise gestion peut ruiner des heures de travail.</p>",
			Author:       "Marie Dubois",
			AuthorAvatar: "https://i.pravatar.cc/150?img=12",
			PublishedAt:  mustTime("2023-12-28T10:30:00Z"),
			Category:     entity.CategoryTechnique,
			Tags:         []string{"technique", "température", "fermentation", "cuisson"},
			ImageURL:     BakeryImage(6),
			ReadTime:     6,
			Views:        934,
		},
		{
			ID:           "8",
			Title:        "Développer votre présence digitale : guide pour boulangeries",
			Excerpt:      "Stratégies pour utiliser les réseaux sociaux, créer un site web efficace, et développer votre e-réputation. Le digital au service de l'artisanat.",
			Content:      "<h2>Pourquoi être présent sur le digital ?</h2><p>Les clients recherchent les boulangeries en ligne avant de se déplacer. Une présence digitale bien gérée peut considérablement augmenter votre clientèle.</p>",
			Author:       "Pierre Martin",
			AuthorAvatar: "https://i.pravatar.cc/150?img=33",
			PublishedAt:  mustTime("2023-12-25T14:00:00Z"),
			Category:     entity.CategoryBusiness,
			Tags:         []string{"digital", "marketing", "réseaux sociaux", "e-réputation"},
			ImageURL:     BakeryImage(7),
			ReadTime:     5,
			Views:        721,
		},
		{
			ID:           "9",
			Title:        "Recette : Croissants au beurre AOP - la méthode française",
			Excerpt:      "Recette complète et détaillée pour réaliser des croissants parfaits, avec toutes les techniques de détrempe, tourrage, et cuisson.",
			Content:      "<h2>Ingrédients (pour 12 croissants)</h2><h2>Préparation</h2>",
			Author:       "Sophie Laurent",
			AuthorAvatar: "https://i.pravatar.cc/150?img=45",
			PublishedAt:  mustTime("2023-12-22T09:00:00Z"),
			Category:     entity.CategoryRecettes,
			Tags:         []string{"recette", "croissants", "viennoiseries", "beurre AOP"},
			ImageURL:     BakeryImage(8),
			ReadTime:     15,
			Views:        1890,
		},
		{
			ID:           "10",
			Title:        "Le pain sans gluten : défis et opportunités",
			Excerpt:      "Exploration du marché du sans gluten en boulangerie : techniques, ingrédients alternatifs, et opportunités commerciales pour les artisans.",
			Content:      "<h2>Le marché du sans gluten</h2><p>Le marché du sans gluten représente une opportunité croissante. De plus en plus de clients recherchent des alternatives, que ce soit pour des raisons médicales ou par choix alimentaire.</p>",
			Author:       "Lucas Bernard",
			AuthorAvatar: "https://i.pravatar.cc/150?img=20",
			PublishedAt:  mustTime("2023-12-20T13:15:00Z"),
			Category:     entity.CategoryTendances,
			Tags:         []string{"sans gluten", "tendances", "technique", "marché"},
			ImageURL:     BakeryImage(9),
			ReadTime:     6,
			Views:        456,
		},
		{
			ID:           "11",
			Title:        "Comment négocier vos tarifs en intérim boulangerie",
			Excerpt:      "Guide pratique pour les professionnels : comment valoriser votre expertise, négocier des tarifs justes, et éviter les pièges courants.",
			Content:      "<h2>Valoriser votre expertise</h2><p>Votre tarif doit refléter votre expérience, vos compétences, et la valeur que vous apportez. Ne sous-estimez pas votre travail.</p>",
			Author:       "Camille Moreau",
			AuthorAvatar: "https://i.pravatar.cc/150?img=47",
			PublishedAt:  mustTime("2023-12-18T10:45:00Z"),
			Category:     entity.CategoryConseils,
			Tags:         []string{"intérim", "tarifs", "négociation", "conseils"},
			ImageURL:     BakeryImage(10),
			ReadTime:     5,
			Views:        1123,
		},
		{
			ID:           "12",
			Title:        "Choukette lance sa nouvelle fonctionnalité : sélection directe",
			Excerpt:      "Les boulangeries peuvent désormais choisir directement leurs artisans favoris. Découvrez comment cette fonctionnalité révolutionne la mise en relation.",
			Content:      "<h2>Une nouvelle ère pour la mise en relation</h2><p>Choukette évolue pour offrir encore plus de flexibilité et de contrôle aux boulangeries partenaires.</p>",
			Author:       "Équipe Choukette",
			AuthorAvatar: "https://i.pravatar.cc/150?img=1",
			PublishedAt:  mustTime("2023-12-15T08:00:00Z"),
			Category:     entity.CategoryActualites,
			Tags:         []string{"choukette", "nouveauté", "fonctionnalité", "mise à jour"},
			ImageURL:     BakeryImage(11),
			ReadTime:     3,
			Views:        2341,
			Featured:     true,
		},
		{
			ID:           "13",
			Title:        "Les différents types de pétrissage : quelle méthode choisir ?",
			Excerpt:      "Comparaison des méthodes de pétrissage : pétrissage intensif, amélioré, autolyse. Avantages et inconvénients de chaque technique.",
			Content:      "<h2>Les méthodes de pétrissage</h2><p>Le pétrissage est une étape cruciale qui détermine la structure finale de votre pain. Chaque méthode a ses avantages.</p>",
			Author:       "Marie Dubois",
			AuthorAvatar: "https://i.pravatar.cc/150?img=12",
			PublishedAt:  mustTime("2023-12-12T11:30:00Z"),
			Category:     entity.CategoryTechnique,
			Tags:         []string{"technique", "pétrissage", "méthodes", "gluten"},
			ImageURL:     BakeryImage(12),
			ReadTime:     7,
			Views:        678,
		},
		{
			ID:           "14",
			Title:        "Créer une boulangerie éco-responsable : guide pratique",
			Excerpt:      "Stratégies concrètes pour réduire l'impact environnemental de votre boulangerie : énergie, déchets, approvisionnement durable.",
			Content:      "<h2>L'éco-responsabilité en boulangerie</h2><p>Les consommateurs sont de plus en plus sensibles à l'impact environnemental. Une boulangerie éco-responsable est aussi une boulangerie rentable.</p>",
			Author:       "Pierre Martin",
			AuthorAvatar: "https://i.pravatar.cc/150?img=33",
			PublishedAt:  mustTime("2023-12-10T15:20:00Z"),
			Category:     entity.CategoryBusiness,
			Tags:         []string{"éco-responsable", "durable", "environnement", "business"},
			ImageURL:     BakeryImage(13),
			ReadTime:     6,
			Views:        445,
		},
		{
			ID:           "15",
			Title:        "Recette : Baguette tradition française - le secret des boulangers",
			Excerpt:      "Recette complète de la baguette tradition, avec tous les secrets de fermentation, façonnage, et cuisson pour obtenir la croûte croustillante et la mie alvéolée parfaites.",
			Content:      "<h2>Ingrédients (pour 4 baguettes)</h2><h2>Préparation</h2>",
			Author:       "Sophie Laurent",
			AuthorAvatar: "https://i.pravatar.cc/150?img=45",
			PublishedAt:  mustTime("2023-12-08T09:30:00Z"),
			Category:     entity.CategoryRecettes,
			Tags:         []string{"recette", "baguette", "tradition", "français"},
			ImageURL:     BakeryImage(14),
			ReadTime:     10,
			Views:        1678,
		},
		{
			ID:           "16",
			Title:        "Les nouvelles attentes des consommateurs en 2024",
			Excerpt:      "Analyse des évolutions comportementales : transparence, qualité, local, expérience. Comment s'adapter pour rester compétitif.",
			Content:      "<h2>Les nouvelles attentes consommateurs</h2><p>Les attentes évoluent rapidement. Les boulangeries qui s'adaptent gagnent en compétitivité.</p>",
			Author:       "Lucas Bernard",
			AuthorAvatar: "https://i.pravatar.cc/150?img=20",
			PublishedAt:  mustTime("2023-12-05T14:00:00Z"),
			Category:     entity.CategoryTendances,
			Tags:         []string{"consommateurs", "tendances", "2024", "marketing"},
			ImageURL:     BakeryImage(15),
			ReadTime:     5,
			Views:        789,
		},
		{
			ID:           "17",
			Title:        "Gérer le stress en boulangerie : conseils pour les professionnels",
			Excerpt:      "Techniques et stratégies pour gérer la pression, les horaires décalés, et maintenir un équilibre vie pro / vie perso dans ce métier exigeant.",
			Content:      "<h2>Le stress en boulangerie</h2><p>Les horaires décalés, la pression de la production, les deadlines : le métier de boulanger peut être stressant. Voici comment mieux gérer.</p>",
			Author:       "Camille Moreau",
			AuthorAvatar: "https://i.pravatar.cc/150?img=47",
			PublishedAt:  mustTime("2023-12-03T10:15:00Z"),
			Category:     entity.CategoryConseils,
			Tags:         []string{"stress", "bien-être", "conseils", "santé"},
			ImageURL:     BakeryImage(16),
			ReadTime:     5,
			Views:        623,
		},
		{
			ID:           "18",
			Title:        "Choukette atteint 1000 professionnels inscrits !",
			Excerpt:      "Milestone important pour la plateforme : plus de 1000 professionnels certifiés rejoignent Choukette. Retour sur cette croissance exceptionnelle.",
			Content:      "<h2>Un cap important</h2><p>Choukette franchit une étape majeure avec plus de 1000 professionnels inscrits sur la plateforme.</p>",
			Author:       "Équipe Choukette",
			AuthorAvatar: "https://i.pravatar.cc/150?img=1",
			PublishedAt:  mustTime("2023-12-01T08:00:00Z"),
			Category:     entity.CategoryActualites,
			Tags:         []string{"choukette", "actualité", "milestone", "croissance"},
			ImageURL:     BakeryImage(17),
			ReadTime:     2,
			Views:        3124,
			Featured:     true,
		},
		{
			ID:           "19",
			Title:        "Les farines : comprendre les types et leurs usages",
			Excerpt:      "Guide complet des différents types de farines (T45, T55, T65, T80, T110, T150) : caractéristiques, usages, et conseils pour choisir la bonne farine.",
			Content:      "<h2>Comprendre les types de farines</h2><p>Le \"T\" suivi d'un nombre indique le taux de cendres (minéraux) restant après combustion. Plus le nombre est élevé, plus la farine est complète.</p>",
			Author:       "Marie Dubois",
			AuthorAvatar: "https://i.pravatar.cc/150?img=12",
			PublishedAt:  mustTime("2023-11-28T11:00:00Z"),
			Category:     entity.CategoryTechnique,
			Tags:         []string{"farine", "technique", "ingrédients", "guide"},
			ImageURL:     BakeryImage(18),
			ReadTime:     8,
			Views:        1456,
		},
		{
			ID:           "20",
			Title:        "Fidéliser vos clients : stratégies pour boulangeries",
			Excerpt:      "Techniques éprouvées pour créer du lien, développer la fidélité, et transformer vos clients occasionnels en clients réguliers.",
			Content:      "<h2>La fidélisation client</h2><p>Un client fidèle vaut 5 fois plus qu'un nouveau client. La fidélisation est un investissement rentable.</p>",
			Author:       "Pierre Martin",
			AuthorAvatar: "https://i.pravatar.cc/150?img=33",
			PublishedAt:  mustTime("2023-11-25T13:30:00Z"),
			Category:     entity.CategoryBusiness,
			Tags:         []string{"fidélisation", "clients", "marketing", "business"},
			ImageURL:     BakeryImage(19),
			ReadTime:     5,
			Views:        567,
		},
	}
}

package catalog

import "github.com/agromarket-cm/agromarket/internal/domain"

// SeedProducts returns the built-in product feed. The storefront ships with
// a fixed in-memory catalog; there is no backing store to load from.
func SeedProducts() []*domain.Product {
	return []*domain.Product{
		{
			ID:            "1",
			Name:          "Graines de Tomate Roma",
			Description:   "Graines de tomate roma de haute qualité, idéales pour la culture commerciale. Variété résistante aux maladies avec excellent rendement.",
			PriceCents:    2500,
			OriginalPrice: 3000,
			ImageURL:      "https://images.pexels.com/photos/1327838/pexels-photo-1327838.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:      "graines",
			Subcategory:   "légumes",
			Stock:         150,
			Rating:        4.5,
			ReviewCount:   23,
			Specs: map[string]string{
				"Variété":              "Roma",
				"Temps de germination": "7-14 jours",
				"Cycle de culture":     "75-85 jours",
				"Rendement":            "40-50 tonnes/hectare",
				"Résistance":           "Fusariose, Verticilliose",
			},
			Features: []string{
				"Graines certifiées",
				"Taux de germination élevé",
				"Résistante aux maladies",
				"Excellent pour la transformation",
			},
			IsNew:      true,
			IsFeatured: true,
			IsOnSale:   true,
		},
		{
			ID:          "2",
			Name:        "Engrais NPK 20-10-10",
			Description: "Engrais complet NPK 20-10-10 pour une croissance optimale des cultures. Formulation équilibrée pour tous types de sols.",
			PriceCents:  15000,
			ImageURL:    "https://images.pexels.com/photos/169523/pexels-photo-169523.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "engrais",
			Subcategory: "chimiques",
			Stock:       200,
			Rating:      4.8,
			ReviewCount: 45,
			Specs: map[string]string{
				"Azote (N)":        "20%",
				"Phosphore (P₂O₅)": "10%",
				"Potassium (K₂O)":  "10%",
				"Conditionnement":  "Sac de 50kg",
				"Solubilité":       "Totalement soluble",
			},
			Features: []string{
				"Formulation équilibrée",
				"Absorption rapide",
				"Améliore la croissance",
				"Augmente le rendement",
			},
			IsFeatured: true,
		},
		{
			ID:          "3",
			Name:        "Houe Traditionnelle",
			Description: "Houe traditionnelle camerounaise en acier forgé avec manche en bois dur. Outil indispensable pour le travail du sol.",
			PriceCents:  8500,
			ImageURL:    "https://images.pexels.com/photos/1301856/pexels-photo-1301856.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "outils",
			Subcategory: "manuels",
			Stock:       75,
			Rating:      4.3,
			ReviewCount: 18,
			Specs: map[string]string{
				"Matériau":           "Acier forgé",
				"Longueur du manche": "120cm",
				"Poids":              "1.2kg",
				"Largeur de la lame": "15cm",
				"Origine":            "Fabriqué au Cameroun",
			},
			Features: []string{
				"Acier de qualité",
				"Manche ergonomique",
				"Durable et résistant",
				"Fabrication locale",
			},
			IsNew: true,
		},
		{
			ID:          "4",
			Name:        "Graines de Maïs Hybride",
			Description: "Graines de maïs hybride à haut rendement, adaptées au climat camerounais. Résistance aux parasites et aux maladies.",
			PriceCents:  12000,
			ImageURL:    "https://images.pexels.com/photos/547263/pexels-photo-547263.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "graines",
			Subcategory: "céréales",
			Stock:       100,
			Rating:      4.7,
			ReviewCount: 35,
			Specs: map[string]string{
				"Variété":         "Hybride F1",
				"Cycle":           "90-100 jours",
				"Rendement":       "6-8 tonnes/hectare",
				"Résistance":      "Striure, Rouille",
				"Conditionnement": "Sac de 25kg",
			},
			Features: []string{
				"Variété hybride",
				"Haut rendement",
				"Résistant aux maladies",
				"Adapté au climat local",
			},
			IsFeatured: true,
		},
		{
			ID:          "5",
			Name:        "Système d'Irrigation Goutte à Goutte",
			Description: "Kit complet d'irrigation goutte à goutte pour 1000m². Économise l'eau et améliore la productivité.",
			PriceCents:  45000,
			ImageURL:    "https://images.pexels.com/photos/1301856/pexels-photo-1301856.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "irrigation",
			Subcategory: "goutte-a-goutte",
			Stock:       25,
			Rating:      4.9,
			ReviewCount: 12,
			Specs: map[string]string{
				"Surface couverte": "1000m²",
				"Débit":            "2-4 L/h par goutteur",
				"Pression":         "0.5-3 bars",
				"Matériau":         "Polyéthylène PE",
				"Garantie":         "2 ans",
			},
			Features: []string{
				"Économie d'eau 60%",
				"Installation facile",
				"Matériaux durables",
				"Maintenance réduite",
			},
			IsNew:      true,
			IsFeatured: true,
		},
		{
			ID:          "6",
			Name:        "Insecticide Bio Neem",
			Description: "Insecticide biologique à base d'huile de neem. Traitement naturel contre les parasites des cultures.",
			PriceCents:  6500,
			ImageURL:    "https://images.pexels.com/photos/169523/pexels-photo-169523.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "engrais",
			Subcategory: "biologiques",
			Stock:       80,
			Rating:      4.4,
			ReviewCount: 28,
			Specs: map[string]string{
				"Principe actif":      "Huile de neem 2%",
				"Dosage":              "20ml/L d'eau",
				"Conditionnement":     "Bidon de 1L",
				"Délai avant récolte": "3 jours",
				"Certification":       "Agriculture biologique",
			},
			Features: []string{
				"100% naturel",
				"Sans résidus toxiques",
				"Respectueux de l'environnement",
				"Efficace contre 200+ parasites",
			},
		},
		{
			ID:          "7",
			Name:        "Pulvérisateur à Dos 16L",
			Description: "Pulvérisateur à dos professionnel de 16 litres avec lance télescopique. Idéal pour les traitements phytosanitaires.",
			PriceCents:  18500,
			ImageURL:    "https://images.pexels.com/photos/1301856/pexels-photo-1301856.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "outils",
			Subcategory: "pulverisation",
			Stock:       35,
			Rating:      4.2,
			ReviewCount: 14,
			Specs: map[string]string{
				"Capacité": "16 litres",
				"Pression": "0-4 bars",
				"Lance":    "Télescopique 50-85cm",
				"Matériau": "Polyéthylène renforcé",
				"Poids":    "2.8kg",
			},
			Features: []string{
				"Réservoir résistant",
				"Pompe haute pression",
				"Lance réglable",
				"Bretelles confortables",
			},
		},
		{
			ID:          "8",
			Name:        "Compost Organique Premium",
			Description: "Compost organique 100% naturel, enrichi en nutriments. Améliore la structure du sol et la fertilité.",
			PriceCents:  4500,
			ImageURL:    "https://images.pexels.com/photos/169523/pexels-photo-169523.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "engrais",
			Subcategory: "organiques",
			Stock:       120,
			Rating:      4.6,
			ReviewCount: 31,
			Specs: map[string]string{
				"Matière organique": "> 30%",
				"pH":                "6.5-7.5",
				"Humidité":          "< 35%",
				"Conditionnement":   "Sac de 40kg",
				"Certification":     "Agriculture biologique",
			},
			Features: []string{
				"Améliore la structure du sol",
				"Rétention d'eau",
				"Libération lente",
				"Respectueux de l'environnement",
			},
			IsFeatured: true,
		},
	}
}

// SeedCategories returns the built-in category tree.
func SeedCategories() []*domain.Category {
	return []*domain.Category{
		{
			ID:            "1",
			Name:          "Graines et Semences",
			Slug:          "graines",
			Description:   "Graines certifiées pour légumes, fruits et céréales",
			ImageURL:      "https://images.pexels.com/photos/1327838/pexels-photo-1327838.jpeg?auto=compress&cs=tinysrgb&w=500",
			Subcategories: []string{"légumes", "fruits", "céréales", "légumineuses"},
		},
		{
			ID:            "2",
			Name:          "Engrais et Fertilisants",
			Slug:          "engrais",
			Description:   "Engrais organiques et chimiques pour tous types de cultures",
			ImageURL:      "https://images.pexels.com/photos/169523/pexels-photo-169523.jpeg?auto=compress&cs=tinysrgb&w=500",
			Subcategories: []string{"chimiques", "organiques", "biologiques", "micronutriments"},
		},
		{
			ID:            "3",
			Name:          "Outils Agricoles",
			Slug:          "outils",
			Description:   "Outils manuels et mécaniques pour l'agriculture",
			ImageURL:      "https://images.pexels.com/photos/1301856/pexels-photo-1301856.jpeg?auto=compress&cs=tinysrgb&w=500",
			Subcategories: []string{"manuels", "mécaniques", "pulverisation", "récolte"},
		},
		{
			ID:            "4",
			Name:          "Système d'Irrigation",
			Slug:          "irrigation",
			Description:   "Solutions d'irrigation moderne pour optimiser l'eau",
			ImageURL:      "https://images.pexels.com/photos/1301856/pexels-photo-1301856.jpeg?auto=compress&cs=tinysrgb&w=500",
			Subcategories: []string{"goutte-a-goutte", "aspersion", "pompes", "accessoires"},
		},
		{
			ID:            "5",
			Name:          "Produits Frais",
			Slug:          "frais",
			Description:   "Légumes et fruits frais directement du producteur",
			ImageURL:      "https://images.pexels.com/photos/1327838/pexels-photo-1327838.jpeg?auto=compress&cs=tinysrgb&w=500",
			Subcategories: []string{"légumes", "fruits", "tubercules", "épices"},
		},
		{
			ID:            "6",
			Name:          "Préparation du Sol",
			Slug:          "sol",
			Description:   "Amendements et produits pour préparer le sol",
			ImageURL:      "https://images.pexels.com/photos/169523/pexels-photo-169523.jpeg?auto=compress&cs=tinysrgb&w=500",
			Subcategories: []string{"amendements", "substrats", "paillis", "pH"},
		},
	}
}

package domain

// defaultCatalog is the built-in seed list: the historical AEROTOOL
// range (towbars and hydraulic rollers). It backs ResetToDefaults and
// the load fallback when the durable medium is empty or unreadable.
// It is a compile-time constant in spirit; DefaultCatalog always hands
// out deep copies.
var defaultCatalog = []Product{
	{
		ID:          "BR-H160",
		Slug:        "barre-de-remorquage-h160",
		Name:        "BARRE DE REMORQUAGE H160",
		Category:    CategoryTowing,
		Description: "Solution de tractage certifiée pour Airbus Helicopters H160. Conception ergonomique et sécurisée pour opérations sur piste et hangar.",
		Features: []string{
			"Système de verrouillage rapide double sécurité",
			"Amortisseur de chocs intégré",
			"Roues pivotantes haute résistance",
			"Fusible de cisaillement calibré",
		},
		Specs: map[string]string{
			"Compatibilité":  "Airbus H160",
			"Poids":          "45 kg",
			"Longueur":       "4.2 m",
			"Certifications": "CE, EN 12312",
		},
		Image:          "/images/products/towbar-h160.jpg",
		Gallery:        []string{},
		PriceDisplay:   "SUR DEVIS",
		PriceRange:     "medium",
		Compatibility:  []string{"H160"},
		Usage:          []string{"civil"},
		Material:       "steel",
		InStock:        true,
		Certifications: []string{"CE", "EN 12312-1"},
		Applications:   []string{"Tractage sur piste et taxiway", "Manœuvre en hangar de maintenance"},
		LeadTime:       "4 à 8 semaines",
		MinOrder:       1,
		Warranty:       "24 mois",
	},
	{
		ID:          "BR-H175",
		Slug:        "barre-de-remorquage-h175",
		Name:        "BARRE DE REMORQUAGE H175",
		Category:    CategoryTowing,
		Description: "Barre de manœuvre lourde pour H175. Structure renforcée pour opérations offshore et SAR.",
		Features: []string{
			"Tube principal en alliage aéronautique",
			"Pompe hydraulique manuelle de levage",
			"Indicateur de verrouillage visuel",
			"Peinture résistante Skydrol",
		},
		Specs: map[string]string{
			"Compatibilité": "Airbus H175",
			"Capacité":      "8 tonnes",
			"Type":          "Hydraulique",
			"Norme":         "EN 1915",
		},
		Image:          "/images/products/towbar-h175.jpg",
		Gallery:        []string{},
		PriceDisplay:   "SUR DEVIS",
		PriceRange:     "high",
		Compatibility:  []string{"H175"},
		Usage:          []string{"civil", "offshore", "sar"},
		Material:       "aluminium",
		InStock:        true,
		Certifications: []string{"CE", "EN 1915-1"},
		Applications:   []string{"Opérations hélistation offshore", "Recherche et sauvetage (SAR)"},
		LeadTime:       "6 à 10 semaines",
		MinOrder:       1,
		Warranty:       "24 mois",
	},
	{
		ID:          "BR-NH90-01",
		Slug:        "barre-de-remorquage-nh90",
		Name:        "BARRE DE REMORQUAGE NH90",
		Category:    CategoryTowing,
		Description: "Équipement militaire pour NH90 (TTH/NFH). Conçu pour les environnements sévères et opérations embarquées.",
		Features: []string{
			"Repliable pour transport aisé",
			"Traitement anti-corrosion marine",
			"Anneau de remorquage OTAN",
			"Maintenance simplifiée sans outils",
		},
		Specs: map[string]string{
			"Compatibilité":     "NH90",
			"Classe":            "Militaire",
			"Matériau":          "Acier HR / Alu 7075",
			"NATO Stock Number": "Disponible",
		},
		Image:          "/images/products/towbar-nh90.jpg",
		Gallery:        []string{},
		PriceDisplay:   "SUR DEVIS",
		PriceRange:     "high",
		Compatibility:  []string{"NH90"},
		Usage:          []string{"military", "naval"},
		Material:       "steel",
		InStock:        true,
		Certifications: []string{"STANAG compatible", "AQAP 2110"},
		Applications:   []string{"Tractage sur pont d'envol (frégate, BPC)", "Transport déployable — repliable sans outillage"},
		LeadTime:       "8 à 12 semaines",
		MinOrder:       1,
		Warranty:       "24 mois",
	},
	{
		ID:          "BR-B332",
		Slug:        "barre-super-puma-cougar",
		Name:        "BARRE SUPER PUMA / COUGAR",
		Category:    CategoryTowing,
		Description: "La référence pour la famille Super Puma (AS332, EC225, H215, H225). Robustesse éprouvée depuis 30 ans.",
		Features: []string{
			"Système universel famille Puma",
			"Roues larges pour terrain sommaire",
			"Protection tête d'attelage",
			"Levier d'assistance au levage",
		},
		Specs: map[string]string{
			"Compatibilité": "AS332, EC225, H215",
			"Charge Max":    "11 tonnes",
			"Longueur":      "5.5 m",
			"Finition":      "Jaune Aéro",
		},
		Image:          "/images/products/towbar-puma.jpg",
		Gallery:        []string{},
		PriceDisplay:   "SUR DEVIS",
		PriceRange:     "high",
		Compatibility:  []string{"AS332", "AS532", "H215", "H225", "EC725"},
		Usage:          []string{"civil", "military", "offshore"},
		Material:       "steel",
		InStock:        true,
		Certifications: []string{"CE", "EN 12312-1"},
		Applications:   []string{"Tractage sur piste et taxiway", "Opérations hélistation offshore"},
		LeadTime:       "6 à 10 semaines",
		MinOrder:       1,
		Warranty:       "24 mois",
	},
	{
		ID:          "BR-BHHL-01",
		Slug:        "barre-de-remorquage-gazelle",
		Name:        "BARRE DE REMORQUAGE GAZELLE",
		Category:    CategoryTowing,
		Description: "Barre légère et maniable pour hélicoptère Gazelle. Idéale pour les espaces exigus.",
		Features: []string{
			"Ultra-légère (structure alu)",
			"Mise en place par un seul opérateur",
			"Verrouillage mécanique simple",
			"Poignées ergonomiques",
		},
		Specs: map[string]string{
			"Compatibilité": "SA341/342 Gazelle",
			"Poids":         "25 kg",
			"Type":          "Mécanique",
			"Transport":     "Démontable",
		},
		Image:          "/images/products/towbar-gazelle.jpg",
		Gallery:        []string{},
		PriceDisplay:   "SUR DEVIS",
		PriceRange:     "low",
		Compatibility:  []string{"Gazelle"},
		Usage:          []string{"civil", "military"},
		Material:       "aluminium",
		InStock:        true,
		Certifications: []string{"CE"},
		Applications:   []string{"Manœuvre en hangar de maintenance", "Repositionnement en espace restreint"},
		LeadTime:       "4 à 6 semaines",
		MinOrder:       1,
		Warranty:       "24 mois",
	},
	{
		ID:          "RL-R125",
		Slug:        "rollers-hydrauliques-ecureuil",
		Name:        "ROLLERS HYDRAULIQUES ÉCUREUIL",
		Category:    CategoryHandling,
		Description: "Système de levage et déplacement pour famille Écureuil (H125, AS350, AS355).",
		Features: []string{
			"Levage hydraulique manuel ou électrique",
			"Frein de parc positif",
			"Garde au sol réglable",
			"Adaptation rapide sur patins",
		},
		Specs: map[string]string{
			"Compatibilité": "H125 / AS350",
			"Capacité":      "3 tonnes / paire",
			"Levée":         "150 mm",
			"Roues":         "Bandage Polyuréthane",
		},
		Image:          "/images/products/roller-h125.jpg",
		Gallery:        []string{},
		PriceDisplay:   "SUR DEVIS",
		PriceRange:     "medium",
		Compatibility:  []string{"H125"},
		Usage:          []string{"civil"},
		Material:       "steel",
		InStock:        true,
		Certifications: []string{"CE", "EN 1915-1"},
		Applications:   []string{"Mise sur roues pour maintenance hangar", "Déplacement sur aire de stationnement"},
		LeadTime:       "4 à 8 semaines",
		MinOrder:       1,
		Warranty:       "24 mois",
	},
	{
		ID:          "RL-R130-02",
		Slug:        "rollers-hydrauliques-h130",
		Name:        "ROLLERS HYDRAULIQUES H130",
		Category:    CategoryHandling,
		Description: "Roues de manutention spécifiques pour EC130 / H130. Stabilité accrue pour patins larges.",
		Features: []string{
			"Double vérin de levage",
			"Barre de liaison sécurisée",
			"Pompe à double vitesse",
			"Protection anti-dérapante",
		},
		Specs: map[string]string{
			"Compatibilité": "EC130 / H130",
			"Charge":        "3.5 tonnes",
			"Sécurité":      "Clapet anti-retour",
			"Finition":      "Zingué / Peint",
		},
		Image:          "/images/products/roller-h130.jpg",
		Gallery:        []string{},
		PriceDisplay:   "SUR DEVIS",
		PriceRange:     "medium",
		Compatibility:  []string{"H130"},
		Usage:          []string{"civil"},
		Material:       "steel",
		InStock:        true,
		Certifications: []string{"CE"},
		Applications:   []string{"Mise sur roues pour maintenance hangar"},
		LeadTime:       "4 à 8 semaines",
		MinOrder:       1,
		Warranty:       "24 mois",
	},
	{
		ID:          "RL-GAZELLE",
		Slug:        "rollers-gazelle",
		Name:        "ROLLERS GAZELLE",
		Category:    CategoryHandling,
		Description: "Dispositif de mise sur roues pour SA341/342. Indispensable pour la maintenance en hangar.",
		Features: []string{
			"Système compact",
			"Levage mécanique par vis",
			"Roues jumelées",
			"Attache rapide sur tubes patins",
		},
		Specs: map[string]string{
			"Compatibilité": "Gazelle",
			"Poids":         "15 kg / unité",
			"Manœuvre":      "Manivelle",
			"Kit":           "Paire + Timon",
		},
		Image:          "/images/products/roller-gazelle.jpg",
		Gallery:        []string{},
		PriceDisplay:   "SUR DEVIS",
		PriceRange:     "low",
		Compatibility:  []string{"Gazelle"},
		Usage:          []string{"civil", "military"},
		Material:       "steel",
		InStock:        true,
		Certifications: []string{"CE"},
		Applications:   []string{"Mise sur roues pour maintenance hangar", "Repositionnement en espace restreint"},
		LeadTime:       "4 à 6 semaines",
		MinOrder:       1,
		Warranty:       "24 mois",
	},
}

// DefaultCatalog returns a fresh deep copy of the built-in seed list.
func DefaultCatalog() []Product {
	return CloneCatalog(defaultCatalog)
}

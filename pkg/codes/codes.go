// Package codes provides the static dictionaries that translate the
// integer codes of the BAAC tables into human-readable French labels.
//
// Each dictionary is a finite enumeration keyed by the raw column name of
// the source tables. Negative codes are sentinels used by the source data
// for "not specified" or "no object". A lookup for an unmapped column or
// code resolves to NotSpecified; it never fails.
package codes

// NotSpecified is the sentinel label used for any code absent from its
// dictionary and for missing values.
const NotSpecified = "Non renseigné"

// columns lists the mapped columns in a stable order, used when the same
// enrichment must be applied to every mapped column of a table.
var columns = []string{
	"lum", "atm", "col", "agg", "int", "catr", "circ", "surf", "plan",
	"prof", "catv", "obs", "choc", "manv", "catu", "grav", "sexe",
	"trajet", "secu1", "locp", "actp", "etatp", "senc", "motor",
}

var mappings = map[string]map[int]string{
	"lum": {
		1: "Plein jour",
		2: "Crépuscule ou aube",
		3: "Nuit sans éclairage public",
		4: "Nuit avec éclairage public non allumé",
		5: "Nuit avec éclairage public allumé",
	},
	"atm": {
		-1: "Non renseigné",
		1:  "Normale",
		2:  "Pluie légère",
		3:  "Pluie forte",
		4:  "Neige - grêle",
		5:  "Brouillard - fumée",
		6:  "Vent fort - tempête",
		7:  "Temps éblouissant",
		8:  "Temps couvert",
		9:  "Autre",
	},
	"col": {
		-1: "Non renseigné",
		1:  "Deux véhicules - frontale",
		2:  "Deux véhicules - par l'arrière",
		3:  "Deux véhicules - par le côté",
		4:  "Trois véhicules et plus - en chaîne",
		5:  "Trois véhicules et plus - collisions multiples",
		6:  "Autre collision",
		7:  "Sans collision",
	},
	"agg": {
		1: "Hors agglomération",
		2: "En agglomération",
	},
	"int": {
		-1: "Non renseigné",
		1:  "Hors intersection",
		2:  "Intersection en X",
		3:  "Intersection en T",
		4:  "Intersection en Y",
		5:  "Intersection à plus de 4 branches",
		6:  "Giratoire",
		7:  "Place",
		8:  "Passage à niveau",
		9:  "Autre intersection",
	},
	"catr": {
		1: "Autoroute",
		2: "Route nationale",
		3: "Route départementale",
		4: "Voie communale",
		5: "Hors réseau public",
		6: "Parc de stationnement ouvert à la circulation publique",
		9: "Autre",
	},
	"circ": {
		-1: "Non renseigné",
		1:  "À sens unique",
		2:  "Bidirectionnelle",
		3:  "À chaussées séparées",
		4:  "Avec voies d'affectation variable",
	},
	"surf": {
		-1: "Non renseigné",
		1:  "Normale",
		2:  "Mouillée",
		3:  "Flaques",
		4:  "Inondée",
		5:  "Enneigée",
		6:  "Boue",
		7:  "Verglacée",
		8:  "Corps gras - huile",
		9:  "Autre",
	},
	"plan": {
		-1: "Non renseigné",
		1:  "Partie rectiligne",
		2:  "En courbe à gauche",
		3:  "En courbe à droite",
		4:  "En S",
	},
	"prof": {
		-1: "Non renseigné",
		1:  "Plat",
		2:  "Pente",
		3:  "Sommet de côte",
		4:  "Bas de côte",
	},
	"catv": {
		0:  "Indéterminable",
		1:  "Bicyclette",
		2:  "Cyclomoteur <50cm3",
		3:  "Voiturette (Quadricycle à moteur carrossé)",
		4:  "Scooter immatriculé",
		5:  "Motocyclette",
		6:  "Side-car",
		7:  "VL seul",
		8:  "VL + caravane",
		9:  "VL + remorque",
		10: "VU seul (1,5T <= PTAC <= 3,5T)",
		11: "VU (10) + caravane",
		12: "VU (10) + remorque",
		13: "PL seul (3,5T <PTCA <= 7,5T)",
		14: "PL seul (> 7,5T)",
		15: "PL (13) + remorque",
		16: "PL (14) + remorque",
		17: "PL > 7,5T + semi-remorque",
		18: "Transport en commun",
		19: "Tramway",
		20: "Tracteur agricole",
		21: "Véhicule ou engin spécial",
		30: "Scooter < 50 cm3",
		31: "Motocyclette > 50 cm3 et <= 125 cm3",
		32: "Scooter > 50 cm3 et <= 125 cm3",
		33: "Motocyclette > 125 cm3",
		34: "Scooter > 125 cm3",
		35: "Quad léger <= 50 cm3 (Quadricycle à moteur non carrossé)",
		36: "Quad lourd > 50 cm3 (Quadricycle à moteur non carrossé)",
		37: "Autobus",
		38: "Autocar",
		39: "Train",
		40: "Tramway",
		41: "Cyclomobilette légère",
		42: "3RL <= 50 cm3",
		43: "3RL > 50 cm3 <= 125 cm3",
		50: "EDP à moteur",
		60: "EDP sans moteur",
		80: "VAE",
		99: "Autre véhicule",
	},
	"obs": {
		-1: "Non renseigné",
		0:  "Sans obstacle",
		1:  "Véhicule en stationnement",
		2:  "Arbre",
		3:  "Glissière métallique",
		4:  "Glissière béton",
		5:  "Autre glissière",
		6:  "Bâtiment, mur, pile de pont",
		7:  "Support de signalisation verticale ou poste d'appel d'urgence",
		8:  "Poteau",
		9:  "Mobilier urbain",
		10: "Parapet",
		11: "Îlot, refuge, borne haute",
		12: "Bordure de trottoir",
		13: "Fossé, talus, paroi rocheuse",
		14: "Autre obstacle fixe sur chaussée",
		15: "Autre obstacle fixe sur trottoir ou accotement",
		16: "Sortie de chaussée sans obstacle",
		17: "Buse - tête d'aqueduc",
	},
	"choc": {
		-1: "Non renseigné",
		0:  "Aucun",
		1:  "Avant",
		2:  "Avant droit",
		3:  "Avant gauche",
		4:  "Arrière",
		5:  "Arrière droit",
		6:  "Arrière gauche",
		7:  "Côté droit",
		8:  "Côté gauche",
		9:  "Chocs multiples (tonneaux)",
	},
	"manv": {
		-1: "Non renseigné",
		0:  "Sans changement de direction",
		1:  "Même sens, même file",
		2:  "Entre 2 files",
		3:  "En marche arrière",
		4:  "À contresens",
		5:  "En franchissant le terre-plein central",
		6:  "En changeant de file à gauche",
		7:  "En changeant de file à droite",
		8:  "En déportant à gauche",
		9:  "En déportant à droite",
		10: "En tournant à gauche",
		11: "En tournant à droite",
		12: "En faisant demi-tour sur la chaussée",
		13: "En sortant du stationnement",
		14: "En entrant en stationnement",
		15: "En s'insérant",
		16: "En traversant la chaussée",
		17: "Manœuvre de stationnement",
		18: "Manœuvre d'évitement",
		19: "Ouverture de porte",
		20: "Arrêté (hors stationnement)",
		21: "En stationnement (avec occupants)",
		22: "Circulant sur trottoir",
		23: "Autres manœuvres",
	},
	"catu": {
		1: "Conducteur",
		2: "Passager",
		3: "Piéton",
		4: "Piéton en roller ou en trottinette",
	},
	"grav": {
		1: "Indemne",
		2: "Tué",
		3: "Blessé hospitalisé",
		4: "Blessé léger",
	},
	"sexe": {
		-1: "Non renseigné",
		1:  "Masculin",
		2:  "Féminin",
	},
	"trajet": {
		-1: "Non renseigné",
		0:  "Non renseigné",
		1:  "Domicile - travail",
		2:  "Domicile - école",
		3:  "Courses - achats",
		4:  "Utilisation professionnelle",
		5:  "Promenade - loisirs",
		9:  "Autre",
	},
	"secu1": {
		-1: "Non renseigné",
		0:  "Aucun équipement",
		1:  "Ceinture",
		2:  "Casque",
		3:  "Dispositif enfants",
		4:  "Gilet réfléchissant",
		5:  "Airbag (2RM/3RM)",
		6:  "Gants (2RM/3RM)",
		7:  "Gants + Airbag (2RM/3RM)",
		8:  "Non déterminable",
		9:  "Autre",
	},
	"locp": {
		-1: "Non renseigné",
		0:  "Sans objet ou non renseigné",
		1:  "Sur chaussée",
		2:  "Sur bande d'arrêt d'urgence",
		3:  "Sur accotement",
		4:  "Sur trottoir",
		5:  "Sur piste cyclable",
		6:  "Sur autre voie",
		8:  "Autre",
	},
	"actp": {
		-1: "Non renseigné",
		0:  "Non renseigné ou sans objet",
		1:  "Sens marche du piéton",
		2:  "Sens inverse de marche du piéton",
		3:  "Traversant",
		4:  "Masqué",
		5:  "Jouant - courant",
		6:  "Avec animal",
		9:  "Autre",
	},
	"etatp": {
		-1: "Non renseigné",
		0:  "Sans objet",
		1:  "Seul",
		2:  "Accompagné",
		3:  "En groupe",
	},
	"senc": {
		-1: "Non renseigné",
		1:  "Sens croissant",
		2:  "Sens décroissant",
	},
	"motor": {
		-1: "Non renseigné",
		1:  "Avant collision",
		2:  "Après collision",
	},
}

// Label returns the label associated with a code of the given column.
// Unmapped columns and codes resolve to NotSpecified.
func Label(column string, code int) string {
	m, ok := mappings[column]
	if !ok {
		return NotSpecified
	}
	label, ok := m[code]
	if !ok {
		return NotSpecified
	}
	return label
}

// Has reports whether a dictionary exists for the column.
func Has(column string) bool {
	_, ok := mappings[column]
	return ok
}

// Columns returns the mapped column names in a stable order.
func Columns() []string {
	res := make([]string, len(columns))
	copy(res, columns)
	return res
}

package inventory

import "strings"

// Colonnes obligatoires de l'inventaire principal
const (
	BarcodeColumn   = "BARCODE"
	FramecodeColumn = "FRAME NO."
	TimestampColumn = "Timestamp"
)

// Format d'horodatage des lignes
const TimestampLayout = "2006-01-02 15:04:05"

// CleanBarcode normalise un identifiant avant toute comparaison :
// espaces de bord, espaces insécables et espaces de largeur nulle retirés,
// puis troncature de l'artefact flottant ".0" laissé par les cellules
// numériques des tableurs (la partie décimale doit valoir exactement "0").
func CleanBarcode(val string) string {
	s := strings.TrimSpace(val)
	s = strings.ReplaceAll(s, "\u200b", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	if intPart, decPart, found := strings.Cut(s, "."); found && decPart == "0" {
		s = intPart
	}
	return s
}

// cleanedSet retourne l'ensemble des valeurs normalisées d'une colonne
func cleanedSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[CleanBarcode(v)] = true
	}
	return set
}

package inventory

import (
	"time"

	"optistock_back_end/internal/store"
)

// Valeurs de repli par colonne quand l'inventaire ne fournit encore aucune
// donnée. Les clés suivent les en-têtes historiques du classeur.
func fallbackDefault(header string) string {
	switch header {
	case "MANUFACT":
		return "Ray-Ban"
	case "SUPPLIER":
		return "Default Supplier"
	case "FRAMETYPE":
		return "Full Rim"
	case "RRP":
		return "120.00"
	case "EXCOSTPRICE":
		return "60.00"
	case "COSTPRICE":
		return "70.00"
	case "TAXPC":
		return "12"
	case "AVAILFROM":
		return time.Now().Format("2006-01-02")
	case "FRSTATUS":
		return "Active"
	default:
		return ""
	}
}

// SmartDefault propose la valeur de pré-remplissage d'un champ du
// formulaire : dernière valeur non vide saisie pour la colonne, sinon la
// valeur la plus fréquente, sinon la constante de repli du domaine.
func SmartDefault(t *store.Table, header string) string {
	if t.HasColumn(header) {
		values := t.Column(header)

		for i := len(values) - 1; i >= 0; i-- {
			if values[i] != "" {
				return values[i]
			}
		}
	}

	// La récence l'emporte toujours dès qu'une valeur non vide existe ; le
	// mode ne tranche donc que si la règle de récence ci-dessus se resserre.
	if mode := columnMode(t, header); mode != "" {
		return mode
	}

	return fallbackDefault(header)
}

// columnMode retourne la valeur non vide la plus fréquente d'une colonne.
// Les égalités se départagent par ordre lexicographique.
func columnMode(t *store.Table, header string) string {
	if !t.HasColumn(header) {
		return ""
	}

	counts := map[string]int{}
	for _, v := range t.Column(header) {
		if v != "" {
			counts[v]++
		}
	}

	best := ""
	bestCount := 0
	for v, n := range counts {
		if n > bestCount || (n == bestCount && (best == "" || v < best)) {
			best = v
			bestCount = n
		}
	}
	return best
}

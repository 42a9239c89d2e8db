package inventory

import (
	"sort"
	"strings"

	"optistock_back_end/internal/store"
)

// StockCountReport : résultat d'un rapprochement entre l'inventaire et un
// comptage physique. Les trois ensembles sont disjoints ; rien n'est
// persisté, le rapport vaut pour un seul upload.
type StockCountReport struct {
	Matched    []store.Row `json:"matched"`
	Missing    []store.Row `json:"missing"`
	Unexpected []string    `json:"unexpected"`

	MatchedCount    int `json:"matched_count"`
	MissingCount    int `json:"missing_count"`
	UnexpectedCount int `json:"unexpected_count"`
}

// Fragments de nom de colonne candidats pour porter des codes-barres
var barcodeColumnHints = []string{"barcode", "ean", "upc", "code"}

// BarcodeColumnCandidates pré-filtre les colonnes d'un fichier de comptage
// susceptibles de contenir les codes scannés. Sans candidat évident, toutes
// les colonnes sont proposées.
func BarcodeColumnCandidates(columns []string) []string {
	var candidates []string
	for _, col := range columns {
		lower := strings.ToLower(col)
		for _, hint := range barcodeColumnHints {
			if strings.Contains(lower, hint) {
				candidates = append(candidates, col)
				break
			}
		}
	}
	if len(candidates) == 0 {
		return columns
	}
	return candidates
}

// Reconcile classe chaque produit de l'inventaire et chaque code scanné :
// matched = inventaire ∩ scannés, missing = inventaire − scannés,
// unexpected = scannés − inventaire. Toutes les comparaisons portent sur les
// valeurs normalisées.
func Reconcile(inv *store.Table, scanned *store.Table, column string) *StockCountReport {
	scannedSet := cleanedSet(scanned.Column(column))
	inventorySet := cleanedSet(inv.Column(BarcodeColumn))

	report := &StockCountReport{
		Matched:    []store.Row{},
		Missing:    []store.Row{},
		Unexpected: []string{},
	}

	for _, row := range inv.Rows {
		if scannedSet[CleanBarcode(row[BarcodeColumn])] {
			report.Matched = append(report.Matched, row)
		} else {
			report.Missing = append(report.Missing, row)
		}
	}

	matchedSet := map[string]bool{}
	missingSet := map[string]bool{}
	for code := range inventorySet {
		if scannedSet[code] {
			matchedSet[code] = true
		} else {
			missingSet[code] = true
		}
	}

	for code := range scannedSet {
		if !inventorySet[code] {
			report.Unexpected = append(report.Unexpected, code)
		}
	}
	sort.Strings(report.Unexpected)

	report.MatchedCount = len(matchedSet)
	report.MissingCount = len(missingSet)
	report.UnexpectedCount = len(report.Unexpected)
	return report
}

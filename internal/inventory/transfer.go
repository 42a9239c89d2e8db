package inventory

import (
	"time"

	"optistock_back_end/internal/models"
	"optistock_back_end/internal/store"
)

// FindByBarcode retourne les lignes dont le code-barres normalisé correspond
func FindByBarcode(t *store.Table, barcode string) []store.Row {
	target := CleanBarcode(barcode)
	var matches []store.Row
	for _, row := range t.Rows {
		if CleanBarcode(row[BarcodeColumn]) == target {
			matches = append(matches, row)
		}
	}
	return matches
}

// AddToSecondary insère la ligne de l'inventaire principal en tête de
// l'inventaire secondaire. Retourne false sans modifier la table si le
// code-barres y figure déjà.
func AddToSecondary(secondary *store.Table, row store.Row, barcode string) bool {
	target := CleanBarcode(barcode)
	for _, existing := range secondary.Rows {
		if CleanBarcode(existing[BarcodeColumn]) == target {
			return false
		}
	}

	copied := store.Row{}
	for _, col := range secondary.Columns {
		copied[col] = row[col]
	}
	secondary.Prepend(copied)
	return true
}

// RemoveFromSecondary supprime toutes les lignes de l'inventaire secondaire
// portant ce code-barres. Retourne le nombre de lignes retirées (zéro n'est
// pas une erreur).
func RemoveFromSecondary(secondary *store.Table, barcode string) int {
	target := CleanBarcode(barcode)
	kept := secondary.Rows[:0]
	removed := 0
	for _, row := range secondary.Rows {
		if CleanBarcode(row[BarcodeColumn]) == target {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	secondary.Rows = kept
	return removed
}

// RecordUnfound ajoute un code scanné mais absent de l'inventaire principal
// à la liste des introuvables, horodaté. Retourne false si le code y est
// déjà (dédoublonnage après normalisation).
func RecordUnfound(records []models.UnfoundBarcode, barcode string) ([]models.UnfoundBarcode, bool) {
	target := CleanBarcode(barcode)
	for _, rec := range records {
		if CleanBarcode(rec.Barcode) == target {
			return records, false
		}
	}

	return append(records, models.UnfoundBarcode{
		Barcode:   target,
		Timestamp: time.Now().Format(TimestampLayout),
	}), true
}

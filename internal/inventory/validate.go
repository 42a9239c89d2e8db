package inventory

import (
	"strings"
	"time"

	"optistock_back_end/internal/store"
)

// FormColumns retourne les colonnes saisies par l'opérateur, c'est-à-dire
// tout le schéma sauf l'horodatage (insensible à la casse)
func FormColumns(t *store.Table) []string {
	headers := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		if strings.EqualFold(col, TimestampColumn) {
			continue
		}
		headers = append(headers, col)
	}
	return headers
}

// InsertRecord valide puis ajoute un produit en fin de table.
// Champs obligatoires : BARCODE et FRAME NO. ; les deux identifiants doivent
// être uniques après normalisation (le code-barres est vérifié en premier).
func InsertRecord(t *store.Table, values map[string]string) (store.Row, error) {
	var missing []string
	for _, field := range []string{BarcodeColumn, FramecodeColumn} {
		if values[field] == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Reason: ReasonMissingFields, Fields: missing}
	}

	barcode := CleanBarcode(values[BarcodeColumn])
	framecode := CleanBarcode(values[FramecodeColumn])

	if cleanedSet(t.Column(BarcodeColumn))[barcode] {
		return nil, &ValidationError{Reason: ReasonDuplicateBarcode}
	}
	if cleanedSet(t.Column(FramecodeColumn))[framecode] {
		return nil, &ValidationError{Reason: ReasonDuplicateFramecode}
	}

	row := buildRow(t, values)
	t.Append(row)
	return row, nil
}

// UpdateRecord valide puis réécrit le produit à l'index donné, sur place.
// Mêmes contrôles d'unicité qu'à l'insertion, en excluant la ligne éditée
// elle-même (comparaison par position, pas par valeur).
func UpdateRecord(t *store.Table, index int, values map[string]string) error {
	if index < 0 || index >= len(t.Rows) {
		return &ValidationError{Reason: ReasonBadRowIndex}
	}

	barcode := CleanBarcode(values[BarcodeColumn])
	framecode := CleanBarcode(values[FramecodeColumn])

	for i, row := range t.Rows {
		if i == index {
			continue
		}
		if CleanBarcode(row[BarcodeColumn]) == barcode {
			return &ValidationError{Reason: ReasonDuplicateBarcode}
		}
	}
	for i, row := range t.Rows {
		if i == index {
			continue
		}
		if CleanBarcode(row[FramecodeColumn]) == framecode {
			return &ValidationError{Reason: ReasonDuplicateFramecode}
		}
	}

	t.Rows[index] = buildRow(t, values)
	return nil
}

// DeleteRecord supprime la ligne à l'index donné ; les lignes suivantes sont
// réindexées de façon contiguë. La confirmation en deux temps est portée par
// la couche HTTP.
func DeleteRecord(t *store.Table, index int) error {
	if index < 0 || index >= len(t.Rows) {
		return &ValidationError{Reason: ReasonBadRowIndex}
	}
	t.Delete(index)
	return nil
}

// buildRow peuple une ligne complète du schéma : valeur saisie ou chaîne
// vide pour chaque colonne, horodatage courant si la colonne existe
func buildRow(t *store.Table, values map[string]string) store.Row {
	row := store.Row{}
	for _, col := range t.Columns {
		if strings.EqualFold(col, TimestampColumn) {
			row[col] = time.Now().Format(TimestampLayout)
			continue
		}
		row[col] = values[col]
	}
	return row
}

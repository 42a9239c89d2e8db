package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertRecordMissingFields(t *testing.T) {
	table := newTestTable(nil)

	_, err := InsertRecord(table, map[string]string{})
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, ReasonMissingFields, ve.Reason)
	assert.ElementsMatch(t, []string{BarcodeColumn, FramecodeColumn}, ve.Fields)
	assert.Empty(t, table.Rows)
}

func TestInsertRecordMissingBarcodeOnly(t *testing.T) {
	table := newTestTable(nil)

	_, err := InsertRecord(table, map[string]string{FramecodeColumn: "FRM1"})
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{BarcodeColumn}, ve.Fields)
}

func TestInsertRecordDuplicateBarcode(t *testing.T) {
	table := newTestTable(nil,
		map[string]string{BarcodeColumn: "100", FramecodeColumn: "FRM1"},
	)

	// Le code-barres est vérifié avant le code de monture : un doublon des
	// deux identifiants est signalé comme doublon de code-barres
	_, err := InsertRecord(table, map[string]string{BarcodeColumn: "100", FramecodeColumn: "FRM1"})
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, ReasonDuplicateBarcode, ve.Reason)
	assert.Len(t, table.Rows, 1)
}

func TestInsertRecordDuplicateAfterNormalization(t *testing.T) {
	table := newTestTable(nil,
		map[string]string{BarcodeColumn: "100.0", FramecodeColumn: "FRM1"},
	)

	_, err := InsertRecord(table, map[string]string{BarcodeColumn: " 100 ", FramecodeColumn: "FRM2"})
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, ReasonDuplicateBarcode, ve.Reason)
}

func TestInsertRecordDuplicateFramecode(t *testing.T) {
	table := newTestTable(nil,
		map[string]string{BarcodeColumn: "100", FramecodeColumn: "FRM1"},
	)

	_, err := InsertRecord(table, map[string]string{BarcodeColumn: "200", FramecodeColumn: "FRM1"})
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, ReasonDuplicateFramecode, ve.Reason)
}

func TestInsertRecordAppendsAndStamps(t *testing.T) {
	table := newTestTable([]string{"MODEL", TimestampColumn},
		map[string]string{BarcodeColumn: "100", FramecodeColumn: "FRM1", "MODEL": "Aviator"},
	)

	row, err := InsertRecord(table, map[string]string{
		BarcodeColumn:   "200",
		FramecodeColumn: "FRM2",
	})
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	// Ajout en fin de table, ordre existant préservé
	assert.Equal(t, "100", table.Rows[0][BarcodeColumn])
	assert.Equal(t, "200", table.Rows[1][BarcodeColumn])

	// Colonne non fournie → chaîne vide
	assert.Equal(t, "", row["MODEL"])

	// Horodatage au format attendu
	_, err = time.Parse(TimestampLayout, row[TimestampColumn])
	assert.NoError(t, err)
}

func TestInsertUniquenessInvariant(t *testing.T) {
	table := newTestTable(nil,
		map[string]string{BarcodeColumn: "100", FramecodeColumn: "FRM1"},
	)

	_, err := InsertRecord(table, map[string]string{BarcodeColumn: "200", FramecodeColumn: "FRM2"})
	require.NoError(t, err)

	barcodes := map[string]bool{}
	framecodes := map[string]bool{}
	for _, row := range table.Rows {
		b := CleanBarcode(row[BarcodeColumn])
		f := CleanBarcode(row[FramecodeColumn])
		assert.False(t, barcodes[b], "code-barres dupliqué: %s", b)
		assert.False(t, framecodes[f], "code de monture dupliqué: %s", f)
		barcodes[b] = true
		framecodes[f] = true
	}
}

func TestUpdateRecordExcludesOwnRow(t *testing.T) {
	table := newTestTable([]string{"MODEL"},
		map[string]string{BarcodeColumn: "100", FramecodeColumn: "FRM1", "MODEL": "Aviator"},
		map[string]string{BarcodeColumn: "200", FramecodeColumn: "FRM2", "MODEL": "Wayfarer"},
	)

	// Même identifiants, ligne éditée exclue du contrôle d'unicité
	err := UpdateRecord(table, 0, map[string]string{
		BarcodeColumn:   "100",
		FramecodeColumn: "FRM1",
		"MODEL":         "Clubmaster",
	})
	require.NoError(t, err)
	assert.Equal(t, "Clubmaster", table.Rows[0]["MODEL"])
	assert.Len(t, table.Rows, 2)
}

func TestUpdateRecordDuplicateOtherRow(t *testing.T) {
	table := newTestTable(nil,
		map[string]string{BarcodeColumn: "100", FramecodeColumn: "FRM1"},
		map[string]string{BarcodeColumn: "200", FramecodeColumn: "FRM2"},
	)

	err := UpdateRecord(table, 1, map[string]string{BarcodeColumn: "100", FramecodeColumn: "FRM2"})
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, ReasonDuplicateBarcode, ve.Reason)

	// La table n'a pas bougé
	assert.Equal(t, "200", table.Rows[1][BarcodeColumn])
}

func TestUpdateRecordBadIndex(t *testing.T) {
	table := newTestTable(nil)

	err := UpdateRecord(table, 0, map[string]string{BarcodeColumn: "1", FramecodeColumn: "F"})
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, ReasonBadRowIndex, ve.Reason)
}

func TestDeleteRecordReindexes(t *testing.T) {
	table := newTestTable(nil,
		map[string]string{BarcodeColumn: "100", FramecodeColumn: "FRM1"},
		map[string]string{BarcodeColumn: "200", FramecodeColumn: "FRM2"},
		map[string]string{BarcodeColumn: "300", FramecodeColumn: "FRM3"},
	)

	require.NoError(t, DeleteRecord(table, 1))
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "100", table.Rows[0][BarcodeColumn])
	assert.Equal(t, "300", table.Rows[1][BarcodeColumn])

	assert.Error(t, DeleteRecord(table, 2))
}

// Scénario complet : doublon rejeté sans modification, puis ajout accepté
func TestAddProductScenario(t *testing.T) {
	table := newTestTable(nil,
		map[string]string{BarcodeColumn: "100", FramecodeColumn: "FRM1"},
	)

	_, err := InsertRecord(table, map[string]string{BarcodeColumn: "100", FramecodeColumn: "FRM2"})
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, ReasonDuplicateBarcode, ve.Reason)
	assert.Len(t, table.Rows, 1)

	_, err = InsertRecord(table, map[string]string{BarcodeColumn: "200", FramecodeColumn: "FRM2"})
	require.NoError(t, err)
	assert.Len(t, table.Rows, 2)
}

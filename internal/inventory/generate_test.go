package inventory

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUniqueBarcode(t *testing.T) {
	table := newTestTable(nil,
		map[string]string{BarcodeColumn: "100", FramecodeColumn: "FRM1"},
		map[string]string{BarcodeColumn: "200.0", FramecodeColumn: "FRM2"},
	)

	for i := 0; i < 50; i++ {
		barcode, err := GenerateUniqueBarcode(table)
		require.NoError(t, err)

		n, err := strconv.Atoi(barcode)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 11000)

		// Jamais de collision avec les codes existants, même ceux stockés
		// avec un artefact flottant
		assert.NotEqual(t, "100", CleanBarcode(barcode))
		assert.NotEqual(t, "200", CleanBarcode(barcode))
	}
}

func TestGenerateUniqueBarcodeExhausted(t *testing.T) {
	table := newTestTable(nil)
	for i := 1; i <= 11000; i++ {
		table.Append(map[string]string{
			BarcodeColumn:   strconv.Itoa(i),
			FramecodeColumn: "FRM" + strconv.Itoa(i),
		})
	}

	_, err := GenerateUniqueBarcode(table)
	assert.ErrorIs(t, err, ErrBarcodeSpaceExhausted)
}

func TestGenerateUniqueFramecode(t *testing.T) {
	table := newTestTable(nil,
		map[string]string{BarcodeColumn: "100", FramecodeColumn: "FRM00000001"},
	)

	pattern := regexp.MustCompile(`^FRM[0-9A-F]{8}$`)
	for i := 0; i < 20; i++ {
		code, err := GenerateUniqueFramecode(table)
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
		assert.NotEqual(t, "FRM00000001", code)
	}
}

func TestGenerateSupplierFramecode(t *testing.T) {
	table := newTestTable(nil,
		map[string]string{BarcodeColumn: "1", FramecodeColumn: "RAY000001"},
		map[string]string{BarcodeColumn: "2", FramecodeColumn: "RAY000005"},
		map[string]string{BarcodeColumn: "3", FramecodeColumn: "RAY12"}, // suffixe hors format, ignoré
		map[string]string{BarcodeColumn: "4", FramecodeColumn: "FRMAABBCCDD"},
	)

	code, err := GenerateSupplierFramecode(table, "Ray-Ban")
	require.NoError(t, err)
	assert.Equal(t, "RAY000006", code)
}

func TestGenerateSupplierFramecodeNewPrefix(t *testing.T) {
	table := newTestTable(nil,
		map[string]string{BarcodeColumn: "1", FramecodeColumn: "RAY000001"},
	)

	code, err := GenerateSupplierFramecode(table, "zzz optical")
	require.NoError(t, err)
	assert.Equal(t, "ZZZ000001", code)
}

func TestGenerateSupplierFramecodeShortName(t *testing.T) {
	table := newTestTable(nil)

	_, err := GenerateSupplierFramecode(table, "ab")
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, ReasonBadSupplier, ve.Reason)
}

func TestGenerateSupplierFramecodeMultibyteName(t *testing.T) {
	table := newTestTable(nil,
		map[string]string{BarcodeColumn: "1", FramecodeColumn: "ÉLA000002"},
	)

	// Le préfixe compte des caractères, pas des octets
	code, err := GenerateSupplierFramecode(table, "Élan Optique")
	require.NoError(t, err)
	assert.Equal(t, "ÉLA000003", code)

	// Un seul caractère multi-octets reste un nom trop court
	_, err = GenerateSupplierFramecode(table, "光")
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, ReasonBadSupplier, ve.Reason)
}

func TestGenerateSupplierFramecodeZeroPadding(t *testing.T) {
	table := newTestTable(nil,
		map[string]string{BarcodeColumn: "1", FramecodeColumn: "OAK000099"},
	)

	code, err := GenerateSupplierFramecode(table, "Oakley")
	require.NoError(t, err)
	assert.Equal(t, "OAK000100", code)
}

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optistock_back_end/internal/models"
)

func TestLoadUnfoundMissingFile(t *testing.T) {
	records, err := LoadUnfound(filepath.Join(t.TempDir(), "unfound.csv"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSaveLoadUnfoundRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unfound.csv")

	records := []models.UnfoundBarcode{
		{Barcode: "500", Timestamp: "2026-08-31 10:00:00"},
		{Barcode: "600", Timestamp: "2026-08-31 10:05:00"},
	}
	require.NoError(t, SaveUnfound(path, records))

	loaded, err := LoadUnfound(path)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)

	// L'en-tête CSV suit le schéma de la table
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BARCODE,Timestamp")
}

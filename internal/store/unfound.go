package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jszwec/csvutil"

	"optistock_back_end/internal/models"
)

// LoadUnfound charge la table CSV des codes introuvables.
// Un fichier absent équivaut à une table vide (elle est créée à la première
// écriture).
func LoadUnfound(path string) ([]models.UnfoundBarcode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.UnfoundBarcode{}, nil
		}
		return nil, fmt.Errorf("erreur lecture des codes introuvables: %w", err)
	}

	var records []models.UnfoundBarcode
	if len(data) == 0 {
		return records, nil
	}
	if err := csvutil.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("erreur décodage des codes introuvables: %w", err)
	}
	return records, nil
}

// SaveUnfound réécrit tout le fichier CSV des codes introuvables
func SaveUnfound(path string, records []models.UnfoundBarcode) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("erreur création du dossier %s: %w", dir, err)
		}
	}

	data, err := csvutil.Marshal(records)
	if err != nil {
		return fmt.Errorf("erreur encodage des codes introuvables: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("erreur sauvegarde des codes introuvables: %w", err)
	}
	return nil
}

package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// ErrFileNotFound : le fichier d'inventaire demandé n'existe pas sur le disque
var ErrFileNotFound = errors.New("fichier d'inventaire introuvable")

// Row : une ligne de la table, indexée par nom de colonne
type Row map[string]string

// Table : une table plate chargée depuis un classeur xlsx.
// Le schéma (ordre des colonnes) est celui découvert dans le fichier.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// NewTable crée une table vide avec le schéma donné
func NewTable(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols, Rows: []Row{}}
}

// HasColumn vérifie la présence d'une colonne dans le schéma
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Column retourne toutes les valeurs d'une colonne, dans l'ordre des lignes
func (t *Table) Column(name string) []string {
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, row[name])
	}
	return values
}

// Append ajoute une ligne en fin de table
func (t *Table) Append(r Row) {
	t.Rows = append(t.Rows, r)
}

// Prepend insère une ligne en tête de table
func (t *Table) Prepend(r Row) {
	t.Rows = append([]Row{r}, t.Rows...)
}

// Delete supprime la ligne à l'index donné, les lignes suivantes remontent
func (t *Table) Delete(index int) {
	t.Rows = append(t.Rows[:index], t.Rows[index+1:]...)
}

// Load charge une table depuis un fichier xlsx. La première ligne de la
// feuille donne le schéma ; les lignes courtes sont complétées par des vides.
func Load(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("erreur ouverture du classeur %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("erreur lecture de la feuille %s: %w", sheet, err)
	}

	if len(rows) == 0 {
		return NewTable(nil), nil
	}

	table := NewTable(rows[0])
	for _, raw := range rows[1:] {
		row := Row{}
		for i, col := range table.Columns {
			if i < len(raw) {
				row[col] = raw[i]
			} else {
				row[col] = ""
			}
		}
		table.Append(row)
	}
	return table, nil
}

// buildWorkbook matérialise la table dans un classeur en mémoire
func buildWorkbook(t *Table) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("erreur écriture de l'en-tête: %w", err)
	}

	for i, row := range t.Rows {
		values := make([]interface{}, len(t.Columns))
		for j, col := range t.Columns {
			values[j] = row[col]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("erreur écriture de la ligne %d: %w", i+2, err)
		}
	}
	return f, nil
}

// Save réécrit tout le fichier xlsx depuis la table (dernière écriture gagne)
func Save(path string, t *Table) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("erreur création du dossier %s: %w", dir, err)
		}
	}

	f, err := buildWorkbook(t)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("erreur sauvegarde du classeur %s: %w", path, err)
	}
	return nil
}

// WriteWorkbook sérialise la table en classeur xlsx prêt à télécharger
func WriteWorkbook(t *Table) ([]byte, error) {
	f, err := buildWorkbook(t)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erreur sérialisation du classeur: %w", err)
	}
	return buf.Bytes(), nil
}

// EnsureWithSchema charge la table, ou la crée vide avec le schéma donné si
// le fichier n'existe pas encore (cas des tables secondaires)
func EnsureWithSchema(path string, columns []string) (*Table, error) {
	table, err := Load(path)
	if err == nil {
		return table, nil
	}
	if !errors.Is(err, ErrFileNotFound) {
		return nil, err
	}

	empty := NewTable(columns)
	if err := Save(path, empty); err != nil {
		return nil, err
	}
	return empty, nil
}

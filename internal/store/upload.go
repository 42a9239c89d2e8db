package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseError : fichier de comptage illisible ou extension non supportée.
// L'erreur n'interrompt que le rapprochement en cours.
type ParseError struct {
	Filename string
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fichier '%s' illisible: %s", e.Filename, e.Reason)
}

// ParseUpload lit un fichier de comptage (CSV, TXT ou xlsx) vers une table.
// Les fichiers .txt hérités sont souvent tabulés : on détecte le séparateur
// sur la première ligne.
func ParseUpload(filename string, r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Filename: filename, Reason: err.Error()}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseDelimited(filename, data, ',')
	case ".txt":
		return parseDelimited(filename, data, sniffDelimiter(data))
	case ".xlsx":
		return parseWorkbook(filename, data)
	default:
		return nil, &ParseError{Filename: filename, Reason: "extension non supportée (attendu: csv, txt ou xlsx)"}
	}
}

func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.ContainsRune(line, '\t') {
		return '\t'
	}
	return ','
}

func parseDelimited(filename string, data []byte, comma rune) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, &ParseError{Filename: filename, Reason: "en-tête manquant ou illisible"}
	}

	table := NewTable(headers)
	for {
		raw, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Filename: filename, Reason: err.Error()}
		}
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

func parseWorkbook(filename string, data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Filename: filename, Reason: err.Error()}
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, &ParseError{Filename: filename, Reason: err.Error()}
	}
	if len(rows) == 0 {
		return nil, &ParseError{Filename: filename, Reason: "classeur vide"}
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

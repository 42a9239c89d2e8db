package inventory

import "optistock_back_end/internal/store"

// newTestTable construit une table d'inventaire avec le schéma minimal
func newTestTable(extraColumns []string, rows ...map[string]string) *store.Table {
	columns := append([]string{BarcodeColumn, FramecodeColumn}, extraColumns...)
	table := store.NewTable(columns)
	for _, r := range rows {
		row := store.Row{}
		for _, col := range columns {
			row[col] = r[col]
		}
		table.Append(row)
	}
	return table
}

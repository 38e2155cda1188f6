package csvkit

import "slices"

// AddColumn appends defaultValue as a new trailing column to every row. Rows sharing a backing
// array do not see each other's new column.
func AddColumn(rows [][]string, defaultValue string) error {
	if rows == nil {
		return ErrNilInput
	}
	for i := range rows {
		rows[i] = append(slices.Clip(rows[i]), defaultValue)
	}
	return nil
}

// DropColumn removes the column at columnIndex from every row, shifting later columns left.
// Every row is checked first, so rows are left untouched when an error is returned.
func DropColumn(rows [][]string, columnIndex int) error {
	if rows == nil {
		return ErrNilInput
	}
	for i, row := range rows {
		if columnIndex < 0 || columnIndex >= len(row) {
			return &ColumnError{Row: i, Index: columnIndex, Width: len(row)}
		}
	}
	for i, row := range rows {
		copy(row[columnIndex:], row[columnIndex+1:])
		row[len(row)-1] = ""
		rows[i] = row[:len(row)-1]
	}
	return nil
}

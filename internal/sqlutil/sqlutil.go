// Package sqlutil holds small database/sql helpers shared by the usage index.
package sqlutil

import "database/sql"

// ScanRows drains rows into a slice using the provided scanner, closing the
// rows when done.
func ScanRows[T any](rows *sql.Rows, scan func(*sql.Rows) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

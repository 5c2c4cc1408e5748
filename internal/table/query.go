package table

import "memory-ledger-go/internal/models"

// Query runs the table pipeline: text filter, date-range filter, then sort.
// An empty filter result is returned as is and never sorted. Query does not
// modify the dataset.
func Query(ds Dataset, f models.FilterSpec, s models.SortSpec) ([]models.Transaction, error) {
	rows := FilterText(ds.rows, f)
	rows = FilterDateRange(rows, f.Range)
	if len(rows) == 0 {
		return rows, nil
	}
	return Sort(rows, s)
}

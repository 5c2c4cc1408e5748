package table

import "memory-ledger-go/internal/models"

// Dataset is the immutable master list of transactions.
type Dataset struct {
	rows []models.Transaction
}

// NewDataset copies rows so later changes by the caller are not observed.
func NewDataset(rows []models.Transaction) Dataset {
	cp := make([]models.Transaction, len(rows))
	copy(cp, rows)
	return Dataset{rows: cp}
}

func (d Dataset) Len() int { return len(d.rows) }

// Rows returns a copy of the dataset in load order.
func (d Dataset) Rows() []models.Transaction {
	cp := make([]models.Transaction, len(d.rows))
	copy(cp, d.rows)
	return cp
}

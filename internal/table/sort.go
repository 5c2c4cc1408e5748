package table

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"memory-ledger-go/internal/models"
)

var ErrUnknownSortField = errors.New("unknown sort field")

type comparator func(a, b *models.Transaction) int

// comparators holds one ordering per sortable column. Text columns compare
// the raw value, case-sensitively.
var comparators = map[models.SortField]comparator{
	models.FieldApplicationName: func(a, b *models.Transaction) int {
		return strings.Compare(a.ApplicationName, b.ApplicationName)
	},
	models.FieldTypeCard: func(a, b *models.Transaction) int {
		return strings.Compare(a.TypeCard, b.TypeCard)
	},
	models.FieldUserName: func(a, b *models.Transaction) int {
		return strings.Compare(a.UserName, b.UserName)
	},
	models.FieldDateLastTransaction: func(a, b *models.Transaction) int {
		return a.DateLastTransaction.Compare(b.DateLastTransaction)
	},
	models.FieldStatusTransaction: func(a, b *models.Transaction) int {
		return strings.Compare(string(a.StatusTransaction), string(b.StatusTransaction))
	},
	models.FieldDateEndTransaction: func(a, b *models.Transaction) int {
		return a.DateEndTransaction.Compare(b.DateEndTransaction)
	},
	models.FieldTotalSum: func(a, b *models.Transaction) int {
		return a.TotalSum.Cmp(b.TotalSum)
	},
}

// ParseSortField maps a column key to a SortField.
func ParseSortField(raw string) (models.SortField, error) {
	field := models.SortField(strings.TrimSpace(raw))
	if _, ok := comparators[field]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSortField, raw)
	}
	return field, nil
}

// Sort returns rows ordered by spec. DEFAULT keeps the input order. The sort
// is stable, so equal keys keep their input order in both directions.
func Sort(rows []models.Transaction, spec models.SortSpec) ([]models.Transaction, error) {
	if spec.Direction == models.SortDefault {
		return rows, nil
	}

	cmp, ok := comparators[spec.Field]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSortField, spec.Field)
	}

	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b models.Transaction) int {
		if spec.Direction == models.SortDesc {
			return -cmp(&a, &b)
		}
		return cmp(&a, &b)
	})
	return sorted, nil
}

package table

import (
	"strings"

	"memory-ledger-go/internal/models"
)

// FilterText keeps rows whose application name, user name and status each
// contain the matching query, ignoring case. An empty query matches all.
func FilterText(rows []models.Transaction, f models.FilterSpec) []models.Transaction {
	app := strings.ToLower(f.AppNameQuery)
	user := strings.ToLower(f.UserNameQuery)
	status := strings.ToLower(f.StatusQuery)

	filtered := make([]models.Transaction, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.ApplicationName), app) &&
			strings.Contains(strings.ToLower(r.UserName), user) &&
			strings.Contains(strings.ToLower(string(r.StatusTransaction)), status) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterDateRange keeps rows whose dateLastTransaction lies within the
// inclusive range. Open bounds do not restrict.
func FilterDateRange(rows []models.Transaction, r models.DateRange) []models.Transaction {
	if r.Start == nil && r.End == nil {
		return rows
	}

	filtered := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		d := row.DateLastTransaction
		if r.Start != nil && d.Before(*r.Start) {
			continue
		}
		if r.End != nil && d.After(*r.End) {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}

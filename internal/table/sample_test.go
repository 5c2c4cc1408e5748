package table

import (
	"time"

	"memory-ledger-go/internal/models"

	"github.com/shopspring/decimal"
)

var eet = time.FixedZone("EET", 2*60*60)

func sampleRow(app, user string, status models.TransactionStatus, lastMs, endMs int64, total string) models.Transaction {
	return models.Transaction{
		ApplicationName:     app,
		ApplicationIcon:     "assets/" + app + ".png",
		TypeCard:            "Visa",
		NumberCard:          "***** 2468",
		UserName:            user,
		EmailUser:           "ItaiBracha31@gmail.com",
		DateLastTransaction: time.UnixMilli(lastMs).UTC(),
		SumLastTransaction:  decimal.RequireFromString("783.22"),
		StatusTransaction:   status,
		DateEndTransaction:  time.UnixMilli(endMs).UTC(),
		TotalSum:            decimal.RequireFromString(total),
	}
}

func sampleDataset() Dataset {
	return NewDataset([]models.Transaction{
		sampleRow("Figma", "Itai Brach", models.StatusDone, 1641074400000, 1641938400000, "783.22"),
		sampleRow("Adobe XD", "Natali Bolgar", models.StatusDone, 1641333600000, 1642629600000, "783.22"),
		sampleRow("Mailchimp", "Iren Parady", models.StatusDone, 1643752800000, 1644616800000, "783.22"),
		sampleRow("WIX", "Itai Brach", models.StatusPending, 1649451600000, 1651179600000, "683.22"),
		sampleRow("Youtube", "Itai Brach", models.StatusDone, 1641074400000, 1641938400000, "883.22"),
	})
}

func names(rows []models.Transaction) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ApplicationName
	}
	return out
}

type recordingView struct {
	rows    []models.Transaction
	empty   bool
	renders int
}

func (v *recordingView) RenderRows(rows []models.Transaction) {
	v.rows = rows
	v.empty = false
	v.renders++
}

func (v *recordingView) RenderEmpty() {
	v.rows = nil
	v.empty = true
	v.renders++
}

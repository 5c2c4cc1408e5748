package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the settlement state shown in the table.
type TransactionStatus string

const (
	StatusDone    TransactionStatus = "Done"
	StatusPending TransactionStatus = "Pending"
)

// Transaction is one row of the transactions table
type Transaction struct {
	ApplicationName     string `validate:"required"`
	ApplicationIcon     string
	ApplicationUrl      string
	TypeCard            string
	NumberCard          string
	UserName            string    `validate:"required"`
	EmailUser           string    `validate:"omitempty,email"`
	DateLastTransaction time.Time `validate:"required"`
	SumLastTransaction  decimal.Decimal
	StatusTransaction   TransactionStatus `validate:"oneof=Done Pending"`
	DateEndTransaction  time.Time         `validate:"required"`
	TotalSum            decimal.Decimal
}

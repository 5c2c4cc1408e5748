package common

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"memory-ledger-go/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

var ErrInvalidAmount = errors.New("invalid amount")

// TransactionRecord is the on-disk form of a transaction. Dates are epoch
// milliseconds and amounts are display strings such as "$783.22".
type TransactionRecord struct {
	ApplicationName     string `yaml:"applicationName"`
	ApplicationIcon     string `yaml:"applicationIcon"`
	ApplicationUrl      string `yaml:"applicationUrl"`
	TypeCard            string `yaml:"typeCard"`
	NumberCard          string `yaml:"numberCard"`
	UserName            string `yaml:"userName"`
	EmailUser           string `yaml:"emailUser"`
	DateLastTransaction int64  `yaml:"dateLastTransaction"`
	SumLastTransaction  string `yaml:"sumLastTransaction"`
	StatusTransaction   string `yaml:"statusTransaction"`
	DateEndTransaction  int64  `yaml:"dateEndTransaction"`
	TotalSum            string `yaml:"totalSum"`
}

type DatasetFile struct {
	Transactions []TransactionRecord `yaml:"transactions"`
}

func LoadDataset(datasetFile string) ([]models.Transaction, error) {
	var datasetPath string
	if filepath.IsAbs(datasetFile) {
		datasetPath = datasetFile
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		datasetPath = filepath.Join(wd, datasetFile)
	}

	data, err := os.ReadFile(datasetPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", datasetFile, err)
	}

	return ParseDataset(data)
}

// ParseDataset decodes and validates a YAML dataset.
func ParseDataset(data []byte) ([]models.Transaction, error) {
	var file DatasetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unable to parse dataset: %w", err)
	}

	transactions := make([]models.Transaction, 0, len(file.Transactions))
	for i, rec := range file.Transactions {
		tx, err := rec.toTransaction()
		if err != nil {
			return nil, fmt.Errorf("transaction at index %d: %w", i, err)
		}
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("transaction at index %d: %w", i, err)
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

func (r TransactionRecord) toTransaction() (models.Transaction, error) {
	sumLast, err := ParseAmount(r.SumLastTransaction)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("sumLastTransaction: %w", err)
	}
	total, err := ParseAmount(r.TotalSum)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("totalSum: %w", err)
	}

	return models.Transaction{
		ApplicationName:     r.ApplicationName,
		ApplicationIcon:     r.ApplicationIcon,
		ApplicationUrl:      r.ApplicationUrl,
		TypeCard:            r.TypeCard,
		NumberCard:          r.NumberCard,
		UserName:            r.UserName,
		EmailUser:           r.EmailUser,
		DateLastTransaction: millis(r.DateLastTransaction),
		SumLastTransaction:  sumLast,
		StatusTransaction:   models.TransactionStatus(r.StatusTransaction),
		DateEndTransaction:  millis(r.DateEndTransaction),
		TotalSum:            total,
	}, nil
}

func millis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

// ParseAmount accepts "$783.22", "783.22" or "$1,024.50".
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return d, nil
}

// FormatAmount renders an amount the way the dataset writes it.
func FormatAmount(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

package models

import (
	"fmt"
	"time"
)

// SortField identifies a sortable table column.
type SortField string

const (
	FieldApplicationName     SortField = "applicationName"
	FieldTypeCard            SortField = "typeCard"
	FieldUserName            SortField = "userName"
	FieldDateLastTransaction SortField = "dateLastTransaction"
	FieldStatusTransaction   SortField = "statusTransaction"
	FieldDateEndTransaction  SortField = "dateEndTransaction"
	FieldTotalSum            SortField = "totalSum"
)

// SortFields lists every column in table order.
var SortFields = []SortField{
	FieldApplicationName,
	FieldTypeCard,
	FieldUserName,
	FieldDateLastTransaction,
	FieldStatusTransaction,
	FieldDateEndTransaction,
	FieldTotalSum,
}

// SortDirection is the state of the tri-state sort button.
type SortDirection int

const (
	SortDefault SortDirection = iota
	SortAsc
	SortDesc
)

// Next returns the direction after one click of the sort button:
// DEFAULT -> ASC -> DESC -> DEFAULT.
func (d SortDirection) Next() SortDirection {
	switch d {
	case SortDefault:
		return SortAsc
	case SortAsc:
		return SortDesc
	default:
		return SortDefault
	}
}

func (d SortDirection) String() string {
	switch d {
	case SortDefault:
		return "DEFAULT"
	case SortAsc:
		return "ASC"
	case SortDesc:
		return "DESC"
	default:
		return fmt.Sprintf("SortDirection(%d)", int(d))
	}
}

// DateRange bounds dateLastTransaction. A nil bound is open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// FilterSpec holds the current text queries and date range
type FilterSpec struct {
	AppNameQuery  string
	UserNameQuery string
	StatusQuery   string
	Range         DateRange
}

// SortSpec holds the current sort column and direction
type SortSpec struct {
	Field     SortField
	Direction SortDirection
}

// QueryState is everything the table view is derived from besides the dataset.
type QueryState struct {
	Filter FilterSpec
	Sort   SortSpec
}

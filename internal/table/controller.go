package table

import (
	"errors"
	"time"

	"memory-ledger-go/internal/models"

	"go.uber.org/zap"
)

// View renders the table body.
type View interface {
	RenderRows(rows []models.Transaction)
	RenderEmpty()
}

// Controller owns the query state and re-renders after every input.
type Controller struct {
	dataset Dataset
	view    View
	loc     *time.Location
	state   models.QueryState
}

// NewController starts unfiltered, sorted by defaultField in DEFAULT
// direction, and renders once.
func NewController(ds Dataset, view View, loc *time.Location, defaultField models.SortField) *Controller {
	if loc == nil {
		loc = time.Local
	}
	c := &Controller{
		dataset: ds,
		view:    view,
		loc:     loc,
		state: models.QueryState{
			Sort: models.SortSpec{Field: defaultField, Direction: models.SortDefault},
		},
	}
	c.refresh()
	return c
}

// State returns a copy of the current query state.
func (c *Controller) State() models.QueryState {
	return c.state
}

func (c *Controller) OnAppNameInput(value string) {
	c.state.Filter.AppNameQuery = value
	c.refresh()
}

func (c *Controller) OnUserNameInput(value string) {
	c.state.Filter.UserNameQuery = value
	c.refresh()
}

func (c *Controller) OnStatusInput(value string) {
	c.state.Filter.StatusQuery = value
	c.refresh()
}

// OnDateStartInput sets the lower bound. An unparsable date clears the bound
// and is returned so the caller can flag the input.
func (c *Controller) OnDateStartInput(value string) error {
	start, err := ParseRangeStart(value, c.loc)
	if err != nil {
		zap.L().Warn("Ignoring invalid range start", zap.String("value", value), zap.Error(err))
	}
	c.state.Filter.Range.Start = start
	c.refresh()
	return err
}

// OnDateEndInput sets the upper bound, with the same rules as OnDateStartInput.
func (c *Controller) OnDateEndInput(value string) error {
	end, err := ParseRangeEnd(value, c.loc)
	if err != nil {
		zap.L().Warn("Ignoring invalid range end", zap.String("value", value), zap.Error(err))
	}
	c.state.Filter.Range.End = end
	c.refresh()
	return err
}

// OnSortFieldChange re-sorts by field with the current direction. Unknown
// keys are rejected and the previous field is kept.
func (c *Controller) OnSortFieldChange(value string) error {
	field, err := ParseSortField(value)
	if err != nil {
		zap.L().Warn("Rejected sort field", zap.String("value", value), zap.Error(err))
		return err
	}
	c.state.Sort.Field = field
	c.refresh()
	return nil
}

// OnSortButtonClick advances DEFAULT -> ASC -> DESC -> DEFAULT.
func (c *Controller) OnSortButtonClick() models.SortDirection {
	c.state.Sort.Direction = c.state.Sort.Direction.Next()
	zap.L().Debug("Sort direction changed",
		zap.String("field", string(c.state.Sort.Field)),
		zap.Stringer("direction", c.state.Sort.Direction))
	c.refresh()
	return c.state.Sort.Direction
}

func (c *Controller) refresh() {
	rows, err := Query(c.dataset, c.state.Filter, c.state.Sort)
	if err != nil {
		// Only an unknown sort field fails, and fields are checked on entry.
		zap.L().Error("Query failed", zap.Error(err))
		if errors.Is(err, ErrUnknownSortField) {
			c.state.Sort.Direction = models.SortDefault
			rows, _ = Query(c.dataset, c.state.Filter, c.state.Sort)
		}
	}

	if len(rows) == 0 {
		c.view.RenderEmpty()
		return
	}
	c.view.RenderRows(rows)
}

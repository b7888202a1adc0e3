// internal/core/domain/history.go
package domain

import (
	"fmt"
	"strings"
	"time"
)

// MovementQuery selects a page of one movement log, newest first.
type MovementQuery struct {
	TenantID int64
	// Search matches product or variant names, case-insensitively
	Search string
	// From is inclusive, Until is exclusive
	From  *time.Time
	Until *time.Time
	// Direction only narrows adjustments
	Direction Direction
	Page      int
	PageSize  int
}

// Validate checks paging and the date range and normalizes the search term.
func (q *MovementQuery) Validate() error {
	if q.Page < 1 {
		return fmt.Errorf("%w: page must be at least 1", ErrInvalidArgument)
	}
	if q.PageSize < 1 {
		return fmt.Errorf("%w: page_size must be at least 1", ErrInvalidArgument)
	}
	if q.From != nil && q.Until != nil && !q.From.Before(*q.Until) {
		return fmt.Errorf("%w: from must be before to", ErrInvalidArgument)
	}
	if q.Direction != "" && q.Direction != DirectionIncrease && q.Direction != DirectionDecrease {
		return fmt.Errorf("%w: adjustment type must be Increase or Decrease", ErrInvalidArgument)
	}
	q.Search = strings.TrimSpace(q.Search)
	return nil
}

// Offset is the number of events skipped before the page.
func (q MovementQuery) Offset() uint64 {
	return uint64((q.Page - 1) * q.PageSize)
}

// DailyTotals counts one log's events on one day.
type DailyTotals struct {
	Date     time.Time `json:"-"`
	Events   int64     `json:"events"`
	Quantity int64     `json:"quantity"`
}

// DailyActivity lines up the three logs for one day.
type DailyActivity struct {
	Date        time.Time   `json:"date"`
	StockIn     DailyTotals `json:"stock_in"`
	StockOut    DailyTotals `json:"stock_out"`
	Adjustments DailyTotals `json:"adjustments"`
}

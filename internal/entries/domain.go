// Package entries stores the time, revenue and budget facts each
// organization feeds into the dashboard.
package entries

import (
	"fmt"

	"github.com/fintaskReza/opzer-dash/internal/platform/httpx"
	"github.com/fintaskReza/opzer-dash/internal/profitability"
)

// MaxBulkRows caps a single bulk insert.
const MaxBulkRows = 5000

// ErrTooManyRows is returned when a bulk payload exceeds MaxBulkRows.
var ErrTooManyRows = fmt.Errorf("%w: max %d rows per import", httpx.ErrValidation, MaxBulkRows)

// DataSource records where a row came from.
type DataSource string

const (
	SourceManual DataSource = "manual"
	SourceCSV    DataSource = "csv"
	SourceAPI    DataSource = "api"
	SourceSeed   DataSource = "seed"
)

// TimeEntryInput is one row of a time entry bulk insert.
type TimeEntryInput struct {
	ClientName  string     `json:"clientName" validate:"required,max=200"`
	TeamMember  string     `json:"teamMember" validate:"required,max=200"`
	HoursLogged float64    `json:"hoursLogged" validate:"gte=0,lte=10000"`
	Date        string     `json:"date" validate:"required,datetime=2006-01-02"`
	ServiceTag  string     `json:"serviceTag" validate:"max=200"`
	Billable    *bool      `json:"billable"`
	DataSource  DataSource `json:"dataSource" validate:"omitempty,oneof=manual csv api seed"`
}

// RevenueEntryInput is one row of a revenue bulk insert.
type RevenueEntryInput struct {
	ClientName string     `json:"clientName" validate:"required,max=200"`
	Amount     float64    `json:"amount"`
	Date       string     `json:"date" validate:"required,datetime=2006-01-02"`
	DataSource DataSource `json:"dataSource" validate:"omitempty,oneof=manual csv api seed"`
}

// BudgetInput upserts the budget for one client.
type BudgetInput struct {
	ClientName string  `json:"clientName" validate:"required,max=200"`
	Budget     float64 `json:"budget"`
}

// TimeEntryRecord is a stored time entry.
type TimeEntryRecord struct {
	ID int64 `json:"id"`
	profitability.TimeEntry
	DataSource DataSource `json:"dataSource"`
}

// RevenueEntryRecord is a stored revenue entry.
type RevenueEntryRecord struct {
	ID int64 `json:"id"`
	profitability.RevenueEntry
	DataSource DataSource `json:"dataSource"`
}

// BudgetRecord is a stored budget.
type BudgetRecord struct {
	ID int64 `json:"id"`
	profitability.BudgetEntry
}

// TimeEntries strips storage fields for the engine.
func TimeEntries(records []TimeEntryRecord) []profitability.TimeEntry {
	out := make([]profitability.TimeEntry, len(records))
	for i, r := range records {
		out[i] = r.TimeEntry
	}
	return out
}

// RevenueEntries strips storage fields for the engine.
func RevenueEntries(records []RevenueEntryRecord) []profitability.RevenueEntry {
	out := make([]profitability.RevenueEntry, len(records))
	for i, r := range records {
		out[i] = r.RevenueEntry
	}
	return out
}

// Budgets strips storage fields for the engine.
func Budgets(records []BudgetRecord) []profitability.BudgetEntry {
	out := make([]profitability.BudgetEntry, len(records))
	for i, r := range records {
		out[i] = r.BudgetEntry
	}
	return out
}

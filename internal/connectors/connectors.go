// Package connectors describes where an organization's entries can come from.
package connectors

import (
	"context"
	"errors"

	"github.com/fintaskReza/opzer-dash/internal/entries"
)

// ErrNotConnected is returned by Sync on sources without a live integration.
var ErrNotConnected = errors.New("connectors: source not connected")

// State is the availability of a source.
type State string

const (
	StateAvailable State = "available"
	StateComing    State = "coming"
)

// Status reports one source for one organization.
type Status struct {
	Type        string `json:"type"`
	Label       string `json:"label"`
	Description string `json:"description"`
	State       State  `json:"state"`
	Connected   bool   `json:"connected"`
	Rows        int64  `json:"rows"`
}

// Connector is an external data source.
type Connector interface {
	Type() string
	Label() string
	Status(ctx context.Context, orgID int64) (Status, error)
	Sync(ctx context.Context, orgID int64) (int, error)
}

// SourceCounter reports stored rows per data source.
type SourceCounter interface {
	CountBySource(ctx context.Context, orgID int64) (map[entries.DataSource]int64, error)
}

// stub is a placeholder for an integration that is not built yet.
type stub struct {
	kind, label, description string
}

func (s stub) Type() string  { return s.kind }
func (s stub) Label() string { return s.label }

func (s stub) Status(context.Context, int64) (Status, error) {
	return Status{Type: s.kind, Label: s.label, Description: s.description, State: StateComing}, nil
}

func (s stub) Sync(context.Context, int64) (int, error) {
	return 0, ErrNotConnected
}

// QuickBooks returns the QuickBooks Online placeholder.
func QuickBooks() Connector {
	return stub{kind: "quickbooks", label: "QuickBooks Online", description: "Sync invoices and payments via OAuth 2.0"}
}

// Xero returns the Xero placeholder.
func Xero() Connector {
	return stub{kind: "xero", label: "Xero", description: "Sync invoices and payments from Xero"}
}

// GoogleSheets returns the Google Sheets placeholder.
func GoogleSheets() Connector {
	return stub{kind: "sheets", label: "Google Sheets", description: "Connect a live spreadsheet and sync on demand"}
}

// CSV is always available. Rows counts the entries imported from files.
type CSV struct {
	Counter SourceCounter
}

func (CSV) Type() string  { return "csv" }
func (CSV) Label() string { return "CSV Import" }

// Status implements Connector.
func (c CSV) Status(ctx context.Context, orgID int64) (Status, error) {
	st := Status{
		Type:        c.Type(),
		Label:       c.Label(),
		Description: "Upload time entries or revenue files with column auto-detection",
		State:       StateAvailable,
		Connected:   true,
	}
	if c.Counter == nil {
		return st, nil
	}
	counts, err := c.Counter.CountBySource(ctx, orgID)
	if err != nil {
		return Status{}, err
	}
	st.Rows = counts[entries.SourceCSV]
	return st, nil
}

// Sync is a no-op: CSV rows arrive through uploads.
func (CSV) Sync(context.Context, int64) (int, error) {
	return 0, nil
}

// Registry lists the configured connectors in display order.
type Registry struct {
	connectors []Connector
}

// NewRegistry builds the default registry.
func NewRegistry(counter SourceCounter) *Registry {
	return &Registry{connectors: []Connector{CSV{Counter: counter}, QuickBooks(), Xero(), GoogleSheets()}}
}

// List reports every connector for orgID.
func (r *Registry) List(ctx context.Context, orgID int64) ([]Status, error) {
	out := make([]Status, 0, len(r.connectors))
	for _, c := range r.connectors {
		st, err := c.Status(ctx, orgID)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

// Get finds a connector by type.
func (r *Registry) Get(kind string) (Connector, bool) {
	for _, c := range r.connectors {
		if c.Type() == kind {
			return c, true
		}
	}
	return nil, false
}

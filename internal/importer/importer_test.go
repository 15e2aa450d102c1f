package importer

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintaskReza/opzer-dash/internal/profitability"
)

func TestApplyColumnMapping(t *testing.T) {
	rows := []map[string]string{{"Customer": "Acme", "Hrs": "2.5", "When": "2025-01-03", "Notes": "x"}}
	mapped := ApplyColumnMapping(rows, Mapping{
		"clientName": "Customer",
		"hours":      "Hrs",
		"date":       "When",
		"serviceTag": Skip,
		"teamMember": "",
		"billable":   "Missing",
	})

	require.Len(t, mapped, 1)
	assert.Equal(t, map[string]string{"clientName": "Acme", "hours": "2.5", "date": "2025-01-03", "billable": ""}, mapped[0])
	assert.Equal(t, "x", rows[0]["Notes"])
}

func TestDetectMapping(t *testing.T) {
	m := DetectMapping([]string{"Client", "Staff Member", "Work Date", "Time Tracked (hrs)", "Service Line"}, KindTime)
	assert.Equal(t, "Client", m["clientName"])
	assert.Equal(t, "Staff Member", m["teamMember"])
	assert.Equal(t, "Work Date", m["date"])
	assert.Equal(t, "Time Tracked (hrs)", m["hours"])
	assert.Equal(t, "Service Line", m["serviceTag"])
	assert.Equal(t, Skip, m["billable"])

	rev := DetectMapping([]string{"customer", "Invoice Amount", "Invoice Month"}, KindRevenue)
	assert.Equal(t, "customer", rev["clientName"])
	assert.Equal(t, "Invoice Amount", rev["amount"])
	assert.Equal(t, "Invoice Month", rev["month"])
	assert.Equal(t, Skip, rev["date"])
}

func TestParseTimeEntriesAliases(t *testing.T) {
	rows := []map[string]string{
		{"Client Name": " Acme ", "Team Member": "Dana", "Time Tracked (hrs)": "1.5", "Date": "2025-02-03", "Service": "Tax"},
		{"clientName": "Beta", "teamMember": "Lee", "hrs": "abc", "date": "2/4/2025"},
		{"client_name": "Gamma", "team_member": "Kim", "hours": "3", "date": "2025-02-05", "service_tag": "", "billable": "false"},
	}

	got := ParseTimeEntries(rows)
	require.Len(t, got, 3)

	assert.Equal(t, "Acme", got[0].ClientName)
	assert.Equal(t, 1.5, got[0].HoursLogged)
	assert.Equal(t, "Tax", got[0].ServiceTag)
	assert.Nil(t, got[0].Billable)

	assert.Zero(t, got[1].HoursLogged)
	assert.Equal(t, "2025-02-04", got[1].Date)
	assert.Equal(t, profitability.UncategorizedService, got[1].ServiceTag)

	assert.Equal(t, "", got[2].ServiceTag)
	require.NotNil(t, got[2].Billable)
	assert.False(t, *got[2].Billable)
}

func TestParseRevenueEntries(t *testing.T) {
	got := ParseRevenueEntries([]map[string]string{
		{"Client Name": "Acme", "Amount": "$1,234.50", "month": "2025-03"},
		{"clientName": "Beta", "amount": "n/a", "date": "2025-03-15", "month": "2025-04"},
	})
	require.Len(t, got, 2)
	assert.Equal(t, 1234.5, got[0].Amount)
	assert.Equal(t, "2025-03-01", got[0].Date)
	assert.Zero(t, got[1].Amount)
	assert.Equal(t, "2025-03-15", got[1].Date)
}

func TestParseNumbersDegradeToFinite(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"NaN", 0},
		{"nan", 0},
		{"inf", 0},
		{"+Inf", 0},
		{"-Infinity", 0},
		{"1e400", 0},
		{"abc", 0},
		{"", 0},
		{"$1,200.50", 1200.5},
		{" 7 ", 7},
	}
	for _, tt := range tests {
		rev := ParseRevenueEntries([]map[string]string{{"clientName": "X", "amount": tt.raw, "date": "2025-06-01"}})
		require.Len(t, rev, 1)
		assert.Equalf(t, tt.want, rev[0].Amount, "amount %q", tt.raw)
		assert.Falsef(t, math.IsNaN(rev[0].Amount) || math.IsInf(rev[0].Amount, 0), "amount %q", tt.raw)

		logged := ParseTimeEntries([]map[string]string{{"clientName": "X", "teamMember": "M", "hours": tt.raw, "date": "2025-06-01"}})
		require.Len(t, logged, 1)
		assert.Equalf(t, tt.want, logged[0].HoursLogged, "hours %q", tt.raw)
	}
}

func TestNonFiniteRevenueKeepsReportsEncodable(t *testing.T) {
	_, rows, err := ReadCSV(strings.NewReader("clientName,amount,date\nX,NaN,2025-06-01\nX,inf,2025-06-02\nX,100,2025-06-03\n"))
	require.NoError(t, err)

	parsed := ParseRevenueEntries(rows)
	revenue := make([]profitability.RevenueEntry, len(parsed))
	for i, in := range parsed {
		revenue[i] = profitability.RevenueEntry{ClientName: in.ClientName, Amount: in.Amount, Date: in.Date}
	}
	data := profitability.Dataset{
		Clients: []profitability.Client{{CanonicalName: "X", Status: profitability.StatusActive}},
		Revenue: revenue,
	}

	report := profitability.ComputeClientProfitability(profitability.Filters{DateFrom: "2025-06-01", DateTo: "2025-06-30"}, data)
	require.Len(t, report, 1)
	assert.Equal(t, 100.0, report[0].Revenue)
	_, err = json.Marshal(report)
	assert.NoError(t, err)
}

func TestNormalizeDate(t *testing.T) {
	tests := map[string]string{
		"2025-06-01":  "2025-06-01",
		" 2025-06 ":   "2025-06-01",
		"6/1/2025":    "2025-06-01",
		"06/01/2025":  "2025-06-01",
		"2025/06/01":  "2025-06-01",
		"Jun 1, 2025": "2025-06-01",
		"sometime":    "sometime",
		"":            "",
	}
	for in, want := range tests {
		assert.Equalf(t, want, NormalizeDate(in), "input %q", in)
	}
}

func TestReadCSV(t *testing.T) {
	input := "\ufeffClient Name, Amount,month\r\nAcme,100,2025-01\r\n,,\r\nBeta,50\r\n"
	headers, rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Client Name", "Amount", "month"}, headers)
	require.Len(t, rows, 2)
	assert.Equal(t, "Acme", rows[0]["Client Name"])
	assert.Equal(t, "", rows[1]["month"])

	_, _, err = ReadCSV(strings.NewReader(""))
	assert.Error(t, err)

	_, _, err = ReadCSV(strings.NewReader("a,b\n\"unterminated,1\n"))
	assert.Error(t, err)
}

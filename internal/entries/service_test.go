package entries

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintaskReza/opzer-dash/internal/platform/httpx"
	"github.com/fintaskReza/opzer-dash/internal/profitability"
)

type stubRepo struct {
	time    []TimeEntryInput
	revenue []RevenueEntryInput
	budgets map[string]float64
}

func (s *stubRepo) ListTimeEntries(context.Context, int64) ([]TimeEntryRecord, error) { return nil, nil }

func (s *stubRepo) InsertTimeEntries(_ context.Context, _ int64, rows []TimeEntryInput) (int, error) {
	s.time = append(s.time, rows...)
	return len(rows), nil
}

func (s *stubRepo) DeleteAllTimeEntries(context.Context, int64) (int64, error) {
	n := int64(len(s.time))
	s.time = nil
	return n, nil
}

func (s *stubRepo) ListRevenueEntries(context.Context, int64) ([]RevenueEntryRecord, error) {
	return nil, nil
}

func (s *stubRepo) InsertRevenueEntries(_ context.Context, _ int64, rows []RevenueEntryInput) (int, error) {
	s.revenue = append(s.revenue, rows...)
	return len(rows), nil
}

func (s *stubRepo) DeleteAllRevenueEntries(context.Context, int64) (int64, error) { return 0, nil }

func (s *stubRepo) ListBudgets(context.Context, int64) ([]BudgetRecord, error) { return nil, nil }

func (s *stubRepo) UpsertBudget(_ context.Context, _ int64, in BudgetInput) (*BudgetRecord, error) {
	if s.budgets == nil {
		s.budgets = map[string]float64{}
	}
	s.budgets[in.ClientName] = in.Budget
	return &BudgetRecord{ID: 1, BudgetEntry: profitability.BudgetEntry{ClientName: in.ClientName, Budget: in.Budget}}, nil
}

func (s *stubRepo) DeleteBudget(context.Context, int64, int64) error { return httpx.ErrNotFound }

func (s *stubRepo) CountBySource(context.Context, int64) (map[DataSource]int64, error) {
	out := make(map[DataSource]int64)
	for _, row := range s.time {
		out[row.DataSource]++
	}
	for _, row := range s.revenue {
		out[row.DataSource]++
	}
	return out, nil
}

type rosterNames []profitability.Client

func (r rosterNames) Normalizer(context.Context, int64) (*profitability.Normalizer, error) {
	return profitability.NewNormalizer(r), nil
}

type countingBuster map[int64]int

func (c countingBuster) Bust(_ context.Context, orgID int64) { c[orgID]++ }

func TestBulkInsertTimeAppliesDefaults(t *testing.T) {
	repo := &stubRepo{}
	busts := countingBuster{}
	svc := NewService(repo, nil, busts, nil)
	notBillable := false

	n, err := svc.BulkInsertTime(context.Background(), 2, []TimeEntryInput{
		{ClientName: " X ", TeamMember: "M", HoursLogged: 1.5, Date: "2025-06-01", ServiceTag: "  "},
		{ClientName: "X", TeamMember: "M", HoursLogged: 2, Date: "2025-06-02", ServiceTag: "Tax", Billable: &notBillable, DataSource: SourceAPI},
	}, SourceCSV)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, repo.time, 2)

	assert.Equal(t, "X", repo.time[0].ClientName)
	assert.Equal(t, profitability.UncategorizedService, repo.time[0].ServiceTag)
	require.NotNil(t, repo.time[0].Billable)
	assert.True(t, *repo.time[0].Billable)
	assert.Equal(t, SourceCSV, repo.time[0].DataSource)

	assert.False(t, *repo.time[1].Billable)
	assert.Equal(t, SourceAPI, repo.time[1].DataSource)
	assert.Equal(t, 1, busts[2])
}

func TestBulkInsertLimits(t *testing.T) {
	repo := &stubRepo{}
	busts := countingBuster{}
	svc := NewService(repo, nil, busts, nil)
	ctx := context.Background()

	n, err := svc.BulkInsertTime(ctx, 1, nil, SourceCSV)
	require.NoError(t, err)
	assert.Zero(t, n)

	tooMany := make([]TimeEntryInput, MaxBulkRows+1)
	_, err = svc.BulkInsertTime(ctx, 1, tooMany, SourceCSV)
	assert.ErrorIs(t, err, ErrTooManyRows)
	assert.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.BulkInsertRevenue(ctx, 1, make([]RevenueEntryInput, MaxBulkRows+1), SourceCSV)
	assert.ErrorIs(t, err, ErrTooManyRows)

	exactly := make([]RevenueEntryInput, MaxBulkRows)
	for i := range exactly {
		exactly[i] = RevenueEntryInput{ClientName: "X", Amount: 1, Date: "2025-01-01"}
	}
	n, err = svc.BulkInsertRevenue(ctx, 1, exactly, SourceCSV)
	require.NoError(t, err)
	assert.Equal(t, MaxBulkRows, n)
	assert.Empty(t, repo.time)
	assert.Equal(t, 1, busts[1])
}

func TestBulkInsertRejectsBadRows(t *testing.T) {
	svc := NewService(&stubRepo{}, nil, nil, nil)
	tests := []struct {
		name string
		row  TimeEntryInput
	}{
		{"missing client", TimeEntryInput{TeamMember: "M", Date: "2025-01-01"}},
		{"missing member", TimeEntryInput{ClientName: "X", Date: "2025-01-01"}},
		{"unpadded date", TimeEntryInput{ClientName: "X", TeamMember: "M", Date: "2025-1-1"}},
		{"negative hours", TimeEntryInput{ClientName: "X", TeamMember: "M", Date: "2025-01-01", HoursLogged: -1}},
		{"unknown source", TimeEntryInput{ClientName: "X", TeamMember: "M", Date: "2025-01-01", DataSource: "fax"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.BulkInsertTime(context.Background(), 1, []TimeEntryInput{
				{ClientName: "ok", TeamMember: "ok", Date: "2025-01-01"},
				tt.row,
			}, SourceCSV)
			require.ErrorIs(t, err, httpx.ErrValidation)
			assert.True(t, strings.HasPrefix(err.Error(), "row 2:"), err.Error())
		})
	}
}

func TestBulkInsertRevenueNormalizesNames(t *testing.T) {
	repo := &stubRepo{}
	names := rosterNames{{CanonicalName: "HL Networks", ExternalName: "DAVINCI TECHNOLOGY SOLUTIONS"}}
	svc := NewService(repo, names, nil, nil)

	_, err := svc.BulkInsertRevenue(context.Background(), 1, []RevenueEntryInput{
		{ClientName: "Davinci Technology Solutions", Amount: 10, Date: "2025-02-01"},
		{ClientName: "Walk-in", Amount: 5, Date: "2025-02-01"},
	}, SourceCSV)
	require.NoError(t, err)
	require.Len(t, repo.revenue, 2)
	assert.Equal(t, "HL Networks", repo.revenue[0].ClientName)
	assert.Equal(t, "Walk-in", repo.revenue[1].ClientName)
}

func TestUpsertBudget(t *testing.T) {
	repo := &stubRepo{}
	busts := countingBuster{}
	svc := NewService(repo, nil, busts, nil)

	_, err := svc.UpsertBudget(context.Background(), 3, BudgetInput{ClientName: "X", Budget: 100})
	require.NoError(t, err)
	_, err = svc.UpsertBudget(context.Background(), 3, BudgetInput{ClientName: "X", Budget: 250})
	require.NoError(t, err)
	assert.Equal(t, 250.0, repo.budgets["X"])
	assert.Equal(t, 2, busts[3])

	_, err = svc.UpsertBudget(context.Background(), 3, BudgetInput{ClientName: "Y", Budget: -1})
	require.NoError(t, err)
	assert.Equal(t, -1.0, repo.budgets["Y"])

	_, err = svc.UpsertBudget(context.Background(), 3, BudgetInput{ClientName: "  ", Budget: 10})
	assert.ErrorIs(t, err, httpx.ErrValidation)

	assert.ErrorIs(t, svc.DeleteBudget(context.Background(), 3, 9), httpx.ErrNotFound)
	assert.Equal(t, 3, busts[3])
}

package roster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintaskReza/opzer-dash/internal/platform/httpx"
	"github.com/fintaskReza/opzer-dash/internal/profitability"
)

type stubRepo struct {
	clients []ClientRecord
	members []TeamMemberRecord
	updates []TeamMemberInput
}

func (s *stubRepo) ListClients(context.Context, int64) ([]ClientRecord, error) { return s.clients, nil }

func (s *stubRepo) CreateClient(_ context.Context, orgID int64, c profitability.Client) (*ClientRecord, error) {
	rec := ClientRecord{ID: int64(len(s.clients) + 1), OrgID: orgID, Client: c}
	s.clients = append(s.clients, rec)
	return &rec, nil
}

func (s *stubRepo) DeleteClient(_ context.Context, _, id int64) error {
	for i, c := range s.clients {
		if c.ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			return nil
		}
	}
	return httpx.ErrNotFound
}

func (s *stubRepo) ListTeamMembers(context.Context, int64) ([]TeamMemberRecord, error) {
	return s.members, nil
}

func (s *stubRepo) CreateTeamMember(_ context.Context, orgID int64, m profitability.TeamMember) (*TeamMemberRecord, error) {
	rec := TeamMemberRecord{ID: int64(len(s.members) + 1), OrgID: orgID, TeamMember: m}
	s.members = append(s.members, rec)
	return &rec, nil
}

func (s *stubRepo) UpdateTeamMember(_ context.Context, _, id int64, in TeamMemberInput) (*TeamMemberRecord, error) {
	s.updates = append(s.updates, in)
	return &TeamMemberRecord{ID: id}, nil
}

func (s *stubRepo) DeleteTeamMember(context.Context, int64, int64) error { return nil }

type countingBuster map[int64]int

func (c countingBuster) Bust(_ context.Context, orgID int64) { c[orgID]++ }

func TestCreateClientDefaults(t *testing.T) {
	repo := &stubRepo{}
	busts := countingBuster{}
	svc := NewService(repo, busts, nil)

	rec, err := svc.CreateClient(context.Background(), 7, CreateClientInput{CanonicalName: "  Acme Inc "})
	require.NoError(t, err)
	assert.Equal(t, "Acme Inc", rec.CanonicalName)
	assert.Equal(t, "Acme Inc", rec.ExternalName)
	assert.Equal(t, profitability.StatusActive, rec.Status)
	assert.Equal(t, 1, busts[7])

	_, err = svc.CreateClient(context.Background(), 7, CreateClientInput{CanonicalName: "X", Status: "Paused"})
	assert.ErrorIs(t, err, httpx.ErrValidation)
	_, err = svc.CreateClient(context.Background(), 7, CreateClientInput{})
	assert.ErrorIs(t, err, httpx.ErrValidation)
	assert.Equal(t, 1, busts[7])
}

func TestCreateTeamMemberDefaults(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, nil, nil)
	name := "Dana"

	rec, err := svc.CreateTeamMember(context.Background(), 1, TeamMemberInput{Name: &name})
	require.NoError(t, err)
	assert.Zero(t, rec.CostRate)
	assert.Zero(t, rec.BillingRate)
	assert.Equal(t, profitability.StatusActive, rec.Status)
	assert.Equal(t, 140, rec.CapacityHoursPerMonth)
	assert.Equal(t, profitability.LocationOnshore, rec.Location)

	_, err = svc.CreateTeamMember(context.Background(), 1, TeamMemberInput{})
	assert.ErrorIs(t, err, httpx.ErrValidation)

	negative := -5.0
	_, err = svc.CreateTeamMember(context.Background(), 1, TeamMemberInput{Name: &name, CostRate: &negative})
	assert.ErrorIs(t, err, httpx.ErrValidation)

	offshore := profitability.Location("Mars")
	_, err = svc.UpdateTeamMember(context.Background(), 1, 1, TeamMemberInput{Location: &offshore})
	assert.ErrorIs(t, err, httpx.ErrValidation)
}

func TestUpdateTeamMemberName(t *testing.T) {
	repo := &stubRepo{}
	busts := countingBuster{}
	svc := NewService(repo, busts, nil)

	blank := "   "
	_, err := svc.UpdateTeamMember(context.Background(), 1, 3, TeamMemberInput{Name: &blank})
	assert.ErrorIs(t, err, httpx.ErrValidation)
	empty := ""
	_, err = svc.UpdateTeamMember(context.Background(), 1, 3, TeamMemberInput{Name: &empty})
	assert.ErrorIs(t, err, httpx.ErrValidation)
	assert.Empty(t, repo.updates)
	assert.Zero(t, busts[1])

	padded := "  Dana Lee "
	_, err = svc.UpdateTeamMember(context.Background(), 1, 3, TeamMemberInput{Name: &padded})
	require.NoError(t, err)
	require.Len(t, repo.updates, 1)
	assert.Equal(t, "Dana Lee", *repo.updates[0].Name)
	assert.Equal(t, "  Dana Lee ", padded)
	assert.Equal(t, 1, busts[1])

	rate := 50.0
	_, err = svc.UpdateTeamMember(context.Background(), 1, 3, TeamMemberInput{CostRate: &rate})
	require.NoError(t, err)
	assert.Nil(t, repo.updates[1].Name)
}

func TestDeleteMissingClientDoesNotBust(t *testing.T) {
	busts := countingBuster{}
	svc := NewService(&stubRepo{}, busts, nil)
	assert.ErrorIs(t, svc.DeleteClient(context.Background(), 1, 99), httpx.ErrNotFound)
	assert.Zero(t, busts[1])
}

func TestNormalizerUsesRoster(t *testing.T) {
	repo := &stubRepo{clients: []ClientRecord{
		{ID: 1, Client: profitability.Client{CanonicalName: "Acme Inc", ExternalName: "ACME LLC"}},
		{ID: 2, Client: profitability.Client{CanonicalName: "Acme Two", ExternalName: "ACME LLC"}},
	}}
	n, err := NewService(repo, nil, nil).Normalizer(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Acme Inc", n.Normalize("acme llc"))
	assert.Equal(t, []string{"ACME LLC"}, n.Collisions())
}

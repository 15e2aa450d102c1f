package orgs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintaskReza/opzer-dash/internal/platform/httpx"
)

type stubRepo struct {
	created []CreateInput
}

func (s *stubRepo) List(context.Context) ([]Organization, error) { return nil, nil }

func (s *stubRepo) Get(_ context.Context, id int64) (*Organization, error) {
	return nil, httpx.ErrNotFound
}

func (s *stubRepo) FindBySlug(_ context.Context, slug string) (*Organization, error) {
	for i, in := range s.created {
		if in.Slug == slug {
			return &Organization{ID: int64(i + 1), Name: in.Name, Slug: in.Slug}, nil
		}
	}
	return nil, httpx.ErrNotFound
}

func (s *stubRepo) Create(_ context.Context, in CreateInput) (*Organization, error) {
	s.created = append(s.created, in)
	return &Organization{ID: int64(len(s.created)), Name: in.Name, Slug: in.Slug}, nil
}

func (s *stubRepo) Delete(context.Context, int64) error { return nil }

func TestCreateValidatesSlug(t *testing.T) {
	tests := []struct {
		name  string
		in    CreateInput
		valid bool
	}{
		{"ok", CreateInput{Name: "Acme", Slug: "acme-cpa"}, true},
		{"uppercase is folded", CreateInput{Name: "Acme", Slug: " Acme-CPA "}, true},
		{"missing name", CreateInput{Slug: "acme"}, false},
		{"spaces", CreateInput{Name: "Acme", Slug: "acme cpa"}, false},
		{"trailing hyphen", CreateInput{Name: "Acme", Slug: "acme-"}, false},
		{"empty", CreateInput{Name: "Acme"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{}
			org, err := NewService(repo).Create(context.Background(), tt.in)
			if !tt.valid {
				require.ErrorIs(t, err, httpx.ErrValidation)
				assert.Empty(t, repo.created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "acme-cpa", org.Slug)
		})
	}
}

func TestFindBySlugFoldsCase(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)
	_, err := svc.Create(context.Background(), CreateInput{Name: "Acme", Slug: "acme"})
	require.NoError(t, err)

	org, err := svc.FindBySlug(context.Background(), " ACME ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), org.ID)

	_, err = svc.FindBySlug(context.Background(), "other")
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

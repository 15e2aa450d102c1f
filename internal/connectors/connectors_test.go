package connectors

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintaskReza/opzer-dash/internal/entries"
	"github.com/fintaskReza/opzer-dash/internal/rbac"
	"github.com/fintaskReza/opzer-dash/internal/shared"
)

type counter map[entries.DataSource]int64

func (c counter) CountBySource(context.Context, int64) (map[entries.DataSource]int64, error) {
	return c, nil
}

func TestStubsAreNeverConnected(t *testing.T) {
	for _, c := range []Connector{QuickBooks(), Xero(), GoogleSheets()} {
		st, err := c.Status(context.Background(), 1)
		require.NoError(t, err)
		assert.False(t, st.Connected, c.Type())
		assert.Equal(t, StateComing, st.State)

		_, err = c.Sync(context.Background(), 1)
		assert.ErrorIs(t, err, ErrNotConnected)
	}
}

func TestRegistryList(t *testing.T) {
	reg := NewRegistry(counter{entries.SourceCSV: 12, entries.SourceManual: 3})
	sources, err := reg.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, sources, 4)

	assert.Equal(t, "csv", sources[0].Type)
	assert.True(t, sources[0].Connected)
	assert.Equal(t, int64(12), sources[0].Rows)
	assert.Equal(t, []string{"csv", "quickbooks", "xero", "sheets"}, []string{sources[0].Type, sources[1].Type, sources[2].Type, sources[3].Type})

	_, ok := reg.Get("xero")
	assert.True(t, ok)
	_, ok = reg.Get("netsuite")
	assert.False(t, ok)
}

func TestHandler(t *testing.T) {
	admin := shared.Principal{UserID: 1, OrgID: 1, Role: shared.RoleAdmin}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(shared.ContextWithPrincipal(req.Context(), admin)))
		})
	})
	r.Route("/api/data-sources", NewHandler(nil, NewRegistry(nil), rbac.Middleware{}).MountRoutes)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/data-sources/", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var sources []Status
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&sources))
	assert.Len(t, sources, 4)

	tests := []struct {
		path string
		code int
	}{
		{"/api/data-sources/quickbooks/sync", http.StatusConflict},
		{"/api/data-sources/csv/sync", http.StatusOK},
		{"/api/data-sources/netsuite/sync", http.StatusNotFound},
	}
	for _, tt := range tests {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, tt.path, nil))
		assert.Equal(t, tt.code, rr.Code, tt.path)
	}
}

package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintaskReza/opzer-dash/internal/entries"
	"github.com/fintaskReza/opzer-dash/internal/rbac"
	"github.com/fintaskReza/opzer-dash/internal/shared"
)

type stubInserter struct {
	orgID   int64
	time    []entries.TimeEntryInput
	revenue []entries.RevenueEntryInput
	source  entries.DataSource
}

func (s *stubInserter) BulkInsertTime(_ context.Context, orgID int64, rows []entries.TimeEntryInput, fallback entries.DataSource) (int, error) {
	s.orgID, s.time, s.source = orgID, rows, fallback
	return len(rows), nil
}

func (s *stubInserter) BulkInsertRevenue(_ context.Context, orgID int64, rows []entries.RevenueEntryInput, fallback entries.DataSource) (int, error) {
	s.orgID, s.revenue, s.source = orgID, rows, fallback
	return len(rows), nil
}

func multipartBody(t *testing.T, csv, mapping string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if csv != "" {
		part, err := w.CreateFormFile("file", "upload.csv")
		require.NoError(t, err)
		_, err = part.Write([]byte(csv))
		require.NoError(t, err)
	}
	if mapping != "" {
		require.NoError(t, w.WriteField("mapping", mapping))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func serve(t *testing.T, ins Inserter, p *shared.Principal, path, csv, mapping string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(nil, ins, rbac.Middleware{})
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if p != nil {
				req = req.WithContext(shared.ContextWithPrincipal(req.Context(), *p))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Route("/api/import", h.MountRoutes)

	body, contentType := multipartBody(t, csv, mapping)
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

var member = &shared.Principal{UserID: 3, OrgID: 7, Role: shared.RoleMember}

func TestImportTimeWithMapping(t *testing.T) {
	ins := &stubInserter{}
	csv := "Customer,Who,Hrs,When\nAcme,Dana,2,2025-01-02\nBeta,Lee,1.5,2025-01-03\n"
	mapping := `{"clientName":"Customer","teamMember":"Who","hours":"Hrs","date":"When","serviceTag":"__none__"}`

	rr := serve(t, ins, member, "/api/import/time", csv, mapping)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp importResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Inserted)
	assert.Equal(t, int64(7), ins.orgID)
	assert.Equal(t, entries.SourceCSV, ins.source)
	require.Len(t, ins.time, 2)
	assert.Equal(t, "Dana", ins.time[0].TeamMember)
	assert.Equal(t, 1.5, ins.time[1].HoursLogged)
}

func TestImportRevenueWithoutMappingUsesAliases(t *testing.T) {
	ins := &stubInserter{}
	rr := serve(t, ins, member, "/api/import/revenue", "Client Name,Amount,month\nAcme,120.5,2025-02\n", "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	require.Len(t, ins.revenue, 1)
	assert.Equal(t, 120.5, ins.revenue[0].Amount)
	assert.Equal(t, "2025-02-01", ins.revenue[0].Date)
}

func TestImportRejections(t *testing.T) {
	tests := []struct {
		name      string
		principal *shared.Principal
		path      string
		csv       string
		mapping   string
		code      int
	}{
		{"anonymous", nil, "/api/import/time", "a\n1\n", "", http.StatusUnauthorized},
		{"unknown kind", member, "/api/import/budget", "a\n1\n", "", http.StatusNotFound},
		{"missing file", member, "/api/import/time", "", "", http.StatusBadRequest},
		{"bad mapping", member, "/api/import/time", "a\n1\n", "{", http.StatusBadRequest},
		{"too many rows", member, "/api/import/revenue", "amount\n" + strings.Repeat("1\n", entries.MaxBulkRows+1), "", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(t, &stubInserter{}, tt.principal, tt.path, tt.csv, tt.mapping)
			assert.Equal(t, tt.code, rr.Code, rr.Body.String())
		})
	}
}

func TestImportPreview(t *testing.T) {
	rr := serve(t, &stubInserter{}, member, "/api/import/time/preview", "Client,Staff,Hours,Date\nAcme,Dana,2,2025-01-02\n", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp previewResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Rows)
	assert.Equal(t, "Staff", resp.Mapping["teamMember"])
	assert.Equal(t, "Hours", resp.Mapping["hours"])
	require.Len(t, resp.Sample, 1)
}

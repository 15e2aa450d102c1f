package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("client: %w", ErrNotFound), http.StatusNotFound},
		{ErrDuplicate, http.StatusConflict},
		{fmt.Errorf("%w: name required", ErrValidation), http.StatusBadRequest},
		{ErrForbidden, http.StatusForbidden},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrUnavailable, http.StatusServiceUnavailable},
		{errors.New("database exploded"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		rr := httptest.NewRecorder()
		RespondError(rr, tt.err)
		assert.Equal(t, tt.code, rr.Code, tt.err.Error())

		var problem ProblemDetail
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&problem))
		assert.Equal(t, tt.code, problem.Status)
		if tt.code == http.StatusInternalServerError {
			assert.Empty(t, problem.Detail)
		}
	}
}

func TestDecodeJSON(t *testing.T) {
	var target struct {
		Name string `json:"name"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"acme"}`))
	require.NoError(t, DecodeJSON(req, &target))
	assert.Equal(t, "acme", target.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.ErrorIs(t, DecodeJSON(req, &target), ErrValidation)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.ErrorIs(t, DecodeJSON(req, &target), ErrValidation)
}

func TestValidateUsesJSONNames(t *testing.T) {
	type form struct {
		OrgSlug string `json:"slug" validate:"required"`
		Email   string `json:"email" validate:"required,email"`
	}
	err := Validate(NewValidator(), form{Email: "nope"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "slug: required")
	assert.Contains(t, err.Error(), "email: email")

	assert.NoError(t, Validate(NewValidator(), form{OrgSlug: "a", Email: "a@b.co"}))
}

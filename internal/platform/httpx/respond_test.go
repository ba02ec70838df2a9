package httpx

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comercial-alfa/comercial-alfa/internal/shared"
)

func TestJSONSetsContentType(t *testing.T) {
	rr := httptest.NewRecorder()
	JSON(rr, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestCreated(t *testing.T) {
	rr := httptest.NewRecorder()
	Created(rr, 42)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":42}`, rr.Body.String())
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	var target struct {
		Nome string `json:"nome"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nome":"x","extra":1}`))
	err := DecodeJSON(req, &target)
	require.Error(t, err)
}

func TestDecodeJSONEmptyBody(t *testing.T) {
	var target struct{}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	err := DecodeJSON(req, &target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vazio")
}

func TestRespondErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("produto não encontrado: %w", shared.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("preço inválido: %w", shared.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("cnpj já cadastrado: %w", shared.ErrDuplicate), http.StatusConflict},
		{shared.ErrIdempotencyConflict, http.StatusConflict},
		{fmt.Errorf("query failed"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		RespondError(rr, tc.err)
		assert.Equal(t, tc.status, rr.Code, "error %v", tc.err)
		assert.Contains(t, rr.Body.String(), `"error"`)
	}
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondError(rr, fmt.Errorf("pq: connection refused on host db:5432"))
	assert.NotContains(t, rr.Body.String(), "db:5432")
}

package suppliers

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	listFn   func(ctx context.Context) ([]Supplier, error)
	createFn func(ctx context.Context, form SupplierForm) (int64, error)
}

func (s *stubService) List(ctx context.Context) ([]Supplier, error) {
	return s.listFn(ctx)
}

func (s *stubService) Create(ctx context.Context, form SupplierForm) (int64, error) {
	return s.createFn(ctx, form)
}

func newTestHandler(svc SupplierService) *Handler {
	logger := slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
	return NewHandler(logger, svc, nil)
}

func TestCreateRejectsShortCNPJBeforeService(t *testing.T) {
	h := newTestHandler(&stubService{
		createFn: func(ctx context.Context, form SupplierForm) (int64, error) {
			t.Fatal("service must not be called with an invalid CNPJ")
			return 0, nil
		},
	})

	body := `{"nome":"Fornecedor A","cnpj":"123","cidade":"São Paulo"}`
	req := httptest.NewRequest(http.MethodPost, "/fornecedores", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "CNPJ")
}

func TestCreateAcceptsFormattedCNPJ(t *testing.T) {
	h := newTestHandler(&stubService{
		createFn: func(ctx context.Context, form SupplierForm) (int64, error) { return 3, nil },
	})

	body := `{"nome":"Fornecedor A","cnpj":"12.345.678/0001-00","cidade":"São Paulo"}`
	req := httptest.NewRequest(http.MethodPost, "/fornecedores", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":3}`, rr.Body.String())
}

func TestListEmptyReturnsArray(t *testing.T) {
	h := newTestHandler(&stubService{
		listFn: func(ctx context.Context) ([]Supplier, error) { return nil, nil },
	})

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/fornecedores", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]\n", rr.Body.String())
}

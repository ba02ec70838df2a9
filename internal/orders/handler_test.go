package orders

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
	createFn func(ctx context.Context, req CreateOrderRequest) (int64, error)
	listFn   func(ctx context.Context, filters ListFilters) ([]OrderRow, error)
}

func (s *stubService) Create(ctx context.Context, req CreateOrderRequest) (int64, error) {
	return s.createFn(ctx, req)
}

func (s *stubService) List(ctx context.Context, filters ListFilters) ([]OrderRow, error) {
	return s.listFn(ctx, filters)
}

func newTestHandler(svc OrderService) *Handler {
	logger := slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
	return NewHandler(logger, svc, nil)
}

func TestListParsesFilters(t *testing.T) {
	var got ListFilters
	h := newTestHandler(&stubService{
		listFn: func(ctx context.Context, filters ListFilters) ([]OrderRow, error) {
			got = filters
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/pedidos?produto=3&fornecedor=7&data=2025-06-01", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, got.Produto)
	require.NotNil(t, got.Fornecedor)
	require.NotNil(t, got.Data)
	assert.Equal(t, int64(3), *got.Produto)
	assert.Equal(t, int64(7), *got.Fornecedor)
	assert.Equal(t, "2025-06-01", got.Data.Format(DateLayout))
}

func TestListBlankFiltersAddNoPredicate(t *testing.T) {
	var got ListFilters
	h := newTestHandler(&stubService{
		listFn: func(ctx context.Context, filters ListFilters) ([]OrderRow, error) {
			got = filters
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/pedidos?produto=&fornecedor=&data=", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, got.Produto)
	assert.Nil(t, got.Fornecedor)
	assert.Nil(t, got.Data)
}

func TestListRejectsMalformedFilters(t *testing.T) {
	h := newTestHandler(&stubService{
		listFn: func(ctx context.Context, filters ListFilters) ([]OrderRow, error) {
			t.Fatal("service must not be called with malformed filters")
			return nil, nil
		},
	})

	for _, target := range []string{
		"/pedidos?produto=abc",
		"/pedidos?fornecedor=-1",
		"/pedidos?data=01/06/2025",
	} {
		rr := httptest.NewRecorder()
		h.List(rr, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code, "target %s", target)
	}
}

func TestListEmptyResultIsArray(t *testing.T) {
	h := newTestHandler(&stubService{
		listFn: func(ctx context.Context, filters ListFilters) ([]OrderRow, error) { return nil, nil },
	})

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/pedidos", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]\n", rr.Body.String())
}

func TestCreateReturnsAssignedID(t *testing.T) {
	h := newTestHandler(&stubService{
		createFn: func(ctx context.Context, req CreateOrderRequest) (int64, error) { return 11, nil },
	})

	body := `{"id_produto":1,"id_fornecedor":2,"quantidade":5,"data":"2025-06-01"}`
	req := httptest.NewRequest(http.MethodPost, "/pedidos", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":11}`, rr.Body.String())
}

func TestCreateRejectsMissingReferences(t *testing.T) {
	h := newTestHandler(&stubService{
		createFn: func(ctx context.Context, req CreateOrderRequest) (int64, error) {
			t.Fatal("service must not be called when validation fails")
			return 0, nil
		},
	})

	for _, body := range []string{
		`{"id_fornecedor":2,"quantidade":5,"data":"2025-06-01"}`,
		`{"id_produto":1,"quantidade":5,"data":"2025-06-01"}`,
		`{"id_produto":1,"id_fornecedor":2,"quantidade":0,"data":"2025-06-01"}`,
		`{"id_produto":1,"id_fornecedor":2,"quantidade":5,"data":""}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/pedidos", strings.NewReader(body))
		rr := httptest.NewRecorder()
		h.Create(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "body %s", body)
	}
}

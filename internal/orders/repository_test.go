package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64p(v int64) *int64 { return &v }

func datep(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	require.NoError(t, err)
	return &d
}

func TestBuildListQueryNoFilters(t *testing.T) {
	query, args := buildListQuery(ListFilters{})

	assert.Empty(t, args)
	assert.Contains(t, query, "JOIN produtos")
	assert.Contains(t, query, "JOIN fornecedores")
	assert.NotContains(t, query, "$1")
}

func TestBuildListQuerySingleFilter(t *testing.T) {
	query, args := buildListQuery(ListFilters{Produto: int64p(5)})

	require.Len(t, args, 1)
	assert.Equal(t, int64(5), args[0])
	assert.Contains(t, query, "ped.id_produto = $1")
	assert.NotContains(t, query, "$2")
}

func TestBuildListQueryFiltersCompose(t *testing.T) {
	query, args := buildListQuery(ListFilters{
		Produto:    int64p(5),
		Fornecedor: int64p(9),
		Data:       datep(t, "2025-06-01"),
	})

	require.Len(t, args, 3)
	assert.Equal(t, int64(5), args[0])
	assert.Equal(t, int64(9), args[1])
	assert.Contains(t, query, "ped.id_produto = $1")
	assert.Contains(t, query, "ped.id_fornecedor = $2")
	assert.Contains(t, query, "ped.data = $3")
}

func TestBuildListQueryArgPositionsFollowSuppliedFilters(t *testing.T) {
	// When only the later filters are present, numbering restarts at $1.
	query, args := buildListQuery(ListFilters{Data: datep(t, "2025-06-01")})

	require.Len(t, args, 1)
	assert.Contains(t, query, "ped.data = $1")
	assert.NotContains(t, query, "id_produto = $")
}

package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/comercial-alfa/comercial-alfa/internal/catalog/products"
	"github.com/comercial-alfa/comercial-alfa/internal/catalog/suppliers"
	"github.com/comercial-alfa/comercial-alfa/internal/shared"
)

// ProductDirectory resolves product references. Satisfied by
// *products.Service.
type ProductDirectory interface {
	Get(ctx context.Context, id int64) (products.Product, error)
}

// SupplierDirectory resolves supplier references. Satisfied by
// *suppliers.Service.
type SupplierDirectory interface {
	Get(ctx context.Context, id int64) (suppliers.Supplier, error)
}

type Service struct {
	repo      Repository
	products  ProductDirectory
	suppliers SupplierDirectory
}

func NewService(repo Repository, productDir ProductDirectory, supplierDir SupplierDirectory) *Service {
	return &Service{
		repo:      repo,
		products:  productDir,
		suppliers: supplierDir,
	}
}

// Create verifies that both referenced rows exist before inserting. A
// dangling reference fails explicitly; orders never carry references that
// were unknown at creation time.
func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (int64, error) {
	if req.Quantidade <= 0 {
		return 0, shared.Invalid("quantidade inválida: deve ser maior que zero")
	}
	date, err := time.Parse(DateLayout, req.Data)
	if err != nil {
		return 0, shared.Invalid("data inválida: use o formato AAAA-MM-DD")
	}

	if _, err := s.products.Get(ctx, req.IDProduto); err != nil {
		if errors.Is(err, shared.ErrNotFound) || errors.Is(err, shared.ErrValidation) {
			return 0, shared.NotFound("produto não encontrado")
		}
		return 0, fmt.Errorf("verify product: %w", err)
	}
	if _, err := s.suppliers.Get(ctx, req.IDFornecedor); err != nil {
		if errors.Is(err, shared.ErrNotFound) || errors.Is(err, shared.ErrValidation) {
			return 0, shared.NotFound("fornecedor não encontrado")
		}
		return 0, fmt.Errorf("verify supplier: %w", err)
	}

	return s.repo.Create(ctx, Order{
		IDProduto:    req.IDProduto,
		IDFornecedor: req.IDFornecedor,
		Quantidade:   req.Quantidade,
		Data:         date,
	})
}

// List returns the denormalized order rows matching the supplied filters.
// No filters means the full set; no matches means an empty sequence, never
// an error.
func (s *Service) List(ctx context.Context, filters ListFilters) ([]OrderRow, error) {
	return s.repo.List(ctx, filters)
}

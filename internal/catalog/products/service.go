package products

import (
	"context"
	"strings"

	"github.com/comercial-alfa/comercial-alfa/internal/catalog"
	"github.com/comercial-alfa/comercial-alfa/internal/shared"
)

const cacheEntity = "produtos"

type Service struct {
	repo  Repository
	cache *catalog.Cache
}

func NewService(repo Repository, cache *catalog.Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// List returns every product. The Redis side-cache is best effort: a cache
// failure never fails the request.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	var cached []Product
	if hit, err := s.cache.GetList(ctx, cacheEntity, &cached); err == nil && hit {
		return cached, nil
	}
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetList(ctx, cacheEntity, result)
	return result, nil
}

// Get resolves a single product by its identifier.
func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	if id <= 0 {
		return Product{}, shared.Invalid("id de produto inválido")
	}
	return s.repo.Get(ctx, id)
}

// Create validates the form and persists a new product with one insert.
func (s *Service) Create(ctx context.Context, form ProductForm) (int64, error) {
	if err := s.validate(form); err != nil {
		return 0, err
	}
	id, err := s.repo.Create(ctx, Product{
		Nome:      strings.TrimSpace(form.Nome),
		Categoria: strings.TrimSpace(form.Categoria),
		Preco:     form.Preco,
		Estoque:   form.Estoque,
	})
	if err != nil {
		return 0, err
	}
	_ = s.cache.Invalidate(ctx, cacheEntity)
	return id, nil
}

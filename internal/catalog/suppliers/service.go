package suppliers

import (
	"context"
	"strings"

	"github.com/comercial-alfa/comercial-alfa/internal/catalog"
	"github.com/comercial-alfa/comercial-alfa/internal/shared"
)

const cacheEntity = "fornecedores"

type Service struct {
	repo  Repository
	cache *catalog.Cache
}

func NewService(repo Repository, cache *catalog.Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// List returns every supplier, cache first when available.
func (s *Service) List(ctx context.Context) ([]Supplier, error) {
	var cached []Supplier
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

// Get resolves a single supplier by its identifier.
func (s *Service) Get(ctx context.Context, id int64) (Supplier, error) {
	if id <= 0 {
		return Supplier{}, shared.Invalid("id de fornecedor inválido")
	}
	return s.repo.Get(ctx, id)
}

// Create normalizes the CNPJ and phone to digits-only, validates the form,
// and persists a new supplier with one insert.
func (s *Service) Create(ctx context.Context, form SupplierForm) (int64, error) {
	form.CNPJ = shared.Digits(form.CNPJ)
	if form.Telefone != "" {
		form.Telefone = shared.Digits(form.Telefone)
	}
	form.Email = strings.TrimSpace(form.Email)

	if err := s.validate(form); err != nil {
		return 0, err
	}
	id, err := s.repo.Create(ctx, Supplier{
		Nome:     strings.TrimSpace(form.Nome),
		CNPJ:     form.CNPJ,
		Cidade:   strings.TrimSpace(form.Cidade),
		Telefone: form.Telefone,
		Email:    form.Email,
	})
	if err != nil {
		return 0, err
	}
	_ = s.cache.Invalidate(ctx, cacheEntity)
	return id, nil
}

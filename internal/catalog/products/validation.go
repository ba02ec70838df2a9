package products

import (
	"strings"

	"github.com/comercial-alfa/comercial-alfa/internal/shared"
)

// validate re-checks everything the browser checks. The server must not
// trust the client.
func (s *Service) validate(form ProductForm) error {
	if len(strings.TrimSpace(form.Nome)) < 3 {
		return shared.Invalid("nome do produto deve ter pelo menos 3 caracteres")
	}
	if strings.TrimSpace(form.Categoria) == "" {
		return shared.Invalid("categoria é obrigatória")
	}
	if form.Preco <= 0 {
		return shared.Invalid("preço inválido: deve ser maior que zero")
	}
	if form.Estoque < 0 {
		return shared.Invalid("estoque inválido: não pode ser negativo")
	}
	return nil
}

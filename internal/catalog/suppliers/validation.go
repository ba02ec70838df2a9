package suppliers

import (
	"strings"

	"github.com/comercial-alfa/comercial-alfa/internal/shared"
)

// validate re-checks the client-side rules against the normalized form.
// The CNPJ check is length only; no verification-digit algorithm applies.
func (s *Service) validate(form SupplierForm) error {
	if len(strings.TrimSpace(form.Nome)) < 3 {
		return shared.Invalid("nome do fornecedor deve ter pelo menos 3 caracteres")
	}
	if !shared.ValidCNPJ(form.CNPJ) {
		return shared.Invalid("CNPJ inválido: deve conter 14 dígitos")
	}
	if strings.TrimSpace(form.Cidade) == "" {
		return shared.Invalid("cidade é obrigatória")
	}
	if form.Telefone != "" && !shared.ValidPhone(form.Telefone) {
		return shared.Invalid("telefone inválido: insira DDD + número (10 ou 11 dígitos)")
	}
	if form.Email != "" && !validEmail(form.Email) {
		return shared.Invalid("email inválido")
	}
	return nil
}

// validEmail accepts local@domain with at least one dot in the domain and
// no whitespace anywhere.
func validEmail(email string) bool {
	if strings.ContainsAny(email, " \t") {
		return false
	}
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

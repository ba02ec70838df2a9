package suppliers

import "github.com/go-playground/validator/v10"

// SupplierForm is the typed request body of POST /fornecedores.
type SupplierForm struct {
	Nome     string `json:"nome" validate:"required"`
	CNPJ     string `json:"cnpj" validate:"required,cnpj"`
	Cidade   string `json:"cidade" validate:"required"`
	Telefone string `json:"telefone,omitempty" validate:"omitempty,fone"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Nome":
		return "nome do fornecedor é obrigatório"
	case "CNPJ":
		return "CNPJ inválido: deve conter 14 dígitos"
	case "Cidade":
		return "cidade é obrigatória"
	case "Telefone":
		return "telefone inválido: insira DDD + número (10 ou 11 dígitos)"
	case "Email":
		return "email inválido"
	default:
		return "campo " + fe.Field() + " inválido"
	}
}
